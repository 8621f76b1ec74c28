package domain

import (
	"context"
	"encoding/json"
)

// User mirrors one record of the directory store. PasswordHash is serialized
// under "password" because the frontend and the sync endpoint exchange records
// in that shape.
type User struct {
	Username     string            `json:"username"`
	PasswordHash string            `json:"password"`
	Age          int               `json:"age"`
	Balance      float64           `json:"balance"`
	Transactions []json.RawMessage `json:"transactions"`
}

type UsersRepository interface {
	CreateUser(ctx context.Context, user User) error
	TryGetUser(ctx context.Context, username string) (User, bool, error)
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	ListUsers(ctx context.Context) ([]User, error)
	ReplaceAll(ctx context.Context, users []User) error
}
