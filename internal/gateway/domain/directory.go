package domain

import (
	"context"

	directory "github.com/Rutuauti/banking-transaction-manager-project/internal/directory/domain"
)

// DirectoryService is the account-management facade consumed by the auth
// endpoints.
type DirectoryService interface {
	Signup(ctx context.Context, username, password string, age int) error
	Login(ctx context.Context, username, password string) (directory.User, string, error)
	ResetPassword(ctx context.Context, username, newPassword string) error
	SyncUsers(ctx context.Context, users []directory.User) error
	ListUsers(ctx context.Context) ([]directory.User, error)
}
