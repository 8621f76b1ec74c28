package application

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/directory/domain"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/jwt"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/logging"
)

const tokenTimeLimit = time.Hour

// AuthCase owns every directory operation: account lifecycle for the auth
// endpoints and age resolution for the admission check on the transaction
// path.
type AuthCase struct {
	users       domain.UsersRepository
	hasher      domain.PasswordHasher
	tokenIssuer jwt.TokenIssuer
	secretKey   []byte
	logger      logging.Logger
}

func NewAuthCase(
	users domain.UsersRepository,
	hasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
	logger logging.Logger,
) *AuthCase {
	return &AuthCase{
		users:       users,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		secretKey:   []byte(secretKey),
		logger:      logger,
	}
}

func (a *AuthCase) Signup(ctx context.Context, username, password string, age int) error {
	hashedPassword, err := a.hasher.HashPassword(password)
	if err != nil {
		return err
	}

	err = a.users.CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Age:          age,
		Balance:      0,
		Transactions: []json.RawMessage{},
	})
	if err != nil {
		return err
	}

	a.logger.Info("user registered", "username", username, "age", age)
	return nil
}

func (a *AuthCase) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	user, found, err := a.users.TryGetUser(ctx, username)
	if err != nil {
		return domain.User{}, "", err
	}

	if !found {
		return domain.User{}, "", &domain.UserNotFoundError{Msg: "Invalid username."}
	}

	valid, err := a.hasher.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return domain.User{}, "", err
	}

	if !valid {
		return domain.User{}, "", &domain.CredentialsMismatchError{Msg: "Wrong password."}
	}

	token, err := a.tokenIssuer.IssueToken(a.secretKey, username, tokenTimeLimit)
	if err != nil {
		return domain.User{}, "", err
	}

	a.logger.Info("login successful", "username", username)
	return user, token, nil
}

func (a *AuthCase) ResetPassword(ctx context.Context, username, newPassword string) error {
	hashedPassword, err := a.hasher.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := a.users.UpdatePassword(ctx, username, hashedPassword); err != nil {
		return err
	}

	a.logger.Info("password reset", "username", username)
	return nil
}

func (a *AuthCase) SyncUsers(ctx context.Context, users []domain.User) error {
	if err := a.users.ReplaceAll(ctx, users); err != nil {
		return err
	}

	a.logger.Info("synced users", "count", len(users))
	return nil
}

func (a *AuthCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return a.users.ListUsers(ctx)
}

// ResolveAge reports the stored age of a user. A lookup failure or an unknown
// username yields ageKnown=false so the caller falls back to the default
// quota tier instead of failing admission.
func (a *AuthCase) ResolveAge(ctx context.Context, username string) (int, bool) {
	user, found, err := a.users.TryGetUser(ctx, username)
	if err != nil {
		a.logger.Warn("age lookup failed", "username", username, "error", err.Error())
		return 0, false
	}

	if !found {
		return 0, false
	}

	return user.Age, true
}
