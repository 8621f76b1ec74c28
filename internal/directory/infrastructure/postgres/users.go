package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/directory/domain"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/database"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/logging"
)

type UsersRepository struct {
	db     database.QueryTxBeginner
	logger logging.Logger
}

func NewUsersRepository(db database.QueryTxBeginner, logger logging.Logger) *UsersRepository {
	return &UsersRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UsersRepository) CreateUser(ctx context.Context, user domain.User) error {
	creationSQL := `INSERT INTO users (username, password_hash, age, balance, transactions)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (username) DO NOTHING
		RETURNING id`

	var id int
	row := r.db.QueryRow(ctx, creationSQL,
		user.Username, user.PasswordHash, user.Age, user.Balance, marshalTransactions(user.Transactions))
	err := row.Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.UsernameTakenError{Msg: "Username already exists."}
		}

		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UsersRepository) TryGetUser(ctx context.Context, username string) (domain.User, bool, error) {
	querySQL := `SELECT username, password_hash, age, balance, transactions FROM users WHERE username = $1`

	user, err := scanUser(r.db.QueryRow(ctx, querySQL, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, false, nil
		}

		return domain.User{}, false, err
	}

	return user, true, nil
}

func (r *UsersRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	updateSQL := `UPDATE users SET password_hash = $1 WHERE username = $2`

	tag, err := r.db.Exec(ctx, updateSQL, passwordHash, username)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.UserNotFoundError{Msg: "User not found."}
	}

	return nil
}

func (r *UsersRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	querySQL := `SELECT username, password_hash, age, balance, transactions FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, querySQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}

		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *UsersRepository) ReplaceAll(ctx context.Context, users []domain.User) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel: pgx.ReadCommitted,
	})
	if err != nil {
		return fmt.Errorf("failed to begin sync transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM users`); err != nil {
		rollback(ctx, tx, r.logger)
		return fmt.Errorf("failed to clear users: %w", err)
	}

	insertSQL := `INSERT INTO users (username, password_hash, age, balance, transactions) VALUES ($1, $2, $3, $4, $5)`
	for _, user := range users {
		if _, err := tx.Exec(ctx, insertSQL,
			user.Username, user.PasswordHash, user.Age, user.Balance, marshalTransactions(user.Transactions)); err != nil {
			rollback(ctx, tx, r.logger)
			return fmt.Errorf("failed to insert user %q: %w", user.Username, err)
		}
	}

	return tx.Commit(ctx)
}

func rollback(ctx context.Context, tx pgx.Tx, logger logging.Logger) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.Error("failed to rollback users transaction", "error", err.Error())
	}
}

func marshalTransactions(transactions []json.RawMessage) []byte {
	if transactions == nil {
		return []byte("[]")
	}

	data, err := json.Marshal(transactions)
	if err != nil {
		return []byte("[]")
	}

	return data
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	var rawTransactions []byte

	if err := row.Scan(&user.Username, &user.PasswordHash, &user.Age, &user.Balance, &rawTransactions); err != nil {
		return domain.User{}, err
	}

	if len(rawTransactions) > 0 {
		if err := json.Unmarshal(rawTransactions, &user.Transactions); err != nil {
			return domain.User{}, fmt.Errorf("failed to decode transactions for %q: %w", user.Username, err)
		}
	}

	return user, nil
}
