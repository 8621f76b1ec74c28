package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Rutuauti/banking-transaction-manager-project/internal/directory/domain"
	"github.com/Rutuauti/banking-transaction-manager-project/internal/pkg/logging"
)

// Store keeps the whole directory in a single JSON file, rewritten on every
// mutation. Last writer wins; records do not survive manual edits made while
// the gateway is running. The file mutex gives read-after-write consistency
// for sequential operations on the same username.
type Store struct {
	mu     sync.Mutex
	path   string
	logger logging.Logger
}

func NewStore(path string, logger logging.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Init creates the parent directory and an empty user file when absent.
func (s *Store) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil
	}

	if err := s.writeAll(nil); err != nil {
		return err
	}

	s.logger.Info("created user file", "path", s.path)
	return nil
}

func (s *Store) CreateUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readAll()
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Username == user.Username {
			return &domain.UsernameTakenError{Msg: "Username already exists."}
		}
	}

	return s.writeAll(append(users, user))
}

func (s *Store) TryGetUser(_ context.Context, username string) (domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readAll()
	if err != nil {
		return domain.User{}, false, err
	}

	for _, u := range users {
		if u.Username == username {
			return u, true, nil
		}
	}

	return domain.User{}, false, nil
}

func (s *Store) UpdatePassword(_ context.Context, username, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readAll()
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].Username == username {
			users[i].PasswordHash = passwordHash
			return s.writeAll(users)
		}
	}

	return &domain.UserNotFoundError{Msg: "User not found."}
}

func (s *Store) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAll()
}

func (s *Store) ReplaceAll(_ context.Context, users []domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeAll(users)
}

func (s *Store) readAll() ([]domain.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.User{}, nil
		}
		return nil, fmt.Errorf("failed to read user file: %w", err)
	}

	if len(data) == 0 {
		return []domain.User{}, nil
	}

	var users []domain.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse user file: %w", err)
	}

	return users, nil
}

func (s *Store) writeAll(users []domain.User) error {
	if users == nil {
		users = []domain.User{}
	}

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode user file: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write user file: %w", err)
	}

	return nil
}
