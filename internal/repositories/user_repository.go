package repositories

import (
	"strings"
	"sync"

	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	CreateUser(username, email, passwordHash string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateProfile(id uint, username, description *string) (*models.User, error)
}

// MemoryUserRepository implements UserRepository on an in-memory table.
// The table is intentionally volatile: a restart resets it. A single RWMutex
// serializes mutations; readers get copies, never the backing records.
//
// Email uniqueness is case-insensitive, username uniqueness is
// case-sensitive. The asymmetry is intentional and part of the contract.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID uint
}

// NewMemoryUserRepository creates an empty MemoryUserRepository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1}
}

// CreateUser adds a new user with a monotonic id. It fails with
// ErrDuplicateEmail or ErrDuplicateUsername when the email (ignoring case)
// or the username (exact case) is already taken.
func (r *MemoryUserRepository) CreateUser(username, email, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			return nil, ErrDuplicateEmail
		}
	}
	for i := range r.users {
		if r.users[i].Username == username {
			return nil, ErrDuplicateUsername
		}
	}

	user := models.User{
		ID:       r.nextID,
		Username: username,
		Email:    email,
		Password: passwordHash,
	}
	r.nextID++
	r.users = append(r.users, user)

	return &user, nil
}

// GetUserByID retrieves a user by id.
func (r *MemoryUserRepository) GetUserByID(id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetUserByEmail retrieves a user by email, ignoring case.
func (r *MemoryUserRepository) GetUserByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetUserByUsername retrieves a user by exact username.
func (r *MemoryUserRepository) GetUserByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Username == username {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// UpdateProfile updates the username and/or description of a user. A nil
// field is left unchanged. Renaming to a username held by a different user
// fails with ErrDuplicateUsername; renaming to one's own current username is
// a no-op success.
func (r *MemoryUserRepository) UpdateProfile(id uint, username, description *string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.users {
		if r.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrUserNotFound
	}

	if username != nil {
		for i := range r.users {
			if r.users[i].Username == *username && r.users[i].ID != id {
				return nil, ErrDuplicateUsername
			}
		}
		r.users[idx].Username = *username
	}
	if description != nil {
		r.users[idx].Description = *description
	}

	user := r.users[idx]
	return &user, nil
}
