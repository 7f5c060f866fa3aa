package repository

import (
	"sync"

	"userhub/internal/entities"
)

// memoryUserRepository is an in-memory UserRepository used in tests and as
// a lightweight stand-in for Postgres. All operations serialize on one
// mutex. Ids come from a monotonically increasing counter and are never
// reused, matching SERIAL semantics.
type memoryUserRepository struct {
	mu     sync.Mutex
	users  []entities.User
	nextID int
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{nextID: 1}
}

func (r *memoryUserRepository) Create(user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == user.Email {
			return ErrEmailTaken
		}
	}

	id := r.nextID
	r.nextID++
	user.ID = &id

	storedID := id
	stored := *user
	stored.ID = &storedID
	r.users = append(r.users, stored)
	return nil
}

func (r *memoryUserRepository) FindAll() ([]entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]entities.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *memoryUserRepository) Update(id int, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	target := -1
	for i := range r.users {
		if r.users[i].ID != nil && *r.users[i].ID == id {
			target = i
			break
		}
	}
	if target == -1 {
		return ErrUserNotFound
	}

	for _, existing := range r.users {
		if existing.Email == user.Email && existing.ID != nil && *existing.ID != id {
			return ErrEmailTaken
		}
	}

	r.users[target].Name = user.Name
	r.users[target].Email = user.Email
	r.users[target].Password = user.Password
	return nil
}

func (r *memoryUserRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != nil && *r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return ErrUserNotFound
}
