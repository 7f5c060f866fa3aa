package service

import (
	"userhub/internal/entities"
	"userhub/internal/repository"
)

// UserService defines the interface for user business logic
type UserService interface {
	CreateUser(user *entities.User) ([]entities.User, error)
	GetAllUsers() ([]entities.User, error)
	UpdateUser(id int, user *entities.User) ([]entities.User, error)
	DeleteUser(id int) error
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// CreateUser validates and persists a new user, then returns the refreshed
// list. Validation failures return before any persistence call.
func (s *userService) CreateUser(user *entities.User) ([]entities.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return s.GetAllUsers()
}

// GetAllUsers returns every user
func (s *userService) GetAllUsers() ([]entities.User, error) {
	return s.repo.FindAll()
}

// UpdateUser validates the replacement values and updates the row with the
// given id. The id parameter is authoritative; any id carried inside user
// is ignored. Returns the refreshed list.
func (s *userService) UpdateUser(id int, user *entities.User) ([]entities.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(id, user); err != nil {
		return nil, err
	}

	return s.GetAllUsers()
}

// DeleteUser removes the user with the given id
func (s *userService) DeleteUser(id int) error {
	return s.repo.Delete(id)
}
