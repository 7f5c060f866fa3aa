package client

import (
	"errors"

	"userhub/internal/models"
)

// Client-side submission errors.
var (
	ErrInvalidFormData = errors.New("invalid form data")
	ErrNoUserSelected  = errors.New("no user selected for editing")
)

// UserService is the client-side layer between the form and the API: it
// runs the pre-flight check, dispatches create vs update, and resets the
// form after a successful submission.
type UserService struct {
	api UserAPIClient
}

// NewUserService creates a client-side user service over the given API client
func NewUserService(api UserAPIClient) *UserService {
	return &UserService{api: api}
}

// FetchUsers retrieves the current user list
func (s *UserService) FetchUsers() ([]UserView, error) {
	return s.api.FetchUsers()
}

// CreateUser submits the form as a new user
func (s *UserService) CreateUser(state *UserFormState) error {
	if !state.IsValid() {
		return ErrInvalidFormData
	}

	return s.api.CreateUser(requestFrom(state))
}

// UpdateUser submits the form as a replacement for the user under EditingID
func (s *UserService) UpdateUser(state *UserFormState) error {
	if !state.IsValid() {
		return ErrInvalidFormData
	}
	if !state.IsEditing() {
		return ErrNoUserSelected
	}

	return s.api.UpdateUser(*state.EditingID, requestFrom(state))
}

// Submit dispatches on the form's mode and resets it after success
func (s *UserService) Submit(state *UserFormState) error {
	var err error
	if state.IsEditing() {
		err = s.UpdateUser(state)
	} else {
		err = s.CreateUser(state)
	}
	if err != nil {
		return err
	}

	state.Reset()
	return nil
}

// DeleteUser removes the user with the given id
func (s *UserService) DeleteUser(id int) error {
	return s.api.DeleteUser(id)
}

func requestFrom(state *UserFormState) *models.UserRequest {
	return &models.UserRequest{
		Name:     state.Name,
		Email:    state.Email,
		Password: state.Password,
	}
}
