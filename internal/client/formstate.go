package client

import "strings"

// UserFormState is the draft a user edits before submitting: the three
// form fields plus the edit-mode marker. EditingID == nil means the next
// submission creates a user; otherwise it updates that id. The state is
// session-local and never persisted.
type UserFormState struct {
	Name      string
	Email     string
	Password  string
	EditingID *int
}

// NewUserFormState returns an empty form in create mode
func NewUserFormState() *UserFormState {
	return &UserFormState{}
}

// UserFormStateWithValues returns a pre-filled form
func UserFormStateWithValues(name, email, password string, editingID *int) *UserFormState {
	return &UserFormState{
		Name:      name,
		Email:     email,
		Password:  password,
		EditingID: editingID,
	}
}

// IsEditing reports whether the form targets an existing user
func (s *UserFormState) IsEditing() bool {
	return s.EditingID != nil
}

// IsValid is the pre-flight check run before a submission leaves the
// client. It is looser than the server-side validator on purpose (it has
// no password length rule, for one), so it only gates obviously broken
// input; the server remains authoritative.
func (s *UserFormState) IsValid() bool {
	return strings.TrimSpace(s.Name) != "" &&
		strings.TrimSpace(s.Email) != "" &&
		strings.TrimSpace(s.Password) != "" &&
		s.IsValidEmail()
}

// IsValidEmail applies the client-side email sanity check
func (s *UserFormState) IsValidEmail() bool {
	return strings.Contains(s.Email, "@") && len(s.Email) > 3
}

// Reset clears all fields and returns the form to create mode
func (s *UserFormState) Reset() {
	s.Name = ""
	s.Email = ""
	s.Password = ""
	s.EditingID = nil
}

// SetForEditing switches the form to edit mode for the given user. The
// password field is expected to come in blank: stored passwords are never
// echoed back for pre-fill, so the user re-enters one.
func (s *UserFormState) SetForEditing(id int, name, email, password string) {
	s.Name = name
	s.Email = email
	s.Password = password
	s.EditingID = &id
}
