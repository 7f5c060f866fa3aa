package models

// UserRequest is the request body for creating or updating a user.
// There are deliberately no binding tags here: field checks run in
// entities.User.Validate so that failures come back in a fixed order
// with stable messages. An id in the body is accepted but ignored;
// the path parameter decides which row an update addresses.
type UserRequest struct {
	ID       *int   `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
