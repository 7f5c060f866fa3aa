package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"userhub/internal/models"
)

// UserView is a user row as the API returns it (no password field; the
// server never includes one).
type UserView struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserAPIClient defines the HTTP operations the front-end needs
type UserAPIClient interface {
	FetchUsers() ([]UserView, error)
	CreateUser(req *models.UserRequest) error
	UpdateUser(id int, req *models.UserRequest) error
	DeleteUser(id int) error
}

// HTTPUserAPIClient talks JSON over HTTP to the backend at baseURL
type HTTPUserAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPUserAPIClient creates an API client for the given base URL,
// e.g. "http://127.0.0.1:8000/api"
func NewHTTPUserAPIClient(baseURL string) *HTTPUserAPIClient {
	return &HTTPUserAPIClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// FetchUsers retrieves the full user list
func (c *HTTPUserAPIClient) FetchUsers() ([]UserView, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/users")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serverError(resp)
	}

	var users []UserView
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to parse users: %w", err)
	}
	return users, nil
}

// CreateUser submits a new user
func (c *HTTPUserAPIClient) CreateUser(req *models.UserRequest) error {
	return c.send(http.MethodPost, c.baseURL+"/users", req)
}

// UpdateUser replaces the user with the given id
func (c *HTTPUserAPIClient) UpdateUser(id int, req *models.UserRequest) error {
	return c.send(http.MethodPut, fmt.Sprintf("%s/users/%d", c.baseURL, id), req)
}

// DeleteUser removes the user with the given id
func (c *HTTPUserAPIClient) DeleteUser(id int) error {
	return c.send(http.MethodDelete, fmt.Sprintf("%s/users/%d", c.baseURL, id), nil)
}

func (c *HTTPUserAPIClient) send(method, url string, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return serverError(resp)
	}
	return nil
}

// serverError extracts the reason the server attached to a failure
func serverError(resp *http.Response) error {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, payload.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
