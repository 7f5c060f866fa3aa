package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userhub/internal/repository"
	"userhub/internal/service"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	userService := service.NewUserService(repository.NewMemoryUserRepository())
	userController := NewUserController(userService)

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/users", userController.CreateUser)
		api.GET("/users", userController.GetUsers)
		api.PUT("/users/:id", userController.UpdateUser)
		api.DELETE("/users/:id", userController.DeleteUser)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeUsers(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	return users
}

func TestGetUsersEmpty(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeUsers(t, w))
}

func TestCreateUserValid(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	users := decodeUsers(t, w)
	require.Len(t, users, 1)
	assert.Equal(t, "John Doe", users[0]["name"])
	assert.Equal(t, "john@example.com", users[0]["email"])
	assert.Equal(t, float64(1), users[0]["id"])
}

func TestCreateUserInvalid(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "",
		"email":    "john@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Name cannot be empty")

	// the failed create persisted nothing
	w = doJSON(t, router, http.MethodGet, "/api/users", nil)
	assert.Empty(t, decodeUsers(t, w))
}

func TestCreateUserValidationOrder(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "John Doe",
		"email":    "not-an-email",
		"password": "",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email format")
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "Jane Doe",
		"email":    "john@example.com",
		"password": "password456",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateUserPasswordNotEchoed(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "password123",
	})

	require.Equal(t, http.StatusOK, w.Code)
	users := decodeUsers(t, w)
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "password")
	assert.NotContains(t, w.Body.String(), "password123")
}

func TestUpdateUser(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "password123",
	})

	w := doJSON(t, router, http.MethodPut, "/api/users/1", gin.H{
		"name":     "John Smith",
		"email":    "johnsmith@example.com",
		"password": "newpassword123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	users := decodeUsers(t, w)
	require.Len(t, users, 1)
	assert.Equal(t, "John Smith", users[0]["name"])
	assert.Equal(t, float64(1), users[0]["id"])
}

func TestUpdateUserBodyIDIgnored(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "password123",
	})

	w := doJSON(t, router, http.MethodPut, "/api/users/1", gin.H{
		"id":       999,
		"name":     "John Smith",
		"email":    "johnsmith@example.com",
		"password": "newpassword123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	users := decodeUsers(t, w)
	require.Len(t, users, 1)
	assert.Equal(t, float64(1), users[0]["id"])
	assert.Equal(t, "John Smith", users[0]["name"])
}

func TestUpdateUserNotFound(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/users/999", gin.H{
		"name":     "John Smith",
		"email":    "johnsmith@example.com",
		"password": "newpassword123",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateUserInvalid(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "password123",
	})

	w := doJSON(t, router, http.MethodPut, "/api/users/1", gin.H{
		"name":     "John Smith",
		"email":    "johnsmith@example.com",
		"password": "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password must be at least 6 characters")
}

func TestUpdateUserBadID(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPut, "/api/users/not-a-number", gin.H{
		"name":     "John Smith",
		"email":    "johnsmith@example.com",
		"password": "newpassword123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser(t *testing.T) {
	router := newTestRouter()

	doJSON(t, router, http.MethodPost, "/api/users", gin.H{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "password123",
	})

	w := doJSON(t, router, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/users", nil)
	assert.Empty(t, decodeUsers(t, w))
}

func TestDeleteUserNotFound(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodDelete, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
