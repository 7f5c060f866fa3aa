package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"userhub/internal/entities"
)

// Storage errors surfaced to the service layer.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user with this email already exists")
)

// uniqueViolation is the Postgres error code for a unique constraint breach
const uniqueViolation = "23505"

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(user *entities.User) error
	FindAll() ([]entities.User, error)
	Update(id int, user *entities.User) error
	Delete(id int) error
}

type postgresUserRepository struct {
	db *sql.DB
}

// NewPostgresUserRepository creates a user repository backed by Postgres
func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

// Create inserts a new user and fills in the assigned id
func (r *postgresUserRepository) Create(user *entities.User) error {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int
	err := r.db.QueryRow(query, user.Name, user.Email, user.Password).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = &id
	return nil
}

// FindAll returns every user, oldest first
func (r *postgresUserRepository) FindAll() ([]entities.User, error) {
	query := `
		SELECT id, name, email, password
		FROM users
		ORDER BY id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []entities.User{}
	for rows.Next() {
		var user entities.User
		var id int
		if err := rows.Scan(&id, &user.Name, &user.Email, &user.Password); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.ID = &id
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Update replaces name, email, and password of the row with the given id
func (r *postgresUserRepository) Update(id int, user *entities.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(query, user.Name, user.Email, user.Password, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes the row with the given id
func (r *postgresUserRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
