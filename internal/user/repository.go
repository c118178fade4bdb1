package user

import (
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrUserNotFound = errors.New("user not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(username, email, passwordHash string, isStaff bool) (*User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, is_staff)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_hash, is_staff, created_at
	`

	var user User
	err := r.db.Get(&user, query, username, email, passwordHash, isStaff)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) FindByUsername(username string) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, is_staff, created_at
		FROM users
		WHERE username = $1
	`

	var user User
	err := r.db.Get(&user, query, username)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) FindByID(id int) (*User, error) {
	query := `
		SELECT id, username, email, password_hash, is_staff, created_at
		FROM users
		WHERE id = $1
	`

	var user User
	err := r.db.Get(&user, query, id)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) UsernameExists(username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := r.db.Get(&exists, query, username)
	if err != nil {
		return false, err
	}

	return exists, nil
}
