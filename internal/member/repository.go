package member

import (
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(lastName, firstName string, age int, phone string, email *string, active bool) (*Member, error) {
	query := `
		INSERT INTO members (nom, prenom, age, telephone, email, actif)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, nom, prenom, age, telephone, email, actif, date_inscription
	`

	var m Member
	err := r.db.Get(&m, query, lastName, firstName, age, phone, email, active)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// List returns members, optionally narrowed by an exact id, a
// case-insensitive substring on nom or prenom, and sorted by age.
// Unknown sort values are ignored.
func (r *Repository) List(search string, searchID int, sort string) ([]Member, error) {
	query := `
		SELECT id, nom, prenom, age, telephone, email, actif, date_inscription
		FROM members
	`
	args := []interface{}{}

	if searchID > 0 {
		query += " WHERE id = $1"
		args = append(args, searchID)
	} else if search != "" {
		query += " WHERE nom ILIKE $1 OR prenom ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	switch sort {
	case "age":
		query += " ORDER BY age ASC"
	case "-age":
		query += " ORDER BY age DESC"
	default:
		query += " ORDER BY id ASC"
	}

	members := []Member{}
	err := r.db.Select(&members, query, args...)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *Repository) GetByID(id int) (*Member, error) {
	query := `
		SELECT id, nom, prenom, age, telephone, email, actif, date_inscription
		FROM members
		WHERE id = $1
	`

	var m Member
	err := r.db.Get(&m, query, id)
	if err != nil {
		return nil, err
	}

	return &m, nil
}

// Update writes every mutable column; date_inscription is left untouched.
func (r *Repository) Update(m *Member) error {
	query := `
		UPDATE members
		SET nom = $1, prenom = $2, age = $3, telephone = $4, email = $5, actif = $6
		WHERE id = $7
	`

	_, err := r.db.Exec(query, m.LastName, m.FirstName, m.Age, m.Phone, m.Email, m.Active, m.ID)
	return err
}

func (r *Repository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM members WHERE id = $1`, id)
	return err
}

func (r *Repository) EmailExists(email string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1 AND id <> $2)`

	var exists bool
	err := r.db.Get(&exists, query, email, excludeID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) Count() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM members`)
	if err != nil {
		return 0, err
	}

	return count, nil
}
