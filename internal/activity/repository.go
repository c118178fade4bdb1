package activity

import (
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(code, name string, monthlyFee float64, capacity int, photo *string) (*Activity, error) {
	query := `
		INSERT INTO activities (code_act, nom_act, tarif_mensuel, capacite, photo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, code_act, nom_act, tarif_mensuel, capacite, photo
	`

	var a Activity
	err := r.db.Get(&a, query, code, name, monthlyFee, capacity, photo)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// List filters on nom_act (case-insensitive substring) and sorts by
// capacite. Unknown sort values are ignored.
func (r *Repository) List(search, sort string) ([]Activity, error) {
	query := `
		SELECT id, code_act, nom_act, tarif_mensuel, capacite, photo
		FROM activities
	`
	args := []interface{}{}

	if search != "" {
		query += " WHERE nom_act ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	switch sort {
	case "capacite":
		query += " ORDER BY capacite ASC"
	case "-capacite":
		query += " ORDER BY capacite DESC"
	default:
		query += " ORDER BY id ASC"
	}

	activities := []Activity{}
	err := r.db.Select(&activities, query, args...)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *Repository) GetByID(id int) (*Activity, error) {
	query := `
		SELECT id, code_act, nom_act, tarif_mensuel, capacite, photo
		FROM activities
		WHERE id = $1
	`

	var a Activity
	err := r.db.Get(&a, query, id)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *Repository) Update(a *Activity) error {
	query := `
		UPDATE activities
		SET code_act = $1, nom_act = $2, tarif_mensuel = $3, capacite = $4, photo = $5
		WHERE id = $6
	`

	_, err := r.db.Exec(query, a.Code, a.Name, a.MonthlyFee, a.Capacity, a.Photo, a.ID)
	return err
}

func (r *Repository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM activities WHERE id = $1`, id)
	return err
}

func (r *Repository) CodeExists(code string, excludeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM activities WHERE code_act = $1 AND id <> $2)`

	var exists bool
	err := r.db.Get(&exists, query, code, excludeID)
	if err != nil {
		return false, err
	}

	return exists, nil
}
