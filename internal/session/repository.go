package session

import (
	"errors"

	"github.com/dachraoui-ui/sport-club-mang/internal/api"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrDuplicateSlot = errors.New("a session for this activity, date and start time already exists")

const uniqueViolation = "23505"

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(activityID int, date api.Date, startTime, endTime string) (*ClassSession, error) {
	query := `
		INSERT INTO class_sessions (activite_id, date, heure_debut, heure_fin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, activite_id, date, heure_debut, heure_fin
	`

	var s ClassSession
	err := r.db.Get(&s, query, activityID, date, startTime, endTime)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, err
	}

	return &s, nil
}

// List returns sessions with activity details, optionally filtered by
// activity and date, sorted by date or start time. Unknown sort values
// fall back to date ascending.
func (r *Repository) List(activityID int, date string, sort string) ([]SessionWithActivity, error) {
	query := `
		SELECT
			s.id, s.activite_id, s.date, s.heure_debut, s.heure_fin,
			a.nom_act AS activite_nom,
			a.code_act AS activite_code
		FROM class_sessions s
		JOIN activities a ON s.activite_id = a.id
	`
	args := []interface{}{}
	where := ""

	if activityID > 0 {
		where = " WHERE s.activite_id = $1"
		args = append(args, activityID)
	}
	if date != "" {
		if where == "" {
			where = " WHERE s.date = $1"
		} else {
			where += " AND s.date = $2"
		}
		args = append(args, date)
	}

	switch sort {
	case "-date":
		query += where + " ORDER BY s.date DESC, s.heure_debut DESC"
	case "heure_debut":
		query += where + " ORDER BY s.heure_debut ASC"
	case "-heure_debut":
		query += where + " ORDER BY s.heure_debut DESC"
	default:
		query += where + " ORDER BY s.date ASC, s.heure_debut ASC"
	}

	sessions := []SessionWithActivity{}
	err := r.db.Select(&sessions, query, args...)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *Repository) GetByID(id int) (*SessionWithActivity, error) {
	query := `
		SELECT
			s.id, s.activite_id, s.date, s.heure_debut, s.heure_fin,
			a.nom_act AS activite_nom,
			a.code_act AS activite_code
		FROM class_sessions s
		JOIN activities a ON s.activite_id = a.id
		WHERE s.id = $1
	`

	var s SessionWithActivity
	err := r.db.Get(&s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repository) Update(s *ClassSession) error {
	query := `
		UPDATE class_sessions
		SET activite_id = $1, date = $2, heure_debut = $3, heure_fin = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(query, s.ActivityID, s.Date, s.StartTime, s.EndTime, s.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return ErrDuplicateSlot
		}
		return err
	}

	return nil
}

func (r *Repository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM class_sessions WHERE id = $1`, id)
	return err
}
