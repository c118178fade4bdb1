package enrollment

import (
	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(memberID, activityID int) (*Enrollment, error) {
	query := `
		INSERT INTO enrollments (membre_id, activite_id)
		VALUES ($1, $2)
		RETURNING id, membre_id, activite_id, date_inscription
	`

	var e Enrollment
	err := r.db.Get(&e, query, memberID, activityID)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) GetByID(id int) (*Enrollment, error) {
	query := `
		SELECT id, membre_id, activite_id, date_inscription
		FROM enrollments
		WHERE id = $1
	`

	var e Enrollment
	err := r.db.Get(&e, query, id)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) GetByIDWithDetails(id int) (*EnrollmentWithDetails, error) {
	query := `
		SELECT
			e.id,
			e.membre_id,
			m.nom AS membre_nom,
			m.prenom AS membre_prenom,
			e.activite_id,
			a.nom_act AS activite_nom,
			e.date_inscription
		FROM enrollments e
		JOIN members m ON e.membre_id = m.id
		JOIN activities a ON e.activite_id = a.id
		WHERE e.id = $1
	`

	var e EnrollmentWithDetails
	err := r.db.Get(&e, query, id)
	if err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *repository) ListWithDetails() ([]EnrollmentWithDetails, error) {
	query := `
		SELECT
			e.id,
			e.membre_id,
			m.nom AS membre_nom,
			m.prenom AS membre_prenom,
			e.activite_id,
			a.nom_act AS activite_nom,
			e.date_inscription
		FROM enrollments e
		JOIN members m ON e.membre_id = m.id
		JOIN activities a ON e.activite_id = a.id
		ORDER BY e.id ASC
	`

	enrollments := []EnrollmentWithDetails{}
	err := r.db.Select(&enrollments, query)
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

// Update rewrites the member/activity link; date_inscription stays as it
// was at creation.
func (r *repository) Update(e *Enrollment) error {
	query := `
		UPDATE enrollments
		SET membre_id = $1, activite_id = $2
		WHERE id = $3
	`

	_, err := r.db.Exec(query, e.MemberID, e.ActivityID, e.ID)
	return err
}

func (r *repository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM enrollments WHERE id = $1`, id)
	return err
}

func (r *repository) PairExists(memberID, activityID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM enrollments
			WHERE membre_id = $1 AND activite_id = $2
		)
	`

	var exists bool
	err := r.db.Get(&exists, query, memberID, activityID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) CountForActivity(activityID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM enrollments
		WHERE activite_id = $1
	`

	var count int
	err := r.db.Get(&count, query, activityID)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) CountForActivityExcluding(activityID, excludeID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM enrollments
		WHERE activite_id = $1 AND id <> $2
	`

	var count int
	err := r.db.Get(&count, query, activityID, excludeID)
	if err != nil {
		return 0, err
	}

	return count, nil
}
