package subscription

import (
	"github.com/dachraoui-ui/sport-club-mang/internal/api"

	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(memberID int, planType PlanType, start, end api.Date, active bool) (*Subscription, error) {
	query := `
		INSERT INTO subscriptions (membre_id, type_abonnement, date_debut, date_fin, actif)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, membre_id, type_abonnement, date_debut, date_fin, actif
	`

	var s Subscription
	err := r.db.Get(&s, query, memberID, planType, start, end, active)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// List returns subscriptions joined with the member's display name,
// optionally filtered by member and active flag.
func (r *Repository) List(memberID int, active *bool) ([]SubscriptionWithMember, error) {
	query := `
		SELECT
			s.id, s.membre_id, s.type_abonnement, s.date_debut, s.date_fin, s.actif,
			m.prenom || ' ' || m.nom AS membre_nom
		FROM subscriptions s
		JOIN members m ON s.membre_id = m.id
	`
	args := []interface{}{}
	where := ""

	if memberID > 0 {
		where = " WHERE s.membre_id = $1"
		args = append(args, memberID)
	}
	if active != nil {
		if where == "" {
			where = " WHERE s.actif = $1"
		} else {
			where += " AND s.actif = $2"
		}
		args = append(args, *active)
	}

	query += where + " ORDER BY s.id ASC"

	subs := []SubscriptionWithMember{}
	err := r.db.Select(&subs, query, args...)
	if err != nil {
		return nil, err
	}

	return subs, nil
}

func (r *Repository) GetByID(id int) (*SubscriptionWithMember, error) {
	query := `
		SELECT
			s.id, s.membre_id, s.type_abonnement, s.date_debut, s.date_fin, s.actif,
			m.prenom || ' ' || m.nom AS membre_nom
		FROM subscriptions s
		JOIN members m ON s.membre_id = m.id
		WHERE s.id = $1
	`

	var s SubscriptionWithMember
	err := r.db.Get(&s, query, id)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *Repository) Update(s *Subscription) error {
	query := `
		UPDATE subscriptions
		SET type_abonnement = $1, date_debut = $2, date_fin = $3, actif = $4
		WHERE id = $5
	`

	_, err := r.db.Exec(query, s.Type, s.StartDate, s.EndDate, s.Active, s.ID)
	return err
}

func (r *Repository) Delete(id int) error {
	_, err := r.db.Exec(`DELETE FROM subscriptions WHERE id = $1`, id)
	return err
}

func (r *Repository) MemberHasSubscription(memberID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM subscriptions WHERE membre_id = $1)`

	var exists bool
	err := r.db.Get(&exists, query, memberID)
	if err != nil {
		return false, err
	}

	return exists, nil
}
