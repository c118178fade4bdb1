package stats

import (
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) TotalMembers() (int, error) {
	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM members`)
	return count, err
}

// ActivitiesWithCounts returns every activity with its enrollment count,
// most popular first. Activities with no enrollments are included with a
// zero count. Tie order between equal counts is whatever the database
// returns.
func (r *Repository) ActivitiesWithCounts() ([]ActivityStats, error) {
	query := `
		SELECT
			a.code_act, a.nom_act, a.tarif_mensuel, a.capacite,
			COUNT(e.id) AS nb_inscriptions
		FROM activities a
		LEFT JOIN enrollments e ON e.activite_id = a.id
		GROUP BY a.id, a.code_act, a.nom_act, a.tarif_mensuel, a.capacite
		ORDER BY nb_inscriptions DESC
	`

	activities := []ActivityStats{}
	err := r.db.Select(&activities, query)
	if err != nil {
		return nil, err
	}

	return activities, nil
}

// MembersPerActivity groups enrolled member names under their activity's
// display name. Activities without enrollments produce no key.
func (r *Repository) MembersPerActivity() (map[string][]MemberName, error) {
	query := `
		SELECT a.nom_act AS activite_nom, m.nom, m.prenom
		FROM enrollments e
		JOIN members m ON e.membre_id = m.id
		JOIN activities a ON e.activite_id = a.id
		ORDER BY a.nom_act
	`

	rows := []enrolledMember{}
	err := r.db.Select(&rows, query)
	if err != nil {
		return nil, err
	}

	result := map[string][]MemberName{}
	for _, row := range rows {
		result[row.ActivityName] = append(result[row.ActivityName], MemberName{
			LastName:  row.LastName,
			FirstName: row.FirstName,
		})
	}

	return result, nil
}
