package enrollment

import "github.com/dachraoui-ui/sport-club-mang/internal/api"

type Enrollment struct {
	ID         int      `db:"id" json:"id"`
	MemberID   int      `db:"membre_id" json:"membre_id"`
	ActivityID int      `db:"activite_id" json:"activite_id"`
	EnrolledAt api.Date `db:"date_inscription" json:"date_inscription"`
}

// EnrollmentWithDetails is the denormalized row the frontend lists:
// member and activity names joined in alongside the ids.
type EnrollmentWithDetails struct {
	ID              int      `db:"id" json:"id"`
	MemberID        int      `db:"membre_id" json:"membre_id"`
	MemberLastName  string   `db:"membre_nom" json:"membre_nom"`
	MemberFirstName string   `db:"membre_prenom" json:"membre_prenom"`
	ActivityID      int      `db:"activite_id" json:"activite_id"`
	ActivityName    string   `db:"activite_nom" json:"activite_nom"`
	EnrolledAt      api.Date `db:"date_inscription" json:"date_inscription"`
}

type CreateEnrollmentRequest struct {
	MemberID   int `json:"membre_id" binding:"required"`
	ActivityID int `json:"activite_id" binding:"required"`
}

type UpdateEnrollmentRequest struct {
	MemberID   *int `json:"membre_id"`
	ActivityID *int `json:"activite_id"`
}
