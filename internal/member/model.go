package member

import (
	"regexp"

	"github.com/dachraoui-ui/sport-club-mang/internal/api"
)

// JSON field names keep the French contract the club frontend was built
// against (nom, prenom, telephone, actif, date_inscription).
type Member struct {
	ID         int      `db:"id" json:"id"`
	LastName   string   `db:"nom" json:"nom"`
	FirstName  string   `db:"prenom" json:"prenom"`
	Age        int      `db:"age" json:"age"`
	Phone      string   `db:"telephone" json:"telephone"`
	Email      *string  `db:"email" json:"email"`
	Active     bool     `db:"actif" json:"actif"`
	EnrolledAt api.Date `db:"date_inscription" json:"date_inscription"`
}

type CreateMemberRequest struct {
	LastName  string  `json:"nom" binding:"required"`
	FirstName string  `json:"prenom" binding:"required"`
	Age       int     `json:"age" binding:"required,gte=0"`
	Phone     string  `json:"telephone" binding:"required"`
	Email     *string `json:"email"`
	Active    *bool   `json:"actif"`
}

// UpdateMemberRequest carries only the fields the client supplied;
// date_inscription is set once at creation and never updated.
type UpdateMemberRequest struct {
	LastName  *string `json:"nom"`
	FirstName *string `json:"prenom"`
	Age       *int    `json:"age"`
	Phone     *string `json:"telephone"`
	Email     *string `json:"email"`
	Active    *bool   `json:"actif"`
}

var phonePattern = regexp.MustCompile(`^\d{8}$`)

// ValidPhone reports whether the phone number is exactly 8 digits.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
