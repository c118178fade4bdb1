package session

import (
	"regexp"

	"github.com/dachraoui-ui/sport-club-mang/internal/api"
)

type ClassSession struct {
	ID         int      `db:"id" json:"id"`
	ActivityID int      `db:"activite_id" json:"activite_id"`
	Date       api.Date `db:"date" json:"date"`
	StartTime  string   `db:"heure_debut" json:"heure_debut"`
	EndTime    string   `db:"heure_fin" json:"heure_fin"`
}

// SessionWithActivity joins in the activity identity the calendar shows.
type SessionWithActivity struct {
	ClassSession
	ActivityName string `db:"activite_nom" json:"-"`
	ActivityCode string `db:"activite_code" json:"-"`
}

type activityRef struct {
	ID   int    `json:"id"`
	Name string `json:"nom_act"`
	Code string `json:"code_act"`
}

type sessionResponse struct {
	ID        int         `json:"id"`
	Activity  activityRef `json:"activite"`
	Date      api.Date    `json:"date"`
	StartTime string      `json:"heure_debut"`
	EndTime   string      `json:"heure_fin"`
}

func toResponse(s SessionWithActivity) sessionResponse {
	return sessionResponse{
		ID: s.ID,
		Activity: activityRef{
			ID:   s.ActivityID,
			Name: s.ActivityName,
			Code: s.ActivityCode,
		},
		Date:      s.Date,
		StartTime: FormatTime(s.StartTime),
		EndTime:   FormatTime(s.EndTime),
	}
}

type CreateSessionRequest struct {
	ActivityID int    `json:"activite_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	StartTime  string `json:"heure_debut" binding:"required"`
	EndTime    string `json:"heure_fin" binding:"required"`
}

type UpdateSessionRequest struct {
	ActivityID *int    `json:"activite_id"`
	Date       *string `json:"date"`
	StartTime  *string `json:"heure_debut"`
	EndTime    *string `json:"heure_fin"`
}

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidTime reports whether s is a wall-clock time in HH:MM form.
func ValidTime(s string) bool {
	return timePattern.MatchString(s)
}

// FormatTime trims Postgres TIME values ("09:00:00") down to HH:MM.
func FormatTime(s string) string {
	if len(s) >= 5 {
		return s[:5]
	}
	return s
}
