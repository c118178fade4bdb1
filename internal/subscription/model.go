package subscription

import (
	"errors"

	"github.com/dachraoui-ui/sport-club-mang/internal/api"
)

type PlanType string

const (
	PlanMonthly   PlanType = "MONTHLY"
	PlanQuarterly PlanType = "3_MONTHS"
	PlanBiannual  PlanType = "6_MONTHS"
	PlanAnnual    PlanType = "ANNUAL"
)

var ErrUnknownPlanType = errors.New("unknown plan type")

var planDisplayNames = map[PlanType]string{
	PlanMonthly:   "Mensuel",
	PlanQuarterly: "3 mois",
	PlanBiannual:  "6 mois",
	PlanAnnual:    "Annuel",
}

func (p PlanType) Valid() bool {
	_, ok := planDisplayNames[p]
	return ok
}

func (p PlanType) DisplayName() string {
	return planDisplayNames[p]
}

// EndDate derives the subscription expiry from its start date. It is
// recomputed on every save; a client-supplied end date is never trusted.
func (p PlanType) EndDate(start api.Date) (api.Date, error) {
	switch p {
	case PlanMonthly:
		return start.AddDate(0, 1, 0), nil
	case PlanQuarterly:
		return start.AddDate(0, 3, 0), nil
	case PlanBiannual:
		return start.AddDate(0, 6, 0), nil
	case PlanAnnual:
		return start.AddDate(1, 0, 0), nil
	default:
		return api.Date{}, ErrUnknownPlanType
	}
}

type Subscription struct {
	ID        int      `db:"id" json:"id"`
	MemberID  int      `db:"membre_id" json:"membre_id"`
	Type      PlanType `db:"type_abonnement" json:"type_abonnement"`
	StartDate api.Date `db:"date_debut" json:"date_debut"`
	EndDate   api.Date `db:"date_fin" json:"date_fin"`
	Active    bool     `db:"actif" json:"actif"`
}

// SubscriptionWithMember adds the member's display name for listings.
type SubscriptionWithMember struct {
	Subscription
	MemberName string `db:"membre_nom" json:"membre_nom"`
}

type subscriptionResponse struct {
	ID          int      `json:"id"`
	MemberID    int      `json:"membre_id"`
	MemberName  string   `json:"membre_nom"`
	Type        PlanType `json:"type_abonnement"`
	TypeDisplay string   `json:"type_abonnement_display"`
	StartDate   api.Date `json:"date_debut"`
	EndDate     api.Date `json:"date_fin"`
	Active      bool     `json:"actif"`
}

func toResponse(s SubscriptionWithMember) subscriptionResponse {
	return subscriptionResponse{
		ID:          s.ID,
		MemberID:    s.MemberID,
		MemberName:  s.MemberName,
		Type:        s.Type,
		TypeDisplay: s.Type.DisplayName(),
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		Active:      s.Active,
	}
}

type CreateSubscriptionRequest struct {
	MemberID  int    `json:"membre_id" binding:"required"`
	Type      string `json:"type_abonnement" binding:"required"`
	StartDate string `json:"date_debut" binding:"required"`
	Active    *bool  `json:"actif"`
}

type UpdateSubscriptionRequest struct {
	Type      *string `json:"type_abonnement"`
	StartDate *string `json:"date_debut"`
	Active    *bool   `json:"actif"`
}
