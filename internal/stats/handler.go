package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo *Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// Overview godoc
// @Summary      Club statistics overview
// @Description  Total member count plus the most and least popular activities.
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  overviewResponse
// @Failure      500  {object}  gin.H
// @Router       /stats [get]
func (h *Handler) Overview(c *gin.Context) {
	total, err := h.repo.TotalMembers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	activities, err := h.repo.ActivitiesWithCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	resp := overviewResponse{TotalMembers: total}
	if len(activities) > 0 {
		first := activities[0]
		last := activities[len(activities)-1]
		resp.MostPopular = &popularActivity{Name: first.Name, Count: first.Count}
		resp.LeastPopular = &popularActivity{Name: last.Name, Count: last.Count}
	}

	c.JSON(http.StatusOK, resp)
}

// Activities godoc
// @Summary      Per-activity statistics
// @Description  Enrollment count and remaining places for every activity.
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   activityStatsResponse
// @Failure      500  {object}  gin.H
// @Router       /stats/activities [get]
func (h *Handler) Activities(c *gin.Context) {
	activities, err := h.repo.ActivitiesWithCounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	out := make([]activityStatsResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, activityStatsResponse{
			Code:            a.Code,
			Name:            a.Name,
			MonthlyFee:      a.MonthlyFee,
			Capacity:        a.Capacity,
			Count:           a.Count,
			AvailablePlaces: a.Capacity - a.Count,
		})
	}

	c.JSON(http.StatusOK, out)
}

// MembersPerActivity godoc
// @Summary      Members grouped by activity
// @Description  Enrolled member names keyed by activity display name.
// @Tags         stats
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  map[string][]MemberName
// @Failure      500  {object}  gin.H
// @Router       /stats/members-per-activity [get]
func (h *Handler) MembersPerActivity(c *gin.Context) {
	grouped, err := h.repo.MembersPerActivity()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, grouped)
}
