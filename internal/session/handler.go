package session

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dachraoui-ui/sport-club-mang/internal/activity"
	"github.com/dachraoui-ui/sport-club-mang/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo         *Repository
	activityRepo *activity.Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		repo:         NewRepository(db),
		activityRepo: activity.NewRepository(db),
	}
}

// List godoc
// @Summary      List class sessions
// @Description  Lists the class schedule with optional activity and date filters.
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        activite_id  query  int     false  "Filter by activity"
// @Param        date         query  string  false  "Filter by date (YYYY-MM-DD)"
// @Param        sort         query  string  false  "Sort: date, -date, heure_debut, -heure_debut"
// @Success      200  {array}   SessionWithActivity
// @Failure      500  {object}  gin.H
// @Router       /class-sessions [get]
func (h *Handler) List(c *gin.Context) {
	activityID := 0
	if s := c.Query("activite_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activite_id parameter"})
			return
		}
		activityID = id
	}

	date := c.Query("date")
	if date != "" {
		if _, err := api.ParseDate(date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
	}

	sessions, err := h.repo.List(activityID, date, c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list sessions"})
		return
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toResponse(s))
	}

	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary      Create class session
// @Description  Schedules a class. The (activity, date, start time) slot must be free.
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSessionRequest  true  "Session data"
// @Success      201      {object}  ClassSession
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /class-sessions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activite_id, date, heure_debut, and heure_fin are required"})
		return
	}

	if _, err := h.activityRepo.GetByID(req.ActivityID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	date, err := api.ParseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	if !ValidTime(req.StartTime) || !ValidTime(req.EndTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format. Use HH:MM"})
		return
	}
	if req.EndTime <= req.StartTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "heure_fin must be after heure_debut"})
		return
	}

	s, err := h.repo.Create(req.ActivityID, date, req.StartTime, req.EndTime)
	if err != nil {
		if errors.Is(err, ErrDuplicateSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A session already exists for this activity at this date and time"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	c.JSON(http.StatusCreated, s)
}

// Get godoc
// @Summary      Get class session
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      int  true  "Session ID"
// @Success      200        {object}  SessionWithActivity
// @Failure      404        {object}  gin.H
// @Router       /class-sessions/{sessionID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	s, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	c.JSON(http.StatusOK, toResponse(*s))
}

// Update godoc
// @Summary      Update class session
// @Tags         sessions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        sessionID  path      int                   true  "Session ID"
// @Param        request    body      UpdateSessionRequest  true  "Fields to update"
// @Success      200        {object}  api.SuccessResponse
// @Failure      400        {object}  gin.H
// @Failure      404        {object}  gin.H
// @Router       /class-sessions/{sessionID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	existing, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	s := existing.ClassSession

	if req.ActivityID != nil {
		if _, err := h.activityRepo.GetByID(*req.ActivityID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
			return
		}
		s.ActivityID = *req.ActivityID
	}

	if req.Date != nil {
		date, err := api.ParseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}
		s.Date = date
	}

	if req.StartTime != nil {
		if !ValidTime(*req.StartTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format. Use HH:MM"})
			return
		}
		s.StartTime = *req.StartTime
	}

	if req.EndTime != nil {
		if !ValidTime(*req.EndTime) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time format. Use HH:MM"})
			return
		}
		s.EndTime = *req.EndTime
	}

	startTime := FormatTime(s.StartTime)
	endTime := FormatTime(s.EndTime)
	if endTime <= startTime {
		c.JSON(http.StatusBadRequest, gin.H{"error": "heure_fin must be after heure_debut"})
		return
	}
	s.StartTime = startTime
	s.EndTime = endTime

	if err := h.repo.Update(&s); err != nil {
		if errors.Is(err, ErrDuplicateSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "A session already exists for this activity at this date and time"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete godoc
// @Summary      Delete class session
// @Tags         sessions
// @Security     BearerAuth
// @Produce      json
// @Param        sessionID  path      int  true  "Session ID"
// @Success      200        {object}  api.SuccessResponse
// @Failure      404        {object}  gin.H
// @Router       /class-sessions/{sessionID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	if _, err := h.repo.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
