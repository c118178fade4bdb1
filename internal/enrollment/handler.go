package enrollment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dachraoui-ui/sport-club-mang/internal/activity"
	"github.com/dachraoui-ui/sport-club-mang/internal/member"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(
			NewRepository(db),
			member.NewRepository(db),
			activity.NewRepository(db),
		),
	}
}

// List godoc
// @Summary      List enrollments
// @Description  Lists enrollments with member and activity names joined in.
// @Tags         enrollments
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   EnrollmentWithDetails
// @Failure      500  {object}  gin.H
// @Router       /enrollments [get]
func (h *Handler) List(c *gin.Context) {
	enrollments, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list enrollments"})
		return
	}

	c.JSON(http.StatusOK, enrollments)
}

// Create godoc
// @Summary      Enroll a member in an activity
// @Description  Rejects duplicate pairs and activities at capacity.
// @Tags         enrollments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateEnrollmentRequest  true  "Enrollment data"
// @Success      201      {object}  api.CreatedResponse
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /enrollments [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, err := h.service.Enroll(req.MemberID, req.ActivityID)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		case errors.Is(err, ErrAlreadyEnrolled):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Member already enrolled in this activity"})
		case errors.Is(err, ErrActivityFull):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Activity is full"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enrollment"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": e.ID, "success": true})
}

// Get godoc
// @Summary      Get enrollment
// @Tags         enrollments
// @Security     BearerAuth
// @Produce      json
// @Param        enrollmentID  path      int  true  "Enrollment ID"
// @Success      200           {object}  EnrollmentWithDetails
// @Failure      404           {object}  gin.H
// @Router       /enrollments/{enrollmentID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("enrollmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enrollment ID"})
		return
	}

	e, err := h.service.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// Update godoc
// @Summary      Update enrollment
// @Description  Partial update; moving to a new activity re-runs the capacity check.
// @Tags         enrollments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        enrollmentID  path      int                      true  "Enrollment ID"
// @Param        request       body      UpdateEnrollmentRequest  true  "Fields to update"
// @Success      200           {object}  api.SuccessResponse
// @Failure      400           {object}  gin.H
// @Failure      404           {object}  gin.H
// @Router       /enrollments/{enrollmentID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("enrollmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enrollment ID"})
		return
	}

	var req UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := h.service.Update(id, req); err != nil {
		switch {
		case errors.Is(err, ErrEnrollmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		case errors.Is(err, ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		case errors.Is(err, ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		case errors.Is(err, ErrActivityFull):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Activity is full"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enrollment"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete godoc
// @Summary      Delete enrollment
// @Tags         enrollments
// @Security     BearerAuth
// @Produce      json
// @Param        enrollmentID  path      int  true  "Enrollment ID"
// @Success      200           {object}  api.SuccessResponse
// @Failure      404           {object}  gin.H
// @Router       /enrollments/{enrollmentID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("enrollmentID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid enrollment ID"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, ErrEnrollmentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete enrollment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
