package member

import (
	"net/http"
	"strconv"

	"github.com/dachraoui-ui/sport-club-mang/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo *Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{repo: NewRepository(db)}
}

// List godoc
// @Summary      List members
// @Description  Lists members with optional search on nom/prenom, exact id lookup and age sorting.
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        search  query  string  false  "Substring match on nom or prenom"
// @Param        id      query  int     false  "Exact member id"
// @Param        sort    query  string  false  "age or -age"
// @Success      200  {array}   Member
// @Failure      500  {object}  gin.H
// @Router       /members [get]
func (h *Handler) List(c *gin.Context) {
	search := c.Query("search")
	sort := c.Query("sort")

	searchID := 0
	if idStr := c.Query("id"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id parameter"})
			return
		}
		searchID = id
	}

	members, err := h.repo.List(search, searchID, sort)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// Create godoc
// @Summary      Create member
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateMemberRequest  true  "Member data"
// @Success      201      {object}  api.CreatedResponse
// @Failure      400      {object}  gin.H
// @Failure      409      {object}  gin.H
// @Router       /members [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ValidPhone(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le numéro de téléphone doit contenir exactement 8 chiffres"})
		return
	}

	if req.Email != nil && *req.Email != "" {
		exists, err := h.repo.EmailExists(*req.Email, 0)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if exists {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	m, err := h.repo.Create(req.LastName, req.FirstName, req.Age, req.Phone, req.Email, active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create member"})
		return
	}

	metrics.RecordMemberCreated()
	c.JSON(http.StatusCreated, gin.H{"id": m.ID, "success": true})
}

// Get godoc
// @Summary      Get member
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  Member
// @Failure      404       {object}  gin.H
// @Router       /members/{memberID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	m, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, m)
}

// Update godoc
// @Summary      Update member
// @Description  Partial update; only supplied fields change. date_inscription is immutable.
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberID  path      int                  true  "Member ID"
// @Param        request   body      UpdateMemberRequest  true  "Fields to update"
// @Success      200       {object}  api.SuccessResponse
// @Failure      400       {object}  gin.H
// @Failure      404       {object}  gin.H
// @Failure      409       {object}  gin.H
// @Router       /members/{memberID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	m, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.LastName != nil {
		m.LastName = *req.LastName
	}
	if req.FirstName != nil {
		m.FirstName = *req.FirstName
	}
	if req.Age != nil {
		m.Age = *req.Age
	}
	if req.Phone != nil {
		if !ValidPhone(*req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Le numéro de téléphone doit contenir exactement 8 chiffres"})
			return
		}
		m.Phone = *req.Phone
	}
	if req.Email != nil {
		if *req.Email != "" {
			exists, err := h.repo.EmailExists(*req.Email, m.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
				return
			}
			if exists {
				c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
				return
			}
		}
		m.Email = req.Email
	}
	if req.Active != nil {
		m.Active = *req.Active
	}

	if err := h.repo.Update(m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete godoc
// @Summary      Delete member
// @Description  Hard delete; enrollments and the subscription cascade with it.
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberID  path      int  true  "Member ID"
// @Success      200       {object}  api.SuccessResponse
// @Failure      404       {object}  gin.H
// @Router       /members/{memberID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if _, err := h.repo.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
