package activity

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dachraoui-ui/sport-club-mang/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo   *Repository
	photos *PhotoStore
}

func NewHandler(db *sqlx.DB, photos *PhotoStore) *Handler {
	return &Handler{
		repo:   NewRepository(db),
		photos: photos,
	}
}

// List godoc
// @Summary      List activities
// @Description  Lists activities with optional search on nom_act and capacite sorting.
// @Tags         activities
// @Security     BearerAuth
// @Produce      json
// @Param        search  query  string  false  "Substring match on nom_act"
// @Param        sort    query  string  false  "capacite or -capacite"
// @Success      200  {array}   Activity
// @Failure      500  {object}  gin.H
// @Router       /activities [get]
func (h *Handler) List(c *gin.Context) {
	activities, err := h.repo.List(c.Query("search"), c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activities"})
		return
	}

	c.JSON(http.StatusOK, activities)
}

// Create godoc
// @Summary      Create activity
// @Description  Accepts JSON or multipart form data; multipart may carry a photo file.
// @Tags         activities
// @Security     BearerAuth
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        request  body      CreateActivityRequest  true  "Activity data"
// @Success      201      {object}  api.CreatedResponse
// @Failure      400      {object}  gin.H
// @Router       /activities [post]
func (h *Handler) Create(c *gin.Context) {
	if strings.Contains(c.ContentType(), "application/json") {
		h.createFromJSON(c)
		return
	}
	h.createFromForm(c)
}

func (h *Handler) createFromJSON(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	exists, err := h.repo.CodeExists(req.Code, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Le code activité '%s' existe déjà", req.Code)})
		return
	}

	a, err := h.repo.Create(req.Code, req.Name, req.MonthlyFee, req.Capacity, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": a.ID, "success": true})
}

func (h *Handler) createFromForm(c *gin.Context) {
	code := c.PostForm("code_act")
	name := c.PostForm("nom_act")
	if code == "" || name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code_act and nom_act are required"})
		return
	}

	fee, err := strconv.ParseFloat(c.PostForm("tarif_mensuel"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tarif_mensuel"})
		return
	}

	capacity, err := strconv.Atoi(c.PostForm("capacite"))
	if err != nil || capacity < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid capacite"})
		return
	}

	exists, err := h.repo.CodeExists(code, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Le code activité '%s' existe déjà", code)})
		return
	}

	var photoURL *string
	if file, err := c.FormFile("photo"); err == nil {
		url, err := h.photos.Save(c, file)
		if err != nil {
			logger.Errorf("Failed to store activity photo: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
			return
		}
		photoURL = &url
	}

	a, err := h.repo.Create(code, name, fee, capacity, photoURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": a.ID, "success": true})
}

// Get godoc
// @Summary      Get activity
// @Tags         activities
// @Security     BearerAuth
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200         {object}  Activity
// @Failure      404         {object}  gin.H
// @Router       /activities/{activityID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("activityID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	a, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, a)
}

// Update godoc
// @Summary      Update activity
// @Description  Partial update via JSON or multipart form; a new photo file replaces the old reference.
// @Tags         activities
// @Security     BearerAuth
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        activityID  path      int                    true  "Activity ID"
// @Param        request     body      UpdateActivityRequest  true  "Fields to update"
// @Success      200         {object}  api.SuccessResponse
// @Failure      400         {object}  gin.H
// @Failure      404         {object}  gin.H
// @Router       /activities/{activityID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("activityID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	a, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if strings.Contains(c.ContentType(), "application/json") {
		var req UpdateActivityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
			return
		}

		if req.Code != nil && *req.Code != a.Code {
			exists, err := h.repo.CodeExists(*req.Code, a.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
				return
			}
			if exists {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Le code activité '%s' existe déjà", *req.Code)})
				return
			}
			a.Code = *req.Code
		}
		if req.Name != nil {
			a.Name = *req.Name
		}
		if req.MonthlyFee != nil {
			a.MonthlyFee = *req.MonthlyFee
		}
		if req.Capacity != nil {
			a.Capacity = *req.Capacity
		}
	} else {
		if code := c.PostForm("code_act"); code != "" && code != a.Code {
			exists, err := h.repo.CodeExists(code, a.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
				return
			}
			if exists {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Le code activité '%s' existe déjà", code)})
				return
			}
			a.Code = code
		}
		if name := c.PostForm("nom_act"); name != "" {
			a.Name = name
		}
		if feeStr := c.PostForm("tarif_mensuel"); feeStr != "" {
			fee, err := strconv.ParseFloat(feeStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tarif_mensuel"})
				return
			}
			a.MonthlyFee = fee
		}
		if capStr := c.PostForm("capacite"); capStr != "" {
			capacity, err := strconv.Atoi(capStr)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid capacite"})
				return
			}
			a.Capacity = capacity
		}
		if file, err := c.FormFile("photo"); err == nil {
			url, err := h.photos.Save(c, file)
			if err != nil {
				logger.Errorf("Failed to store activity photo: %v", err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
				return
			}
			a.Photo = &url
		}
	}

	if err := h.repo.Update(a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete godoc
// @Summary      Delete activity
// @Description  Hard delete; enrollments and class sessions cascade with it.
// @Tags         activities
// @Security     BearerAuth
// @Produce      json
// @Param        activityID  path      int  true  "Activity ID"
// @Success      200         {object}  api.SuccessResponse
// @Failure      404         {object}  gin.H
// @Router       /activities/{activityID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("activityID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity ID"})
		return
	}

	if _, err := h.repo.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
