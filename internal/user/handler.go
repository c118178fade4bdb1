package user

import (
	"net/http"
	"time"

	"github.com/dachraoui-ui/sport-club-mang/internal/auth"
	"github.com/dachraoui-ui/sport-club-mang/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo      *Repository
	blacklist *auth.Blacklist
	jwtSecret string
}

func NewHandler(db *sqlx.DB, blacklist *auth.Blacklist, jwtSecret string) *Handler {
	return &Handler{
		repo:      NewRepository(db),
		blacklist: blacklist,
		jwtSecret: jwtSecret,
	}
}

// Login godoc
// @Summary      Admin login
// @Description  Authenticates a staff user by username and password, returns access & refresh tokens.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Admin credentials"
// @Success      200      {object}  LoginResponse
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.repo.FindByUsername(req.Username)
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) || !user.IsStaff {
		metrics.RecordLogin("failure")
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error":   "Invalid credentials or not an admin",
		})
		return
	}

	accessToken, refreshToken, err := auth.GenerateTokens(user.ID, user.Username, user.IsStaff, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate tokens"})
		return
	}

	metrics.RecordLogin("success")
	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		User:    *user,
		Tokens: TokenPair{
			Access:  accessToken,
			Refresh: refreshToken,
		},
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Revokes the presented access token until its natural expiry.
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  gin.H
// @Router       /auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	token, _ := c.Get("token")
	expiresAt, _ := c.Get("token_expires_at")

	tokenStr, ok := token.(string)
	exp, okExp := expiresAt.(time.Time)
	if ok && okExp && h.blacklist != nil {
		_ = h.blacklist.Revoke(c.Request.Context(), tokenStr, exp)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetMe godoc
// @Summary      Get current user
// @Description  Returns profile of the authenticated user.
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  User
// @Failure      401  {object}  gin.H
// @Failure      404  {object}  gin.H
// @Router       /auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.repo.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Returns a new access token using a valid refresh token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]string  true  "Refresh token payload"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  gin.H
// @Failure      401      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /auth/refresh [post]
func (h *Handler) RefreshToken(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refresh is required"})
		return
	}

	newAccessToken, claims, err := auth.RefreshAccessToken(req.RefreshToken, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}

	user, err := h.repo.FindByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access": newAccessToken,
		"user":   user,
	})
}
