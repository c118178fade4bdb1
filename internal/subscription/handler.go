package subscription

import (
	"net/http"
	"strconv"

	"github.com/dachraoui-ui/sport-club-mang/internal/api"
	"github.com/dachraoui-ui/sport-club-mang/internal/member"
	"github.com/dachraoui-ui/sport-club-mang/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo       *Repository
	memberRepo *member.Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		repo:       NewRepository(db),
		memberRepo: member.NewRepository(db),
	}
}

// List godoc
// @Summary      List subscriptions
// @Description  Lists subscriptions with optional member_id and actif filters.
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        member_id  query  int     false  "Filter by member"
// @Param        actif      query  bool    false  "Filter by active flag"
// @Success      200  {array}   SubscriptionWithMember
// @Failure      500  {object}  gin.H
// @Router       /subscriptions [get]
func (h *Handler) List(c *gin.Context) {
	memberID := 0
	if s := c.Query("member_id"); s != "" {
		id, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member_id parameter"})
			return
		}
		memberID = id
	}

	var active *bool
	if s := c.Query("actif"); s != "" {
		val := s == "true"
		active = &val
	}

	subs, err := h.repo.List(memberID, active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscriptions"})
		return
	}

	out := make([]subscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, toResponse(s))
	}

	c.JSON(http.StatusOK, out)
}

// Create godoc
// @Summary      Create subscription
// @Description  One subscription per member; date_fin is derived from date_debut and the plan type.
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSubscriptionRequest  true  "Subscription data"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  gin.H
// @Failure      404      {object}  gin.H
// @Router       /subscriptions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "membre_id, type_abonnement, and date_debut are required"})
		return
	}

	if _, err := h.memberRepo.GetByID(req.MemberID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Member not found"})
		return
	}

	exists, err := h.repo.MemberHasSubscription(req.MemberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Member already has a subscription. Use PUT to update."})
		return
	}

	planType := PlanType(req.Type)
	if !planType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type_abonnement. Must be one of: MONTHLY, 3_MONTHS, 6_MONTHS, ANNUAL"})
		return
	}

	start, err := api.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_debut format. Use YYYY-MM-DD"})
		return
	}

	end, err := planType.EndDate(start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type_abonnement"})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	s, err := h.repo.Create(req.MemberID, planType, start, end, active)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}

	metrics.RecordSubscription(string(planType))
	c.JSON(http.StatusCreated, gin.H{
		"id":       s.ID,
		"date_fin": s.EndDate.String(),
	})
}

// Get godoc
// @Summary      Get subscription
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        subscriptionID  path      int  true  "Subscription ID"
// @Success      200             {object}  SubscriptionWithMember
// @Failure      404             {object}  gin.H
// @Router       /subscriptions/{subscriptionID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("subscriptionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID"})
		return
	}

	s, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	c.JSON(http.StatusOK, toResponse(*s))
}

// Update godoc
// @Summary      Update subscription
// @Description  Partial update; date_fin is always recomputed from the stored plan and start date.
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        subscriptionID  path      int                        true  "Subscription ID"
// @Param        request         body      UpdateSubscriptionRequest  true  "Fields to update"
// @Success      200             {object}  map[string]interface{}
// @Failure      400             {object}  gin.H
// @Failure      404             {object}  gin.H
// @Router       /subscriptions/{subscriptionID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("subscriptionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID"})
		return
	}

	existing, err := h.repo.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	s := existing.Subscription

	if req.Type != nil {
		planType := PlanType(*req.Type)
		if !planType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type_abonnement. Must be one of: MONTHLY, 3_MONTHS, 6_MONTHS, ANNUAL"})
			return
		}
		s.Type = planType
	}

	if req.StartDate != nil {
		start, err := api.ParseDate(*req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date_debut format. Use YYYY-MM-DD"})
			return
		}
		s.StartDate = start
	}

	if req.Active != nil {
		s.Active = *req.Active
	}

	end, err := s.Type.EndDate(s.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type_abonnement"})
		return
	}
	s.EndDate = end

	if err := h.repo.Update(&s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"date_fin": s.EndDate.String(),
	})
}

// Delete godoc
// @Summary      Delete subscription
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        subscriptionID  path      int  true  "Subscription ID"
// @Success      200             {object}  api.SuccessResponse
// @Failure      404             {object}  gin.H
// @Router       /subscriptions/{subscriptionID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("subscriptionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subscription ID"})
		return
	}

	if _, err := h.repo.GetByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscription"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
