package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	"github.com/noah-isme/ski-station-api/pkg/response"
)

// SubscriptionFilterParam names the first path segment after /subscription/all.
// The router requires one wildcard name per position, so it carries the plan type
// on the one-segment route and the lower date bound on the two-segment route.
const SubscriptionFilterParam = "filter"

type subscriptionService interface {
	Add(ctx context.Context, req dto.SubscriptionRequest) (*models.Subscription, error)
	Update(ctx context.Context, req dto.SubscriptionRequest) (*models.Subscription, error)
	Get(ctx context.Context, numSub int64) (*models.Subscription, bool, error)
	List(ctx context.Context) ([]models.Subscription, error)
	ListByType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Subscription, error)
	ListByStartDateRange(ctx context.Context, from, to models.Date) ([]models.Subscription, error)
}

// SubscriptionHandler exposes subscription endpoints.
type SubscriptionHandler struct {
	service subscriptionService
}

// NewSubscriptionHandler builds a new handler.
func NewSubscriptionHandler(service subscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

// Add godoc
// @Summary Create a subscription
// @Description endDate is derived from startDate and typeSub; any client value is ignored.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param payload body dto.SubscriptionRequest true "Subscription payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /subscription/add [post]
func (h *SubscriptionHandler) Add(c *gin.Context) {
	var req dto.SubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sub)
}

// Update godoc
// @Summary Replace a subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param payload body dto.SubscriptionRequest true "Subscription payload including numSub"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /subscription/update [put]
func (h *SubscriptionHandler) Update(c *gin.Context) {
	var req dto.SubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}
	sub, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sub)
}

// Get godoc
// @Summary Get a subscription
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /subscription/get/{id} [get]
func (h *SubscriptionHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	sub, found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		notFound(c, "subscription")
		return
	}
	response.OK(c, sub)
}

// List godoc
// @Summary List subscriptions
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /subscription/all [get]
func (h *SubscriptionHandler) List(c *gin.Context) {
	subs, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, subs, listMeta(c, len(subs)))
}

// ListByType godoc
// @Summary List subscriptions of a plan type ordered by start date
// @Tags Subscriptions
// @Produce json
// @Param typeSub path string true "MONTHLY, SEMESTRIEL or ANNUAL"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /subscription/all/{typeSub} [get]
func (h *SubscriptionHandler) ListByType(c *gin.Context) {
	typeSub := models.TypeSubscription(c.Param(SubscriptionFilterParam))
	subs, err := h.service.ListByType(c.Request.Context(), typeSub)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, subs)
}

// ListByStartDateRange godoc
// @Summary List subscriptions starting between two dates, inclusive
// @Tags Subscriptions
// @Produce json
// @Param date1 path string true "Lower bound (YYYY-MM-DD)"
// @Param date2 path string true "Upper bound (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /subscription/all/{date1}/{date2} [get]
func (h *SubscriptionHandler) ListByStartDateRange(c *gin.Context) {
	from, ok := dateParam(c, SubscriptionFilterParam)
	if !ok {
		return
	}
	to, ok := dateParam(c, "date2")
	if !ok {
		return
	}
	subs, err := h.service.ListByStartDateRange(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, subs)
}
