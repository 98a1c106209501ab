package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	"github.com/noah-isme/ski-station-api/pkg/response"
)

type skierService interface {
	Add(ctx context.Context, req dto.SkierRequest) (*models.Skier, error)
	AddAndAssignToCourse(ctx context.Context, numCourse int64, req dto.SkierRequest) (*dto.SkierWithRejections, error)
	AssignToSubscription(ctx context.Context, numSkier, numSub int64) (*models.Skier, error)
	AssignToPiste(ctx context.Context, numSkier, numPiste int64) (*models.Skier, error)
	ListBySubscriptionType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Skier, error)
	Get(ctx context.Context, numSkier int64) (*models.Skier, bool, error)
	List(ctx context.Context) ([]models.Skier, error)
	Delete(ctx context.Context, numSkier int64) error
}

// SkierHandler exposes skier endpoints.
type SkierHandler struct {
	service skierService
}

// NewSkierHandler builds a new handler.
func NewSkierHandler(service skierService) *SkierHandler {
	return &SkierHandler{service: service}
}

// Add godoc
// @Summary Create a skier
// @Description Creates the skier together with an optional embedded subscription whose end date is derived from its type.
// @Tags Skiers
// @Accept json
// @Produce json
// @Param payload body dto.SkierRequest true "Skier payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /skier/add [post]
func (h *SkierHandler) Add(c *gin.Context) {
	var req dto.SkierRequest
	if !bindJSON(c, &req) {
		return
	}
	skier, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, skier)
}

// AddAndAssignToCourse godoc
// @Summary Create a skier and book the listed weeks into a course
// @Description Weeks refused by the eligibility rules are returned under rejected; they do not fail the request.
// @Tags Skiers
// @Accept json
// @Produce json
// @Param numCourse path int true "Course number"
// @Param payload body dto.SkierRequest true "Skier payload with registrations"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skier/addAndAssign/{numCourse} [post]
func (h *SkierHandler) AddAndAssignToCourse(c *gin.Context) {
	numCourse, ok := int64Param(c, "numCourse")
	if !ok {
		return
	}
	var req dto.SkierRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.AddAndAssignToCourse(c.Request.Context(), numCourse, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// AssignToSubscription godoc
// @Summary Link a skier to an existing subscription
// @Tags Skiers
// @Produce json
// @Param numSkier path int true "Skier number"
// @Param numSub path int true "Subscription number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skier/assignToSub/{numSkier}/{numSub} [put]
func (h *SkierHandler) AssignToSubscription(c *gin.Context) {
	numSkier, ok := int64Param(c, "numSkier")
	if !ok {
		return
	}
	numSub, ok := int64Param(c, "numSub")
	if !ok {
		return
	}
	skier, err := h.service.AssignToSubscription(c.Request.Context(), numSkier, numSub)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, skier)
}

// AssignToPiste godoc
// @Summary Add a piste to a skier
// @Tags Skiers
// @Produce json
// @Param numSkier path int true "Skier number"
// @Param numPiste path int true "Piste number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skier/assignToPiste/{numSkier}/{numPiste} [put]
func (h *SkierHandler) AssignToPiste(c *gin.Context) {
	numSkier, ok := int64Param(c, "numSkier")
	if !ok {
		return
	}
	numPiste, ok := int64Param(c, "numPiste")
	if !ok {
		return
	}
	skier, err := h.service.AssignToPiste(c.Request.Context(), numSkier, numPiste)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, skier)
}

// ListBySubscriptionType godoc
// @Summary List skiers by subscription type
// @Tags Skiers
// @Produce json
// @Param typeSubscription query string true "MONTHLY, SEMESTRIEL or ANNUAL"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /skier/getSkiersBySubscription [get]
func (h *SkierHandler) ListBySubscriptionType(c *gin.Context) {
	typeSub := models.TypeSubscription(c.Query("typeSubscription"))
	skiers, err := h.service.ListBySubscriptionType(c.Request.Context(), typeSub)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, skiers)
}

// Get godoc
// @Summary Get a skier
// @Tags Skiers
// @Produce json
// @Param id path int true "Skier number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /skier/get/{id} [get]
func (h *SkierHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	skier, found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		notFound(c, "skier")
		return
	}
	response.OK(c, skier)
}

// List godoc
// @Summary List skiers
// @Tags Skiers
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /skier/all [get]
func (h *SkierHandler) List(c *gin.Context) {
	skiers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, skiers, listMeta(c, len(skiers)))
}

// Delete godoc
// @Summary Delete a skier
// @Tags Skiers
// @Param id path int true "Skier number"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /skier/delete/{id} [delete]
func (h *SkierHandler) Delete(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
