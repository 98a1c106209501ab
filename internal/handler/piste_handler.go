package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/middleware"
	"github.com/noah-isme/ski-station-api/internal/models"
	"github.com/noah-isme/ski-station-api/pkg/response"
)

type pisteService interface {
	Add(ctx context.Context, req dto.PisteRequest) (*models.Piste, error)
	Get(ctx context.Context, numPiste int64) (*models.Piste, bool, error)
	List(ctx context.Context) ([]models.Piste, bool, error)
	Delete(ctx context.Context, numPiste int64) error
}

// PisteHandler exposes piste endpoints.
type PisteHandler struct {
	service pisteService
}

func NewPisteHandler(service pisteService) *PisteHandler {
	return &PisteHandler{service: service}
}

// Add godoc
// @Summary Create a piste
// @Tags Pistes
// @Accept json
// @Produce json
// @Param payload body dto.PisteRequest true "Piste payload"
// @Success 201 {object} response.Envelope
// @Router /piste/add [post]
func (h *PisteHandler) Add(c *gin.Context) {
	var req dto.PisteRequest
	if !bindJSON(c, &req) {
		return
	}
	piste, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, piste)
}

// Get godoc
// @Summary Get a piste
// @Tags Pistes
// @Produce json
// @Param id path int true "Piste number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /piste/get/{id} [get]
func (h *PisteHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	piste, found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		notFound(c, "piste")
		return
	}
	response.OK(c, piste)
}

// List godoc
// @Summary List pistes
// @Tags Pistes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /piste/all [get]
func (h *PisteHandler) List(c *gin.Context) {
	pistes, hit, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.OK(c, pistes, listMeta(c, len(pistes)))
}

// Delete godoc
// @Summary Delete a piste
// @Tags Pistes
// @Param id path int true "Piste number"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /piste/delete/{id} [delete]
func (h *PisteHandler) Delete(c *gin.Context) {
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
