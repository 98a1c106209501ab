package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	"github.com/noah-isme/ski-station-api/pkg/response"
)

type instructorService interface {
	Add(ctx context.Context, req dto.InstructorRequest) (*models.Instructor, error)
	AddAndAssignToCourse(ctx context.Context, numCourse int64, req dto.InstructorRequest) (*models.Instructor, error)
	Update(ctx context.Context, req dto.InstructorRequest) (*models.Instructor, error)
	Get(ctx context.Context, numInstructor int64) (*models.Instructor, bool, error)
	List(ctx context.Context) ([]models.Instructor, error)
}

// InstructorHandler exposes instructor endpoints.
type InstructorHandler struct {
	service instructorService
}

// NewInstructorHandler builds a new handler.
func NewInstructorHandler(service instructorService) *InstructorHandler {
	return &InstructorHandler{service: service}
}

// Add godoc
// @Summary Create an instructor
// @Tags Instructors
// @Accept json
// @Produce json
// @Param payload body dto.InstructorRequest true "Instructor payload"
// @Success 201 {object} response.Envelope
// @Router /instructor/add [post]
func (h *InstructorHandler) Add(c *gin.Context) {
	var req dto.InstructorRequest
	if !bindJSON(c, &req) {
		return
	}
	instructor, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, instructor)
}

// AddAndAssignToCourse godoc
// @Summary Create an instructor teaching an existing course
// @Tags Instructors
// @Accept json
// @Produce json
// @Param numCourse path int true "Course number"
// @Param payload body dto.InstructorRequest true "Instructor payload"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /instructor/addAndAssignToCourse/{numCourse} [put]
func (h *InstructorHandler) AddAndAssignToCourse(c *gin.Context) {
	numCourse, ok := int64Param(c, "numCourse")
	if !ok {
		return
	}
	var req dto.InstructorRequest
	if !bindJSON(c, &req) {
		return
	}
	instructor, err := h.service.AddAndAssignToCourse(c.Request.Context(), numCourse, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, instructor)
}

// Update godoc
// @Summary Replace an instructor
// @Tags Instructors
// @Accept json
// @Produce json
// @Param payload body dto.InstructorRequest true "Instructor payload including numInstructor"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /instructor/update [put]
func (h *InstructorHandler) Update(c *gin.Context) {
	var req dto.InstructorRequest
	if !bindJSON(c, &req) {
		return
	}
	instructor, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, instructor)
}

// Get godoc
// @Summary Get an instructor
// @Tags Instructors
// @Produce json
// @Param id path int true "Instructor number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /instructor/get/{id} [get]
func (h *InstructorHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	instructor, found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		notFound(c, "instructor")
		return
	}
	response.OK(c, instructor)
}

// List godoc
// @Summary List instructors
// @Tags Instructors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /instructor/all [get]
func (h *InstructorHandler) List(c *gin.Context) {
	instructors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, instructors)
}
