package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/middleware"
	"github.com/noah-isme/ski-station-api/internal/models"
	"github.com/noah-isme/ski-station-api/pkg/response"
)

type courseService interface {
	Add(ctx context.Context, req dto.CourseRequest) (*models.Course, error)
	Update(ctx context.Context, req dto.CourseRequest) (*models.Course, error)
	Get(ctx context.Context, numCourse int64) (*models.Course, bool, error)
	List(ctx context.Context) ([]models.Course, bool, error)
}

// CourseHandler exposes course catalogue endpoints.
type CourseHandler struct {
	service courseService
}

// NewCourseHandler builds a new handler.
func NewCourseHandler(service courseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Add godoc
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /course/add [post]
func (h *CourseHandler) Add(c *gin.Context) {
	var req dto.CourseRequest
	if !bindJSON(c, &req) {
		return
	}
	course, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Update godoc
// @Summary Replace a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body dto.CourseRequest true "Course payload including numCourse"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /course/update [put]
func (h *CourseHandler) Update(c *gin.Context) {
	var req dto.CourseRequest
	if !bindJSON(c, &req) {
		return
	}
	course, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Get godoc
// @Summary Get a course
// @Tags Courses
// @Produce json
// @Param id path int true "Course number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /course/get/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	course, found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !found {
		notFound(c, "course")
		return
	}
	response.OK(c, course)
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /course/all [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, hit, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, hit)
	response.OK(c, courses, listMeta(c, len(courses)))
}
