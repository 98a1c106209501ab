package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	"github.com/noah-isme/ski-station-api/pkg/export"
	"github.com/noah-isme/ski-station-api/pkg/response"
)

type registrationService interface {
	TryRegister(ctx context.Context, numSkier, numCourse int64, numWeek int) (*models.RegistrationOutcome, error)
	AddAndAssignToSkier(ctx context.Context, numSkier int64, req dto.RegistrationRequest) (*models.Registration, error)
	AssignToCourse(ctx context.Context, numRegistration, numCourse int64) (*models.RegistrationOutcome, error)
	WeeksByInstructorAndSupport(ctx context.Context, numInstructor int64, support models.Support) ([]int, error)
}

type rosterExporter interface {
	CourseRoster(ctx context.Context, numCourse int64, rawFormat string) (*export.Document, error)
}

// RegistrationHandler exposes registration endpoints. Eligibility refusals are
// answered with 409 and the rejection code, never with a stored registration.
type RegistrationHandler struct {
	service  registrationService
	exporter rosterExporter
}

// NewRegistrationHandler builds a new handler.
func NewRegistrationHandler(service registrationService, exporter rosterExporter) *RegistrationHandler {
	return &RegistrationHandler{service: service, exporter: exporter}
}

// AddAndAssignToSkier godoc
// @Summary Create a registration for a skier without a course
// @Tags Registrations
// @Accept json
// @Produce json
// @Param numSkieur path int true "Skier number"
// @Param payload body dto.RegistrationRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /registration/addAndAssignToSkier/{numSkieur} [put]
func (h *RegistrationHandler) AddAndAssignToSkier(c *gin.Context) {
	numSkier, ok := int64Param(c, "numSkieur")
	if !ok {
		return
	}
	var req dto.RegistrationRequest
	if !bindJSON(c, &req) {
		return
	}
	registration, err := h.service.AddAndAssignToSkier(c.Request.Context(), numSkier, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, registration)
}

// AssignToCourse godoc
// @Summary Bind an existing registration to a course
// @Description The eligibility rules are checked against the target course before binding.
// @Tags Registrations
// @Produce json
// @Param numRegis path int true "Registration number"
// @Param numCourse path int true "Course number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /registration/assignToCourse/{numRegis}/{numCourse} [put]
func (h *RegistrationHandler) AssignToCourse(c *gin.Context) {
	numRegistration, ok := int64Param(c, "numRegis")
	if !ok {
		return
	}
	numCourse, ok := int64Param(c, "numCourse")
	if !ok {
		return
	}
	outcome, err := h.service.AssignToCourse(c.Request.Context(), numRegistration, numCourse)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !outcome.Accepted() {
		rejection(c, outcome.Rejection)
		return
	}
	response.OK(c, outcome.Registration)
}

// AddAndAssignToSkierAndCourse godoc
// @Summary Register a skier to a course for a week
// @Description Applies the duplicate and capacity rules atomically with the insert.
// @Tags Registrations
// @Accept json
// @Produce json
// @Param numSkieur path int true "Skier number"
// @Param numCourse path int true "Course number"
// @Param payload body dto.RegistrationRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /registration/addAndAssignToSkierAndCourse/{numSkieur}/{numCourse} [put]
func (h *RegistrationHandler) AddAndAssignToSkierAndCourse(c *gin.Context) {
	numSkier, ok := int64Param(c, "numSkieur")
	if !ok {
		return
	}
	numCourse, ok := int64Param(c, "numCourse")
	if !ok {
		return
	}
	var req dto.RegistrationRequest
	if !bindJSON(c, &req) {
		return
	}
	outcome, err := h.service.TryRegister(c.Request.Context(), numSkier, numCourse, req.NumWeek)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !outcome.Accepted() {
		rejection(c, outcome.Rejection)
		return
	}
	response.Created(c, outcome.Registration)
}

// WeeksByInstructorAndSupport godoc
// @Summary List weeks taught by an instructor for a support
// @Tags Registrations
// @Produce json
// @Param numInstructor path int true "Instructor number"
// @Param support path string true "SKI or SNOWBOARD"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /registration/numWeeks/{numInstructor}/{support} [get]
func (h *RegistrationHandler) WeeksByInstructorAndSupport(c *gin.Context) {
	numInstructor, ok := int64Param(c, "numInstructor")
	if !ok {
		return
	}
	weeks, err := h.service.WeeksByInstructorAndSupport(c.Request.Context(), numInstructor, models.Support(c.Param("support")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, weeks)
}

// ExportRoster godoc
// @Summary Export the registration roster of a course
// @Tags Registrations
// @Produce text/csv
// @Produce application/pdf
// @Param numCourse path int true "Course number"
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /registration/export/{numCourse} [get]
func (h *RegistrationHandler) ExportRoster(c *gin.Context) {
	numCourse, ok := int64Param(c, "numCourse")
	if !ok {
		return
	}
	doc, err := h.exporter.CourseRoster(c.Request.Context(), numCourse, c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
