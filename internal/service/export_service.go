package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
	"github.com/noah-isme/ski-station-api/pkg/export"
)

type rosterRepository interface {
	ListRosterByCourse(ctx context.Context, numCourse int64) ([]models.RosterEntry, error)
}

type documentRenderer interface {
	Render(format export.Format, base string, data export.Dataset) (*export.Document, error)
}

var rosterHeaders = []string{"Week", "Registration", "Skier", "First name", "Last name", "City"}

// ExportService renders course rosters as downloadable documents.
type ExportService struct {
	courses  courseReader
	roster   rosterRepository
	renderer documentRenderer
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(courses courseReader, roster rosterRepository, renderer documentRenderer, logger *zap.Logger) *ExportService {
	if renderer == nil {
		renderer = export.NewRenderer()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{courses: courses, roster: roster, renderer: renderer, logger: logger}
}

// CourseRoster renders the registrations of a course in the requested format (csv or pdf).
func (s *ExportService) CourseRoster(ctx context.Context, numCourse int64, rawFormat string) (*export.Document, error) {
	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		return nil, validationError(err, "format must be csv or pdf")
	}
	course, err := s.courses.FindByID(ctx, numCourse)
	if err != nil {
		return nil, lookupError(err, "course")
	}
	entries, err := s.roster.ListRosterByCourse(ctx, numCourse)
	if err != nil {
		return nil, internalError(err, "failed to load course roster")
	}

	doc, err := s.renderer.Render(format, fmt.Sprintf("course-%d-roster", numCourse), rosterDataset(course, entries))
	if err != nil {
		s.logger.Error("render roster failed", zap.Int64("num_course", numCourse), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster")
	}
	return doc, nil
}

func rosterDataset(course *models.Course, entries []models.RosterEntry) export.Dataset {
	rows := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, map[string]string{
			"Week":         strconv.Itoa(e.NumWeek),
			"Registration": strconv.FormatInt(e.NumRegistration, 10),
			"Skier":        strconv.FormatInt(e.NumSkier, 10),
			"First name":   e.FirstName,
			"Last name":    e.LastName,
			"City":         e.City,
		})
	}
	return export.Dataset{
		Title: fmt.Sprintf("Course %d - %s %s, level %d",
			course.NumCourse, strings.ReplaceAll(string(course.TypeCourse), "_", " "), course.Support, course.Level),
		Headers: rosterHeaders,
		Rows:    rows,
	}
}
