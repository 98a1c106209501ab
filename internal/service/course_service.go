package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

type courseRepository interface {
	Create(ctx context.Context, c *models.Course) error
	Update(ctx context.Context, c *models.Course) error
	FindByID(ctx context.Context, numCourse int64) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
}

// CourseService manages lesson offers. The full listing is served from cache when enabled.
type CourseService struct {
	repo      courseRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs CourseService. cache may be nil.
func NewCourseService(repo courseRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseService{repo: repo, cache: cache, validator: validate, logger: logger}
}

func (s *CourseService) Add(ctx context.Context, req dto.CourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid course payload")
	}
	course := courseFromRequest(req)
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, internalError(err, "failed to create course")
	}
	s.cache.Invalidate(ctx, cacheKeyCourses)
	return course, nil
}

// Update rewrites an existing course.
func (s *CourseService) Update(ctx context.Context, req dto.CourseRequest) (*models.Course, error) {
	if req.NumCourse <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "num_course is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid course payload")
	}
	course := courseFromRequest(req)
	course.NumCourse = req.NumCourse
	if err := s.repo.Update(ctx, course); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
		}
		return nil, internalError(err, "failed to update course")
	}
	s.cache.Invalidate(ctx, cacheKeyCourses)
	return course, nil
}

func courseFromRequest(req dto.CourseRequest) *models.Course {
	return &models.Course{
		Level:      req.Level,
		TypeCourse: req.TypeCourse,
		Support:    req.Support,
		Price:      req.Price,
		TimeSlot:   req.TimeSlot,
	}
}

// Get returns the course and whether it exists.
func (s *CourseService) Get(ctx context.Context, numCourse int64) (*models.Course, bool, error) {
	course, err := s.repo.FindByID(ctx, numCourse)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, internalError(err, "failed to load course")
	}
	return course, true, nil
}

// List returns every course and whether the result came from cache.
func (s *CourseService) List(ctx context.Context) ([]models.Course, bool, error) {
	var cached []models.Course
	if s.cache.Get(ctx, cacheKeyCourses, &cached) {
		return cached, true, nil
	}
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, false, internalError(err, "failed to list courses")
	}
	s.cache.Set(ctx, cacheKeyCourses, courses)
	return courses, false, nil
}
