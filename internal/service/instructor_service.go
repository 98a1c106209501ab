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

type instructorRepository interface {
	Create(ctx context.Context, i *models.Instructor) error
	Update(ctx context.Context, i *models.Instructor) error
	FindByID(ctx context.Context, numInstructor int64) (*models.Instructor, error)
	List(ctx context.Context) ([]models.Instructor, error)
}

// InstructorService manages instructors and their course assignments.
type InstructorService struct {
	repo      instructorRepository
	courses   courseReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInstructorService constructs InstructorService.
func NewInstructorService(repo instructorRepository, courses courseReader, validate *validator.Validate, logger *zap.Logger) *InstructorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstructorService{repo: repo, courses: courses, validator: validate, logger: logger}
}

func (s *InstructorService) Add(ctx context.Context, req dto.InstructorRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid instructor payload")
	}
	instructor := instructorFromRequest(req)
	if err := s.repo.Create(ctx, instructor); err != nil {
		return nil, internalError(err, "failed to create instructor")
	}
	return instructor, nil
}

// AddAndAssignToCourse creates the instructor already teaching an existing course.
func (s *InstructorService) AddAndAssignToCourse(ctx context.Context, numCourse int64, req dto.InstructorRequest) (*models.Instructor, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid instructor payload")
	}
	course, err := s.courses.FindByID(ctx, numCourse)
	if err != nil {
		return nil, lookupError(err, "course")
	}
	instructor := instructorFromRequest(req)
	instructor.AssignCourse(*course)
	if err := s.repo.Create(ctx, instructor); err != nil {
		return nil, internalError(err, "failed to create instructor")
	}
	s.logger.Info("instructor assigned to course",
		zap.Int64("num_instructor", instructor.NumInstructor),
		zap.Int64("num_course", numCourse))
	return instructor, nil
}

// Update rewrites an existing instructor. Course assignments are left unchanged.
func (s *InstructorService) Update(ctx context.Context, req dto.InstructorRequest) (*models.Instructor, error) {
	if req.NumInstructor <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "num_instructor is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid instructor payload")
	}
	instructor := instructorFromRequest(req)
	instructor.NumInstructor = req.NumInstructor
	if err := s.repo.Update(ctx, instructor); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
		}
		return nil, internalError(err, "failed to update instructor")
	}
	updated, err := s.repo.FindByID(ctx, req.NumInstructor)
	if err != nil {
		return nil, lookupError(err, "instructor")
	}
	return updated, nil
}

func instructorFromRequest(req dto.InstructorRequest) *models.Instructor {
	return &models.Instructor{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		DateOfHire: req.DateOfHire,
		Support:    req.Support,
	}
}

// Get returns the instructor and whether it exists.
func (s *InstructorService) Get(ctx context.Context, numInstructor int64) (*models.Instructor, bool, error) {
	instructor, err := s.repo.FindByID(ctx, numInstructor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, internalError(err, "failed to load instructor")
	}
	return instructor, true, nil
}

func (s *InstructorService) List(ctx context.Context) ([]models.Instructor, error) {
	instructors, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list instructors")
	}
	return instructors, nil
}
