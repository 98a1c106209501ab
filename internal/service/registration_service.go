package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	"github.com/noah-isme/ski-station-api/internal/repository"
	"github.com/noah-isme/ski-station-api/pkg/config"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

type registrationRepository interface {
	WithinCourseLock(ctx context.Context, numCourse int64, fn func(ctx context.Context) error) error
	CountBySkierCourseWeek(ctx context.Context, numSkier, numCourse int64, numWeek int) (int, error)
	CountByCourseAndWeek(ctx context.Context, numCourse int64, numWeek int) (int, error)
	Create(ctx context.Context, reg *models.Registration) error
	FindByID(ctx context.Context, numRegistration int64) (*models.Registration, error)
	UpdateCourse(ctx context.Context, numRegistration, numCourse int64) error
	WeeksByInstructorAndSupport(ctx context.Context, numInstructor int64, support models.Support) ([]int, error)
}

type skierChecker interface {
	Exists(ctx context.Context, numSkier int64) (bool, error)
}

type instructorChecker interface {
	Exists(ctx context.Context, numInstructor int64) (bool, error)
}

type courseReader interface {
	FindByID(ctx context.Context, numCourse int64) (*models.Course, error)
}

// Registration outcome labels reported to metrics.
const (
	outcomeAccepted          = "accepted"
	outcomeAlreadyRegistered = "already_registered"
	outcomeCourseFull        = "course_full"
	outcomeNotFound          = "not_found"
	outcomeInvalid           = "invalid"
	outcomeError             = "error"
)

// errRegistrationGone marks a registration removed while its course was locked.
var errRegistrationGone = errors.New("registration no longer exists")

// RegistrationService decides and records course registrations.
type RegistrationService struct {
	repo        registrationRepository
	skiers      skierChecker
	courses     courseReader
	instructors instructorChecker
	metrics     *MetricsService
	capacity    int
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewRegistrationService constructs RegistrationService. capacity is the number of
// registrations a collective course accepts per week.
func NewRegistrationService(repo registrationRepository, skiers skierChecker, courses courseReader, instructors instructorChecker, metrics *MetricsService, capacity int, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if capacity <= 0 {
		capacity = config.DefaultCourseCapacity
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{
		repo:        repo,
		skiers:      skiers,
		courses:     courses,
		instructors: instructors,
		metrics:     metrics,
		capacity:    capacity,
		validator:   validate,
		logger:      logger,
	}
}

// TryRegister books skier numSkier into course numCourse for week numWeek.
//
// Missing skiers or courses are errors. A duplicate booking or a full collective
// course yields a rejected outcome and writes nothing. The duplicate check runs
// before the capacity check, and both run with the course row locked so concurrent
// attempts cannot overfill a week.
func (s *RegistrationService) TryRegister(ctx context.Context, numSkier, numCourse int64, numWeek int) (*models.RegistrationOutcome, error) {
	start := time.Now()
	outcome, err := s.tryRegister(ctx, numSkier, numCourse, numWeek)
	s.record(outcome, err, start)
	return outcome, err
}

func (s *RegistrationService) tryRegister(ctx context.Context, numSkier, numCourse int64, numWeek int) (*models.RegistrationOutcome, error) {
	if numWeek < 1 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "num_week must be at least 1")
	}
	exists, err := s.skiers.Exists(ctx, numSkier)
	if err != nil {
		return nil, internalError(err, "failed to load skier")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "skier not found")
	}
	course, err := s.courses.FindByID(ctx, numCourse)
	if err != nil {
		return nil, lookupError(err, "course")
	}

	var outcome *models.RegistrationOutcome
	err = s.repo.WithinCourseLock(ctx, numCourse, func(ctx context.Context) error {
		reason, err := s.check(ctx, numSkier, course, numWeek)
		if err != nil {
			return err
		}
		if reason != "" {
			outcome = &models.RegistrationOutcome{Rejection: reason}
			return nil
		}
		reg := &models.Registration{NumWeek: numWeek, NumSkier: numSkier, NumCourse: &course.NumCourse}
		if err := s.repo.Create(ctx, reg); err != nil {
			return err
		}
		outcome = &models.RegistrationOutcome{Registration: reg}
		return nil
	})
	if err != nil {
		return s.lockedFailure(err)
	}

	if outcome.Accepted() {
		s.logger.Info("registration accepted",
			zap.Int64("num_registration", outcome.Registration.NumRegistration),
			zap.Int64("num_skier", numSkier),
			zap.Int64("num_course", numCourse),
			zap.Int("num_week", numWeek))
	} else {
		s.logger.Warn("registration rejected",
			zap.String("reason", string(outcome.Rejection)),
			zap.Int64("num_skier", numSkier),
			zap.Int64("num_course", numCourse),
			zap.Int("num_week", numWeek))
	}
	return outcome, nil
}

// check applies the duplicate rule, then the capacity rule for collective courses.
// An empty reason means the registration is allowed.
func (s *RegistrationService) check(ctx context.Context, numSkier int64, course *models.Course, numWeek int) (models.RejectionReason, error) {
	dup, err := s.repo.CountBySkierCourseWeek(ctx, numSkier, course.NumCourse, numWeek)
	if err != nil {
		return "", err
	}
	if dup > 0 {
		return models.RejectionAlreadyRegistered, nil
	}
	if !course.TypeCourse.IsCollective() {
		return "", nil
	}
	taken, err := s.repo.CountByCourseAndWeek(ctx, course.NumCourse, numWeek)
	if err != nil {
		return "", err
	}
	if taken >= s.capacity {
		return models.RejectionCourseFull, nil
	}
	return "", nil
}

// lockedFailure maps errors raised inside the course lock.
func (s *RegistrationService) lockedFailure(err error) (*models.RegistrationOutcome, error) {
	switch {
	case errors.Is(err, repository.ErrDuplicateRegistration):
		return &models.RegistrationOutcome{Rejection: models.RejectionAlreadyRegistered}, nil
	case errors.Is(err, errRegistrationGone):
		return nil, appErrors.Clone(appErrors.ErrNotFound, "registration not found")
	case errors.Is(err, sql.ErrNoRows):
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	default:
		s.logger.Error("registration failed", zap.Error(err))
		return nil, internalError(err, "failed to register skier")
	}
}

func (s *RegistrationService) record(outcome *models.RegistrationOutcome, err error, start time.Time) {
	label := outcomeError
	switch {
	case err != nil && appErrors.Is(err, appErrors.ErrNotFound):
		label = outcomeNotFound
	case err != nil && appErrors.Is(err, appErrors.ErrValidation):
		label = outcomeInvalid
	case err != nil:
	case outcome.Accepted():
		label = outcomeAccepted
	case outcome.Rejection == models.RejectionAlreadyRegistered:
		label = outcomeAlreadyRegistered
	case outcome.Rejection == models.RejectionCourseFull:
		label = outcomeCourseFull
	}
	s.metrics.RecordRegistration(label, time.Since(start))
}

// AddAndAssignToSkier records a registration for the week in req, waiting for a course.
func (s *RegistrationService) AddAndAssignToSkier(ctx context.Context, numSkier int64, req dto.RegistrationRequest) (*models.Registration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid registration payload")
	}
	exists, err := s.skiers.Exists(ctx, numSkier)
	if err != nil {
		return nil, internalError(err, "failed to load skier")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "skier not found")
	}
	reg := &models.Registration{NumWeek: req.NumWeek, NumSkier: numSkier}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, internalError(err, "failed to create registration")
	}
	return reg, nil
}

// AssignToCourse binds an existing registration to a course, applying the same
// duplicate and capacity rules as TryRegister to the registration's skier and week.
func (s *RegistrationService) AssignToCourse(ctx context.Context, numRegistration, numCourse int64) (*models.RegistrationOutcome, error) {
	start := time.Now()
	outcome, err := s.assignToCourse(ctx, numRegistration, numCourse)
	s.record(outcome, err, start)
	return outcome, err
}

func (s *RegistrationService) assignToCourse(ctx context.Context, numRegistration, numCourse int64) (*models.RegistrationOutcome, error) {
	reg, err := s.repo.FindByID(ctx, numRegistration)
	if err != nil {
		return nil, lookupError(err, "registration")
	}
	course, err := s.courses.FindByID(ctx, numCourse)
	if err != nil {
		return nil, lookupError(err, "course")
	}
	if reg.NumCourse != nil && *reg.NumCourse == numCourse {
		return &models.RegistrationOutcome{Registration: reg}, nil
	}

	var outcome *models.RegistrationOutcome
	err = s.repo.WithinCourseLock(ctx, numCourse, func(ctx context.Context) error {
		reason, err := s.check(ctx, reg.NumSkier, course, reg.NumWeek)
		if err != nil {
			return err
		}
		if reason != "" {
			outcome = &models.RegistrationOutcome{Rejection: reason}
			return nil
		}
		if err := s.repo.UpdateCourse(ctx, numRegistration, numCourse); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errRegistrationGone
			}
			return err
		}
		reg.NumCourse = &course.NumCourse
		outcome = &models.RegistrationOutcome{Registration: reg}
		return nil
	})
	if err != nil {
		return s.lockedFailure(err)
	}
	return outcome, nil
}

// WeeksByInstructorAndSupport lists, ascending and without repeats, the weeks in which
// the instructor taught registered skiers in courses of the given support.
func (s *RegistrationService) WeeksByInstructorAndSupport(ctx context.Context, numInstructor int64, support models.Support) ([]int, error) {
	if !support.IsValid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "support must be SKI or SNOWBOARD")
	}
	exists, err := s.instructors.Exists(ctx, numInstructor)
	if err != nil {
		return nil, internalError(err, "failed to load instructor")
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "instructor not found")
	}
	weeks, err := s.repo.WeeksByInstructorAndSupport(ctx, numInstructor, support)
	if err != nil {
		return nil, internalError(err, "failed to list instructor weeks")
	}
	return weeks, nil
}
