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

type skierRepository interface {
	Create(ctx context.Context, s *models.Skier) error
	FindByID(ctx context.Context, numSkier int64) (*models.Skier, error)
	List(ctx context.Context) ([]models.Skier, error)
	ListBySubscriptionType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Skier, error)
	UpdateSubscription(ctx context.Context, numSkier, numSub int64) error
	AddPiste(ctx context.Context, numSkier, numPiste int64) error
	Delete(ctx context.Context, numSkier int64) error
}

type subscriptionReader interface {
	FindByID(ctx context.Context, numSub int64) (*models.Subscription, error)
}

type pisteReader interface {
	FindByID(ctx context.Context, numPiste int64) (*models.Piste, error)
}

type registrar interface {
	TryRegister(ctx context.Context, numSkier, numCourse int64, numWeek int) (*models.RegistrationOutcome, error)
}

// SkierService manages skiers and their links to subscriptions, pistes and courses.
type SkierService struct {
	repo          skierRepository
	subscriptions subscriptionReader
	pistes        pisteReader
	courses       courseReader
	registrations registrar
	validator     *validator.Validate
	logger        *zap.Logger
}

// NewSkierService constructs SkierService.
func NewSkierService(repo skierRepository, subscriptions subscriptionReader, pistes pisteReader, courses courseReader, registrations registrar, validate *validator.Validate, logger *zap.Logger) *SkierService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SkierService{
		repo:          repo,
		subscriptions: subscriptions,
		pistes:        pistes,
		courses:       courses,
		registrations: registrations,
		validator:     validate,
		logger:        logger,
	}
}

// Add stores a skier. An embedded subscription carrying num_sub links the stored
// subscription as it is; any other embedded subscription gets its end date
// computed and is stored together with the skier.
func (s *SkierService) Add(ctx context.Context, req dto.SkierRequest) (*models.Skier, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid skier payload")
	}
	skier := &models.Skier{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		City:        req.City,
	}
	if req.Subscription != nil {
		sub, err := s.embeddedSubscription(ctx, *req.Subscription)
		if err != nil {
			return nil, err
		}
		skier.Subscription = sub
	}
	if err := s.repo.Create(ctx, skier); err != nil {
		return nil, internalError(err, "failed to create skier")
	}
	s.logger.Info("skier created", zap.Int64("num_skier", skier.NumSkier))
	return skier, nil
}

func (s *SkierService) embeddedSubscription(ctx context.Context, req dto.SubscriptionRequest) (*models.Subscription, error) {
	if req.NumSub != 0 {
		stored, err := s.subscriptions.FindByID(ctx, req.NumSub)
		if err != nil {
			return nil, lookupError(err, "subscription")
		}
		return stored, nil
	}
	end, err := ComputeEndDate(req.TypeSub, req.StartDate)
	if err != nil {
		return nil, err
	}
	return &models.Subscription{
		TypeSub:   req.TypeSub,
		StartDate: req.StartDate,
		EndDate:   end,
		Price:     req.Price,
	}, nil
}

// AddAndAssignToCourse creates the skier then books each week listed in
// req.Registrations into the course. Weeks refused by the eligibility rules are
// reported back; they do not undo the skier creation.
func (s *SkierService) AddAndAssignToCourse(ctx context.Context, numCourse int64, req dto.SkierRequest) (*dto.SkierWithRejections, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid skier payload")
	}
	if _, err := s.courses.FindByID(ctx, numCourse); err != nil {
		return nil, lookupError(err, "course")
	}

	skier, err := s.Add(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &dto.SkierWithRejections{Skier: skier, Rejected: []dto.RejectedWeek{}}
	for _, r := range req.Registrations {
		outcome, err := s.registrations.TryRegister(ctx, skier.NumSkier, numCourse, r.NumWeek)
		if err != nil {
			return nil, err
		}
		if !outcome.Accepted() {
			result.Rejected = append(result.Rejected, dto.RejectedWeek{NumWeek: r.NumWeek, Reason: outcome.Rejection})
			continue
		}
		skier.Registrations = append(skier.Registrations, *outcome.Registration)
	}
	return result, nil
}

// AssignToSubscription links the skier to an existing subscription.
func (s *SkierService) AssignToSubscription(ctx context.Context, numSkier, numSub int64) (*models.Skier, error) {
	skier, err := s.repo.FindByID(ctx, numSkier)
	if err != nil {
		return nil, lookupError(err, "skier")
	}
	sub, err := s.subscriptions.FindByID(ctx, numSub)
	if err != nil {
		return nil, lookupError(err, "subscription")
	}
	if err := s.repo.UpdateSubscription(ctx, numSkier, numSub); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "skier not found")
		}
		return nil, internalError(err, "failed to assign subscription")
	}
	skier.AssignSubscription(*sub)
	return skier, nil
}

// AssignToPiste adds the piste to the skier's pistes.
func (s *SkierService) AssignToPiste(ctx context.Context, numSkier, numPiste int64) (*models.Skier, error) {
	skier, err := s.repo.FindByID(ctx, numSkier)
	if err != nil {
		return nil, lookupError(err, "skier")
	}
	piste, err := s.pistes.FindByID(ctx, numPiste)
	if err != nil {
		return nil, lookupError(err, "piste")
	}
	if err := s.repo.AddPiste(ctx, numSkier, numPiste); err != nil {
		return nil, internalError(err, "failed to assign piste")
	}
	skier.AssignPiste(*piste)
	return skier, nil
}

// ListBySubscriptionType returns skiers whose subscription has the given plan type.
func (s *SkierService) ListBySubscriptionType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Skier, error) {
	if !typeSub.IsValid() {
		return nil, appErrors.Clone(appErrors.ErrInvalidPlanType, "unknown subscription type")
	}
	skiers, err := s.repo.ListBySubscriptionType(ctx, typeSub)
	if err != nil {
		return nil, internalError(err, "failed to list skiers by subscription")
	}
	return skiers, nil
}

// Get returns the skier and whether it exists.
func (s *SkierService) Get(ctx context.Context, numSkier int64) (*models.Skier, bool, error) {
	skier, err := s.repo.FindByID(ctx, numSkier)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, internalError(err, "failed to load skier")
	}
	return skier, true, nil
}

func (s *SkierService) List(ctx context.Context) ([]models.Skier, error) {
	skiers, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list skiers")
	}
	return skiers, nil
}

// Delete removes the skier along with its registrations.
func (s *SkierService) Delete(ctx context.Context, numSkier int64) error {
	if err := s.repo.Delete(ctx, numSkier); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "skier not found")
		}
		return internalError(err, "failed to delete skier")
	}
	s.logger.Info("skier deleted", zap.Int64("num_skier", numSkier))
	return nil
}
