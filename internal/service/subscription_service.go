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

type subscriptionRepository interface {
	Create(ctx context.Context, sub *models.Subscription) error
	Update(ctx context.Context, sub *models.Subscription) error
	FindByID(ctx context.Context, numSub int64) (*models.Subscription, error)
	List(ctx context.Context) ([]models.Subscription, error)
	ListByType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Subscription, error)
	ListByStartDateRange(ctx context.Context, from, to models.Date) ([]models.Subscription, error)
}

// SubscriptionService manages ski passes. End dates are always derived on write.
type SubscriptionService struct {
	repo      subscriptionRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubscriptionService constructs SubscriptionService.
func NewSubscriptionService(repo subscriptionRepository, validate *validator.Validate, logger *zap.Logger) *SubscriptionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubscriptionService{repo: repo, validator: validate, logger: logger}
}

// Add stores a new subscription with its computed end date.
func (s *SubscriptionService) Add(ctx context.Context, req dto.SubscriptionRequest) (*models.Subscription, error) {
	sub, err := s.build(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, internalError(err, "failed to create subscription")
	}
	s.logger.Info("subscription created", zap.Int64("num_sub", sub.NumSub), zap.String("type_sub", string(sub.TypeSub)))
	return sub, nil
}

// Update rewrites an existing subscription and recomputes its end date.
func (s *SubscriptionService) Update(ctx context.Context, req dto.SubscriptionRequest) (*models.Subscription, error) {
	if req.NumSub <= 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "num_sub is required")
	}
	sub, err := s.build(req)
	if err != nil {
		return nil, err
	}
	sub.NumSub = req.NumSub
	if err := s.repo.Update(ctx, sub); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subscription not found")
		}
		return nil, internalError(err, "failed to update subscription")
	}
	return sub, nil
}

func (s *SubscriptionService) build(req dto.SubscriptionRequest) (*models.Subscription, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err, "invalid subscription payload")
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

// Get returns the subscription and whether it exists.
func (s *SubscriptionService) Get(ctx context.Context, numSub int64) (*models.Subscription, bool, error) {
	sub, err := s.repo.FindByID(ctx, numSub)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, internalError(err, "failed to load subscription")
	}
	return sub, true, nil
}

func (s *SubscriptionService) List(ctx context.Context) ([]models.Subscription, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, internalError(err, "failed to list subscriptions")
	}
	return subs, nil
}

// ListByType returns subscriptions of a plan type ordered by start date.
func (s *SubscriptionService) ListByType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Subscription, error) {
	if !typeSub.IsValid() {
		return nil, appErrors.Clone(appErrors.ErrInvalidPlanType, "unknown subscription type")
	}
	subs, err := s.repo.ListByType(ctx, typeSub)
	if err != nil {
		return nil, internalError(err, "failed to list subscriptions by type")
	}
	return subs, nil
}

// ListByStartDateRange returns subscriptions starting within [from, to].
func (s *SubscriptionService) ListByStartDateRange(ctx context.Context, from, to models.Date) ([]models.Subscription, error) {
	if from.IsZero() || to.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "both dates are required")
	}
	if from.After(to) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "date1 must not be after date2")
	}
	subs, err := s.repo.ListByStartDateRange(ctx, from, to)
	if err != nil {
		return nil, internalError(err, "failed to list subscriptions by dates")
	}
	return subs, nil
}
