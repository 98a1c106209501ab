package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

type subscriptionRepoStub struct {
	created   *models.Subscription
	updated   *models.Subscription
	updateErr error
	rangeFrom models.Date
	rangeTo   models.Date
	calls     int
}

func (s *subscriptionRepoStub) Create(ctx context.Context, sub *models.Subscription) error {
	s.calls++
	sub.NumSub = 1
	s.created = sub
	return nil
}

func (s *subscriptionRepoStub) Update(ctx context.Context, sub *models.Subscription) error {
	s.calls++
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = sub
	return nil
}

func (s *subscriptionRepoStub) FindByID(ctx context.Context, numSub int64) (*models.Subscription, error) {
	return nil, sql.ErrNoRows
}

func (s *subscriptionRepoStub) List(ctx context.Context) ([]models.Subscription, error) {
	return []models.Subscription{}, nil
}

func (s *subscriptionRepoStub) ListByType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Subscription, error) {
	s.calls++
	return []models.Subscription{{NumSub: 1, TypeSub: typeSub}}, nil
}

func (s *subscriptionRepoStub) ListByStartDateRange(ctx context.Context, from, to models.Date) ([]models.Subscription, error) {
	s.calls++
	s.rangeFrom, s.rangeTo = from, to
	return []models.Subscription{}, nil
}

func TestSubscriptionServiceAddAnnual(t *testing.T) {
	repo := &subscriptionRepoStub{}
	svc := NewSubscriptionService(repo, nil, nil)

	sub, err := svc.Add(context.Background(), dto.SubscriptionRequest{
		TypeSub:   models.TypeSubscriptionAnnual,
		StartDate: models.NewDate(2024, time.January, 1),
		Price:     450,
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", sub.EndDate.String())
	assert.Equal(t, "2025-01-01", repo.created.EndDate.String())
}

func TestSubscriptionServiceAddUnknownPlanNeverPersists(t *testing.T) {
	repo := &subscriptionRepoStub{}
	svc := NewSubscriptionService(repo, nil, nil)

	_, err := svc.Add(context.Background(), dto.SubscriptionRequest{TypeSub: "WEEKLY", StartDate: models.NewDate(2024, time.January, 1)})
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidPlanType))

	_, err = svc.Add(context.Background(), dto.SubscriptionRequest{TypeSub: "", StartDate: models.NewDate(2024, time.January, 1)})
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidPlanType))

	_, err = svc.Add(context.Background(), dto.SubscriptionRequest{TypeSub: models.TypeSubscriptionMonthly, Price: -1})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Zero(t, repo.calls)
}

func TestSubscriptionServiceUpdateRecomputesEnd(t *testing.T) {
	repo := &subscriptionRepoStub{}
	svc := NewSubscriptionService(repo, nil, nil)

	sub, err := svc.Update(context.Background(), dto.SubscriptionRequest{
		NumSub:    4,
		TypeSub:   models.TypeSubscriptionSemestriel,
		StartDate: models.NewDate(2024, time.March, 15),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), repo.updated.NumSub)
	assert.Equal(t, "2024-09-15", sub.EndDate.String())
}

func TestSubscriptionServiceUpdateRequiresExisting(t *testing.T) {
	repo := &subscriptionRepoStub{updateErr: sql.ErrNoRows}
	svc := NewSubscriptionService(repo, nil, nil)

	_, err := svc.Update(context.Background(), dto.SubscriptionRequest{TypeSub: models.TypeSubscriptionMonthly, StartDate: models.NewDate(2024, time.March, 15)})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.Update(context.Background(), dto.SubscriptionRequest{NumSub: 9, TypeSub: models.TypeSubscriptionMonthly, StartDate: models.NewDate(2024, time.March, 15)})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestSubscriptionServiceGetAbsent(t *testing.T) {
	svc := NewSubscriptionService(&subscriptionRepoStub{}, nil, nil)

	sub, found, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, sub)
}

func TestSubscriptionServiceListByStartDateRange(t *testing.T) {
	repo := &subscriptionRepoStub{}
	svc := NewSubscriptionService(repo, nil, nil)
	from := models.NewDate(2024, time.January, 1)
	to := models.NewDate(2024, time.January, 31)

	_, err := svc.ListByStartDateRange(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, from, repo.rangeFrom)

	_, err = svc.ListByStartDateRange(context.Background(), from, from)
	require.NoError(t, err)

	_, err = svc.ListByStartDateRange(context.Background(), to, from)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, 2, repo.calls)
}

func TestSubscriptionServiceListByType(t *testing.T) {
	svc := NewSubscriptionService(&subscriptionRepoStub{}, nil, nil)

	subs, err := svc.ListByType(context.Background(), models.TypeSubscriptionMonthly)
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	_, err = svc.ListByType(context.Background(), "monthly")
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidPlanType))
}
