package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

type skierRepoMock struct {
	mock.Mock
}

func (m *skierRepoMock) Create(ctx context.Context, s *models.Skier) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.NumSkier = 11
		if s.Subscription != nil {
			s.Subscription.NumSub = 3
		}
	}
	return args.Error(0)
}

func (m *skierRepoMock) FindByID(ctx context.Context, numSkier int64) (*models.Skier, error) {
	args := m.Called(ctx, numSkier)
	skier, _ := args.Get(0).(*models.Skier)
	return skier, args.Error(1)
}

func (m *skierRepoMock) List(ctx context.Context) ([]models.Skier, error) {
	args := m.Called(ctx)
	skiers, _ := args.Get(0).([]models.Skier)
	return skiers, args.Error(1)
}

func (m *skierRepoMock) ListBySubscriptionType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Skier, error) {
	args := m.Called(ctx, typeSub)
	skiers, _ := args.Get(0).([]models.Skier)
	return skiers, args.Error(1)
}

func (m *skierRepoMock) UpdateSubscription(ctx context.Context, numSkier, numSub int64) error {
	return m.Called(ctx, numSkier, numSub).Error(0)
}

func (m *skierRepoMock) AddPiste(ctx context.Context, numSkier, numPiste int64) error {
	return m.Called(ctx, numSkier, numPiste).Error(0)
}

func (m *skierRepoMock) Delete(ctx context.Context, numSkier int64) error {
	return m.Called(ctx, numSkier).Error(0)
}

type stubSubscriptions map[int64]models.Subscription

func (s stubSubscriptions) FindByID(ctx context.Context, numSub int64) (*models.Subscription, error) {
	sub, ok := s[numSub]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &sub, nil
}

type stubPistes map[int64]models.Piste

func (s stubPistes) FindByID(ctx context.Context, numPiste int64) (*models.Piste, error) {
	p, ok := s[numPiste]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

type registrarFunc func(ctx context.Context, numSkier, numCourse int64, numWeek int) (*models.RegistrationOutcome, error)

func (f registrarFunc) TryRegister(ctx context.Context, numSkier, numCourse int64, numWeek int) (*models.RegistrationOutcome, error) {
	return f(ctx, numSkier, numCourse, numWeek)
}

func newSkierService(repo *skierRepoMock, reg registrar) *SkierService {
	return NewSkierService(repo,
		stubSubscriptions{3: {
			NumSub:    3,
			TypeSub:   models.TypeSubscriptionAnnual,
			StartDate: models.NewDate(2023, time.December, 1),
			EndDate:   models.NewDate(2024, time.December, 1),
		}},
		stubPistes{4: {NumPiste: 4, NamePiste: "Combe", Color: models.ColorRed}},
		courseMap{1: {NumCourse: 1, TypeCourse: models.TypeCourseCollectiveAdult}},
		reg, nil, nil)
}

func TestSkierServiceAddComputesSubscriptionEnd(t *testing.T) {
	repo := &skierRepoMock{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Skier) bool {
		return s.Subscription != nil && s.Subscription.EndDate.String() == "2025-01-01"
	})).Return(nil)
	svc := newSkierService(repo, nil)

	skier, err := svc.Add(context.Background(), dto.SkierRequest{
		FirstName: "Ana",
		LastName:  "Lopez",
		Subscription: &dto.SubscriptionRequest{
			TypeSub:   models.TypeSubscriptionAnnual,
			StartDate: models.NewDate(2024, time.January, 1),
			Price:     450,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), skier.NumSkier)
	assert.Equal(t, int64(3), skier.Subscription.NumSub)
	repo.AssertExpectations(t)
}

func TestSkierServiceAddLinksStoredSubscription(t *testing.T) {
	repo := &skierRepoMock{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Skier) bool {
		return s.Subscription != nil && s.Subscription.NumSub == 3 && s.Subscription.EndDate.String() == "2024-12-01"
	})).Return(nil)
	svc := newSkierService(repo, nil)

	skier, err := svc.Add(context.Background(), dto.SkierRequest{
		FirstName: "Ana",
		LastName:  "Lopez",
		Subscription: &dto.SubscriptionRequest{
			NumSub:    3,
			TypeSub:   models.TypeSubscriptionMonthly,
			StartDate: models.NewDate(2024, time.June, 1),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TypeSubscriptionAnnual, skier.Subscription.TypeSub)
	assert.Equal(t, "2023-12-01", skier.Subscription.StartDate.String())
	assert.Equal(t, "2024-12-01", skier.Subscription.EndDate.String())
	repo.AssertExpectations(t)
}

func TestSkierServiceAddUnknownSubscriptionNumber(t *testing.T) {
	repo := &skierRepoMock{}
	svc := newSkierService(repo, nil)

	_, err := svc.Add(context.Background(), dto.SkierRequest{
		FirstName:    "Ana",
		LastName:     "Lopez",
		Subscription: &dto.SubscriptionRequest{NumSub: 8, TypeSub: models.TypeSubscriptionAnnual, StartDate: models.NewDate(2024, time.January, 1)},
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSkierServiceAddRejectsBadPayload(t *testing.T) {
	repo := &skierRepoMock{}
	svc := newSkierService(repo, nil)

	_, err := svc.Add(context.Background(), dto.SkierRequest{LastName: "Lopez"})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.Add(context.Background(), dto.SkierRequest{
		FirstName:    "Ana",
		LastName:     "Lopez",
		Subscription: &dto.SubscriptionRequest{TypeSub: "WEEKLY", StartDate: models.NewDate(2024, time.January, 1)},
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidPlanType))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSkierServiceAddAndAssignReportsRejectedWeeks(t *testing.T) {
	repo := &skierRepoMock{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	reg := registrarFunc(func(ctx context.Context, numSkier, numCourse int64, numWeek int) (*models.RegistrationOutcome, error) {
		if numWeek == 2 {
			return &models.RegistrationOutcome{Rejection: models.RejectionCourseFull}, nil
		}
		c := numCourse
		return &models.RegistrationOutcome{Registration: &models.Registration{NumRegistration: int64(numWeek), NumWeek: numWeek, NumSkier: numSkier, NumCourse: &c}}, nil
	})
	svc := newSkierService(repo, reg)

	result, err := svc.AddAndAssignToCourse(context.Background(), 1, dto.SkierRequest{
		FirstName:     "Ana",
		LastName:      "Lopez",
		Registrations: []dto.RegistrationRequest{{NumWeek: 1}, {NumWeek: 2}, {NumWeek: 3}},
	})
	require.NoError(t, err)
	assert.Len(t, result.Skier.Registrations, 2)
	assert.Equal(t, []dto.RejectedWeek{{NumWeek: 2, Reason: models.RejectionCourseFull}}, result.Rejected)
}

func TestSkierServiceAddAndAssignRequiresCourse(t *testing.T) {
	repo := &skierRepoMock{}
	svc := newSkierService(repo, nil)

	_, err := svc.AddAndAssignToCourse(context.Background(), 99, dto.SkierRequest{FirstName: "Ana", LastName: "Lopez"})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSkierServiceAssignToPisteOnEmptyCollection(t *testing.T) {
	repo := &skierRepoMock{}
	repo.On("FindByID", mock.Anything, int64(11)).Return(&models.Skier{NumSkier: 11}, nil)
	repo.On("AddPiste", mock.Anything, int64(11), int64(4)).Return(nil)
	svc := newSkierService(repo, nil)

	skier, err := svc.AssignToPiste(context.Background(), 11, 4)
	require.NoError(t, err)
	require.Len(t, skier.Pistes, 1)
	assert.Equal(t, int64(4), skier.Pistes[0].NumPiste)
	repo.AssertExpectations(t)
}

func TestSkierServiceAssignToPisteMissingPiste(t *testing.T) {
	repo := &skierRepoMock{}
	repo.On("FindByID", mock.Anything, int64(11)).Return(&models.Skier{NumSkier: 11}, nil)
	svc := newSkierService(repo, nil)

	_, err := svc.AssignToPiste(context.Background(), 11, 77)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	repo.AssertNotCalled(t, "AddPiste", mock.Anything, mock.Anything, mock.Anything)
}

func TestSkierServiceAssignToSubscription(t *testing.T) {
	repo := &skierRepoMock{}
	repo.On("FindByID", mock.Anything, int64(11)).Return(&models.Skier{NumSkier: 11}, nil)
	repo.On("UpdateSubscription", mock.Anything, int64(11), int64(3)).Return(nil)
	svc := newSkierService(repo, nil)

	skier, err := svc.AssignToSubscription(context.Background(), 11, 3)
	require.NoError(t, err)
	assert.Equal(t, models.TypeSubscriptionAnnual, skier.Subscription.TypeSub)

	repo.On("FindByID", mock.Anything, int64(12)).Return(nil, sql.ErrNoRows)
	_, err = svc.AssignToSubscription(context.Background(), 12, 3)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestSkierServiceGetDistinguishesAbsence(t *testing.T) {
	repo := &skierRepoMock{}
	repo.On("FindByID", mock.Anything, int64(5)).Return(nil, sql.ErrNoRows)
	repo.On("FindByID", mock.Anything, int64(6)).Return(nil, errors.New("connection reset"))
	svc := newSkierService(repo, nil)

	skier, found, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, skier)

	_, _, err = svc.Get(context.Background(), 6)
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal))
}

func TestSkierServiceListBySubscriptionType(t *testing.T) {
	repo := &skierRepoMock{}
	repo.On("ListBySubscriptionType", mock.Anything, models.TypeSubscriptionMonthly).Return([]models.Skier{{NumSkier: 1}}, nil)
	svc := newSkierService(repo, nil)

	skiers, err := svc.ListBySubscriptionType(context.Background(), models.TypeSubscriptionMonthly)
	require.NoError(t, err)
	assert.Len(t, skiers, 1)

	_, err = svc.ListBySubscriptionType(context.Background(), "DAILY")
	assert.True(t, appErrors.Is(err, appErrors.ErrInvalidPlanType))
}

func TestSkierServiceDeleteMissing(t *testing.T) {
	repo := &skierRepoMock{}
	repo.On("Delete", mock.Anything, int64(9)).Return(sql.ErrNoRows)
	svc := newSkierService(repo, nil)

	err := svc.Delete(context.Background(), 9)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
