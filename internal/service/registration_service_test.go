package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	"github.com/noah-isme/ski-station-api/internal/repository"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

type fakeRegistrationRepo struct {
	regs      []models.Registration
	nextID    int64
	lockCalls int
	createErr error
	weeks     []int
	onLock    func()
}

func (f *fakeRegistrationRepo) WithinCourseLock(ctx context.Context, numCourse int64, fn func(ctx context.Context) error) error {
	f.lockCalls++
	if f.onLock != nil {
		f.onLock()
	}
	return fn(ctx)
}

func (f *fakeRegistrationRepo) CountBySkierCourseWeek(ctx context.Context, numSkier, numCourse int64, numWeek int) (int, error) {
	count := 0
	for _, r := range f.regs {
		if r.NumSkier == numSkier && r.NumCourse != nil && *r.NumCourse == numCourse && r.NumWeek == numWeek {
			count++
		}
	}
	return count, nil
}

func (f *fakeRegistrationRepo) CountByCourseAndWeek(ctx context.Context, numCourse int64, numWeek int) (int, error) {
	count := 0
	for _, r := range f.regs {
		if r.NumCourse != nil && *r.NumCourse == numCourse && r.NumWeek == numWeek {
			count++
		}
	}
	return count, nil
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *models.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	reg.NumRegistration = f.nextID
	f.regs = append(f.regs, *reg)
	return nil
}

func (f *fakeRegistrationRepo) FindByID(ctx context.Context, numRegistration int64) (*models.Registration, error) {
	for _, r := range f.regs {
		if r.NumRegistration == numRegistration {
			reg := r
			return &reg, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeRegistrationRepo) UpdateCourse(ctx context.Context, numRegistration, numCourse int64) error {
	for i := range f.regs {
		if f.regs[i].NumRegistration == numRegistration {
			c := numCourse
			f.regs[i].NumCourse = &c
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeRegistrationRepo) WeeksByInstructorAndSupport(ctx context.Context, numInstructor int64, support models.Support) ([]int, error) {
	return f.weeks, nil
}

// seed adds n registrations of distinct skiers (starting at id 100) to course for week.
func (f *fakeRegistrationRepo) seed(numCourse int64, week, n int) {
	for i := 0; i < n; i++ {
		c := numCourse
		f.nextID++
		f.regs = append(f.regs, models.Registration{NumRegistration: f.nextID, NumWeek: week, NumSkier: int64(100 + i), NumCourse: &c})
	}
}

type existsSet map[int64]bool

func (e existsSet) Exists(ctx context.Context, id int64) (bool, error) {
	return e[id], nil
}

type courseMap map[int64]models.Course

func (m courseMap) FindByID(ctx context.Context, numCourse int64) (*models.Course, error) {
	c, ok := m[numCourse]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &c, nil
}

func newRegistrationFixture(capacity int) (*RegistrationService, *fakeRegistrationRepo, *MetricsService) {
	repo := &fakeRegistrationRepo{}
	courses := courseMap{
		1: {NumCourse: 1, TypeCourse: models.TypeCourseCollectiveChildren, Support: models.SupportSki},
		2: {NumCourse: 2, TypeCourse: models.TypeCourseIndividual, Support: models.SupportSnowboard},
		3: {NumCourse: 3, TypeCourse: models.TypeCourseCollectiveAdult, Support: models.SupportSki},
	}
	metrics := NewMetricsService()
	svc := NewRegistrationService(repo, existsSet{1: true, 2: true}, courses, existsSet{7: true}, metrics, capacity, nil, nil)
	return svc, repo, metrics
}

func TestTryRegisterAcceptsSixthCollectiveRegistration(t *testing.T) {
	svc, repo, metrics := newRegistrationFixture(6)
	repo.seed(1, 3, 5)

	outcome, err := svc.TryRegister(context.Background(), 1, 1, 3)
	require.NoError(t, err)
	require.True(t, outcome.Accepted())
	assert.Equal(t, int64(1), outcome.Registration.NumSkier)
	assert.Equal(t, int64(1), *outcome.Registration.NumCourse)
	assert.Equal(t, 3, outcome.Registration.NumWeek)
	assert.Len(t, repo.regs, 6)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.registrationAttempts.WithLabelValues(outcomeAccepted)))
}

func TestTryRegisterRejectsSeventhCollectiveRegistration(t *testing.T) {
	svc, repo, metrics := newRegistrationFixture(6)
	repo.seed(1, 3, 6)

	outcome, err := svc.TryRegister(context.Background(), 1, 1, 3)
	require.NoError(t, err)
	assert.False(t, outcome.Accepted())
	assert.Equal(t, models.RejectionCourseFull, outcome.Rejection)
	assert.Len(t, repo.regs, 6)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.registrationAttempts.WithLabelValues(outcomeCourseFull)))
}

func TestTryRegisterChecksDuplicateBeforeCapacity(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(6)
	repo.seed(1, 3, 5)
	first, err := svc.TryRegister(context.Background(), 1, 1, 3)
	require.NoError(t, err)
	require.True(t, first.Accepted())

	again, err := svc.TryRegister(context.Background(), 1, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, models.RejectionAlreadyRegistered, again.Rejection)
	assert.Len(t, repo.regs, 6)
}

func TestTryRegisterSameSkierOtherWeekIsAllowed(t *testing.T) {
	svc, _, _ := newRegistrationFixture(6)

	_, err := svc.TryRegister(context.Background(), 1, 3, 1)
	require.NoError(t, err)
	outcome, err := svc.TryRegister(context.Background(), 1, 3, 2)
	require.NoError(t, err)
	assert.True(t, outcome.Accepted())
}

func TestTryRegisterIndividualCourseIgnoresCapacity(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(6)
	repo.seed(2, 1, 12)

	outcome, err := svc.TryRegister(context.Background(), 1, 2, 1)
	require.NoError(t, err)
	assert.True(t, outcome.Accepted())
	assert.Len(t, repo.regs, 13)
}

func TestTryRegisterHonoursConfiguredCapacity(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(2)
	repo.seed(3, 5, 2)

	outcome, err := svc.TryRegister(context.Background(), 2, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, models.RejectionCourseFull, outcome.Rejection)
}

func TestTryRegisterMissingEntities(t *testing.T) {
	svc, repo, metrics := newRegistrationFixture(6)

	_, err := svc.TryRegister(context.Background(), 99, 1, 1)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	_, err = svc.TryRegister(context.Background(), 1, 99, 1)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	_, err = svc.TryRegister(context.Background(), 1, 1, 0)
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	assert.Zero(t, repo.lockCalls)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.registrationAttempts.WithLabelValues(outcomeNotFound)))
}

func TestTryRegisterMapsUniqueViolationToAlreadyRegistered(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(6)
	repo.createErr = repository.ErrDuplicateRegistration

	outcome, err := svc.TryRegister(context.Background(), 1, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, models.RejectionAlreadyRegistered, outcome.Rejection)
}

func TestAssignToCourseBindsPendingRegistration(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(6)
	pending, err := svc.AddAndAssignToSkier(context.Background(), 1, dto.RegistrationRequest{NumWeek: 2})
	require.NoError(t, err)
	assert.Nil(t, pending.NumCourse)

	outcome, err := svc.AssignToCourse(context.Background(), pending.NumRegistration, 3)
	require.NoError(t, err)
	require.True(t, outcome.Accepted())
	assert.Equal(t, int64(3), *outcome.Registration.NumCourse)
	assert.Equal(t, int64(3), *repo.regs[0].NumCourse)
}

func TestAssignToCourseRejectsFullCourse(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(6)
	pending, err := svc.AddAndAssignToSkier(context.Background(), 1, dto.RegistrationRequest{NumWeek: 2})
	require.NoError(t, err)
	repo.seed(1, 2, 6)

	outcome, err := svc.AssignToCourse(context.Background(), pending.NumRegistration, 1)
	require.NoError(t, err)
	assert.Equal(t, models.RejectionCourseFull, outcome.Rejection)
	assert.Nil(t, repo.regs[0].NumCourse)
}

func TestAssignToCourseMissingRegistration(t *testing.T) {
	svc, _, _ := newRegistrationFixture(6)

	_, err := svc.AssignToCourse(context.Background(), 42, 1)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestAssignToCourseRegistrationRemovedUnderLock(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(6)
	pending, err := svc.AddAndAssignToSkier(context.Background(), 1, dto.RegistrationRequest{NumWeek: 2})
	require.NoError(t, err)
	repo.onLock = func() { repo.regs = nil }

	_, err = svc.AssignToCourse(context.Background(), pending.NumRegistration, 3)
	require.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, "registration not found", err.Error())
}

func TestAddAndAssignToSkierValidation(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(6)

	_, err := svc.AddAndAssignToSkier(context.Background(), 1, dto.RegistrationRequest{NumWeek: 0})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.AddAndAssignToSkier(context.Background(), 55, dto.RegistrationRequest{NumWeek: 1})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Empty(t, repo.regs)
}

func TestWeeksByInstructorAndSupport(t *testing.T) {
	svc, repo, _ := newRegistrationFixture(6)
	repo.weeks = []int{1, 4}

	weeks, err := svc.WeeksByInstructorAndSupport(context.Background(), 7, models.SupportSki)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, weeks)

	_, err = svc.WeeksByInstructorAndSupport(context.Background(), 8, models.SupportSki)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	_, err = svc.WeeksByInstructorAndSupport(context.Background(), 7, "SLED")
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}
