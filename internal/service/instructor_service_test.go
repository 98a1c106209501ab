package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

type instructorRepoStub struct {
	created   *models.Instructor
	stored    map[int64]models.Instructor
	updateErr error
}

func (s *instructorRepoStub) Create(ctx context.Context, i *models.Instructor) error {
	i.NumInstructor = 2
	s.created = i
	return nil
}

func (s *instructorRepoStub) Update(ctx context.Context, i *models.Instructor) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.stored[i.NumInstructor] = *i
	return nil
}

func (s *instructorRepoStub) FindByID(ctx context.Context, numInstructor int64) (*models.Instructor, error) {
	i, ok := s.stored[numInstructor]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &i, nil
}

func (s *instructorRepoStub) List(ctx context.Context) ([]models.Instructor, error) {
	return []models.Instructor{}, nil
}

func TestInstructorServiceAddAndAssignToCourse(t *testing.T) {
	repo := &instructorRepoStub{}
	svc := NewInstructorService(repo, courseMap{5: {NumCourse: 5, Support: models.SupportSki}}, nil, nil)

	inst, err := svc.AddAndAssignToCourse(context.Background(), 5, dto.InstructorRequest{FirstName: "Luc", LastName: "Martin"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), inst.NumInstructor)
	require.Len(t, repo.created.Courses, 1)
	assert.Equal(t, int64(5), repo.created.Courses[0].NumCourse)
}

func TestInstructorServiceAddAndAssignToMissingCourse(t *testing.T) {
	repo := &instructorRepoStub{}
	svc := NewInstructorService(repo, courseMap{}, nil, nil)

	_, err := svc.AddAndAssignToCourse(context.Background(), 5, dto.InstructorRequest{FirstName: "Luc", LastName: "Martin"})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
	assert.Nil(t, repo.created)
}

func TestInstructorServiceUpdate(t *testing.T) {
	repo := &instructorRepoStub{stored: map[int64]models.Instructor{2: {NumInstructor: 2, FirstName: "Luc"}}}
	svc := NewInstructorService(repo, courseMap{}, nil, nil)

	snow := models.SupportSnowboard
	inst, err := svc.Update(context.Background(), dto.InstructorRequest{NumInstructor: 2, FirstName: "Lucas", LastName: "Martin", Support: &snow})
	require.NoError(t, err)
	assert.Equal(t, "Lucas", inst.FirstName)

	_, err = svc.Update(context.Background(), dto.InstructorRequest{FirstName: "Lucas", LastName: "Martin"})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	repo.updateErr = sql.ErrNoRows
	_, err = svc.Update(context.Background(), dto.InstructorRequest{NumInstructor: 3, FirstName: "Eva", LastName: "Roux"})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestInstructorServiceRejectsUnknownSupport(t *testing.T) {
	svc := NewInstructorService(&instructorRepoStub{}, courseMap{}, nil, nil)
	sled := models.Support("SLED")

	_, err := svc.Add(context.Background(), dto.InstructorRequest{FirstName: "Luc", LastName: "Martin", Support: &sled})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}
