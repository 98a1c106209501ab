package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/ski-station-api/internal/dto"
	"github.com/noah-isme/ski-station-api/internal/models"
	appErrors "github.com/noah-isme/ski-station-api/pkg/errors"
)

type courseServiceMock struct {
	course   *models.Course
	found    bool
	list     []models.Course
	cacheHit bool
	err      error
	lastReq  dto.CourseRequest
}

func (m *courseServiceMock) Add(ctx context.Context, req dto.CourseRequest) (*models.Course, error) {
	m.lastReq = req
	return m.course, m.err
}

func (m *courseServiceMock) Update(ctx context.Context, req dto.CourseRequest) (*models.Course, error) {
	m.lastReq = req
	return m.course, m.err
}

func (m *courseServiceMock) Get(ctx context.Context, numCourse int64) (*models.Course, bool, error) {
	return m.course, m.found, m.err
}

func (m *courseServiceMock) List(ctx context.Context) ([]models.Course, bool, error) {
	return m.list, m.cacheHit, m.err
}

type pisteServiceMock struct {
	piste     *models.Piste
	found     bool
	list      []models.Piste
	cacheHit  bool
	err       error
	deletedID int64
}

func (m *pisteServiceMock) Add(ctx context.Context, req dto.PisteRequest) (*models.Piste, error) {
	return m.piste, m.err
}

func (m *pisteServiceMock) Get(ctx context.Context, numPiste int64) (*models.Piste, bool, error) {
	return m.piste, m.found, m.err
}

func (m *pisteServiceMock) List(ctx context.Context) ([]models.Piste, bool, error) {
	return m.list, m.cacheHit, m.err
}

func (m *pisteServiceMock) Delete(ctx context.Context, numPiste int64) error {
	m.deletedID = numPiste
	return m.err
}

type instructorServiceMock struct {
	instructor *models.Instructor
	found      bool
	list       []models.Instructor
	err        error
	lastCourse int64
	lastReq    dto.InstructorRequest
}

func (m *instructorServiceMock) Add(ctx context.Context, req dto.InstructorRequest) (*models.Instructor, error) {
	m.lastReq = req
	return m.instructor, m.err
}

func (m *instructorServiceMock) AddAndAssignToCourse(ctx context.Context, numCourse int64, req dto.InstructorRequest) (*models.Instructor, error) {
	m.lastCourse = numCourse
	m.lastReq = req
	return m.instructor, m.err
}

func (m *instructorServiceMock) Update(ctx context.Context, req dto.InstructorRequest) (*models.Instructor, error) {
	m.lastReq = req
	return m.instructor, m.err
}

func (m *instructorServiceMock) Get(ctx context.Context, numInstructor int64) (*models.Instructor, bool, error) {
	return m.instructor, m.found, m.err
}

func (m *instructorServiceMock) List(ctx context.Context) ([]models.Instructor, error) {
	return m.list, m.err
}

func TestCourseHandlerAdd(t *testing.T) {
	mockSvc := &courseServiceMock{course: &models.Course{NumCourse: 1}}
	h := NewCourseHandler(mockSvc)

	c, w := newTestContext(http.MethodPost, "/course/add", map[string]interface{}{
		"level": 2, "type_course": "COLLECTIVE_ADULT", "support": "SKI", "price": 120.5, "time_slot": 3,
	})
	h.Add(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, models.TypeCourseCollectiveAdult, mockSvc.lastReq.TypeCourse)
	assert.Equal(t, 3, mockSvc.lastReq.TimeSlot)
}

func TestCourseHandlerUpdateValidationError(t *testing.T) {
	mockSvc := &courseServiceMock{err: appErrors.Clone(appErrors.ErrValidation, "invalid course payload")}
	h := NewCourseHandler(mockSvc)

	c, w := newTestContext(http.MethodPut, "/course/update", map[string]interface{}{"num_course": 1, "type_course": "GROUP"})
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourseHandlerListReportsCacheHit(t *testing.T) {
	mockSvc := &courseServiceMock{list: []models.Course{{NumCourse: 1}}, cacheHit: true}
	h := NewCourseHandler(mockSvc)

	c, w := newTestContext(http.MethodGet, "/course/all", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	meta := decode(t, w).Meta
	assert.Equal(t, true, meta["cache_hit"])
	assert.EqualValues(t, 1, meta["total"])
}

func TestCourseHandlerGet(t *testing.T) {
	h := NewCourseHandler(&courseServiceMock{course: &models.Course{NumCourse: 6}, found: true})

	c, w := newTestContext(http.MethodGet, "/course/get/6", nil, gin.Param{Key: "id", Value: "6"})
	h.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"num_course":6,"level":0,"type_course":"","support":"","price":0,"time_slot":0}`, string(decode(t, w).Data))
}

func TestPisteHandlerGetNotFoundAndBadID(t *testing.T) {
	h := NewPisteHandler(&pisteServiceMock{})

	c, w := newTestContext(http.MethodGet, "/piste/get/2", nil, gin.Param{Key: "id", Value: "2"})
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	c, w = newTestContext(http.MethodGet, "/piste/get/-1", nil, gin.Param{Key: "id", Value: "-1"})
	h.Get(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPisteHandlerDelete(t *testing.T) {
	mockSvc := &pisteServiceMock{}
	h := NewPisteHandler(mockSvc)

	c, w := newTestContext(http.MethodDelete, "/piste/delete/9", nil, gin.Param{Key: "id", Value: "9"})
	h.Delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(9), mockSvc.deletedID)
}

func TestPisteHandlerListCacheMiss(t *testing.T) {
	h := NewPisteHandler(&pisteServiceMock{list: []models.Piste{}})

	c, w := newTestContext(http.MethodGet, "/piste/all", nil)
	h.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w).Meta["cache_hit"])
}

func TestInstructorHandlerAddAndAssignToCourse(t *testing.T) {
	mockSvc := &instructorServiceMock{instructor: &models.Instructor{NumInstructor: 2}}
	h := NewInstructorHandler(mockSvc)

	c, w := newTestContext(http.MethodPut, "/instructor/addAndAssignToCourse/4", map[string]interface{}{
		"first_name": "Marc", "last_name": "Girardelli", "date_of_hire": "2019-12-01", "support": "SNOWBOARD",
	}, gin.Param{Key: "numCourse", Value: "4"})
	h.AddAndAssignToCourse(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(4), mockSvc.lastCourse)
	require.NotNil(t, mockSvc.lastReq.Support)
	assert.Equal(t, models.SupportSnowboard, *mockSvc.lastReq.Support)
}

func TestInstructorHandlerAddAndAssignToMissingCourse(t *testing.T) {
	h := NewInstructorHandler(&instructorServiceMock{err: appErrors.Clone(appErrors.ErrNotFound, "course not found")})

	c, w := newTestContext(http.MethodPut, "/instructor/addAndAssignToCourse/4", map[string]interface{}{
		"first_name": "Marc", "last_name": "Girardelli",
	}, gin.Param{Key: "numCourse", Value: "4"})
	h.AddAndAssignToCourse(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInstructorHandlerGetAndList(t *testing.T) {
	mockSvc := &instructorServiceMock{
		instructor: &models.Instructor{NumInstructor: 1},
		found:      true,
		list:       []models.Instructor{{NumInstructor: 1}, {NumInstructor: 2}},
	}
	h := NewInstructorHandler(mockSvc)

	c, w := newTestContext(http.MethodGet, "/instructor/get/1", nil, gin.Param{Key: "id", Value: "1"})
	h.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodGet, "/instructor/all", nil)
	h.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(decode(t, w).Data), `"num_instructor":2`)
}
