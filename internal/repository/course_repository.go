package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ski-station-api/internal/models"
)

const courseColumns = `num_course, level, type_course, support, price, time_slot`

// CourseRepository persists lesson offers.
type CourseRepository struct {
	db *sqlx.DB
}

func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// Create inserts c and sets its generated identifier.
func (r *CourseRepository) Create(ctx context.Context, c *models.Course) error {
	const query = `INSERT INTO courses (level, type_course, support, price, time_slot) VALUES ($1, $2, $3, $4, $5) RETURNING num_course`
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &c.NumCourse, query, c.Level, c.TypeCourse, c.Support, c.Price, c.TimeSlot); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	return nil
}

// Update rewrites c. It returns sql.ErrNoRows when c does not exist.
func (r *CourseRepository) Update(ctx context.Context, c *models.Course) error {
	const query = `UPDATE courses SET level = $2, type_course = $3, support = $4, price = $5, time_slot = $6 WHERE num_course = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, c.NumCourse, c.Level, c.TypeCourse, c.Support, c.Price, c.TimeSlot)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return requireAffected(res, "update course")
}

// FindByID returns the course or sql.ErrNoRows.
func (r *CourseRepository) FindByID(ctx context.Context, numCourse int64) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE num_course = $1`
	var c models.Course
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &c, query, numCourse); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY num_course`
	courses := []models.Course{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &courses, query); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}
