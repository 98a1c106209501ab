package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/ski-station-api/internal/models"
)

const instructorColumns = `num_instructor, first_name, last_name, date_of_hire, support`

// InstructorRepository persists instructors and the courses they teach.
type InstructorRepository struct {
	db *sqlx.DB
}

func NewInstructorRepository(db *sqlx.DB) *InstructorRepository {
	return &InstructorRepository{db: db}
}

// Create inserts the instructor and links every course in i.Courses within one transaction.
func (r *InstructorRepository) Create(ctx context.Context, i *models.Instructor) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin instructor transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const query = `INSERT INTO instructors (first_name, last_name, date_of_hire, support) VALUES ($1, $2, $3, $4) RETURNING num_instructor`
	if err = tx.GetContext(ctx, &i.NumInstructor, query, i.FirstName, i.LastName, i.DateOfHire, i.Support); err != nil {
		return fmt.Errorf("create instructor: %w", err)
	}

	for _, c := range i.Courses {
		if err = linkCourse(ctx, tx, i.NumInstructor, c.NumCourse); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit instructor: %w", err)
	}
	if i.Courses == nil {
		i.Courses = []models.Course{}
	}
	return nil
}

// Update rewrites the instructor's own columns. It returns sql.ErrNoRows when absent.
func (r *InstructorRepository) Update(ctx context.Context, i *models.Instructor) error {
	const query = `UPDATE instructors SET first_name = $2, last_name = $3, date_of_hire = $4, support = $5 WHERE num_instructor = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, i.NumInstructor, i.FirstName, i.LastName, i.DateOfHire, i.Support)
	if err != nil {
		return fmt.Errorf("update instructor: %w", err)
	}
	return requireAffected(res, "update instructor")
}

func linkCourse(ctx context.Context, e sqlx.ExecerContext, numInstructor, numCourse int64) error {
	const query = `INSERT INTO instructor_courses (num_instructor, num_course) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := e.ExecContext(ctx, query, numInstructor, numCourse); err != nil {
		return fmt.Errorf("assign course to instructor: %w", err)
	}
	return nil
}

// Exists reports whether an instructor with numInstructor is stored.
func (r *InstructorRepository) Exists(ctx context.Context, numInstructor int64) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &exists, `SELECT EXISTS(SELECT 1 FROM instructors WHERE num_instructor = $1)`, numInstructor); err != nil {
		return false, fmt.Errorf("check instructor: %w", err)
	}
	return exists, nil
}

// FindByID returns the instructor with courses or sql.ErrNoRows.
func (r *InstructorRepository) FindByID(ctx context.Context, numInstructor int64) (*models.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors WHERE num_instructor = $1`
	var i models.Instructor
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &i, query, numInstructor); err != nil {
		return nil, err
	}
	instructors := []models.Instructor{i}
	if err := r.loadCourses(ctx, instructors); err != nil {
		return nil, err
	}
	return &instructors[0], nil
}

func (r *InstructorRepository) List(ctx context.Context) ([]models.Instructor, error) {
	query := `SELECT ` + instructorColumns + ` FROM instructors ORDER BY num_instructor`
	instructors := []models.Instructor{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &instructors, query); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	if err := r.loadCourses(ctx, instructors); err != nil {
		return nil, err
	}
	return instructors, nil
}

func (r *InstructorRepository) loadCourses(ctx context.Context, instructors []models.Instructor) error {
	if len(instructors) == 0 {
		return nil
	}
	ids := make([]int64, len(instructors))
	index := make(map[int64]int, len(instructors))
	for i := range instructors {
		ids[i] = instructors[i].NumInstructor
		index[ids[i]] = i
		instructors[i].Courses = []models.Course{}
	}

	var rows []struct {
		NumInstructor int64 `db:"num_instructor"`
		models.Course
	}
	const query = `SELECT ic.num_instructor, c.num_course, c.level, c.type_course, c.support, c.price, c.time_slot
FROM instructor_courses ic JOIN courses c ON c.num_course = ic.num_course
WHERE ic.num_instructor = ANY($1) ORDER BY c.num_course`
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &rows, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("load instructor courses: %w", err)
	}
	for _, row := range rows {
		i := index[row.NumInstructor]
		instructors[i].Courses = append(instructors[i].Courses, row.Course)
	}
	return nil
}
