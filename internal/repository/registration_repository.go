package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ski-station-api/internal/models"
)

const registrationColumns = `num_registration, num_week, num_skier, num_course`

// RegistrationRepository persists course registrations.
type RegistrationRepository struct {
	db *sqlx.DB
}

func NewRegistrationRepository(db *sqlx.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// WithinCourseLock runs fn in a transaction holding a row lock on the course, so
// eligibility checks and the insert they guard are serialised per course.
// Repository calls made with the context passed to fn join the transaction. The
// lock query returns sql.ErrNoRows (wrapped) when the course does not exist.
func (r *RegistrationRepository) WithinCourseLock(ctx context.Context, numCourse int64, fn func(ctx context.Context) error) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin registration transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var locked int64
	if err = tx.GetContext(ctx, &locked, `SELECT num_course FROM courses WHERE num_course = $1 FOR UPDATE`, numCourse); err != nil {
		return fmt.Errorf("lock course %d: %w", numCourse, err)
	}

	if err = fn(withTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit registration: %w", err)
	}
	return nil
}

// CountBySkierCourseWeek counts registrations of one skier in a course for a week.
func (r *RegistrationRepository) CountBySkierCourseWeek(ctx context.Context, numSkier, numCourse int64, numWeek int) (int, error) {
	const query = `SELECT COUNT(*) FROM registrations WHERE num_week = $1 AND num_skier = $2 AND num_course = $3`
	var count int
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &count, query, numWeek, numSkier, numCourse); err != nil {
		return 0, fmt.Errorf("count skier registrations: %w", err)
	}
	return count, nil
}

// CountByCourseAndWeek counts registrations of all skiers in a course for a week.
func (r *RegistrationRepository) CountByCourseAndWeek(ctx context.Context, numCourse int64, numWeek int) (int, error) {
	const query = `SELECT COUNT(*) FROM registrations WHERE num_course = $1 AND num_week = $2`
	var count int
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &count, query, numCourse, numWeek); err != nil {
		return 0, fmt.Errorf("count course registrations: %w", err)
	}
	return count, nil
}

// Create inserts reg and sets its generated identifier. A unique violation on
// (skier, course, week) is reported as ErrDuplicateRegistration.
func (r *RegistrationRepository) Create(ctx context.Context, reg *models.Registration) error {
	const query = `INSERT INTO registrations (num_week, num_skier, num_course) VALUES ($1, $2, $3) RETURNING num_registration`
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &reg.NumRegistration, query, reg.NumWeek, reg.NumSkier, reg.NumCourse); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRegistration
		}
		return fmt.Errorf("create registration: %w", err)
	}
	return nil
}

// FindByID returns the registration or sql.ErrNoRows.
func (r *RegistrationRepository) FindByID(ctx context.Context, numRegistration int64) (*models.Registration, error) {
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE num_registration = $1`
	var reg models.Registration
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &reg, query, numRegistration); err != nil {
		return nil, err
	}
	return &reg, nil
}

// UpdateCourse binds a registration to a course. It returns sql.ErrNoRows when
// the registration is absent and ErrDuplicateRegistration on a unique violation.
func (r *RegistrationRepository) UpdateCourse(ctx context.Context, numRegistration, numCourse int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `UPDATE registrations SET num_course = $2 WHERE num_registration = $1`, numRegistration, numCourse)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRegistration
		}
		return fmt.Errorf("assign registration course: %w", err)
	}
	return requireAffected(res, "assign registration course")
}

// WeeksByInstructorAndSupport lists the distinct weeks, ascending, with registrations
// in courses of the given support taught by the instructor.
func (r *RegistrationRepository) WeeksByInstructorAndSupport(ctx context.Context, numInstructor int64, support models.Support) ([]int, error) {
	const query = `SELECT DISTINCT r.num_week FROM registrations r
JOIN courses c ON c.num_course = r.num_course
JOIN instructor_courses ic ON ic.num_course = c.num_course
WHERE ic.num_instructor = $1 AND c.support = $2
ORDER BY r.num_week`
	weeks := []int{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &weeks, query, numInstructor, support); err != nil {
		return nil, fmt.Errorf("list instructor weeks: %w", err)
	}
	return weeks, nil
}

// ListRosterByCourse returns the registrations of a course joined with their skiers.
func (r *RegistrationRepository) ListRosterByCourse(ctx context.Context, numCourse int64) ([]models.RosterEntry, error) {
	const query = `SELECT r.num_registration, r.num_week, s.num_skier, s.first_name, s.last_name, s.city
FROM registrations r JOIN skiers s ON s.num_skier = r.num_skier
WHERE r.num_course = $1
ORDER BY r.num_week, s.last_name, s.first_name`
	entries := []models.RosterEntry{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &entries, query, numCourse); err != nil {
		return nil, fmt.Errorf("list course roster: %w", err)
	}
	return entries, nil
}
