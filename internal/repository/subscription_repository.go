package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ski-station-api/internal/models"
)

const subscriptionColumns = `num_sub, type_sub, start_date, end_date, price`

// SubscriptionRepository persists ski passes.
type SubscriptionRepository struct {
	db *sqlx.DB
}

// NewSubscriptionRepository constructs the repository.
func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts sub and sets its generated identifier.
func (r *SubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	return insertSubscription(ctx, conn(ctx, r.db), sub)
}

func insertSubscription(ctx context.Context, q sqlx.QueryerContext, sub *models.Subscription) error {
	const query = `INSERT INTO subscriptions (type_sub, start_date, end_date, price) VALUES ($1, $2, $3, $4) RETURNING num_sub`
	if err := sqlx.GetContext(ctx, q, &sub.NumSub, query, sub.TypeSub, sub.StartDate, sub.EndDate, sub.Price); err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}
	return nil
}

// Update rewrites every column of sub. It returns sql.ErrNoRows when sub does not exist.
func (r *SubscriptionRepository) Update(ctx context.Context, sub *models.Subscription) error {
	const query = `UPDATE subscriptions SET type_sub = $2, start_date = $3, end_date = $4, price = $5 WHERE num_sub = $1`
	res, err := conn(ctx, r.db).ExecContext(ctx, query, sub.NumSub, sub.TypeSub, sub.StartDate, sub.EndDate, sub.Price)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return requireAffected(res, "update subscription")
}

// FindByID returns the subscription or sql.ErrNoRows.
func (r *SubscriptionRepository) FindByID(ctx context.Context, numSub int64) (*models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE num_sub = $1`
	var sub models.Subscription
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &sub, query, numSub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// List returns every subscription ordered by identifier.
func (r *SubscriptionRepository) List(ctx context.Context) ([]models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions ORDER BY num_sub`
	subs := []models.Subscription{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &subs, query); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return subs, nil
}

// ListByType returns subscriptions of a plan type ordered by start date.
func (r *SubscriptionRepository) ListByType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE type_sub = $1 ORDER BY start_date, num_sub`
	subs := []models.Subscription{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &subs, query, typeSub); err != nil {
		return nil, fmt.Errorf("list subscriptions by type: %w", err)
	}
	return subs, nil
}

// ListByStartDateRange returns subscriptions starting between from and to, both inclusive.
func (r *SubscriptionRepository) ListByStartDateRange(ctx context.Context, from, to models.Date) ([]models.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE start_date BETWEEN $1 AND $2 ORDER BY start_date, num_sub`
	subs := []models.Subscription{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &subs, query, from, to); err != nil {
		return nil, fmt.Errorf("list subscriptions by dates: %w", err)
	}
	return subs, nil
}

func requireAffected(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
