package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/ski-station-api/internal/models"
)

const skierColumns = `s.num_skier, s.first_name, s.last_name, s.date_of_birth, s.city, s.num_sub`

// SkierRepository persists skiers with their subscription, pistes and registrations.
type SkierRepository struct {
	db *sqlx.DB
}

func NewSkierRepository(db *sqlx.DB) *SkierRepository {
	return &SkierRepository{db: db}
}

// Create inserts the skier. An embedded subscription without an identifier is
// inserted first in the same transaction and linked to the skier.
func (r *SkierRepository) Create(ctx context.Context, s *models.Skier) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin skier transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if s.Subscription != nil {
		if s.Subscription.NumSub == 0 {
			if err = insertSubscription(ctx, tx, s.Subscription); err != nil {
				return err
			}
		}
		s.NumSub = &s.Subscription.NumSub
	}

	const query = `INSERT INTO skiers (first_name, last_name, date_of_birth, city, num_sub) VALUES ($1, $2, $3, $4, $5) RETURNING num_skier`
	if err = tx.GetContext(ctx, &s.NumSkier, query, s.FirstName, s.LastName, s.DateOfBirth, s.City, s.NumSub); err != nil {
		return fmt.Errorf("create skier: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit skier: %w", err)
	}
	if s.Pistes == nil {
		s.Pistes = []models.Piste{}
	}
	if s.Registrations == nil {
		s.Registrations = []models.Registration{}
	}
	return nil
}

// Exists reports whether a skier with numSkier is stored.
func (r *SkierRepository) Exists(ctx context.Context, numSkier int64) (bool, error) {
	var exists bool
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &exists, `SELECT EXISTS(SELECT 1 FROM skiers WHERE num_skier = $1)`, numSkier); err != nil {
		return false, fmt.Errorf("check skier: %w", err)
	}
	return exists, nil
}

// FindByID returns the hydrated skier or sql.ErrNoRows.
func (r *SkierRepository) FindByID(ctx context.Context, numSkier int64) (*models.Skier, error) {
	query := `SELECT ` + skierColumns + ` FROM skiers s WHERE s.num_skier = $1`
	var s models.Skier
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &s, query, numSkier); err != nil {
		return nil, err
	}
	skiers := []models.Skier{s}
	if err := r.hydrate(ctx, skiers); err != nil {
		return nil, err
	}
	return &skiers[0], nil
}

// List returns every skier ordered by identifier.
func (r *SkierRepository) List(ctx context.Context) ([]models.Skier, error) {
	query := `SELECT ` + skierColumns + ` FROM skiers s ORDER BY s.num_skier`
	return r.selectHydrated(ctx, "list skiers", query)
}

// ListBySubscriptionType returns skiers holding a subscription of the given plan type.
func (r *SkierRepository) ListBySubscriptionType(ctx context.Context, typeSub models.TypeSubscription) ([]models.Skier, error) {
	query := `SELECT ` + skierColumns + ` FROM skiers s
JOIN subscriptions sub ON sub.num_sub = s.num_sub
WHERE sub.type_sub = $1 ORDER BY s.num_skier`
	return r.selectHydrated(ctx, "list skiers by subscription", query, typeSub)
}

// UpdateSubscription links the skier to numSub. It returns sql.ErrNoRows when the skier is absent.
func (r *SkierRepository) UpdateSubscription(ctx context.Context, numSkier, numSub int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `UPDATE skiers SET num_sub = $2 WHERE num_skier = $1`, numSkier, numSub)
	if err != nil {
		return fmt.Errorf("assign subscription: %w", err)
	}
	return requireAffected(res, "assign subscription")
}

// AddPiste links the skier to a piste. Linking twice is a no-op.
func (r *SkierRepository) AddPiste(ctx context.Context, numSkier, numPiste int64) error {
	const query = `INSERT INTO skier_pistes (num_skier, num_piste) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := conn(ctx, r.db).ExecContext(ctx, query, numSkier, numPiste); err != nil {
		return fmt.Errorf("assign piste: %w", err)
	}
	return nil
}

// Delete removes the skier with its registrations and piste links. It returns
// sql.ErrNoRows when absent.
func (r *SkierRepository) Delete(ctx context.Context, numSkier int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM skiers WHERE num_skier = $1`, numSkier)
	if err != nil {
		return fmt.Errorf("delete skier: %w", err)
	}
	return requireAffected(res, "delete skier")
}

func (r *SkierRepository) selectHydrated(ctx context.Context, op, query string, args ...interface{}) ([]models.Skier, error) {
	skiers := []models.Skier{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &skiers, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := r.hydrate(ctx, skiers); err != nil {
		return nil, err
	}
	return skiers, nil
}

// hydrate loads subscriptions, pistes and registrations for skiers in three queries.
func (r *SkierRepository) hydrate(ctx context.Context, skiers []models.Skier) error {
	if len(skiers) == 0 {
		return nil
	}

	q := conn(ctx, r.db)
	ids := make([]int64, 0, len(skiers))
	subIDs := make([]int64, 0, len(skiers))
	index := make(map[int64]int, len(skiers))
	for i := range skiers {
		ids = append(ids, skiers[i].NumSkier)
		index[skiers[i].NumSkier] = i
		skiers[i].Pistes = []models.Piste{}
		skiers[i].Registrations = []models.Registration{}
		if skiers[i].NumSub != nil {
			subIDs = append(subIDs, *skiers[i].NumSub)
		}
	}

	if len(subIDs) > 0 {
		var subs []models.Subscription
		query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE num_sub = ANY($1)`
		if err := sqlx.SelectContext(ctx, q, &subs, query, pq.Array(subIDs)); err != nil {
			return fmt.Errorf("load skier subscriptions: %w", err)
		}
		byID := make(map[int64]models.Subscription, len(subs))
		for _, sub := range subs {
			byID[sub.NumSub] = sub
		}
		for i := range skiers {
			if skiers[i].NumSub == nil {
				continue
			}
			if sub, ok := byID[*skiers[i].NumSub]; ok {
				skiers[i].Subscription = &sub
			}
		}
	}

	var pistes []struct {
		NumSkier int64 `db:"num_skier"`
		models.Piste
	}
	const pisteQuery = `SELECT sp.num_skier, p.num_piste, p.name_piste, p.color, p.length, p.slope
FROM skier_pistes sp JOIN pistes p ON p.num_piste = sp.num_piste
WHERE sp.num_skier = ANY($1) ORDER BY p.num_piste`
	if err := sqlx.SelectContext(ctx, q, &pistes, pisteQuery, pq.Array(ids)); err != nil {
		return fmt.Errorf("load skier pistes: %w", err)
	}
	for _, row := range pistes {
		i := index[row.NumSkier]
		skiers[i].Pistes = append(skiers[i].Pistes, row.Piste)
	}

	var regs []models.Registration
	query := `SELECT ` + registrationColumns + ` FROM registrations WHERE num_skier = ANY($1) ORDER BY num_week, num_registration`
	if err := sqlx.SelectContext(ctx, q, &regs, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("load skier registrations: %w", err)
	}
	for _, reg := range regs {
		i := index[reg.NumSkier]
		skiers[i].Registrations = append(skiers[i].Registrations, reg)
	}

	return nil
}
