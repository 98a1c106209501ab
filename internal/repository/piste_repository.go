package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/ski-station-api/internal/models"
)

const pisteColumns = `num_piste, name_piste, color, length, slope`

// PisteRepository persists runs.
type PisteRepository struct {
	db *sqlx.DB
}

func NewPisteRepository(db *sqlx.DB) *PisteRepository {
	return &PisteRepository{db: db}
}

// Create inserts p and sets its generated identifier.
func (r *PisteRepository) Create(ctx context.Context, p *models.Piste) error {
	const query = `INSERT INTO pistes (name_piste, color, length, slope) VALUES ($1, $2, $3, $4) RETURNING num_piste`
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &p.NumPiste, query, p.NamePiste, p.Color, p.Length, p.Slope); err != nil {
		return fmt.Errorf("create piste: %w", err)
	}
	return nil
}

// FindByID returns the piste or sql.ErrNoRows.
func (r *PisteRepository) FindByID(ctx context.Context, numPiste int64) (*models.Piste, error) {
	query := `SELECT ` + pisteColumns + ` FROM pistes WHERE num_piste = $1`
	var p models.Piste
	if err := sqlx.GetContext(ctx, conn(ctx, r.db), &p, query, numPiste); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PisteRepository) List(ctx context.Context) ([]models.Piste, error) {
	query := `SELECT ` + pisteColumns + ` FROM pistes ORDER BY num_piste`
	pistes := []models.Piste{}
	if err := sqlx.SelectContext(ctx, conn(ctx, r.db), &pistes, query); err != nil {
		return nil, fmt.Errorf("list pistes: %w", err)
	}
	return pistes, nil
}

// Delete removes the piste and its skier links. It returns sql.ErrNoRows when absent.
func (r *PisteRepository) Delete(ctx context.Context, numPiste int64) error {
	res, err := conn(ctx, r.db).ExecContext(ctx, `DELETE FROM pistes WHERE num_piste = $1`, numPiste)
	if err != nil {
		return fmt.Errorf("delete piste: %w", err)
	}
	return requireAffected(res, "delete piste")
}
