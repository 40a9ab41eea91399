package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/medishift/clinic-backend-go/internal/domain/clinic"
	"github.com/medishift/clinic-backend-go/internal/pkg/database"
)

type clinicRepository struct {
	db *database.DB
}

func NewClinicRepository(db *database.DB) clinic.ClinicRepository {
	return &clinicRepository{db: db}
}

func (r *clinicRepository) GetByID(ctx context.Context, id string) (clinic.Clinic, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, created_at, updated_at
		FROM clinics
		WHERE id = $1
	`

	var c clinic.Clinic
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return clinic.Clinic{}, clinic.ErrClinicNotFound
		}
		return clinic.Clinic{}, fmt.Errorf("failed to get clinic: %w", err)
	}

	return c, nil
}

func (r *clinicRepository) List(ctx context.Context) ([]clinic.Clinic, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, created_at, updated_at
		FROM clinics
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinics: %w", err)
	}
	defer rows.Close()

	var clinics []clinic.Clinic
	for rows.Next() {
		var c clinic.Clinic
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan clinic: %w", err)
		}
		clinics = append(clinics, c)
	}

	return clinics, nil
}
