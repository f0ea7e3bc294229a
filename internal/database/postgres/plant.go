// Package postgres stores plants and their care plan records in PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/repository"
)

// PlantRepository implements repository.Plant for PostgreSQL
type PlantRepository struct {
	pool *pgxpool.Pool
}

// NewPlantRepository creates a new PlantRepository
func NewPlantRepository(pool *pgxpool.Pool) repository.Plant {
	return &PlantRepository{pool: pool}
}

// GetPlant loads a plant together with its care plan record, if any
func (r *PlantRepository) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	var (
		p                    domain.Plant
		commonNames          []byte
		settings             []byte
		updatedAt            time.Time
		advice               []byte
		planCreated, planUpd *time.Time
	)

	err := r.pool.QueryRow(ctx, selectPlantSQL, id).Scan(
		&p.ID, &p.Name, &commonNames, &p.Family, &p.ScientificName, &p.Category,
		&p.DiameterInches, &p.HeightInches, &p.Material, &p.Season, &p.Environment,
		&p.FertilizerForm, &settings, &updatedAt,
		&advice, &planCreated, &planUpd,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, id)
		}
		return nil, fmt.Errorf("failed to query plant: %w", err)
	}

	if err := json.Unmarshal(commonNames, &p.CommonNames); err != nil {
		return nil, fmt.Errorf("%s common_names: %w", ErrMsgFailedToUnmarshal, err)
	}
	if err := json.Unmarshal(settings, &p.Settings); err != nil {
		return nil, fmt.Errorf("%s settings: %w", ErrMsgFailedToUnmarshal, err)
	}
	p.UpdatedAt = updatedAt.UTC()

	if advice != nil {
		plan := domain.CarePlan{}
		if err := json.Unmarshal(advice, &plan.Advice); err != nil {
			return nil, fmt.Errorf("%s advice: %w", ErrMsgFailedToUnmarshal, err)
		}
		if planCreated != nil {
			plan.CreatedAt = planCreated.UTC()
		}
		if planUpd != nil {
			plan.UpdatedAt = planUpd.UTC()
		}
		p.CarePlan = &plan
	}

	return &p, nil
}

// SavePlant upserts the plant row and its care plan record in one transaction.
// A plant without a care plan has any stored record deleted.
func (r *PlantRepository) SavePlant(ctx context.Context, plant *domain.Plant) error {
	commonNames, err := json.Marshal(plant.CommonNames)
	if err != nil {
		return fmt.Errorf("%s common_names: %w", ErrMsgFailedToMarshal, err)
	}
	settings, err := json.Marshal(plant.Settings)
	if err != nil {
		return fmt.Errorf("%s settings: %w", ErrMsgFailedToMarshal, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.Exec(ctx, upsertPlantSQL,
		plant.ID, plant.Name, commonNames, plant.Family, plant.ScientificName, string(plant.Category),
		plant.DiameterInches, plant.HeightInches, string(plant.Material), string(plant.Season), string(plant.Environment),
		string(plant.FertilizerForm), settings, plant.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert plant: %w", err)
	}

	if plant.CarePlan == nil {
		if _, err := tx.Exec(ctx, deleteCarePlanSQL, plant.ID); err != nil {
			return fmt.Errorf("failed to delete care plan: %w", err)
		}
	} else {
		advice, err := json.Marshal(plant.CarePlan.Advice)
		if err != nil {
			return fmt.Errorf("%s advice: %w", ErrMsgFailedToMarshal, err)
		}
		if _, err := tx.Exec(ctx, upsertCarePlanSQL, plant.ID, advice, plant.CarePlan.CreatedAt, plant.CarePlan.UpdatedAt); err != nil {
			return fmt.Errorf("failed to upsert care plan: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// Ping checks database connectivity
func (r *PlantRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
