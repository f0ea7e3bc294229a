package repository

import (
	"context"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// Plant defines the interface for plant state and care plan storage.
// SavePlant writes the plant's settings and care plan record in one
// transaction; a nil CarePlan deletes any stored record.
type Plant interface {
	GetPlant(ctx context.Context, id string) (*domain.Plant, error)
	SavePlant(ctx context.Context, plant *domain.Plant) error
	Ping(ctx context.Context) error
}
