// Package sqlite stores plants in an embedded SQLite database through gorm.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/repository"
)

// Open opens the database at path and migrates the plant tables
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}

	// one connection keeps an in-memory database alive and serializes writers
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpen, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&plantRecord{}, &carePlanRecord{}); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}
	return db, nil
}

type plantRepo struct{ db *gorm.DB }

// NewPlantRepository creates a plant repository backed by db
func NewPlantRepository(db *gorm.DB) repository.Plant { return &plantRepo{db: db} }

func (r *plantRepo) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	db := r.db.WithContext(ctx)

	var rec plantRecord
	if err := db.First(&rec, "plant_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, id)
		}
		return nil, fmt.Errorf("failed to query plant: %w", err)
	}

	var plans []carePlanRecord
	if err := db.Where("plant_id = ?", id).Limit(1).Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to query care plan: %w", err)
	}

	var cp *carePlanRecord
	if len(plans) > 0 {
		cp = &plans[0]
	}
	return fromRecords(rec, cp)
}

// SavePlant writes the plant and its care plan record in one transaction.
// A plant without a care plan has any stored record deleted.
func (r *plantRepo) SavePlant(ctx context.Context, plant *domain.Plant) error {
	rec, cp, err := toRecords(plant)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&rec).Error; err != nil {
			return fmt.Errorf("failed to save plant: %w", err)
		}
		if cp == nil {
			if err := tx.Where("plant_id = ?", plant.ID).Delete(&carePlanRecord{}).Error; err != nil {
				return fmt.Errorf("failed to delete care plan: %w", err)
			}
			return nil
		}
		if err := tx.Save(cp).Error; err != nil {
			return fmt.Errorf("failed to save care plan: %w", err)
		}
		return nil
	})
}

func (r *plantRepo) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
