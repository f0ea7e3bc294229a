package careplan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// TakeSnapshot captures every field an apply may change, plus whether a care
// plan record exists. The snapshot is a value copy of the plant's state.
func TakeSnapshot(plant domain.Plant, now time.Time) domain.UndoSnapshot {
	snap := domain.UndoSnapshot{
		ID:             uuid.NewString(),
		PlantID:        plant.ID,
		Settings:       plant.Settings,
		PlantUpdatedAt: plant.UpdatedAt,
		TakenAt:        now,
	}
	if plant.CarePlan != nil {
		snap.CarePlanExisted = true
		snap.CarePlan = *plant.CarePlan
	}
	return snap
}

// Apply copies the proposed values of each selected category onto a copy of
// plant and records the draft's advice as the plant's care plan. The input
// plant is not modified; the caller persists the returned plant in one write.
//
// A proposed water amount equal to the draft's current value is not copied,
// so a recommendation-derived default is not pinned as a stored override.
func Apply(plant domain.Plant, draft domain.ApplyDraft, flags domain.ApplyFlags, now time.Time) (domain.Plant, domain.UndoSnapshot, error) {
	if draft.PlantID != plant.ID {
		return domain.Plant{}, domain.UndoSnapshot{}, fmt.Errorf("%w: draft %q, plant %q", domain.ErrDraftPlantMismatch, draft.PlantID, plant.ID)
	}
	if !flags.Any() {
		return domain.Plant{}, domain.UndoSnapshot{}, domain.ErrNothingSelected
	}

	snap := TakeSnapshot(plant, now)
	next := plant.Clone()
	p := draft.Proposed

	if flags.Schedule {
		next.Settings.Schedule = domain.CareSchedule{
			WateringIntervalDays:    p.WateringIntervalDays,
			FertilizingIntervalDays: p.FertilizingIntervalDays,
			RepotIntervalMonths:     p.RepotIntervalMonths,
		}
	}
	if flags.Light {
		next.Settings.Light = p.Light
	}
	if flags.Humidity {
		next.Settings.HumidityPercent = p.HumidityPercent
	}
	if flags.Temperature {
		next.Settings.Temperature = p.Temperature
	}
	if flags.WaterAmount && p.Water != draft.Current.Water {
		next.Settings.Water = p.Water
	}

	if next.CarePlan == nil {
		next.CarePlan = &domain.CarePlan{CreatedAt: now}
	}
	next.CarePlan.Advice = draft.Advice
	next.CarePlan.UpdatedAt = now
	next.UpdatedAt = now

	return next, snap, nil
}

// Undo restores the snapshot's fields onto a copy of plant. A care plan that
// did not exist before the apply is removed.
func Undo(plant domain.Plant, snap domain.UndoSnapshot) (domain.Plant, error) {
	if snap.PlantID != plant.ID {
		return domain.Plant{}, fmt.Errorf("%w: snapshot %q, plant %q", domain.ErrSnapshotPlantMismatch, snap.PlantID, plant.ID)
	}

	restored := plant.Clone()
	restored.Settings = snap.Settings
	restored.UpdatedAt = snap.PlantUpdatedAt
	if snap.CarePlanExisted {
		plan := snap.CarePlan
		restored.CarePlan = &plan
	} else {
		restored.CarePlan = nil
	}
	return restored, nil
}
