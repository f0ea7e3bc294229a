package careplan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

var fixedNow = time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

func changedDraft(p domain.Plant) domain.ApplyDraft {
	return BuildApplyDraft(p, domain.AdviceText{
		WateringFrequency:    "every 4 days",
		FertilizingFrequency: "every other week",
		RepotInterval:        "every 18 months",
		LightIntensity:       "direct sun",
		Humidity:             "60%",
		Temperature:          "60-80°F",
		WaterAmount:          "2 cups",
	})
}

func TestApply_AllCategories(t *testing.T) {
	p := testPlant()
	draft := changedDraft(p)

	next, snap, err := Apply(p, draft, domain.AllApplyFlags(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, domain.CareSettings{
		Schedule:        domain.CareSchedule{WateringIntervalDays: 4, FertilizingIntervalDays: 14, RepotIntervalMonths: 18},
		Light:           domain.LightDirect,
		HumidityPercent: 60,
		Temperature:     domain.TemperatureRange{MinF: 60, MaxF: 80},
		Water:           domain.WaterAmount{Amount: 473.2, Unit: domain.UnitMilliliters},
	}, next.Settings)

	require.NotNil(t, next.CarePlan)
	assert.Equal(t, draft.Advice, next.CarePlan.Advice)
	assert.Equal(t, fixedNow, next.CarePlan.CreatedAt)
	assert.Equal(t, fixedNow, next.UpdatedAt)

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, p.ID, snap.PlantID)
	assert.Equal(t, p.Settings, snap.Settings)
	assert.False(t, snap.CarePlanExisted)
}

func TestApply_OnlySelectedCategories(t *testing.T) {
	p := testPlant()
	draft := changedDraft(p)

	next, _, err := Apply(p, draft, domain.ApplyFlags{Light: true, Humidity: true}, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, p.Settings.Schedule, next.Settings.Schedule)
	assert.Equal(t, p.Settings.Temperature, next.Settings.Temperature)
	assert.Equal(t, p.Settings.Water, next.Settings.Water)
	assert.Equal(t, domain.LightDirect, next.Settings.Light)
	assert.Equal(t, 60, next.Settings.HumidityPercent)
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	p := testPlant()
	before := p.Clone()

	_, _, err := Apply(p, changedDraft(p), domain.AllApplyFlags(), fixedNow)
	require.NoError(t, err)
	assert.Equal(t, before, p)
}

func TestApply_UpdatesExistingCarePlan(t *testing.T) {
	p := testPlant()
	created := fixedNow.Add(-48 * time.Hour)
	p.CarePlan = &domain.CarePlan{Advice: domain.AdviceText{Humidity: "low"}, CreatedAt: created, UpdatedAt: created}

	next, snap, err := Apply(p, changedDraft(p), domain.AllApplyFlags(), fixedNow)
	require.NoError(t, err)

	assert.Equal(t, created, next.CarePlan.CreatedAt)
	assert.Equal(t, fixedNow, next.CarePlan.UpdatedAt)
	assert.Equal(t, "60%", next.CarePlan.Advice.Humidity)

	assert.True(t, snap.CarePlanExisted)
	assert.Equal(t, "low", snap.CarePlan.Advice.Humidity)

	// the snapshot is a value, not a live reference
	next.CarePlan.Advice.Humidity = "mutated"
	p.CarePlan.Advice.Humidity = "mutated too"
	assert.Equal(t, "low", snap.CarePlan.Advice.Humidity)
}

func TestApply_Errors(t *testing.T) {
	p := testPlant()
	draft := changedDraft(p)

	_, _, err := Apply(p, draft, domain.ApplyFlags{}, fixedNow)
	assert.ErrorIs(t, err, domain.ErrNothingSelected)

	other := p
	other.ID = "plant-2"
	_, _, err = Apply(other, draft, domain.AllApplyFlags(), fixedNow)
	assert.ErrorIs(t, err, domain.ErrDraftPlantMismatch)
}

func TestUndo_RestoresExactly(t *testing.T) {
	withPlan := testPlant()
	withPlan.UpdatedAt = fixedNow.Add(-time.Hour)
	withPlan.CarePlan = &domain.CarePlan{Advice: domain.AdviceText{Temperature: "warm"}, CreatedAt: fixedNow.Add(-time.Hour)}

	tests := []struct {
		name  string
		plant domain.Plant
	}{
		{"care plan created by apply is removed", testPlant()},
		{"existing care plan is restored", withPlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, snap, err := Apply(tt.plant, changedDraft(tt.plant), domain.AllApplyFlags(), fixedNow)
			require.NoError(t, err)
			require.NotEqual(t, tt.plant.Settings, next.Settings)

			restored, err := Undo(next, snap)
			require.NoError(t, err)
			assert.Equal(t, tt.plant, restored)
			assert.Equal(t, tt.plant.CarePlan == nil, restored.CarePlan == nil)
		})
	}
}

func TestUndo_WrongPlant(t *testing.T) {
	p := testPlant()
	_, snap, err := Apply(p, changedDraft(p), domain.AllApplyFlags(), fixedNow)
	require.NoError(t, err)

	other := p
	other.ID = "plant-2"
	_, err = Undo(other, snap)
	assert.ErrorIs(t, err, domain.ErrSnapshotPlantMismatch)
}
