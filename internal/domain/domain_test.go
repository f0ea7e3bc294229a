package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func samplePlant() Plant {
	h := 6.0
	return Plant{
		ID:             "p1",
		Name:           "Monty",
		CommonNames:    []string{"Swiss cheese plant"},
		Category:       CategoryTropical,
		DiameterInches: 8,
		HeightInches:   &h,
		Material:       MaterialPlastic,
		Season:         SeasonSummer,
		Environment:    EnvironmentIndoor,
		FertilizerForm: FertilizerLiquid,
		Settings: CareSettings{
			Schedule: CareSchedule{WateringIntervalDays: 7, FertilizingIntervalDays: 30, RepotIntervalMonths: 12},
			Light:    LightBrightIndirect,
		},
		CarePlan: &CarePlan{Advice: AdviceText{Humidity: "high"}, CreatedAt: time.Unix(0, 0)},
	}
}

func TestPlantClone_SharesNoMemory(t *testing.T) {
	p := samplePlant()
	c := p.Clone()
	assert.Equal(t, p, c)

	*c.HeightInches = 99
	c.CommonNames[0] = "changed"
	c.CarePlan.Advice.Humidity = "low"

	assert.Equal(t, 6.0, *p.HeightInches)
	assert.Equal(t, "Swiss cheese plant", p.CommonNames[0])
	assert.Equal(t, "high", p.CarePlan.Advice.Humidity)
}

func TestPlantProfile(t *testing.T) {
	p := samplePlant()
	profile := p.Profile()

	assert.Equal(t, LightBrightIndirect, profile.Light)
	assert.Equal(t, CategoryTropical, profile.Category)
	assert.Equal(t, 6.0, *profile.HeightInches)

	*profile.HeightInches = 1
	assert.Equal(t, 6.0, *p.HeightInches)
}

func TestApplyDraftChanges(t *testing.T) {
	current := CarePlanValues{
		WateringIntervalDays: 7, FertilizingIntervalDays: 30, RepotIntervalMonths: 12,
		Light: LightMedium, HumidityPercent: 50,
		Temperature: TemperatureRange{MinF: 65, MaxF: 75},
		Water:       WaterAmount{Amount: 250, Unit: UnitMilliliters},
	}
	proposed := current
	proposed.WateringIntervalDays = 5
	proposed.Light = LightBrightIndirect
	proposed.Temperature = TemperatureRange{MinF: 60, MaxF: 75}

	changes := ApplyDraft{Current: current, Proposed: proposed}.Changes()

	assert.Equal(t, []FieldChange{
		{Category: ApplyCategorySchedule, Field: "watering_interval_days", Current: "7", Proposed: "5"},
		{Category: ApplyCategoryLight, Field: "light", Current: "medium", Proposed: "bright_indirect"},
		{Category: ApplyCategoryTemperature, Field: "temperature", Current: "65-75°F", Proposed: "60-75°F"},
	}, changes)

	assert.Empty(t, ApplyDraft{Current: current, Proposed: current}.Changes())
}

func TestApplyFlags(t *testing.T) {
	assert.False(t, ApplyFlags{}.Any())
	assert.True(t, ApplyFlags{Humidity: true}.Any())
	assert.Len(t, AllApplyFlags().Categories(), 5)
	assert.Equal(t, []string{ApplyCategoryLight, ApplyCategoryWaterAmount}, ApplyFlags{Light: true, WaterAmount: true}.Categories())
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, CategoryFern.IsValid())
	assert.False(t, PlantCategory("moss").IsValid())
	assert.True(t, MaterialGlazedCeramic.IsValid())
	assert.False(t, LightLevel("bright").IsValid())
	assert.True(t, SeasonWinter.IsValid())
	assert.False(t, Environment("space").IsValid())
	assert.True(t, FertilizerSlowRelease.IsValid())
}

func TestCareSettingsValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings CareSettings
		wantErr  bool
	}{
		{"unset", CareSettings{}, false},
		{"sample", samplePlant().Settings, false},
		{"bounds", CareSettings{HumidityPercent: 90, Temperature: TemperatureRange{MinF: 40, MaxF: 95}}, false},
		{"single temperature", CareSettings{Temperature: TemperatureRange{MinF: 70, MaxF: 70}}, false},
		{"inverted temperature", CareSettings{Temperature: TemperatureRange{MinF: 80, MaxF: 60}}, true},
		{"temperature too hot", CareSettings{Temperature: TemperatureRange{MinF: 70, MaxF: 100}}, true},
		{"half-set temperature", CareSettings{Temperature: TemperatureRange{MaxF: 70}}, true},
		{"negative interval", CareSettings{Schedule: CareSchedule{FertilizingIntervalDays: -3}}, true},
		{"humidity too low", CareSettings{HumidityPercent: 10}, true},
		{"unknown light", CareSettings{Light: "bright"}, true},
		{"negative water", CareSettings{Water: WaterAmount{Amount: -1, Unit: UnitMilliliters}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
