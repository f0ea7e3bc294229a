package planparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

func TestFormatAdvice(t *testing.T) {
	advice := FormatAdvice(domain.CarePlanValues{
		WateringIntervalDays:    6,
		FertilizingIntervalDays: 1,
		RepotIntervalMonths:     12,
		Light:                   domain.LightBrightIndirect,
		HumidityPercent:         55,
		Temperature:             domain.TemperatureRange{MinF: 65, MaxF: 75},
		Water:                   domain.WaterAmount{Amount: 354.9, Unit: domain.UnitMilliliters},
	})

	assert.Equal(t, "Every 6 days", advice.WateringFrequency)
	assert.Equal(t, "Daily", advice.FertilizingFrequency)
	assert.Equal(t, "Every 12 months", advice.RepotInterval)
	assert.Equal(t, "Bright Indirect light", advice.LightIntensity)
	assert.Equal(t, "55% humidity", advice.Humidity)
	assert.Equal(t, "65-75°F", advice.Temperature)
	assert.Equal(t, "354.9 ml", advice.WaterAmount)
}

func TestFormatAdvice_UnsetFieldsAreEmpty(t *testing.T) {
	assert.Equal(t, domain.AdviceText{}, FormatAdvice(domain.CarePlanValues{}))
}

func TestFormatAdvice_RoundTrip(t *testing.T) {
	for days := 1; days <= 120; days++ {
		got, ok := ParseInterval(FormatDays(days), domain.IntervalDays)
		require.True(t, ok, days)
		require.Equal(t, days, got)
	}

	for months := 1; months <= 48; months++ {
		got, ok := ParseInterval(FormatMonths(months), domain.IntervalMonths)
		require.True(t, ok, months)
		require.Equal(t, months, got)
	}

	for pct := domain.MinHumidityPercent; pct <= domain.MaxHumidityPercent; pct++ {
		got, ok := ParseHumidity(FormatHumidity(pct))
		require.True(t, ok, pct)
		require.Equal(t, pct, got)
	}

	for lo := domain.MinTemperatureF; lo <= domain.MaxTemperatureF; lo += 5 {
		for hi := lo; hi <= domain.MaxTemperatureF; hi += 3 {
			want := domain.TemperatureRange{MinF: lo, MaxF: hi}
			got, ok := ParseTemperatureRange(FormatTemperature(want))
			require.True(t, ok, want)
			require.Equal(t, want, got)
		}
	}

	for _, level := range domain.LightLevels {
		got, ok := ParseLightLevel(FormatLight(level))
		require.True(t, ok, level)
		require.Equal(t, level, got)
	}

	for _, amount := range []float64{1, 50, 118.3, 250, 1794, 2500.5} {
		want := domain.WaterAmount{Amount: amount, Unit: domain.UnitMilliliters}
		got, ok := ParseWaterAmount(FormatWaterAmount(want))
		require.True(t, ok, amount)
		require.Equal(t, want, got)
	}
}
