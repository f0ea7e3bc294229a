package planparse

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// FormatAdvice renders structured values as advice phrases the parsers read
// back to the same values. Unset fields render as empty strings.
func FormatAdvice(v domain.CarePlanValues) domain.AdviceText {
	return domain.AdviceText{
		WateringFrequency:    FormatDays(v.WateringIntervalDays),
		FertilizingFrequency: FormatDays(v.FertilizingIntervalDays),
		RepotInterval:        FormatMonths(v.RepotIntervalMonths),
		LightIntensity:       FormatLight(v.Light),
		Humidity:             FormatHumidity(v.HumidityPercent),
		Temperature:          FormatTemperature(v.Temperature),
		WaterAmount:          FormatWaterAmount(v.Water),
	}
}

// FormatDays renders an interval in days, e.g. "Daily" or "Every 6 days"
func FormatDays(days int) string {
	switch {
	case days <= 0:
		return ""
	case days == 1:
		return "Daily"
	default:
		return fmt.Sprintf("Every %d days", days)
	}
}

// FormatMonths renders an interval in months
func FormatMonths(months int) string {
	switch {
	case months <= 0:
		return ""
	case months == 1:
		return "Every month"
	default:
		return fmt.Sprintf("Every %d months", months)
	}
}

// FormatLight renders a light level as a display label, e.g. "Bright Indirect light"
func FormatLight(l domain.LightLevel) string {
	if !l.IsValid() {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(l), "_", " ")) + " light"
}

func FormatHumidity(percent int) string {
	if percent <= 0 {
		return ""
	}
	return fmt.Sprintf("%d%% humidity", percent)
}

func FormatTemperature(t domain.TemperatureRange) string {
	if t == (domain.TemperatureRange{}) {
		return ""
	}
	return fmt.Sprintf("%d-%d°F", t.MinF, t.MaxF)
}

func FormatWaterAmount(w domain.WaterAmount) string {
	if w.IsZero() {
		return ""
	}
	unit := w.Unit
	if unit == "" {
		unit = domain.UnitMilliliters
	}
	return strconv.FormatFloat(w.Amount, 'f', -1, 64) + " " + unit
}
