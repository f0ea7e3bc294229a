// Package weather rescales a watering recommendation for current weather.
package weather

import (
	"math"
	"regexp"
	"strings"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

var everyPattern = regexp.MustCompile(`(?i)\bevery\b`)

// Adjust rescales rec for the given temperature (°F), relative humidity
// (0-1) and sky condition. The input recommendation is not modified.
func Adjust(rec domain.WateringRecommendation, temperatureF, humidity float64, condition domain.WeatherCondition) (domain.WateringRecommendation, domain.WeatherAdjustment) {
	mult := Multiplier(temperatureF, humidity)
	light := LightAdjustmentFor(condition)

	out := rec
	out.Amount = max(int(math.Round(float64(rec.Amount)*mult)), 0)
	out.Frequency = RewriteFrequency(rec.Frequency, mult)
	if note, ok := lightAdjustmentNotes[light]; ok {
		out.LightAdjustmentNote = note
	}

	return out, domain.WeatherAdjustment{
		Multiplier:      mult,
		LightAdjustment: light,
		Advisory:        Advisory(temperatureF, condition),
	}
}

// Multiplier computes the clamped watering multiplier for the conditions
func Multiplier(temperatureF, humidity float64) float64 {
	m := BaseMultiplier
	switch {
	case temperatureF > HotThresholdF:
		m += HotAdjustment
	case temperatureF < CoolThresholdF:
		m += CoolAdjustment
	}
	switch {
	case humidity < DryThreshold:
		m += DryAdjustment
	case humidity > HumidThreshold:
		m += HumidAdjustment
	}
	// Round away float noise so 1.0+0.3 compares equal to 1.3
	m = math.Round(m*100) / 100
	return math.Min(math.Max(m, MinMultiplier), MaxMultiplier)
}

// LightAdjustmentFor maps a sky condition to a lighting action
func LightAdjustmentFor(condition domain.WeatherCondition) domain.LightAdjustment {
	if adj, ok := lightAdjustments[condition]; ok {
		return adj
	}
	return domain.LightAdjustmentNormal
}

// RewriteFrequency qualifies each "every" in freq when the multiplier is
// outside the neutral band, keeping the original capitalization.
func RewriteFrequency(freq string, mult float64) string {
	var prefix string
	switch {
	case mult > MoreFrequentAbove:
		prefix = morePrefix
	case mult < LessFrequentBelow:
		prefix = lessPrefix
	default:
		return freq
	}

	return everyPattern.ReplaceAllStringFunc(freq, func(match string) string {
		replacement := prefix + strings.ToLower(match)
		if match[0] >= 'A' && match[0] <= 'Z' {
			replacement = strings.ToUpper(replacement[:1]) + replacement[1:]
		}
		return replacement
	})
}

// Advisory joins the temperature and condition phrases, skipping empty ones
func Advisory(temperatureF float64, condition domain.WeatherCondition) string {
	var parts []string
	if t := temperatureAdvisory(temperatureF); t != "" {
		parts = append(parts, t)
	}
	if c := conditionAdvisories[condition]; c != "" {
		parts = append(parts, c)
	}
	return strings.Join(parts, AdvisorySeparator)
}

func temperatureAdvisory(temperatureF float64) string {
	switch {
	case temperatureF > HeatWaveThresholdF:
		return MsgHeatWave
	case temperatureF > HotThresholdF:
		return MsgHot
	case temperatureF < ColdThresholdF:
		return MsgCold
	case temperatureF < CoolThresholdF:
		return MsgCool
	default:
		return ""
	}
}
