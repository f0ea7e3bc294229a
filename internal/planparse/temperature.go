package planparse

import (
	"math"
	"regexp"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

const (
	// celsiusCeiling: when every value is at or below it and no Fahrenheit
	// marker is present, the values are read as Celsius
	celsiusCeiling = 45.0

	// singleValueBand is the half-width of the range synthesized from one value
	singleValueBand = 5.0
)

var (
	celsiusMarker    = regexp.MustCompile(`celsius|centigrade|°\s*c\b|\d\s*c\b|\bdeg(?:rees?)?\s*c\b`)
	fahrenheitMarker = regexp.MustCompile(`fahrenheit|°\s*f\b|\d\s*f\b|\bdeg(?:rees?)?\s*f\b`)
)

// ParseTemperatureRange reads a comfortable temperature band in °F. Values
// are read as Celsius when a Celsius marker precedes any Fahrenheit marker,
// or when no marker is present and every value is at most 45. A single
// value becomes a ±5° band. Both ends are clamped to [40,95] with min ≤ max.
func ParseTemperatureRange(text string) (domain.TemperatureRange, bool) {
	s := Normalize(text)
	nums := extractNumbers(s)
	if len(nums) == 0 {
		return domain.TemperatureRange{}, false
	}

	lo, hi := nums[0], nums[0]
	if len(nums) >= 2 {
		lo, hi = nums[0], nums[1]
	}

	if isCelsius(s, lo, hi) {
		lo, hi = celsiusToFahrenheit(lo), celsiusToFahrenheit(hi)
	}
	if len(nums) == 1 {
		lo, hi = lo-singleValueBand, hi+singleValueBand
	}

	minF, maxF := clampTemperature(lo), clampTemperature(hi)
	if minF > maxF {
		minF, maxF = maxF, minF
	}
	return domain.TemperatureRange{MinF: minF, MaxF: maxF}, true
}

func isCelsius(s string, values ...float64) bool {
	c := celsiusMarker.FindStringIndex(s)
	f := fahrenheitMarker.FindStringIndex(s)
	switch {
	case c != nil && (f == nil || c[0] < f[0]):
		return true
	case f != nil:
		return false
	}
	for _, v := range values {
		if v > celsiusCeiling {
			return false
		}
	}
	return true
}

func celsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

func clampTemperature(f float64) int {
	return int(math.Round(math.Min(math.Max(f, domain.MinTemperatureF), domain.MaxTemperatureF)))
}
