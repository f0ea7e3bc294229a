package planparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

var (
	numberPattern     = regexp.MustCompile(`\d+(?:\.\d+)?`)
	rangeMarker       = regexp.MustCompile(`-|\bto\b|\bthrough\b|\bbetween\b`)
	timeUnitPattern   = regexp.MustCompile(`\b(day|week|month|year)s?\b`)
	wordNumberPattern = regexp.MustCompile(`\b(one|two|three|four|five|six|seven|eight|nine|ten|couple|few|several)\b`)
)

var wordNumbers = map[string]float64{
	"one":     1,
	"two":     2,
	"three":   3,
	"four":    4,
	"five":    5,
	"six":     6,
	"seven":   7,
	"eight":   8,
	"nine":    9,
	"ten":     10,
	"couple":  2,
	"few":     3,
	"several": 4,
	"once":    1,
	"twice":   2,
	"thrice":  3,
}

// Time unit lengths in days and in months
var (
	daysPerUnit = map[string]float64{
		"day":   1,
		"week":  7,
		"month": 30,
		"year":  365,
	}
	monthsPerUnit = map[string]float64{
		"day":   1.0 / 30,
		"week":  7.0 / 30,
		"month": 1,
		"year":  12,
	}
)

// unitScale returns how many target units one timeUnit spans
func unitScale(target domain.IntervalUnit, timeUnit string) float64 {
	if target == domain.IntervalMonths {
		return monthsPerUnit[timeUnit]
	}
	return daysPerUnit[timeUnit]
}

// extractNumbers returns every decimal number in s in order of appearance
func extractNumbers(s string) []float64 {
	matches := numberPattern.FindAllString(s, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}

// pickValue averages the first two values when s reads as a range,
// otherwise returns the first value.
func pickValue(s string, values []float64) (float64, bool) {
	switch {
	case len(values) == 0:
		return 0, false
	case len(values) >= 2 && rangeMarker.MatchString(s):
		return (values[0] + values[1]) / 2, true
	default:
		return values[0], true
	}
}

// firstTimeUnit returns the singular form of the first time unit mentioned in s
func firstTimeUnit(s string) (string, bool) {
	m := timeUnitPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func extractWordNumbers(s string) []float64 {
	matches := wordNumberPattern.FindAllString(s, -1)
	out := make([]float64, 0, len(matches))
	for _, m := range matches {
		out = append(out, wordNumbers[m])
	}
	return out
}

// parseCount reads a numeric or word count such as "3", "2.5", "twice" or "a couple of"
func parseCount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "a ")
	s = strings.TrimSuffix(s, " of")
	if v, ok := wordNumbers[s]; ok {
		return v, true
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
