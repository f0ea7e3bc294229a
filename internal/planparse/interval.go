package planparse

import (
	"math"
	"regexp"
	"strings"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// Interval rule names, in evaluation order
const (
	RuleIdiom      = "idiom"
	RuleRate       = "rate"
	RuleCadence    = "cadence"
	RuleNumeric    = "numeric"
	RuleWordNumber = "word_number"
	RuleBareNumber = "bare_number"
)

// maxInterval caps absurd inputs so the conversion to int cannot overflow
const maxInterval = math.MaxInt32

// span is a fixed length of time, e.g. 2 weeks
type span struct {
	pattern *regexp.Regexp
	count   float64
	unit    string
}

var idioms = []span{
	{regexp.MustCompile(`\bevery (?:other|second) day\b`), 2, "day"},
	{regexp.MustCompile(`\bevery (?:other|second) week\b`), 2, "week"},
	{regexp.MustCompile(`\bevery (?:other|second) month\b`), 2, "month"},
	{regexp.MustCompile(`\bevery (?:other|second) year\b`), 2, "year"},
	{regexp.MustCompile(`\bfortnight(?:ly)?\b`), 2, "week"},
	{regexp.MustCompile(`\bbi-?weekly\b`), 2, "week"},
	{regexp.MustCompile(`\b(?:semi-?annual(?:ly)?|bi-?annual(?:ly)?)\b`), 6, "month"},
	{regexp.MustCompile(`\bbiennial(?:ly)?\b`), 2, "year"},
}

var cadences = []span{
	{regexp.MustCompile(`\b(?:daily|every day|each day)\b`), 1, "day"},
	{regexp.MustCompile(`\b(?:weekly|every week|each week)\b`), 1, "week"},
	{regexp.MustCompile(`\b(?:monthly|every month|each month)\b`), 1, "month"},
	{regexp.MustCompile(`\b(?:quarterly|every quarter)\b`), 3, "month"},
	{regexp.MustCompile(`\b(?:yearly|annually|annual|every year|each year)\b`), 1, "year"},
}

const countExpr = `\d+(?:\.\d+)?(?:\s*(?:-|to)\s*\d+(?:\.\d+)?)?|one|two|three|four|five|six|seven|eight|nine|ten|(?:a\s+)?couple(?:\s+of)?|(?:a\s+)?few|several`

var (
	// "twice a week", "3 times per month", "2-3x/week"
	ratePattern = regexp.MustCompile(`\b(?:(once|twice|thrice)|(` + countExpr + `)\s*(?:times?|x))\s*(?:(?:a|an|per|each|every|in\s+a)\s+|/\s*)(day|week|month|year)\b`)
	// "twice weekly", "3 times daily"
	rateAdverbPattern = regexp.MustCompile(`\b(?:(once|twice|thrice)|(` + countExpr + `)\s*(?:times?|x))\s+(daily|weekly|monthly|yearly|annually)\b`)
)

var adverbUnits = map[string]string{
	"daily":    "day",
	"weekly":   "week",
	"monthly":  "month",
	"yearly":   "year",
	"annually": "year",
}

type intervalRule struct {
	name  string
	match func(s string, unit domain.IntervalUnit) (float64, bool)
}

// intervalRules are tried in order; the first match wins
var intervalRules = []intervalRule{
	{RuleIdiom, matchSpans(idioms)},
	{RuleRate, matchRate},
	{RuleCadence, matchSpans(cadences)},
	{RuleNumeric, matchNumeric},
	{RuleWordNumber, matchWordNumber},
	{RuleBareNumber, matchBareNumber},
}

// ParseInterval reads an interval phrase such as "every 5-7 days" or
// "twice a week" as a whole number of days or months, floored at 1.
func ParseInterval(text string, unit domain.IntervalUnit) (int, bool) {
	v, _, ok := ParseIntervalWithRule(text, unit)
	return v, ok
}

// ParseIntervalWithRule is ParseInterval that also reports which rule matched
func ParseIntervalWithRule(text string, unit domain.IntervalUnit) (int, string, bool) {
	s := Normalize(text)
	if s == "" {
		return 0, "", false
	}

	floor := domain.MinIntervalDays
	if unit == domain.IntervalMonths {
		floor = domain.MinIntervalMonths
	}

	for _, rule := range intervalRules {
		v, ok := rule.match(s, unit)
		if !ok {
			continue
		}
		v = math.Min(math.Round(v), maxInterval)
		return max(int(v), floor), rule.name, true
	}
	return 0, "", false
}

func matchSpans(spans []span) func(string, domain.IntervalUnit) (float64, bool) {
	return func(s string, unit domain.IntervalUnit) (float64, bool) {
		for _, sp := range spans {
			if sp.pattern.MatchString(s) {
				return sp.count * unitScale(unit, sp.unit), true
			}
		}
		return 0, false
	}
}

// matchRate converts "N times per unit" into the period between occurrences
func matchRate(s string, unit domain.IntervalUnit) (float64, bool) {
	var timeUnit string
	m := ratePattern.FindStringSubmatch(s)
	if m != nil {
		timeUnit = m[3]
	} else if m = rateAdverbPattern.FindStringSubmatch(s); m != nil {
		timeUnit = adverbUnits[m[3]]
	} else {
		return 0, false
	}

	countText := m[1]
	if countText == "" {
		countText = m[2]
	}
	rate, ok := parseCountRange(countText)
	if !ok || rate <= 0 {
		return 0, false
	}
	return unitScale(unit, timeUnit) / rate, true
}

// parseCountRange reads a count, averaging "2-3" or "2 to 3"
func parseCountRange(s string) (float64, bool) {
	if nums := extractNumbers(s); len(nums) == 2 {
		return (nums[0] + nums[1]) / 2, true
	}
	return parseCount(strings.TrimSpace(s))
}

func matchNumeric(s string, unit domain.IntervalUnit) (float64, bool) {
	timeUnit, ok := firstTimeUnit(s)
	if !ok {
		return 0, false
	}
	v, ok := pickValue(s, extractNumbers(s))
	if !ok {
		return 0, false
	}
	return v * unitScale(unit, timeUnit), true
}

func matchWordNumber(s string, unit domain.IntervalUnit) (float64, bool) {
	if numberPattern.MatchString(s) {
		return 0, false
	}
	timeUnit, ok := firstTimeUnit(s)
	if !ok {
		return 0, false
	}
	v, ok := pickValue(s, extractWordNumbers(s))
	if !ok {
		return 0, false
	}
	return v * unitScale(unit, timeUnit), true
}

// matchBareNumber takes a unitless number as a count of the target unit
func matchBareNumber(s string, _ domain.IntervalUnit) (float64, bool) {
	return pickValue(s, extractNumbers(s))
}
