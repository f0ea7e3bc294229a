package planparse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

func TestParseInterval_Days(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		rule     string
	}{
		// idioms
		{"every other day", 2, RuleIdiom},
		{"Every other week", 14, RuleIdiom},
		{"every other month", 60, RuleIdiom},
		{"fortnightly", 14, RuleIdiom},
		{"Bi-weekly", 14, RuleIdiom},
		{"biweekly", 14, RuleIdiom},

		// rate phrases
		{"twice a week", 4, RuleRate},
		{"3 times a month", 10, RuleRate},
		{"2-3 times per week", 3, RuleRate},
		{"once a day", 1, RuleRate},
		{"twice daily", 1, RuleRate},
		{"a few times a week", 2, RuleRate},
		{"3x/week", 2, RuleRate},
		{"once every week", 7, RuleRate},

		// fixed cadence
		{"monthly", 30, RuleCadence},
		{"Fertilize weekly", 7, RuleCadence},
		{"daily", 1, RuleCadence},
		{"every day", 1, RuleCadence},
		{"quarterly", 90, RuleCadence},

		// numbers with a unit
		{"every 5-7 days", 6, RuleNumeric},
		{"every 5–7 days", 6, RuleNumeric},
		{"Every 10–14 Days", 12, RuleNumeric},
		{"every 7 to 10 days", 9, RuleNumeric},
		{"between 10 and 14 days", 12, RuleNumeric},
		{"every 2 weeks", 14, RuleNumeric},
		{"once every 2 weeks", 14, RuleNumeric},
		{"every 1.5 weeks", 11, RuleNumeric},
		{"every 0 days", 1, RuleNumeric},

		// word numbers
		{"every two weeks", 14, RuleWordNumber},
		{"every few days", 3, RuleWordNumber},
		{"every couple of weeks", 14, RuleWordNumber},
		{"every two to three days", 3, RuleWordNumber},

		// bare numbers
		{"10", 10, RuleBareNumber},
		{"5-7", 6, RuleBareNumber},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, rule, ok := ParseIntervalWithRule(tt.input, domain.IntervalDays)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.rule, rule)
		})
	}
}

func TestParseInterval_Months(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"every 12-18 months", 15},
		{"every 2 years", 24},
		{"every 3 years", 36},
		{"annually", 12},
		{"Repot yearly in spring", 12},
		{"quarterly", 3},
		{"semi-annually", 6},
		{"biannual", 6},
		{"every other year", 24},
		{"twice a year", 6},
		{"every month", 1},
		{"every 6 weeks", 1},
		{"every couple of years", 24},
		{"18", 18},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseInterval(tt.input, domain.IntervalMonths)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseInterval_NoValue(t *testing.T) {
	inputs := []string{"", "   ", "water when the soil is dry", "repot in spring"}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, ok := ParseInterval(input, domain.IntervalDays)
			assert.False(t, ok)
			_, ok = ParseInterval(input, domain.IntervalMonths)
			assert.False(t, ok)
		})
	}
}

func TestParseInterval_RuleOrder(t *testing.T) {
	// idiom beats the numeric rule even with digits present
	got, _ := ParseInterval("every other day, about 250 ml", domain.IntervalDays)
	assert.Equal(t, 2, got)

	// cadence beats numbers
	got, _ = ParseInterval("monthly, or every 2 weeks in summer", domain.IntervalDays)
	assert.Equal(t, 30, got)
}

func TestParseInterval_HugeValuesDoNotOverflow(t *testing.T) {
	got, ok := ParseInterval("every 99999999999999999999 days", domain.IntervalDays)
	assert.True(t, ok)
	assert.Positive(t, got)
}
