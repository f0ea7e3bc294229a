// Package careplan builds reviewable care plan drafts from advice text and
// applies or reverts them against a plant's stored settings.
package careplan

import (
	"strings"

	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/planparse"
	"github.com/osse101/PlantCare_Go/internal/recommendation"
)

// ParseOutcome records how one advice phrase was read
type ParseOutcome struct {
	Kind    string
	Outcome string
	Text    string
}

// CurrentValues reads a plant's stored settings as care plan values. When no
// water amount has been recorded, the engine's watering recommendation for
// the plant's profile is used.
func CurrentValues(plant domain.Plant) domain.CarePlanValues {
	s := plant.Settings
	water := s.Water
	if water.IsZero() {
		rec := recommendation.NewEngine().RecommendWatering(plant.Profile())
		water = domain.WaterAmount{Amount: float64(rec.Amount), Unit: rec.Unit}
	}

	return domain.CarePlanValues{
		WateringIntervalDays:    s.Schedule.WateringIntervalDays,
		FertilizingIntervalDays: s.Schedule.FertilizingIntervalDays,
		RepotIntervalMonths:     s.Schedule.RepotIntervalMonths,
		Light:                   s.Light,
		HumidityPercent:         s.HumidityPercent,
		Temperature:             s.Temperature,
		Water:                   water,
	}
}

// BuildApplyDraft parses each advice phrase into a proposed value, keeping
// the current value wherever a phrase is empty or not understood. Every
// inclusion flag starts selected.
func BuildApplyDraft(plant domain.Plant, advice domain.AdviceText) domain.ApplyDraft {
	draft, _ := buildDraft(plant, advice)
	return draft
}

func buildDraft(plant domain.Plant, advice domain.AdviceText) (domain.ApplyDraft, []ParseOutcome) {
	current := CurrentValues(plant)
	proposed := current
	var outcomes []ParseOutcome

	days := func(text string) (int, bool) { return planparse.ParseInterval(text, domain.IntervalDays) }
	months := func(text string) (int, bool) { return planparse.ParseInterval(text, domain.IntervalMonths) }

	outcomes = append(outcomes,
		propose(&proposed.WateringIntervalDays, ParseKindWateringInterval, advice.WateringFrequency, days),
		propose(&proposed.FertilizingIntervalDays, ParseKindFertilizingInterval, advice.FertilizingFrequency, days),
		propose(&proposed.RepotIntervalMonths, ParseKindRepotInterval, advice.RepotInterval, months),
		propose(&proposed.Light, ParseKindLight, advice.LightIntensity, planparse.ParseLightLevel),
		propose(&proposed.HumidityPercent, ParseKindHumidity, advice.Humidity, planparse.ParseHumidity),
		propose(&proposed.Temperature, ParseKindTemperature, advice.Temperature, planparse.ParseTemperatureRange),
		propose(&proposed.Water, ParseKindWaterAmount, advice.WaterAmount, planparse.ParseWaterAmount),
	)

	return domain.ApplyDraft{
		PlantID:  plant.ID,
		Current:  current,
		Proposed: proposed,
		Flags:    domain.AllApplyFlags(),
		Advice:   advice,
	}, outcomes
}

// propose overwrites dst with the parsed value of text, leaving it untouched
// when the text is empty or not understood.
func propose[T any](dst *T, kind, text string, parse func(string) (T, bool)) ParseOutcome {
	if strings.TrimSpace(text) == "" {
		return ParseOutcome{Kind: kind, Outcome: ParseOutcomeEmpty}
	}
	v, ok := parse(text)
	if !ok {
		return ParseOutcome{Kind: kind, Outcome: ParseOutcomeUnmatched, Text: text}
	}
	*dst = v
	return ParseOutcome{Kind: kind, Outcome: ParseOutcomeMatched, Text: text}
}
