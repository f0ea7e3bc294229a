// Package recommendation computes watering and fertilizer advice from a
// plant's physical and environmental attributes.
package recommendation

import (
	"fmt"
	"math"

	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/soil"
)

// Engine provides pure recommendation logic (no storage dependencies)
type Engine struct{}

// NewEngine creates a new recommendation engine
func NewEngine() *Engine {
	return &Engine{}
}

// RecommendWatering computes a watering amount by scaling the estimated soil
// volume through the category, season, material, light and environment
// multipliers, truncating the result to whole milliliters.
func (e *Engine) RecommendWatering(profile domain.PlantCareProfile) domain.WateringRecommendation {
	cat := lookupCategory(profile.Category)
	volume := soil.EstimateVolumeML(profile.DiameterInches, profile.HeightInches)

	amount := volume * cat.BaseFraction
	amount *= cat.WateringMult
	amount *= multiplier(seasonMultipliers, profile.Season)
	amount *= multiplier(materialMultipliers, profile.Material)
	amount *= multiplier(lightMultipliers, profile.Light)
	amount *= multiplier(environmentMultipliers, profile.Environment)

	return domain.WateringRecommendation{
		Amount:              max(int(amount), 0),
		Unit:                domain.UnitMilliliters,
		Technique:           cat.Technique,
		Frequency:           e.FrequencyDescription(profile),
		SeasonalNote:        cat.SeasonalNote,
		SoilCheck:           cat.SoilCheck,
		LightAdjustmentNote: lightNotes[profile.Light],
	}
}

// FrequencyDescription returns the human-readable watering cadence for the
// profile's category, widened for large containers.
func (e *Engine) FrequencyDescription(profile domain.PlantCareProfile) string {
	cat := lookupCategory(profile.Category)
	lo, hi := cat.MinDays, cat.MaxDays
	if profile.DiameterInches > LargeContainerInches {
		lo += LargeContainerExtraDays
		hi += LargeContainerExtraDays
	}
	return fmt.Sprintf("Every %d-%d days", lo, hi)
}

// RecommendFertilizer computes a per-feeding fertilizer amount from the
// container diameter, the fertilizer form and the category's feeding multiplier.
func (e *Engine) RecommendFertilizer(profile domain.PlantCareProfile) domain.FertilizerRecommendation {
	cat := lookupCategory(profile.Category)
	form, ok := fertilizerForms[profile.FertilizerForm]
	if !ok {
		form = fertilizerForms[DefaultFertilizerForm]
	}

	diameter := math.Max(profile.DiameterInches, soil.MinDimensionInches)
	amount := form.PerInch * diameter * cat.FertilizerMult

	return domain.FertilizerRecommendation{
		Amount:           math.Round(amount*100) / 100,
		Unit:             form.Unit,
		Dilution:         form.Dilution,
		Frequency:        form.Frequency,
		SeasonalSchedule: cat.FeedingSchedule,
		Instructions:     form.Instructions,
	}
}

func lookupCategory(c domain.PlantCategory) categoryProfile {
	if p, ok := categoryProfiles[c]; ok {
		return p
	}
	return categoryProfiles[DefaultCategory]
}

// multiplier returns the table entry for key, or 1.0 when the key is not listed
func multiplier[K comparable](table map[K]float64, key K) float64 {
	if m, ok := table[key]; ok {
		return m
	}
	return 1.0
}
