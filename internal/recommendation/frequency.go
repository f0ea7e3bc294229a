package recommendation

import (
	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/soil"
)

// EstimateWateringFrequencyDays derives a schedule default in days from the
// category baseline plus additive adjustments for soil volume, container
// material, light, season and placement. The result is clamped to [2,28].
//
// This is deliberately independent of RecommendWatering's multiplier chain.
func EstimateWateringFrequencyDays(profile domain.PlantCareProfile) int {
	days := lookupCategory(profile.Category).ScheduleBaseline

	volume := soil.EstimateVolumeML(profile.DiameterInches, profile.HeightInches)
	switch {
	case volume > LargeSoilVolumeML:
		days += 2
	case volume > MediumSoilVolumeML:
		days++
	case volume < SmallSoilVolumeML:
		days--
	}

	days += frequencyMaterialDays[profile.Material]
	days += frequencyLightDays[profile.Light]
	days += frequencySeasonDays[profile.Season]
	days += frequencyPlacementDays[profile.Environment]

	return min(max(days, MinFrequencyDays), MaxFrequencyDays)
}

// EstimateWateringFrequencyDays is the Engine form of the package function
func (e *Engine) EstimateWateringFrequencyDays(profile domain.PlantCareProfile) int {
	return EstimateWateringFrequencyDays(profile)
}
