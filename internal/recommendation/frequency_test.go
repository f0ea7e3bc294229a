package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

func TestEstimateWateringFrequencyDays(t *testing.T) {
	tests := []struct {
		name     string
		profile  domain.PlantCareProfile
		expected int
	}{
		{
			// baseline 7, volume 2316 mL +2, plastic +1
			name: "foliage in a plastic pot",
			profile: domain.PlantCareProfile{
				DiameterInches: 6, Category: domain.CategoryFoliage, Material: domain.MaterialPlastic,
				Light: domain.LightMedium, Season: domain.SeasonSpring, Environment: domain.EnvironmentIndoor,
			},
			expected: 10,
		},
		{
			// baseline 6, volume 1287 mL +1, bright -1, summer -1
			name: "tropical in bright summer light",
			profile: domain.PlantCareProfile{
				DiameterInches: 5, Category: domain.CategoryTropical, Material: domain.MaterialUnknown,
				Light: domain.LightBrightIndirect, Season: domain.SeasonSummer, Environment: domain.EnvironmentIndoor,
			},
			expected: 5,
		},
		{
			// baseline 16, +2 volume, glazed +1, low +2, winter +2
			name: "cactus resting in winter",
			profile: domain.PlantCareProfile{
				DiameterInches: 12, Category: domain.CategoryCactus, Material: domain.MaterialGlazedCeramic,
				Light: domain.LightLow, Season: domain.SeasonWinter, Environment: domain.EnvironmentIndoor,
			},
			expected: 23,
		},
		{
			// 4 -1 -1 -2 -1 -1 = -2, clamped
			name: "tiny fern outdoors clamps to minimum",
			profile: domain.PlantCareProfile{
				DiameterInches: 2, Category: domain.CategoryFern, Material: domain.MaterialTerracotta,
				Light: domain.LightDirect, Season: domain.SeasonSummer, Environment: domain.EnvironmentOutdoor,
			},
			expected: MinFrequencyDays,
		},
		{
			// volume 617 mL sits between tiers
			name: "mid volume gets no tier adjustment",
			profile: domain.PlantCareProfile{
				DiameterInches: 4, Category: domain.CategoryHerb, Material: domain.MaterialOther,
				Light: domain.LightMedium, Season: domain.SeasonFall, Environment: domain.EnvironmentBalcony,
			},
			expected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateWateringFrequencyDays(tt.profile))
			assert.Equal(t, tt.expected, NewEngine().EstimateWateringFrequencyDays(tt.profile))
		})
	}
}

func TestEstimateWateringFrequencyDays_AlwaysInRange(t *testing.T) {
	diameters := []float64{0, 1, 3, 4.5, 6, 10, 20, 48}
	for _, cat := range domain.PlantCategories {
		for _, mat := range domain.ContainerMaterials {
			for _, light := range domain.LightLevels {
				for _, season := range domain.Seasons {
					for _, env := range domain.Environments {
						for _, d := range diameters {
							p := domain.PlantCareProfile{
								DiameterInches: d, Category: cat, Material: mat,
								Light: light, Season: season, Environment: env,
							}
							days := EstimateWateringFrequencyDays(p)
							if days < MinFrequencyDays || days > MaxFrequencyDays {
								t.Fatalf("days %d out of range for %+v", days, p)
							}
						}
					}
				}
			}
		}
	}
}
