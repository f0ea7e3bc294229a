package recommendation

import "github.com/osse101/PlantCare_Go/internal/domain"

// categoryProfile is the fixed tuning for one watering-behavior category.
// Watering and fertilizer multipliers are tuned independently.
type categoryProfile struct {
	BaseFraction     float64
	WateringMult     float64
	FertilizerMult   float64
	MinDays, MaxDays int
	ScheduleBaseline int
	Technique        string
	SeasonalNote     string
	SoilCheck        string
	FeedingSchedule  string
}

var categoryProfiles = map[domain.PlantCategory]categoryProfile{
	domain.CategoryCactus: {
		BaseFraction: 0.04, WateringMult: 0.2, FertilizerMult: 0.5,
		MinDays: 14, MaxDays: 21, ScheduleBaseline: 16,
		Technique:       "Soak the soil thoroughly, then let it drain completely. Never leave the pot standing in water.",
		SeasonalNote:    "Water sparingly in winter, roughly once a month while the plant is dormant.",
		SoilCheck:       "Wait until the soil is completely dry all the way through before watering.",
		FeedingSchedule: "Feed once in spring and once in midsummer. Do not feed from fall through winter.",
	},
	domain.CategorySucculent: {
		BaseFraction: 0.05, WateringMult: 0.4, FertilizerMult: 0.5,
		MinDays: 10, MaxDays: 14, ScheduleBaseline: 12,
		Technique:       "Use the soak-and-dry method: water deeply at the base and let excess drain away.",
		SeasonalNote:    "Cut back watering in winter when growth slows.",
		SoilCheck:       "Check that the top 2 inches of soil are dry before watering again.",
		FeedingSchedule: "Feed monthly in spring and summer. Skip feeding in fall and winter.",
	},
	domain.CategoryOrchid: {
		BaseFraction: 0.07, WateringMult: 0.6, FertilizerMult: 0.6,
		MinDays: 7, MaxDays: 10, ScheduleBaseline: 9,
		Technique:       "Run lukewarm water through the potting medium for about a minute and let it drain fully.",
		SeasonalNote:    "Water less often in winter and keep water out of the crown.",
		SoilCheck:       "Water when the roots look silvery and the bark feels dry.",
		FeedingSchedule: "Feed weakly every other watering while in active growth. Reduce in winter.",
	},
	domain.CategoryHerb: {
		BaseFraction: 0.08, WateringMult: 0.9, FertilizerMult: 0.8,
		MinDays: 2, MaxDays: 4, ScheduleBaseline: 4,
		Technique:       "Water at the base in the morning, keeping the leaves dry.",
		SeasonalNote:    "Expect to water more often in summer heat and less in cool months.",
		SoilCheck:       "Water when the top inch of soil feels dry.",
		FeedingSchedule: "Feed lightly every 4 to 6 weeks during the growing season.",
	},
	domain.CategoryFoliage: {
		BaseFraction: 0.09, WateringMult: 1.0, FertilizerMult: 1.0,
		MinDays: 5, MaxDays: 7, ScheduleBaseline: 7,
		Technique:       "Water evenly around the pot until water runs from the drainage holes, then empty the saucer.",
		SeasonalNote:    "Reduce watering in fall and winter when growth slows.",
		SoilCheck:       "Water when the top 1 to 2 inches of soil are dry.",
		FeedingSchedule: "Feed monthly from spring through summer. Pause in winter.",
	},
	domain.CategoryFlowering: {
		BaseFraction: 0.10, WateringMult: 1.1, FertilizerMult: 1.2,
		MinDays: 3, MaxDays: 5, ScheduleBaseline: 5,
		Technique:       "Water the soil directly and avoid wetting the flowers.",
		SeasonalNote:    "Keep the soil consistently moist while the plant is blooming.",
		SoilCheck:       "Water when the soil surface just begins to dry.",
		FeedingSchedule: "Feed every 2 weeks while buds and flowers are forming. Reduce after blooming.",
	},
	domain.CategoryTropical: {
		BaseFraction: 0.11, WateringMult: 1.2, FertilizerMult: 1.1,
		MinDays: 4, MaxDays: 6, ScheduleBaseline: 6,
		Technique:       "Water thoroughly with room-temperature water and let the excess drain.",
		SeasonalNote:    "Increase watering in summer and mist the leaves when the air is dry.",
		SoilCheck:       "Water when the top inch of soil is dry but before the pot feels light.",
		FeedingSchedule: "Feed every 2 to 3 weeks in spring and summer. Monthly at most in winter.",
	},
	domain.CategoryFern: {
		BaseFraction: 0.12, WateringMult: 1.3, FertilizerMult: 0.7,
		MinDays: 2, MaxDays: 3, ScheduleBaseline: 4,
		Technique:       "Water gently and evenly so the soil stays moist without becoming soggy.",
		SeasonalNote:    "Do not let the soil dry out, even in winter.",
		SoilCheck:       "Water as soon as the surface of the soil feels slightly dry.",
		FeedingSchedule: "Feed at half strength monthly during spring and summer.",
	},
}

// DefaultCategory supplies the tuning for unrecognized categories
const DefaultCategory = domain.CategoryFoliage

// LargeContainerInches is the diameter above which frequency ranges widen
const LargeContainerInches = 8.0

// LargeContainerExtraDays is added to both frequency bounds for large containers
const LargeContainerExtraDays = 2

var seasonMultipliers = map[domain.Season]float64{
	domain.SeasonSpring: 1.0,
	domain.SeasonSummer: 1.2,
	domain.SeasonFall:   0.9,
	domain.SeasonWinter: 0.7,
}

var materialMultipliers = map[domain.ContainerMaterial]float64{
	domain.MaterialTerracotta: 1.2,
	domain.MaterialClay:       1.2,
	domain.MaterialFabric:     1.15,
	domain.MaterialPlastic:    0.95,
}

var lightMultipliers = map[domain.LightLevel]float64{
	domain.LightLow:            0.9,
	domain.LightMedium:         1.0,
	domain.LightBrightIndirect: 1.1,
	domain.LightDirect:         1.2,
}

var environmentMultipliers = map[domain.Environment]float64{
	domain.EnvironmentIndoor:     1.0,
	domain.EnvironmentGreenhouse: 1.1,
	domain.EnvironmentBalcony:    1.2,
	domain.EnvironmentOutdoor:    1.3,
}

var lightNotes = map[domain.LightLevel]string{
	domain.LightLow:            "Low light slows drying. Water a little less and check the soil before each watering.",
	domain.LightBrightIndirect: "Bright light dries the soil faster. Check moisture a day or two earlier than usual.",
	domain.LightDirect:         "Direct sun dries the soil quickly. Check moisture often and water in the morning.",
}

// fertilizerForm is the fixed tuning for one fertilizer form
type fertilizerForm struct {
	PerInch      float64
	Unit         string
	Dilution     string
	Frequency    string
	Instructions string
}

var fertilizerForms = map[domain.FertilizerForm]fertilizerForm{
	domain.FertilizerLiquid: {
		PerInch:      0.5,
		Unit:         "ml",
		Dilution:     "Dilute in 1 liter of water (about 1:2000). Use half strength for sensitive plants.",
		Frequency:    "Every 2-4 weeks during active growth",
		Instructions: "Water the plant first, then apply the diluted solution evenly to moist soil.",
	},
	domain.FertilizerGranular: {
		PerInch:      0.25,
		Unit:         "tsp",
		Dilution:     "No dilution. Apply dry granules.",
		Frequency:    "Every 6-8 weeks during active growth",
		Instructions: "Scatter the granules over the soil surface away from the stem, work them in lightly and water well.",
	},
	domain.FertilizerSlowRelease: {
		PerInch:      0.1,
		Unit:         "tbsp",
		Dilution:     "No dilution. Pellets release nutrients over time.",
		Frequency:    "Every 3-4 months",
		Instructions: "Press the pellets into the top inch of soil and water as usual.",
	},
}

// DefaultFertilizerForm is used when a profile does not name a form
const DefaultFertilizerForm = domain.FertilizerLiquid

// Frequency estimator adjustments, in days
const (
	MinFrequencyDays = 2
	MaxFrequencyDays = 28

	LargeSoilVolumeML  = 1500.0
	MediumSoilVolumeML = 900.0
	SmallSoilVolumeML  = 600.0
)

var frequencyMaterialDays = map[domain.ContainerMaterial]int{
	domain.MaterialTerracotta:    -1,
	domain.MaterialClay:          -1,
	domain.MaterialFabric:        -1,
	domain.MaterialPlastic:       1,
	domain.MaterialGlazedCeramic: 1,
}

var frequencyLightDays = map[domain.LightLevel]int{
	domain.LightLow:            2,
	domain.LightMedium:         0,
	domain.LightBrightIndirect: -1,
	domain.LightDirect:         -2,
}

var frequencySeasonDays = map[domain.Season]int{
	domain.SeasonSpring: 0,
	domain.SeasonSummer: -1,
	domain.SeasonFall:   1,
	domain.SeasonWinter: 2,
}

var frequencyPlacementDays = map[domain.Environment]int{
	domain.EnvironmentOutdoor: -1,
	domain.EnvironmentBalcony: -1,
}
