package weather

import "github.com/osse101/PlantCare_Go/internal/domain"

// Multiplier adjustments
const (
	BaseMultiplier = 1.0
	MinMultiplier  = 0.5
	MaxMultiplier  = 2.0

	HotThresholdF  = 80.0
	CoolThresholdF = 65.0
	HotAdjustment  = 0.3
	CoolAdjustment = -0.2

	DryThreshold    = 0.3
	HumidThreshold  = 0.7
	DryAdjustment   = 0.2
	HumidAdjustment = -0.2

	// Frequency text is only rewritten outside this band
	MoreFrequentAbove = 1.3
	LessFrequentBelow = 0.7
)

// Advisory bands, checked hottest and coldest first
const (
	HeatWaveThresholdF = 90.0
	ColdThresholdF     = 50.0
)

const (
	AdvisorySeparator = " • "

	morePrefix = "more frequently than "
	lessPrefix = "less frequently than "
)

const (
	MsgHeatWave = "Extreme heat: check soil moisture daily and move plants out of afternoon sun"
	MsgHot      = "Warm weather: soil dries faster than usual"
	MsgCool     = "Cool weather: soil stays moist longer, so water less"
	MsgCold     = "Cold weather: keep plants away from drafty windows and hold back on water"
)

var conditionAdvisories = map[domain.WeatherCondition]string{
	domain.WeatherClear:  "Clear skies: rotate plants so every side gets even light",
	domain.WeatherCloudy: "Overcast: indoor light levels are lower than usual",
	domain.WeatherRain:   "Rain: outdoor plants may not need watering today",
	domain.WeatherSnow:   "Snow: bring tender plants indoors and protect them from frost",
	domain.WeatherStorm:  "Storm: secure or shelter outdoor containers",
	domain.WeatherFog:    "Fog: high moisture in the air slows drying",
}

var lightAdjustments = map[domain.WeatherCondition]domain.LightAdjustment{
	domain.WeatherClear:  domain.LightAdjustmentIncrease,
	domain.WeatherCloudy: domain.LightAdjustmentSupplemental,
	domain.WeatherRain:   domain.LightAdjustmentMaximize,
	domain.WeatherSnow:   domain.LightAdjustmentMaximize,
}

var lightAdjustmentNotes = map[domain.LightAdjustment]string{
	domain.LightAdjustmentIncrease:     "Open curtains and move plants closer to windows to make use of the sunshine.",
	domain.LightAdjustmentSupplemental: "Consider a grow light to make up for the overcast sky.",
	domain.LightAdjustmentMaximize:     "Move plants to the brightest spot available while daylight is weak.",
}
