package domain

import "slices"

// UnitMilliliters is the unit label every watering recommendation is expressed in
const UnitMilliliters = "ml"

// WateringRecommendation is the engine's watering advice for a single plant
type WateringRecommendation struct {
	Amount              int    `json:"amount"`
	Unit                string `json:"unit"`
	Technique           string `json:"technique"`
	Frequency           string `json:"frequency"`
	SeasonalNote        string `json:"seasonal_note"`
	SoilCheck           string `json:"soil_check"`
	LightAdjustmentNote string `json:"light_adjustment_note,omitempty"`
}

// FertilizerRecommendation is the engine's feeding advice for a single plant
type FertilizerRecommendation struct {
	Amount           float64 `json:"amount"`
	Unit             string  `json:"unit"`
	Dilution         string  `json:"dilution"`
	Frequency        string  `json:"frequency"`
	SeasonalSchedule string  `json:"seasonal_schedule"`
	Instructions     string  `json:"instructions"`
}

// WeatherCondition is the coarse sky condition reported by the weather collaborator
type WeatherCondition string

const (
	WeatherClear   WeatherCondition = "clear"
	WeatherCloudy  WeatherCondition = "cloudy"
	WeatherRain    WeatherCondition = "rain"
	WeatherSnow    WeatherCondition = "snow"
	WeatherStorm   WeatherCondition = "storm"
	WeatherFog     WeatherCondition = "fog"
	WeatherUnknown WeatherCondition = "unknown"
)

// WeatherConditions lists every weather condition
var WeatherConditions = []WeatherCondition{
	WeatherClear,
	WeatherCloudy,
	WeatherRain,
	WeatherSnow,
	WeatherStorm,
	WeatherFog,
	WeatherUnknown,
}

// LightAdjustment is the lighting action suggested for the current weather
type LightAdjustment string

const (
	LightAdjustmentNormal       LightAdjustment = "normal"
	LightAdjustmentIncrease     LightAdjustment = "increase_indoor_light"
	LightAdjustmentSupplemental LightAdjustment = "provide_supplemental_light"
	LightAdjustmentMaximize     LightAdjustment = "maximize_available_light"
)

// WeatherAdjustment describes how live weather rescaled a recommendation
type WeatherAdjustment struct {
	Multiplier      float64         `json:"multiplier"`
	LightAdjustment LightAdjustment `json:"light_adjustment"`
	Advisory        string          `json:"advisory"`
}

// IsValid reports whether c is a known weather condition
func (c WeatherCondition) IsValid() bool {
	return slices.Contains(WeatherConditions, c)
}
