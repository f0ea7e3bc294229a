package domain

import "slices"

// PlantCategory is the watering-behavior category a plant is classified into
type PlantCategory string

const (
	CategoryCactus    PlantCategory = "cactus"
	CategorySucculent PlantCategory = "succulent"
	CategoryOrchid    PlantCategory = "orchid"
	CategoryFoliage   PlantCategory = "foliage"
	CategoryHerb      PlantCategory = "herb"
	CategoryFlowering PlantCategory = "flowering"
	CategoryTropical  PlantCategory = "tropical"
	CategoryFern      PlantCategory = "fern"
)

// PlantCategories lists every category in declaration order
var PlantCategories = []PlantCategory{
	CategoryCactus,
	CategorySucculent,
	CategoryOrchid,
	CategoryFoliage,
	CategoryHerb,
	CategoryFlowering,
	CategoryTropical,
	CategoryFern,
}

// ContainerMaterial is the material a plant's container is made of
type ContainerMaterial string

const (
	MaterialPlastic       ContainerMaterial = "plastic"
	MaterialTerracotta    ContainerMaterial = "terracotta"
	MaterialClay          ContainerMaterial = "clay"
	MaterialFabric        ContainerMaterial = "fabric"
	MaterialGlazedCeramic ContainerMaterial = "glazed_ceramic"
	MaterialCeramic       ContainerMaterial = "ceramic"
	MaterialConcrete      ContainerMaterial = "concrete"
	MaterialMetal         ContainerMaterial = "metal"
	MaterialWood          ContainerMaterial = "wood"
	MaterialOther         ContainerMaterial = "other"
	MaterialUnknown       ContainerMaterial = "unknown"
)

// ContainerMaterials lists every container material
var ContainerMaterials = []ContainerMaterial{
	MaterialPlastic,
	MaterialTerracotta,
	MaterialClay,
	MaterialFabric,
	MaterialGlazedCeramic,
	MaterialCeramic,
	MaterialConcrete,
	MaterialMetal,
	MaterialWood,
	MaterialOther,
	MaterialUnknown,
}

// LightLevel is the light exposure a plant receives
type LightLevel string

const (
	LightLow            LightLevel = "low"
	LightMedium         LightLevel = "medium"
	LightBrightIndirect LightLevel = "bright_indirect"
	LightDirect         LightLevel = "direct"
)

// LightLevels lists every light level from darkest to brightest
var LightLevels = []LightLevel{LightLow, LightMedium, LightBrightIndirect, LightDirect}

// Season is the current growing season
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// Seasons lists every season
var Seasons = []Season{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}

// Environment is where the plant is placed
type Environment string

const (
	EnvironmentIndoor     Environment = "indoor"
	EnvironmentOutdoor    Environment = "outdoor"
	EnvironmentGreenhouse Environment = "greenhouse"
	EnvironmentBalcony    Environment = "balcony"
)

// Environments lists every placement environment
var Environments = []Environment{EnvironmentIndoor, EnvironmentOutdoor, EnvironmentGreenhouse, EnvironmentBalcony}

// FertilizerForm is the physical form of fertilizer used on the plant
type FertilizerForm string

const (
	FertilizerLiquid      FertilizerForm = "liquid"
	FertilizerGranular    FertilizerForm = "granular"
	FertilizerSlowRelease FertilizerForm = "slow_release"
)

// FertilizerForms lists every fertilizer form
var FertilizerForms = []FertilizerForm{FertilizerLiquid, FertilizerGranular, FertilizerSlowRelease}

// PlantCareProfile is the set of physical and environmental attributes
// the recommendation engine works from.
type PlantCareProfile struct {
	DiameterInches float64           `json:"diameter_inches"`
	HeightInches   *float64          `json:"height_inches,omitempty"`
	Material       ContainerMaterial `json:"material"`
	Light          LightLevel        `json:"light"`
	Category       PlantCategory     `json:"category"`
	Season         Season            `json:"season"`
	Environment    Environment       `json:"environment"`
	FertilizerForm FertilizerForm    `json:"fertilizer_form,omitempty"`
}

// IsValid reports whether c is a known category
func (c PlantCategory) IsValid() bool {
	return slices.Contains(PlantCategories, c)
}

// IsValid reports whether m is a known container material
func (m ContainerMaterial) IsValid() bool {
	return slices.Contains(ContainerMaterials, m)
}

// IsValid reports whether l is a known light level
func (l LightLevel) IsValid() bool {
	return slices.Contains(LightLevels, l)
}

// IsValid reports whether s is a known season
func (s Season) IsValid() bool {
	return slices.Contains(Seasons, s)
}

// IsValid reports whether e is a known environment
func (e Environment) IsValid() bool {
	return slices.Contains(Environments, e)
}

// IsValid reports whether f is a known fertilizer form
func (f FertilizerForm) IsValid() bool {
	return slices.Contains(FertilizerForms, f)
}
