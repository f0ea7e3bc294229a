package domain

import (
	"fmt"
	"time"
)

// Care plan bounds enforced on parsed and stored values
const (
	MinHumidityPercent = 20
	MaxHumidityPercent = 90
	MinTemperatureF    = 40
	MaxTemperatureF    = 95
	MinIntervalDays    = 1
	MinIntervalMonths  = 1
)

// IntervalUnit selects the unit an interval phrase is read in
type IntervalUnit string

const (
	IntervalDays   IntervalUnit = "days"
	IntervalMonths IntervalUnit = "months"
)

// TemperatureRange is a comfortable temperature band in degrees Fahrenheit
type TemperatureRange struct {
	MinF int `json:"min_f"`
	MaxF int `json:"max_f"`
}

// WaterAmount is a volume of water per watering. The zero value means unset.
type WaterAmount struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// IsZero reports whether no amount has been recorded
func (w WaterAmount) IsZero() bool {
	return w.Amount <= 0
}

// CarePlanValues is the structured, diffable form of a plant's care settings.
// It is produced both from a plant's stored state and from parsed advice text.
type CarePlanValues struct {
	WateringIntervalDays    int              `json:"watering_interval_days"`
	FertilizingIntervalDays int              `json:"fertilizing_interval_days"`
	RepotIntervalMonths     int              `json:"repot_interval_months"`
	Light                   LightLevel       `json:"light"`
	HumidityPercent         int              `json:"humidity_percent"`
	Temperature             TemperatureRange `json:"temperature"`
	Water                   WaterAmount      `json:"water"`
}

// AdviceText holds the free-form advice strings for each care category
type AdviceText struct {
	WateringFrequency    string `json:"watering_frequency"`
	FertilizingFrequency string `json:"fertilizing_frequency"`
	RepotInterval        string `json:"repot_interval"`
	LightIntensity       string `json:"light_intensity"`
	Humidity             string `json:"humidity"`
	Temperature          string `json:"temperature"`
	WaterAmount          string `json:"water_amount,omitempty"`
}

// ApplyFlags selects which categories of a draft are copied onto the plant
type ApplyFlags struct {
	Schedule    bool `json:"schedule"`
	Light       bool `json:"light"`
	Humidity    bool `json:"humidity"`
	Temperature bool `json:"temperature"`
	WaterAmount bool `json:"water_amount"`
}

// AllApplyFlags returns flags with every category selected
func AllApplyFlags() ApplyFlags {
	return ApplyFlags{Schedule: true, Light: true, Humidity: true, Temperature: true, WaterAmount: true}
}

// Any reports whether at least one category is selected
func (f ApplyFlags) Any() bool {
	return f.Schedule || f.Light || f.Humidity || f.Temperature || f.WaterAmount
}

// Apply categories, used as labels for diffs and metrics
const (
	ApplyCategorySchedule    = "schedule"
	ApplyCategoryLight       = "light"
	ApplyCategoryHumidity    = "humidity"
	ApplyCategoryTemperature = "temperature"
	ApplyCategoryWaterAmount = "water_amount"
)

// ApplyDraft is a reviewable current-vs-proposed diff awaiting confirmation
type ApplyDraft struct {
	PlantID  string         `json:"plant_id"`
	Current  CarePlanValues `json:"current"`
	Proposed CarePlanValues `json:"proposed"`
	Flags    ApplyFlags     `json:"flags"`
	Advice   AdviceText     `json:"advice"`
	BuiltAt  time.Time      `json:"built_at"`
}

// FieldChange is one field that differs between current and proposed values
type FieldChange struct {
	Category string `json:"category"`
	Field    string `json:"field"`
	Current  string `json:"current"`
	Proposed string `json:"proposed"`
}

// CareSchedule holds the recurring care intervals of a plant
type CareSchedule struct {
	WateringIntervalDays    int `json:"watering_interval_days"`
	FertilizingIntervalDays int `json:"fertilizing_interval_days"`
	RepotIntervalMonths     int `json:"repot_interval_months"`
}

// CareSettings is every plant field an apply step is permitted to change
type CareSettings struct {
	Schedule        CareSchedule     `json:"schedule"`
	Light           LightLevel       `json:"light"`
	HumidityPercent int              `json:"humidity_percent"`
	Temperature     TemperatureRange `json:"temperature"`
	Water           WaterAmount      `json:"water"`
}

// Validate checks stored settings against the care plan bounds. Zero
// values mean unset and pass.
func (s CareSettings) Validate() error {
	sched := s.Schedule
	switch {
	case sched.WateringIntervalDays < 0, sched.FertilizingIntervalDays < 0, sched.RepotIntervalMonths < 0:
		return fmt.Errorf("%w: intervals must not be negative", ErrInvalidInput)
	case s.Light != "" && !s.Light.IsValid():
		return fmt.Errorf("%w: unknown light level %q", ErrInvalidInput, s.Light)
	case s.HumidityPercent != 0 && (s.HumidityPercent < MinHumidityPercent || s.HumidityPercent > MaxHumidityPercent):
		return fmt.Errorf("%w: humidity %d%% outside %d-%d", ErrInvalidInput, s.HumidityPercent, MinHumidityPercent, MaxHumidityPercent)
	case s.Water.Amount < 0:
		return fmt.Errorf("%w: water amount must not be negative", ErrInvalidInput)
	}

	t := s.Temperature
	if t == (TemperatureRange{}) {
		return nil
	}
	if t.MinF < MinTemperatureF || t.MaxF > MaxTemperatureF || t.MinF > t.MaxF {
		return fmt.Errorf("%w: temperature range %s outside %d-%d°F or inverted", ErrInvalidInput, t, MinTemperatureF, MaxTemperatureF)
	}
	return nil
}

// CarePlan is the stored record of the advice last applied to a plant
type CarePlan struct {
	Advice    AdviceText `json:"advice"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Plant is a plant's stored attributes, settings and optional care plan
type Plant struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	CommonNames    []string          `json:"common_names,omitempty"`
	Family         string            `json:"family,omitempty"`
	ScientificName string            `json:"scientific_name,omitempty"`
	Category       PlantCategory     `json:"category"`
	DiameterInches float64           `json:"diameter_inches"`
	HeightInches   *float64          `json:"height_inches,omitempty"`
	Material       ContainerMaterial `json:"material"`
	Season         Season            `json:"season"`
	Environment    Environment       `json:"environment"`
	FertilizerForm FertilizerForm    `json:"fertilizer_form"`
	Settings       CareSettings      `json:"settings"`
	CarePlan       *CarePlan         `json:"care_plan,omitempty"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Profile returns the recommendation inputs described by the plant
func (p Plant) Profile() PlantCareProfile {
	return PlantCareProfile{
		DiameterInches: p.DiameterInches,
		HeightInches:   copyFloat(p.HeightInches),
		Material:       p.Material,
		Light:          p.Settings.Light,
		Category:       p.Category,
		Season:         p.Season,
		Environment:    p.Environment,
		FertilizerForm: p.FertilizerForm,
	}
}

// Clone returns a deep copy that shares no memory with p
func (p Plant) Clone() Plant {
	out := p
	out.HeightInches = copyFloat(p.HeightInches)
	if p.CommonNames != nil {
		out.CommonNames = append([]string(nil), p.CommonNames...)
	}
	if p.CarePlan != nil {
		plan := *p.CarePlan
		out.CarePlan = &plan
	}
	return out
}

// UndoSnapshot is an immutable capture of a plant's state before an apply
type UndoSnapshot struct {
	ID              string       `json:"id"`
	PlantID         string       `json:"plant_id"`
	Settings        CareSettings `json:"settings"`
	CarePlanExisted bool         `json:"care_plan_existed"`
	CarePlan        CarePlan     `json:"care_plan"`
	PlantUpdatedAt  time.Time    `json:"plant_updated_at"`
	TakenAt         time.Time    `json:"taken_at"`
}

// SessionState is where a plant is in the draft/apply/undo cycle
type SessionState string

const (
	SessionIdle       SessionState = "idle"
	SessionDraftBuilt SessionState = "draft_built"
	SessionApplied    SessionState = "applied"
	SessionUndone     SessionState = "undone"
)

func copyFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}
