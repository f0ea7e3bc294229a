package handler

import (
	"net/http"

	"github.com/osse101/PlantCare_Go/internal/careplan"
	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/planparse"
)

// RecommendHandler handles the stateless recommendation endpoints
type RecommendHandler struct {
	service careplan.Service
}

// NewRecommendHandler creates a new recommendation handler
func NewRecommendHandler(service careplan.Service) *RecommendHandler {
	return &RecommendHandler{service: service}
}

// ProfileBody is the wire form of a plant care profile
type ProfileBody struct {
	DiameterInches float64  `json:"diameter_inches" validate:"gte=0"`
	HeightInches   *float64 `json:"height_inches,omitempty" validate:"omitempty,gte=0"`
	Material       string   `json:"material" validate:"material"`
	Light          string   `json:"light" validate:"required,light"`
	Category       string   `json:"category" validate:"category"`
	Season         string   `json:"season" validate:"required,season"`
	Environment    string   `json:"environment" validate:"required,environment"`
	FertilizerForm string   `json:"fertilizer_form,omitempty" validate:"fertilizer_form"`
}

func (b ProfileBody) toDomain() domain.PlantCareProfile {
	return domain.PlantCareProfile{
		DiameterInches: b.DiameterInches,
		HeightInches:   b.HeightInches,
		Material:       domain.ContainerMaterial(b.Material),
		Light:          domain.LightLevel(b.Light),
		Category:       domain.PlantCategory(b.Category),
		Season:         domain.Season(b.Season),
		Environment:    domain.Environment(b.Environment),
		FertilizerForm: domain.FertilizerForm(b.FertilizerForm),
	}
}

// ProfileRequest is the request body shared by the profile-only endpoints
type ProfileRequest struct {
	Profile ProfileBody `json:"profile"`
}

// FrequencyResponse is the response for the frequency estimate
type FrequencyResponse struct {
	Days        int    `json:"days"`
	Description string `json:"description"`
}

// WeatherRequest is the request body for a weather-adjusted recommendation
type WeatherRequest struct {
	Profile      ProfileBody `json:"profile"`
	TemperatureF *float64    `json:"temperature_f" validate:"required"`
	Humidity     *float64    `json:"humidity" validate:"required,gte=0,lte=1"`
	Condition    string      `json:"condition" validate:"weather_condition"`
}

// WeatherResponse pairs the rescaled recommendation with how it was adjusted
type WeatherResponse struct {
	Recommendation domain.WateringRecommendation `json:"recommendation"`
	Adjustment     domain.WeatherAdjustment      `json:"adjustment"`
}

// HandleWatering returns the watering recommendation for a profile
func (h *RecommendHandler) HandleWatering(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Recommend watering"); err != nil {
		return
	}
	respondJSON(w, http.StatusOK, h.service.RecommendWatering(r.Context(), req.Profile.toDomain()))
}

// HandleFertilizer returns the fertilizer recommendation for a profile
func (h *RecommendHandler) HandleFertilizer(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Recommend fertilizer"); err != nil {
		return
	}
	respondJSON(w, http.StatusOK, h.service.RecommendFertilizer(r.Context(), req.Profile.toDomain()))
}

// HandleFrequency returns the estimated days between waterings
func (h *RecommendHandler) HandleFrequency(w http.ResponseWriter, r *http.Request) {
	var req ProfileRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Estimate frequency"); err != nil {
		return
	}
	days := h.service.EstimateFrequency(r.Context(), req.Profile.toDomain())
	respondJSON(w, http.StatusOK, FrequencyResponse{Days: days, Description: planparse.FormatDays(days)})
}

// HandleWeather returns the watering recommendation rescaled for current weather
func (h *RecommendHandler) HandleWeather(w http.ResponseWriter, r *http.Request) {
	var req WeatherRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Weather adjustment"); err != nil {
		return
	}

	condition := domain.WeatherCondition(req.Condition)
	if condition == "" {
		condition = domain.WeatherUnknown
	}

	rec, adj := h.service.AdjustForWeather(r.Context(), req.Profile.toDomain(), *req.TemperatureF, *req.Humidity, condition)
	respondJSON(w, http.StatusOK, WeatherResponse{Recommendation: rec, Adjustment: adj})
}
