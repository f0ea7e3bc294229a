package handler

import (
	"net/http"

	"github.com/osse101/PlantCare_Go/internal/classifier"
	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/planparse"
)

// Parse kinds accepted by the parse endpoint
const (
	ParseKindInterval    = "interval"
	ParseKindHumidity    = "humidity"
	ParseKindTemperature = "temperature"
	ParseKindLight       = "light"
	ParseKindWaterAmount = "water_amount"
)

// ParseRequest is the request body for parsing one advice phrase
type ParseRequest struct {
	Kind string `json:"kind" validate:"required,oneof=interval humidity temperature light water_amount"`
	Text string `json:"text"`
	Unit string `json:"unit,omitempty" validate:"omitempty,oneof=days months"`
}

// ParseResponse reports whether the phrase was understood and what it means
type ParseResponse struct {
	Kind    string `json:"kind"`
	OK      bool   `json:"ok"`
	Value   any    `json:"value,omitempty"`
	Display string `json:"display,omitempty"`
	Rule    string `json:"rule,omitempty"`
}

// ClassifyRequest is the request body for classifying a plant
type ClassifyRequest struct {
	CommonNames    []string `json:"common_names"`
	Family         string   `json:"family"`
	ScientificName string   `json:"scientific_name"`
}

// ClassifyResponse carries the derived category
type ClassifyResponse struct {
	Category domain.PlantCategory `json:"category"`
}

// HandleParse runs a single parser over a phrase
func HandleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Parse"); err != nil {
		return
	}
	respondJSON(w, http.StatusOK, parsePhrase(req))
}

func parsePhrase(req ParseRequest) ParseResponse {
	resp := ParseResponse{Kind: req.Kind}

	switch req.Kind {
	case ParseKindInterval:
		unit := domain.IntervalUnit(req.Unit)
		if unit == "" {
			unit = domain.IntervalDays
		}
		if v, rule, ok := planparse.ParseIntervalWithRule(req.Text, unit); ok {
			resp.OK, resp.Value, resp.Rule = true, v, rule
			if unit == domain.IntervalMonths {
				resp.Display = planparse.FormatMonths(v)
			} else {
				resp.Display = planparse.FormatDays(v)
			}
		}
	case ParseKindHumidity:
		if v, ok := planparse.ParseHumidity(req.Text); ok {
			resp.OK, resp.Value, resp.Display = true, v, planparse.FormatHumidity(v)
		}
	case ParseKindTemperature:
		if v, ok := planparse.ParseTemperatureRange(req.Text); ok {
			resp.OK, resp.Value, resp.Display = true, v, planparse.FormatTemperature(v)
		}
	case ParseKindLight:
		if v, ok := planparse.ParseLightLevel(req.Text); ok {
			resp.OK, resp.Value, resp.Display = true, v, planparse.FormatLight(v)
		}
	case ParseKindWaterAmount:
		if v, ok := planparse.ParseWaterAmount(req.Text); ok {
			resp.OK, resp.Value, resp.Display = true, v, planparse.FormatWaterAmount(v)
		}
	}
	return resp
}

// HandleClassify maps botanical identifiers to a watering category
func HandleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Classify"); err != nil {
		return
	}
	respondJSON(w, http.StatusOK, ClassifyResponse{
		Category: classifier.Classify(req.CommonNames, req.Family, req.ScientificName),
	})
}
