package handler

import (
	"context"
	"net/http"

	"github.com/osse101/PlantCare_Go/internal/careplan"
	"github.com/osse101/PlantCare_Go/internal/domain"
)

// PlantHandler handles plant storage and the draft/apply/undo cycle
type PlantHandler struct {
	service careplan.Service
}

// NewPlantHandler creates a new plant handler
func NewPlantHandler(service careplan.Service) *PlantHandler {
	return &PlantHandler{service: service}
}

// ScheduleBody is the wire form of a care schedule. Zero leaves an interval unset.
type ScheduleBody struct {
	WateringIntervalDays    int `json:"watering_interval_days" validate:"gte=0"`
	FertilizingIntervalDays int `json:"fertilizing_interval_days" validate:"gte=0"`
	RepotIntervalMonths     int `json:"repot_interval_months" validate:"gte=0"`
}

// TemperatureBody is the wire form of a temperature range. Both bounds are
// set or neither is.
type TemperatureBody struct {
	MinF int `json:"min_f" validate:"required_with=MaxF,omitempty,gte=40,lte=95"`
	MaxF int `json:"max_f" validate:"required_with=MinF,omitempty,gte=40,lte=95,gtefield=MinF"`
}

// SettingsBody is the wire form of a plant's care settings
type SettingsBody struct {
	Schedule        ScheduleBody       `json:"schedule"`
	Light           string             `json:"light" validate:"light"`
	HumidityPercent int                `json:"humidity_percent" validate:"omitempty,gte=20,lte=90"`
	Temperature     TemperatureBody    `json:"temperature"`
	Water           domain.WaterAmount `json:"water"`
}

// PlantRequest is the request body for storing a plant
type PlantRequest struct {
	Name           string       `json:"name" validate:"max=200"`
	CommonNames    []string     `json:"common_names,omitempty" validate:"max=20,dive,max=200"`
	Family         string       `json:"family,omitempty" validate:"max=200"`
	ScientificName string       `json:"scientific_name,omitempty" validate:"max=200"`
	Category       string       `json:"category" validate:"category"`
	DiameterInches float64      `json:"diameter_inches" validate:"gte=0"`
	HeightInches   *float64     `json:"height_inches,omitempty" validate:"omitempty,gte=0"`
	Material       string       `json:"material" validate:"material"`
	Season         string       `json:"season" validate:"required,season"`
	Environment    string       `json:"environment" validate:"required,environment"`
	FertilizerForm string       `json:"fertilizer_form" validate:"fertilizer_form"`
	Settings       SettingsBody `json:"settings"`
}

func (p PlantRequest) toDomain(id string, existing *domain.Plant) *domain.Plant {
	plant := &domain.Plant{
		ID:             id,
		Name:           p.Name,
		CommonNames:    p.CommonNames,
		Family:         p.Family,
		ScientificName: p.ScientificName,
		Category:       domain.PlantCategory(p.Category),
		DiameterInches: p.DiameterInches,
		HeightInches:   p.HeightInches,
		Material:       domain.ContainerMaterial(p.Material),
		Season:         domain.Season(p.Season),
		Environment:    domain.Environment(p.Environment),
		FertilizerForm: domain.FertilizerForm(p.FertilizerForm),
		Settings: domain.CareSettings{
			Schedule: domain.CareSchedule{
				WateringIntervalDays:    p.Settings.Schedule.WateringIntervalDays,
				FertilizingIntervalDays: p.Settings.Schedule.FertilizingIntervalDays,
				RepotIntervalMonths:     p.Settings.Schedule.RepotIntervalMonths,
			},
			Light:           domain.LightLevel(p.Settings.Light),
			HumidityPercent: p.Settings.HumidityPercent,
			Temperature:     domain.TemperatureRange{MinF: p.Settings.Temperature.MinF, MaxF: p.Settings.Temperature.MaxF},
			Water:           p.Settings.Water,
		},
	}
	// The care plan record is only written by apply and undo
	if existing != nil && existing.CarePlan != nil {
		plan := *existing.CarePlan
		plant.CarePlan = &plan
	}
	return plant
}

// DraftRequest is the request body for building a draft
type DraftRequest struct {
	Advice domain.AdviceText `json:"advice"`
}

// DraftResponse is a draft plus the fields it would change
type DraftResponse struct {
	*domain.ApplyDraft
	Changes []domain.FieldChange `json:"changes"`
}

// ApplyRequest is the request body for applying the pending draft.
// Omitted flags select every category.
type ApplyRequest struct {
	Flags *domain.ApplyFlags `json:"flags,omitempty"`
}

// ApplyResponse reports the stored plant and the snapshot undo will restore
type ApplyResponse struct {
	Plant      *domain.Plant `json:"plant"`
	SnapshotID string        `json:"snapshot_id"`
	Applied    []string      `json:"applied"`
}

// SessionResponse reports where a plant is in the draft/apply/undo cycle
type SessionResponse struct {
	PlantID string              `json:"plant_id"`
	State   domain.SessionState `json:"state"`
}

// HandleGetPlant returns a stored plant
func (h *PlantHandler) HandleGetPlant(w http.ResponseWriter, r *http.Request) {
	id, ok := plantIDParam(w, r)
	if !ok {
		return
	}

	plant, err := h.service.GetPlant(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get plant", err)
		return
	}
	respondJSON(w, http.StatusOK, plant)
}

// HandlePutPlant creates or replaces a plant, keeping its care plan record
func (h *PlantHandler) HandlePutPlant(w http.ResponseWriter, r *http.Request) {
	id, ok := plantIDParam(w, r)
	if !ok {
		return
	}

	handleAction(w, r, "Save plant", http.StatusOK,
		func(ctx context.Context, req PlantRequest) (*domain.Plant, error) {
			existing, err := h.service.GetPlant(ctx, id)
			if err != nil && !isNotFound(err) {
				return nil, err
			}
			plant := req.toDomain(id, existing)
			if err := h.service.SavePlant(ctx, plant); err != nil {
				return nil, err
			}
			return plant, nil
		},
		func(p *domain.Plant) any { return p },
	)
}

// HandleBuildDraft parses advice into a reviewable draft
func (h *PlantHandler) HandleBuildDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := plantIDParam(w, r)
	if !ok {
		return
	}

	handleAction(w, r, "Build draft", http.StatusOK,
		func(ctx context.Context, req DraftRequest) (*domain.ApplyDraft, error) {
			return h.service.BuildDraft(ctx, id, req.Advice)
		},
		func(d *domain.ApplyDraft) any {
			return DraftResponse{ApplyDraft: d, Changes: d.Changes()}
		},
	)
}

// HandleApply applies the selected categories of the pending draft
func (h *PlantHandler) HandleApply(w http.ResponseWriter, r *http.Request) {
	id, ok := plantIDParam(w, r)
	if !ok {
		return
	}

	handleAction(w, r, "Apply draft", http.StatusOK,
		func(ctx context.Context, req ApplyRequest) (ApplyResponse, error) {
			flags := domain.AllApplyFlags()
			if req.Flags != nil {
				flags = *req.Flags
			}
			plant, snap, err := h.service.Apply(ctx, id, flags)
			if err != nil {
				return ApplyResponse{}, err
			}
			return ApplyResponse{Plant: plant, SnapshotID: snap.ID, Applied: flags.Categories()}, nil
		},
		func(resp ApplyResponse) any { return resp },
	)
}

// HandleUndo restores the plant to its state before the last apply
func (h *PlantHandler) HandleUndo(w http.ResponseWriter, r *http.Request) {
	id, ok := plantIDParam(w, r)
	if !ok {
		return
	}

	plant, err := h.service.Undo(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Undo apply", err)
		return
	}
	respondJSON(w, http.StatusOK, plant)
}

// HandleGetSession reports the plant's session state
func (h *PlantHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := plantIDParam(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, SessionResponse{PlantID: id, State: h.service.SessionState(r.Context(), id)})
}

// HandleDiscardSession drops the pending draft and undo snapshot
func (h *PlantHandler) HandleDiscardSession(w http.ResponseWriter, r *http.Request) {
	id, ok := plantIDParam(w, r)
	if !ok {
		return
	}
	h.service.Discard(r.Context(), id)
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSessionDiscarded})
}
