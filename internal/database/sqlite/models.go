package sqlite

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/osse101/PlantCare_Go/internal/domain"
)

// plantRecord is the plants table row. JSON columns are stored as text.
type plantRecord struct {
	PlantID        string `gorm:"primaryKey"`
	Name           string
	CommonNames    string
	Family         string
	ScientificName string
	Category       string
	DiameterInches float64
	HeightInches   *float64
	Material       string
	Season         string
	Environment    string
	FertilizerForm string
	Settings       string
	UpdatedAt      time.Time `gorm:"autoUpdateTime:false"`
}

func (plantRecord) TableName() string { return "plants" }

type carePlanRecord struct {
	PlantID   string `gorm:"primaryKey"`
	Advice    string
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (carePlanRecord) TableName() string { return "care_plans" }

func toRecords(p *domain.Plant) (plantRecord, *carePlanRecord, error) {
	names, err := json.Marshal(p.CommonNames)
	if err != nil {
		return plantRecord{}, nil, fmt.Errorf("%s common_names: %w", ErrMsgFailedToMarshal, err)
	}
	settings, err := json.Marshal(p.Settings)
	if err != nil {
		return plantRecord{}, nil, fmt.Errorf("%s settings: %w", ErrMsgFailedToMarshal, err)
	}

	rec := plantRecord{
		PlantID:        p.ID,
		Name:           p.Name,
		CommonNames:    string(names),
		Family:         p.Family,
		ScientificName: p.ScientificName,
		Category:       string(p.Category),
		DiameterInches: p.DiameterInches,
		HeightInches:   p.HeightInches,
		Material:       string(p.Material),
		Season:         string(p.Season),
		Environment:    string(p.Environment),
		FertilizerForm: string(p.FertilizerForm),
		Settings:       string(settings),
		UpdatedAt:      p.UpdatedAt.UTC(),
	}
	if p.CarePlan == nil {
		return rec, nil, nil
	}

	advice, err := json.Marshal(p.CarePlan.Advice)
	if err != nil {
		return plantRecord{}, nil, fmt.Errorf("%s advice: %w", ErrMsgFailedToMarshal, err)
	}
	return rec, &carePlanRecord{
		PlantID:   p.ID,
		Advice:    string(advice),
		CreatedAt: p.CarePlan.CreatedAt.UTC(),
		UpdatedAt: p.CarePlan.UpdatedAt.UTC(),
	}, nil
}

func fromRecords(rec plantRecord, cp *carePlanRecord) (*domain.Plant, error) {
	p := domain.Plant{
		ID:             rec.PlantID,
		Name:           rec.Name,
		Family:         rec.Family,
		ScientificName: rec.ScientificName,
		Category:       domain.PlantCategory(rec.Category),
		DiameterInches: rec.DiameterInches,
		HeightInches:   rec.HeightInches,
		Material:       domain.ContainerMaterial(rec.Material),
		Season:         domain.Season(rec.Season),
		Environment:    domain.Environment(rec.Environment),
		FertilizerForm: domain.FertilizerForm(rec.FertilizerForm),
		UpdatedAt:      rec.UpdatedAt.UTC(),
	}
	if err := json.Unmarshal([]byte(rec.CommonNames), &p.CommonNames); err != nil {
		return nil, fmt.Errorf("%s common_names: %w", ErrMsgFailedToUnmarshal, err)
	}
	if err := json.Unmarshal([]byte(rec.Settings), &p.Settings); err != nil {
		return nil, fmt.Errorf("%s settings: %w", ErrMsgFailedToUnmarshal, err)
	}
	if cp != nil {
		plan := domain.CarePlan{CreatedAt: cp.CreatedAt.UTC(), UpdatedAt: cp.UpdatedAt.UTC()}
		if err := json.Unmarshal([]byte(cp.Advice), &plan.Advice); err != nil {
			return nil, fmt.Errorf("%s advice: %w", ErrMsgFailedToUnmarshal, err)
		}
		p.CarePlan = &plan
	}
	return &p, nil
}
