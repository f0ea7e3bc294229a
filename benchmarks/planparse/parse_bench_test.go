package planparse_bench

import (
	"context"
	"testing"

	"github.com/osse101/PlantCare_Go/internal/careplan"
	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/planparse"
	"github.com/osse101/PlantCare_Go/internal/recommendation"
	"github.com/osse101/PlantCare_Go/internal/weather"
)

// Compare runs with benchstat:
//
//	go test -run=^$ -bench=. -count=10 ./benchmarks/planparse > new.txt
//	benchstat old.txt new.txt

var intervalPhrases = []string{
	"every 7 days",
	"Water every 5-7 days in summer",
	"twice a week",
	"once every other week",
	"biweekly",
	"every couple of weeks",
	"every 18 months",
	"keep soil moist",
}

var advice = domain.AdviceText{
	WateringFrequency:    "Water every 5-7 days, letting the top inch dry out",
	FertilizingFrequency: "monthly during the growing season",
	RepotInterval:        "every 1-2 years",
	LightIntensity:       "Bright, indirect light; avoid direct afternoon sun",
	Humidity:             "High humidity (60-80%)",
	Temperature:          "18-24°C",
	WaterAmount:          "about 2 cups",
}

func benchPlant() domain.Plant {
	return domain.Plant{
		ID:             "bench",
		Name:           "Monstera",
		Category:       domain.CategoryTropical,
		DiameterInches: 10,
		Material:       domain.MaterialTerracotta,
		Season:         domain.SeasonSummer,
		Environment:    domain.EnvironmentIndoor,
		FertilizerForm: domain.FertilizerLiquid,
		Settings: domain.CareSettings{
			Schedule:        domain.CareSchedule{WateringIntervalDays: 7, FertilizingIntervalDays: 30, RepotIntervalMonths: 12},
			Light:           domain.LightMedium,
			HumidityPercent: 50,
			Temperature:     domain.TemperatureRange{MinF: 65, MaxF: 75},
		},
	}
}

// stubRepo keeps one plant in memory and copies on read and write
type stubRepo struct {
	plant domain.Plant
}

func (s *stubRepo) GetPlant(context.Context, string) (*domain.Plant, error) {
	p := s.plant
	return &p, nil
}

func (s *stubRepo) SavePlant(_ context.Context, p *domain.Plant) error {
	s.plant = *p
	return nil
}

func (s *stubRepo) Ping(context.Context) error { return nil }

func BenchmarkNormalize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = planparse.Normalize(advice.LightIntensity)
	}
}

func BenchmarkParseInterval(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = planparse.ParseInterval(intervalPhrases[i%len(intervalPhrases)], domain.IntervalDays)
	}
}

func BenchmarkParseHumidity(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = planparse.ParseHumidity(advice.Humidity)
	}
}

func BenchmarkParseTemperatureRange(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = planparse.ParseTemperatureRange(advice.Temperature)
	}
}

func BenchmarkParseLightLevel(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = planparse.ParseLightLevel(advice.LightIntensity)
	}
}

func BenchmarkParseWaterAmount(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = planparse.ParseWaterAmount(advice.WaterAmount)
	}
}

func BenchmarkBuildApplyDraft(b *testing.B) {
	plant := benchPlant()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = careplan.BuildApplyDraft(plant, advice)
	}
}

func BenchmarkRecommendAndAdjust(b *testing.B) {
	engine := recommendation.NewEngine()
	profile := domain.PlantCareProfile{
		DiameterInches: 10,
		Material:       domain.MaterialTerracotta,
		Light:          domain.LightBrightIndirect,
		Category:       domain.CategoryTropical,
		Season:         domain.SeasonSummer,
		Environment:    domain.EnvironmentIndoor,
		FertilizerForm: domain.FertilizerLiquid,
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rec := engine.RecommendWatering(profile)
		_, _ = weather.Adjust(rec, 92, 0.25, domain.WeatherClear)
	}
}

// BenchmarkDraftApplyUndo drives the full session cycle through the service
func BenchmarkDraftApplyUndo(b *testing.B) {
	svc := careplan.NewService(&stubRepo{plant: benchPlant()}, careplan.SessionConfig{})
	ctx := context.Background()
	flags := domain.AllApplyFlags()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.BuildDraft(ctx, "bench", advice); err != nil {
			b.Fatalf("BuildDraft failed: %v", err)
		}
		if _, _, err := svc.Apply(ctx, "bench", flags); err != nil {
			b.Fatalf("Apply failed: %v", err)
		}
		if _, err := svc.Undo(ctx, "bench"); err != nil {
			b.Fatalf("Undo failed: %v", err)
		}
	}
}
