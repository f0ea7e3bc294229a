package careplan

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PlantCare_Go/internal/classifier"
	"github.com/osse101/PlantCare_Go/internal/concurrency"
	"github.com/osse101/PlantCare_Go/internal/domain"
	"github.com/osse101/PlantCare_Go/internal/logger"
	"github.com/osse101/PlantCare_Go/internal/metrics"
	"github.com/osse101/PlantCare_Go/internal/recommendation"
	"github.com/osse101/PlantCare_Go/internal/repository"
	"github.com/osse101/PlantCare_Go/internal/weather"
)

// Service defines the care plan feature interface
type Service interface {
	RecommendWatering(ctx context.Context, profile domain.PlantCareProfile) domain.WateringRecommendation
	RecommendFertilizer(ctx context.Context, profile domain.PlantCareProfile) domain.FertilizerRecommendation
	EstimateFrequency(ctx context.Context, profile domain.PlantCareProfile) int
	AdjustForWeather(ctx context.Context, profile domain.PlantCareProfile, temperatureF, humidity float64, condition domain.WeatherCondition) (domain.WateringRecommendation, domain.WeatherAdjustment)

	GetPlant(ctx context.Context, id string) (*domain.Plant, error)
	SavePlant(ctx context.Context, plant *domain.Plant) error

	BuildDraft(ctx context.Context, plantID string, advice domain.AdviceText) (*domain.ApplyDraft, error)
	Apply(ctx context.Context, plantID string, flags domain.ApplyFlags) (*domain.Plant, *domain.UndoSnapshot, error)
	Undo(ctx context.Context, plantID string) (*domain.Plant, error)
	Discard(ctx context.Context, plantID string)
	SessionState(ctx context.Context, plantID string) domain.SessionState
}

// SessionConfig sizes the in-memory draft/undo session store
type SessionConfig struct {
	CacheSize int
	TTL       time.Duration
}

// session is one plant's place in the draft/apply/undo cycle. Only one
// snapshot is retained; building a new draft drops it.
type session struct {
	state    domain.SessionState
	draft    *domain.ApplyDraft
	snapshot *domain.UndoSnapshot
	applied  domain.CareSettings
}

type service struct {
	repo     repository.Plant
	engine   *recommendation.Engine
	sessions *expirable.LRU[string, *session]
	locks    *concurrency.LockManager
	now      func() time.Time
}

// NewService creates a new care plan service
func NewService(repo repository.Plant, cfg SessionConfig) Service {
	size := cfg.CacheSize
	if size <= 0 {
		size = DefaultSessionCacheSize
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}

	return &service{
		repo:     repo,
		engine:   recommendation.NewEngine(),
		sessions: expirable.NewLRU[string, *session](size, nil, ttl),
		locks:    concurrency.NewLockManager(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) RecommendWatering(_ context.Context, profile domain.PlantCareProfile) domain.WateringRecommendation {
	return s.engine.RecommendWatering(profile)
}

func (s *service) RecommendFertilizer(_ context.Context, profile domain.PlantCareProfile) domain.FertilizerRecommendation {
	return s.engine.RecommendFertilizer(profile)
}

func (s *service) EstimateFrequency(_ context.Context, profile domain.PlantCareProfile) int {
	return s.engine.EstimateWateringFrequencyDays(profile)
}

// AdjustForWeather computes the base watering recommendation and rescales it
func (s *service) AdjustForWeather(ctx context.Context, profile domain.PlantCareProfile, temperatureF, humidity float64, condition domain.WeatherCondition) (domain.WateringRecommendation, domain.WeatherAdjustment) {
	rec, adj := weather.Adjust(s.engine.RecommendWatering(profile), temperatureF, humidity, condition)
	metrics.WeatherAdjustmentsTotal.WithLabelValues(string(condition)).Inc()
	logger.FromContext(ctx).Debug("Weather adjustment computed",
		"condition", condition, "multiplier", adj.Multiplier, "light_adjustment", adj.LightAdjustment)
	return rec, adj
}

func (s *service) GetPlant(ctx context.Context, id string) (*domain.Plant, error) {
	plant, err := s.repo.GetPlant(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}
	return plant, nil
}

// SavePlant stores the plant, classifying it and defaulting its watering
// interval when those are not set. Settings outside the care plan bounds
// are rejected with domain.ErrInvalidInput.
func (s *service) SavePlant(ctx context.Context, plant *domain.Plant) error {
	if plant == nil || plant.ID == "" {
		return fmt.Errorf("%w: plant id is required", domain.ErrInvalidInput)
	}

	unlock := s.locks.Lock(plant.ID)
	defer unlock()

	if plant.Category == "" {
		plant.Category = classifier.ClassifyPlant(*plant)
		logger.FromContext(ctx).Info(LogMsgPlantDefaulted, "plant_id", plant.ID, "category", plant.Category)
	}
	if plant.Settings.Schedule.WateringIntervalDays <= 0 {
		plant.Settings.Schedule.WateringIntervalDays = recommendation.EstimateWateringFrequencyDays(plant.Profile())
	}
	if err := plant.Settings.Validate(); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPlantRejected, "plant_id", plant.ID, "error", err)
		return err
	}
	plant.UpdatedAt = s.now()

	if err := s.repo.SavePlant(ctx, plant); err != nil {
		return fmt.Errorf("failed to save plant: %w", err)
	}
	// A pending snapshot no longer matches stored state
	s.sessions.Remove(plant.ID)
	return nil
}

// BuildDraft parses advice against the plant's current settings and starts
// a new session, discarding any pending undo snapshot.
func (s *service) BuildDraft(ctx context.Context, plantID string, advice domain.AdviceText) (*domain.ApplyDraft, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(plantID)
	defer unlock()

	plant, err := s.repo.GetPlant(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}

	draft, outcomes := buildDraft(*plant, advice)
	draft.BuiltAt = s.now()

	for _, o := range outcomes {
		metrics.ParseTotal.WithLabelValues(o.Kind, o.Outcome).Inc()
		if o.Outcome == ParseOutcomeUnmatched {
			log.Debug(LogMsgAdviceUnparsed, "plant_id", plantID, "kind", o.Kind, "text", o.Text)
		}
	}
	metrics.DraftsBuilt.Inc()

	s.sessions.Add(plantID, &session{state: domain.SessionDraftBuilt, draft: &draft})
	log.Info(LogMsgDraftBuilt, "plant_id", plantID, "changes", len(draft.Changes()))
	return &draft, nil
}

// Apply copies the selected categories of the pending draft onto the plant
// and persists the whole new state in one write.
func (s *service) Apply(ctx context.Context, plantID string, flags domain.ApplyFlags) (*domain.Plant, *domain.UndoSnapshot, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(plantID)
	defer unlock()

	sess, ok := s.sessions.Get(plantID)
	if !ok || sess.state != domain.SessionDraftBuilt || sess.draft == nil {
		log.Warn(LogMsgApplyRejected, "plant_id", plantID, "reason", domain.ErrMsgNoDraft)
		return nil, nil, domain.ErrNoDraft
	}

	plant, err := s.repo.GetPlant(ctx, plantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get plant: %w", err)
	}

	next, snap, err := Apply(*plant, *sess.draft, flags, s.now())
	if err != nil {
		log.Warn(LogMsgApplyRejected, "plant_id", plantID, "error", err)
		return nil, nil, err
	}

	if err := s.repo.SavePlant(ctx, &next); err != nil {
		return nil, nil, fmt.Errorf("failed to save applied plant: %w", err)
	}

	s.sessions.Add(plantID, &session{
		state:    domain.SessionApplied,
		draft:    sess.draft,
		snapshot: &snap,
		applied:  next.Settings,
	})

	categories := flags.Categories()
	for _, c := range categories {
		metrics.AppliesTotal.WithLabelValues(c).Inc()
	}
	log.Info(LogMsgDraftApplied, "plant_id", plantID, "categories", categories, "snapshot_id", snap.ID)
	return &next, &snap, nil
}

// Undo restores the plant to its state before the last apply
func (s *service) Undo(ctx context.Context, plantID string) (*domain.Plant, error) {
	log := logger.FromContext(ctx)

	unlock := s.locks.Lock(plantID)
	defer unlock()

	sess, ok := s.sessions.Get(plantID)
	if !ok || sess.state != domain.SessionApplied || sess.snapshot == nil {
		log.Warn(LogMsgUndoRejected, "plant_id", plantID, "reason", domain.ErrMsgNothingToUndo)
		return nil, domain.ErrNothingToUndo
	}

	plant, err := s.repo.GetPlant(ctx, plantID)
	if err != nil {
		return nil, fmt.Errorf("failed to get plant: %w", err)
	}
	if plant.Settings != sess.applied {
		log.Warn(LogMsgUndoRejected, "plant_id", plantID, "reason", domain.ErrMsgSnapshotMismatch)
		return nil, domain.ErrSnapshotMismatch
	}

	restored, err := Undo(*plant, *sess.snapshot)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SavePlant(ctx, &restored); err != nil {
		return nil, fmt.Errorf("failed to save restored plant: %w", err)
	}

	s.sessions.Add(plantID, &session{state: domain.SessionUndone})
	metrics.UndosTotal.Inc()
	log.Info(LogMsgApplyUndone, "plant_id", plantID, "snapshot_id", sess.snapshot.ID)
	return &restored, nil
}

// Discard drops the plant's session, including any pending undo snapshot
func (s *service) Discard(ctx context.Context, plantID string) {
	unlock := s.locks.Lock(plantID)
	defer unlock()

	if s.sessions.Remove(plantID) {
		logger.FromContext(ctx).Info(LogMsgSessionDiscarded, "plant_id", plantID)
	}
}

func (s *service) SessionState(_ context.Context, plantID string) domain.SessionState {
	if sess, ok := s.sessions.Peek(plantID); ok {
		return sess.state
	}
	return domain.SessionIdle
}
