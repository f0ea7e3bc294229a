package careplan

import "time"

// Session store defaults
const (
	DefaultSessionCacheSize = 1024
	DefaultSessionTTL       = 30 * time.Minute
)

// Parse kinds, used as metric labels
const (
	ParseKindWateringInterval    = "watering_interval"
	ParseKindFertilizingInterval = "fertilizing_interval"
	ParseKindRepotInterval       = "repot_interval"
	ParseKindLight               = "light"
	ParseKindHumidity            = "humidity"
	ParseKindTemperature         = "temperature"
	ParseKindWaterAmount         = "water_amount"
)

// Parse outcomes
const (
	ParseOutcomeMatched   = "matched"
	ParseOutcomeUnmatched = "unmatched"
	ParseOutcomeEmpty     = "empty"
)

// Log messages
const (
	LogMsgDraftBuilt       = "Care plan draft built"
	LogMsgDraftApplied     = "Care plan draft applied"
	LogMsgApplyUndone      = "Care plan apply undone"
	LogMsgSessionDiscarded = "Care plan session discarded"
	LogMsgAdviceUnparsed   = "Advice phrase not understood, keeping current value"
	LogMsgApplyRejected    = "Apply rejected"
	LogMsgUndoRejected     = "Undo rejected"
	LogMsgPlantDefaulted   = "Filled plant defaults"
	LogMsgPlantRejected    = "Plant settings rejected"
)
