package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Care plan metric names
const (
	MetricNameParseTotal              = "plantcare_parse_total"
	MetricNameDraftsBuilt             = "plantcare_drafts_built_total"
	MetricNameAppliesTotal            = "plantcare_applies_total"
	MetricNameUndosTotal              = "plantcare_undos_total"
	MetricNameWeatherAdjustmentsTotal = "plantcare_weather_adjustments_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Care plan metric help text
const (
	HelpTextParseTotal              = "Total number of advice phrases parsed, by kind and outcome"
	HelpTextDraftsBuilt             = "Total number of care plan drafts built"
	HelpTextAppliesTotal            = "Total number of care categories applied from drafts"
	HelpTextUndosTotal              = "Total number of applies undone"
	HelpTextWeatherAdjustmentsTotal = "Total number of weather adjustments, by condition"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelKind      = "kind"
	LabelOutcome   = "outcome"
	LabelCategory  = "category"
	LabelCondition = "condition"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
