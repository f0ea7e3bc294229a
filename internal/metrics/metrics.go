package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Care plan Metrics
var (
	ParseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameParseTotal,
			Help: HelpTextParseTotal,
		},
		[]string{LabelKind, LabelOutcome},
	)

	DraftsBuilt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDraftsBuilt,
			Help: HelpTextDraftsBuilt,
		},
	)

	AppliesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAppliesTotal,
			Help: HelpTextAppliesTotal,
		},
		[]string{LabelCategory},
	)

	UndosTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUndosTotal,
			Help: HelpTextUndosTotal,
		},
	)

	WeatherAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeatherAdjustmentsTotal,
			Help: HelpTextWeatherAdjustmentsTotal,
		},
		[]string{LabelCondition},
	)
)
