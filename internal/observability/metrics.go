package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mold_risk_etl"

// Metrics holds the Prometheus counters, histograms, and gauges for the assessment pipeline.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Assessment outcome metrics.
	RiskTiers         *prometheus.CounterVec // labels: tier={unproblematic,critical,mold_risk,condensation}
	ComplianceResults *prometheus.CounterVec // labels: compliant={true,false}
	FaultCategories   *prometheus.CounterVec // labels: category={building_and_occupant,building_side,occupant_side,mixed_unclear}
	AbsentSections    *prometheus.CounterVec // labels: section={risk,compliance,fault}, reason={incomplete_input,degenerate_arithmetic}
	SurfaceHumidity   prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.RiskTiers,
		m.ComplianceResults,
		m.FaultCategories,
		m.AbsentSections,
		m.SurfaceHumidity,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_consumed_total",
			Help:      "Total messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_produced_total",
			Help:      "Total messages written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total messages that could not be decoded or serialized.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-evaluate-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		RiskTiers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "risk_tier_total",
			Help:      "Surface humidity assessments by risk tier.",
		}, []string{"tier"}),
		ComplianceResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sia180_compliance_total",
			Help:      "SIA 180 humidity limit checks by outcome.",
		}, []string{"compliant"}),
		FaultCategories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fault_category_total",
			Help:      "Fault attributions by category.",
		}, []string{"category"}),
		AbsentSections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "absent_sections_total",
			Help:      "Assessment sections left absent, by section and reason.",
		}, []string{"section", "reason"}),
		SurfaceHumidity: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "surface_humidity_percent",
			Help:      "Distribution of computed surface relative humidity.",
			Buckets:   []float64{40, 50, 60, 65, 70, 80, 90, 100, 120},
		}),
	}
}
