package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/couchcryptid/mold-risk-etl/internal/domain"
	"github.com/couchcryptid/mold-risk-etl/internal/observability"
)

// AssessmentTransformer implements Transformer by running the domain
// evaluation on each measurement message.
type AssessmentTransformer struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates an AssessmentTransformer. A nil metrics disables
// outcome counting.
func NewTransformer(logger *slog.Logger, metrics *observability.Metrics) *AssessmentTransformer {
	return &AssessmentTransformer{
		logger:  logger,
		metrics: metrics,
	}
}

// Transform decodes, evaluates and serializes one message. Incomplete
// readings are not an error: the event is emitted with absent sections.
func (t *AssessmentTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	m, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	eval := domain.Evaluate(m)
	event := domain.NewAssessmentEvent(raw, m, eval)

	for _, issue := range eval.Issues {
		t.logger.Debug("assessment section absent",
			"id", event.ID,
			"sensor_id", event.SensorID,
			"section", issue.Section,
			"reason", issue.String(),
		)
	}
	t.record(eval)

	return domain.SerializeAssessmentEvent(event)
}

func (t *AssessmentTransformer) record(eval domain.Evaluation) {
	if t.metrics == nil {
		return
	}
	if eval.Risk != nil {
		t.metrics.RiskTiers.WithLabelValues(string(eval.Risk.Tier)).Inc()
		t.metrics.SurfaceHumidity.Observe(eval.Risk.SurfaceHumidity)
	}
	if eval.Compliance != nil {
		t.metrics.ComplianceResults.WithLabelValues(strconv.FormatBool(eval.Compliance.Compliant)).Inc()
	}
	if eval.Fault != nil {
		t.metrics.FaultCategories.WithLabelValues(string(eval.Fault.Category)).Inc()
	}
	for _, issue := range eval.Issues {
		t.metrics.AbsentSections.WithLabelValues(string(issue.Section), issueReason(issue.Err)).Inc()
	}
}

func issueReason(err error) string {
	if errors.Is(err, domain.ErrDegenerateArithmetic) {
		return "degenerate_arithmetic"
	}
	return "incomplete_input"
}
