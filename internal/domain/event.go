package domain

import (
	"context"
	"time"
)

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// AssessmentEvent is the evaluated form of one measurement message. Absent
// sections are nil and explained in Issues.
type AssessmentEvent struct {
	ID         string    `json:"id"`
	SensorID   string    `json:"sensor_id,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`

	Input RawMeasurement `json:"input"`

	Risk       *RiskAssessment       `json:"risk,omitempty"`
	Compliance *ComplianceAssessment `json:"compliance,omitempty"`
	Fault      *FaultAttribution     `json:"fault,omitempty"`
	Issues     []string              `json:"issues,omitempty"`

	ProcessedAt time.Time `json:"processed_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
