package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ParseRawEvent decodes a RawEvent's value into a RawMeasurement. Malformed
// JSON is an error; missing or unparseable readings are not, they only leave
// sections of the evaluation absent.
func ParseRawEvent(raw RawEvent) (RawMeasurement, error) {
	var m RawMeasurement
	if err := json.Unmarshal(raw.Value, &m); err != nil {
		return RawMeasurement{}, fmt.Errorf("parse raw event: %w", err)
	}
	return m, nil
}

// NewAssessmentEvent wraps an evaluation in its output envelope. RecordedAt
// comes from the message's recorded_at field when it is RFC 3339, otherwise
// from the message timestamp.
func NewAssessmentEvent(raw RawEvent, m RawMeasurement, eval Evaluation) AssessmentEvent {
	recordedAt := parseRecordedAt(m.RecordedAt, raw.Timestamp)

	event := AssessmentEvent{
		ID:          generateID(m, recordedAt),
		SensorID:    strings.TrimSpace(m.SensorID),
		RecordedAt:  recordedAt,
		Input:       m,
		Risk:        eval.Risk,
		Compliance:  eval.Compliance,
		Fault:       eval.Fault,
		ProcessedAt: clock.Now(),
	}
	for _, issue := range eval.Issues {
		event.Issues = append(event.Issues, issue.String())
	}
	return event
}

// SerializeAssessmentEvent marshals an AssessmentEvent for the sink topic.
// Headers carry the tier and fault category so consumers can filter without
// decoding the body; absent sections leave their header empty.
func SerializeAssessmentEvent(event AssessmentEvent) (OutputEvent, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize assessment event: %w", err)
	}

	var tier, category string
	if event.Risk != nil {
		tier = string(event.Risk.Tier)
	}
	if event.Fault != nil {
		category = string(event.Fault.Category)
	}

	return OutputEvent{
		Key:   []byte(event.ID),
		Value: data,
		Headers: map[string]string{
			"risk_tier":      tier,
			"fault_category": category,
			"processed_at":   event.ProcessedAt.Format(time.RFC3339),
		},
	}, nil
}

func parseRecordedAt(s string, fallback time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s != "" {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC()
		}
	}
	return fallback.UTC()
}

// generateID produces a deterministic ID from the readings, sensor and
// recording time so a replayed message yields the same ID downstream.
func generateID(m RawMeasurement, recordedAt time.Time) string {
	input := fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		strings.TrimSpace(m.SensorID),
		strings.TrimSpace(string(m.RoomTemp)),
		strings.TrimSpace(string(m.Humidity)),
		strings.TrimSpace(string(m.SurfaceTemp)),
		strings.TrimSpace(string(m.OutdoorTemp)),
		recordedAt.Format(time.RFC3339),
	)
	hash := sha256.Sum256([]byte(input))
	return "msr-" + hex.EncodeToString(hash[:8])
}
