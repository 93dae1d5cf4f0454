// Command validate performs end-to-end integrity checks across the mock data
// of the mold risk pipeline: the CSV export, the raw measurement JSON, and the
// assessed JSON. It verifies row counts, field parity, recomputes every
// assessment, and checks the documented relationships between sections.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -csv data/mock/room_measurements.csv \
//	  -raw-json data/mock/measurements.json \
//	  -assessed-json data/mock/assessments.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/mold-risk-etl/internal/domain"
	"github.com/jonboulle/clockwork"
)

var baseDate = time.Date(2025, time.January, 14, 0, 0, 0, 0, time.UTC)

// Absolute tolerance for recomputed percentages.
const tolerance = 1e-9

var csvColumns = []string{"sensor_id", "recorded_at", "room_temp", "humidity", "surface_temp", "outdoor_temp"}

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "data/mock/room_measurements.csv", "room measurement CSV export")
	rawJSON := flag.String("raw-json", "data/mock/measurements.json", "raw measurement JSON fixture")
	assessedJSON := flag.String("assessed-json", "data/mock/assessments.json", "assessed JSON fixture")
	flag.Parse()

	if *csvPath == "" || *rawJSON == "" || *assessedJSON == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*csvPath, *rawJSON, *assessedJSON); code != 0 {
		os.Exit(code)
	}
}

func run(csvPath, rawJSONPath, assessedJSONPath string) int {
	// Fixed clock matching genmock.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2025, time.January, 17, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	fmt.Println("=== Mold Risk Data Integrity Validation ===")
	fmt.Println()

	rows, err := loadCSV(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load CSV: %v\n", err)
		return 1
	}

	raws, err := loadJSON[domain.RawMeasurement](rawJSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load raw JSON: %v\n", err)
		return 1
	}

	assessed, err := loadJSON[domain.AssessmentEvent](assessedJSONPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load assessed JSON: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateRawIntegrity(raws, rows),
		validateRecomputation(assessed, raws),
		validateSectionRules(assessed),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d CSV, %d raw JSON, %d assessed JSON\n", len(rows), len(raws), len(assessed))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Data loading ──

// csvRow is a parsed CSV row with field values keyed by header name.
type csvRow struct {
	lineNum int
	fields  map[string]string
}

func loadCSV(path string) ([]csvRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	all, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) < 2 {
		return nil, fmt.Errorf("no data rows in %s", path)
	}

	header := all[0]
	rows := make([]csvRow, 0, len(all)-1)
	for i, row := range all[1:] {
		fields := make(map[string]string, len(header))
		for j, h := range header {
			if j < len(row) {
				fields[h] = strings.TrimSpace(row[j])
			}
		}
		rows = append(rows, csvRow{lineNum: i + 2, fields: fields})
	}
	return rows, nil
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ── Phase 1: Raw Integrity ──
// Validates the raw JSON fixture against the CSV export.

func validateRawIntegrity(raws []domain.RawMeasurement, rows []csvRow) *phase {
	p := &phase{name: "Phase 1: Raw Integrity (JSON vs CSV)"}

	if len(raws) != len(rows) {
		p.errorf("total count: CSV has %d rows, raw JSON has %d records", len(rows), len(raws))
	}

	index := make(map[string]*domain.RawMeasurement, len(raws))
	for i := range raws {
		key := raws[i].SensorID + "|" + raws[i].RecordedAt
		if _, dup := index[key]; dup {
			p.errorf("raw record %d: duplicate sensor/time %s", i, key)
			continue
		}
		index[key] = &raws[i]
	}

	for _, row := range rows {
		key := row.fields["sensor_id"] + "|" + row.fields["recorded_at"]
		raw, ok := index[key]
		if !ok {
			p.errorf("line %d: CSV row not found in raw JSON (key=%s)", row.lineNum, key)
			continue
		}
		for _, col := range csvColumns {
			if got := rawField(raw, col); got != row.fields[col] {
				p.errorf("line %d: column %q: csv=%q, json=%q", row.lineNum, col, row.fields[col], got)
			}
		}
	}
	return p
}

func rawField(m *domain.RawMeasurement, col string) string {
	switch col {
	case "sensor_id":
		return m.SensorID
	case "recorded_at":
		return m.RecordedAt
	case "room_temp":
		return string(m.RoomTemp)
	case "humidity":
		return string(m.Humidity)
	case "surface_temp":
		return string(m.SurfaceTemp)
	case "outdoor_temp":
		return string(m.OutdoorTemp)
	}
	return ""
}

// ── Phase 2: Recomputation ──
// Re-runs the evaluation on every raw record and compares with the fixture.

func validateRecomputation(assessed []domain.AssessmentEvent, raws []domain.RawMeasurement) *phase {
	p := &phase{name: "Phase 2: Recomputation (assessed vs raw)"}

	byID := make(map[string]*domain.AssessmentEvent, len(assessed))
	for i := range assessed {
		if assessed[i].ID == "" {
			p.errorf("assessed record %d: missing ID", i)
			continue
		}
		byID[assessed[i].ID] = &assessed[i]
	}

	for i := range raws {
		want, err := reassess(raws[i])
		if err != nil {
			p.errorf("raw record %d: %v", i, err)
			continue
		}
		got, ok := byID[want.ID]
		if !ok {
			p.errorf("raw record %d (%s): ID %q not found in assessed JSON", i, raws[i].SensorID, want.ID)
			continue
		}
		compareAssessments(p, want, got)
	}
	return p
}

func reassess(m domain.RawMeasurement) (domain.AssessmentEvent, error) {
	value, err := json.Marshal(m)
	if err != nil {
		return domain.AssessmentEvent{}, fmt.Errorf("marshal error: %w", err)
	}
	raw := domain.RawEvent{Value: value, Timestamp: baseDate}
	parsed, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.AssessmentEvent{}, err
	}
	return domain.NewAssessmentEvent(raw, parsed, domain.Evaluate(parsed)), nil
}

func compareAssessments(p *phase, want domain.AssessmentEvent, got *domain.AssessmentEvent) {
	id := want.ID

	if !got.RecordedAt.Equal(want.RecordedAt) {
		p.errorf("ID %s: recorded_at: expected %s, got %s", id, want.RecordedAt.Format(time.RFC3339), got.RecordedAt.Format(time.RFC3339))
	}

	switch {
	case (want.Risk == nil) != (got.Risk == nil):
		p.errorf("ID %s: risk presence: expected %t, got %t", id, want.Risk != nil, got.Risk != nil)
	case want.Risk != nil:
		if !floatEq(want.Risk.SurfaceHumidity, got.Risk.SurfaceHumidity) {
			p.errorf("ID %s: surface_humidity: expected %g, got %g", id, want.Risk.SurfaceHumidity, got.Risk.SurfaceHumidity)
		}
		if want.Risk.Tier != got.Risk.Tier {
			p.errorf("ID %s: tier: expected %q, got %q", id, want.Risk.Tier, got.Risk.Tier)
		}
	}

	switch {
	case (want.Compliance == nil) != (got.Compliance == nil):
		p.errorf("ID %s: compliance presence: expected %t, got %t", id, want.Compliance != nil, got.Compliance != nil)
	case want.Compliance != nil:
		if !floatEq(want.Compliance.MaxAllowedHumidity, got.Compliance.MaxAllowedHumidity) {
			p.errorf("ID %s: max_allowed_humidity: expected %g, got %g", id, want.Compliance.MaxAllowedHumidity, got.Compliance.MaxAllowedHumidity)
		}
		if want.Compliance.Compliant != got.Compliance.Compliant {
			p.errorf("ID %s: compliant: expected %t, got %t", id, want.Compliance.Compliant, got.Compliance.Compliant)
		}
	}

	switch {
	case (want.Fault == nil) != (got.Fault == nil):
		p.errorf("ID %s: fault presence: expected %t, got %t", id, want.Fault != nil, got.Fault != nil)
	case want.Fault != nil && *want.Fault != *got.Fault:
		p.errorf("ID %s: fault: expected %s (%s), got %s (%s)", id, want.Fault.Category, want.Fault.Rule, got.Fault.Category, got.Fault.Rule)
	}

	if len(want.Issues) != len(got.Issues) {
		p.errorf("ID %s: issues: expected %d, got %d", id, len(want.Issues), len(got.Issues))
	}
}

// ── Phase 3: Section Rules ──
// Checks relationships that must hold between the sections of any assessment.

var (
	validTiers = map[domain.RiskTier]bool{
		domain.TierUnproblematic: true,
		domain.TierCritical:      true,
		domain.TierMoldRisk:      true,
		domain.TierCondensation:  true,
	}
	validFaults = map[domain.FaultCategory]bool{
		domain.FaultBuildingAndOccupant: true,
		domain.FaultBuildingSide:        true,
		domain.FaultOccupantSide:        true,
		domain.FaultMixedUnclear:        true,
	}
)

func validateSectionRules(assessed []domain.AssessmentEvent) *phase {
	p := &phase{name: "Phase 3: Section Rules (thresholds)"}
	for i := range assessed {
		checkRecord(p, i, &assessed[i])
	}
	return p
}

func checkRecord(p *phase, i int, e *domain.AssessmentEvent) {
	pf := func(format string, args ...any) {
		p.errorf("record %d (ID %s): "+format, append([]any{i, e.ID}, args...)...)
	}

	if !strings.HasPrefix(e.ID, "msr-") {
		pf("id %q doesn't start with msr-", e.ID)
	}
	if e.ProcessedAt.IsZero() {
		pf("processed_at is zero")
	}

	if e.Risk != nil {
		checkTier(pf, e.Risk)
	}
	if e.Compliance != nil {
		// Measured humidity is compared unclamped.
		if phi, ok := e.Input.Humidity.Float(); ok && e.Compliance.Compliant != (phi <= e.Compliance.MaxAllowedHumidity) {
			pf("compliant=%t inconsistent with humidity %g and limit %g", e.Compliance.Compliant, phi, e.Compliance.MaxAllowedHumidity)
		}
	}

	hasFault := e.Fault != nil
	if hasFault != (e.Risk != nil && e.Compliance != nil) {
		pf("fault present=%t but risk present=%t, compliance present=%t", hasFault, e.Risk != nil, e.Compliance != nil)
	}
	if hasFault && !validFaults[e.Fault.Category] {
		pf("fault category %q not recognized", e.Fault.Category)
	}

	complete := e.Risk != nil && e.Compliance != nil && e.Fault != nil
	if complete != (len(e.Issues) == 0) {
		pf("complete=%t but %d issue(s) recorded", complete, len(e.Issues))
	}
}

func checkTier(pf func(string, ...any), r *domain.RiskAssessment) {
	if !validTiers[r.Tier] {
		pf("tier %q not recognized", r.Tier)
		return
	}
	var want domain.RiskTier
	switch phi := r.SurfaceHumidity; {
	case phi < 65:
		want = domain.TierUnproblematic
	case phi < 70:
		want = domain.TierCritical
	case phi < 100:
		want = domain.TierMoldRisk
	default:
		want = domain.TierCondensation
	}
	if r.Tier != want {
		pf("tier %q inconsistent with surface humidity %g (expected %q)", r.Tier, r.SurfaceHumidity, want)
	}
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}
