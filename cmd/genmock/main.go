// Command genmock reads a room measurement CSV export and generates the JSON
// fixtures used by the pipeline tests and cmd/validate. It runs the real
// domain evaluation so the assessed fixture matches pipeline output.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -csv data/mock/room_measurements.csv \
//	  -raw-out data/mock/measurements.json \
//	  -assessed-out data/mock/assessments.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/couchcryptid/mold-risk-etl/internal/domain"
	"github.com/jonboulle/clockwork"
)

// Fallback message timestamp for rows without a recorded_at column value.
var baseDate = time.Date(2025, time.January, 14, 0, 0, 0, 0, time.UTC)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	csvPath := flag.String("csv", "data/mock/room_measurements.csv", "room measurement CSV export")
	rawOut := flag.String("raw-out", "data/mock/measurements.json", "output path for raw measurement JSON fixture")
	assessedOut := flag.String("assessed-out", "data/mock/assessments.json", "output path for assessed JSON fixture")
	flag.Parse()

	if *csvPath == "" || *rawOut == "" || *assessedOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -csv, -raw-out, -assessed-out")
	}

	// Fixed clock for reproducible processed_at timestamps.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2025, time.January, 17, 6, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	records, assessed, err := processCSV(*csvPath)
	if err != nil {
		return fmt.Errorf("processing %s: %w", *csvPath, err)
	}
	log.Printf("total: %d records", len(records))

	if err := writeJSON(*rawOut, records); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s", *rawOut)

	if err := writeJSON(*assessedOut, assessed); err != nil {
		return fmt.Errorf("writing assessed fixture: %w", err)
	}
	log.Printf("wrote assessed fixture: %s", *assessedOut)

	printStats(assessed)
	return nil
}

func processCSV(path string) ([]domain.RawMeasurement, []domain.AssessmentEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[h] = i
	}

	records := make([]domain.RawMeasurement, 0, len(rows)-1)
	assessed := make([]domain.AssessmentEvent, 0, len(rows)-1)

	for _, row := range rows[1:] {
		rec := domain.RawMeasurement{
			RoomTemp:    domain.Reading(get(row, colIdx, "room_temp")),
			Humidity:    domain.Reading(get(row, colIdx, "humidity")),
			SurfaceTemp: domain.Reading(get(row, colIdx, "surface_temp")),
			OutdoorTemp: domain.Reading(get(row, colIdx, "outdoor_temp")),
			SensorID:    get(row, colIdx, "sensor_id"),
			RecordedAt:  get(row, colIdx, "recorded_at"),
		}
		records = append(records, rec)

		// Round-trip through the wire format the pipeline consumes.
		value, err := json.Marshal(rec)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal record: %w", err)
		}
		rawEvent := domain.RawEvent{Value: value, Timestamp: baseDate}

		parsed, err := domain.ParseRawEvent(rawEvent)
		if err != nil {
			return nil, nil, err
		}
		assessed = append(assessed, domain.NewAssessmentEvent(rawEvent, parsed, domain.Evaluate(parsed)))
	}

	return records, assessed, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// statsResult holds aggregated counts for printStats reporting.
type statsResult struct {
	tiers      map[string]int
	faults     map[string]int
	compliance map[bool]int
	withIssues int
	complete   int
}

func collectStats(events []domain.AssessmentEvent) statsResult {
	s := statsResult{
		tiers:      map[string]int{},
		faults:     map[string]int{},
		compliance: map[bool]int{},
	}
	for i := range events {
		e := &events[i]
		if e.Risk != nil {
			s.tiers[string(e.Risk.Tier)]++
		}
		if e.Compliance != nil {
			s.compliance[e.Compliance.Compliant]++
		}
		if e.Fault != nil {
			s.faults[string(e.Fault.Category)]++
		}
		if len(e.Issues) > 0 {
			s.withIssues++
		} else {
			s.complete++
		}
	}
	return s
}

func printStats(events []domain.AssessmentEvent) {
	stats := collectStats(events)

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Total: %d (complete=%d, with issues=%d)\n", len(events), stats.complete, stats.withIssues)
	fmt.Printf("By tier: unproblematic=%d, critical=%d, mold_risk=%d, condensation=%d\n",
		stats.tiers[string(domain.TierUnproblematic)], stats.tiers[string(domain.TierCritical)],
		stats.tiers[string(domain.TierMoldRisk)], stats.tiers[string(domain.TierCondensation)])
	fmt.Printf("Compliance: compliant=%d, exceeded=%d\n", stats.compliance[true], stats.compliance[false])
	printCounts("By fault", stats.faults)
	printSensorBreakdown(events)
}

func printCounts(label string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("%s:", label)
	for _, k := range keys {
		fmt.Printf(" %s=%d", k, counts[k])
	}
	fmt.Println()
}

// printSensorBreakdown lists the worst tier reached per sensor.
func printSensorBreakdown(events []domain.AssessmentEvent) {
	rank := map[domain.RiskTier]int{
		domain.TierUnproblematic: 1,
		domain.TierCritical:      2,
		domain.TierMoldRisk:      3,
		domain.TierCondensation:  4,
	}
	worst := map[string]domain.RiskTier{}
	for i := range events {
		e := &events[i]
		if e.Risk == nil {
			continue
		}
		if rank[e.Risk.Tier] > rank[worst[e.SensorID]] {
			worst[e.SensorID] = e.Risk.Tier
		}
	}
	sensors := make([]string, 0, len(worst))
	for s := range worst {
		sensors = append(sensors, s)
	}
	sort.Strings(sensors)

	fmt.Println("\nWorst tier per sensor:")
	for _, s := range sensors {
		fmt.Printf("  %s: %s\n", s, worst[s])
	}
}
