// Package status records the outcome of a batch run as a JSON document in
// the data directory, for the surrounding tooling to poll.
package status

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/segmentio/ksuid"
)

// FileName is the status document written after every batch run.
const FileName = "status.json"

// Outcome is the overall result of a batch run.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomePartial Outcome = "partial"
	OutcomeFailure Outcome = "failure"
)

// Report is the status document for one batch run.
type Report struct {
	RunID         string    `json:"run_id"`
	LastUpdate    time.Time `json:"last_update"`
	Outcome       Outcome   `json:"status"`
	Message       string    `json:"message"`
	RecordsIn     int       `json:"records_in"`
	RecordsFailed int       `json:"records_failed"`
	Entities      int       `json:"entities"`
}

// NewReport creates a report stamped with a fresh run id and the current
// UTC time.
func NewReport(outcome Outcome, message string) *Report {
	return &Report{
		RunID:      ksuid.New().String(),
		LastUpdate: time.Now().UTC(),
		Outcome:    outcome,
		Message:    message,
	}
}

// Write saves the report to dir, creating the directory if needed.
func Write(dir string, r *Report) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status report: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write status report: %w", err)
	}
	return nil
}

// Read loads the last report from dir.
func Read(dir string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read status report: %w", err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse status report: %w", err)
	}
	return &r, nil
}
