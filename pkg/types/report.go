package types

import "fmt"

// VerifyStatus is the outcome of checking one fixture against its golden digest
type VerifyStatus string

const (
	StatusOK       VerifyStatus = "ok"       // bytes match the golden digest
	StatusModified VerifyStatus = "modified" // bytes present but digest differs
	StatusMissing  VerifyStatus = "missing"  // no bytes found at the expected path
)

// Validate checks if the verify status is valid
func (s VerifyStatus) Validate() error {
	switch s {
	case StatusOK, StatusModified, StatusMissing:
		return nil
	default:
		return ErrInvalidStatus
	}
}

// VerifyResult is the per-fixture outcome of an integrity check
type VerifyResult struct {
	Name   string
	Status VerifyStatus

	// Actual hex digest observed; empty when Status is missing
	Actual string
	// Golden digest the fixture is expected to carry
	Want string
}

// VerifyReport aggregates verification outcomes across the corpus
type VerifyReport struct {
	Results []VerifyResult

	// Errors records fixtures that could not be checked at all
	// (I/O failures rather than drift)
	Errors []string
}

// AddError records a fixture that could not be checked
func (r *VerifyReport) AddError(name string, err error) {
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", name, err))
}

// HasErrors returns true if any fixture could not be checked
func (r *VerifyReport) HasErrors() bool {
	return len(r.Errors) > 0
}

// Clean returns true when every fixture was checked and none drifted
func (r *VerifyReport) Clean() bool {
	if r.HasErrors() {
		return false
	}
	for _, res := range r.Results {
		if res.Status != StatusOK {
			return false
		}
	}
	return true
}

// Drifted returns the results whose status is not ok
func (r *VerifyReport) Drifted() []VerifyResult {
	var out []VerifyResult
	for _, res := range r.Results {
		if res.Status != StatusOK {
			out = append(out, res)
		}
	}
	return out
}

// ExportStats summarizes one export run
type ExportStats struct {
	Written int // files materialized this run
	Skipped int // destinations already carrying the golden bytes
}

// Total returns the number of fixtures the export visited
func (s ExportStats) Total() int {
	return s.Written + s.Skipped
}
