package provision

import (
	"encoding/json"
	"os"
	"time"

	"nvim-bootstrap/internal/logger"
)

// StepResult records the outcome of one attempted provisioning stage.
type StepResult struct {
	Name    string `json:"name"`
	Skipped bool   `json:"skipped"`         // Target was already in place, stage did nothing
	Error   string `json:"error,omitempty"` // Non-empty iff the stage aborted the run
}

// Report is the JSON document written after every run — successful or
// aborted — so a partial run can be inspected alongside the log file.
type Report struct {
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Success    bool         `json:"success"`
	Steps      []StepResult `json:"steps"`
}

// WriteReport writes the run report to path as pretty-printed JSON.
// Best-effort: a report that cannot be written is logged and ignored, since
// the provisioning outcome itself is already decided by this point.
func WriteReport(log *logger.Logger, path string, rep Report) {
	// Marshal the report into indented JSON bytes
	raw, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Warn("Failed to marshal run report: %v", err)
		return
	}

	// Write the JSON bytes with mode 0644 (read/write owner, read others)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		log.Warn("Failed to write run report %s: %v", path, err)
	}
}
