// Package recorder persists scan history for later analysis.
package recorder

import (
	"time"

	"VortexEdge/internal/model"
)

// ScanRun holds everything persisted for one screening pass.
type ScanRun struct {
	ID           string
	Timestamp    time.Time
	ScannedCount int
	Candidates   []model.FeatureRecord
}

// Recorder persists scan runs. Implementations must tolerate concurrent
// callers.
type Recorder interface {
	RecordScan(run *ScanRun) error
	Close() error
}
