package recorder

// NoopRecorder is a no-op implementation used when no database is
// configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordScan(_ *ScanRun) error { return nil }
func (n *NoopRecorder) Close() error                { return nil }
