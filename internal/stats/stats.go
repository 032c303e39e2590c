package stats

import "context"

// Snapshot is the /api/stats payload.
type Snapshot struct {
	TotalStudents          int `json:"totalStudents"`
	TotalAttendanceRecords int `json:"totalAttendanceRecords"`
	UniqueScannedCount     int `json:"uniqueScannedCount"`
}

// Source is anything that can produce a Snapshot.
type Source interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}
