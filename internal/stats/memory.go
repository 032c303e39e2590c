package stats

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

var ErrEmptyQRID = errors.New("empty qr id")

type attendance struct {
	QRID      string
	Timestamp time.Time
}

// Store keeps students and attendance records in memory.
type Store struct {
	mu         sync.RWMutex
	students   map[string]time.Time
	attendance []attendance
}

func NewStore() *Store {
	return &Store{
		students:   make(map[string]time.Time),
		attendance: make([]attendance, 0, 64),
	}
}

// AddStudent registers a student by QR id. Re-adding an id is a no-op.
func (m *Store) AddStudent(ctx context.Context, qrID string) error {
	qrID = strings.TrimSpace(qrID)
	if qrID == "" {
		return ErrEmptyQRID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.students[qrID]; !ok {
		m.students[qrID] = time.Now().UTC()
	}
	return nil
}

// RecordAttendance appends one scan for qrID.
func (m *Store) RecordAttendance(ctx context.Context, qrID string) error {
	qrID = strings.TrimSpace(qrID)
	if qrID == "" {
		return ErrEmptyQRID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attendance = append(m.attendance, attendance{QRID: qrID, Timestamp: time.Now().UTC()})
	return nil
}

func (m *Store) Snapshot(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	scanned := make(map[string]struct{}, len(m.attendance))
	for _, a := range m.attendance {
		scanned[a.QRID] = struct{}{}
	}
	return Snapshot{
		TotalStudents:          len(m.students),
		TotalAttendanceRecords: len(m.attendance),
		UniqueScannedCount:     len(scanned),
	}, nil
}

var _ Source = (*Store)(nil)
