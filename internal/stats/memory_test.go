package stats

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

func TestStore_SnapshotCounts(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	for _, id := range []string{"S1", "S2", "S3", "S1"} {
		if err := s.AddStudent(ctx, id); err != nil {
			t.Fatalf("AddStudent(%q): %v", id, err)
		}
	}
	for _, id := range []string{"S1", "S1", "S2", "S9"} {
		if err := s.RecordAttendance(ctx, id); err != nil {
			t.Fatalf("RecordAttendance(%q): %v", id, err)
		}
	}

	got, err := s.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	want := Snapshot{TotalStudents: 3, TotalAttendanceRecords: 4, UniqueScannedCount: 3}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestStore_RejectsEmptyID(t *testing.T) {
	s := NewStore()
	if err := s.AddStudent(context.Background(), "  "); !errors.Is(err, ErrEmptyQRID) {
		t.Fatalf("want ErrEmptyQRID, got %v", err)
	}
	if err := s.RecordAttendance(context.Background(), ""); !errors.Is(err, ErrEmptyQRID) {
		t.Fatalf("want ErrEmptyQRID, got %v", err)
	}
}

func TestStore_SnapshotHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStore().Snapshot(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.RecordAttendance(ctx, "S1")
		}()
	}
	wg.Wait()
	snap, _ := s.Snapshot(ctx)
	if snap.TotalAttendanceRecords != 50 || snap.UniqueScannedCount != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestSnapshot_JSONFieldNames(t *testing.T) {
	b, err := json.Marshal(Snapshot{TotalStudents: 1, TotalAttendanceRecords: 2, UniqueScannedCount: 3})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"totalStudents":1,"totalAttendanceRecords":2,"uniqueScannedCount":3}`
	if string(b) != want {
		t.Fatalf("got %s want %s", b, want)
	}
}
