// ABOUTME: Tests for the local BadgerDB cache.
// ABOUTME: Verifies overwrite semantics and exact snapshot rollback.
package storage

import (
	"testing"

	"github.com/harperreed/stride/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPutAndListReadings(t *testing.T) {
	store := setupTestStore(t)

	steps := models.NewReading("alice", models.MetricSteps, 8000, 10000).WithDate("2026-08-31")
	exercise := models.NewReading("alice", models.MetricExercise, 45, 30).WithDate("2026-08-31")
	otherDay := models.NewReading("alice", models.MetricSteps, 5000, 10000).WithDate("2026-08-30")

	for _, r := range []*models.MetricReading{steps, exercise, otherDay} {
		if err := store.PutReading(r); err != nil {
			t.Fatalf("PutReading failed: %v", err)
		}
	}

	got, err := store.ReadingsForDay("alice", "2026-08-31")
	if err != nil {
		t.Fatalf("ReadingsForDay failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d readings, want 2", len(got))
	}
}

func TestPutReadingOverwrites(t *testing.T) {
	store := setupTestStore(t)

	first := models.NewReading("alice", models.MetricSteps, 5000, 10000).WithDate("2026-08-31")
	second := models.NewReading("alice", models.MetricSteps, 9000, 10000).WithDate("2026-08-31")

	if err := store.PutReading(first); err != nil {
		t.Fatalf("PutReading failed: %v", err)
	}
	if err := store.PutReading(second); err != nil {
		t.Fatalf("PutReading failed: %v", err)
	}

	got, err := store.ReadingsForDay("alice", "2026-08-31")
	if err != nil {
		t.Fatalf("ReadingsForDay failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d readings, want 1 (later write overwrites)", len(got))
	}
	if got[0].Value != 9000 {
		t.Errorf("Value = %g, want 9000", got[0].Value)
	}
}

func TestDailyTotalNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.DailyTotal("alice", "2026-08-31")
	if err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestPutAndGetDailyTotal(t *testing.T) {
	store := setupTestStore(t)

	total := models.DailyTotal{UserID: "alice", Date: "2026-08-31", TotalPoints: 184, MetricsCompleted: 1}
	if err := store.PutDailyTotal(total); err != nil {
		t.Fatalf("PutDailyTotal failed: %v", err)
	}

	got, err := store.DailyTotal("alice", "2026-08-31")
	if err != nil {
		t.Fatalf("DailyTotal failed: %v", err)
	}
	if *got != total {
		t.Errorf("got %+v, want %+v", *got, total)
	}
}

func TestSnapshotRestore(t *testing.T) {
	store := setupTestStore(t)

	original := models.NewReading("alice", models.MetricSteps, 5000, 10000).WithDate("2026-08-31")
	if err := store.PutReading(original); err != nil {
		t.Fatalf("PutReading failed: %v", err)
	}
	if err := store.PutDailyTotal(models.DailyTotal{UserID: "alice", Date: "2026-08-31", TotalPoints: 50}); err != nil {
		t.Fatalf("PutDailyTotal failed: %v", err)
	}

	snapshot, err := store.SnapshotDay("alice", "2026-08-31")
	if err != nil {
		t.Fatalf("SnapshotDay failed: %v", err)
	}

	// Mutate: overwrite the reading, add a new one, bump the total
	updated := models.NewReading("alice", models.MetricSteps, 9000, 10000).WithDate("2026-08-31")
	extra := models.NewReading("alice", models.MetricExercise, 45, 30).WithDate("2026-08-31")
	_ = store.PutReading(updated)
	_ = store.PutReading(extra)
	_ = store.PutDailyTotal(models.DailyTotal{UserID: "alice", Date: "2026-08-31", TotalPoints: 200})

	if err := store.RestoreDay(snapshot); err != nil {
		t.Fatalf("RestoreDay failed: %v", err)
	}

	// The pre-update state must be restored exactly
	readings, err := store.ReadingsForDay("alice", "2026-08-31")
	if err != nil {
		t.Fatalf("ReadingsForDay failed: %v", err)
	}
	if len(readings) != 1 {
		t.Fatalf("got %d readings after restore, want 1", len(readings))
	}
	if readings[0].Value != 5000 {
		t.Errorf("Value = %g after restore, want 5000", readings[0].Value)
	}

	total, err := store.DailyTotal("alice", "2026-08-31")
	if err != nil {
		t.Fatalf("DailyTotal failed: %v", err)
	}
	if total.TotalPoints != 50 {
		t.Errorf("TotalPoints = %d after restore, want 50", total.TotalPoints)
	}
}

func TestSnapshotRestoreEmptyDay(t *testing.T) {
	store := setupTestStore(t)

	snapshot, err := store.SnapshotDay("alice", "2026-08-31")
	if err != nil {
		t.Fatalf("SnapshotDay failed: %v", err)
	}

	reading := models.NewReading("alice", models.MetricSteps, 8000, 10000).WithDate("2026-08-31")
	_ = store.PutReading(reading)
	_ = store.PutDailyTotal(models.DailyTotal{UserID: "alice", Date: "2026-08-31", TotalPoints: 80})

	if err := store.RestoreDay(snapshot); err != nil {
		t.Fatalf("RestoreDay failed: %v", err)
	}

	readings, err := store.ReadingsForDay("alice", "2026-08-31")
	if err != nil {
		t.Fatalf("ReadingsForDay failed: %v", err)
	}
	if len(readings) != 0 {
		t.Errorf("got %d readings after restore, want 0", len(readings))
	}
	if _, err := store.DailyTotal("alice", "2026-08-31"); err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound after restore", err)
	}
}

func TestReadingsAreScopedByUser(t *testing.T) {
	store := setupTestStore(t)

	_ = store.PutReading(models.NewReading("alice", models.MetricSteps, 8000, 10000).WithDate("2026-08-31"))
	_ = store.PutReading(models.NewReading("bob", models.MetricSteps, 4000, 10000).WithDate("2026-08-31"))

	got, err := store.ReadingsForDay("alice", "2026-08-31")
	if err != nil {
		t.Fatalf("ReadingsForDay failed: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "alice" {
		t.Errorf("got %d readings for alice, want exactly her 1", len(got))
	}
}
