package runstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndList(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	id, err := s.Append(ctx, Run{
		StartedAt:   time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		Branch:      "binary",
		DatasetPath: "Data_latih.csv",
		Rows:        100,
		ModelPath:   "hoax_model.zip",
		Metrics:     map[string]float64{"accuracy": 0.92, "auc": 0.95},
	})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if id == "" {
		t.Fatal("Append should generate a run id")
	}

	runs, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Branch != "binary" || r.Rows != 100 {
		t.Errorf("Run did not round-trip: %+v", r)
	}
	if r.Metrics["accuracy"] != 0.92 {
		t.Errorf("Metrics did not round-trip: %v", r.Metrics)
	}
}

func TestListOrder(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	older := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	if _, err := s.Append(ctx, Run{StartedAt: older, Branch: "binary", Metrics: map[string]float64{}}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Append(ctx, Run{StartedAt: newer, Branch: "multiclass", Metrics: map[string]float64{}}); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if !runs[0].StartedAt.After(runs[1].StartedAt) {
		t.Errorf("Runs should come back newest first: %v then %v",
			runs[0].StartedAt, runs[1].StartedAt)
	}
}

func TestUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	id1, err := s.Append(ctx, Run{StartedAt: time.Now(), Branch: "binary", Metrics: map[string]float64{}})
	if err != nil {
		t.Fatal(err)
	}
	id2, err := s.Append(ctx, Run{StartedAt: time.Now(), Branch: "binary", Metrics: map[string]float64{}})
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Error("Run ids must be unique")
	}
}
