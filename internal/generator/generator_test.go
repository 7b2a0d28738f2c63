package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/vanshika/bataanroute/backend/internal/dataset"
)

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	cfg := Config{Nodes: 12, ExtraEdges: 20, MaxDistance: 9, ParallelChance: 0.3, Isolated: 2, Seed: 7}

	first, err := New(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := New(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(first.Routes) != len(second.Routes) {
		t.Fatalf("expected identical route counts, got %d and %d", len(first.Routes), len(second.Routes))
	}
	for i := range first.Routes {
		if first.Routes[i] != second.Routes[i] {
			t.Fatalf("route %d differs: %+v vs %+v", i, first.Routes[i], second.Routes[i])
		}
	}
}

func TestGenerateShape(t *testing.T) {
	cfg := Config{Nodes: 10, ExtraEdges: 5, MaxDistance: 3, Isolated: 3, Seed: 99}
	ds, err := New(cfg).Generate(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(ds.Locations) != 13 {
		t.Fatalf("expected 13 locations, got %d", len(ds.Locations))
	}
	if len(ds.Routes) != 9+5 {
		t.Fatalf("expected 14 routes, got %d", len(ds.Routes))
	}
	if ds.Isolated.Cardinality() != 3 {
		t.Fatalf("expected 3 isolated locations, got %d", ds.Isolated.Cardinality())
	}
	for _, r := range ds.Routes {
		if ds.Isolated.Contains(r.From) || ds.Isolated.Contains(r.To) {
			t.Fatalf("route %+v touches an isolated location", r)
		}
		if r.Distance < 0 || r.Distance > 3 {
			t.Fatalf("route %+v outside distance bounds", r)
		}
	}

	if _, err := dataset.Build(ds.Locations, ds.Routes); err != nil {
		t.Fatalf("expected generated dataset to build, got %v", err)
	}
}

func TestGenerateRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(DefaultConfig()).Generate(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
