package dataset

import (
	"errors"
	"testing"

	"github.com/vanshika/bataanroute/backend/internal/graph"
)

func TestLoadBataan(t *testing.T) {
	store, err := LoadBataan()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.Len() != 13 {
		t.Fatalf("expected 13 locations, got %d", store.Len())
	}
	if store.Size() != 15 {
		t.Fatalf("expected 15 routes, got %d", store.Size())
	}

	home, ok := store.Node("Home")
	if !ok {
		t.Fatalf("expected Home to be declared")
	}
	if home.Position.X != 490 || home.Position.Y != 400 || home.Color != "blue" {
		t.Fatalf("unexpected Home metadata %+v", home)
	}

	edges := store.EdgesBetween("Pilar", "Bagac")
	if len(edges) != 1 || edges[0].Distance != 26 {
		t.Fatalf("expected Bagac-Pilar route of 26, got %+v", edges)
	}
}

func TestBuildAggregatesDeclarationErrors(t *testing.T) {
	locations := []Location{
		{Name: "Balanga"},
		{Name: "Pilar"},
		{Name: "Balanga"},
	}
	routes := []Route{
		{From: "Balanga", To: "Pilar", Distance: 2},
		{From: "Balanga", To: "Orion", Distance: 11},
		{From: "Pilar", To: "Balanga", Distance: -2},
	}

	store, err := Build(locations, routes)
	if err == nil {
		t.Fatalf("expected aggregated error, got nil")
	}
	if store != nil {
		t.Fatalf("expected no store on failure")
	}

	declErr, ok := err.(*DeclarationError)
	if !ok {
		t.Fatalf("expected DeclarationError type, got %T", err)
	}
	if len(declErr.Errors) != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", len(declErr.Errors), err)
	}
	if !errors.Is(err, graph.ErrDuplicateNode) {
		t.Errorf("expected duplicate node error to be reachable")
	}
	if !errors.Is(err, graph.ErrUnknownNode) {
		t.Errorf("expected unknown node error to be reachable")
	}
	if !errors.Is(err, graph.ErrInvalidWeight) {
		t.Errorf("expected invalid weight error to be reachable")
	}
}

func TestBuildEmpty(t *testing.T) {
	store, err := Build(nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d nodes", store.Len())
	}
}
