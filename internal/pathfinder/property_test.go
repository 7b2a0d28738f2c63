package pathfinder

import (
	"context"
	"errors"
	"testing"

	"github.com/RyanCarrier/dijkstra"

	"github.com/vanshika/bataanroute/backend/internal/dataset"
	"github.com/vanshika/bataanroute/backend/internal/domain"
	"github.com/vanshika/bataanroute/backend/internal/generator"
)

// referenceGraph mirrors a generated dataset into an independent Dijkstra
// implementation. Parallel routes collapse to their lightest distance there.
func referenceGraph(t *testing.T, ds generator.Dataset) (*dijkstra.Graph, map[string]int) {
	t.Helper()

	ref := dijkstra.NewGraph()
	index := make(map[string]int, len(ds.Locations))
	for i, loc := range ds.Locations {
		index[loc.Name] = i
		ref.AddVertex(i)
	}

	lightest := make(map[[2]int]int64)
	for _, r := range ds.Routes {
		a, b := index[r.From], index[r.To]
		if a == b {
			continue
		}
		for _, key := range [][2]int{{a, b}, {b, a}} {
			if w, ok := lightest[key]; !ok || int64(r.Distance) < w {
				lightest[key] = int64(r.Distance)
			}
		}
	}
	for key, w := range lightest {
		if err := ref.AddArc(key[0], key[1], w); err != nil {
			t.Fatalf("reference arc %v: %v", key, err)
		}
	}
	return ref, index
}

func TestShortestPath_MatchesReferenceOnGeneratedGraphs(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 5, 8} {
		cfg := generator.Config{
			Nodes:          25,
			ExtraEdges:     40,
			MinDistance:    1,
			MaxDistance:    30,
			ParallelChance: 0.2,
			Isolated:       2,
			Seed:           seed,
		}
		ds, err := generator.New(cfg).Generate(context.Background())
		if err != nil {
			t.Fatalf("seed %d: generate: %v", seed, err)
		}
		store, err := dataset.Build(ds.Locations, ds.Routes)
		if err != nil {
			t.Fatalf("seed %d: build: %v", seed, err)
		}
		ref, index := referenceGraph(t, ds)

		for _, from := range ds.Locations {
			for _, to := range ds.Locations {
				if from.Name == to.Name {
					continue
				}
				path, err := ShortestPath(store, from.Name, to.Name)
				if err != nil {
					t.Fatalf("seed %d: %s -> %s: %v", seed, from.Name, to.Name, err)
				}

				best, refErr := ref.Shortest(index[from.Name], index[to.Name])
				if errors.Is(refErr, dijkstra.ErrNoPath) {
					if path.Found() {
						t.Fatalf("seed %d: %s -> %s: expected no route, got %v", seed, from.Name, to.Name, path.Names())
					}
					continue
				}
				if refErr != nil {
					t.Fatalf("seed %d: reference %s -> %s: %v", seed, from.Name, to.Name, refErr)
				}
				if int64(path.Distance) != best.Distance {
					t.Fatalf("seed %d: %s -> %s: distance %d, reference %d", seed, from.Name, to.Name, path.Distance, best.Distance)
				}
				assertWellFormed(t, path.Names(), path.Edges, path.Distance)

				if ds.Isolated.Contains(from.Name) || ds.Isolated.Contains(to.Name) {
					t.Fatalf("seed %d: route found to isolated location %s -> %s", seed, from.Name, to.Name)
				}
			}
		}
	}
}

func assertWellFormed(t *testing.T, names []string, edges []domain.Edge, distance int) {
	t.Helper()
	if len(edges) != len(names)-1 {
		t.Fatalf("expected %d edges for %v, got %d", len(names)-1, names, len(edges))
	}
	sum := 0
	for i, edge := range edges {
		if !edge.Connects(names[i], names[i+1]) {
			t.Fatalf("edge %+v does not join %s and %s", edge, names[i], names[i+1])
		}
		sum += edge.Distance
	}
	if sum != distance {
		t.Fatalf("edge distances sum to %d, path reports %d", sum, distance)
	}
}
