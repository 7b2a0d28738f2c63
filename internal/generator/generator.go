package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vanshika/bataanroute/backend/internal/dataset"
)

// Dataset contains generated declarations ready for dataset.Build.
type Dataset struct {
	Locations []dataset.Location
	Routes    []dataset.Route
	// Isolated lists locations that no route touches.
	Isolated mapset.Set[string]
}

// Generator produces random undirected graphs. Every non-isolated location is
// joined to the previous one, so the non-isolated part is always connected.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	if cfg.Nodes <= 0 {
		cfg.Nodes = DefaultConfig().Nodes
	}
	if cfg.ExtraEdges < 0 {
		cfg.ExtraEdges = 0
	}
	if cfg.MinDistance < 0 {
		cfg.MinDistance = 0
	}
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = DefaultConfig().MaxDistance
	}
	if cfg.MaxDistance < cfg.MinDistance {
		cfg.MaxDistance = cfg.MinDistance
	}
	if cfg.ParallelChance < 0 {
		cfg.ParallelChance = 0
	}
	if cfg.Isolated < 0 {
		cfg.Isolated = 0
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate synthesises locations and routes. It respects context cancellation.
func (g *Generator) Generate(ctx context.Context) (Dataset, error) {
	total := g.cfg.Nodes + g.cfg.Isolated
	ds := Dataset{
		Locations: make([]dataset.Location, 0, total),
		Isolated:  mapset.NewThreadUnsafeSet[string](),
	}

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		name := fmt.Sprintf("LOC-%04d", i+1)
		ds.Locations = append(ds.Locations, dataset.Location{
			Name:  name,
			X:     g.rand.Intn(600),
			Y:     g.rand.Intn(440),
			Color: "blue",
		})
		if i >= g.cfg.Nodes {
			ds.Isolated.Add(name)
		}
	}

	for i := 1; i < g.cfg.Nodes; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		prev := ds.Locations[g.rand.Intn(i)].Name
		ds.Routes = append(ds.Routes, g.route(prev, ds.Locations[i].Name))
	}

	for i := 0; i < g.cfg.ExtraEdges; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, err
		}
		if len(ds.Routes) > 0 && g.rand.Float64() < g.cfg.ParallelChance {
			existing := ds.Routes[g.rand.Intn(len(ds.Routes))]
			ds.Routes = append(ds.Routes, g.route(existing.To, existing.From))
			continue
		}
		from := ds.Locations[g.rand.Intn(g.cfg.Nodes)].Name
		to := ds.Locations[g.rand.Intn(g.cfg.Nodes)].Name
		ds.Routes = append(ds.Routes, g.route(from, to))
	}

	return ds, nil
}

func (g *Generator) route(from, to string) dataset.Route {
	return dataset.Route{
		From:     from,
		To:       to,
		Distance: g.cfg.MinDistance + g.rand.Intn(g.cfg.MaxDistance-g.cfg.MinDistance+1),
	}
}
