// Package pathfinder computes shortest routes over an undirected location graph.
package pathfinder

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/vanshika/bataanroute/backend/internal/domain"
	"github.com/vanshika/bataanroute/backend/internal/graph"
)

var (
	// ErrDistanceOverflow indicates accumulated distances exceed the int range.
	ErrDistanceOverflow = errors.New("route distance overflows")
	// ErrInconsistentPath indicates the predecessor walk produced a hop with no declared route.
	ErrInconsistentPath = errors.New("inconsistent path")
)

// Graph is the read-only view of a location graph required by ShortestPath.
type Graph interface {
	Node(name string) (domain.Node, bool)
	Rank(name string) (int, bool)
	Neighbors(name string) iter.Seq2[domain.Node, domain.Edge]
	EdgesBetween(a, b string) []domain.Edge
	Len() int
}

// ShortestPath runs Dijkstra's algorithm from start and stops as soon as end
// is settled. Unknown names fail with graph.ErrUnknownNode. An unreachable end
// yields the zero Path and a nil error.
func ShortestPath(g Graph, start, end string) (domain.Path, error) {
	startNode, ok := g.Node(start)
	if !ok {
		return domain.Path{}, fmt.Errorf("start %w: %q", graph.ErrUnknownNode, start)
	}
	if _, ok := g.Node(end); !ok {
		return domain.Path{}, fmt.Errorf("end %w: %q", graph.ErrUnknownNode, end)
	}
	if start == end {
		return domain.Path{Nodes: []domain.Node{startNode}}, nil
	}

	dist := map[string]int{start: 0}
	prev := make(map[string]string)
	settled := mapset.NewThreadUnsafeSet[string]()
	queue := newFrontier(g.Len())

	rank, _ := g.Rank(start)
	if err := queue.push(start, 0, rank); err != nil {
		return domain.Path{}, err
	}

	for {
		current, ok := queue.pop()
		if !ok {
			break
		}
		if settled.Contains(current.name) || current.distance != dist[current.name] {
			continue
		}
		settled.Add(current.name)
		if current.name == end {
			break
		}

		for neighbor, edge := range g.Neighbors(current.name) {
			if settled.Contains(neighbor.Name) {
				continue
			}
			if edge.Distance > math.MaxInt-current.distance {
				return domain.Path{}, ErrDistanceOverflow
			}
			candidate := current.distance + edge.Distance
			if known, seen := dist[neighbor.Name]; seen && candidate >= known {
				continue
			}
			dist[neighbor.Name] = candidate
			prev[neighbor.Name] = current.name

			rank, _ := g.Rank(neighbor.Name)
			if err := queue.push(neighbor.Name, candidate, rank); err != nil {
				return domain.Path{}, err
			}
		}
	}

	if _, reached := prev[end]; !reached {
		return domain.Path{}, nil
	}
	return reconstruct(g, start, end, prev)
}

func reconstruct(g Graph, start, end string, prev map[string]string) (domain.Path, error) {
	names := []string{end}
	for current := end; current != start; {
		p, ok := prev[current]
		if !ok || len(names) > g.Len() {
			return domain.Path{}, fmt.Errorf("%w: predecessor chain broken at %q", ErrInconsistentPath, current)
		}
		names = append(names, p)
		current = p
	}
	slices.Reverse(names)

	path := domain.Path{
		Nodes: make([]domain.Node, 0, len(names)),
		Edges: make([]domain.Edge, 0, len(names)-1),
	}
	for _, name := range names {
		node, _ := g.Node(name)
		path.Nodes = append(path.Nodes, node)
	}
	for i := 0; i+1 < len(names); i++ {
		edge, err := connectingEdge(g, names[i], names[i+1])
		if err != nil {
			return domain.Path{}, err
		}
		path.Edges = append(path.Edges, edge)
		path.Distance += edge.Distance
	}
	return path, nil
}

// connectingEdge returns the lightest route joining a and b, preferring the
// earliest declared among equals. That is the route relaxation used.
func connectingEdge(g Graph, a, b string) (domain.Edge, error) {
	candidates := g.EdgesBetween(a, b)
	if len(candidates) == 0 {
		return domain.Edge{}, fmt.Errorf("%w: no route joins %q and %q", ErrInconsistentPath, a, b)
	}
	best := candidates[0]
	for _, edge := range candidates[1:] {
		if edge.Distance < best.Distance {
			best = edge
		}
	}
	return best, nil
}
