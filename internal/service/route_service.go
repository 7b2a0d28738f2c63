package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanshika/bataanroute/backend/internal/domain"
	"github.com/vanshika/bataanroute/backend/internal/pathfinder"
)

// ErrMissingLocation indicates the caller did not supply both route endpoints.
var ErrMissingLocation = errors.New("start and end locations are required")

// Graph is the read contract required by the route service.
type Graph interface {
	pathfinder.Graph
	Nodes() []domain.Node
	Edges() []domain.Edge
	Size() int
}

// RouteService answers route queries over an immutable location graph.
type RouteService struct {
	graph Graph
}

// RouteResult is the outcome of a route query. A zero Path means no route.
type RouteResult struct {
	Start string
	End   string
	Path  domain.Path
}

// Summary describes the loaded graph.
type Summary struct {
	Locations int
	Routes    int
}

// NewRouteService constructs a RouteService over a fully built graph.
func NewRouteService(graph Graph) *RouteService {
	return &RouteService{graph: graph}
}

// FindRoute computes the shortest route between two named locations.
func (s *RouteService) FindRoute(ctx context.Context, start, end string) (RouteResult, error) {
	start = sanitizeString(start)
	end = sanitizeString(end)
	if start == "" || end == "" {
		return RouteResult{}, ErrMissingLocation
	}
	if err := ctx.Err(); err != nil {
		return RouteResult{}, err
	}

	path, err := pathfinder.ShortestPath(s.graph, start, end)
	if err != nil {
		return RouteResult{}, fmt.Errorf("find route %s to %s: %w", start, end, err)
	}
	return RouteResult{Start: start, End: end, Path: path}, nil
}

// Locations returns every location in declaration order.
func (s *RouteService) Locations(context.Context) []domain.Node {
	return s.graph.Nodes()
}

// Routes returns every declared route.
func (s *RouteService) Routes(context.Context) []domain.Edge {
	return s.graph.Edges()
}

// Summary reports the size of the loaded graph.
func (s *RouteService) Summary(context.Context) Summary {
	return Summary{
		Locations: s.graph.Len(),
		Routes:    s.graph.Size(),
	}
}

// Found reports whether a route exists.
func (r RouteResult) Found() bool {
	return r.Path.Found()
}

// Display renders the route as an arrow-joined list of names.
func (r RouteResult) Display() string {
	return joinRoute(r.Path.Names())
}

// Message is the user-facing line describing the result.
func (r RouteResult) Message() string {
	if !r.Found() {
		return fmt.Sprintf("No route found between %s and %s", r.Start, r.End)
	}
	return "Shortest Route: " + r.Display()
}
