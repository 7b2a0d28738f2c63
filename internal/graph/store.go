package graph

import (
	"fmt"
	"iter"
	"sync"

	"github.com/vanshika/bataanroute/backend/internal/domain"
)

// Store holds named locations and the undirected routes between them.
// It is populated once at startup and only read afterwards; the lock keeps
// concurrent readers safe should a late writer appear.
type Store struct {
	mu        sync.RWMutex
	nodes     map[string]domain.Node
	ranks     map[string]int
	order     []string
	edges     []domain.Edge
	adjacency map[string][]int
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		nodes:     make(map[string]domain.Node),
		ranks:     make(map[string]int),
		adjacency: make(map[string][]int),
	}
}

// AddNode registers a location under its name.
func (s *Store) AddNode(node domain.Node) error {
	if node.Name == "" {
		return ErrInvalidNode
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.nodes[node.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, node.Name)
	}
	s.nodes[node.Name] = node
	s.ranks[node.Name] = len(s.order)
	s.order = append(s.order, node.Name)
	return nil
}

// AddEdge appends a route between two existing locations. Parallel routes are kept.
func (s *Store) AddEdge(from, to string, distance int) (domain.Edge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.nodes[from]; !ok {
		return domain.Edge{}, fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	if _, ok := s.nodes[to]; !ok {
		return domain.Edge{}, fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}
	if distance < 0 {
		return domain.Edge{}, fmt.Errorf("%w: %d between %q and %q", ErrInvalidWeight, distance, from, to)
	}

	edge := domain.Edge{
		ID:       len(s.edges),
		From:     from,
		To:       to,
		Distance: distance,
	}
	s.edges = append(s.edges, edge)
	s.adjacency[from] = append(s.adjacency[from], edge.ID)
	if to != from {
		s.adjacency[to] = append(s.adjacency[to], edge.ID)
	}
	return edge, nil
}

// Node looks up a location by name.
func (s *Store) Node(name string) (domain.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.nodes[name]
	return n, ok
}

// Rank returns the declaration index of a location.
func (s *Store) Rank(name string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.ranks[name]
	return r, ok
}

// Neighbors yields every location adjacent to name together with the route
// reaching it, in route declaration order. The sequence can be ranged over
// repeatedly.
func (s *Store) Neighbors(name string) iter.Seq2[domain.Node, domain.Edge] {
	return func(yield func(domain.Node, domain.Edge) bool) {
		s.mu.RLock()
		ids := s.adjacency[name]
		s.mu.RUnlock()

		for _, id := range ids {
			s.mu.RLock()
			edge := s.edges[id]
			other := s.nodes[edge.Other(name)]
			s.mu.RUnlock()

			if !yield(other, edge) {
				return
			}
		}
	}
}

// EdgesBetween returns every route joining a and b, in declaration order.
func (s *Store) EdgesBetween(a, b string) []domain.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.Edge
	for _, id := range s.adjacency[a] {
		if edge := s.edges[id]; edge.Connects(a, b) {
			result = append(result, edge)
		}
	}
	return result
}

// Nodes returns a snapshot of all locations in declaration order.
func (s *Store) Nodes() []domain.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]domain.Node, 0, len(s.order))
	for _, name := range s.order {
		nodes = append(nodes, s.nodes[name])
	}
	return nodes
}

// Edges returns a snapshot of all routes in declaration order.
func (s *Store) Edges() []domain.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Edge(nil), s.edges...)
}

// Len returns the number of locations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Size returns the number of routes.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}
