package domain

// Path is an ordered walk from a start location to an end location.
// The zero value means no route exists.
type Path struct {
	Nodes    []Node
	Edges    []Edge
	Distance int
}

// Found reports whether the path connects its endpoints.
func (p Path) Found() bool {
	return len(p.Nodes) > 0
}

// Names returns the location names in travel order.
func (p Path) Names() []string {
	names := make([]string, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		names = append(names, n.Name)
	}
	return names
}
