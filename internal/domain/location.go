package domain

// Position is the display coordinate of a location on the map panel.
type Position struct {
	X int
	Y int
}

// Color is an opaque display tag such as "blue".
type Color string

// Node represents a named location. The name is its identity.
type Node struct {
	Name     string
	Position Position
	Color    Color
}

// Edge is an undirected weighted connection between two locations.
type Edge struct {
	// ID is the 0-based declaration index within its graph.
	ID       int
	From     string
	To       string
	Distance int
}

// Connects reports whether the edge joins a and b in either direction.
func (e Edge) Connects(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Other returns the endpoint opposite to name.
func (e Edge) Other(name string) string {
	if e.From == name {
		return e.To
	}
	return e.From
}
