package generator

// Config drives the synthetic graph generator.
type Config struct {
	Nodes          int
	ExtraEdges     int
	MinDistance    int
	MaxDistance    int
	ParallelChance float64
	Isolated       int
	Seed           int64
}

// DefaultConfig returns settings producing a mid-sized, fully connected graph.
func DefaultConfig() Config {
	return Config{
		Nodes:          40,
		ExtraEdges:     60,
		MinDistance:    1,
		MaxDistance:    50,
		ParallelChance: 0.1,
		Isolated:       0,
		Seed:           42,
	}
}
