package neat

import (
	"fmt"
)

// ConnectionKey identifies the endpoints of a connection gene by node index.
type ConnectionKey struct {
	InNodeID  int
	OutNodeID int
}

// Gene represents a weighted connection between two node indices in a genome.
// Genes are treated as values; the only transform is Disabled, which returns a copy.
type Gene struct {
	Key     ConnectionKey
	Weight  float64
	Enabled bool
	// Innovation is historical bookkeeping for evolutionary operators.
	// Decoding and evaluation never read it.
	Innovation int
}

// NewGene creates an enabled Gene connecting inNode to outNode.
func NewGene(inNode, outNode int, weight float64, innovation int) Gene {
	return Gene{
		Key:        ConnectionKey{InNodeID: inNode, OutNodeID: outNode},
		Weight:     weight,
		Enabled:    true,
		Innovation: innovation,
	}
}

// Disabled returns a copy of the gene with Enabled set to false.
// This is how a connection superseded by a node split keeps its provenance.
func (g Gene) Disabled() Gene {
	g.Enabled = false
	return g
}

// String returns a string representation of the Gene.
func (g Gene) String() string {
	return fmt.Sprintf("Gene(Key: %d->%d, Weight: %.3f, Enabled: %t, Innovation: %d)",
		g.Key.InNodeID, g.Key.OutNodeID, g.Weight, g.Enabled, g.Innovation)
}
