package neat

import (
	"fmt"
)

// Genome is the flat, mutation-friendly encoding of a network.
//
// Node indices follow a fixed layout: 0..NumInputs-1 are the declared inputs,
// NumInputs is the bias sensor, the next NumOutputs indices are the outputs,
// and any larger index referenced by a gene is a hidden node.
type Genome struct {
	NumInputs  int
	NumOutputs int
	Genes      []Gene
}

// NewGenome creates a Genome with the given input/output counts and genes.
// The genes slice is copied.
func NewGenome(numInputs, numOutputs int, genes []Gene) *Genome {
	g := &Genome{
		NumInputs:  numInputs,
		NumOutputs: numOutputs,
		Genes:      make([]Gene, len(genes)),
	}
	copy(g.Genes, genes)
	return g
}

// Validate checks the input/output counts. Gene endpoints are not checked.
func (g *Genome) Validate() error {
	if g.NumInputs < 0 {
		return fmt.Errorf("genome error: num_inputs cannot be negative (got %d)", g.NumInputs)
	}
	if g.NumOutputs < 0 {
		return fmt.Errorf("genome error: num_outputs cannot be negative (got %d)", g.NumOutputs)
	}
	return nil
}

// BiasKey returns the index of the implicit bias sensor.
func (g *Genome) BiasKey() int {
	return g.NumInputs
}

// SensorKeys returns the sensor indices, bias last.
func (g *Genome) SensorKeys() []int {
	keys := make([]int, g.NumInputs+1)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// OutputKeys returns the output indices, which start right after the bias sensor.
func (g *Genome) OutputKeys() []int {
	keys := make([]int, g.NumOutputs)
	for i := range keys {
		keys[i] = g.NumInputs + 1 + i
	}
	return keys
}

// EnabledGenes returns the enabled genes in genome order.
func (g *Genome) EnabledGenes() []Gene {
	enabled := make([]Gene, 0, len(g.Genes))
	for _, gene := range g.Genes {
		if !gene.Enabled {
			continue
		}
		enabled = append(enabled, gene)
	}
	return enabled
}

// String returns a short summary of the Genome.
func (g *Genome) String() string {
	return fmt.Sprintf("Genome(Inputs: %d, Outputs: %d, Genes: %d, Enabled: %d)",
		g.NumInputs, g.NumOutputs, len(g.Genes), len(g.EnabledGenes()))
}
