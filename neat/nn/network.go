package nn

import (
	"errors"
	"fmt"

	"github.com/baldhumanity/neat-rnn/neat"
)

var (
	// ErrInputLengthMismatch is returned by Eval when the input vector does not
	// have exactly one value per sensor.
	ErrInputLengthMismatch = errors.New("input length mismatch")
	// ErrCycle is returned by EvalOrder when the network contains a recurrent connection.
	ErrCycle = errors.New("network contains a cycle")
)

// Node identifies a neuron. Identity is the only attribute a node has.
type Node int

// Edge is a directed, weighted connection from Source to Destination.
type Edge struct {
	Source      Node
	Destination Node
	Weight      float64
}

// NewEdge creates an Edge.
func NewEdge(source, destination Node, weight float64) Edge {
	return Edge{Source: source, Destination: destination, Weight: weight}
}

// String returns a string representation of the Edge.
func (e Edge) String() string {
	return fmt.Sprintf("Edge(%d->%d, Weight: %.3f)", e.Source, e.Destination, e.Weight)
}

// Activations maps hidden nodes to their activation values.
type Activations map[Node]float64

// Network is the phenotype: sensors, outputs and the edges between them.
// Any node that is neither a sensor nor an output is a hidden node.
//
// The position of a sensor in Sensors is the position of its value in the
// input vector; the position of an output in Outputs is the position of its
// value in the result. No validation is performed: a node listed as both a
// sensor and an output, or an edge endpoint that appears nowhere else, is
// accepted and evaluated by the normal precedence rules.
type Network struct {
	Sensors []Node
	Outputs []Node
	Edges   []Edge
	// Activation squashes hidden nodes. Nil means neat.Sigmoid.
	Activation neat.ActivationType
}

// NewNetwork creates a Network. The slices are copied.
func NewNetwork(sensors, outputs []Node, edges []Edge) *Network {
	return &Network{
		Sensors: append([]Node(nil), sensors...),
		Outputs: append([]Node(nil), outputs...),
		Edges:   append([]Edge(nil), edges...),
	}
}

// String returns a short summary of the Network.
func (n *Network) String() string {
	return fmt.Sprintf("Network(Sensors: %d, Outputs: %d, Edges: %d)", len(n.Sensors), len(n.Outputs), len(n.Edges))
}

// Builder hands out unique nodes for ad hoc network construction.
// Nodes are numbered sequentially from zero.
type Builder struct {
	next Node
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Node returns a fresh node.
func (b *Builder) Node() Node {
	node := b.next
	b.next++
	return node
}

// Nodes returns count fresh nodes.
func (b *Builder) Nodes(count int) []Node {
	nodes := make([]Node, count)
	for i := range nodes {
		nodes[i] = b.Node()
	}
	return nodes
}

// Build creates a Network from nodes previously handed out by the Builder.
func (b *Builder) Build(sensors, outputs []Node, edges []Edge) *Network {
	return NewNetwork(sensors, outputs, edges)
}
