package nn

import (
	"fmt"

	"github.com/baldhumanity/neat-rnn/neat"
)

// Eval computes the value of every output node for one time step.
//
// inputs supplies one value per sensor, by position. previous holds the
// hidden-node activations of the prior time step; it is consulted only when a
// cycle closes back onto a node that is still being resolved, and a missing
// entry counts as 0. The returned Activations holds every hidden-node value
// computed during this call and can be passed as previous on the next call.
//
// Sensors pass their input through unchanged, output nodes are linear sums of
// their weighted inputs, and hidden nodes apply the network's activation
// function to that sum. Eval never mutates the network and keeps all scratch
// state local to the call, so it is safe to call concurrently.
func (n *Network) Eval(inputs []float64, previous Activations) ([]float64, Activations, error) {
	if len(inputs) != len(n.Sensors) {
		return nil, nil, fmt.Errorf("%w: got %d inputs, network has %d sensors",
			ErrInputLengthMismatch, len(inputs), len(n.Sensors))
	}

	ev := newEvaluation(n, inputs, previous)
	outputs := make([]float64, len(n.Outputs))
	for i, output := range n.Outputs {
		ev.beginOutput()
		outputs[i] = ev.value(output)
	}
	return outputs, ev.activations, nil
}

// evaluation is the call-local state of a single Eval.
type evaluation struct {
	inputs     []float64
	previous   Activations
	activation neat.ActivationType

	sensorIndex map[Node]int
	outputs     map[Node]bool
	incoming    map[Node][]Edge

	// calculating is the set of nodes on the current depth-first path.
	calculating map[Node]bool
	activations Activations
	// recordedBy maps a hidden node to the 1-based output pass that last recorded it.
	// Values recorded by an earlier pass are reused instead of recomputed.
	recordedBy map[Node]int
	pass       int
}

func newEvaluation(n *Network, inputs []float64, previous Activations) *evaluation {
	ev := &evaluation{
		inputs:      inputs,
		previous:    previous,
		activation:  n.Activation,
		sensorIndex: make(map[Node]int, len(n.Sensors)),
		outputs:     make(map[Node]bool, len(n.Outputs)),
		incoming:    make(map[Node][]Edge),
		activations: make(Activations),
		recordedBy:  make(map[Node]int),
	}
	if ev.activation == nil {
		ev.activation = neat.Sigmoid
	}
	for i, sensor := range n.Sensors {
		if _, seen := ev.sensorIndex[sensor]; !seen {
			ev.sensorIndex[sensor] = i
		}
	}
	for _, output := range n.Outputs {
		ev.outputs[output] = true
	}
	for _, edge := range n.Edges {
		ev.incoming[edge.Destination] = append(ev.incoming[edge.Destination], edge)
	}
	return ev
}

// beginOutput starts resolving the next output with an empty path.
func (ev *evaluation) beginOutput() {
	ev.pass++
	ev.calculating = make(map[Node]bool)
}

func (ev *evaluation) value(node Node) float64 {
	if ev.calculating[node] {
		// A cycle closed back on node: use the prior time step.
		return ev.previous[node]
	}

	if i, ok := ev.sensorIndex[node]; ok {
		return ev.inputs[i]
	}

	if pass, ok := ev.recordedBy[node]; ok && pass < ev.pass {
		return ev.activations[node]
	}

	ev.calculating[node] = true
	total := 0.0
	for _, edge := range ev.incoming[node] {
		total += edge.Weight * ev.value(edge.Source)
	}
	delete(ev.calculating, node)

	if ev.outputs[node] {
		return total
	}

	result := ev.activation(total)
	ev.activations[node] = result
	ev.recordedBy[node] = ev.pass
	return result
}
