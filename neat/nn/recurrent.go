package nn

import (
	"errors"
	"fmt"

	"github.com/baldhumanity/neat-rnn/neat"
)

// CreateRecurrentNetwork decodes a genome into a runnable network.
//
// Sensors are nodes 0..NumInputs, the last of which is the bias sensor, and
// outputs are the NumOutputs nodes that follow. Every enabled gene becomes an
// edge with the same endpoints and weight; disabled genes are dropped. Hidden
// nodes exist only as edge endpoints, and no reachability or cycle checks are
// made.
func CreateRecurrentNetwork(g *neat.Genome) (*Network, error) {
	if g == nil {
		return nil, errors.New("cannot create network from nil genome")
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("cannot create network: %w", err)
	}

	sensors := make([]Node, 0, g.NumInputs+1)
	for _, key := range g.SensorKeys() {
		sensors = append(sensors, Node(key))
	}
	outputs := make([]Node, 0, g.NumOutputs)
	for _, key := range g.OutputKeys() {
		outputs = append(outputs, Node(key))
	}

	enabled := g.EnabledGenes()
	edges := make([]Edge, 0, len(enabled))
	for _, gene := range enabled {
		edges = append(edges, NewEdge(Node(gene.Key.InNodeID), Node(gene.Key.OutNodeID), gene.Weight))
	}

	return &Network{Sensors: sensors, Outputs: outputs, Edges: edges}, nil
}

// CreateRecurrentNetworkWithConfig decodes a genome and applies the hidden-node
// activation named in the config. The genome's shape must match the config.
func CreateRecurrentNetworkWithConfig(g *neat.Genome, config *neat.GenomeConfig) (*Network, error) {
	net, err := CreateRecurrentNetwork(g)
	if err != nil {
		return nil, err
	}
	if g.NumInputs != config.NumInputs || g.NumOutputs != config.NumOutputs {
		return nil, fmt.Errorf("genome shape %d->%d does not match config %d->%d",
			g.NumInputs, g.NumOutputs, config.NumInputs, config.NumOutputs)
	}
	actFn, err := neat.GetActivation(config.ActivationDefault)
	if err != nil {
		return nil, fmt.Errorf("failed to get activation function '%s': %w", config.ActivationDefault, err)
	}
	net.Activation = actFn
	return net, nil
}

// RecurrentNetwork carries hidden-node state between successive evaluations
// of a Network, feeding each step's activations back in as the previous step.
// It is not safe for concurrent use; create one per goroutine.
type RecurrentNetwork struct {
	Net *Network
	// AppendBias adds BiasValue as the last input on every Activate call, for
	// networks whose final sensor is a bias node.
	AppendBias bool
	BiasValue  float64

	state Activations
}

// NewRecurrentNetwork wraps net with empty state.
func NewRecurrentNetwork(net *Network) *RecurrentNetwork {
	return &RecurrentNetwork{Net: net, state: make(Activations)}
}

// NewRecurrentNetworkWithBias wraps net and appends bias to every input vector.
func NewRecurrentNetworkWithBias(net *Network, bias float64) *RecurrentNetwork {
	r := NewRecurrentNetwork(net)
	r.AppendBias = true
	r.BiasValue = bias
	return r
}

// Activate runs one time step. On error the stored state is left unchanged.
func (r *RecurrentNetwork) Activate(inputs []float64) ([]float64, error) {
	if r.AppendBias {
		withBias := make([]float64, 0, len(inputs)+1)
		withBias = append(withBias, inputs...)
		inputs = append(withBias, r.BiasValue)
	}
	outputs, activations, err := r.Net.Eval(inputs, r.state)
	if err != nil {
		return nil, err
	}
	r.state = activations
	return outputs, nil
}

// Run activates the network steps times with the same inputs and returns the
// outputs of the last step.
func (r *RecurrentNetwork) Run(inputs []float64, steps int) ([]float64, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps must be positive (got %d)", steps)
	}
	var outputs []float64
	for i := 0; i < steps; i++ {
		var err error
		outputs, err = r.Activate(inputs)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return outputs, nil
}

// Reset clears the recurrent state.
func (r *RecurrentNetwork) Reset() {
	r.state = make(Activations)
}

// State returns a copy of the activations recorded by the last step.
func (r *RecurrentNetwork) State() Activations {
	state := make(Activations, len(r.state))
	for node, value := range r.state {
		state[node] = value
	}
	return state
}
