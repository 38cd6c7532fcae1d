package nn

import (
	"errors"
	"fmt"
	"sort"
)

// EvalOrder returns the non-sensor nodes in a deterministic topological order.
// It returns ErrCycle if any recurrent connection exists among them.
// Eval does not need this order; it is useful for inspecting a network.
func (n *Network) EvalOrder() ([]Node, error) {
	sensors := make(map[Node]bool, len(n.Sensors))
	for _, s := range n.Sensors {
		sensors[s] = true
	}

	// Gather every node that is computed rather than read from the inputs.
	nodeKeys := make(map[Node]bool)
	for _, o := range n.Outputs {
		if !sensors[o] {
			nodeKeys[o] = true
		}
	}
	for _, e := range n.Edges {
		if !sensors[e.Source] {
			nodeKeys[e.Source] = true
		}
		if !sensors[e.Destination] {
			nodeKeys[e.Destination] = true
		}
	}

	// Topological sort of nodes (Kahn's algorithm). Edges touching a sensor are
	// ignored: sensor values are known before anything else is computed.
	inDegree := make(map[Node]int, len(nodeKeys))
	graph := make(map[Node][]Node, len(nodeKeys))
	for _, e := range n.Edges {
		if sensors[e.Source] || sensors[e.Destination] {
			continue
		}
		graph[e.Source] = append(graph[e.Source], e.Destination)
		inDegree[e.Destination]++
	}

	queue := []Node{}
	for nk := range nodeKeys {
		if inDegree[nk] == 0 {
			queue = append(queue, nk)
		}
	}
	sortNodes(queue)

	evalOrder := make([]Node, 0, len(nodeKeys))
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		evalOrder = append(evalOrder, u)

		for _, v := range graph[u] {
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
			}
		}
		sortNodes(queue) // Keep queue sorted for determinism
	}

	if len(evalOrder) != len(nodeKeys) {
		return nil, fmt.Errorf("%w: ordered %d of %d nodes", ErrCycle, len(evalOrder), len(nodeKeys))
	}
	return evalOrder, nil
}

// IsRecurrent reports whether the network contains a cycle, self loops included.
func (n *Network) IsRecurrent() bool {
	_, err := n.EvalOrder()
	return errors.Is(err, ErrCycle)
}

// HiddenNodes returns the nodes that are neither sensors nor outputs, sorted.
func (n *Network) HiddenNodes() []Node {
	declared := make(map[Node]bool, len(n.Sensors)+len(n.Outputs))
	for _, s := range n.Sensors {
		declared[s] = true
	}
	for _, o := range n.Outputs {
		declared[o] = true
	}
	seen := make(map[Node]bool)
	hidden := []Node{}
	for _, e := range n.Edges {
		for _, nk := range []Node{e.Source, e.Destination} {
			if declared[nk] || seen[nk] {
				continue
			}
			seen[nk] = true
			hidden = append(hidden, nk)
		}
	}
	sortNodes(hidden)
	return hidden
}

func sortNodes(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
}
