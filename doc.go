// Package neat provides the phenotype side of NeuroEvolution of Augmenting Topologies (NEAT):
// decoding a genome of connection genes into a network and evaluating that network,
// cycles included, as a recurrent neural network.
//
// Networks may contain recurrent connections. When evaluation walks back onto a node
// that is still being computed, the node's activation from the previous time step is
// used instead, so evaluation always terminates. Each call returns the hidden-node
// activations it computed; pass them to the next call to advance time.
//
// Basic usage:
//
//	genome := neat.NewGenome(2, 1, []neat.Gene{
//		neat.NewGene(0, 3, 0.7, 1),
//		neat.NewGene(1, 4, 0.9, 2),
//		neat.NewGene(4, 4, 0.5, 3), // self-connection
//		neat.NewGene(4, 3, 1.2, 4),
//	})
//
//	net, err := nn.CreateRecurrentNetwork(genome)
//	if err != nil {
//		log.Fatalf("Error decoding genome: %v", err)
//	}
//
//	// Inputs are the two declared inputs followed by the bias sensor.
//	var state nn.Activations
//	for step := 0; step < 3; step++ {
//		outputs, next, err := net.Eval([]float64{1.0, 0.0, 1.0}, state)
//		if err != nil {
//			log.Fatalf("Error evaluating network: %v", err)
//		}
//		fmt.Println(outputs)
//		state = next
//	}
package neat
