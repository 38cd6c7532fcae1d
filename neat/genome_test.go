package neat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneDisabledReturnsCopy(t *testing.T) {
	gene := NewGene(1, 2, 0.5, 7)
	disabled := gene.Disabled()

	assert.True(t, gene.Enabled)
	assert.False(t, disabled.Enabled)
	assert.Equal(t, gene.Key, disabled.Key)
	assert.Equal(t, gene.Weight, disabled.Weight)
	assert.Equal(t, gene.Innovation, disabled.Innovation)
}

func TestGenomeKeys(t *testing.T) {
	g := NewGenome(2, 3, nil)

	assert.Equal(t, []int{0, 1, 2}, g.SensorKeys())
	assert.Equal(t, 2, g.BiasKey())
	assert.Equal(t, []int{3, 4, 5}, g.OutputKeys())
}

func TestGenomeEnabledGenes(t *testing.T) {
	genes := []Gene{
		NewGene(0, 2, 0.7, 1),
		NewGene(1, 2, 0.5, 2).Disabled(),
		NewGene(1, 3, 0.9, 3),
	}
	g := NewGenome(1, 1, genes)

	enabled := g.EnabledGenes()
	require.Len(t, enabled, 2)
	assert.Equal(t, ConnectionKey{InNodeID: 0, OutNodeID: 2}, enabled[0].Key)
	assert.Equal(t, ConnectionKey{InNodeID: 1, OutNodeID: 3}, enabled[1].Key)

	// NewGenome copies its input.
	genes[0] = genes[0].Disabled()
	assert.True(t, g.Genes[0].Enabled)
	assert.Contains(t, g.String(), "Enabled: 2")
}

func TestGenomeValidate(t *testing.T) {
	assert.NoError(t, NewGenome(0, 0, nil).Validate())
	assert.Error(t, NewGenome(-1, 1, nil).Validate())
	assert.Error(t, NewGenome(1, -1, nil).Validate())
}

func TestActivations(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "sigmoid", x: 0, want: 0.5},
		{name: "sigmoid", x: 1, want: 0.7310585786},
		{name: "tanh", x: 0, want: 0},
		{name: "relu", x: -1, want: 0},
		{name: "identity", x: 2.5, want: 2.5},
		{name: "clamped", x: 3, want: 1},
		{name: "gaussian", x: 0, want: 1},
		{name: "abs", x: -2, want: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fn, err := GetActivation(tc.name)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, fn(tc.x), 1e-9)
		})
	}

	_, err := GetActivation("softsign")
	assert.ErrorIs(t, err, ErrUnknownActivation)
}

func TestSigmoidExtremes(t *testing.T) {
	assert.Equal(t, 0.0, Sigmoid(-1000))
	assert.Equal(t, 1.0, Sigmoid(1000))
	assert.False(t, math.IsNaN(Sigmoid(math.Inf(-1))))
}

func TestErrorHelpers(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 5.0, SquaredError([]float64{1, 2}, []float64{0, 4, 9}))
}
