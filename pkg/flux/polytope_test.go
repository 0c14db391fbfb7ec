package flux

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KeShih/dingo/pkg/solver"
)

func TestPolytopeValidate(t *testing.T) {
	p := &Polytope{
		Lower:         []float64{0, 0},
		Upper:         []float64{1, 1},
		Stoichiometry: [][]float64{{1, -1}},
		Objective:     []float64{0, 1},
	}
	assert.NoError(t, p.Validate())

	// ragged stoichiometry rows
	p.Stoichiometry = [][]float64{{1, -1}, {1}}
	assert.ErrorIs(t, p.Validate(), solver.ErrDimensionMismatch)

	// bounds disagree with the reaction count
	p.Stoichiometry = [][]float64{{1, -1}}
	p.Lower = []float64{0}
	assert.ErrorIs(t, p.Validate(), solver.ErrDimensionMismatch)
}

func TestPolytopeMatrix(t *testing.T) {
	p := &Polytope{
		Lower:         []float64{0, 0, 0},
		Upper:         []float64{1, 1, 1},
		Stoichiometry: [][]float64{{1, -1, 0}, {0, 1, -1}},
		Objective:     []float64{0, 0, 1},
	}
	assert.NoError(t, p.Validate())

	S := p.Matrix()
	r, c := S.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, -1.0, S.At(1, 2))
}
