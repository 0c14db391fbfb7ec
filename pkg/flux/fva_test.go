package flux

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KeShih/dingo/pkg/solver"
)

func TestFVAChainFullOptimum(t *testing.T) {
	lb, ub, S := chainNetwork()
	c := []float64{0, 0, 1}

	res, err := FVA(solver.NewSimplex(), lb, ub, S, c, 100)

	assert.NoError(t, err)
	assert.InDelta(t, 6, res.OptValue, 1e-8)
	// at 100% of the optimum the whole chain is pinned to the optimal flux
	assert.InDeltaSlice(t, []float64{6, 6, 6}, res.MinFlux, 1e-5)
	assert.InDeltaSlice(t, []float64{6, 6, 6}, res.MaxFlux, 1e-5)
}

func TestFVAChainHalfOptimum(t *testing.T) {
	lb, ub, S := chainNetwork()
	c := []float64{0, 0, 1}

	res, err := FVA(solver.NewSimplex(), lb, ub, S, c, 50)

	assert.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 3, 3}, res.MinFlux, 1e-5)
	assert.InDeltaSlice(t, []float64{6, 6, 6}, res.MaxFlux, 1e-5)
}

// non-optimal coordinate sub-problems fall back to the static bounds
func TestFVAFallbackToStaticBounds(t *testing.T) {
	calls := 0
	oracle := oracleFunc(func(p solver.Problem) (solver.Result, error) {
		calls++
		if calls == 1 {
			// the FBA solve defining the cutoff
			return solver.Result{Status: solver.StatusOptimal, Value: 6, Point: []float64{6, 6, 6}}, nil
		}
		return solver.Result{Status: solver.StatusInfeasible}, nil
	})

	lb, ub, S := chainNetwork()
	res, err := FVA(oracle, lb, ub, S, []float64{0, 0, 1}, 100)

	assert.NoError(t, err)
	assert.Equal(t, lb, res.MinFlux)
	assert.Equal(t, ub, res.MaxFlux)
}

func TestFVADimensionMismatch(t *testing.T) {
	lb, ub, S := chainNetwork()

	_, err := FVA(solver.NewSimplex(), lb[:2], ub, S, []float64{0, 0, 1}, 100)

	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)
}
