package flux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/KeShih/dingo/pkg/solver"
)

func TestFBAChain(t *testing.T) {
	lb, ub, S := chainNetwork()

	point, value, err := FBA(solver.NewSimplex(), lb, ub, S, []float64{0, 0, 1})

	assert.NoError(t, err)
	assert.InDelta(t, 6, value, 1e-8)
	assert.InDeltaSlice(t, []float64{6, 6, 6}, point, 1e-8)
}

func TestFBADimensionMismatch(t *testing.T) {
	calls := 0
	oracle := oracleFunc(func(p solver.Problem) (solver.Result, error) {
		calls++
		return solver.Result{}, nil
	})

	_, _, err := FBA(oracle, []float64{0, 0}, []float64{1, 1}, mat.NewDense(1, 3, []float64{1, 1, 1}), []float64{1, 1, 1})

	assert.ErrorIs(t, err, solver.ErrDimensionMismatch)
	assert.Equal(t, 0, calls, "a malformed input must fail before any solve")
}

// an unsolvable network reports zero flux rather than an error
func TestFBANonOptimalReturnsZeroFlux(t *testing.T) {
	oracle := oracleFunc(func(p solver.Problem) (solver.Result, error) {
		return solver.Result{Status: solver.StatusInfeasible}, nil
	})

	lb, ub, S := chainNetwork()
	point, value, err := FBA(oracle, lb, ub, S, []float64{0, 0, 1})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, value)
	assert.Equal(t, []float64{0, 0, 0}, point)
}
