package flux

import (
	"gonum.org/v1/gonum/mat"

	"github.com/KeShih/dingo/pkg/solver"
)

// oracleFunc adapts a plain function to the solver.Oracle interface for
// scripting deterministic oracle behavior in tests.
type oracleFunc func(solver.Problem) (solver.Result, error)

func (f oracleFunc) Solve(p solver.Problem) (solver.Result, error) {
	return f(p)
}

// chainNetwork is a three-reaction chain: v1 -> v2 -> v3, so mass balance
// forces v1 = v2 = v3 and the tightest bound caps the whole chain.
func chainNetwork() (lb, ub []float64, S *mat.Dense) {
	lb = []float64{0, 0, 0}
	ub = []float64{10, 8, 6}
	S = mat.NewDense(2, 3, []float64{
		1, -1, 0,
		0, 1, -1,
	})
	return lb, ub, S
}
