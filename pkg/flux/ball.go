package flux

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/KeShih/dingo/pkg/solver"
)

// InnerBall computes the largest inscribed (Chebyshev) ball of the polytope
// {x : Ax <= b} by solving
//
//	max r  s.t.  a_i·x + r*||a_i|| <= b_i,  i = 1..m
//
// and returns the ball's center and radius. A non-optimal solve or a negative
// radius means the polytope is infeasible or degenerate and is an error.
func InnerBall(o solver.Oracle, A *mat.Dense, b []float64) ([]float64, float64, error) {
	m, n := A.Dims()
	if len(b) != m {
		return nil, 0, fmt.Errorf("%w: A has %d rows but b has %d entries", solver.ErrDimensionMismatch, m, len(b))
	}

	// Append the row norms as the radius column: [A | ||a_i||].
	expanded := mat.NewDense(m, n+1, nil)
	expanded.Slice(0, m, 0, n).(*mat.Dense).Copy(A)
	for i := 0; i < m; i++ {
		expanded.Set(i, n, floats.Norm(A.RawRowView(i), 2))
	}

	obj := basisRow(n+1, n, 1)

	res, err := o.Solve(solver.Problem{
		Direction: solver.Maximize,
		C:         obj,
		G:         expanded,
		H:         b,
	})
	if err != nil {
		logrus.Errorf("inner ball solve failed: %v", err)
		return nil, 0, fmt.Errorf("inner ball: %w", err)
	}
	if res.Status != solver.StatusOptimal {
		return nil, 0, fmt.Errorf("inner ball: solver finished with status %v; the polytope may be infeasible", res.Status)
	}

	radius := res.Point[n]
	if radius < 0 {
		return nil, 0, fmt.Errorf("inner ball: computed radius %v is negative; the polytope is infeasible or degenerate", radius)
	}

	return res.Point[:n], radius, nil
}
