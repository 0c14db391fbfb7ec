package flux

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/KeShih/dingo/pkg/solver"
)

// FBA performs flux balance analysis:
//
//	max c·v  s.t.  Sv = 0, lb <= v <= ub
//
// On a non-optimal solver status the zero flux vector and a zero optimum are
// returned, mirroring the convention of treating an unsolvable network as
// carrying no flux.
func FBA(o solver.Oracle, lb, ub []float64, S *mat.Dense, c []float64) ([]float64, float64, error) {
	m, n, err := checkNetworkDims(lb, ub, S, c)
	if err != nil {
		return nil, 0, err
	}

	res, err := o.Solve(solver.Problem{
		Direction: solver.Maximize,
		C:         c,
		Aeq:       S,
		Beq:       make([]float64, m),
		Lower:     lb,
		Upper:     ub,
	})
	if err != nil {
		logrus.Errorf("FBA solve failed: %v", err)
		return nil, 0, fmt.Errorf("fba: %w", err)
	}

	if res.Status != solver.StatusOptimal {
		logrus.Debugf("FBA finished with status %v", res.Status)
		return make([]float64, n), 0, nil
	}

	return res.Point, res.Value, nil
}
