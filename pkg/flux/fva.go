package flux

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/KeShih/dingo/pkg/solver"
)

// FVAResult holds the per-reaction flux ranges together with the underlying
// FBA optimum they were computed against.
type FVAResult struct {
	MinFlux []float64
	MaxFlux []float64

	// OptPoint and OptValue are the FBA solution defining the cutoff.
	OptPoint []float64
	OptValue float64
}

// FVA performs flux variability analysis: for every reaction i it solves
//
//	min/max v_i  s.t.  Sv = 0, lb <= v <= ub, c·v >= val
//
// where val admits all solutions within optPercentage percent of the FBA
// optimum. A coordinate whose sub-problem comes back non-optimal falls back
// to its static bound.
func FVA(o solver.Oracle, lb, ub []float64, S *mat.Dense, c []float64, optPercentage float64) (*FVAResult, error) {
	m, n, err := checkNetworkDims(lb, ub, S, c)
	if err != nil {
		return nil, err
	}

	optPoint, optValue, err := FBA(o, lb, ub, S, c)
	if err != nil {
		return nil, err
	}

	val := cutoffThreshold(optValue, optPercentage, defaultOptTol)

	// Impose c·v >= val as the inequality row -c·v <= -val.
	cut := make([]float64, n)
	for j := range cut {
		cut[j] = -c[j]
	}
	cutRow := mat.NewDense(1, n, cut)
	cutRHS := []float64{-val}

	beq := make([]float64, m)

	res := &FVAResult{
		MinFlux:  make([]float64, n),
		MaxFlux:  make([]float64, n),
		OptPoint: optPoint,
		OptValue: optValue,
	}

	for i := 0; i < n; i++ {
		obj := basisRow(n, i, 1)

		minRes, err := o.Solve(solver.Problem{
			Direction: solver.Minimize,
			C:         obj,
			Aeq:       S,
			Beq:       beq,
			G:         cutRow,
			H:         cutRHS,
			Lower:     lb,
			Upper:     ub,
		})
		if err != nil {
			logrus.Errorf("FVA min solve failed for reaction %d: %v", i, err)
			return nil, fmt.Errorf("fva: %w", err)
		}
		if minRes.Status == solver.StatusOptimal {
			res.MinFlux[i] = minRes.Value
		} else {
			res.MinFlux[i] = lb[i]
		}

		maxRes, err := o.Solve(solver.Problem{
			Direction: solver.Maximize,
			C:         obj,
			Aeq:       S,
			Beq:       beq,
			G:         cutRow,
			H:         cutRHS,
			Lower:     lb,
			Upper:     ub,
		})
		if err != nil {
			logrus.Errorf("FVA max solve failed for reaction %d: %v", i, err)
			return nil, fmt.Errorf("fva: %w", err)
		}
		if maxRes.Status == solver.StatusOptimal {
			res.MaxFlux[i] = maxRes.Value
		} else {
			res.MaxFlux[i] = ub[i]
		}
	}

	return res, nil
}

// cutoffThreshold floors the optimum to the tol grid before scaling it by the
// requested percentage.
func cutoffThreshold(optValue, optPercentage, tol float64) float64 {
	return math.Floor(optValue/tol) * tol * optPercentage / 100
}
