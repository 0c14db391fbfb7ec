// Package flux implements flux analysis routines over metabolic-network
// polytopes of the form {x : lb <= x <= ub, Sx = 0}: flux balance analysis
// (FBA), flux variability analysis (FVA), Chebyshev ball computation, and
// redundant-facet removal. All numerical work is delegated to a solver.Oracle.
package flux

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/KeShih/dingo/pkg/solver"
)

const (
	// defaultOptTol is the grid the FBA optimum is floored to before the
	// opt_percentage cutoff is applied, guarding against spurious
	// infeasibility from floating-point noise in the reported optimum.
	defaultOptTol = 1e-06

	// defaultFacetTol is the tolerance under which a facet counts as
	// redundant and a coordinate's feasible width counts as collapsed.
	defaultFacetTol = 1e-07
)

// checkNetworkDims validates that lb, ub, and c all match the column count of
// the stoichiometric matrix, returning its dimensions.
func checkNetworkDims(lb, ub []float64, S *mat.Dense, c []float64) (m, n int, err error) {
	m, n = S.Dims()
	if len(lb) != n || len(ub) != n {
		return 0, 0, fmt.Errorf("%w: the number of reactions (%d) must equal the number of flux bounds (%d lower, %d upper)",
			solver.ErrDimensionMismatch, n, len(lb), len(ub))
	}
	if len(c) != n {
		return 0, 0, fmt.Errorf("%w: the objective has %d entries for %d reactions",
			solver.ErrDimensionMismatch, len(c), n)
	}
	return m, n, nil
}

// basisRow returns the length-n standard-basis row sign*e_i.
func basisRow(n, i int, sign float64) []float64 {
	row := make([]float64, n)
	row[i] = sign
	return row
}
