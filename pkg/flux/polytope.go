package flux

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/KeShih/dingo/pkg/solver"
)

// Polytope is the serializable description of a flux polytope as produced by
// an external model loader: plain numeric arrays, no model semantics.
type Polytope struct {
	Lower         []float64   `json:"lb"`
	Upper         []float64   `json:"ub"`
	Stoichiometry [][]float64 `json:"S"`
	Objective     []float64   `json:"c"`
	OptPercentage float64     `json:"opt_percentage,omitempty"`
}

func (p *Polytope) Validate() error {
	if len(p.Stoichiometry) == 0 {
		return fmt.Errorf("%w: empty stoichiometric matrix", solver.ErrDimensionMismatch)
	}
	n := len(p.Stoichiometry[0])
	for i, row := range p.Stoichiometry {
		if len(row) != n {
			return fmt.Errorf("%w: stoichiometry row %d has %d entries, expected %d", solver.ErrDimensionMismatch, i, len(row), n)
		}
	}
	if len(p.Lower) != n || len(p.Upper) != n {
		return fmt.Errorf("%w: %d reactions but %d lower and %d upper bounds", solver.ErrDimensionMismatch, n, len(p.Lower), len(p.Upper))
	}
	if len(p.Objective) != n {
		return fmt.Errorf("%w: %d reactions but %d objective entries", solver.ErrDimensionMismatch, n, len(p.Objective))
	}
	return nil
}

// Matrix assembles the stoichiometry rows into a dense matrix. Validate must
// have been called first.
func (p *Polytope) Matrix() *mat.Dense {
	m := len(p.Stoichiometry)
	n := len(p.Stoichiometry[0])
	data := make([]float64, 0, m*n)
	for _, row := range p.Stoichiometry {
		data = append(data, row...)
	}
	return mat.NewDense(m, n, data)
}
