package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Simplex is an Oracle backed by the gonum simplex solver. The general-form
// problem is converted to standard form with lp.Convert (which splits free
// variables into positive and negative parts and adds slack variables) and
// handed to lp.Simplex.
type Simplex struct {
	// Tol is passed straight to lp.Simplex; zero selects the solver default.
	Tol float64
}

func NewSimplex() *Simplex {
	return &Simplex{}
}

func (s *Simplex) Solve(p Problem) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}

	n := len(p.C)

	obj := make([]float64, n)
	copy(obj, p.C)
	if p.Direction == Maximize {
		floats.Scale(-1, obj)
	}

	aeq, beq, feasible := dropZeroEqualities(p.Aeq, p.Beq)
	if !feasible {
		return Result{Status: StatusInfeasible}, nil
	}

	g, h := combineInequalities(p)

	// With no constraints at all there is no vertex for the simplex to
	// find; any nonzero objective direction is unbounded.
	if g == nil && aeq == nil {
		return Result{Status: StatusUnbounded}, nil
	}

	c, a, b := lp.Convert(obj, matOrNil(g), h, matOrNil(aeq), beq)

	z, xs, err := lp.Simplex(c, a, b, s.Tol, nil)
	switch {
	case err == lp.ErrInfeasible:
		return Result{Status: StatusInfeasible}, nil
	case err == lp.ErrUnbounded:
		return Result{Status: StatusUnbounded}, nil
	case err != nil:
		return Result{}, fmt.Errorf("simplex: %w", err)
	}

	// Recover the original point from the standard-form solution
	// xs = [xp; xn; s], so x_i = xp_i - xn_i.
	x := make([]float64, n)
	for i := range x {
		x[i] = xs[i] - xs[n+i]
	}

	val := z
	if p.Direction == Maximize {
		val = -z
	}

	return Result{Status: StatusOptimal, Value: val, Point: x}, nil
}

// combineInequalities assembles the problem's inequality rows and the finite
// variable bounds into a single G matrix and h vector for lp.Convert.
func combineInequalities(p Problem) (*mat.Dense, []float64) {
	n := len(p.C)

	var rows []float64
	var rhs []float64

	if p.G != nil {
		r, _ := p.G.Dims()
		for i := 0; i < r; i++ {
			rows = append(rows, p.G.RawRowView(i)...)
			rhs = append(rhs, p.H[i])
		}
	}

	for i := 0; i < n; i++ {
		if p.Upper != nil && !boundFree(p.Upper[i]) {
			row := make([]float64, n)
			row[i] = 1
			rows = append(rows, row...)
			rhs = append(rhs, p.Upper[i])
		}
		if p.Lower != nil && !boundFree(p.Lower[i]) {
			row := make([]float64, n)
			row[i] = -1
			rows = append(rows, row...)
			rhs = append(rhs, -p.Lower[i])
		}
	}

	if len(rhs) == 0 {
		return nil, nil
	}
	return mat.NewDense(len(rhs), n, rows), rhs
}

// dropZeroEqualities removes all-zero rows from the equality system. A zero
// row would make the standard-form constraint matrix rank deficient and the
// simplex basis singular. A zero row with a nonzero right-hand side can never
// be satisfied, reported via the feasible flag.
func dropZeroEqualities(a *mat.Dense, b []float64) (*mat.Dense, []float64, bool) {
	if a == nil {
		return nil, nil, true
	}

	r, c := a.Dims()
	var keep []int
	for i := 0; i < r; i++ {
		nonzero := false
		for j := 0; j < c; j++ {
			if a.At(i, j) != 0 {
				nonzero = true
				break
			}
		}
		if nonzero {
			keep = append(keep, i)
		} else if math.Abs(b[i]) > 0 {
			return nil, nil, false
		}
	}

	if len(keep) == 0 {
		return nil, nil, true
	}
	if len(keep) == r {
		bNew := make([]float64, r)
		copy(bNew, b)
		return mat.DenseCopyOf(a), bNew, true
	}

	var data []float64
	var bNew []float64
	for _, i := range keep {
		data = append(data, a.RawRowView(i)...)
		bNew = append(bNew, b[i])
	}
	return mat.NewDense(len(keep), c, data), bNew, true
}

// matOrNil avoids handing lp.Convert a typed-nil mat.Matrix interface value.
func matOrNil(a *mat.Dense) mat.Matrix {
	if a == nil {
		return nil
	}
	return a
}
