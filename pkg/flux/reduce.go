package flux

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/mat"

	"github.com/KeShih/dingo/pkg/solver"
)

// Reduced is the outcome of a facet reduction: the surviving box inequalities
// A x <= B and the augmented equality system Aeq x = Beq. Together with the
// performance cutoff they describe the same feasible region as the input
// polytope. A is nil when no inequality rows survive.
type Reduced struct {
	A *mat.Dense
	B []float64

	Aeq *mat.Dense
	Beq []float64
}

// Reducer removes redundant facets from a flux polytope and converts
// numerically collapsed coordinates into equality rows. Configuration is
// fixed at construction time; a Reducer is safe for sequential reuse.
type Reducer struct {
	oracle solver.Oracle

	// OptTol is the rounding grid for the opt_percentage cutoff.
	OptTol float64

	// FacetTol is the redundancy and width-collapse tolerance. A facet
	// whose relaxed-versus-original optimum gap does not exceed FacetTol
	// is redundant.
	FacetTol float64

	// Observer, when set, receives a summary of every elimination pass.
	Observer Observer
}

func NewReducer(o solver.Oracle) *Reducer {
	return &Reducer{
		oracle:   o,
		OptTol:   defaultOptTol,
		FacetTol: defaultFacetTol,
	}
}

// reduceState is the working state threaded between elimination passes:
// current bounds (released sides at ±Inf), the undecided coordinate set, the
// per-side removal flags, and the accumulated result rows.
type reduceState struct {
	lower []float64
	upper []float64

	active []int

	leftRemoved  []bool
	rightRemoved []bool

	// equality rows accumulated across passes, appended below S.
	eqRows []float64
	eqRHS  []float64

	// inequality rows, rebuilt from scratch every pass.
	ineqRows []float64
	ineqRHS  []float64
}

// Reduce finds and removes the redundant facets of the polytope
//
//	{v : lb <= v <= ub, Sv = 0, c·v >= val(optPercentage)}
//
// and converts coordinates whose feasible width collapses below FacetTol into
// equality rows. Facets are only removed when provably non-binding within
// FacetTol, so the reduced system describes exactly the same region.
func (r *Reducer) Reduce(lb, ub []float64, S *mat.Dense, c []float64, optPercentage float64) (*Reduced, error) {
	m, n, err := checkNetworkDims(lb, ub, S, c)
	if err != nil {
		return nil, err
	}

	_, optValue, err := FBA(r.oracle, lb, ub, S, c)
	if err != nil {
		return nil, err
	}
	val := cutoffThreshold(optValue, optPercentage, r.OptTol)

	// The cutoff c·v >= val rides along every sub-problem as -c·v <= -val.
	cut := make([]float64, n)
	for j := range cut {
		cut[j] = -c[j]
	}
	cutRow := mat.NewDense(1, n, cut)
	cutRHS := []float64{-val}

	// Inequality rows are emitted against the original bounds; a side only
	// survives while its bound is never released, so the originals stay
	// valid for the whole reduction.
	origLower := make([]float64, n)
	origUpper := make([]float64, n)
	copy(origLower, lb)
	copy(origUpper, ub)

	st := &reduceState{
		lower:        make([]float64, n),
		upper:        make([]float64, n),
		active:       make([]int, n),
		leftRemoved:  make([]bool, n),
		rightRemoved: make([]bool, n),
	}
	copy(st.lower, lb)
	copy(st.upper, ub)
	for i := range st.active {
		st.active[i] = i
	}

	for pass := 1; ; pass++ {
		// Equality rows added during a pass only take effect in the next
		// pass, so snapshot the system here. Released bounds, by
		// contrast, take effect immediately.
		aeq, beq := stackEqualities(S, m, n, st.eqRows, st.eqRHS)

		st.ineqRows = nil
		st.ineqRHS = nil

		removed := 0
		fixed := 0
		var next []int

		for _, i := range st.active {
			redundantRight := true
			redundantLeft := true

			// maximize v_i (right side)
			maxObj, ok, err := r.coordinateOpt(solver.Maximize, i, aeq, beq, cutRow, cutRHS, st)
			if err != nil {
				return nil, err
			}
			if !ok {
				maxObj = st.upper[i]
			}

			if !st.rightRemoved[i] {
				// Relax the bound by one; if the optimum barely
				// moves, the facet never binds.
				saved := st.upper[i]
				st.upper[i] = saved + 1
				relaxed, relaxedOK, err := r.coordinateOpt(solver.Maximize, i, aeq, beq, cutRow, cutRHS, st)
				st.upper[i] = saved
				if err != nil {
					return nil, err
				}
				if relaxedOK {
					if math.Abs(relaxed-maxObj) > r.FacetTol {
						redundantRight = false
					} else {
						removed++
						st.rightRemoved[i] = true
					}
				}
			}

			// minimize v_i (left side)
			minObj, ok, err := r.coordinateOpt(solver.Minimize, i, aeq, beq, cutRow, cutRHS, st)
			if err != nil {
				return nil, err
			}
			if !ok {
				minObj = st.lower[i]
			}

			if !st.leftRemoved[i] {
				saved := st.lower[i]
				st.lower[i] = saved - 1
				relaxed, relaxedOK, err := r.coordinateOpt(solver.Minimize, i, aeq, beq, cutRow, cutRHS, st)
				st.lower[i] = saved
				if err != nil {
					return nil, err
				}
				if relaxedOK {
					if math.Abs(relaxed-minObj) > r.FacetTol {
						redundantLeft = false
					} else {
						removed++
						st.leftRemoved[i] = true
					}
				}
			}

			switch {
			case !redundantLeft || !redundantRight:
				width := math.Abs(maxObj - minObj)
				if width < r.FacetTol {
					// The coordinate is numerically fixed:
					// convert its box constraint to an
					// equality and release both bounds.
					fixed++
					st.eqRows = append(st.eqRows, basisRow(n, i, 1)...)
					st.eqRHS = append(st.eqRHS, math.Min(maxObj, minObj))
					st.lower[i] = math.Inf(-1)
					st.upper[i] = math.Inf(1)
					continue
				}

				next = append(next, i)

				if !redundantLeft {
					st.ineqRows = append(st.ineqRows, basisRow(n, i, -1)...)
					st.ineqRHS = append(st.ineqRHS, -origLower[i])
				} else {
					st.lower[i] = math.Inf(-1)
				}

				if !redundantRight {
					st.ineqRows = append(st.ineqRows, basisRow(n, i, 1)...)
					st.ineqRHS = append(st.ineqRHS, origUpper[i])
				} else {
					st.upper[i] = math.Inf(1)
				}

			default:
				// Both sides proven redundant: the coordinate is
				// unconstrained by its box within the region.
				st.lower[i] = math.Inf(-1)
				st.upper[i] = math.Inf(1)
			}
		}

		st.active = next

		logrus.Debugf("facet pass %d: removed %d, fixed %d, %d coordinates still active", pass, removed, fixed, len(next))
		if r.Observer != nil {
			r.Observer.ObservePass(PassStats{Pass: pass, Removed: removed, Fixed: fixed, Active: len(next)})
		}

		if removed == 0 && fixed == 0 {
			break
		}
	}

	out := &Reduced{}
	if len(st.ineqRHS) > 0 {
		out.A = mat.NewDense(len(st.ineqRHS), n, st.ineqRows)
		out.B = st.ineqRHS
	}
	out.Aeq, out.Beq = stackEqualities(S, m, n, st.eqRows, st.eqRHS)

	return out, nil
}

// coordinateOpt optimizes a single coordinate over the current working
// region. The ok flag is false when the sub-problem is infeasible or
// unbounded, in which case the caller substitutes the static bound. Errors
// are genuine solver failures and abort the reduction.
func (r *Reducer) coordinateOpt(dir solver.Direction, i int, aeq *mat.Dense, beq []float64, cutRow *mat.Dense, cutRHS []float64, st *reduceState) (float64, bool, error) {
	n := len(st.lower)

	res, err := r.oracle.Solve(solver.Problem{
		Direction: dir,
		C:         basisRow(n, i, 1),
		Aeq:       aeq,
		Beq:       beq,
		G:         cutRow,
		H:         cutRHS,
		Lower:     st.lower,
		Upper:     st.upper,
	})
	if err != nil {
		logrus.Errorf("facet reduction solve failed for coordinate %d: %v", i, err)
		return 0, false, fmt.Errorf("reduce: %w", err)
	}
	if res.Status != solver.StatusOptimal {
		return 0, false, nil
	}
	return res.Value, true, nil
}

// stackEqualities stacks the accumulated equality rows below the
// stoichiometric matrix, pairing them with a zero right-hand side for the
// mass-balance rows.
func stackEqualities(S *mat.Dense, m, n int, eqRows, eqRHS []float64) (*mat.Dense, []float64) {
	beq := make([]float64, m+len(eqRHS))
	copy(beq[m:], eqRHS)

	if len(eqRHS) == 0 {
		return mat.DenseCopyOf(S), beq
	}

	extra := mat.NewDense(len(eqRHS), n, eqRows)
	aeq := mat.NewDense(m+len(eqRHS), n, nil)
	aeq.Stack(S, extra)
	return aeq, beq
}
