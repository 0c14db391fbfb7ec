package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrDimensionMismatch is returned when the sizes of a problem's vectors and
// matrices disagree. It is surfaced before any solve is attempted.
var ErrDimensionMismatch = errors.New("solver: dimension mismatch")

type Direction int

const (
	Minimize Direction = iota
	Maximize
)

type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	}
	return fmt.Sprintf("unknown status (%d)", int(s))
}

// Problem is a fully specified linear program:
//
//	min/max	C^T * x
//	s.t.	Aeq * x = Beq
//		G * x <= H
//		Lower <= x <= Upper
//
// Aeq and G may be nil if the problem has no constraints of that type.
// Lower and Upper may be nil, and individual entries may be ±Inf; a bound at
// or beyond ±MaxFloat64 is treated as absent.
type Problem struct {
	Direction Direction
	C         []float64

	Aeq *mat.Dense
	Beq []float64

	G *mat.Dense
	H []float64

	Lower []float64
	Upper []float64
}

// Result reports the outcome of a solve. Value and Point are only meaningful
// when Status is StatusOptimal.
type Result struct {
	Status Status
	Value  float64
	Point  []float64
}

// Oracle solves a fully specified LP and returns a structured result.
// Status-level outcomes (infeasible, unbounded) are reported in the Result;
// the error return is reserved for solver failures and malformed input.
type Oracle interface {
	Solve(p Problem) (Result, error)
}

func (p Problem) validate() error {
	n := len(p.C)
	if n == 0 {
		return fmt.Errorf("%w: empty objective vector", ErrDimensionMismatch)
	}

	if p.Aeq != nil {
		r, c := p.Aeq.Dims()
		if r != len(p.Beq) {
			return fmt.Errorf("%w: Aeq has %d rows but Beq has %d entries", ErrDimensionMismatch, r, len(p.Beq))
		}
		if c != n {
			return fmt.Errorf("%w: Aeq has %d columns but the objective has %d entries", ErrDimensionMismatch, c, n)
		}
	} else if len(p.Beq) != 0 {
		return fmt.Errorf("%w: Beq is set but Aeq is nil", ErrDimensionMismatch)
	}

	if p.G != nil {
		r, c := p.G.Dims()
		if r != len(p.H) {
			return fmt.Errorf("%w: G has %d rows but H has %d entries", ErrDimensionMismatch, r, len(p.H))
		}
		if c != n {
			return fmt.Errorf("%w: G has %d columns but the objective has %d entries", ErrDimensionMismatch, c, n)
		}
	} else if len(p.H) != 0 {
		return fmt.Errorf("%w: H is set but G is nil", ErrDimensionMismatch)
	}

	if p.Lower != nil && len(p.Lower) != n {
		return fmt.Errorf("%w: %d lower bounds for %d variables", ErrDimensionMismatch, len(p.Lower), n)
	}
	if p.Upper != nil && len(p.Upper) != n {
		return fmt.Errorf("%w: %d upper bounds for %d variables", ErrDimensionMismatch, len(p.Upper), n)
	}

	return nil
}

// boundFree reports whether a bound value should be treated as absent.
// Covers both ±Inf and the float-max sentinels some callers use for
// released bounds.
func boundFree(v float64) bool {
	return math.IsInf(v, 0) || v >= math.MaxFloat64 || v <= -math.MaxFloat64
}
