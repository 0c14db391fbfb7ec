package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// a standard-form problem with known solution:
// Minimize Z = -1x1 + -2x2 + 0x3 + 0x4
// Subject to:
//	-1x1 	+ 2x2 	+ 1x3 	+ 0x4 	= 4
//	3x1 	+ 1x2 	+ 0x3 	+ 1x4 	= 9
//	x >= 0
func TestSimplexStandardForm(t *testing.T) {
	s := NewSimplex()

	res, err := s.Solve(Problem{
		Direction: Minimize,
		C:         []float64{-1, -2, 0, 0},
		Aeq: mat.NewDense(2, 4, []float64{
			-1, 2, 1, 0,
			3, 1, 0, 1,
		}),
		Beq:   []float64{4, 9},
		Lower: []float64{0, 0, 0, 0},
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusOptimal, res.Status)
	assert.InDelta(t, -8, res.Value, 1e-10)
	assert.InDeltaSlice(t, []float64{2, 3, 0, 0}, res.Point, 1e-10)
}

func TestSimplexMaximizeWithBounds(t *testing.T) {
	s := NewSimplex()

	res, err := s.Solve(Problem{
		Direction: Maximize,
		C:         []float64{1, 1},
		Lower:     []float64{0, 0},
		Upper:     []float64{1, 1},
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusOptimal, res.Status)
	assert.InDelta(t, 2, res.Value, 1e-10)
	assert.InDeltaSlice(t, []float64{1, 1}, res.Point, 1e-10)
}

// a three-reaction chain network: v1 = v2 = v3, capped by the tightest bound.
func TestSimplexEqualityChain(t *testing.T) {
	s := NewSimplex()

	res, err := s.Solve(Problem{
		Direction: Maximize,
		C:         []float64{0, 0, 1},
		Aeq: mat.NewDense(2, 3, []float64{
			1, -1, 0,
			0, 1, -1,
		}),
		Beq:   []float64{0, 0},
		Lower: []float64{0, 0, 0},
		Upper: []float64{10, 8, 6},
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusOptimal, res.Status)
	assert.InDelta(t, 6, res.Value, 1e-10)
	assert.InDeltaSlice(t, []float64{6, 6, 6}, res.Point, 1e-10)
}

func TestSimplexInfeasible(t *testing.T) {
	s := NewSimplex()

	// x must be 0 but its bounds demand 2 <= x <= 3
	res, err := s.Solve(Problem{
		Direction: Maximize,
		C:         []float64{1},
		Aeq:       mat.NewDense(1, 1, []float64{1}),
		Beq:       []float64{0},
		Lower:     []float64{2},
		Upper:     []float64{3},
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusInfeasible, res.Status)
}

func TestSimplexUnbounded(t *testing.T) {
	s := NewSimplex()

	res, err := s.Solve(Problem{
		Direction: Maximize,
		C:         []float64{1},
		Lower:     []float64{0},
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusUnbounded, res.Status)
}

func TestSimplexDimensionMismatch(t *testing.T) {
	testdata := []struct {
		name string
		prob Problem
	}{
		{
			name: "empty objective",
			prob: Problem{},
		},
		{
			name: "bounds shorter than objective",
			prob: Problem{
				C:     []float64{1, 1, 1},
				Lower: []float64{0, 0},
			},
		},
		{
			name: "Beq does not match Aeq rows",
			prob: Problem{
				C:   []float64{1, 1},
				Aeq: mat.NewDense(1, 2, []float64{1, 1}),
				Beq: []float64{1, 2},
			},
		},
		{
			name: "Aeq columns do not match objective",
			prob: Problem{
				C:   []float64{1, 1, 1},
				Aeq: mat.NewDense(1, 2, []float64{1, 1}),
				Beq: []float64{1},
			},
		},
		{
			name: "H without G",
			prob: Problem{
				C: []float64{1},
				H: []float64{1},
			},
		},
	}

	s := NewSimplex()
	for _, td := range testdata {
		t.Run(td.name, func(t *testing.T) {
			_, err := s.Solve(td.prob)
			assert.ErrorIs(t, err, ErrDimensionMismatch)
		})
	}
}

// a bound at or past ±MaxFloat64 must not leak a constraint row into the solve.
func TestSimplexReleasedBoundsIgnored(t *testing.T) {
	s := NewSimplex()

	res, err := s.Solve(Problem{
		Direction: Minimize,
		C:         []float64{1, 1},
		Aeq:       mat.NewDense(1, 2, []float64{1, 1}),
		Beq:       []float64{2},
		Lower:     []float64{math.Inf(-1), -math.MaxFloat64},
		Upper:     []float64{1, math.MaxFloat64},
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusOptimal, res.Status)
	assert.InDelta(t, 2, res.Value, 1e-10)
}

func TestDropZeroEqualities(t *testing.T) {
	// a zero row with zero rhs is dropped
	a, b, feasible := dropZeroEqualities(mat.NewDense(2, 2, []float64{
		1, 1,
		0, 0,
	}), []float64{2, 0})
	assert.True(t, feasible)
	r, c := a.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{2}, b)

	// a zero row with nonzero rhs can never be satisfied
	_, _, feasible = dropZeroEqualities(mat.NewDense(1, 2, []float64{0, 0}), []float64{1})
	assert.False(t, feasible)

	// all rows zero with zero rhs leaves no equality system
	a, b, feasible = dropZeroEqualities(mat.NewDense(1, 2, []float64{0, 0}), []float64{0})
	assert.True(t, feasible)
	assert.Nil(t, a)
	assert.Nil(t, b)
}
