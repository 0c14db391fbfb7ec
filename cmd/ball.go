package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/KeShih/dingo/pkg/flux"
	"github.com/KeShih/dingo/pkg/solver"
)

type ballOpts struct {
	in  string
	out string
}

var ballopts = ballOpts{}

// ballInput describes a polytope in inequality form Ax <= b.
type ballInput struct {
	A [][]float64 `json:"A"`
	B []float64   `json:"b"`
}

func NewBallCmd() *cobra.Command {

	ballCmd := &cobra.Command{
		Use:   "ball",
		Short: "compute the largest inscribed ball of a polytope Ax <= b",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &ballInput{}
			if err := readInput(ballopts.in, input); err != nil {
				return err
			}
			if len(input.A) == 0 {
				return fmt.Errorf("input contains no inequality rows")
			}

			n := len(input.A[0])
			data := make([]float64, 0, len(input.A)*n)
			for i, row := range input.A {
				if len(row) != n {
					return fmt.Errorf("%w: row %d has %d entries, expected %d", solver.ErrDimensionMismatch, i, len(row), n)
				}
				data = append(data, row...)
			}

			center, radius, err := flux.InnerBall(solver.NewSimplex(), mat.NewDense(len(input.A), n, data), input.B)
			if err != nil {
				return err
			}

			return writeOutput(ballopts.out, struct {
				Center []float64 `json:"center"`
				Radius float64   `json:"radius"`
			}{center, radius})
		},
	}

	ballCmd.Flags().StringVarP(&ballopts.in, "input", "i", "", "polytope inequality file (JSON or YAML)")
	ballCmd.Flags().StringVarP(&ballopts.out, "output", "o", "", "result file, stdout if empty")
	ballCmd.MarkFlagRequired("input")
	return ballCmd
}
