package main

import (
	"github.com/spf13/cobra"

	"github.com/KeShih/dingo/pkg/flux"
	"github.com/KeShih/dingo/pkg/solver"
)

type fbaOpts struct {
	in  string
	out string
}

var fbaopts = fbaOpts{}

func NewFbaCmd() *cobra.Command {

	fbaCmd := &cobra.Command{
		Use:   "fba",
		Short: "perform flux balance analysis on a polytope description",
		RunE: func(cmd *cobra.Command, args []string) error {
			polytope := &flux.Polytope{}
			if err := readInput(fbaopts.in, polytope); err != nil {
				return err
			}
			if err := polytope.Validate(); err != nil {
				return err
			}

			point, value, err := flux.FBA(solver.NewSimplex(), polytope.Lower, polytope.Upper, polytope.Matrix(), polytope.Objective)
			if err != nil {
				return err
			}

			return writeOutput(fbaopts.out, struct {
				OptValue float64   `json:"optimal_value"`
				OptPoint []float64 `json:"optimal_point"`
			}{value, point})
		},
	}

	fbaCmd.Flags().StringVarP(&fbaopts.in, "input", "i", "", "polytope description file (JSON or YAML)")
	fbaCmd.Flags().StringVarP(&fbaopts.out, "output", "o", "", "result file, stdout if empty")
	fbaCmd.MarkFlagRequired("input")
	return fbaCmd
}
