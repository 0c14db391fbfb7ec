package main

import (
	"github.com/spf13/cobra"

	"github.com/KeShih/dingo/pkg/flux"
	"github.com/KeShih/dingo/pkg/solver"
)

type fvaOpts struct {
	in            string
	out           string
	optPercentage float64
}

var fvaopts = fvaOpts{}

func NewFvaCmd() *cobra.Command {

	fvaCmd := &cobra.Command{
		Use:   "fva",
		Short: "perform flux variability analysis on a polytope description",
		RunE: func(cmd *cobra.Command, args []string) error {
			polytope := &flux.Polytope{}
			if err := readInput(fvaopts.in, polytope); err != nil {
				return err
			}
			if err := polytope.Validate(); err != nil {
				return err
			}

			optPercentage := fvaopts.optPercentage
			if !cmd.Flags().Changed("opt-percentage") && polytope.OptPercentage != 0 {
				optPercentage = polytope.OptPercentage
			}

			res, err := flux.FVA(solver.NewSimplex(), polytope.Lower, polytope.Upper, polytope.Matrix(), polytope.Objective, optPercentage)
			if err != nil {
				return err
			}

			return writeOutput(fvaopts.out, struct {
				MinFlux  []float64 `json:"min_fluxes"`
				MaxFlux  []float64 `json:"max_fluxes"`
				OptValue float64   `json:"optimal_value"`
				OptPoint []float64 `json:"optimal_point"`
			}{res.MinFlux, res.MaxFlux, res.OptValue, res.OptPoint})
		},
	}

	fvaCmd.Flags().StringVarP(&fvaopts.in, "input", "i", "", "polytope description file (JSON or YAML)")
	fvaCmd.Flags().StringVarP(&fvaopts.out, "output", "o", "", "result file, stdout if empty")
	fvaCmd.Flags().Float64Var(&fvaopts.optPercentage, "opt-percentage", 100, "admit solutions within this percentage of the optimum")
	fvaCmd.MarkFlagRequired("input")
	return fvaCmd
}
