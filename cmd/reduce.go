package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/KeShih/dingo/pkg/flux"
	"github.com/KeShih/dingo/pkg/solver"
)

type reduceOpts struct {
	in            string
	out           string
	optPercentage float64
}

var reduceopts = reduceOpts{}

func NewReduceCmd() *cobra.Command {

	reduceCmd := &cobra.Command{
		Use:   "reduce",
		Short: "remove redundant facets from a polytope description",
		Long: `reduce proves per-coordinate bound facets redundant and drops them, and
converts coordinates whose feasible width collapses into equality rows. The
output system describes the same feasible region as the input restricted by
the optimality cutoff.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			polytope := &flux.Polytope{}
			if err := readInput(reduceopts.in, polytope); err != nil {
				return err
			}
			if err := polytope.Validate(); err != nil {
				return err
			}

			optPercentage := reduceopts.optPercentage
			if !cmd.Flags().Changed("opt-percentage") && polytope.OptPercentage != 0 {
				optPercentage = polytope.OptPercentage
			}

			logrus.Info("Reducing polytope facets.")
			reducer := flux.NewReducer(solver.NewSimplex())
			res, err := reducer.Reduce(polytope.Lower, polytope.Upper, polytope.Matrix(), polytope.Objective, optPercentage)
			if err != nil {
				return err
			}

			return writeOutput(reduceopts.out, struct {
				A   [][]float64 `json:"A"`
				B   []float64   `json:"b"`
				Aeq [][]float64 `json:"Aeq"`
				Beq []float64   `json:"beq"`
			}{denseRows(res.A), res.B, denseRows(res.Aeq), res.Beq})
		},
	}

	reduceCmd.Flags().StringVarP(&reduceopts.in, "input", "i", "", "polytope description file (JSON or YAML)")
	reduceCmd.Flags().StringVarP(&reduceopts.out, "output", "o", "", "result file, stdout if empty")
	reduceCmd.Flags().Float64Var(&reduceopts.optPercentage, "opt-percentage", 100, "admit solutions within this percentage of the optimum")
	reduceCmd.MarkFlagRequired("input")
	return reduceCmd
}
