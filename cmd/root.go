package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dingo",
	Short: "dingo analyzes metabolic-network flux polytopes with an LP solver",
	Long: `dingo performs flux balance analysis, flux variability analysis, Chebyshev
ball computation, and redundant-facet removal on polytopes of the form
lb <= v <= ub, Sv = 0, described by plain JSON or YAML arrays.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(NewFbaCmd())
	rootCmd.AddCommand(NewFvaCmd())
	rootCmd.AddCommand(NewReduceCmd())
	rootCmd.AddCommand(NewBallCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
