package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hkarlsen/truthtab/src/boolexpr"
	"github.com/hkarlsen/truthtab/src/config"
	"github.com/hkarlsen/truthtab/src/truthtable"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		noColor    bool
		useSolver  bool
		maxVars    int
	)

	cmd := &cobra.Command{
		Use:   "truthtab <formula>",
		Short: "Print the truth table of a propositional formula",
		Long: `Print the truth table of a propositional formula.

Formulas use ~ & | -> <-> with parentheses, single lowercase letters as
variables and T/F as constants. Quote the formula so the shell passes it
through intact:

  truthtab "a -> (b & ~c)"`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], configPath, noColor, useSolver, maxVars)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", ".truthtab.yaml", "path to the policy config file")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored truth values")
	cmd.Flags().BoolVar(&useSolver, "solver", false, "decide each row through the SAT solver instead of direct evaluation")
	cmd.Flags().IntVar(&maxVars, "max-vars", 0, "maximum number of distinct variables, overrides the config file")

	return cmd
}

func run(cmd *cobra.Command, formula, configPath string, noColor, useSolver bool, maxVars int) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	expr, registry, err := boolexpr.Parse(formula)
	if err != nil {
		return fmt.Errorf("failed to parse the supplied argument: %w", err)
	}
	slog.Debug("parsed formula",
		"formula", formula,
		"tree", expr.String(),
		"variables", registry.Len(),
	)

	var opts []truthtable.Option
	if useSolver {
		opts = append(opts, truthtable.WithEvaluator(boolexpr.SolverEvaluator{}))
	}
	limit := cfg.MaxVariables
	if maxVars > 0 {
		limit = maxVars
	}
	if limit > 0 {
		opts = append(opts, truthtable.WithMaxVariables(limit))
	}

	table, err := truthtable.New(expr, registry, formula, opts...)
	if err != nil {
		return err
	}

	renderer := truthtable.NewRenderer()
	renderer.SetOutput(cmd.OutOrStdout())
	if noColor || cfg.NoColor {
		renderer.DisableColor()
	}
	return renderer.Render(table)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
