package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paranoidi/tidyflix/internal/library"
	"github.com/paranoidi/tidyflix/internal/plan"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var explain bool
	var dryRun bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "normalize [directory]...",
		Short: "Rename messy directory names to canonical Title (Year) form",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lib := library.New(cfg, ctx.ensureLogger())
			out := cmd.OutOrStdout()

			dirs := args
			if len(dirs) == 0 {
				dirs = []string{"."}
			}
			reader := bufio.NewReader(cmd.InOrStdin())
			for _, dir := range dirs {
				result, err := lib.Normalize(dir, explain)
				if err != nil {
					return err
				}
				printNormalizeResult(ctx, cmd, result, explain)
				if result.Plan.Empty() {
					fmt.Fprintf(out, "%s: nothing to rename\n", dir)
					continue
				}
				if !yes && !dryRun {
					if !confirm(reader, out, "Apply these changes?", false) {
						fmt.Fprintln(out, "Skipped.")
						continue
					}
				}
				executor := plan.NewExecutor(dir, dryRun, ctx.ensureLogger())
				if _, err := executor.Apply(&result.Plan); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&explain, "explain", "e", false, "Show the rule trail behind each rename")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview renames without applying them")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Apply without prompting")
	return cmd
}

func printNormalizeResult(ctx *commandContext, cmd *cobra.Command, result *library.NormalizeResult, explain bool) {
	out := cmd.OutOrStdout()
	color := ctx.colorEnabled()
	for _, outcome := range result.Outcomes {
		before, after := outcome.Source.RawName, outcome.NewName
		if color {
			before, after = highlighted(outcome.Source.RawName, outcome.NewName)
		}
		fmt.Fprintf(out, "%s\n  -> %s\n", before, after)
		if outcome.Err != nil {
			fmt.Fprintf(out, "  refused: %v\n", outcome.Err)
		}
		if outcome.Conflict != nil {
			fmt.Fprintf(out, "  conflict: removing %s (%s)\n",
				outcome.Conflict.Removed.Path, outcome.Conflict.Reason)
		}
		if explain {
			for _, step := range outcome.Normalized.Trail {
				fmt.Fprintf(out, "    %-20s %q -> %q\n", step.Rule, step.Before, step.After)
			}
		}
	}
}
