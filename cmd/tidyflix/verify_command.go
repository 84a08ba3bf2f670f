package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paranoidi/tidyflix/internal/library"
	"github.com/paranoidi/tidyflix/internal/plan"
)

func newVerifyCommand(ctx *commandContext) *cobra.Command {
	var deleteOffenders bool
	var dryRun bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "verify [directory]",
		Short: "Check that every movie directory actually contains media",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lib := library.New(cfg, ctx.ensureLogger())
			out := cmd.OutOrStdout()
			dir := targetDir(args)

			result, err := lib.Verify(dir, deleteOffenders)
			if err != nil {
				return err
			}
			if len(result.Offenders) == 0 {
				fmt.Fprintf(out, "All %d directories contain media.\n", result.Checked)
				return nil
			}
			for _, offender := range result.Offenders {
				if offender.Protected {
					fmt.Fprintf(out, "warning: %s has no media but contains archives; kept\n", offender.Path)
				} else {
					fmt.Fprintf(out, "no media: %s\n", offender.Path)
				}
			}
			if !deleteOffenders || result.Plan.Empty() {
				return nil
			}

			if !yes && !dryRun {
				if !confirm(bufio.NewReader(cmd.InOrStdin()), out, "Delete directories without media?", false) {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}
			executor := plan.NewExecutor(dir, dryRun, ctx.ensureLogger())
			_, err = executor.Apply(&result.Plan)
			return err
		},
	}

	cmd.Flags().BoolVar(&deleteOffenders, "delete", false, "Delete directories that contain no media")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report without deleting")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without prompting")
	return cmd
}
