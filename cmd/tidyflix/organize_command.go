package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paranoidi/tidyflix/internal/library"
	"github.com/paranoidi/tidyflix/internal/plan"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "organize [directory]",
		Short: "Move loose media files into their own directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lib := library.New(cfg, ctx.ensureLogger())
			out := cmd.OutOrStdout()
			dir := targetDir(args)

			result, err := lib.Organize(dir)
			if err != nil {
				return err
			}
			if len(result.Files) == 0 {
				fmt.Fprintln(out, "No loose media files.")
				return nil
			}
			for _, file := range result.Files {
				if file.Skipped {
					fmt.Fprintf(out, "skip %s (directory %q exists)\n", file.Path, file.DirName)
				} else {
					fmt.Fprintf(out, "%s -> %s/\n", file.Path, file.DirName)
				}
			}
			if result.Plan.Empty() {
				return nil
			}

			if !yes && !dryRun {
				if !confirm(bufio.NewReader(cmd.InOrStdin()), out, "Move these files?", false) {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}
			executor := plan.NewExecutor(dir, dryRun, ctx.ensureLogger())
			_, err = executor.Apply(&result.Plan)
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview moves without applying them")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Move without prompting")
	return cmd
}
