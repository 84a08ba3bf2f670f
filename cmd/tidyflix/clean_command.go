package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paranoidi/tidyflix/internal/library"
	"github.com/paranoidi/tidyflix/internal/plan"
)

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var yes bool

	cmd := &cobra.Command{
		Use:   "clean [directory]",
		Short: "Remove junk files (txt, exe, url) from the library",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			lib := library.New(cfg, ctx.ensureLogger())
			out := cmd.OutOrStdout()
			dir := targetDir(args)

			result, err := lib.Clean(dir)
			if err != nil {
				return err
			}
			if len(result.Files) == 0 {
				fmt.Fprintln(out, "Nothing to clean.")
				return nil
			}
			for _, file := range result.Files {
				fmt.Fprintf(out, "%s (%s)\n", file.Path, formatSize(file.SizeBytes))
			}
			fmt.Fprintf(out, "%d files, %s total\n", len(result.Files), formatSize(result.TotalSizeBytes))

			if !yes && !dryRun {
				if !confirm(bufio.NewReader(cmd.InOrStdin()), out, "Delete these files?", false) {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}
			executor := plan.NewExecutor(dir, dryRun, ctx.ensureLogger())
			_, err = executor.Apply(&result.Plan)
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List junk files without deleting them")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without prompting")
	return cmd
}
