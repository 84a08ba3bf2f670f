package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var noColorFlag bool

	ctx := newCommandContext(&configFlag, &noColorFlag)

	opts := &duplicatesOptions{}
	rootCmd := &cobra.Command{
		Use:           "tidyflix [directory]",
		Short:         "Curate a movie directory: find duplicates, score quality, normalize names",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDuplicates(cmd, ctx, targetDir(args), opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	rootCmd.Flags().StringSliceVarP(&opts.languages, "languages", "l", nil, "Only display these subtitle languages (e.g. en,fi)")
	rootCmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Keep the top-ranked entry in every group without prompting")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Show what would be deleted without touching anything")

	rootCmd.AddCommand(newNormalizeCommand(ctx))
	rootCmd.AddCommand(newCleanCommand(ctx))
	rootCmd.AddCommand(newVerifyCommand(ctx))
	rootCmd.AddCommand(newOrganizeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}

func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
