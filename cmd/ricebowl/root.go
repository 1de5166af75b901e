package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ricebowl",
		Short:         "Survival meal planning from the terminal",
		Long:          "ricebowl runs the survival planning engine offline: soak timing, rice rule checks and full daily plans over the built-in recipe catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSoakCmd())
	root.AddCommand(newPlanCmd())
	root.AddCommand(newRecipesCmd())
	return root
}
