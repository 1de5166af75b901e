package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ricebowl-app/backend/internal/catalog"
	"github.com/ricebowl-app/backend/internal/models"
)

func newRecipesCmd() *cobra.Command {
	var tier int

	cmd := &cobra.Command{
		Use:   "recipes",
		Short: "List the built-in recipe catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, recipe := range catalog.Recipes {
				if tier > 0 && recipe.TimeTier != tier {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %2d min  %s\n",
					recipe.ID, recipe.TimeTier, recipeTags(recipe))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&tier, "tier", 0, "only show recipes in this time tier (1, 10 or 30)")
	return cmd
}

func recipeTags(r models.Recipe) string {
	var tags []string
	if r.IsRiceFriendly {
		tags = append(tags, "rice")
	}
	if r.IsWet {
		tags = append(tags, "wet")
	}
	if r.IsDry {
		tags = append(tags, "dry")
	}
	if r.IsComfortFood {
		tags = append(tags, "comfort")
	}
	if r.RequiresSoaking {
		tags = append(tags, fmt.Sprintf("soak %dh", r.SoakHours))
	}
	if r.IsPremium {
		tags = append(tags, "premium")
	}
	return strings.Join(tags, ", ")
}
