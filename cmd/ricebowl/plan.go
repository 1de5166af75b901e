package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ricebowl-app/backend/internal/catalog"
	"github.com/ricebowl-app/backend/internal/models"
	"github.com/ricebowl-app/backend/internal/planner"
)

func newPlanCmd() *cobra.Command {
	var (
		pantryFile string
		date       string
		clock      string
		rice       bool
		premium    bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a survival plan for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if date == "" {
				date = now.Format("2006-01-02")
			}
			if clock == "" {
				clock = now.Format("15:04")
			}

			var pantry []models.PantryItem
			if pantryFile != "" {
				raw, err := os.ReadFile(pantryFile)
				if err != nil {
					return fmt.Errorf("read pantry file: %w", err)
				}
				if err := json.Unmarshal(raw, &pantry); err != nil {
					return fmt.Errorf("parse pantry file: %w", err)
				}
			}

			recipes := catalog.Recipes
			if !premium {
				recipes = nil
				for _, r := range catalog.Recipes {
					if !r.IsPremium {
						recipes = append(recipes, r)
					}
				}
			}

			out, err := planner.GenerateSurvivalPlan(planner.Input{
				User:             models.User{RicePreference: rice, IsPremium: premium},
				PantryItems:      pantry,
				AvailableRecipes: recipes,
				CurrentDate:      date,
				CurrentTime:      clock,
			})
			if err != nil {
				return err
			}

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(out)
			}

			printPlan(cmd, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&pantryFile, "pantry", "", "path to a JSON file of pantry items")
	cmd.Flags().StringVar(&date, "date", "", "plan date as YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&clock, "time", "", "current time as HH:mm (default: now)")
	cmd.Flags().BoolVar(&rice, "rice", true, "apply the rice rule")
	cmd.Flags().BoolVar(&premium, "premium", false, "include premium recipes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the full plan as JSON")
	return cmd
}

func printPlan(cmd *cobra.Command, out *planner.Output) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Plan for %s\n", out.DailyPlan.Date)
	fmt.Fprintf(w, "  Lunch:  %s\n", recipeName(out.DailyPlan.LunchRecipeID))
	fmt.Fprintf(w, "  Dinner: %s\n", recipeName(out.DailyPlan.DinnerRecipeID))
	if out.DailyPlan.RiceRuleAutoAdded != "" {
		fmt.Fprintf(w, "  Added:  %s (rice rule)\n", recipeName(out.DailyPlan.RiceRuleAutoAdded))
	}

	if len(out.GroceryList) > 0 {
		fmt.Fprintln(w, "Buy tonight:")
		for _, task := range out.GroceryList {
			fmt.Fprintf(w, "  - %g %s %s\n", task.Quantity, task.Unit, task.Ingredient)
		}
	}
	for _, prep := range out.PrepTasks {
		fmt.Fprintf(w, "Prep: %s at %s\n", prep.Description, prep.ScheduledTime)
	}
	for _, v := range out.RiceRuleViolations {
		if v.AutoFixRecipeID == "" {
			fmt.Fprintf(w, "Warning: %s\n", v.Message)
		}
	}
}

func recipeName(id string) string {
	if id == "" {
		return "(nothing planned)"
	}
	if recipe, ok := catalog.ByID(id); ok {
		return recipe.Name
	}
	return id
}
