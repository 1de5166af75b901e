package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ricebowl-app/backend/internal/planner"
)

func newSoakCmd() *cobra.Command {
	var (
		hours    int
		meal     string
		clock    string
		mealTime string
	)

	cmd := &cobra.Command{
		Use:   "soak",
		Short: "Work out when to start soaking for a meal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if clock == "" {
				clock = time.Now().Format("15:04")
			}

			reminder, err := planner.CalculateSoakReminder(hours, planner.MealType(meal), clock, mealTime)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reminder.Message)

			tooLate, err := planner.IsTooLateToSoak(hours, planner.MealType(meal), clock)
			if err != nil {
				return err
			}
			if tooLate.TooLate {
				fmt.Fprintln(cmd.OutOrStdout(), tooLate.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&hours, "hours", 8, "soak duration in hours")
	cmd.Flags().StringVar(&meal, "meal", "dinner", "target meal (breakfast, lunch, snack, dinner)")
	cmd.Flags().StringVar(&clock, "time", "", "current time as HH:mm (default: now)")
	cmd.Flags().StringVar(&mealTime, "meal-time", "", "override the meal's serving time as HH:mm")
	return cmd
}
