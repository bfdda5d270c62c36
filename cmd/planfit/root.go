package main

import (
	"github.com/spf13/cobra"
)

func (app *application) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "planfit",
		Short:         "Adaptive training plans from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		app.newReadinessCmd(),
		app.newWeekCmd(),
		app.newCycleCmd(),
		app.newTodayCmd(),
		app.newPRsCmd(),
	)
	return root
}

// planFlags are the generation inputs shared by the week, cycle and today
// commands. Unset flags fall back to the configured preferences.
type planFlags struct {
	goal       string
	experience string
	days       int
	start      string
	equipment  []string
}

func (app *application) registerPlanFlags(cmd *cobra.Command, flags *planFlags) {
	prefs := app.cfg.profile.Preferences
	cmd.Flags().StringVar(&flags.goal, "goal", string(prefs.Goal), "training goal: strength, conditioning, hybrid or general")
	cmd.Flags().StringVar(&flags.experience, "experience", string(prefs.Experience), "experience level: beginner, intermediate or advanced")
	cmd.Flags().IntVar(&flags.days, "days", prefs.TrainingDays, "training days per week (3-7)")
	cmd.Flags().StringVar(&flags.start, "start", "", "start date as YYYY-MM-DD (default today)")
	cmd.Flags().StringSliceVar(&flags.equipment, "equipment", prefs.EquipmentIDs, "available equipment ids")
}
