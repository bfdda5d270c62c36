package main

import (
	"log/slog"
	"time"

	"github.com/mtuomisto/planfit/internal/errors"
	"github.com/mtuomisto/planfit/internal/readiness"
	"github.com/mtuomisto/planfit/internal/workout"
	"github.com/spf13/cobra"
)

func (app *application) newWeekCmd() *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Generate a seven-day training week",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := app.microcycleParams(flags)
			if err != nil {
				return err
			}
			days, err := workout.GenerateMicrocycle(app.cfg.catalog, params)
			if err != nil {
				return err
			}
			renderWeek(cmd.OutOrStdout(), app.cfg.catalog, days)
			return nil
		},
	}

	app.registerPlanFlags(cmd, &flags)
	return cmd
}

func (app *application) newCycleCmd() *cobra.Command {
	var flags planFlags
	var weeks int

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Generate a multi-week training cycle",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := app.microcycleParams(flags)
			if err != nil {
				return err
			}
			cycle, err := workout.GenerateTrainingCycle(app.cfg.catalog, workout.CycleParams{
				MicrocycleParams: params,
				Weeks:            weeks,
			})
			if err != nil {
				return err
			}
			renderCycle(cmd.OutOrStdout(), app.cfg.catalog, cycle)
			return nil
		},
	}

	app.registerPlanFlags(cmd, &flags)
	cmd.Flags().IntVar(&weeks, "weeks", 4, "number of weeks in the cycle")
	return cmd
}

func (app *application) newTodayCmd() *cobra.Command {
	var flags planFlags
	var input readiness.Input
	var mode string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Generate today's session, adapted to readiness when given",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := app.microcycleParams(flags)
			if err != nil {
				return err
			}

			// The week is anchored on its start date; today's session is the
			// matching offset into it.
			today := params.StartDate
			if flags.start == "" {
				today = startOfDay(time.Now())
				params.StartDate = startOfWeek(today)
			}

			days, err := workout.GenerateMicrocycle(app.cfg.catalog, params)
			if err != nil {
				return err
			}
			offset := int(today.Sub(params.StartDate).Hours() / 24)
			if offset < 0 || offset >= len(days) {
				offset = 0
			}
			day := days[offset]

			if checkInGiven(cmd) {
				score, err := readiness.Calculate(input)
				if err != nil {
					return err
				}
				adaptationMode, err := parseMode(mode)
				if err != nil {
					return err
				}
				renderReadiness(cmd.OutOrStdout(), score)
				day = workout.AdjustForReadiness(day, score.Value, adaptationMode,
					app.cfg.profile.Preferences.ReadinessScaling)
				app.logger.LogAttrs(cmd.Context(), slog.LevelDebug, "session adapted",
					slog.Int("readiness", score.Value),
					slog.String("mode", string(adaptationMode)))
			}

			renderDay(cmd.OutOrStdout(), app.cfg.catalog, day)
			return nil
		},
	}

	app.registerPlanFlags(cmd, &flags)
	cmd.Flags().IntVar(&input.SleepQuality, "sleep", 0, "sleep quality 1-5")
	cmd.Flags().IntVar(&input.Energy, "energy", 0, "energy level 1-5")
	cmd.Flags().IntVar(&input.Soreness, "soreness", 0, "muscle soreness 1-5")
	cmd.Flags().IntVar(&input.Stress, "stress", 0, "stress level 1-5")
	cmd.Flags().StringVar(&mode, "mode", string(app.cfg.profile.Preferences.AdaptationMode),
		"adaptation mode: conservative, automatic or aggressive")
	return cmd
}

// checkInGiven reports whether any readiness flag was set on the command.
func checkInGiven(cmd *cobra.Command) bool {
	for _, name := range []string{"sleep", "energy", "soreness", "stress"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// microcycleParams resolves the shared plan flags into generation parameters.
func (app *application) microcycleParams(flags planFlags) (workout.MicrocycleParams, error) {
	goal, err := parseGoal(flags.goal)
	if err != nil {
		return workout.MicrocycleParams{}, err
	}
	experience, err := parseExperience(flags.experience)
	if err != nil {
		return workout.MicrocycleParams{}, err
	}

	start := startOfWeek(time.Now())
	if flags.start != "" {
		if start, err = time.Parse("2006-01-02", flags.start); err != nil {
			return workout.MicrocycleParams{}, errors.Wrap(err, "parse start date",
				slog.String("start", flags.start))
		}
	}

	return workout.MicrocycleParams{
		UserID:          app.cfg.profile.ID,
		StartDate:       start,
		Goal:            goal,
		Experience:      experience,
		TrainingDays:    flags.days,
		EquipmentIDs:    flags.equipment,
		Units:           app.cfg.profile.Units,
		StrengthNumbers: app.cfg.profile.StrengthNumbers,
	}, nil
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
