package main

import (
	"log/slog"

	"github.com/mtuomisto/planfit/internal/readiness"
	"github.com/spf13/cobra"
)

func (app *application) newReadinessCmd() *cobra.Command {
	var input readiness.Input

	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Score today's readiness from a four-question check-in",
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := readiness.Calculate(input)
			if err != nil {
				return err
			}
			app.logger.LogAttrs(cmd.Context(), slog.LevelDebug, "readiness calculated",
				slog.Int("score", score.Value))
			renderReadiness(cmd.OutOrStdout(), score)
			return nil
		},
	}

	cmd.Flags().IntVar(&input.SleepQuality, "sleep", 3, "sleep quality 1-5")
	cmd.Flags().IntVar(&input.Energy, "energy", 3, "energy level 1-5")
	cmd.Flags().IntVar(&input.Soreness, "soreness", 3, "muscle soreness 1-5 (5 = very sore)")
	cmd.Flags().IntVar(&input.Stress, "stress", 3, "stress level 1-5 (5 = very stressed)")
	return cmd
}
