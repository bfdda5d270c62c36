package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mtuomisto/planfit/internal/errors"
	"github.com/mtuomisto/planfit/internal/records"
	"github.com/spf13/cobra"
)

// sessionTOML is the file representation of a logged session:
//
//	id = "2026-03-04-evening"
//	date = 2026-03-04
//
//	[[set]]
//	block = "strength"
//	exercise = "back_squat"
//	weight = 102.5
//	reps = 5
type sessionTOML struct {
	ID                 string          `toml:"id"`
	Date               time.Time       `toml:"date"`
	ConditioningRounds int             `toml:"conditioning_rounds"`
	Sets               []loggedSetTOML `toml:"set"`
}

type loggedSetTOML struct {
	Block       string    `toml:"block"`
	Exercise    string    `toml:"exercise"`
	Weight      float64   `toml:"weight"`
	Reps        int       `toml:"reps"`
	CompletedAt time.Time `toml:"completed_at"`
}

type recordsTOML struct {
	Records []recordTOML `toml:"record"`
}

type recordTOML struct {
	Exercise     string    `toml:"exercise"`
	Estimated1RM float64   `toml:"estimated_1rm"`
	Weight       float64   `toml:"weight"`
	Reps         int       `toml:"reps"`
	AchievedAt   time.Time `toml:"achieved_at"`
}

func (app *application) newPRsCmd() *cobra.Command {
	var sessionPath string
	var recordsPath string

	cmd := &cobra.Command{
		Use:   "prs",
		Short: "Detect new personal records in a logged session",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := loadSession(sessionPath)
			if err != nil {
				return err
			}
			if err := records.ValidateSession(session, app.cfg.catalog.Has); err != nil {
				return err
			}

			var existing []records.PersonalRecord
			if recordsPath != "" {
				if existing, err = loadRecords(recordsPath); err != nil {
					return err
				}
			}

			newRecords := records.DetectNewPRs(session, existing)
			app.logger.LogAttrs(cmd.Context(), slog.LevelDebug, "pr detection finished",
				slog.Int("sets", len(session.Sets)),
				slog.Int("new_records", len(newRecords)))
			renderPRs(cmd.OutOrStdout(), app.cfg.catalog, newRecords)
			return nil
		},
	}

	cmd.Flags().StringVar(&sessionPath, "session", "", "path to the session log TOML file")
	cmd.Flags().StringVar(&recordsPath, "records", "", "path to the existing records TOML file")
	_ = cmd.MarkFlagRequired("session")
	return cmd
}

func loadSession(path string) (records.SessionLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return records.SessionLog{}, errors.Wrap(err, "read session file")
	}

	var parsed sessionTOML
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return records.SessionLog{}, errors.Wrap(err, "parse session file", slog.String("path", path))
	}

	session := records.SessionLog{
		ID:                 parsed.ID,
		Date:               parsed.Date,
		ConditioningRounds: parsed.ConditioningRounds,
		Sets:               make([]records.CompletedSet, len(parsed.Sets)),
	}
	for i, set := range parsed.Sets {
		session.Sets[i] = records.CompletedSet{
			BlockID:     set.Block,
			ExerciseID:  set.Exercise,
			SetIndex:    i,
			Weight:      set.Weight,
			Reps:        set.Reps,
			CompletedAt: set.CompletedAt,
		}
	}
	return session, nil
}

func loadRecords(path string) ([]records.PersonalRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read records file")
	}

	var parsed recordsTOML
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.Wrap(err, "parse records file", slog.String("path", path))
	}

	existing := make([]records.PersonalRecord, len(parsed.Records))
	for i, record := range parsed.Records {
		existing[i] = records.PersonalRecord{
			ExerciseID:   record.Exercise,
			Estimated1RM: record.Estimated1RM,
			Weight:       record.Weight,
			Reps:         record.Reps,
			AchievedAt:   record.AchievedAt,
		}
	}
	return existing, nil
}
