package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/mtuomisto/planfit/internal/catalog"
	"github.com/mtuomisto/planfit/internal/envstruct"
	"github.com/mtuomisto/planfit/internal/errors"
	"github.com/mtuomisto/planfit/internal/workout"
)

// application carries the dependencies shared by the commands.
type application struct {
	logger *slog.Logger
	cfg    config
}

// fileConfig is the on-disk shape of ~/.config/planfit/config.toml.
type fileConfig struct {
	CatalogPath string             `toml:"catalog_path"`
	Profile     profileTOML        `toml:"profile"`
	Preferences preferencesTOML    `toml:"preferences"`
	Strength    map[string]float64 `toml:"strength_numbers"`
}

type profileTOML struct {
	ID          string `toml:"id"`
	DisplayName string `toml:"display_name"`
	Units       string `toml:"units"`
}

type preferencesTOML struct {
	Goal             string   `toml:"goal"`
	Experience       string   `toml:"experience"`
	TrainingDays     int      `toml:"training_days"`
	TimeAvailability string   `toml:"time_availability"`
	Equipment        []string `toml:"equipment"`
	AdaptationMode   string   `toml:"adaptation_mode"`
	ReadinessScaling *bool    `toml:"readiness_scaling"`
}

// envConfig are the environment overrides on top of the config file.
type envConfig struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string `env:"PLANFIT_CONFIG" envDefault:""`
	// Units overrides the configured measurement system.
	Units string `env:"PLANFIT_UNITS" envDefault:""`
}

// config is the resolved runtime configuration.
type config struct {
	profile workout.UserProfile
	catalog *catalog.Catalog
}

// loadConfig resolves the config file, applies environment overrides and
// builds the exercise catalog. A missing config file falls back to defaults
// so the CLI works out of the box.
func loadConfig(lookupEnv func(string) (string, bool)) (config, error) {
	var env envConfig
	if err := envstruct.Populate(&env, lookupEnv); err != nil {
		return config{}, errors.Wrap(err, "populate env config")
	}

	path := env.ConfigPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return config{}, errors.Wrap(err, "resolve home directory")
		}
		path = filepath.Join(home, ".config", "planfit", "config.toml")
	}

	var file fileConfig
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if !os.IsNotExist(err) {
			return config{}, errors.Wrap(err, "parse config file", slog.String("path", path))
		}
	}

	if env.Units != "" {
		file.Profile.Units = env.Units
	}

	profile, err := resolveProfile(file)
	if err != nil {
		return config{}, err
	}

	cat := catalog.Default()
	if file.CatalogPath != "" {
		extra, err := catalog.LoadTOML(file.CatalogPath)
		if err != nil {
			return config{}, errors.Wrap(err, "load extra catalog", slog.String("path", file.CatalogPath))
		}
		cat = cat.Merge(extra...)
	}

	return config{profile: profile, catalog: cat}, nil
}

// resolveProfile fills defaults and validates the enum-valued fields.
func resolveProfile(file fileConfig) (workout.UserProfile, error) {
	profile := workout.UserProfile{
		ID:          defaultString(file.Profile.ID, "local"),
		DisplayName: file.Profile.DisplayName,
		Preferences: workout.Preferences{
			TrainingDays:     file.Preferences.TrainingDays,
			EquipmentIDs:     file.Preferences.Equipment,
			ReadinessScaling: true,
		},
		StrengthNumbers: file.Strength,
	}
	if profile.Preferences.TrainingDays == 0 {
		profile.Preferences.TrainingDays = 4
	}
	if file.Preferences.ReadinessScaling != nil {
		profile.Preferences.ReadinessScaling = *file.Preferences.ReadinessScaling
	}

	var err error
	if profile.Units, err = parseUnits(defaultString(file.Profile.Units, "metric")); err != nil {
		return workout.UserProfile{}, err
	}
	if profile.Preferences.Goal, err = parseGoal(defaultString(file.Preferences.Goal, "hybrid")); err != nil {
		return workout.UserProfile{}, err
	}
	if profile.Preferences.Experience, err = parseExperience(defaultString(file.Preferences.Experience, "intermediate")); err != nil {
		return workout.UserProfile{}, err
	}
	if profile.Preferences.TimeAvailability, err = parseTimeAvailability(defaultString(file.Preferences.TimeAvailability, "standard")); err != nil {
		return workout.UserProfile{}, err
	}
	if profile.Preferences.AdaptationMode, err = parseMode(defaultString(file.Preferences.AdaptationMode, "automatic")); err != nil {
		return workout.UserProfile{}, err
	}
	return profile, nil
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func parseGoal(v string) (workout.Goal, error) {
	switch goal := workout.Goal(v); goal {
	case workout.GoalStrength, workout.GoalConditioning, workout.GoalHybrid, workout.GoalGeneral:
		return goal, nil
	default:
		return "", errors.Errorf("unknown goal %q", v)
	}
}

func parseExperience(v string) (workout.Experience, error) {
	switch experience := workout.Experience(v); experience {
	case workout.ExperienceBeginner, workout.ExperienceIntermediate, workout.ExperienceAdvanced:
		return experience, nil
	default:
		return "", errors.Errorf("unknown experience level %q", v)
	}
}

func parseTimeAvailability(v string) (workout.TimeAvailability, error) {
	switch availability := workout.TimeAvailability(v); availability {
	case workout.TimeShort, workout.TimeStandard, workout.TimeExtended:
		return availability, nil
	default:
		return "", errors.Errorf("unknown time availability %q", v)
	}
}

func parseMode(v string) (workout.AdaptationMode, error) {
	switch mode := workout.AdaptationMode(v); mode {
	case workout.ModeConservative, workout.ModeAutomatic, workout.ModeAggressive:
		return mode, nil
	default:
		return "", errors.Errorf("unknown adaptation mode %q", v)
	}
}

func parseUnits(v string) (workout.Units, error) {
	switch units := workout.Units(v); units {
	case workout.UnitsMetric, workout.UnitsImperial:
		return units, nil
	default:
		return "", errors.Errorf("unknown units %q", v)
	}
}
