package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mtuomisto/planfit/internal/workout"
)

func lookupFromMap(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := loadConfig(lookupFromMap(map[string]string{"PLANFIT_CONFIG": path}))
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}

	want := workout.Preferences{
		Goal:             workout.GoalHybrid,
		Experience:       workout.ExperienceIntermediate,
		TrainingDays:     4,
		TimeAvailability: workout.TimeStandard,
		AdaptationMode:   workout.ModeAutomatic,
		ReadinessScaling: true,
	}
	if diff := cmp.Diff(want, cfg.profile.Preferences); diff != "" {
		t.Errorf("default preferences mismatch (-want +got):\n%s", diff)
	}
	if cfg.profile.Units != workout.UnitsMetric {
		t.Errorf("default units = %s, want metric", cfg.profile.Units)
	}
	if cfg.catalog.Len() == 0 {
		t.Error("default catalog is empty")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
[profile]
id = "tester"
units = "imperial"

[preferences]
goal = "strength"
experience = "advanced"
training_days = 5
equipment = ["barbell", "bench"]
adaptation_mode = "aggressive"
readiness_scaling = false

[strength_numbers]
back_squat = 140.0
`)

	cfg, err := loadConfig(lookupFromMap(map[string]string{"PLANFIT_CONFIG": path}))
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}

	if cfg.profile.ID != "tester" {
		t.Errorf("profile id = %s, want tester", cfg.profile.ID)
	}
	if cfg.profile.Units != workout.UnitsImperial {
		t.Errorf("units = %s, want imperial", cfg.profile.Units)
	}
	if cfg.profile.Preferences.Goal != workout.GoalStrength {
		t.Errorf("goal = %s, want strength", cfg.profile.Preferences.Goal)
	}
	if cfg.profile.Preferences.ReadinessScaling {
		t.Error("readiness scaling = true, want false")
	}
	if got := cfg.profile.StrengthNumbers["back_squat"]; got != 140 {
		t.Errorf("back_squat 1RM = %v, want 140", got)
	}
}

func TestLoadConfigUnitsOverride(t *testing.T) {
	path := writeConfigFile(t, `
[profile]
units = "metric"
`)

	cfg, err := loadConfig(lookupFromMap(map[string]string{
		"PLANFIT_CONFIG": path,
		"PLANFIT_UNITS":  "imperial",
	}))
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}

	if cfg.profile.Units != workout.UnitsImperial {
		t.Errorf("units = %s, want env override imperial", cfg.profile.Units)
	}
}

func TestLoadConfigRejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{name: "goal", contents: "[preferences]\ngoal = \"bodybuilding\"\n"},
		{name: "experience", contents: "[preferences]\nexperience = \"elite\"\n"},
		{name: "mode", contents: "[preferences]\nadaptation_mode = \"yolo\"\n"},
		{name: "units", contents: "[profile]\nunits = \"stone\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.contents)
			if _, err := loadConfig(lookupFromMap(map[string]string{"PLANFIT_CONFIG": path})); err == nil {
				t.Error("loadConfig() succeeded, want error")
			}
		})
	}
}
