package workout

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/mtuomisto/planfit/internal/catalog"
	"github.com/mtuomisto/planfit/internal/errors"
)

func microcycleParams(trainingDays int) MicrocycleParams {
	return MicrocycleParams{
		UserID:       "user-1",
		StartDate:    time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), // Monday
		Goal:         GoalHybrid,
		Experience:   ExperienceIntermediate,
		TrainingDays: trainingDays,
		EquipmentIDs: []string{catalog.EquipmentBarbell, catalog.EquipmentDumbbell},
		Units:        UnitsMetric,
		StrengthNumbers: map[string]float64{
			"back_squat": 140,
			"deadlift":   180,
		},
	}
}

func TestGenerateMicrocycleShape(t *testing.T) {
	for trainingDays := MinTrainingDays; trainingDays <= MaxTrainingDays; trainingDays++ {
		t.Run(string(rune('0'+trainingDays))+" training days", func(t *testing.T) {
			days, err := GenerateMicrocycle(catalog.Default(), microcycleParams(trainingDays))
			if err != nil {
				t.Fatalf("GenerateMicrocycle() unexpected error: %v", err)
			}

			if len(days) != DaysPerMicrocycle {
				t.Fatalf("got %d days, want %d", len(days), DaysPerMicrocycle)
			}

			pattern := weekFocusPatterns[trainingDays]
			trainingCount := 0
			for offset, day := range days {
				if day.DayIndex != offset {
					t.Errorf("day %d has index %d", offset, day.DayIndex)
				}
				wantDate := time.Date(2026, 3, 2+offset, 0, 0, 0, 0, time.UTC)
				if !day.Date.Equal(wantDate) {
					t.Errorf("day %d has date %s, want %s", offset, formatDate(day.Date), formatDate(wantDate))
				}

				wantFocus, training := pattern[offset]
				if !training {
					wantFocus = FocusRest
				}
				if diff := cmp.Diff([]Focus{wantFocus}, day.FocusTags); diff != "" {
					t.Errorf("day %d focus mismatch (-want +got):\n%s", offset, diff)
				}

				if training {
					trainingCount++
					if day.IsRestDay() {
						t.Errorf("day %d is a training day but has no blocks", offset)
					}
					if day.EstimatedDurationMinutes != focusDurations[wantFocus] {
						t.Errorf("day %d duration = %d, want %d",
							offset, day.EstimatedDurationMinutes, focusDurations[wantFocus])
					}
				} else {
					if !day.IsRestDay() {
						t.Errorf("day %d is a rest day but has blocks", offset)
					}
					if day.EstimatedDurationMinutes != 0 {
						t.Errorf("rest day %d has duration %d", offset, day.EstimatedDurationMinutes)
					}
				}

				if day.AdjustedForReadiness {
					t.Errorf("day %d already marked readiness-adjusted", offset)
				}
			}

			// At most six offsets are ever assigned: a 7-day request still
			// leaves the final offset for recovery.
			wantTraining := min(trainingDays, 6)
			if trainingCount != wantTraining {
				t.Errorf("got %d training days, want %d", trainingCount, wantTraining)
			}
		})
	}
}

func TestGenerateMicrocycleFocusGoals(t *testing.T) {
	days, err := GenerateMicrocycle(catalog.Default(), microcycleParams(3))
	if err != nil {
		t.Fatalf("GenerateMicrocycle() unexpected error: %v", err)
	}

	// 3-day pattern: mixed on offset 0, strength on 2, conditioning on 4.
	strengthDay := days[2]
	conditioning := findBlock(t, strengthDay.Blocks, BlockConditioning)
	if conditioning.Conditioning.Mode != ConditioningSteady {
		t.Errorf("strength-focus day conditioning mode = %s, want steady", conditioning.Conditioning.Mode)
	}

	conditioningDay := days[4]
	conditioning = findBlock(t, conditioningDay.Blocks, BlockConditioning)
	if conditioning.Conditioning.Mode != ConditioningInterval {
		t.Errorf("conditioning-focus day mode = %s, want interval", conditioning.Conditioning.Mode)
	}
}

func TestGenerateMicrocycleDeterministicIDs(t *testing.T) {
	first, err := GenerateMicrocycle(catalog.Default(), microcycleParams(4))
	if err != nil {
		t.Fatalf("GenerateMicrocycle() unexpected error: %v", err)
	}
	second, err := GenerateMicrocycle(catalog.Default(), microcycleParams(4))
	if err != nil {
		t.Fatalf("GenerateMicrocycle() unexpected error: %v", err)
	}

	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("day %d id changed between runs: %s vs %s", i, first[i].ID, second[i].ID)
		}
		if first[i].ID == "" {
			t.Errorf("day %d has empty id", i)
		}
	}

	otherUser := microcycleParams(4)
	otherUser.UserID = "user-2"
	third, err := GenerateMicrocycle(catalog.Default(), otherUser)
	if err != nil {
		t.Fatalf("GenerateMicrocycle() unexpected error: %v", err)
	}
	if third[0].ID == first[0].ID {
		t.Error("different users produced the same day id")
	}
}

func TestGenerateMicrocycleValidation(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		wantErr error
	}{
		{name: "too few", days: 2, wantErr: ErrInvalidTrainingDayCount},
		{name: "too many", days: 8, wantErr: ErrInvalidTrainingDayCount},
		{name: "zero", days: 0, wantErr: ErrInvalidTrainingDayCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateMicrocycle(catalog.Default(), microcycleParams(tt.days)); !errors.Is(err, tt.wantErr) {
				t.Errorf("GenerateMicrocycle() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := GenerateMicrocycle(catalog.New(), microcycleParams(4)); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("GenerateMicrocycle() with empty catalog error = %v, want ErrEmptyCatalog", err)
	}
}

func TestGenerateTrainingCycle(t *testing.T) {
	params := CycleParams{MicrocycleParams: microcycleParams(4), Weeks: 3}

	cycle, err := GenerateTrainingCycle(catalog.Default(), params)
	if err != nil {
		t.Fatalf("GenerateTrainingCycle() unexpected error: %v", err)
	}

	if len(cycle.Weeks) != 3 {
		t.Fatalf("got %d weeks, want 3", len(cycle.Weeks))
	}

	for week, days := range cycle.Weeks {
		if len(days) != DaysPerMicrocycle {
			t.Fatalf("week %d has %d days", week, len(days))
		}
		wantStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC).AddDate(0, 0, DaysPerMicrocycle*week)
		if !days[0].Date.Equal(wantStart) {
			t.Errorf("week %d starts %s, want %s", week, formatDate(days[0].Date), formatDate(wantStart))
		}
	}

	if flat := cycle.FlattenWeeks(); len(flat) != 3*DaysPerMicrocycle {
		t.Errorf("FlattenWeeks() yields %d days, want %d", len(flat), 3*DaysPerMicrocycle)
	}
}

func TestGenerateTrainingCycleRejectsNonPositiveWeeks(t *testing.T) {
	params := CycleParams{MicrocycleParams: microcycleParams(4), Weeks: 0}
	if _, err := GenerateTrainingCycle(catalog.Default(), params); !errors.Is(err, ErrInvalidWeekCount) {
		t.Errorf("GenerateTrainingCycle() error = %v, want ErrInvalidWeekCount", err)
	}
}
