package workout

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mtuomisto/planfit/internal/catalog"
	"github.com/mtuomisto/planfit/internal/errors"
)

// DaysPerMicrocycle is the fixed length of a microcycle. The generator always
// emits one record per calendar day regardless of the training-day count;
// callers filter rest days if they want a compact view.
const DaysPerMicrocycle = 7

// Training-day count domain.
const (
	MinTrainingDays = 3
	MaxTrainingDays = 7
)

// Boundary validation sentinels.
var (
	ErrInvalidTrainingDayCount = errors.NewSentinel("weekly training-day count out of range")
	ErrInvalidWeekCount        = errors.NewSentinel("cycle week count must be positive")
	ErrEmptyCatalog            = errors.NewSentinel("exercise catalog cannot be empty")
)

// weekFocusPatterns maps the weekly training-day count to day-offset focus
// assignments. Offsets absent from the pattern are rest days.
var weekFocusPatterns = map[int]map[int]Focus{
	3: {0: FocusMixed, 2: FocusStrength, 4: FocusConditioning},
	4: {0: FocusMixed, 1: FocusStrength, 3: FocusConditioning, 5: FocusMixed},
	5: {0: FocusStrength, 1: FocusMixed, 2: FocusConditioning, 3: FocusStrength, 4: FocusMixed},
	6: {0: FocusStrength, 1: FocusMixed, 2: FocusConditioning, 3: FocusStrength, 4: FocusMixed, 5: FocusConditioning},
	7: {0: FocusStrength, 1: FocusMixed, 2: FocusConditioning, 3: FocusStrength, 4: FocusMixed, 5: FocusConditioning},
}

// focusDurations is the estimated session length per focus in minutes.
var focusDurations = map[Focus]int{
	FocusStrength:     50,
	FocusConditioning: 35,
	FocusMixed:        60,
	FocusRest:         0,
}

// focusGoals maps a day focus to the goal handed to the day generator.
var focusGoals = map[Focus]Goal{
	FocusStrength:     GoalStrength,
	FocusConditioning: GoalConditioning,
	FocusMixed:        GoalHybrid,
}

// planDayNamespace seeds deterministic v5 ids so regenerating the same plan
// for the same user and date yields the same day id.
var planDayNamespace = uuid.MustParse("b9f16e1a-4c5d-47d0-8b3e-2a91d56cf1e4")

// MicrocycleParams are the inputs for one week of plan days.
type MicrocycleParams struct {
	UserID          string
	StartDate       time.Time
	Goal            Goal
	Experience      Experience
	TrainingDays    int // 3-7
	EquipmentIDs    []string
	Units           Units
	StrengthNumbers map[string]float64
}

// CycleParams extend MicrocycleParams with a week count.
type CycleParams struct {
	MicrocycleParams
	Weeks int
}

// GenerateMicrocycle expands the focus pattern for the training-day count
// into exactly seven plan days starting at StartDate. Rest days are
// synthesized with empty blocks; training days delegate to the day generator
// with the focus mapped to a goal.
func GenerateMicrocycle(cat *catalog.Catalog, params MicrocycleParams) ([]PlanDay, error) {
	if err := validateMicrocycleParams(cat, params); err != nil {
		return nil, err
	}

	pattern := weekFocusPatterns[params.TrainingDays]
	start := normalizeDate(params.StartDate)
	now := time.Now().UTC()

	days := make([]PlanDay, DaysPerMicrocycle)
	for offset := 0; offset < DaysPerMicrocycle; offset++ {
		date := start.AddDate(0, 0, offset)
		focus, training := pattern[offset]
		if !training {
			focus = FocusRest
		}

		day := PlanDay{
			ID:                       planDayID(params.UserID, date),
			UserID:                   params.UserID,
			Date:                     date,
			DayIndex:                 offset,
			FocusTags:                []Focus{focus},
			Blocks:                   nil,
			EstimatedDurationMinutes: focusDurations[focus],
			AdjustedForReadiness:     false,
			CreatedAt:                now,
		}

		if training {
			gen := newDayGenerator(cat, dayParams{
				goal:            focusGoals[focus],
				experience:      params.Experience,
				equipmentIDs:    params.EquipmentIDs,
				units:           params.Units,
				strengthNumbers: params.StrengthNumbers,
			})
			// The focus-keyed duration table wins over the day generator's
			// own estimate so week overviews stay stable.
			day.Blocks, _ = gen.generate()
		}

		days[offset] = day
	}

	return days, nil
}

// GenerateTrainingCycle stacks microcycles across weeks, each starting seven
// days after the previous one with identical inputs. Periodization across
// weeks is the caller's concern.
func GenerateTrainingCycle(cat *catalog.Catalog, params CycleParams) (Cycle, error) {
	if params.Weeks < 1 {
		return Cycle{}, errors.Wrap(ErrInvalidWeekCount, "generate training cycle",
			slog.Int("weeks", params.Weeks))
	}

	weeks := make([][]PlanDay, 0, params.Weeks)
	for week := 0; week < params.Weeks; week++ {
		weekParams := params.MicrocycleParams
		weekParams.StartDate = normalizeDate(params.StartDate).AddDate(0, 0, DaysPerMicrocycle*week)

		days, err := GenerateMicrocycle(cat, weekParams)
		if err != nil {
			return Cycle{}, errors.Wrap(err, "generate microcycle", slog.Int("week", week))
		}
		weeks = append(weeks, days)
	}

	return Cycle{Weeks: weeks}, nil
}

func validateMicrocycleParams(cat *catalog.Catalog, params MicrocycleParams) error {
	if cat == nil || cat.Len() == 0 {
		return ErrEmptyCatalog
	}
	if params.TrainingDays < MinTrainingDays || params.TrainingDays > MaxTrainingDays {
		return errors.Wrap(ErrInvalidTrainingDayCount, "generate microcycle",
			slog.Int("training_days", params.TrainingDays))
	}
	return nil
}

// planDayID derives a stable id from the owning user and calendar day.
func planDayID(userID string, date time.Time) string {
	return uuid.NewSHA1(planDayNamespace, []byte(userID+"/"+formatDate(date))).String()
}
