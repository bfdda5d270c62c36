// Package workout generates multi-week training plans and adapts a day's
// prescriptions to the athlete's readiness.
package workout

import (
	"time"
)

// Goal is the user's stated training goal.
type Goal string

// Goal constants.
const (
	GoalStrength     Goal = "strength"
	GoalConditioning Goal = "conditioning"
	GoalHybrid       Goal = "hybrid"
	GoalGeneral      Goal = "general"
)

// Experience classifies training history.
type Experience string

// Experience level constants.
const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

// AdaptationMode controls how strongly readiness scales a prescription.
type AdaptationMode string

// Adaptation mode constants.
const (
	ModeConservative AdaptationMode = "conservative"
	ModeAutomatic    AdaptationMode = "automatic"
	ModeAggressive   AdaptationMode = "aggressive"
)

// Units is the measurement system of the user.
type Units string

// Units constants.
const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// TimeAvailability is the user's session length tier.
type TimeAvailability string

// Time availability constants.
const (
	TimeShort    TimeAvailability = "short"
	TimeStandard TimeAvailability = "standard"
	TimeExtended TimeAvailability = "extended"
)

// Focus labels a plan day's intended emphasis.
type Focus string

// Focus tag constants.
const (
	FocusStrength     Focus = "strength"
	FocusConditioning Focus = "conditioning"
	FocusMixed        Focus = "mixed"
	FocusRest         Focus = "rest"
)

// Preferences hold the plan-shaping choices of a user.
type Preferences struct {
	Goal             Goal
	Experience       Experience
	TrainingDays     int // days per week, 3-7
	TimeAvailability TimeAvailability
	EquipmentIDs     []string
	AdaptationMode   AdaptationMode
	ReadinessScaling bool
}

// UserProfile is the caller-owned user record. The engine never mutates it.
type UserProfile struct {
	ID              string
	DisplayName     string
	Units           Units
	Preferences     Preferences
	StrengthNumbers map[string]float64 // exercise id -> known 1RM
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SetPrescription is one planned set. At most one of the load targets is the
// primary driver in practice, but both may coexist.
type SetPrescription struct {
	TargetReps       int
	TargetPercent1RM *float64 // 0-100, quantized to 2.5
	TargetRPE        *float64 // 1-10
}

// ExercisePrescription assigns planned sets to a catalog exercise.
type ExercisePrescription struct {
	ExerciseID string
	Sets       []SetPrescription
}

// WarmupItem is a named preparatory drill.
type WarmupItem struct {
	Name            string
	DurationSeconds int
}

// ConditioningMode distinguishes interval from steady-state work.
type ConditioningMode string

// Conditioning mode constants.
const (
	ConditioningInterval ConditioningMode = "interval"
	ConditioningSteady   ConditioningMode = "steady"
)

// ConditioningPrescription describes the conditioning piece of a day.
// WorkSeconds, RestSeconds and Rounds are set for interval work;
// DurationMinutes for steady work. TargetZone is "Z1".."Z5" or empty.
type ConditioningPrescription struct {
	ExerciseID      string
	Mode            ConditioningMode
	WorkSeconds     int
	RestSeconds     int
	Rounds          int
	DurationMinutes int
	TargetZone      string
	Notes           string
}

// BlockType tags a block variant. Exactly the fields belonging to the variant
// are populated; every consumer switches exhaustively on this tag.
type BlockType string

// Block type constants.
const (
	BlockWarmup       BlockType = "warmup"
	BlockStrength     BlockType = "strength"
	BlockAccessory    BlockType = "accessory"
	BlockConditioning BlockType = "conditioning"
	BlockCooldown     BlockType = "cooldown"
)

// Block is one typed segment of a plan day.
type Block struct {
	ID           string
	Type         BlockType
	Warmup       []WarmupItem              // BlockWarmup
	Main         *ExercisePrescription     // BlockStrength
	Secondary    []ExercisePrescription    // BlockStrength
	Accessory    []ExercisePrescription    // BlockAccessory
	Conditioning *ConditioningPrescription // BlockConditioning
	Cooldown     []string                  // BlockCooldown
}

// PlanDay is one calendar day of a plan. A rest day has no blocks and zero
// estimated duration.
type PlanDay struct {
	ID                       string
	UserID                   string
	Date                     time.Time // normalized to midnight UTC
	DayIndex                 int       // 0 = cycle start day
	FocusTags                []Focus
	Blocks                   []Block
	EstimatedDurationMinutes int
	AdjustedForReadiness     bool
	CreatedAt                time.Time
}

// IsRestDay reports whether the day carries no training.
func (d PlanDay) IsRestDay() bool {
	return len(d.Blocks) == 0
}

// Cycle is a stack of microcycles, one per week.
type Cycle struct {
	Weeks [][]PlanDay
}

// FlattenWeeks concatenates the cycle's weeks into one day sequence.
func (c Cycle) FlattenWeeks() []PlanDay {
	var days []PlanDay
	for _, week := range c.Weeks {
		days = append(days, week...)
	}
	return days
}

// normalizeDate truncates a time to midnight UTC.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// formatDate renders a calendar day the way it crosses the engine boundary.
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
