// Package records estimates one-rep maxes from logged sessions and detects
// new personal records.
package records

import (
	"log/slog"
	"time"

	"github.com/mtuomisto/planfit/internal/errors"
)

// epleyDivisor is the constant of the Epley formula 1RM = w * (1 + reps/30).
const epleyDivisor = 30.0

// ErrUnknownExercise is returned when a logged set references an exercise id
// missing from the catalog.
var ErrUnknownExercise = errors.NewSentinel("logged set references unknown exercise")

// CompletedSet is one performed set inside a session log.
type CompletedSet struct {
	BlockID     string
	ExerciseID  string
	SetIndex    int
	Weight      float64
	Reps        int
	CompletedAt time.Time
}

// SessionLog is a performed workout session as reported by the caller.
type SessionLog struct {
	ID                 string
	UserID             string
	Date               time.Time
	StartedAt          time.Time
	CompletedAt        time.Time
	Sets               []CompletedSet
	ConditioningRounds int
	CreatedAt          time.Time
}

// PersonalRecord is the best estimated 1RM seen for an exercise, referencing
// the set and session it was derived from.
type PersonalRecord struct {
	ExerciseID   string
	Estimated1RM float64
	Weight       float64
	Reps         int
	SessionID    string
	SetIndex     int
	AchievedAt   time.Time
}

// EstimateOneRM estimates a one-rep max with the Epley formula. A zero weight
// yields a zero estimate: no load lifted means nothing to extrapolate from.
// Negative rep counts are treated as zero.
func EstimateOneRM(weight float64, reps int) float64 {
	if weight <= 0 {
		return 0
	}
	if reps < 0 {
		reps = 0
	}
	return weight * (1 + float64(reps)/epleyDivisor)
}

// DetectNewPRs compares each exercise's best estimated 1RM in the session to
// the best previously recorded value and emits a record on strict
// improvement. At most one record per exercise id comes out of one session:
// the best set for that exercise wins.
func DetectNewPRs(session SessionLog, existing []PersonalRecord) []PersonalRecord {
	best := bestExistingByExercise(existing)

	type candidate struct {
		set      CompletedSet
		estimate float64
	}
	candidates := make(map[string]candidate)
	var order []string

	for _, set := range session.Sets {
		estimate := EstimateOneRM(set.Weight, set.Reps)
		if estimate <= 0 {
			continue
		}
		current, seen := candidates[set.ExerciseID]
		if !seen {
			order = append(order, set.ExerciseID)
		}
		if !seen || estimate > current.estimate {
			candidates[set.ExerciseID] = candidate{set: set, estimate: estimate}
		}
	}

	var newRecords []PersonalRecord
	for _, exerciseID := range order {
		c := candidates[exerciseID]
		if prior, ok := best[exerciseID]; ok && c.estimate <= prior {
			continue
		}
		newRecords = append(newRecords, PersonalRecord{
			ExerciseID:   exerciseID,
			Estimated1RM: c.estimate,
			Weight:       c.set.Weight,
			Reps:         c.set.Reps,
			SessionID:    session.ID,
			SetIndex:     c.set.SetIndex,
			AchievedAt:   achievedAt(session, c.set),
		})
	}
	return newRecords
}

// ValidateSession checks that every logged set references a known exercise
// id. known is typically catalog.Has.
func ValidateSession(session SessionLog, known func(id string) bool) error {
	for _, set := range session.Sets {
		if !known(set.ExerciseID) {
			return errors.Wrap(ErrUnknownExercise, "validate session",
				slog.String("session_id", session.ID),
				slog.String("exercise_id", set.ExerciseID))
		}
	}
	return nil
}

func bestExistingByExercise(existing []PersonalRecord) map[string]float64 {
	best := make(map[string]float64, len(existing))
	for _, record := range existing {
		if record.Estimated1RM > best[record.ExerciseID] {
			best[record.ExerciseID] = record.Estimated1RM
		}
	}
	return best
}

// achievedAt prefers the set's completion time, falling back to the session
// date for logs without per-set timestamps.
func achievedAt(session SessionLog, set CompletedSet) time.Time {
	if !set.CompletedAt.IsZero() {
		return set.CompletedAt
	}
	return session.Date
}
