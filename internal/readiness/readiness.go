// Package readiness converts daily subjective check-in answers into a 0-100
// readiness score used to scale that day's prescriptions.
package readiness

import (
	"log/slog"
	"math"

	"github.com/mtuomisto/planfit/internal/errors"
)

// Each answer is given on a 1-5 scale.
const (
	minAnswer = 1
	maxAnswer = 5
)

// Factor weights. Sleep and energy dominate; soreness and stress temper.
const (
	sleepWeight    = 0.30
	energyWeight   = 0.30
	sorenessWeight = 0.20
	stressWeight   = 0.20
)

// ErrInvalidInput is returned when a check-in answer falls outside [1,5].
var ErrInvalidInput = errors.NewSentinel("readiness answer out of range")

// Input holds the four subjective check-in answers, each in [1,5]. Higher
// sleep quality and energy mean better readiness; higher soreness and stress
// mean worse.
type Input struct {
	SleepQuality int
	Energy       int
	Soreness     int
	Stress       int
}

// Factors are the normalized 0-100 values actually entering the weighted sum,
// with soreness and stress already inverted.
type Factors struct {
	Sleep    float64
	Energy   float64
	Soreness float64
	Stress   float64
}

// Score is the overall readiness with its contributing factors.
type Score struct {
	Value   int
	Factors Factors
}

// Calculate derives the readiness score from a check-in.
//
// Each answer is rescaled linearly from [1,5] to [0,100]; soreness and stress
// are inverted since higher answers mean worse readiness. The factors combine
// with weights 0.30/0.30/0.20/0.20 and the sum is rounded to the nearest
// integer, which keeps the result in [0,100] by construction.
func Calculate(in Input) (Score, error) {
	if err := validate(in); err != nil {
		return Score{}, err
	}

	factors := Factors{
		Sleep:    normalize(in.SleepQuality),
		Energy:   normalize(in.Energy),
		Soreness: 100 - normalize(in.Soreness),
		Stress:   100 - normalize(in.Stress),
	}

	weighted := factors.Sleep*sleepWeight +
		factors.Energy*energyWeight +
		factors.Soreness*sorenessWeight +
		factors.Stress*stressWeight

	return Score{
		Value:   int(math.Round(weighted)),
		Factors: factors,
	}, nil
}

// normalize rescales an answer from [1,5] to [0,100].
func normalize(answer int) float64 {
	return float64(answer-1) / 4 * 100
}

func validate(in Input) error {
	answers := []struct {
		name  string
		value int
	}{
		{"sleep_quality", in.SleepQuality},
		{"energy", in.Energy},
		{"soreness", in.Soreness},
		{"stress", in.Stress},
	}
	for _, a := range answers {
		if a.value < minAnswer || a.value > maxAnswer {
			return errors.Wrap(ErrInvalidInput, "validate check-in",
				slog.String("answer", a.name), slog.Int("value", a.value))
		}
	}
	return nil
}
