package workout

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mtuomisto/planfit/internal/ptr"
)

// Readiness score bands and their base load scalers.
const (
	lowReadinessCeiling      = 40
	moderateReadinessCeiling = 60
	highReadinessFloor       = 80

	lowReadinessScaler      = 0.75
	moderateReadinessScaler = 0.90
	normalReadinessScaler   = 1.00
	highReadinessScaler     = 1.10
)

// Mode multipliers applied on top of the readiness band scaler.
var modeMultipliers = map[AdaptationMode]float64{
	ModeConservative: 0.90,
	ModeAutomatic:    1.00,
	ModeAggressive:   1.15,
}

// Numeric domains of the prescription fields.
const (
	percentIncrement = 2.5
	minRPE           = 1.0
	maxRPE           = 10.0
	minZone          = 1
	maxZone          = 5

	// Rep targets of 20 and above mark endurance-style sets that keep
	// their volume regardless of readiness.
	repScalingCeiling = 20

	// Accessory volume reacts at half strength to readiness swings.
	accessoryDampening = 0.5
)

// AdjustForReadiness rescales a day's numeric prescriptions using the
// readiness score and adaptation mode. The input day is never mutated; the
// returned day is a fresh value with AdjustedForReadiness set. With scaling
// disabled the day comes back value-equal and unflagged. Estimated duration
// is never changed by adaptation.
//
// Every transform is total: out-of-band results clamp instead of erroring.
func AdjustForReadiness(day PlanDay, readinessScore int, mode AdaptationMode, scalingEnabled bool) PlanDay {
	if !scalingEnabled {
		return day
	}

	scaler := baseScaler(readinessScore) * modeMultiplier(mode)

	adjusted := day
	adjusted.Blocks = make([]Block, len(day.Blocks))
	for i, block := range day.Blocks {
		adjusted.Blocks[i] = adjustBlock(block, scaler)
	}
	adjusted.FocusTags = append([]Focus(nil), day.FocusTags...)
	adjusted.AdjustedForReadiness = true
	return adjusted
}

// baseScaler maps a readiness score to its load scaler band.
func baseScaler(score int) float64 {
	switch {
	case score < lowReadinessCeiling:
		return lowReadinessScaler
	case score < moderateReadinessCeiling:
		return moderateReadinessScaler
	case score <= highReadinessFloor:
		return normalReadinessScaler
	default:
		return highReadinessScaler
	}
}

func modeMultiplier(mode AdaptationMode) float64 {
	if multiplier, ok := modeMultipliers[mode]; ok {
		return multiplier
	}
	return modeMultipliers[ModeAutomatic]
}

// adjustBlock applies the scaler per block variant. Warm-up and cooldown are
// never modified.
func adjustBlock(block Block, scaler float64) Block {
	adjusted := block
	switch block.Type {
	case BlockWarmup, BlockCooldown:
		return adjusted
	case BlockStrength:
		if block.Main != nil {
			main := adjustStrengthPrescription(*block.Main, scaler)
			adjusted.Main = &main
		}
		adjusted.Secondary = make([]ExercisePrescription, len(block.Secondary))
		for i, rx := range block.Secondary {
			adjusted.Secondary[i] = adjustStrengthPrescription(rx, scaler)
		}
		return adjusted
	case BlockAccessory:
		adjusted.Accessory = make([]ExercisePrescription, len(block.Accessory))
		for i, rx := range block.Accessory {
			adjusted.Accessory[i] = adjustAccessoryPrescription(rx, scaler)
		}
		return adjusted
	case BlockConditioning:
		if block.Conditioning != nil {
			conditioning := *block.Conditioning
			conditioning.TargetZone = scaleZone(conditioning.TargetZone, scaler)
			adjusted.Conditioning = &conditioning
		}
		return adjusted
	default:
		return adjusted
	}
}

// adjustStrengthPrescription scales percent-of-1RM (quantized to 2.5), reps
// below the endurance ceiling, and RPE (clamped to its scale).
func adjustStrengthPrescription(rx ExercisePrescription, scaler float64) ExercisePrescription {
	return transformPrescription(rx, func(set SetPrescription) SetPrescription {
		out := SetPrescription{TargetReps: set.TargetReps, TargetPercent1RM: nil, TargetRPE: nil}
		if set.TargetReps < repScalingCeiling {
			out.TargetReps = int(math.Round(float64(set.TargetReps) * scaler))
		}
		if set.TargetPercent1RM != nil {
			out.TargetPercent1RM = ptr.To(quantizePercent(*set.TargetPercent1RM * scaler))
		}
		if set.TargetRPE != nil {
			out.TargetRPE = ptr.To(clamp(*set.TargetRPE*scaler, minRPE, maxRPE))
		}
		return out
	})
}

// adjustAccessoryPrescription scales rep volume at half strength.
func adjustAccessoryPrescription(rx ExercisePrescription, scaler float64) ExercisePrescription {
	volumeScaler := (scaler-1)*accessoryDampening + 1
	return transformPrescription(rx, func(set SetPrescription) SetPrescription {
		out := set
		out.TargetReps = int(math.Round(float64(set.TargetReps) * volumeScaler))
		return out
	})
}

// transformPrescription applies a transformation to every set of a
// prescription, leaving the input untouched.
func transformPrescription(
	rx ExercisePrescription,
	transform func(SetPrescription) SetPrescription,
) ExercisePrescription {
	out := ExercisePrescription{ExerciseID: rx.ExerciseID, Sets: make([]SetPrescription, len(rx.Sets))}
	for i, set := range rx.Sets {
		out.Sets[i] = transform(set)
	}
	return out
}

// quantizePercent rounds a percent-of-1RM to the nearest 2.5.
func quantizePercent(percent float64) float64 {
	return math.Round(percent/percentIncrement) * percentIncrement
}

// scaleZone rescales a "Z<n>" target zone, clamping to Z1..Z5. Unparseable
// zones pass through unchanged.
func scaleZone(zone string, scaler float64) string {
	intensity, ok := parseZone(zone)
	if !ok {
		return zone
	}
	scaled := int(math.Round(float64(intensity) * scaler))
	if scaled < minZone {
		scaled = minZone
	}
	if scaled > maxZone {
		scaled = maxZone
	}
	return fmt.Sprintf("Z%d", scaled)
}

func parseZone(zone string) (int, bool) {
	rest, found := strings.CutPrefix(zone, "Z")
	if !found {
		return 0, false
	}
	intensity, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return intensity, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
