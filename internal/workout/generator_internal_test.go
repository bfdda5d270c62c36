package workout

import (
	"testing"

	"github.com/mtuomisto/planfit/internal/catalog"
)

func TestGenerateBlockOrder(t *testing.T) {
	gen := newDayGenerator(catalog.Default(), dayParams{
		goal:         GoalStrength,
		experience:   ExperienceIntermediate,
		equipmentIDs: []string{catalog.EquipmentBarbell, catalog.EquipmentDumbbell},
		units:        UnitsMetric,
	})

	blocks, estimated := gen.generate()

	wantOrder := []BlockType{BlockWarmup, BlockStrength, BlockAccessory, BlockConditioning, BlockCooldown}
	if len(blocks) != len(wantOrder) {
		t.Fatalf("generate() returned %d blocks, want %d", len(blocks), len(wantOrder))
	}
	for i, want := range wantOrder {
		if blocks[i].Type != want {
			t.Errorf("block %d has type %s, want %s", i, blocks[i].Type, want)
		}
	}
	if estimated <= 0 {
		t.Errorf("estimated duration = %d, want > 0", estimated)
	}
}

func TestGenerateStrengthTargets(t *testing.T) {
	tests := []struct {
		name            string
		strengthNumbers map[string]float64
		wantPercent     bool
	}{
		{
			name:            "known 1RM yields percent targets",
			strengthNumbers: map[string]float64{"back_squat": 140},
			wantPercent:     true,
		},
		{
			name:            "unknown 1RM falls back to RPE",
			strengthNumbers: nil,
			wantPercent:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newDayGenerator(catalog.Default(), dayParams{
				goal:            GoalStrength,
				experience:      ExperienceBeginner,
				equipmentIDs:    []string{catalog.EquipmentBarbell},
				units:           UnitsMetric,
				strengthNumbers: tt.strengthNumbers,
			})

			blocks, _ := gen.generate()
			strength := findBlock(t, blocks, BlockStrength)
			if strength.Main == nil {
				t.Fatal("strength block has no main lift")
			}
			if strength.Main.ExerciseID != "back_squat" {
				t.Fatalf("main lift = %s, want back_squat", strength.Main.ExerciseID)
			}

			for i, set := range strength.Main.Sets {
				hasPercent := set.TargetPercent1RM != nil
				hasRPE := set.TargetRPE != nil
				if hasPercent != tt.wantPercent {
					t.Errorf("set %d percent target presence = %v, want %v", i, hasPercent, tt.wantPercent)
				}
				if hasRPE == tt.wantPercent {
					t.Errorf("set %d RPE target presence = %v, want %v", i, hasRPE, !tt.wantPercent)
				}
				if set.TargetReps <= 0 {
					t.Errorf("set %d has no rep target", i)
				}
			}
		})
	}
}

func TestGenerateSecondaryLiftCountByExperience(t *testing.T) {
	tests := []struct {
		experience Experience
		want       int
	}{
		{ExperienceBeginner, 0},
		{ExperienceIntermediate, 1},
		{ExperienceAdvanced, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.experience), func(t *testing.T) {
			gen := newDayGenerator(catalog.Default(), dayParams{
				goal:         GoalStrength,
				experience:   tt.experience,
				equipmentIDs: []string{catalog.EquipmentBarbell, catalog.EquipmentPullupBar},
				units:        UnitsMetric,
			})

			blocks, _ := gen.generate()
			strength := findBlock(t, blocks, BlockStrength)
			if got := len(strength.Secondary); got != tt.want {
				t.Errorf("secondary lift count = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGenerateRespectsEquipment(t *testing.T) {
	gen := newDayGenerator(catalog.Default(), dayParams{
		goal:         GoalStrength,
		experience:   ExperienceIntermediate,
		equipmentIDs: []string{catalog.EquipmentKettlebell},
		units:        UnitsMetric,
	})

	blocks, _ := gen.generate()
	cat := catalog.Default()
	for _, block := range blocks {
		for _, rx := range collectPrescriptions(block) {
			ex, ok := cat.Get(rx.ExerciseID)
			if !ok {
				t.Fatalf("selected unknown exercise %s", rx.ExerciseID)
			}
			if !catalog.Usable(ex, []string{catalog.EquipmentKettlebell}) {
				t.Errorf("selected %s, not usable with a kettlebell only", ex.ID)
			}
		}
	}
}

func TestGenerateFallsBackToBodyweight(t *testing.T) {
	gen := newDayGenerator(catalog.Default(), dayParams{
		goal:         GoalStrength,
		experience:   ExperienceAdvanced,
		equipmentIDs: nil, // nothing owned
		units:        UnitsMetric,
	})

	blocks, _ := gen.generate()
	strength := findBlock(t, blocks, BlockStrength)
	if strength.Main == nil {
		t.Fatal("expected a bodyweight main lift instead of a failure")
	}
	if strength.Main.ExerciseID != "air_squat" {
		t.Errorf("main lift = %s, want air_squat", strength.Main.ExerciseID)
	}
}

func TestGenerateConditioningByGoal(t *testing.T) {
	tests := []struct {
		goal     Goal
		wantMode ConditioningMode
		wantZone string
	}{
		{GoalStrength, ConditioningSteady, "Z2"},
		{GoalConditioning, ConditioningInterval, "Z4"},
		{GoalHybrid, ConditioningInterval, "Z3"},
		{GoalGeneral, ConditioningSteady, "Z2"},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			gen := newDayGenerator(catalog.Default(), dayParams{
				goal:         tt.goal,
				experience:   ExperienceIntermediate,
				equipmentIDs: []string{catalog.EquipmentRower},
				units:        UnitsMetric,
			})

			blocks, _ := gen.generate()
			conditioning := findBlock(t, blocks, BlockConditioning)
			if conditioning.Conditioning == nil {
				t.Fatal("conditioning block has no prescription")
			}
			if conditioning.Conditioning.Mode != tt.wantMode {
				t.Errorf("mode = %s, want %s", conditioning.Conditioning.Mode, tt.wantMode)
			}
			if conditioning.Conditioning.TargetZone != tt.wantZone {
				t.Errorf("zone = %s, want %s", conditioning.Conditioning.TargetZone, tt.wantZone)
			}
			if tt.wantMode == ConditioningInterval && conditioning.Conditioning.Rounds == 0 {
				t.Error("interval prescription has no rounds")
			}
		})
	}
}

func TestGenerateAccessoriesAreRepBased(t *testing.T) {
	gen := newDayGenerator(catalog.Default(), dayParams{
		goal:         GoalHybrid,
		experience:   ExperienceAdvanced,
		equipmentIDs: []string{catalog.EquipmentDumbbell, catalog.EquipmentPullupBar},
		units:        UnitsMetric,
	})

	blocks, _ := gen.generate()
	accessory := findBlock(t, blocks, BlockAccessory)
	if len(accessory.Accessory) == 0 {
		t.Fatal("accessory block is empty")
	}
	for _, rx := range accessory.Accessory {
		for i, set := range rx.Sets {
			if set.TargetPercent1RM != nil || set.TargetRPE != nil {
				t.Errorf("%s set %d carries a load target, accessories are rep-based", rx.ExerciseID, i)
			}
			if set.TargetReps <= 0 {
				t.Errorf("%s set %d has no rep target", rx.ExerciseID, i)
			}
		}
	}
}

func findBlock(t *testing.T, blocks []Block, blockType BlockType) Block {
	t.Helper()
	for _, block := range blocks {
		if block.Type == blockType {
			return block
		}
	}
	t.Fatalf("no block of type %s", blockType)
	return Block{}
}

// collectPrescriptions gathers every exercise prescription of a block
// regardless of variant.
func collectPrescriptions(block Block) []ExercisePrescription {
	var prescriptions []ExercisePrescription
	if block.Main != nil {
		prescriptions = append(prescriptions, *block.Main)
	}
	prescriptions = append(prescriptions, block.Secondary...)
	prescriptions = append(prescriptions, block.Accessory...)
	if block.Conditioning != nil {
		prescriptions = append(prescriptions, ExercisePrescription{
			ExerciseID: block.Conditioning.ExerciseID,
			Sets:       nil,
		})
	}
	return prescriptions
}
