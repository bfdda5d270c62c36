package catalog

// Default returns the built-in exercise catalog. Every strength pattern has at
// least one no-equipment entry so generation can always degrade to a
// bodyweight selection instead of failing.
func Default() *Catalog {
	return New(
		// Squat pattern.
		Exercise{
			ID:                "back_squat",
			Name:              "Back Squat",
			Pattern:           PatternSquat,
			RequiredEquipment: []string{EquipmentBarbell},
			PrimaryMuscles:    []string{"quads", "glutes"},
		},
		Exercise{
			ID:                "goblet_squat",
			Name:              "Goblet Squat",
			Pattern:           PatternSquat,
			RequiredEquipment: []string{EquipmentDumbbell, EquipmentKettlebell},
			PrimaryMuscles:    []string{"quads", "glutes"},
		},
		Exercise{
			ID:             "air_squat",
			Name:           "Air Squat",
			Pattern:        PatternSquat,
			PrimaryMuscles: []string{"quads", "glutes"},
		},

		// Hinge pattern.
		Exercise{
			ID:                "deadlift",
			Name:              "Deadlift",
			Pattern:           PatternHinge,
			RequiredEquipment: []string{EquipmentBarbell},
			PrimaryMuscles:    []string{"hamstrings", "glutes", "back"},
		},
		Exercise{
			ID:                "romanian_deadlift",
			Name:              "Romanian Deadlift",
			Pattern:           PatternHinge,
			RequiredEquipment: []string{EquipmentBarbell, EquipmentDumbbell},
			PrimaryMuscles:    []string{"hamstrings", "glutes"},
		},
		Exercise{
			ID:                "kettlebell_swing",
			Name:              "Kettlebell Swing",
			Pattern:           PatternHinge,
			RequiredEquipment: []string{EquipmentKettlebell},
			PrimaryMuscles:    []string{"glutes", "hamstrings"},
		},
		Exercise{
			ID:             "glute_bridge",
			Name:           "Glute Bridge",
			Pattern:        PatternHinge,
			PrimaryMuscles: []string{"glutes"},
		},

		// Horizontal push.
		Exercise{
			ID:                "bench_press",
			Name:              "Bench Press",
			Pattern:           PatternPushHorizontal,
			RequiredEquipment: []string{EquipmentBarbell},
			PrimaryMuscles:    []string{"chest", "triceps"},
		},
		Exercise{
			ID:                "dumbbell_bench_press",
			Name:              "Dumbbell Bench Press",
			Pattern:           PatternPushHorizontal,
			RequiredEquipment: []string{EquipmentDumbbell},
			PrimaryMuscles:    []string{"chest", "triceps"},
		},
		Exercise{
			ID:             "push_up",
			Name:           "Push-Up",
			Pattern:        PatternPushHorizontal,
			PrimaryMuscles: []string{"chest", "triceps"},
		},

		// Vertical push.
		Exercise{
			ID:                "overhead_press",
			Name:              "Overhead Press",
			Pattern:           PatternPushVertical,
			RequiredEquipment: []string{EquipmentBarbell},
			PrimaryMuscles:    []string{"shoulders", "triceps"},
		},
		Exercise{
			ID:                "dumbbell_shoulder_press",
			Name:              "Dumbbell Shoulder Press",
			Pattern:           PatternPushVertical,
			RequiredEquipment: []string{EquipmentDumbbell},
			PrimaryMuscles:    []string{"shoulders"},
		},
		Exercise{
			ID:             "pike_push_up",
			Name:           "Pike Push-Up",
			Pattern:        PatternPushVertical,
			PrimaryMuscles: []string{"shoulders", "triceps"},
		},

		// Horizontal pull.
		Exercise{
			ID:                "barbell_row",
			Name:              "Barbell Row",
			Pattern:           PatternPullHorizontal,
			RequiredEquipment: []string{EquipmentBarbell},
			PrimaryMuscles:    []string{"back", "biceps"},
		},
		Exercise{
			ID:                "dumbbell_row",
			Name:              "One-Arm Dumbbell Row",
			Pattern:           PatternPullHorizontal,
			RequiredEquipment: []string{EquipmentDumbbell},
			PrimaryMuscles:    []string{"back", "biceps"},
		},
		Exercise{
			ID:                "band_row",
			Name:              "Band Row",
			Pattern:           PatternPullHorizontal,
			RequiredEquipment: []string{EquipmentBand},
			PrimaryMuscles:    []string{"back"},
		},
		Exercise{
			ID:             "superman_hold",
			Name:           "Superman Hold",
			Pattern:        PatternPullHorizontal,
			PrimaryMuscles: []string{"back"},
		},

		// Vertical pull.
		Exercise{
			ID:                "pull_up",
			Name:              "Pull-Up",
			Pattern:           PatternPullVertical,
			RequiredEquipment: []string{EquipmentPullupBar},
			PrimaryMuscles:    []string{"back", "biceps"},
		},
		Exercise{
			ID:                "band_pulldown",
			Name:              "Band Pulldown",
			Pattern:           PatternPullVertical,
			RequiredEquipment: []string{EquipmentBand},
			PrimaryMuscles:    []string{"back"},
		},

		// Lunge pattern.
		Exercise{
			ID:                "dumbbell_lunge",
			Name:              "Dumbbell Lunge",
			Pattern:           PatternLunge,
			RequiredEquipment: []string{EquipmentDumbbell, EquipmentKettlebell},
			PrimaryMuscles:    []string{"quads", "glutes"},
		},
		Exercise{
			ID:             "walking_lunge",
			Name:           "Walking Lunge",
			Pattern:        PatternLunge,
			PrimaryMuscles: []string{"quads", "glutes"},
		},
		Exercise{
			ID:             "split_squat",
			Name:           "Split Squat",
			Pattern:        PatternLunge,
			PrimaryMuscles: []string{"quads", "glutes"},
		},

		// Carry pattern.
		Exercise{
			ID:                "farmer_carry",
			Name:              "Farmer Carry",
			Pattern:           PatternCarry,
			RequiredEquipment: []string{EquipmentDumbbell, EquipmentKettlebell},
			PrimaryMuscles:    []string{"forearms", "core"},
		},

		// Core pattern.
		Exercise{
			ID:             "plank",
			Name:           "Plank",
			Pattern:        PatternCore,
			PrimaryMuscles: []string{"core"},
		},
		Exercise{
			ID:                "hanging_leg_raise",
			Name:              "Hanging Leg Raise",
			Pattern:           PatternCore,
			RequiredEquipment: []string{EquipmentPullupBar},
			PrimaryMuscles:    []string{"core", "hip flexors"},
		},
		Exercise{
			ID:             "dead_bug",
			Name:           "Dead Bug",
			Pattern:        PatternCore,
			PrimaryMuscles: []string{"core"},
		},

		// Conditioning modalities.
		Exercise{
			ID:                "rowing_erg",
			Name:              "Rowing Erg",
			Pattern:           PatternConditioning,
			RequiredEquipment: []string{EquipmentRower},
			PrimaryMuscles:    []string{"full body"},
		},
		Exercise{
			ID:                "air_bike",
			Name:              "Air Bike",
			Pattern:           PatternConditioning,
			RequiredEquipment: []string{EquipmentBike},
			PrimaryMuscles:    []string{"full body"},
		},
		Exercise{
			ID:                "jump_rope",
			Name:              "Jump Rope",
			Pattern:           PatternConditioning,
			RequiredEquipment: []string{EquipmentJumpRope},
			PrimaryMuscles:    []string{"calves", "full body"},
		},
		Exercise{
			ID:             "burpees",
			Name:           "Burpees",
			Pattern:        PatternConditioning,
			PrimaryMuscles: []string{"full body"},
		},
		Exercise{
			ID:             "running",
			Name:           "Running",
			Pattern:        PatternConditioning,
			PrimaryMuscles: []string{"legs"},
		},
	)
}
