package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mtuomisto/planfit/internal/catalog"
)

func TestUsable(t *testing.T) {
	tests := []struct {
		name     string
		exercise catalog.Exercise
		owned    []string
		want     bool
	}{
		{
			name:     "no equipment required",
			exercise: catalog.Exercise{ID: "push_up"},
			owned:    nil,
			want:     true,
		},
		{
			name: "required item owned",
			exercise: catalog.Exercise{
				ID:                "back_squat",
				RequiredEquipment: []string{catalog.EquipmentBarbell},
			},
			owned: []string{catalog.EquipmentBarbell, catalog.EquipmentBench},
			want:  true,
		},
		{
			name: "any of the alternatives suffices",
			exercise: catalog.Exercise{
				ID:                "goblet_squat",
				RequiredEquipment: []string{catalog.EquipmentDumbbell, catalog.EquipmentKettlebell},
			},
			owned: []string{catalog.EquipmentKettlebell},
			want:  true,
		},
		{
			name: "required item missing",
			exercise: catalog.Exercise{
				ID:                "pull_up",
				RequiredEquipment: []string{catalog.EquipmentPullupBar},
			},
			owned: []string{catalog.EquipmentDumbbell},
			want:  false,
		},
		{
			name: "empty inventory fails equipped exercise",
			exercise: catalog.Exercise{
				ID:                "deadlift",
				RequiredEquipment: []string{catalog.EquipmentBarbell},
			},
			owned: nil,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.Usable(tt.exercise, tt.owned); got != tt.want {
				t.Errorf("Usable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	cat := catalog.Default()

	if cat.Len() == 0 {
		t.Fatal("default catalog is empty")
	}

	// Every strength pattern needs a no-equipment fallback so generation can
	// always degrade instead of failing.
	patterns := []catalog.MovementPattern{
		catalog.PatternSquat,
		catalog.PatternHinge,
		catalog.PatternPushHorizontal,
		catalog.PatternPushVertical,
		catalog.PatternPullHorizontal,
		catalog.PatternLunge,
		catalog.PatternCore,
		catalog.PatternConditioning,
	}
	for _, pattern := range patterns {
		if _, ok := cat.FirstUsable(pattern, nil); !ok {
			t.Errorf("pattern %s has no bodyweight fallback", pattern)
		}
	}
}

func TestByPatternPreservesOrder(t *testing.T) {
	cat := catalog.New(
		catalog.Exercise{ID: "a", Name: "A", Pattern: catalog.PatternSquat},
		catalog.Exercise{ID: "b", Name: "B", Pattern: catalog.PatternHinge},
		catalog.Exercise{ID: "c", Name: "C", Pattern: catalog.PatternSquat},
	)

	var ids []string
	for _, ex := range cat.ByPattern(catalog.PatternSquat) {
		ids = append(ids, ex.ID)
	}
	if diff := cmp.Diff([]string{"a", "c"}, ids); diff != "" {
		t.Errorf("ByPattern() order mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstUsableRespectsEquipment(t *testing.T) {
	cat := catalog.Default()

	ex, ok := cat.FirstUsable(catalog.PatternSquat, []string{catalog.EquipmentKettlebell})
	if !ok {
		t.Fatal("expected a usable squat exercise")
	}
	if ex.ID != "goblet_squat" {
		t.Errorf("FirstUsable() = %s, want goblet_squat", ex.ID)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.toml")
	content := `
[[exercise]]
id = "safety_bar_squat"
name = "Safety Bar Squat"
pattern = "squat"
required_equipment = ["barbell"]
primary_muscles = ["quads", "glutes"]

[[exercise]]
id = "sled_push"
name = "Sled Push"
pattern = "conditioning"
required_equipment = ["sled"]
primary_muscles = ["full body"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	exercises, err := catalog.LoadTOML(path)
	if err != nil {
		t.Fatalf("LoadTOML() unexpected error: %v", err)
	}

	want := []catalog.Exercise{
		{
			ID:                "safety_bar_squat",
			Name:              "Safety Bar Squat",
			Pattern:           catalog.PatternSquat,
			RequiredEquipment: []string{"barbell"},
			PrimaryMuscles:    []string{"quads", "glutes"},
		},
		{
			ID:                "sled_push",
			Name:              "Sled Push",
			Pattern:           catalog.PatternConditioning,
			RequiredEquipment: []string{"sled"},
			PrimaryMuscles:    []string{"full body"},
		},
	}
	if diff := cmp.Diff(want, exercises); diff != "" {
		t.Errorf("LoadTOML() mismatch (-want +got):\n%s", diff)
	}

	merged := catalog.Default().Merge(exercises...)
	if !merged.Has("sled_push") {
		t.Error("merged catalog is missing the imported exercise")
	}
	if merged.Len() != catalog.Default().Len()+2 {
		t.Errorf("merged catalog has %d entries, want %d", merged.Len(), catalog.Default().Len()+2)
	}
}

func TestLoadTOMLRejectsIncompleteEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("[[exercise]]\nname = \"No ID\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := catalog.LoadTOML(path); err == nil {
		t.Error("LoadTOML() expected an error for an entry without id")
	}
}
