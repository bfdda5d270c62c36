package catalog

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/mtuomisto/planfit/internal/errors"
)

// exerciseTOML is the file representation of a catalog entry.
type exerciseTOML struct {
	ID                string   `toml:"id"`
	Name              string   `toml:"name"`
	Pattern           string   `toml:"pattern"`
	RequiredEquipment []string `toml:"required_equipment"`
	PrimaryMuscles    []string `toml:"primary_muscles"`
}

type exerciseImportTOML struct {
	Exercises []exerciseTOML `toml:"exercise"`
}

// LoadTOML reads additional catalog entries from a TOML file of the form:
//
//	[[exercise]]
//	id = "safety_bar_squat"
//	name = "Safety Bar Squat"
//	pattern = "squat"
//	required_equipment = ["barbell"]
//	primary_muscles = ["quads", "glutes"]
func LoadTOML(path string) ([]Exercise, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog file")
	}

	var parsed exerciseImportTOML
	if err := toml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.Wrap(err, "parse catalog file")
	}

	exercises := make([]Exercise, 0, len(parsed.Exercises))
	for _, def := range parsed.Exercises {
		if def.ID == "" || def.Name == "" {
			return nil, errors.New("catalog entry must have id and name")
		}
		exercises = append(exercises, Exercise{
			ID:                def.ID,
			Name:              def.Name,
			Pattern:           MovementPattern(def.Pattern),
			RequiredEquipment: def.RequiredEquipment,
			PrimaryMuscles:    def.PrimaryMuscles,
		})
	}
	return exercises, nil
}

// Merge returns a new catalog containing the receiver's exercises followed by
// the given ones. Imported entries with known ids replace the built-ins.
func (c *Catalog) Merge(exercises ...Exercise) *Catalog {
	merged := New(c.All()...)
	for _, ex := range exercises {
		merged.add(ex)
	}
	return merged
}
