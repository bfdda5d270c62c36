// Package catalog holds the static exercise reference data consumed by the
// workout engine together with the equipment availability filter.
package catalog

// MovementPattern classifies an exercise by its dominant movement.
type MovementPattern string

// Movement pattern constants.
const (
	PatternSquat          MovementPattern = "squat"
	PatternHinge          MovementPattern = "hinge"
	PatternLunge          MovementPattern = "lunge"
	PatternPushHorizontal MovementPattern = "push_horizontal"
	PatternPushVertical   MovementPattern = "push_vertical"
	PatternPullHorizontal MovementPattern = "pull_horizontal"
	PatternPullVertical   MovementPattern = "pull_vertical"
	PatternCarry          MovementPattern = "carry"
	PatternCore           MovementPattern = "core"
	PatternConditioning   MovementPattern = "conditioning"
)

// Equipment identifiers used in exercise requirements and user inventories.
const (
	EquipmentBarbell    = "barbell"
	EquipmentDumbbell   = "dumbbell"
	EquipmentKettlebell = "kettlebell"
	EquipmentBench      = "bench"
	EquipmentPullupBar  = "pullup_bar"
	EquipmentBand       = "band"
	EquipmentRower      = "rower"
	EquipmentBike       = "bike"
	EquipmentJumpRope   = "jump_rope"
)

// Exercise is a single immutable catalog entry.
type Exercise struct {
	ID                string
	Name              string
	Pattern           MovementPattern
	RequiredEquipment []string
	PrimaryMuscles    []string
}

// Catalog is an id-keyed exercise lookup preserving insertion order so that
// selection stays deterministic.
type Catalog struct {
	byID  map[string]Exercise
	order []string
}

// New builds a catalog from the given exercises. Later duplicates of an id
// replace earlier ones without changing their position.
func New(exercises ...Exercise) *Catalog {
	c := &Catalog{
		byID:  make(map[string]Exercise, len(exercises)),
		order: make([]string, 0, len(exercises)),
	}
	for _, ex := range exercises {
		c.add(ex)
	}
	return c
}

func (c *Catalog) add(ex Exercise) {
	if _, exists := c.byID[ex.ID]; !exists {
		c.order = append(c.order, ex.ID)
	}
	c.byID[ex.ID] = ex
}

// Get returns the exercise with the given id.
func (c *Catalog) Get(id string) (Exercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// Has reports whether an exercise with the given id exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// All returns every exercise in insertion order.
func (c *Catalog) All() []Exercise {
	exercises := make([]Exercise, 0, len(c.order))
	for _, id := range c.order {
		exercises = append(exercises, c.byID[id])
	}
	return exercises
}

// ByPattern returns the exercises matching the given movement pattern in
// insertion order.
func (c *Catalog) ByPattern(pattern MovementPattern) []Exercise {
	var matched []Exercise
	for _, id := range c.order {
		if ex := c.byID[id]; ex.Pattern == pattern {
			matched = append(matched, ex)
		}
	}
	return matched
}

// Len returns the number of exercises in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Usable reports whether an exercise can be performed with the owned
// equipment: either it requires none, or at least one required item is owned.
func Usable(ex Exercise, ownedEquipment []string) bool {
	if len(ex.RequiredEquipment) == 0 {
		return true
	}
	for _, required := range ex.RequiredEquipment {
		for _, owned := range ownedEquipment {
			if required == owned {
				return true
			}
		}
	}
	return false
}

// FirstUsable returns the first exercise of the given pattern usable with the
// owned equipment. The boolean is false when the pattern has no usable entry.
func (c *Catalog) FirstUsable(pattern MovementPattern, ownedEquipment []string) (Exercise, bool) {
	for _, ex := range c.ByPattern(pattern) {
		if Usable(ex, ownedEquipment) {
			return ex, true
		}
	}
	return Exercise{}, false
}
