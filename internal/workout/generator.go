package workout

import (
	"math"

	"github.com/mtuomisto/planfit/internal/catalog"
	"github.com/mtuomisto/planfit/internal/ptr"
)

// Set scheme tables. Main and secondary lifts carry load targets; accessories
// stay rep-based so they survive equipment and readiness changes unharmed.
type setScheme struct {
	sets       int
	reps       int
	percent1RM float64 // 0 means no percent target
	rpe        float64 // 0 means no RPE target
}

var mainSchemes = map[Goal]setScheme{
	GoalStrength:     {sets: 5, reps: 3, percent1RM: 85, rpe: 8},
	GoalHybrid:       {sets: 4, reps: 6, percent1RM: 75, rpe: 7.5},
	GoalConditioning: {sets: 3, reps: 8, percent1RM: 67.5, rpe: 6.5},
	GoalGeneral:      {sets: 3, reps: 8, percent1RM: 70, rpe: 7},
}

var secondarySchemes = map[Goal]setScheme{
	GoalStrength:     {sets: 3, reps: 5, percent1RM: 77.5, rpe: 7},
	GoalHybrid:       {sets: 3, reps: 8, percent1RM: 70, rpe: 7},
	GoalConditioning: {sets: 2, reps: 10, percent1RM: 0, rpe: 6},
	GoalGeneral:      {sets: 3, reps: 10, percent1RM: 0, rpe: 6.5},
}

var accessorySchemes = map[Goal]setScheme{
	GoalStrength:     {sets: 3, reps: 10, percent1RM: 0, rpe: 0},
	GoalHybrid:       {sets: 3, reps: 12, percent1RM: 0, rpe: 0},
	GoalConditioning: {sets: 2, reps: 15, percent1RM: 0, rpe: 0},
	GoalGeneral:      {sets: 3, reps: 12, percent1RM: 0, rpe: 0},
}

// Lift counts per experience level.
var secondaryLiftCount = map[Experience]int{
	ExperienceBeginner:     0,
	ExperienceIntermediate: 1,
	ExperienceAdvanced:     2,
}

var accessoryLiftCount = map[Experience]int{
	ExperienceBeginner:     2,
	ExperienceIntermediate: 3,
	ExperienceAdvanced:     3,
}

// Movement pattern preference orders. Selection walks the order and takes the
// first exercise usable with the owned equipment.
var mainPatternOrder = map[Goal][]catalog.MovementPattern{
	GoalStrength:     {catalog.PatternSquat, catalog.PatternHinge, catalog.PatternPushHorizontal},
	GoalHybrid:       {catalog.PatternHinge, catalog.PatternSquat, catalog.PatternPushHorizontal},
	GoalConditioning: {catalog.PatternHinge, catalog.PatternSquat},
	GoalGeneral:      {catalog.PatternSquat, catalog.PatternPushHorizontal},
}

var secondaryPatternOrder = map[Goal][]catalog.MovementPattern{
	GoalStrength:     {catalog.PatternPushHorizontal, catalog.PatternPullHorizontal, catalog.PatternPushVertical},
	GoalHybrid:       {catalog.PatternPushHorizontal, catalog.PatternPullVertical, catalog.PatternPushVertical},
	GoalConditioning: {catalog.PatternPushHorizontal, catalog.PatternPullHorizontal},
	GoalGeneral:      {catalog.PatternPullHorizontal, catalog.PatternPushVertical},
}

var accessoryPatternOrder = []catalog.MovementPattern{
	catalog.PatternLunge,
	catalog.PatternCore,
	catalog.PatternPullVertical,
	catalog.PatternCarry,
}

// conditioningScheme parametrizes the conditioning block per goal.
type conditioningScheme struct {
	mode            ConditioningMode
	workSeconds     int
	restSeconds     int
	roundsByLevel   map[Experience]int
	durationMinutes int
	zone            string
	notes           string
}

var conditioningSchemes = map[Goal]conditioningScheme{
	GoalStrength: {
		mode:            ConditioningSteady,
		durationMinutes: 10,
		zone:            "Z2",
		notes:           "easy flush after the strength work",
	},
	GoalConditioning: {
		mode:          ConditioningInterval,
		workSeconds:   40,
		restSeconds:   20,
		roundsByLevel: map[Experience]int{ExperienceBeginner: 8, ExperienceIntermediate: 10, ExperienceAdvanced: 12},
		zone:          "Z4",
	},
	GoalHybrid: {
		mode:          ConditioningInterval,
		workSeconds:   30,
		restSeconds:   30,
		roundsByLevel: map[Experience]int{ExperienceBeginner: 6, ExperienceIntermediate: 8, ExperienceAdvanced: 10},
		zone:          "Z3",
	},
	GoalGeneral: {
		mode:            ConditioningSteady,
		durationMinutes: 15,
		zone:            "Z2",
	},
}

var warmupItems = []WarmupItem{
	{Name: "Jumping Jacks", DurationSeconds: 120},
	{Name: "Arm Circles", DurationSeconds: 60},
	{Name: "Leg Swings", DurationSeconds: 60},
	{Name: "World's Greatest Stretch", DurationSeconds: 90},
}

var cooldownItems = []string{
	"Quad Stretch",
	"Hamstring Stretch",
	"Doorway Chest Stretch",
	"Deep Nasal Breathing",
}

// dayParams are the inputs to a single day's generation. The generator knows
// nothing about calendar dates or readiness.
type dayParams struct {
	goal            Goal
	experience      Experience
	equipmentIDs    []string
	units           Units
	strengthNumbers map[string]float64
}

// dayGenerator assembles one day's ordered block sequence from the catalog.
type dayGenerator struct {
	cat    *catalog.Catalog
	params dayParams
}

func newDayGenerator(cat *catalog.Catalog, params dayParams) *dayGenerator {
	return &dayGenerator{cat: cat, params: params}
}

// generate builds the ordered block sequence and its estimated duration.
func (g *dayGenerator) generate() ([]Block, int) {
	selected := map[string]bool{}

	strength := g.strengthBlock(selected)
	accessory := g.accessoryBlock(selected)
	conditioning := g.conditioningBlock()

	blocks := []Block{
		{ID: string(BlockWarmup), Type: BlockWarmup, Warmup: warmupItems},
		strength,
		accessory,
		conditioning,
		{ID: string(BlockCooldown), Type: BlockCooldown, Cooldown: cooldownItems},
	}
	return blocks, estimateDuration(blocks)
}

// strengthBlock selects the main lift and the experience-dependent secondary
// lifts, authoring their set prescriptions.
func (g *dayGenerator) strengthBlock(selected map[string]bool) Block {
	main := g.selectFromPatterns(mainPatternOrder[g.params.goal], selected)
	mainRx := g.prescribe(main.ID, mainSchemes[g.params.goal])

	var secondary []ExercisePrescription
	for n := 0; n < secondaryLiftCount[g.params.experience]; n++ {
		ex, ok := g.selectFromPatternsOK(secondaryPatternOrder[g.params.goal], selected)
		if !ok {
			break
		}
		secondary = append(secondary, g.prescribe(ex.ID, secondarySchemes[g.params.goal]))
	}

	return Block{
		ID:        string(BlockStrength),
		Type:      BlockStrength,
		Main:      &mainRx,
		Secondary: secondary,
	}
}

// accessoryBlock picks rep-based accessory movements across the accessory
// pattern order.
func (g *dayGenerator) accessoryBlock(selected map[string]bool) Block {
	scheme := accessorySchemes[g.params.goal]
	count := accessoryLiftCount[g.params.experience]

	var accessory []ExercisePrescription
	for _, pattern := range accessoryPatternOrder {
		if len(accessory) >= count {
			break
		}
		ex, ok := g.firstUsableExcluding(pattern, selected)
		if !ok {
			continue
		}
		selected[ex.ID] = true
		sets := make([]SetPrescription, scheme.sets)
		for i := range sets {
			sets[i] = SetPrescription{TargetReps: scheme.reps, TargetPercent1RM: nil, TargetRPE: nil}
		}
		accessory = append(accessory, ExercisePrescription{ExerciseID: ex.ID, Sets: sets})
	}

	return Block{ID: string(BlockAccessory), Type: BlockAccessory, Accessory: accessory}
}

// conditioningBlock formats the conditioning piece for the goal.
func (g *dayGenerator) conditioningBlock() Block {
	scheme := conditioningSchemes[g.params.goal]
	modality, ok := g.firstUsableExcluding(catalog.PatternConditioning, nil)
	if !ok {
		modality = g.anyFallback()
	}

	rx := &ConditioningPrescription{
		ExerciseID:      modality.ID,
		Mode:            scheme.mode,
		WorkSeconds:     scheme.workSeconds,
		RestSeconds:     scheme.restSeconds,
		Rounds:          scheme.roundsByLevel[g.params.experience],
		DurationMinutes: scheme.durationMinutes,
		TargetZone:      scheme.zone,
		Notes:           scheme.notes,
	}
	return Block{ID: string(BlockConditioning), Type: BlockConditioning, Conditioning: rx}
}

// prescribe authors the planned sets for a strength lift. A known 1RM yields
// percent-of-1RM targets; otherwise the scheme's RPE drives the load.
func (g *dayGenerator) prescribe(exerciseID string, scheme setScheme) ExercisePrescription {
	_, has1RM := g.params.strengthNumbers[exerciseID]

	sets := make([]SetPrescription, scheme.sets)
	for i := range sets {
		set := SetPrescription{TargetReps: scheme.reps, TargetPercent1RM: nil, TargetRPE: nil}
		switch {
		case has1RM && scheme.percent1RM > 0:
			set.TargetPercent1RM = ptr.To(scheme.percent1RM)
		case scheme.rpe > 0:
			set.TargetRPE = ptr.To(scheme.rpe)
		}
		sets[i] = set
	}
	return ExercisePrescription{ExerciseID: exerciseID, Sets: sets}
}

// selectFromPatterns returns a usable exercise following the pattern
// preference order, degrading to anyFallback rather than failing.
func (g *dayGenerator) selectFromPatterns(patterns []catalog.MovementPattern, selected map[string]bool) catalog.Exercise {
	if ex, ok := g.selectFromPatternsOK(patterns, selected); ok {
		return ex
	}
	ex := g.anyFallback()
	selected[ex.ID] = true
	return ex
}

func (g *dayGenerator) selectFromPatternsOK(
	patterns []catalog.MovementPattern,
	selected map[string]bool,
) (catalog.Exercise, bool) {
	for _, pattern := range patterns {
		if ex, ok := g.firstUsableExcluding(pattern, selected); ok {
			selected[ex.ID] = true
			return ex, true
		}
	}
	return catalog.Exercise{}, false
}

// firstUsableExcluding finds the first equipment-usable exercise of a pattern
// that has not been selected yet.
func (g *dayGenerator) firstUsableExcluding(
	pattern catalog.MovementPattern,
	selected map[string]bool,
) (catalog.Exercise, bool) {
	for _, ex := range g.cat.ByPattern(pattern) {
		if selected[ex.ID] {
			continue
		}
		if catalog.Usable(ex, g.params.equipmentIDs) {
			return ex, true
		}
	}
	return catalog.Exercise{}, false
}

// anyFallback returns the first usable exercise anywhere in the catalog, or
// the catalog's first entry when the inventory matches nothing at all.
// Generation degrades instead of failing on an impossible inventory.
func (g *dayGenerator) anyFallback() catalog.Exercise {
	all := g.cat.All()
	for _, ex := range all {
		if catalog.Usable(ex, g.params.equipmentIDs) {
			return ex
		}
	}
	return all[0]
}

// estimateDuration sums per-block time estimates in minutes.
func estimateDuration(blocks []Block) int {
	total := 0
	for _, block := range blocks {
		switch block.Type {
		case BlockWarmup:
			seconds := 0
			for _, item := range block.Warmup {
				seconds += item.DurationSeconds
			}
			total += int(math.Ceil(float64(seconds) / 60))
		case BlockStrength:
			sets := 0
			if block.Main != nil {
				sets += len(block.Main.Sets)
			}
			for _, rx := range block.Secondary {
				sets += len(rx.Sets)
			}
			total += sets * 3 // heavy sets with full rest
		case BlockAccessory:
			sets := 0
			for _, rx := range block.Accessory {
				sets += len(rx.Sets)
			}
			total += sets * 2
		case BlockConditioning:
			if block.Conditioning == nil {
				continue
			}
			if block.Conditioning.Mode == ConditioningInterval {
				seconds := block.Conditioning.Rounds * (block.Conditioning.WorkSeconds + block.Conditioning.RestSeconds)
				total += int(math.Ceil(float64(seconds) / 60))
			} else {
				total += block.Conditioning.DurationMinutes
			}
		case BlockCooldown:
			total += 5
		}
	}
	return total
}
