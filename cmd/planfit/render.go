package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mtuomisto/planfit/internal/catalog"
	"github.com/mtuomisto/planfit/internal/readiness"
	"github.com/mtuomisto/planfit/internal/records"
	"github.com/mtuomisto/planfit/internal/workout"
)

var (
	heading   = color.New(color.FgGreen, color.Bold).SprintFunc()
	label     = color.New(color.FgCyan).SprintFunc()
	highlight = color.New(color.FgYellow).SprintFunc()
	alert     = color.New(color.FgRed).SprintFunc()
)

func renderReadiness(w io.Writer, score readiness.Score) {
	fmt.Fprintf(w, "%s %s\n", heading("Readiness:"), readinessBand(score.Value))
	fmt.Fprintf(w, "  %s %.0f  %s %.0f  %s %.0f  %s %.0f\n\n",
		label("sleep"), score.Factors.Sleep,
		label("energy"), score.Factors.Energy,
		label("soreness"), score.Factors.Soreness,
		label("stress"), score.Factors.Stress)
}

// readinessBand colors the score by its adaptation band.
func readinessBand(value int) string {
	text := fmt.Sprintf("%d/100", value)
	switch {
	case value < 40:
		return alert(text)
	case value < 60:
		return highlight(text)
	default:
		return heading(text)
	}
}

func renderWeek(w io.Writer, cat *catalog.Catalog, days []workout.PlanDay) {
	for _, day := range days {
		renderDay(w, cat, day)
	}
}

func renderCycle(w io.Writer, cat *catalog.Catalog, cycle workout.Cycle) {
	for i, week := range cycle.Weeks {
		fmt.Fprintf(w, "%s\n\n", heading(fmt.Sprintf("=== Week %d ===", i+1)))
		renderWeek(w, cat, week)
	}
}

func renderDay(w io.Writer, cat *catalog.Catalog, day workout.PlanDay) {
	focus := make([]string, len(day.FocusTags))
	for i, tag := range day.FocusTags {
		focus[i] = string(tag)
	}

	fmt.Fprintf(w, "%s %s", heading(day.Date.Format("Mon 2006-01-02")), highlight(strings.Join(focus, ", ")))
	if day.IsRestDay() {
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, " (~%d min", day.EstimatedDurationMinutes)
	if day.AdjustedForReadiness {
		fmt.Fprintf(w, ", %s", highlight("readiness-adjusted"))
	}
	fmt.Fprintln(w, ")")

	for _, block := range day.Blocks {
		renderBlock(w, cat, block)
	}
	fmt.Fprintln(w)
}

func renderBlock(w io.Writer, cat *catalog.Catalog, block workout.Block) {
	switch block.Type {
	case workout.BlockWarmup:
		fmt.Fprintf(w, "  %s\n", label("Warm-up"))
		for _, item := range block.Warmup {
			fmt.Fprintf(w, "    %s (%ds)\n", item.Name, item.DurationSeconds)
		}
	case workout.BlockStrength:
		fmt.Fprintf(w, "  %s\n", label("Strength"))
		if block.Main != nil {
			renderPrescription(w, cat, *block.Main, "main")
		}
		for _, rx := range block.Secondary {
			renderPrescription(w, cat, rx, "secondary")
		}
	case workout.BlockAccessory:
		if len(block.Accessory) == 0 {
			return
		}
		fmt.Fprintf(w, "  %s\n", label("Accessory"))
		for _, rx := range block.Accessory {
			renderPrescription(w, cat, rx, "")
		}
	case workout.BlockConditioning:
		if block.Conditioning == nil {
			return
		}
		fmt.Fprintf(w, "  %s\n", label("Conditioning"))
		renderConditioning(w, cat, *block.Conditioning)
	case workout.BlockCooldown:
		fmt.Fprintf(w, "  %s %s\n", label("Cooldown"), strings.Join(block.Cooldown, ", "))
	}
}

func renderPrescription(w io.Writer, cat *catalog.Catalog, rx workout.ExercisePrescription, role string) {
	name := exerciseName(cat, rx.ExerciseID)
	if role != "" {
		name = fmt.Sprintf("%s [%s]", name, role)
	}
	fmt.Fprintf(w, "    %s %s\n", highlight(name), formatSets(rx.Sets))
}

// formatSets compresses uniform sets into "5×3 @ 85% 1RM" form and lists
// mixed sets individually.
func formatSets(sets []workout.SetPrescription) string {
	if len(sets) == 0 {
		return ""
	}
	uniform := true
	for _, set := range sets[1:] {
		if !setEqual(set, sets[0]) {
			uniform = false
			break
		}
	}
	if uniform {
		return fmt.Sprintf("%d×%s", len(sets), formatSet(sets[0]))
	}

	parts := make([]string, len(sets))
	for i, set := range sets {
		parts[i] = formatSet(set)
	}
	return strings.Join(parts, ", ")
}

func formatSet(set workout.SetPrescription) string {
	out := fmt.Sprintf("%d", set.TargetReps)
	if set.TargetPercent1RM != nil {
		out += fmt.Sprintf(" @ %.1f%% 1RM", *set.TargetPercent1RM)
	}
	if set.TargetRPE != nil {
		out += fmt.Sprintf(" @ RPE %.1f", *set.TargetRPE)
	}
	return out
}

func setEqual(a, b workout.SetPrescription) bool {
	if a.TargetReps != b.TargetReps {
		return false
	}
	if (a.TargetPercent1RM == nil) != (b.TargetPercent1RM == nil) {
		return false
	}
	if a.TargetPercent1RM != nil && *a.TargetPercent1RM != *b.TargetPercent1RM {
		return false
	}
	if (a.TargetRPE == nil) != (b.TargetRPE == nil) {
		return false
	}
	if a.TargetRPE != nil && *a.TargetRPE != *b.TargetRPE {
		return false
	}
	return true
}

func renderConditioning(w io.Writer, cat *catalog.Catalog, rx workout.ConditioningPrescription) {
	name := exerciseName(cat, rx.ExerciseID)
	switch rx.Mode {
	case workout.ConditioningInterval:
		fmt.Fprintf(w, "    %s %d × %ds on / %ds off",
			highlight(name), rx.Rounds, rx.WorkSeconds, rx.RestSeconds)
	case workout.ConditioningSteady:
		fmt.Fprintf(w, "    %s %d min steady", highlight(name), rx.DurationMinutes)
	}
	if rx.TargetZone != "" {
		fmt.Fprintf(w, " @ %s", rx.TargetZone)
	}
	fmt.Fprintln(w)
	if rx.Notes != "" {
		fmt.Fprintf(w, "    %s\n", rx.Notes)
	}
}

func renderPRs(w io.Writer, cat *catalog.Catalog, newRecords []records.PersonalRecord) {
	if len(newRecords) == 0 {
		fmt.Fprintln(w, "No new personal records this session.")
		return
	}

	fmt.Fprintf(w, "%s\n", heading("New personal records"))
	for _, record := range newRecords {
		fmt.Fprintf(w, "  %s %s: %.1f × %d (est. 1RM %s)\n",
			heading("★"),
			highlight(exerciseName(cat, record.ExerciseID)),
			record.Weight, record.Reps,
			heading(fmt.Sprintf("%.1f", record.Estimated1RM)))
	}
}

func exerciseName(cat *catalog.Catalog, id string) string {
	if ex, ok := cat.Get(id); ok {
		return ex.Name
	}
	return id
}
