// Package outcome computes the launch verdict for a player's final design.
// Evaluate is a pure function: no side effects, safe to call repeatedly and
// in parallel across players.
package outcome

import (
	"github.com/mwhitt/launchroom/internal/models"
)

// Outcome labels, in dominance order. A takeoff failure always wins over the
// re-entry check, regardless of the insulation choice.
const (
	LabelTooHeavy       = "Failed on takeoff (Too heavy)"
	LabelBurntOnReentry = "Burnt on re-entry (Insufficient insulation)"
	LabelSuccess        = "Successful launch and re-entry"
)

// Evaluate maps a player's final selections and reported totals to a
// pass/fail verdict per stage and an aggregate label.
//
// Takeoff succeeds when total mass is at or below the threshold. Re-entry is
// survived when the material chosen for the thermal insulation part has an
// insulation rating of at least 1; a missing selection counts as rating 0.
func Evaluate(player models.Player, massThresholdKg float64) models.Outcome {
	takeoffSuccess := player.TotalMass <= massThresholdKg

	insulationRating := 0
	if mat, ok := player.Selections[models.PartThermalInsulation]; ok {
		insulationRating = mat.InsulationRating
	}
	reentrySurvive := insulationRating >= 1

	label := LabelSuccess
	switch {
	case !takeoffSuccess:
		label = LabelTooHeavy
	case !reentrySurvive:
		label = LabelBurntOnReentry
	}

	return models.Outcome{
		TakeoffSuccess: takeoffSuccess,
		ReentrySurvive: reentrySurvive,
		Label:          label,
	}
}

// BuildSummary evaluates every player and returns one summary entry per
// player. Input order is preserved.
func BuildSummary(players []models.Player, massThresholdKg float64) []models.SummaryEntry {
	summary := make([]models.SummaryEntry, 0, len(players))
	for _, player := range players {
		verdict := Evaluate(player, massThresholdKg)
		summary = append(summary, models.SummaryEntry{
			TeamName:       player.TeamName,
			TotalMass:      player.TotalMass,
			TotalCost:      player.TotalCost,
			Selections:     player.Selections,
			TakeoffSuccess: verdict.TakeoffSuccess,
			ReentrySurvive: verdict.ReentrySurvive,
			Label:          verdict.Label,
		})
	}
	return summary
}
