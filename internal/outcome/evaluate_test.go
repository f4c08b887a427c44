package outcome

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/mwhitt/launchroom/internal/models"
)

const massThreshold = 50000

func playerWithInsulation(mass float64, rating int) models.Player {
	return models.Player{
		TeamName:  "testers",
		TotalMass: mass,
		Selections: models.Selections{
			models.PartThermalInsulation: {Name: "test material", InsulationRating: rating},
		},
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc     string
		player   models.Player
		expected models.Outcome
	}{
		{
			desc:   "light and insulated succeeds",
			player: playerWithInsulation(40000, 2),
			expected: models.Outcome{
				TakeoffSuccess: true,
				ReentrySurvive: true,
				Label:          LabelSuccess,
			},
		},
		{
			desc:   "mass at threshold still takes off",
			player: playerWithInsulation(50000, 1),
			expected: models.Outcome{
				TakeoffSuccess: true,
				ReentrySurvive: true,
				Label:          LabelSuccess,
			},
		},
		{
			desc:   "zero insulation rating burns on re-entry",
			player: playerWithInsulation(40000, 0),
			expected: models.Outcome{
				TakeoffSuccess: true,
				ReentrySurvive: false,
				Label:          LabelBurntOnReentry,
			},
		},
		{
			desc:   "no insulation selection counts as rating zero",
			player: models.Player{TotalMass: 40000, Selections: models.Selections{}},
			expected: models.Outcome{
				TakeoffSuccess: true,
				ReentrySurvive: false,
				Label:          LabelBurntOnReentry,
			},
		},
		{
			desc:   "overweight fails takeoff",
			player: playerWithInsulation(60000, 0),
			expected: models.Outcome{
				TakeoffSuccess: false,
				ReentrySurvive: false,
				Label:          LabelTooHeavy,
			},
		},
		{
			desc:   "takeoff failure dominates even with good insulation",
			player: playerWithInsulation(60000, 3),
			expected: models.Outcome{
				TakeoffSuccess: false,
				ReentrySurvive: true,
				Label:          LabelTooHeavy,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := Evaluate(tc.player, massThreshold)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEvaluateIsPure(t *testing.T) {
	t.Parallel()

	player := playerWithInsulation(40000, 2)
	first := Evaluate(player, massThreshold)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate(player, massThreshold))
	}
	// Input must not be mutated.
	assert.Equal(t, playerWithInsulation(40000, 2), player)
}

func TestBuildSummary(t *testing.T) {
	t.Parallel()

	players := []models.Player{
		{
			ID: "a", TeamName: "alpha", TotalMass: 40000, TotalCost: 120,
			Selections: models.Selections{
				models.PartThermalInsulation: {Name: "Aluminium", InsulationRating: 3},
			},
		},
		{ID: "b", TeamName: "bravo", TotalMass: 99999, TotalCost: 5},
	}

	summary := BuildSummary(players, massThreshold)

	expected := []models.SummaryEntry{
		{
			TeamName: "alpha", TotalMass: 40000, TotalCost: 120,
			Selections: models.Selections{
				models.PartThermalInsulation: {Name: "Aluminium", InsulationRating: 3},
			},
			TakeoffSuccess: true, ReentrySurvive: true, Label: LabelSuccess,
		},
		{
			TeamName: "bravo", TotalMass: 99999, TotalCost: 5,
			TakeoffSuccess: false, ReentrySurvive: false, Label: LabelTooHeavy,
		},
	}
	if diff := cmp.Diff(expected, summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}
}
