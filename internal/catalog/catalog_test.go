package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitt/launchroom/internal/models"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	cat := Default()

	assert.Len(t, cat.Parts, 4)
	assert.Len(t, cat.Materials, 6)
	assert.Equal(t, float64(50000), cat.MassThresholdKg)
	assert.Equal(t, 10*time.Minute, cat.RoundDuration)

	// The insulation part is load-bearing for the outcome rule.
	part, ok := cat.PartByName(models.PartThermalInsulation)
	require.True(t, ok)
	assert.Equal(t, float64(60), part.Volume)

	mat, ok := cat.MaterialByName("Borosilicate tiles")
	require.True(t, ok)
	assert.Equal(t, 0, mat.InsulationRating)
}

func writeCatalogFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := writeCatalogFile(t, `
mass_threshold_kg: 1000
round_duration: 90s
parts:
  - name: "Hull"
    area: 10
    volume: 5
materials:
  - name: "Foam"
    density: 50
    price: 2
    thermal: "Low"
    insulation_rating: 1
`)

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float64(1000), cat.MassThresholdKg)
	assert.Equal(t, 90*time.Second, cat.RoundDuration)
	assert.Len(t, cat.Parts, 1)
	assert.Len(t, cat.Materials, 1)
}

func TestLoadRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc     string
		contents string
	}{
		{
			desc: "missing parts",
			contents: `
mass_threshold_kg: 1000
round_duration: 90s
materials:
  - {name: "Foam", density: 50, price: 2, thermal: "Low", insulation_rating: 1}
`,
		},
		{
			desc: "duplicate part names",
			contents: `
mass_threshold_kg: 1000
round_duration: 90s
parts:
  - {name: "Hull", area: 10, volume: 5}
  - {name: "Hull", area: 12, volume: 6}
materials:
  - {name: "Foam", density: 50, price: 2, thermal: "Low", insulation_rating: 1}
`,
		},
		{
			desc: "negative insulation rating",
			contents: `
mass_threshold_kg: 1000
round_duration: 90s
parts:
  - {name: "Hull", area: 10, volume: 5}
materials:
  - {name: "Foam", density: 50, price: 2, thermal: "Low", insulation_rating: -1}
`,
		},
		{
			desc: "bad duration",
			contents: `
mass_threshold_kg: 1000
round_duration: soon
parts:
  - {name: "Hull", area: 10, volume: 5}
materials:
  - {name: "Foam", density: 50, price: 2, thermal: "Low", insulation_rating: 1}
`,
		},
		{
			desc: "zero threshold",
			contents: `
mass_threshold_kg: 0
round_duration: 90s
parts:
  - {name: "Hull", area: 10, volume: 5}
materials:
  - {name: "Foam", density: 50, price: 2, thermal: "Low", insulation_rating: 1}
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Load(writeCatalogFile(t, tc.contents))
			assert.Error(t, err)
		})
	}
}

func TestNormalizeSelections(t *testing.T) {
	t.Parallel()

	cat := Default()

	raw := models.Selections{
		models.PartThermalInsulation: {Name: "Aluminium", InsulationRating: 3},
		"Warp drive":                 {Name: "Unobtainium", InsulationRating: 9},
		"Jet engine":                 {Name: "Mystery metal", InsulationRating: -2},
	}

	normalized := cat.NormalizeSelections(raw)

	// Unknown part names are dropped, not stored verbatim.
	assert.NotContains(t, normalized, "Warp drive")
	assert.Contains(t, normalized, models.PartThermalInsulation)

	// Negative ratings are clamped; unknown material names pass through, as
	// selections are trusted beyond shape.
	assert.Equal(t, 0, normalized["Jet engine"].InsulationRating)
	assert.Equal(t, "Mystery metal", normalized["Jet engine"].Name)

	// Input is not mutated.
	assert.Equal(t, -2, raw["Jet engine"].InsulationRating)
}
