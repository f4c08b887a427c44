package catalog

import (
	"fmt"
	"os"
	"time"

	"github.com/mwhitt/launchroom/internal/models"
	"gopkg.in/yaml.v3"
)

// Catalog is the read-only reference data supplied at startup: the part and
// material lists, the takeoff mass threshold, and the round duration. The
// core never computes this data, it only consumes it.
type Catalog struct {
	Parts           []models.Part
	Materials       []models.Material
	MassThresholdKg float64
	RoundDuration   time.Duration

	partsByName     map[string]models.Part
	materialsByName map[string]models.Material
}

// fileCatalog is the YAML shape of a catalog file.
type fileCatalog struct {
	Parts           []models.Part     `yaml:"parts"`
	Materials       []models.Material `yaml:"materials"`
	MassThresholdKg float64           `yaml:"mass_threshold_kg"`
	RoundDuration   string            `yaml:"round_duration"`
}

// Default returns the reference catalog: four shuttle parts, six materials,
// a 50000 kg takeoff threshold and a ten minute round.
func Default() *Catalog {
	cat := &Catalog{
		Parts: []models.Part{
			{Name: "Nose tip and wing tips", Area: 120, Volume: 2},
			{Name: "Main plane body (fuselage)", Area: 800, Volume: 80},
			{Name: models.PartThermalInsulation, Area: 600, Volume: 60},
			{Name: "Jet engine", Area: 200, Volume: 20},
		},
		Materials: []models.Material{
			{Name: "Titanium oxide", Density: 4500, Price: 234, Thermal: "High", InsulationRating: 3},
			{Name: "Silicon dioxide (glass)", Density: 2500, Price: 130, Thermal: "Low", InsulationRating: 1},
			{Name: "Reinforced Graphite (carbon fibre)", Density: 1600, Price: 7250, Thermal: "Medium", InsulationRating: 2},
			{Name: "Tungsten", Density: 19300, Price: 343, Thermal: "High", InsulationRating: 3},
			{Name: "Borosilicate tiles", Density: 144.2, Price: 6000, Thermal: "Very Low", InsulationRating: 0},
			{Name: "Aluminium", Density: 2700, Price: 2, Thermal: "High", InsulationRating: 3},
		},
		MassThresholdKg: 50000,
		RoundDuration:   10 * time.Minute,
	}
	cat.index()
	return cat
}

// Load reads and validates a catalog from a YAML file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	duration, err := time.ParseDuration(fc.RoundDuration)
	if err != nil {
		return nil, fmt.Errorf("invalid round_duration %q: %w", fc.RoundDuration, err)
	}

	cat := &Catalog{
		Parts:           fc.Parts,
		Materials:       fc.Materials,
		MassThresholdKg: fc.MassThresholdKg,
		RoundDuration:   duration,
	}
	if err := cat.validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	cat.index()
	return cat, nil
}

func (c *Catalog) validate() error {
	if len(c.Parts) == 0 {
		return fmt.Errorf("at least one part is required")
	}
	if len(c.Materials) == 0 {
		return fmt.Errorf("at least one material is required")
	}
	if c.MassThresholdKg <= 0 {
		return fmt.Errorf("mass_threshold_kg must be greater than 0")
	}
	if c.RoundDuration <= 0 {
		return fmt.Errorf("round_duration must be greater than 0")
	}

	seenParts := make(map[string]bool, len(c.Parts))
	for _, part := range c.Parts {
		if part.Name == "" {
			return fmt.Errorf("part name is required")
		}
		if seenParts[part.Name] {
			return fmt.Errorf("duplicate part name: %s", part.Name)
		}
		seenParts[part.Name] = true
		if part.Volume <= 0 {
			return fmt.Errorf("part %s: volume must be greater than 0", part.Name)
		}
	}

	seenMaterials := make(map[string]bool, len(c.Materials))
	for _, mat := range c.Materials {
		if mat.Name == "" {
			return fmt.Errorf("material name is required")
		}
		if seenMaterials[mat.Name] {
			return fmt.Errorf("duplicate material name: %s", mat.Name)
		}
		seenMaterials[mat.Name] = true
		if mat.Density <= 0 {
			return fmt.Errorf("material %s: density must be greater than 0", mat.Name)
		}
		if mat.InsulationRating < 0 {
			return fmt.Errorf("material %s: insulation rating cannot be negative", mat.Name)
		}
	}
	return nil
}

func (c *Catalog) index() {
	c.partsByName = make(map[string]models.Part, len(c.Parts))
	for _, part := range c.Parts {
		c.partsByName[part.Name] = part
	}
	c.materialsByName = make(map[string]models.Material, len(c.Materials))
	for _, mat := range c.Materials {
		c.materialsByName[mat.Name] = mat
	}
}

// PartByName returns the catalog part with the given name.
func (c *Catalog) PartByName(name string) (models.Part, bool) {
	part, ok := c.partsByName[name]
	return part, ok
}

// MaterialByName returns the catalog material with the given name.
func (c *Catalog) MaterialByName(name string) (models.Material, bool) {
	mat, ok := c.materialsByName[name]
	return mat, ok
}

// NormalizeSelections filters a client-supplied selections payload against
// the part catalog. Unknown part names are dropped rather than stored
// verbatim, and negative insulation ratings are clamped to zero. Material
// values are otherwise accepted as reported; totals are never re-derived
// from the catalog here.
func (c *Catalog) NormalizeSelections(raw models.Selections) models.Selections {
	normalized := make(models.Selections, len(raw))
	for partName, mat := range raw {
		if _, ok := c.partsByName[partName]; !ok {
			continue
		}
		if mat.InsulationRating < 0 {
			mat.InsulationRating = 0
		}
		normalized[partName] = mat
	}
	return normalized
}
