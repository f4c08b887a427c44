package models

// PartThermalInsulation is the catalog part whose chosen material decides
// re-entry survival.
const PartThermalInsulation = "Plane thermal insulation"

// Part is a fixed catalog entry. The part list defines the exact set of valid
// keys in a player's selections.
type Part struct {
	Name   string  `json:"name" yaml:"name"`
	Area   float64 `json:"area" yaml:"area"`     // m2
	Volume float64 `json:"volume" yaml:"volume"` // m3
}
