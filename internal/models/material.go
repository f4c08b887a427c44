package models

// Material is immutable reference data, shared read-only by all players.
type Material struct {
	Name             string  `json:"name" yaml:"name"`
	Density          float64 `json:"density" yaml:"density"` // kg/m3
	Price            float64 `json:"price" yaml:"price"`     // £/kg
	Thermal          string  `json:"thermal" yaml:"thermal"`
	InsulationRating int     `json:"insulationRating" yaml:"insulation_rating"`
}
