package models

// Selections maps a part name to the material chosen for it. At most one
// entry per known part name.
type Selections map[string]Material

// Player is a room member. Identity is an opaque string, stable per
// connection and unique within a room. Totals are client-reported and
// trusted as-is.
type Player struct {
	ID         string     `json:"playerId"`
	TeamName   string     `json:"teamName"`
	Ready      bool       `json:"ready"`
	Selections Selections `json:"selections"`
	TotalMass  float64    `json:"totalMass"`
	TotalCost  float64    `json:"totalCost"`
}

// Clone returns a deep copy so snapshots handed to callers never alias
// room-owned state.
func (p Player) Clone() Player {
	cp := p
	if p.Selections != nil {
		cp.Selections = make(Selections, len(p.Selections))
		for name, mat := range p.Selections {
			cp.Selections[name] = mat
		}
	}
	return cp
}
