package models

// Outcome is the pass/fail verdict derived from a player's final mass and
// insulation choice.
type Outcome struct {
	TakeoffSuccess bool   `json:"takeoffSuccess"`
	ReentrySurvive bool   `json:"reentrySurvive"`
	Label          string `json:"label"`
}

// SummaryEntry is one player's line in the end-of-round summary.
type SummaryEntry struct {
	TeamName       string     `json:"teamName"`
	TotalMass      float64    `json:"totalMass"`
	TotalCost      float64    `json:"totalCost"`
	Selections     Selections `json:"selections"`
	TakeoffSuccess bool       `json:"takeoffSuccess"`
	ReentrySurvive bool       `json:"reentrySurvive"`
	Label          string     `json:"label"`
}
