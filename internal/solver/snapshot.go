package solver

import (
	"sort"

	"mortar/internal/building"
)

// Snapshot is a deterministic dump of everything the solver tracks, for the
// debug endpoints and golden tests. Perimeters, points, lines and constraint
// keys are sorted so equal states always serialize identically.
type Snapshot struct {
	Perimeters []PerimeterSnapshot `json:"perimeters"`
}

// PerimeterSnapshot is the tracked state of one perimeter.
type PerimeterSnapshot struct {
	ID          building.PerimeterID `json:"id"`
	Points      []PointSnapshot      `json:"points"`
	Lines       []LineSnapshot       `json:"lines"`
	Constraints []string             `json:"constraints"`
}

// PointSnapshot is one tracked point and its last synchronized position.
type PointSnapshot struct {
	ID PointID `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// LineSnapshot is one tracked line and the point identities it spans.
type LineSnapshot struct {
	ID    LineID  `json:"id"`
	Start PointID `json:"start"`
	End   PointID `json:"end"`
}

func sortSnapshot(s *Snapshot) {
	sort.Slice(s.Perimeters, func(i, j int) bool { return s.Perimeters[i].ID < s.Perimeters[j].ID })
	for i := range s.Perimeters {
		p := &s.Perimeters[i]
		sort.Slice(p.Points, func(a, b int) bool { return p.Points[a].ID < p.Points[b].ID })
		sort.Slice(p.Lines, func(a, b int) bool { return p.Lines[a].ID < p.Lines[b].ID })
		sort.Strings(p.Constraints)
	}
}
