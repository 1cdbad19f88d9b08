// Package solver tracks which building geometry and constraints have been
// handed to the geometric constraint solver, under the solver's own naming
// scheme. It owns the canonical point and line identities and the derivation
// of constraint keys, so that the same model object always maps to the same
// solver names no matter when or how often it is synchronized.
package solver

import (
	"mortar/internal/building"
)

// PointID names one solver point. Every corner contributes exactly three:
//
//	corner_<cornerId>_ref
//	corner_<cornerId>_nonref_prev
//	corner_<cornerId>_nonref_next
type PointID string

// LineID names one solver line. Every wall contributes exactly two, its
// reference face and its offset face.
type LineID string

// RefPointID is the authored reference position of a corner.
func RefPointID(id building.CornerID) PointID {
	return PointID("corner_" + string(id) + "_ref")
}

// NonRefPrevPointID is the corner's offset-face endpoint contributed by the
// wall ending at the corner.
func NonRefPrevPointID(id building.CornerID) PointID {
	return PointID("corner_" + string(id) + "_nonref_prev")
}

// NonRefNextPointID is the corner's offset-face endpoint contributed by the
// wall starting at the corner.
func NonRefNextPointID(id building.CornerID) PointID {
	return PointID("corner_" + string(id) + "_nonref_next")
}

// CornerPointIDs lists a corner's three point identities in canonical order.
func CornerPointIDs(id building.CornerID) [3]PointID {
	return [3]PointID{RefPointID(id), NonRefPrevPointID(id), NonRefNextPointID(id)}
}

// RefLineID is the line through a wall's reference face.
func RefLineID(id building.WallID) LineID {
	return LineID("wall_" + string(id) + "_ref")
}

// OffsetLineID is the line through a wall's thickness-displaced face.
func OffsetLineID(id building.WallID) LineID {
	return LineID("wall_" + string(id) + "_offset")
}
