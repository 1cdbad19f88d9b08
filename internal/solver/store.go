package solver

import (
	"mortar/internal/building"
)

// Store is the imperative boundary of the constraint solver. Calls are
// synchronous and in-process; each either applies fully or returns an error
// describing why it was rejected.
type Store interface {
	// AddPerimeterGeometry materializes the perimeter's points and lines from
	// live model state. Calling it for a perimeter that is already tracked
	// rebuilds the geometry in place and keeps its registered constraints.
	AddPerimeterGeometry(id building.PerimeterID) error

	// RemovePerimeterGeometry drops the perimeter's points, lines and every
	// constraint registered under it.
	RemovePerimeterGeometry(id building.PerimeterID) error

	// AddBuildingConstraint registers a constraint under its derived key.
	// Adding a key that is already registered replaces the earlier
	// registration. Fails when referenced geometry is not tracked.
	AddBuildingConstraint(c building.Constraint) error

	// RemoveBuildingConstraint drops the constraint registered under key.
	RemoveBuildingConstraint(key string) error

	// UpdatePointPosition overwrites one tracked point's position.
	UpdatePointPosition(id PointID, pos building.Point) error

	Registry() Registry
}

// Registry is the read-only view of what the solver currently tracks.
type Registry interface {
	Tracked(id building.PerimeterID) bool
	HasPoint(id PointID) bool
	Snapshot() Snapshot
}
