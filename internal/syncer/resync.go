package syncer

import (
	"mortar/internal/building"
)

// resyncConstraints re-adds every model constraint referencing the
// perimeter's walls or corners. A geometry rebuild keeps registered
// constraints, but constraints that failed to add earlier (bulk import
// delivers them before their geometry exists) get their second chance here.
// Adds are idempotent per key, so re-adding a registered constraint is
// harmless.
func (s *Service) resyncConstraints(id building.PerimeterID) {
	p, err := s.model.Perimeter(id)
	if err != nil {
		s.logger.Warn("constraint resync skipped", "perimeter_id", string(id), "error", err)
		return
	}
	for _, c := range s.model.Constraints() {
		if !referencesPerimeter(c, p) {
			continue
		}
		if err := s.solver.AddBuildingConstraint(c); err != nil {
			s.warnSolver("add_building_constraint", err,
				"constraint_id", string(c.ConstraintID()),
				"perimeter_id", string(id),
			)
		}
	}
}

// referencesPerimeter reports whether any referenced wall or corner belongs
// to the perimeter's loop. Membership is decided against the perimeter's own
// id lists, not the solver registry, so it holds even mid-rebuild.
func referencesPerimeter(c building.Constraint, p building.Perimeter) bool {
	refs := building.ConstraintRefs(c)
	for _, wid := range refs.Walls {
		if p.HasWall(wid) {
			return true
		}
	}
	for _, cid := range refs.Corners {
		if p.HasCorner(cid) {
			return true
		}
	}
	return false
}
