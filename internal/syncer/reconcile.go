package syncer

import (
	"time"

	"mortar/internal/building"
	"mortar/internal/solver"
)

// reconcilePerimeter applies perimeter creation, update and removal. Any
// defined current state means upsert; only a removal notification with no
// current state tears geometry down.
func (s *Service) reconcilePerimeter(id building.PerimeterID, current, previous *building.Perimeter) {
	switch {
	case current != nil:
		s.upsertPerimeter(id)
	case previous != nil:
		if !s.solver.Registry().Tracked(id) {
			s.metrics.IncrementReconciliation("perimeter", "skipped")
			return
		}
		if err := s.solver.RemovePerimeterGeometry(id); err != nil {
			s.warnSolver("remove_perimeter_geometry", err, "perimeter_id", string(id))
			s.metrics.IncrementReconciliation("perimeter", "failed")
			return
		}
		s.metrics.IncrementReconciliation("perimeter", "applied")
	}
}

// upsertPerimeter rebuilds the perimeter's solver geometry from live model
// state, then re-adds the constraints referencing it. The perimeter and wall
// rules both funnel through here.
func (s *Service) upsertPerimeter(id building.PerimeterID) {
	start := time.Now()
	if err := s.solver.AddPerimeterGeometry(id); err != nil {
		s.warnSolver("add_perimeter_geometry", err, "perimeter_id", string(id))
		s.metrics.IncrementReconciliation("perimeter", "failed")
		return
	}
	s.resyncConstraints(id)
	s.metrics.ObserveUpsertLatency(time.Since(start))
	s.metrics.IncrementReconciliation("perimeter", "applied")
}

// reconcileCorner pushes a moved corner's three resolved positions into the
// solver. Only position changes flow here; corner creation and removal always
// arrive as part of a perimeter change, which rebuilds geometry wholesale.
func (s *Service) reconcileCorner(id building.CornerID, current, previous *building.Corner) {
	if current == nil || previous == nil {
		return
	}
	if !s.solver.Registry().Tracked(current.PerimeterID) {
		s.metrics.IncrementReconciliation("corner", "skipped")
		return
	}

	resolved, err := s.model.ResolveCorner(id)
	if err != nil {
		s.logger.Warn("corner resolution failed", "corner_id", string(id), "error", err)
		s.metrics.IncrementReconciliation("corner", "failed")
		return
	}

	failed := false
	updates := []struct {
		point solver.PointID
		pos   building.Point
	}{
		{point: solver.RefPointID(id), pos: resolved.Reference},
		{point: solver.NonRefPrevPointID(id), pos: resolved.NonRefPrev},
		{point: solver.NonRefNextPointID(id), pos: resolved.NonRefNext},
	}
	for _, u := range updates {
		if err := s.solver.UpdatePointPosition(u.point, u.pos); err != nil {
			s.warnSolver("update_point_position", err, "point_id", string(u.point))
			failed = true
		}
	}
	if failed {
		s.metrics.IncrementReconciliation("corner", "failed")
		return
	}
	s.metrics.IncrementReconciliation("corner", "applied")
}

// reconcileWall reacts to thickness changes by rebuilding the owning
// perimeter. A thickness change moves offset faces on both adjacent corners,
// so a wholesale rebuild is the consistent answer. All other wall edits ride
// the perimeter feed.
func (s *Service) reconcileWall(id building.WallID, current, previous *building.Wall) {
	if current == nil || previous == nil {
		return
	}
	if current.Thickness == previous.Thickness {
		return
	}
	if !s.solver.Registry().Tracked(current.PerimeterID) {
		s.metrics.IncrementReconciliation("wall", "skipped")
		return
	}
	s.metrics.IncrementReconciliation("wall", "applied")
	s.upsertPerimeter(current.PerimeterID)
}

// reconcileConstraint applies constraint creation, update and removal. An
// update removes the previous revision before adding the current one; the
// key derivation guarantees both halves land on the same registration.
func (s *Service) reconcileConstraint(id building.ConstraintID, current, previous building.Constraint) {
	switch {
	case current != nil && previous == nil:
		s.addConstraint(current)
	case current == nil && previous != nil:
		s.removeConstraint(previous)
	case current != nil && previous != nil:
		s.removeConstraint(previous)
		s.addConstraint(current)
	}
}

func (s *Service) addConstraint(c building.Constraint) {
	if !s.referencesTracked(c) {
		s.metrics.IncrementReconciliation("constraint", "skipped")
		return
	}
	if err := s.solver.AddBuildingConstraint(c); err != nil {
		// Legitimate during bulk import: a constraint can arrive before its
		// geometry. The owning perimeter's upsert resyncs it afterwards.
		s.warnSolver("add_building_constraint", err, "constraint_id", string(c.ConstraintID()))
		s.metrics.IncrementReconciliation("constraint", "failed")
		return
	}
	s.metrics.IncrementReconciliation("constraint", "applied")
}

func (s *Service) removeConstraint(previous building.Constraint) {
	if !s.referencesTracked(previous) {
		s.metrics.IncrementReconciliation("constraint", "skipped")
		return
	}
	key := solver.ConstraintKey(previous)
	if err := s.solver.RemoveBuildingConstraint(key); err != nil {
		s.warnSolver("remove_building_constraint", err, "constraint_key", key)
		s.metrics.IncrementReconciliation("constraint", "failed")
		return
	}
	s.metrics.IncrementReconciliation("constraint", "applied")
}

// referencesTracked resolves the constraint's structural references through
// the model and reports whether any referenced geometry belongs to a tracked
// perimeter. References that no longer resolve count as untracked: once the
// model has forgotten the geometry there is nothing left to tell the solver.
func (s *Service) referencesTracked(c building.Constraint) bool {
	refs := building.ConstraintRefs(c)
	registry := s.solver.Registry()
	for _, wid := range refs.Walls {
		if w, err := s.model.Wall(wid); err == nil && registry.Tracked(w.PerimeterID) {
			return true
		}
	}
	for _, cid := range refs.Corners {
		if corner, err := s.model.Corner(cid); err == nil && registry.Tracked(corner.PerimeterID) {
			return true
		}
	}
	for _, eid := range refs.Entities {
		e, err := s.model.WallEntity(eid)
		if err != nil {
			continue
		}
		if w, err := s.model.Wall(e.WallID); err == nil && registry.Tracked(w.PerimeterID) {
			return true
		}
	}
	return false
}
