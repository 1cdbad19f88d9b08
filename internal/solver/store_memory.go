package solver

import (
	"fmt"
	"log/slog"
	"sync"

	"mortar/internal/building"
	"mortar/pkg/platform/sentinel"
)

// MemoryStore is the in-process solver registry. It materializes perimeters
// into the solver's point and line identities, registers constraints under
// their derived keys and validates that every registration lands on tracked
// geometry. Numeric solving is out of scope; the registry is the system of
// record for what the solver has been told.
type MemoryStore struct {
	model  building.Reader
	logger *slog.Logger

	mu         sync.RWMutex
	entries    map[building.PerimeterID]*entry
	pointOwner map[PointID]building.PerimeterID
	keyOwner   map[string]building.PerimeterID
}

type entry struct {
	points      map[PointID]building.Point
	lines       map[LineID]line
	constraints map[string]building.Constraint
}

type line struct {
	start PointID
	end   PointID
}

var _ Store = (*MemoryStore)(nil)
var _ Registry = (*MemoryStore)(nil)

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithLogger sets the logger for rebuild and registration diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *MemoryStore) { s.logger = logger }
}

func NewMemoryStore(model building.Reader, opts ...Option) (*MemoryStore, error) {
	if model == nil {
		return nil, fmt.Errorf("model reader is required")
	}
	s := &MemoryStore{
		model:      model,
		logger:     slog.Default(),
		entries:    make(map[building.PerimeterID]*entry),
		pointOwner: make(map[PointID]building.PerimeterID),
		keyOwner:   make(map[string]building.PerimeterID),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AddPerimeterGeometry reads the perimeter from the model and materializes
// three points per corner and two lines per wall. A tracked perimeter is
// rebuilt in place; its registered constraints are kept.
func (s *MemoryStore) AddPerimeterGeometry(id building.PerimeterID) error {
	p, err := s.model.Perimeter(id)
	if err != nil {
		return fmt.Errorf("add perimeter geometry %s: %w", id, err)
	}

	points := make(map[PointID]building.Point, 3*len(p.CornerIDs))
	for _, cid := range p.CornerIDs {
		resolved, err := s.model.ResolveCorner(cid)
		if err != nil {
			return fmt.Errorf("add perimeter geometry %s: %w", id, err)
		}
		points[RefPointID(cid)] = resolved.Reference
		points[NonRefPrevPointID(cid)] = resolved.NonRefPrev
		points[NonRefNextPointID(cid)] = resolved.NonRefNext
	}

	lines := make(map[LineID]line, 2*len(p.WallIDs))
	for _, wid := range p.WallIDs {
		w, err := s.model.Wall(wid)
		if err != nil {
			return fmt.Errorf("add perimeter geometry %s: %w", id, err)
		}
		// The offset face of a wall runs between the non-reference points its
		// two corners contribute for this wall: the wall is the "next" wall
		// of its start corner and the "prev" wall of its end corner.
		lines[RefLineID(wid)] = line{start: RefPointID(w.StartCornerID), end: RefPointID(w.EndCornerID)}
		lines[OffsetLineID(wid)] = line{start: NonRefNextPointID(w.StartCornerID), end: NonRefPrevPointID(w.EndCornerID)}
	}
	for lid, ln := range lines {
		if _, ok := points[ln.start]; !ok {
			return fmt.Errorf("add perimeter geometry %s: line %s: point %s: %w", id, lid, ln.start, sentinel.ErrMissingGeometry)
		}
		if _, ok := points[ln.end]; !ok {
			return fmt.Errorf("add perimeter geometry %s: line %s: point %s: %w", id, lid, ln.end, sentinel.ErrMissingGeometry)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	constraints := make(map[string]building.Constraint)
	if prev, ok := s.entries[id]; ok {
		for pid := range prev.points {
			delete(s.pointOwner, pid)
		}
		constraints = prev.constraints
	}
	for pid := range points {
		s.pointOwner[pid] = id
	}
	s.entries[id] = &entry{points: points, lines: lines, constraints: constraints}

	s.logger.Debug("perimeter geometry rebuilt",
		"perimeter_id", string(id),
		"points", len(points),
		"lines", len(lines),
		"constraints_kept", len(constraints),
	)
	return nil
}

// RemovePerimeterGeometry drops the perimeter's points, lines and the
// constraints registered under it.
func (s *MemoryStore) RemovePerimeterGeometry(id building.PerimeterID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("remove perimeter geometry %s: %w", id, sentinel.ErrUntracked)
	}
	for pid := range e.points {
		delete(s.pointOwner, pid)
	}
	for key := range e.constraints {
		delete(s.keyOwner, key)
	}
	delete(s.entries, id)

	s.logger.Debug("perimeter geometry removed", "perimeter_id", string(id))
	return nil
}

// AddBuildingConstraint validates that everything the constraint references
// is tracked, then registers it under its derived key. Re-adding an existing
// key replaces the earlier registration.
func (s *MemoryStore) AddBuildingConstraint(c building.Constraint) error {
	if c == nil {
		return fmt.Errorf("add building constraint: nil constraint: %w", sentinel.ErrInvalidState)
	}
	key := ConstraintKey(c)
	refs := building.ConstraintRefs(c)

	type want struct {
		perimeter building.PerimeterID
		line      LineID
		point     PointID
	}
	var owner building.PerimeterID
	var wants []want

	for _, wid := range refs.Walls {
		w, err := s.model.Wall(wid)
		if err != nil {
			return fmt.Errorf("constraint %s: wall %s: %w", key, wid, sentinel.ErrMissingGeometry)
		}
		if owner == "" {
			owner = w.PerimeterID
		}
		wants = append(wants,
			want{perimeter: w.PerimeterID, line: RefLineID(wid)},
			want{perimeter: w.PerimeterID, line: OffsetLineID(wid)},
		)
	}
	for _, cid := range refs.Corners {
		cr, err := s.model.Corner(cid)
		if err != nil {
			return fmt.Errorf("constraint %s: corner %s: %w", key, cid, sentinel.ErrMissingGeometry)
		}
		if owner == "" {
			owner = cr.PerimeterID
		}
		for _, pid := range CornerPointIDs(cid) {
			wants = append(wants, want{perimeter: cr.PerimeterID, point: pid})
		}
	}
	for _, eid := range refs.Entities {
		e, err := s.model.WallEntity(eid)
		if err != nil {
			return fmt.Errorf("constraint %s: entity %s: %w", key, eid, sentinel.ErrMissingGeometry)
		}
		w, err := s.model.Wall(e.WallID)
		if err != nil {
			return fmt.Errorf("constraint %s: entity %s: wall %s: %w", key, eid, e.WallID, sentinel.ErrMissingGeometry)
		}
		wants = append(wants, want{perimeter: w.PerimeterID, line: RefLineID(w.ID)})
	}
	if owner == "" {
		return fmt.Errorf("constraint %s: no structural references: %w", key, sentinel.ErrInvalidState)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, wt := range wants {
		e, ok := s.entries[wt.perimeter]
		if !ok {
			return fmt.Errorf("constraint %s: perimeter %s: %w", key, wt.perimeter, sentinel.ErrMissingGeometry)
		}
		if wt.line != "" {
			if _, ok := e.lines[wt.line]; !ok {
				return fmt.Errorf("constraint %s: line %s: %w", key, wt.line, sentinel.ErrMissingGeometry)
			}
		}
		if wt.point != "" {
			if _, ok := e.points[wt.point]; !ok {
				return fmt.Errorf("constraint %s: point %s: %w", key, wt.point, sentinel.ErrMissingGeometry)
			}
		}
	}

	if prevOwner, ok := s.keyOwner[key]; ok && prevOwner != owner {
		if prev, ok := s.entries[prevOwner]; ok {
			delete(prev.constraints, key)
		}
	}
	s.entries[owner].constraints[key] = c
	s.keyOwner[key] = owner

	s.logger.Debug("constraint registered", "key", key, "perimeter_id", string(owner))
	return nil
}

// RemoveBuildingConstraint drops the registration under key.
func (s *MemoryStore) RemoveBuildingConstraint(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.keyOwner[key]
	if !ok {
		return fmt.Errorf("remove building constraint %q: %w", key, sentinel.ErrUnknownKey)
	}
	delete(s.keyOwner, key)
	if e, ok := s.entries[owner]; ok {
		delete(e.constraints, key)
	}

	s.logger.Debug("constraint removed", "key", key)
	return nil
}

// UpdatePointPosition overwrites a tracked point's position verbatim.
func (s *MemoryStore) UpdatePointPosition(id PointID, pos building.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	owner, ok := s.pointOwner[id]
	if !ok {
		return fmt.Errorf("update point %s: %w", id, sentinel.ErrNotFound)
	}
	s.entries[owner].points[id] = pos
	return nil
}

func (s *MemoryStore) Registry() Registry { return s }

// Tracked reports whether the perimeter's geometry is registered.
func (s *MemoryStore) Tracked(id building.PerimeterID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[id]
	return ok
}

// HasPoint reports whether a point identity is registered.
func (s *MemoryStore) HasPoint(id PointID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.pointOwner[id]
	return ok
}

// Snapshot dumps the tracked state with deterministic ordering.
func (s *MemoryStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{Perimeters: make([]PerimeterSnapshot, 0, len(s.entries))}
	for id, e := range s.entries {
		ps := PerimeterSnapshot{
			ID:          id,
			Points:      make([]PointSnapshot, 0, len(e.points)),
			Lines:       make([]LineSnapshot, 0, len(e.lines)),
			Constraints: make([]string, 0, len(e.constraints)),
		}
		for pid, pos := range e.points {
			ps.Points = append(ps.Points, PointSnapshot{ID: pid, X: pos.X, Y: pos.Y})
		}
		for lid, ln := range e.lines {
			ps.Lines = append(ps.Lines, LineSnapshot{ID: lid, Start: ln.start, End: ln.end})
		}
		for key := range e.constraints {
			ps.Constraints = append(ps.Constraints, key)
		}
		snap.Perimeters = append(snap.Perimeters, ps)
	}
	sortSnapshot(&snap)
	return snap
}
