package building

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"mortar/pkg/platform/sentinel"
)

// MemoryStore is the in-memory reactive document store. Mutations apply under
// the lock, then notify subscribers synchronously on the mutating goroutine
// with the lock released, so callbacks can read back into the store.
type MemoryStore struct {
	logger *slog.Logger

	mu          sync.RWMutex
	storeys     map[StoreyID]Storey
	perimeters  map[PerimeterID]Perimeter
	corners     map[CornerID]Corner
	walls       map[WallID]Wall
	entities    map[EntityID]WallEntity
	constraints map[ConstraintID]Constraint

	perimeterSubs  map[string]PerimeterFunc
	cornerSubs     map[string]CornerFunc
	wallSubs       map[string]WallFunc
	entitySubs     map[string]EntityFunc
	constraintSubs map[string]ConstraintFunc
}

var _ Store = (*MemoryStore)(nil)

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithLogger sets the logger used to report recovered subscriber panics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *MemoryStore) { s.logger = logger }
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		logger:         slog.Default(),
		storeys:        make(map[StoreyID]Storey),
		perimeters:     make(map[PerimeterID]Perimeter),
		corners:        make(map[CornerID]Corner),
		walls:          make(map[WallID]Wall),
		entities:       make(map[EntityID]WallEntity),
		constraints:    make(map[ConstraintID]Constraint),
		perimeterSubs:  make(map[string]PerimeterFunc),
		cornerSubs:     make(map[string]CornerFunc),
		wallSubs:       make(map[string]WallFunc),
		entitySubs:     make(map[string]EntityFunc),
		constraintSubs: make(map[string]ConstraintFunc),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ============================================================================
// Reads
// ============================================================================

func (s *MemoryStore) Storey(id StoreyID) (Storey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.storeys[id]
	if !ok {
		return Storey{}, fmt.Errorf("storey %s: %w", id, sentinel.ErrNotFound)
	}
	return st, nil
}

func (s *MemoryStore) Perimeter(id PerimeterID) (Perimeter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.perimeters[id]
	if !ok {
		return Perimeter{}, fmt.Errorf("perimeter %s: %w", id, sentinel.ErrNotFound)
	}
	return p, nil
}

func (s *MemoryStore) Corner(id CornerID) (Corner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.corners[id]
	if !ok {
		return Corner{}, fmt.Errorf("corner %s: %w", id, sentinel.ErrNotFound)
	}
	return c, nil
}

func (s *MemoryStore) Wall(id WallID) (Wall, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	w, ok := s.walls[id]
	if !ok {
		return Wall{}, fmt.Errorf("wall %s: %w", id, sentinel.ErrNotFound)
	}
	return w, nil
}

func (s *MemoryStore) WallEntity(id EntityID) (WallEntity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entities[id]
	if !ok {
		return WallEntity{}, fmt.Errorf("wall entity %s: %w", id, sentinel.ErrNotFound)
	}
	return e, nil
}

func (s *MemoryStore) Constraint(id ConstraintID) (Constraint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.constraints[id]
	if !ok {
		return nil, fmt.Errorf("constraint %s: %w", id, sentinel.ErrNotFound)
	}
	return c, nil
}

func (s *MemoryStore) Storeys() []Storey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Storey, 0, len(s.storeys))
	for _, st := range s.storeys {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) Perimeters() []Perimeter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Perimeter, 0, len(s.perimeters))
	for _, p := range s.perimeters {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *MemoryStore) Constraints() []Constraint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Constraint, 0, len(s.constraints))
	for _, c := range s.constraints {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConstraintID() < out[j].ConstraintID() })
	return out
}

// ResolveCorner derives the corner's three positions from its neighborhood:
// the far reference points of both adjacent walls, the loop winding and the
// perimeter's reference side.
func (s *MemoryStore) ResolveCorner(id CornerID) (ResolvedCorner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	corner, ok := s.corners[id]
	if !ok {
		return ResolvedCorner{}, fmt.Errorf("corner %s: %w", id, sentinel.ErrNotFound)
	}
	p, ok := s.perimeters[corner.PerimeterID]
	if !ok {
		return ResolvedCorner{}, fmt.Errorf("corner %s: perimeter %s: %w", id, corner.PerimeterID, sentinel.ErrNotFound)
	}
	prevWall, ok := s.walls[corner.PrevWallID]
	if !ok {
		return ResolvedCorner{}, fmt.Errorf("corner %s: wall %s: %w", id, corner.PrevWallID, sentinel.ErrNotFound)
	}
	nextWall, ok := s.walls[corner.NextWallID]
	if !ok {
		return ResolvedCorner{}, fmt.Errorf("corner %s: wall %s: %w", id, corner.NextWallID, sentinel.ErrNotFound)
	}

	loop := make([]Point, 0, len(p.CornerIDs))
	for _, cid := range p.CornerIDs {
		c, ok := s.corners[cid]
		if !ok {
			return ResolvedCorner{}, fmt.Errorf("perimeter %s: corner %s: %w", p.ID, cid, sentinel.ErrNotFound)
		}
		loop = append(loop, c.ReferencePoint)
	}
	ccw, err := loopIsCCW(loop)
	if err != nil {
		return ResolvedCorner{}, fmt.Errorf("perimeter %s: %w", p.ID, err)
	}

	a, err := s.farEndLocked(prevWall, id)
	if err != nil {
		return ResolvedCorner{}, err
	}
	c, err := s.farEndLocked(nextWall, id)
	if err != nil {
		return ResolvedCorner{}, err
	}

	resolved, err := resolveCornerGeometry(corner, prevWall.Thickness, nextWall.Thickness, a, corner.ReferencePoint, c, ccw, p.ReferenceSide)
	if err != nil {
		return ResolvedCorner{}, fmt.Errorf("corner %s: %w", id, err)
	}
	return resolved, nil
}

// farEndLocked returns the reference point of the wall endpoint opposite the
// given corner. Caller holds mu.
func (s *MemoryStore) farEndLocked(w Wall, at CornerID) (Point, error) {
	farID := w.StartCornerID
	if farID == at {
		farID = w.EndCornerID
	}
	far, ok := s.corners[farID]
	if !ok {
		return Point{}, fmt.Errorf("wall %s: corner %s: %w", w.ID, farID, sentinel.ErrNotFound)
	}
	return far.ReferencePoint, nil
}

// ============================================================================
// Subscriptions
// ============================================================================

func (s *MemoryStore) SubscribePerimeters(fn PerimeterFunc) Unsubscribe {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.perimeterSubs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.perimeterSubs, id)
	}
}

func (s *MemoryStore) SubscribeCorners(fn CornerFunc) Unsubscribe {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.cornerSubs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.cornerSubs, id)
	}
}

func (s *MemoryStore) SubscribeWalls(fn WallFunc) Unsubscribe {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.wallSubs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.wallSubs, id)
	}
}

func (s *MemoryStore) SubscribeEntities(fn EntityFunc) Unsubscribe {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.entitySubs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.entitySubs, id)
	}
}

func (s *MemoryStore) SubscribeConstraints(fn ConstraintFunc) Unsubscribe {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.constraintSubs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.constraintSubs, id)
	}
}

// safeNotify runs one subscriber callback and contains any panic so a broken
// subscriber cannot take down the mutating caller or starve later
// subscribers.
func (s *MemoryStore) safeNotify(kind, id string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("model subscriber panicked", "kind", kind, "id", id, "panic", r)
		}
	}()
	fn()
}

// ============================================================================
// Writes
// ============================================================================

func (s *MemoryStore) PutStorey(st Storey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeys[st.ID] = st
}

func (s *MemoryStore) RemoveStorey(id StoreyID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.storeys, id)
}

func (s *MemoryStore) PutPerimeter(p Perimeter) {
	s.mu.Lock()
	var prev *Perimeter
	if old, ok := s.perimeters[p.ID]; ok {
		prev = &old
	}
	s.perimeters[p.ID] = p
	fns := make([]PerimeterFunc, 0, len(s.perimeterSubs))
	for _, fn := range s.perimeterSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	cur := p
	for _, fn := range fns {
		s.safeNotify("perimeter", string(p.ID), func() { fn(p.ID, &cur, prev) })
	}
}

func (s *MemoryStore) PutCorner(c Corner) {
	s.mu.Lock()
	var prev *Corner
	if old, ok := s.corners[c.ID]; ok {
		prev = &old
	}
	s.corners[c.ID] = c
	fns := make([]CornerFunc, 0, len(s.cornerSubs))
	for _, fn := range s.cornerSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	cur := c
	for _, fn := range fns {
		s.safeNotify("corner", string(c.ID), func() { fn(c.ID, &cur, prev) })
	}
}

func (s *MemoryStore) PutWall(w Wall) {
	s.mu.Lock()
	var prev *Wall
	if old, ok := s.walls[w.ID]; ok {
		prev = &old
	}
	s.walls[w.ID] = w
	fns := make([]WallFunc, 0, len(s.wallSubs))
	for _, fn := range s.wallSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	cur := w
	for _, fn := range fns {
		s.safeNotify("wall", string(w.ID), func() { fn(w.ID, &cur, prev) })
	}
}

func (s *MemoryStore) PutWallEntity(e WallEntity) {
	s.mu.Lock()
	var prev *WallEntity
	if old, ok := s.entities[e.ID]; ok {
		prev = &old
	}
	s.entities[e.ID] = e
	fns := make([]EntityFunc, 0, len(s.entitySubs))
	for _, fn := range s.entitySubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	cur := e
	for _, fn := range fns {
		s.safeNotify("entity", string(e.ID), func() { fn(e.ID, &cur, prev) })
	}
}

func (s *MemoryStore) PutConstraint(c Constraint) {
	if c == nil {
		return
	}
	s.mu.Lock()
	prev := s.constraints[c.ConstraintID()]
	s.constraints[c.ConstraintID()] = c
	fns := make([]ConstraintFunc, 0, len(s.constraintSubs))
	for _, fn := range s.constraintSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		s.safeNotify("constraint", string(c.ConstraintID()), func() { fn(c.ConstraintID(), c, prev) })
	}
}

func (s *MemoryStore) RemovePerimeter(id PerimeterID) {
	s.mu.Lock()
	old, ok := s.perimeters[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.perimeters, id)
	fns := make([]PerimeterFunc, 0, len(s.perimeterSubs))
	for _, fn := range s.perimeterSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	prev := old
	for _, fn := range fns {
		s.safeNotify("perimeter", string(id), func() { fn(id, nil, &prev) })
	}
}

func (s *MemoryStore) RemoveCorner(id CornerID) {
	s.mu.Lock()
	old, ok := s.corners[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.corners, id)
	fns := make([]CornerFunc, 0, len(s.cornerSubs))
	for _, fn := range s.cornerSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	prev := old
	for _, fn := range fns {
		s.safeNotify("corner", string(id), func() { fn(id, nil, &prev) })
	}
}

func (s *MemoryStore) RemoveWall(id WallID) {
	s.mu.Lock()
	old, ok := s.walls[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.walls, id)
	fns := make([]WallFunc, 0, len(s.wallSubs))
	for _, fn := range s.wallSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	prev := old
	for _, fn := range fns {
		s.safeNotify("wall", string(id), func() { fn(id, nil, &prev) })
	}
}

func (s *MemoryStore) RemoveWallEntity(id EntityID) {
	s.mu.Lock()
	old, ok := s.entities[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.entities, id)
	fns := make([]EntityFunc, 0, len(s.entitySubs))
	for _, fn := range s.entitySubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	prev := old
	for _, fn := range fns {
		s.safeNotify("entity", string(id), func() { fn(id, nil, &prev) })
	}
}

func (s *MemoryStore) RemoveConstraint(id ConstraintID) {
	s.mu.Lock()
	old, ok := s.constraints[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	delete(s.constraints, id)
	fns := make([]ConstraintFunc, 0, len(s.constraintSubs))
	for _, fn := range s.constraintSubs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		s.safeNotify("constraint", string(id), func() { fn(id, nil, old) })
	}
}
