package building

// Change callbacks receive the stable id plus the current and previous value
// of the changed entity. current is nil on removal, previous is nil on
// creation, both are set on update. Callbacks run synchronously on the
// goroutine performing the mutation, after the store has applied it.
type (
	PerimeterFunc  func(id PerimeterID, current, previous *Perimeter)
	CornerFunc     func(id CornerID, current, previous *Corner)
	WallFunc       func(id WallID, current, previous *Wall)
	EntityFunc     func(id EntityID, current, previous *WallEntity)
	ConstraintFunc func(id ConstraintID, current, previous Constraint)
)

// Unsubscribe removes a previously registered callback. Safe to call more
// than once.
type Unsubscribe func()

// Reader is the query side of the building model.
type Reader interface {
	Storey(id StoreyID) (Storey, error)
	Perimeter(id PerimeterID) (Perimeter, error)
	Corner(id CornerID) (Corner, error)
	Wall(id WallID) (Wall, error)
	WallEntity(id EntityID) (WallEntity, error)
	Constraint(id ConstraintID) (Constraint, error)

	// ResolveCorner derives the corner's three positions from live model
	// state: its reference point plus the two points where the adjacent
	// walls' offset faces end.
	ResolveCorner(id CornerID) (ResolvedCorner, error)

	Storeys() []Storey
	Perimeters() []Perimeter
	Constraints() []Constraint
}

// Subscriptions registers per-kind change feeds. Each mutation notifies every
// registered callback before the mutating call returns.
type Subscriptions interface {
	SubscribePerimeters(fn PerimeterFunc) Unsubscribe
	SubscribeCorners(fn CornerFunc) Unsubscribe
	SubscribeWalls(fn WallFunc) Unsubscribe
	SubscribeEntities(fn EntityFunc) Unsubscribe
	SubscribeConstraints(fn ConstraintFunc) Unsubscribe
}

// Writer mutates the model. Puts are upserts keyed by the entity id; removes
// of unknown ids are no-ops and emit no notification.
type Writer interface {
	PutStorey(s Storey)
	PutPerimeter(p Perimeter)
	PutCorner(c Corner)
	PutWall(w Wall)
	PutWallEntity(e WallEntity)
	PutConstraint(c Constraint)

	RemoveStorey(id StoreyID)
	RemovePerimeter(id PerimeterID)
	RemoveCorner(id CornerID)
	RemoveWall(id WallID)
	RemoveWallEntity(id EntityID)
	RemoveConstraint(id ConstraintID)
}

// Store is the full reactive document store.
type Store interface {
	Reader
	Subscriptions
	Writer
}
