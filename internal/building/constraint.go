package building

// ConstraintKind tags each variant of the Constraint union.
type ConstraintKind string

const (
	KindHorizontalWall     ConstraintKind = "horizontalWall"
	KindVerticalWall       ConstraintKind = "verticalWall"
	KindWallLength         ConstraintKind = "wallLength"
	KindParallelWalls      ConstraintKind = "parallelWalls"
	KindWallsDistance      ConstraintKind = "wallsDistance"
	KindFixedCorner        ConstraintKind = "fixedCorner"
	KindWallEntityAbsolute ConstraintKind = "wallEntityAbsolute"
	KindWallEntityRelative ConstraintKind = "wallEntityRelative"
)

// EntitySide selects an edge or the center of a wall entity when a dimension
// is measured to it.
type EntitySide string

const (
	EntityStart  EntitySide = "start"
	EntityEnd    EntitySide = "end"
	EntityCenter EntitySide = "center"
)

// Constraint is a user-authored relationship the solver must hold. The union
// is closed: every variant lives in this package, and code that dispatches on
// the concrete type switches over exactly these eight structs.
type Constraint interface {
	ConstraintID() ConstraintID
	Kind() ConstraintKind

	isConstraint()
}

// HorizontalWall pins a wall's reference line to the X axis direction.
type HorizontalWall struct {
	ID   ConstraintID
	Wall WallID
}

// VerticalWall pins a wall's reference line to the Y axis direction.
type VerticalWall struct {
	ID   ConstraintID
	Wall WallID
}

// WallLength fixes the length of one face of a wall.
type WallLength struct {
	ID       ConstraintID
	Wall     WallID
	Side     WallSide
	Distance float64
}

// ParallelWalls keeps two walls parallel.
type ParallelWalls struct {
	ID    ConstraintID
	WallA WallID
	WallB WallID
}

// WallsDistance fixes the distance between two parallel walls.
type WallsDistance struct {
	ID       ConstraintID
	WallA    WallID
	WallB    WallID
	Distance float64
}

// FixedCorner pins a corner's reference point in place.
type FixedCorner struct {
	ID     ConstraintID
	Corner CornerID
}

// WallEntityAbsolute fixes the distance between a corner of a wall and an
// entity hosted on that wall. Node names the corner the dimension starts from,
// Side the wall face it is measured along and EntitySide the entity edge it
// ends at.
type WallEntityAbsolute struct {
	ID         ConstraintID
	Wall       WallID
	Entity     EntityID
	Node       CornerID
	Side       WallSide
	EntitySide EntitySide
	Distance   float64
}

// WallEntityRelative fixes the distance between two entities hosted on the
// same wall.
type WallEntityRelative struct {
	ID          ConstraintID
	Wall        WallID
	EntityA     EntityID
	EntityASide EntitySide
	EntityB     EntityID
	EntityBSide EntitySide
	Distance    float64
}

func (c HorizontalWall) ConstraintID() ConstraintID     { return c.ID }
func (c VerticalWall) ConstraintID() ConstraintID       { return c.ID }
func (c WallLength) ConstraintID() ConstraintID         { return c.ID }
func (c ParallelWalls) ConstraintID() ConstraintID      { return c.ID }
func (c WallsDistance) ConstraintID() ConstraintID      { return c.ID }
func (c FixedCorner) ConstraintID() ConstraintID        { return c.ID }
func (c WallEntityAbsolute) ConstraintID() ConstraintID { return c.ID }
func (c WallEntityRelative) ConstraintID() ConstraintID { return c.ID }

func (HorizontalWall) Kind() ConstraintKind     { return KindHorizontalWall }
func (VerticalWall) Kind() ConstraintKind       { return KindVerticalWall }
func (WallLength) Kind() ConstraintKind         { return KindWallLength }
func (ParallelWalls) Kind() ConstraintKind      { return KindParallelWalls }
func (WallsDistance) Kind() ConstraintKind      { return KindWallsDistance }
func (FixedCorner) Kind() ConstraintKind        { return KindFixedCorner }
func (WallEntityAbsolute) Kind() ConstraintKind { return KindWallEntityAbsolute }
func (WallEntityRelative) Kind() ConstraintKind { return KindWallEntityRelative }

func (HorizontalWall) isConstraint()     {}
func (VerticalWall) isConstraint()       {}
func (WallLength) isConstraint()         {}
func (ParallelWalls) isConstraint()      {}
func (WallsDistance) isConstraint()      {}
func (FixedCorner) isConstraint()        {}
func (WallEntityAbsolute) isConstraint() {}
func (WallEntityRelative) isConstraint() {}

// Refs lists the model entities a constraint references structurally. Tuning
// parameters such as distances and side selectors are not references.
type Refs struct {
	Walls    []WallID
	Corners  []CornerID
	Entities []EntityID
}

// ConstraintRefs extracts the structural references of a constraint. The
// switch is exhaustive over the union; every new variant must be added here.
func ConstraintRefs(c Constraint) Refs {
	switch c := c.(type) {
	case HorizontalWall:
		return Refs{Walls: []WallID{c.Wall}}
	case VerticalWall:
		return Refs{Walls: []WallID{c.Wall}}
	case WallLength:
		return Refs{Walls: []WallID{c.Wall}}
	case ParallelWalls:
		return Refs{Walls: []WallID{c.WallA, c.WallB}}
	case WallsDistance:
		return Refs{Walls: []WallID{c.WallA, c.WallB}}
	case FixedCorner:
		return Refs{Corners: []CornerID{c.Corner}}
	case WallEntityAbsolute:
		return Refs{Walls: []WallID{c.Wall}, Corners: []CornerID{c.Node}, Entities: []EntityID{c.Entity}}
	case WallEntityRelative:
		return Refs{Walls: []WallID{c.Wall}, Entities: []EntityID{c.EntityA, c.EntityB}}
	default:
		return Refs{}
	}
}
