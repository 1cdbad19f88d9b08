package building

// Identifier types for the building model. IDs are opaque strings minted by
// whoever authors the model (fixture files, an editor session); they never
// change across updates to the entity they name.
type (
	StoreyID     string
	PerimeterID  string
	CornerID     string
	WallID       string
	EntityID     string
	ConstraintID string
)

// Point is a 2-D position on a storey plane, in millimeters.
type Point struct {
	X float64
	Y float64
}

// ReferenceSide names the face of a perimeter on which the authored corner
// points lie. The opposite face is derived by offsetting each wall by its
// thickness.
type ReferenceSide string

const (
	ReferenceInside  ReferenceSide = "inside"
	ReferenceOutside ReferenceSide = "outside"
)

// WallSide selects one of the two faces of a wall.
type WallSide string

const (
	SideInside  WallSide = "inside"
	SideOutside WallSide = "outside"
)

// Storey is a horizontal slice of the building. Perimeters belong to exactly
// one storey.
type Storey struct {
	ID        StoreyID
	Name      string
	Elevation float64
}

// Perimeter is a closed loop of corners and walls on a storey. CornerIDs and
// WallIDs are ordered around the loop and aligned: WallIDs[i] runs from
// CornerIDs[i] to CornerIDs[(i+1) % len].
type Perimeter struct {
	ID            PerimeterID
	StoreyID      StoreyID
	CornerIDs     []CornerID
	WallIDs       []WallID
	ReferenceSide ReferenceSide
}

// HasCorner reports whether the corner is part of this perimeter's loop.
func (p Perimeter) HasCorner(id CornerID) bool {
	for _, c := range p.CornerIDs {
		if c == id {
			return true
		}
	}
	return false
}

// HasWall reports whether the wall is part of this perimeter's loop.
func (p Perimeter) HasWall(id WallID) bool {
	for _, w := range p.WallIDs {
		if w == id {
			return true
		}
	}
	return false
}

// Corner joins two walls of a perimeter. PrevWallID ends at this corner,
// NextWallID starts at it. ReferencePoint is the authored position on the
// perimeter's reference side.
type Corner struct {
	ID                CornerID
	PerimeterID       PerimeterID
	PrevWallID        WallID
	NextWallID        WallID
	ReferencePoint    Point
	ConstructedByWall bool
}

// Wall is one straight segment of a perimeter, running from StartCornerID to
// EndCornerID along the reference side. Thickness is in millimeters and
// displaces the opposite face.
type Wall struct {
	ID            WallID
	PerimeterID   PerimeterID
	StartCornerID CornerID
	EndCornerID   CornerID
	EntityIDs     []EntityID
	Thickness     float64
	AssemblyID    string
}

// EntityKind distinguishes the things hosted on a wall.
type EntityKind string

const (
	EntityOpening EntityKind = "opening"
	EntityPost    EntityKind = "post"
)

// OffsetAnchor says which feature of an entity its offset is measured to.
type OffsetAnchor string

const (
	AnchorStart  OffsetAnchor = "start"
	AnchorCenter OffsetAnchor = "center"
)

// WallEntity is an opening or post hosted on a wall. Offset is measured along
// the wall from its start corner to the entity's anchor, in millimeters.
type WallEntity struct {
	ID     EntityID
	WallID WallID
	Kind   EntityKind
	Width  float64
	Offset float64
	Anchor OffsetAnchor
}

// ResolvedCorner is the three solved-for positions a corner contributes to the
// geometric picture: the authored reference point plus the two points where
// the adjacent walls' offset faces end. When the adjacent offset faces meet in
// a miter the two non-reference points coincide; they still keep separate
// identities.
type ResolvedCorner struct {
	CornerID   CornerID
	Reference  Point
	NonRefPrev Point
	NonRefNext Point
}
