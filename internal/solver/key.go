package solver

import (
	"fmt"

	"mortar/internal/building"
)

// ConstraintKey derives the stable solver key for a constraint. The key is a
// pure function of the constraint's kind and its structural references, so a
// later model state that still means "the same constraint on the same
// geometry" derives the same key even if tuning values such as distances or
// face selectors changed in between. Removal by key therefore works against
// whatever was added earlier.
//
// The switch is exhaustive over the building constraint union.
func ConstraintKey(c building.Constraint) string {
	switch c := c.(type) {
	case building.HorizontalWall:
		return fmt.Sprintf("horizontalWall:wall=%s", c.Wall)
	case building.VerticalWall:
		return fmt.Sprintf("verticalWall:wall=%s", c.Wall)
	case building.WallLength:
		return fmt.Sprintf("wallLength:wall=%s", c.Wall)
	case building.ParallelWalls:
		return fmt.Sprintf("parallelWalls:wallA=%s:wallB=%s", c.WallA, c.WallB)
	case building.WallsDistance:
		return fmt.Sprintf("wallsDistance:wallA=%s:wallB=%s", c.WallA, c.WallB)
	case building.FixedCorner:
		return fmt.Sprintf("fixedCorner:corner=%s", c.Corner)
	case building.WallEntityAbsolute:
		return fmt.Sprintf("wallEntityAbsolute:wall=%s:entity=%s:node=%s", c.Wall, c.Entity, c.Node)
	case building.WallEntityRelative:
		return fmt.Sprintf("wallEntityRelative:wall=%s:entityA=%s:entityB=%s", c.Wall, c.EntityA, c.EntityB)
	default:
		// Unreachable while the union stays sealed. Falling back to the kind
		// and id keeps the key deterministic rather than panicking mid-sync.
		return fmt.Sprintf("%s:id=%s", c.Kind(), c.ConstraintID())
	}
}
