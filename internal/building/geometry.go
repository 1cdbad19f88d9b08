package building

import (
	"fmt"
	"math"

	"mortar/pkg/platform/sentinel"
)

// colinearEps bounds the cross product of two unit directions below which
// adjacent walls are treated as parallel at their joint.
const colinearEps = 1e-9

func (p Point) add(q Point) Point     { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) sub(q Point) Point     { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) scale(f float64) Point { return Point{X: p.X * f, Y: p.Y * f} }

func cross(a, b Point) float64 { return a.X*b.Y - a.Y*b.X }

func unit(v Point) (Point, error) {
	n := math.Hypot(v.X, v.Y)
	if n == 0 {
		return Point{}, fmt.Errorf("zero-length direction: %w", sentinel.ErrInvalidState)
	}
	return Point{X: v.X / n, Y: v.Y / n}, nil
}

// loopIsCCW reports whether a closed loop of points winds counter-clockwise,
// using twice the signed shoelace area. A loop with fewer than three points or
// with no enclosed area cannot be offset and is rejected.
func loopIsCCW(pts []Point) (bool, error) {
	if len(pts) < 3 {
		return false, fmt.Errorf("loop has %d points, need at least 3: %w", len(pts), sentinel.ErrInvalidState)
	}
	var area2 float64
	for i, p := range pts {
		area2 += cross(p, pts[(i+1)%len(pts)])
	}
	if area2 == 0 {
		return false, fmt.Errorf("loop encloses no area: %w", sentinel.ErrInvalidState)
	}
	return area2 > 0, nil
}

// offsetNormal returns the unit normal pointing from the reference face of a
// wall toward its non-reference face, for a wall traveling along dir inside a
// loop of the given winding.
func offsetNormal(dir Point, ccw bool, side ReferenceSide) Point {
	// Right-hand normal of the travel direction points outward on a
	// counter-clockwise loop.
	out := Point{X: dir.Y, Y: -dir.X}
	if !ccw {
		out = out.scale(-1)
	}
	if side == ReferenceOutside {
		return out.scale(-1)
	}
	return out
}

// lineIntersection intersects the lines p1+t*d1 and p2+s*d2. Reports false
// when the directions are parallel within colinearEps.
func lineIntersection(p1, d1, p2, d2 Point) (Point, bool) {
	den := cross(d1, d2)
	if math.Abs(den) < colinearEps {
		return Point{}, false
	}
	t := cross(p2.sub(p1), d2) / den
	return p1.add(d1.scale(t)), true
}

// resolveCornerGeometry computes the three points of a corner from its
// neighborhood. a and c are the reference points at the far ends of the
// previous and next wall, b is the corner's own reference point.
//
// Each wall's non-reference face is its reference line displaced by the wall
// thickness toward the non-reference side. Where the two displaced lines meet
// at an angle the joint is mitered and both non-reference points land on the
// intersection. Parallel joints have no intersection; each wall keeps the
// foot of its own displaced face through b, so the two points split exactly
// when the thicknesses differ. All three identities exist in every case.
func resolveCornerGeometry(corner Corner, prevThickness, nextThickness float64, a, b, c Point, ccw bool, side ReferenceSide) (ResolvedCorner, error) {
	d1, err := unit(b.sub(a))
	if err != nil {
		return ResolvedCorner{}, fmt.Errorf("previous wall %s: %w", corner.PrevWallID, err)
	}
	d2, err := unit(c.sub(b))
	if err != nil {
		return ResolvedCorner{}, fmt.Errorf("next wall %s: %w", corner.NextWallID, err)
	}

	n1 := offsetNormal(d1, ccw, side)
	n2 := offsetNormal(d2, ccw, side)
	prevFoot := b.add(n1.scale(prevThickness))
	nextFoot := b.add(n2.scale(nextThickness))

	resolved := ResolvedCorner{
		CornerID:   corner.ID,
		Reference:  b,
		NonRefPrev: prevFoot,
		NonRefNext: nextFoot,
	}
	if m, ok := lineIntersection(prevFoot, d1, nextFoot, d2); ok {
		resolved.NonRefPrev = m
		resolved.NonRefNext = m
	}
	return resolved, nil
}
