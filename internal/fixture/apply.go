package fixture

import (
	"fmt"

	"mortar/internal/building"
)

// Apply writes the document into the store in dependency order: storeys,
// then each loop's corners, walls and entities, then the perimeter records,
// then constraints. The perimeter record lands after its parts so the upsert
// it triggers sees complete geometry, and constraints land last so their
// references resolve against already tracked perimeters.
func Apply(doc *Document, store building.Writer) error {
	for _, st := range doc.Storeys {
		store.PutStorey(storeyFromDoc(st))
	}
	for _, p := range doc.Perimeters {
		applyPerimeterParts(p, store)
		store.PutPerimeter(perimeterFromDoc(p))
	}
	for _, cd := range doc.Constraints {
		c, err := cd.Build()
		if err != nil {
			return fmt.Errorf("apply: %w", err)
		}
		store.PutConstraint(c)
	}
	return nil
}

func applyPerimeterParts(p PerimeterDoc, store building.Writer) {
	for _, c := range cornersFromDoc(p) {
		store.PutCorner(c)
	}
	for _, w := range wallsFromDoc(p) {
		store.PutWall(w)
	}
	for _, wd := range p.Walls {
		for _, e := range wd.Entities {
			store.PutWallEntity(entityFromDoc(e, wd.ID))
		}
	}
}

func storeyFromDoc(d StoreyDoc) building.Storey {
	return building.Storey{
		ID:        building.StoreyID(d.ID),
		Name:      d.Name,
		Elevation: d.Elevation,
	}
}

func perimeterFromDoc(d PerimeterDoc) building.Perimeter {
	p := building.Perimeter{
		ID:            building.PerimeterID(d.ID),
		StoreyID:      building.StoreyID(d.Storey),
		ReferenceSide: building.ReferenceSide(d.ReferenceSide),
		CornerIDs:     make([]building.CornerID, 0, len(d.Corners)),
		WallIDs:       make([]building.WallID, 0, len(d.Walls)),
	}
	for _, c := range d.Corners {
		p.CornerIDs = append(p.CornerIDs, building.CornerID(c.ID))
	}
	for _, w := range d.Walls {
		p.WallIDs = append(p.WallIDs, building.WallID(w.ID))
	}
	return p
}

// cornersFromDoc derives each corner's wall adjacency from the loop order:
// corner i sits between wall i-1 and wall i.
func cornersFromDoc(d PerimeterDoc) []building.Corner {
	n := len(d.Corners)
	corners := make([]building.Corner, 0, n)
	for i, c := range d.Corners {
		corner := building.Corner{
			ID:                building.CornerID(c.ID),
			PerimeterID:       building.PerimeterID(d.ID),
			ReferencePoint:    building.Point{X: c.At[0], Y: c.At[1]},
			ConstructedByWall: c.ConstructedByWall,
		}
		if len(d.Walls) == n {
			corner.PrevWallID = building.WallID(d.Walls[(i+n-1)%n].ID)
			corner.NextWallID = building.WallID(d.Walls[i].ID)
		}
		corners = append(corners, corner)
	}
	return corners
}

// wallsFromDoc derives each wall's endpoints from the loop order: wall i runs
// from corner i to corner i+1.
func wallsFromDoc(d PerimeterDoc) []building.Wall {
	n := len(d.Corners)
	walls := make([]building.Wall, 0, len(d.Walls))
	for i, w := range d.Walls {
		wall := building.Wall{
			ID:          building.WallID(w.ID),
			PerimeterID: building.PerimeterID(d.ID),
			Thickness:   w.Thickness,
			AssemblyID:  w.Assembly,
		}
		if i < n {
			wall.StartCornerID = building.CornerID(d.Corners[i].ID)
			wall.EndCornerID = building.CornerID(d.Corners[(i+1)%n].ID)
		}
		for _, e := range w.Entities {
			wall.EntityIDs = append(wall.EntityIDs, building.EntityID(e.ID))
		}
		walls = append(walls, wall)
	}
	return walls
}

func entityFromDoc(d EntityDoc, wallID string) building.WallEntity {
	anchor := building.AnchorStart
	if d.Anchor != "" {
		anchor = building.OffsetAnchor(d.Anchor)
	}
	return building.WallEntity{
		ID:     building.EntityID(d.ID),
		WallID: building.WallID(wallID),
		Kind:   building.EntityKind(d.Kind),
		Width:  d.Width,
		Offset: d.Offset,
		Anchor: anchor,
	}
}
