package fixture

import (
	"fmt"
	"reflect"

	"mortar/internal/building"
)

// Diff applies the delta between two documents to the store, producing the
// same granular change feed an editor session would: a moved corner becomes a
// corner update, a retuned wall a wall update, and only structural edits
// touch the perimeter records. Removals run first so constraints are retired
// before the geometry they reference, and perimeter records are written after
// their parts so any rebuild they trigger sees settled state.
func Diff(prev, next *Document, store building.Writer) error {
	before, err := deriveRecords(prev)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}
	after, err := deriveRecords(next)
	if err != nil {
		return fmt.Errorf("diff: %w", err)
	}

	for _, cd := range prev.Constraints {
		if _, ok := after.constraints[building.ConstraintID(cd.ID)]; !ok {
			store.RemoveConstraint(building.ConstraintID(cd.ID))
		}
	}
	for _, p := range prev.Perimeters {
		if _, ok := after.perimeters[building.PerimeterID(p.ID)]; !ok {
			store.RemovePerimeter(building.PerimeterID(p.ID))
		}
	}
	for _, p := range prev.Perimeters {
		for _, c := range p.Corners {
			if _, ok := after.corners[building.CornerID(c.ID)]; !ok {
				store.RemoveCorner(building.CornerID(c.ID))
			}
		}
		for _, w := range p.Walls {
			if _, ok := after.walls[building.WallID(w.ID)]; !ok {
				store.RemoveWall(building.WallID(w.ID))
			}
			for _, e := range w.Entities {
				if _, ok := after.entities[building.EntityID(e.ID)]; !ok {
					store.RemoveWallEntity(building.EntityID(e.ID))
				}
			}
		}
	}

	for _, st := range next.Storeys {
		if rec := storeyFromDoc(st); changed(before.storeys, rec.ID, rec) {
			store.PutStorey(rec)
		}
	}
	for _, p := range next.Perimeters {
		for _, c := range cornersFromDoc(p) {
			if changed(before.corners, c.ID, c) {
				store.PutCorner(c)
			}
		}
		for _, w := range wallsFromDoc(p) {
			if changed(before.walls, w.ID, w) {
				store.PutWall(w)
			}
		}
		for _, wd := range p.Walls {
			for _, ed := range wd.Entities {
				if rec := entityFromDoc(ed, wd.ID); changed(before.entities, rec.ID, rec) {
					store.PutWallEntity(rec)
				}
			}
		}
	}
	for _, p := range next.Perimeters {
		if rec := perimeterFromDoc(p); changed(before.perimeters, rec.ID, rec) {
			store.PutPerimeter(rec)
		}
	}
	for _, cd := range next.Constraints {
		c := after.constraints[building.ConstraintID(cd.ID)]
		if changed(before.constraints, building.ConstraintID(cd.ID), c) {
			store.PutConstraint(c)
		}
	}
	for _, st := range prev.Storeys {
		if _, ok := after.storeys[building.StoreyID(st.ID)]; !ok {
			store.RemoveStorey(building.StoreyID(st.ID))
		}
	}
	return nil
}

func changed[K comparable, V any](old map[K]V, id K, now V) bool {
	was, ok := old[id]
	return !ok || !reflect.DeepEqual(was, now)
}

// recordSet holds every model record a document derives to, keyed by id.
type recordSet struct {
	storeys     map[building.StoreyID]building.Storey
	perimeters  map[building.PerimeterID]building.Perimeter
	corners     map[building.CornerID]building.Corner
	walls       map[building.WallID]building.Wall
	entities    map[building.EntityID]building.WallEntity
	constraints map[building.ConstraintID]building.Constraint
}

func deriveRecords(doc *Document) (*recordSet, error) {
	rs := &recordSet{
		storeys:     make(map[building.StoreyID]building.Storey),
		perimeters:  make(map[building.PerimeterID]building.Perimeter),
		corners:     make(map[building.CornerID]building.Corner),
		walls:       make(map[building.WallID]building.Wall),
		entities:    make(map[building.EntityID]building.WallEntity),
		constraints: make(map[building.ConstraintID]building.Constraint),
	}
	for _, st := range doc.Storeys {
		rec := storeyFromDoc(st)
		rs.storeys[rec.ID] = rec
	}
	for _, p := range doc.Perimeters {
		rec := perimeterFromDoc(p)
		rs.perimeters[rec.ID] = rec
		for _, c := range cornersFromDoc(p) {
			rs.corners[c.ID] = c
		}
		for _, w := range wallsFromDoc(p) {
			rs.walls[w.ID] = w
		}
		for _, wd := range p.Walls {
			for _, ed := range wd.Entities {
				e := entityFromDoc(ed, wd.ID)
				rs.entities[e.ID] = e
			}
		}
	}
	for _, cd := range doc.Constraints {
		c, err := cd.Build()
		if err != nil {
			return nil, err
		}
		rs.constraints[c.ConstraintID()] = c
	}
	return rs, nil
}
