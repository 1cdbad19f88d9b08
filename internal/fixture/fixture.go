// Package fixture loads building models from YAML documents and feeds them
// into the reactive model store. A document is a declarative description of
// storeys, perimeter loops and constraints; applying one produces exactly the
// change-feed traffic an editor session authoring the same model would.
package fixture

import (
	"fmt"

	"mortar/internal/building"
)

// Document is the root of a fixture file.
type Document struct {
	Storeys     []StoreyDoc     `yaml:"storeys" validate:"dive"`
	Perimeters  []PerimeterDoc  `yaml:"perimeters" validate:"dive"`
	Constraints []ConstraintDoc `yaml:"constraints" validate:"dive"`
}

// StoreyDoc declares one storey.
type StoreyDoc struct {
	ID        string  `yaml:"id" validate:"required"`
	Name      string  `yaml:"name"`
	Elevation float64 `yaml:"elevation"`
}

// PerimeterDoc declares one closed loop. Corners and walls are aligned:
// wall i runs from corner i to corner i+1 (wrapping), which is also how the
// corner/wall adjacency is derived on apply.
type PerimeterDoc struct {
	ID            string      `yaml:"id" validate:"required"`
	Storey        string      `yaml:"storey" validate:"required"`
	ReferenceSide string      `yaml:"reference_side" validate:"required,oneof=inside outside"`
	Corners       []CornerDoc `yaml:"corners" validate:"required,min=3,dive"`
	Walls         []WallDoc   `yaml:"walls" validate:"required,min=3,dive"`
}

// CornerDoc declares one corner by its reference-side position.
type CornerDoc struct {
	ID                string     `yaml:"id" validate:"required"`
	At                [2]float64 `yaml:"at"`
	ConstructedByWall bool       `yaml:"constructed_by_wall"`
}

// WallDoc declares one wall segment and the entities it hosts.
type WallDoc struct {
	ID        string      `yaml:"id" validate:"required"`
	Thickness float64     `yaml:"thickness" validate:"required,gt=0"`
	Assembly  string      `yaml:"assembly"`
	Entities  []EntityDoc `yaml:"entities" validate:"dive"`
}

// EntityDoc declares an opening or post hosted on its wall. Offset runs along
// the wall from its start corner; anchor defaults to start.
type EntityDoc struct {
	ID     string  `yaml:"id" validate:"required"`
	Kind   string  `yaml:"kind" validate:"required,oneof=opening post"`
	Width  float64 `yaml:"width" validate:"gt=0"`
	Offset float64 `yaml:"offset"`
	Anchor string  `yaml:"anchor" validate:"omitempty,oneof=start center"`
}

// ConstraintDoc declares one constraint. Type selects the variant; the
// remaining fields are read per type and unused ones must stay empty.
type ConstraintDoc struct {
	ID   string `yaml:"id" validate:"required"`
	Type string `yaml:"type" validate:"required"`

	Wall    string `yaml:"wall"`
	WallA   string `yaml:"wall_a"`
	WallB   string `yaml:"wall_b"`
	Corner  string `yaml:"corner"`
	Entity  string `yaml:"entity"`
	EntityA string `yaml:"entity_a"`
	EntityB string `yaml:"entity_b"`
	Node    string `yaml:"node"`

	Side        string  `yaml:"side" validate:"omitempty,oneof=inside outside"`
	EntitySide  string  `yaml:"entity_side" validate:"omitempty,oneof=start end center"`
	EntityASide string  `yaml:"entity_a_side" validate:"omitempty,oneof=start end center"`
	EntityBSide string  `yaml:"entity_b_side" validate:"omitempty,oneof=start end center"`
	Distance    float64 `yaml:"distance"`
}

// Build converts the declaration into its model variant. Side selectors
// default to the inside face and the start edge when left empty.
func (d ConstraintDoc) Build() (building.Constraint, error) {
	id := building.ConstraintID(d.ID)
	switch building.ConstraintKind(d.Type) {
	case building.KindHorizontalWall:
		if d.Wall == "" {
			return nil, fmt.Errorf("constraint %s: horizontalWall requires wall", d.ID)
		}
		return building.HorizontalWall{ID: id, Wall: building.WallID(d.Wall)}, nil

	case building.KindVerticalWall:
		if d.Wall == "" {
			return nil, fmt.Errorf("constraint %s: verticalWall requires wall", d.ID)
		}
		return building.VerticalWall{ID: id, Wall: building.WallID(d.Wall)}, nil

	case building.KindWallLength:
		if d.Wall == "" {
			return nil, fmt.Errorf("constraint %s: wallLength requires wall", d.ID)
		}
		if d.Distance <= 0 {
			return nil, fmt.Errorf("constraint %s: wallLength requires a positive distance", d.ID)
		}
		return building.WallLength{
			ID:       id,
			Wall:     building.WallID(d.Wall),
			Side:     wallSide(d.Side),
			Distance: d.Distance,
		}, nil

	case building.KindParallelWalls:
		if d.WallA == "" || d.WallB == "" {
			return nil, fmt.Errorf("constraint %s: parallelWalls requires wall_a and wall_b", d.ID)
		}
		return building.ParallelWalls{ID: id, WallA: building.WallID(d.WallA), WallB: building.WallID(d.WallB)}, nil

	case building.KindWallsDistance:
		if d.WallA == "" || d.WallB == "" {
			return nil, fmt.Errorf("constraint %s: wallsDistance requires wall_a and wall_b", d.ID)
		}
		if d.Distance <= 0 {
			return nil, fmt.Errorf("constraint %s: wallsDistance requires a positive distance", d.ID)
		}
		return building.WallsDistance{
			ID:       id,
			WallA:    building.WallID(d.WallA),
			WallB:    building.WallID(d.WallB),
			Distance: d.Distance,
		}, nil

	case building.KindFixedCorner:
		if d.Corner == "" {
			return nil, fmt.Errorf("constraint %s: fixedCorner requires corner", d.ID)
		}
		return building.FixedCorner{ID: id, Corner: building.CornerID(d.Corner)}, nil

	case building.KindWallEntityAbsolute:
		if d.Wall == "" || d.Entity == "" || d.Node == "" {
			return nil, fmt.Errorf("constraint %s: wallEntityAbsolute requires wall, entity and node", d.ID)
		}
		if d.Distance <= 0 {
			return nil, fmt.Errorf("constraint %s: wallEntityAbsolute requires a positive distance", d.ID)
		}
		return building.WallEntityAbsolute{
			ID:         id,
			Wall:       building.WallID(d.Wall),
			Entity:     building.EntityID(d.Entity),
			Node:       building.CornerID(d.Node),
			Side:       wallSide(d.Side),
			EntitySide: entitySide(d.EntitySide),
			Distance:   d.Distance,
		}, nil

	case building.KindWallEntityRelative:
		if d.Wall == "" || d.EntityA == "" || d.EntityB == "" {
			return nil, fmt.Errorf("constraint %s: wallEntityRelative requires wall, entity_a and entity_b", d.ID)
		}
		if d.Distance <= 0 {
			return nil, fmt.Errorf("constraint %s: wallEntityRelative requires a positive distance", d.ID)
		}
		return building.WallEntityRelative{
			ID:          id,
			Wall:        building.WallID(d.Wall),
			EntityA:     building.EntityID(d.EntityA),
			EntityASide: entitySide(d.EntityASide),
			EntityB:     building.EntityID(d.EntityB),
			EntityBSide: entitySide(d.EntityBSide),
			Distance:    d.Distance,
		}, nil

	default:
		return nil, fmt.Errorf("constraint %s: unknown type %q", d.ID, d.Type)
	}
}

func wallSide(s string) building.WallSide {
	if s == "" {
		return building.SideInside
	}
	return building.WallSide(s)
}

func entitySide(s string) building.EntitySide {
	if s == "" {
		return building.EntityStart
	}
	return building.EntitySide(s)
}
