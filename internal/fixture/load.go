package fixture

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"mortar/internal/building"
)

var docValidator = validator.New()

// Load reads and validates the fixture file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixture %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a fixture document. Unknown YAML keys are
// rejected so field typos fail loudly instead of silently dropping input.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{}, nil
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks the document's field constraints and cross references.
// All problems found are reported together.
func Validate(doc *Document) error {
	if err := docValidator.Struct(doc); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	idx, errs := indexDocument(doc)
	for _, cd := range doc.Constraints {
		errs = append(errs, checkConstraint(cd, idx)...)
	}
	return errors.Join(errs...)
}

// docIndex resolves fixture identifiers for cross-reference checks and for
// computing document deltas.
type docIndex struct {
	storeys     map[string]StoreyDoc
	perimeters  map[string]PerimeterDoc
	corners     map[string]CornerDoc
	cornerOwner map[string]string // corner id -> perimeter id
	walls       map[string]WallDoc
	wallOwner   map[string]string // wall id -> perimeter id
	wallEnds    map[string][2]string
	entities    map[string]EntityDoc
	entityHost  map[string]string // entity id -> wall id
	constraints map[string]ConstraintDoc
}

func indexDocument(doc *Document) (*docIndex, []error) {
	idx := &docIndex{
		storeys:     make(map[string]StoreyDoc),
		perimeters:  make(map[string]PerimeterDoc),
		corners:     make(map[string]CornerDoc),
		cornerOwner: make(map[string]string),
		walls:       make(map[string]WallDoc),
		wallOwner:   make(map[string]string),
		wallEnds:    make(map[string][2]string),
		entities:    make(map[string]EntityDoc),
		entityHost:  make(map[string]string),
		constraints: make(map[string]ConstraintDoc),
	}
	var errs []error
	dup := func(kind, id string) {
		errs = append(errs, fmt.Errorf("%s %s: duplicate id", kind, id))
	}

	for _, st := range doc.Storeys {
		if _, ok := idx.storeys[st.ID]; ok {
			dup("storey", st.ID)
		}
		idx.storeys[st.ID] = st
	}

	for _, p := range doc.Perimeters {
		if _, ok := idx.perimeters[p.ID]; ok {
			dup("perimeter", p.ID)
		}
		idx.perimeters[p.ID] = p

		if _, ok := idx.storeys[p.Storey]; !ok {
			errs = append(errs, fmt.Errorf("perimeter %s: unknown storey %s", p.ID, p.Storey))
		}
		if len(p.Walls) != len(p.Corners) {
			errs = append(errs, fmt.Errorf("perimeter %s: %d walls for %d corners, a closed loop needs one wall per corner",
				p.ID, len(p.Walls), len(p.Corners)))
		}

		for _, c := range p.Corners {
			if _, ok := idx.corners[c.ID]; ok {
				dup("corner", c.ID)
			}
			idx.corners[c.ID] = c
			idx.cornerOwner[c.ID] = p.ID
		}
		for i, w := range p.Walls {
			if _, ok := idx.walls[w.ID]; ok {
				dup("wall", w.ID)
			}
			idx.walls[w.ID] = w
			idx.wallOwner[w.ID] = p.ID
			if i < len(p.Corners) {
				idx.wallEnds[w.ID] = [2]string{
					p.Corners[i].ID,
					p.Corners[(i+1)%len(p.Corners)].ID,
				}
			}
			for _, e := range w.Entities {
				if _, ok := idx.entities[e.ID]; ok {
					dup("entity", e.ID)
				}
				idx.entities[e.ID] = e
				idx.entityHost[e.ID] = w.ID
			}
		}
	}

	for _, cd := range doc.Constraints {
		if _, ok := idx.constraints[cd.ID]; ok {
			dup("constraint", cd.ID)
		}
		idx.constraints[cd.ID] = cd
	}
	return idx, errs
}

// checkConstraint verifies the declaration builds and that every structural
// reference resolves inside the document.
func checkConstraint(cd ConstraintDoc, idx *docIndex) []error {
	c, err := cd.Build()
	if err != nil {
		return []error{err}
	}

	var errs []error
	refs := building.ConstraintRefs(c)
	for _, w := range refs.Walls {
		if _, ok := idx.walls[string(w)]; !ok {
			errs = append(errs, fmt.Errorf("constraint %s: unknown wall %s", cd.ID, w))
		}
	}
	for _, cr := range refs.Corners {
		if _, ok := idx.corners[string(cr)]; !ok {
			errs = append(errs, fmt.Errorf("constraint %s: unknown corner %s", cd.ID, cr))
		}
	}
	for _, e := range refs.Entities {
		host, ok := idx.entityHost[string(e)]
		if !ok {
			errs = append(errs, fmt.Errorf("constraint %s: unknown entity %s", cd.ID, e))
			continue
		}
		if cd.Wall != "" && host != cd.Wall {
			errs = append(errs, fmt.Errorf("constraint %s: entity %s is hosted on wall %s, not %s", cd.ID, e, host, cd.Wall))
		}
	}

	// A dimension node must be one of the wall's own endpoints, otherwise the
	// measurement has no geometric meaning.
	if abs, ok := c.(building.WallEntityAbsolute); ok {
		ends, found := idx.wallEnds[string(abs.Wall)]
		if found && ends[0] != string(abs.Node) && ends[1] != string(abs.Node) {
			errs = append(errs, fmt.Errorf("constraint %s: node %s is not an endpoint of wall %s", cd.ID, abs.Node, abs.Wall))
		}
	}
	return errs
}
