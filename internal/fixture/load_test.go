package fixture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortar/internal/building"
)

func TestLoadFixtureFile(t *testing.T) {
	doc, err := Load("testdata/house.yaml")
	require.NoError(t, err)

	require.Len(t, doc.Storeys, 1)
	require.Len(t, doc.Perimeters, 1)
	require.Len(t, doc.Constraints, 4)

	p := doc.Perimeters[0]
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "inside", p.ReferenceSide)
	require.Len(t, p.Corners, 4)
	require.Len(t, p.Walls, 4)
	assert.Equal(t, [2]float64{10000, 8000}, p.Corners[2].At)
	assert.Equal(t, 300.0, p.Walls[0].Thickness)
	require.Len(t, p.Walls[0].Entities, 1)
	assert.Equal(t, "door1", p.Walls[0].Entities[0].ID)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/absent.yaml")
	require.Error(t, err)
}

func TestParseEmptyInput(t *testing.T) {
	doc, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Perimeters)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("perimetres: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "perimetres")
}

// minimalLoop returns a valid single-rectangle document the rejection cases
// below mutate one aspect of.
func minimalLoop() string {
	return `
storeys:
  - id: s1
perimeters:
  - id: p1
    storey: s1
    reference_side: inside
    corners:
      - {id: c1, at: [0, 0]}
      - {id: c2, at: [6000, 0]}
      - {id: c3, at: [6000, 4000]}
      - {id: c4, at: [0, 4000]}
    walls:
      - {id: w1, thickness: 300}
      - {id: w2, thickness: 300}
      - {id: w3, thickness: 300}
      - {id: w4, thickness: 300}
`
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		message string
	}{
		{
			name: "missing reference side",
			input: `
storeys: [{id: s1}]
perimeters:
  - id: p1
    storey: s1
    corners: [{id: c1}, {id: c2}, {id: c3}]
    walls: [{id: w1, thickness: 300}, {id: w2, thickness: 300}, {id: w3, thickness: 300}]
`,
			message: "ReferenceSide",
		},
		{
			name: "unknown storey",
			input: `
perimeters:
  - id: p1
    storey: missing
    reference_side: inside
    corners: [{id: c1}, {id: c2}, {id: c3}]
    walls: [{id: w1, thickness: 300}, {id: w2, thickness: 300}, {id: w3, thickness: 300}]
`,
			message: "unknown storey missing",
		},
		{
			name: "wall and corner counts differ",
			input: `
storeys: [{id: s1}]
perimeters:
  - id: p1
    storey: s1
    reference_side: inside
    corners: [{id: c1}, {id: c2}, {id: c3}, {id: c4}]
    walls: [{id: w1, thickness: 300}, {id: w2, thickness: 300}, {id: w3, thickness: 300}]
`,
			message: "3 walls for 4 corners",
		},
		{
			name: "zero thickness",
			input: `
storeys: [{id: s1}]
perimeters:
  - id: p1
    storey: s1
    reference_side: inside
    corners: [{id: c1}, {id: c2}, {id: c3}]
    walls: [{id: w1, thickness: 0}, {id: w2, thickness: 300}, {id: w3, thickness: 300}]
`,
			message: "Thickness",
		},
		{
			name: "constraint references unknown wall",
			input: minimalLoop() + `
constraints:
  - {id: k1, type: horizontalWall, wall: w9}
`,
			message: "unknown wall w9",
		},
		{
			name: "constraint type unknown",
			input: minimalLoop() + `
constraints:
  - {id: k1, type: perpendicularWalls, wall_a: w1, wall_b: w2}
`,
			message: `unknown type "perpendicularWalls"`,
		},
		{
			name: "wall length without distance",
			input: minimalLoop() + `
constraints:
  - {id: k1, type: wallLength, wall: w1}
`,
			message: "positive distance",
		},
		{
			name: "dimension node off the wall",
			input: minimalLoop() + `
constraints:
  - {id: k1, type: wallEntityAbsolute, wall: w2, entity: e1, node: c1, distance: 500}
`,
			message: "node c1 is not an endpoint of wall w2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input))
			require.Error(t, err)
			if tc.message != "" {
				assert.Contains(t, err.Error(), tc.message)
			}
		})
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	input := `
storeys: [{id: s1}]
perimeters:
  - id: p1
    storey: s1
    reference_side: inside
    corners: [{id: c1}, {id: c2}, {id: c1}]
    walls: [{id: w1, thickness: 300}, {id: w2, thickness: 300}, {id: w3, thickness: 300}]
`
	_, err := Parse([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corner c1: duplicate id")
}

func TestValidateEntityHostMismatch(t *testing.T) {
	input := `
storeys: [{id: s1}]
perimeters:
  - id: p1
    storey: s1
    reference_side: inside
    corners: [{id: c1, at: [0, 0]}, {id: c2, at: [6000, 0]}, {id: c3, at: [6000, 4000]}]
    walls:
      - id: w1
        thickness: 300
        entities: [{id: e1, kind: opening, width: 900}]
      - {id: w2, thickness: 300}
      - {id: w3, thickness: 300}
constraints:
  - {id: k1, type: wallEntityAbsolute, wall: w2, entity: e1, node: c2, distance: 500}
`
	_, err := Parse([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hosted on wall w1, not w2")
}

func TestConstraintDocDefaults(t *testing.T) {
	c, err := ConstraintDoc{ID: "k1", Type: "wallLength", Wall: "w1", Distance: 4200}.Build()
	require.NoError(t, err)
	length, ok := c.(building.WallLength)
	require.True(t, ok)
	assert.Equal(t, building.SideInside, length.Side)

	c, err = ConstraintDoc{
		ID: "k2", Type: "wallEntityAbsolute",
		Wall: "w1", Entity: "e1", Node: "c1", Distance: 900,
	}.Build()
	require.NoError(t, err)
	abs, ok := c.(building.WallEntityAbsolute)
	require.True(t, ok)
	assert.Equal(t, building.EntityStart, abs.EntitySide)
	assert.Equal(t, building.SideInside, abs.Side)
}
