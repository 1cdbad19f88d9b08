package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortar/pkg/platform/sentinel"
)

func TestLoopIsCCW(t *testing.T) {
	t.Run("counter-clockwise rectangle", func(t *testing.T) {
		ccw, err := loopIsCCW([]Point{{0, 0}, {10000, 0}, {10000, 8000}, {0, 8000}})
		require.NoError(t, err)
		assert.True(t, ccw)
	})

	t.Run("clockwise rectangle", func(t *testing.T) {
		ccw, err := loopIsCCW([]Point{{0, 0}, {0, 8000}, {10000, 8000}, {10000, 0}})
		require.NoError(t, err)
		assert.False(t, ccw)
	})

	t.Run("too few points", func(t *testing.T) {
		_, err := loopIsCCW([]Point{{0, 0}, {1, 1}})
		require.ErrorIs(t, err, sentinel.ErrInvalidState)
	})

	t.Run("colinear loop encloses no area", func(t *testing.T) {
		_, err := loopIsCCW([]Point{{0, 0}, {1, 0}, {2, 0}})
		require.ErrorIs(t, err, sentinel.ErrInvalidState)
	})
}

func TestResolveCornerGeometry(t *testing.T) {
	corner := Corner{ID: "c", PrevWallID: "wp", NextWallID: "wn"}

	t.Run("right angle miters both offset faces onto one point", func(t *testing.T) {
		// South-west corner of a counter-clockwise rectangle authored on the
		// inside face: both offsets push outward.
		got, err := resolveCornerGeometry(corner, 300, 300, Point{0, 8000}, Point{0, 0}, Point{10000, 0}, true, ReferenceInside)
		require.NoError(t, err)

		assert.Equal(t, Point{0, 0}, got.Reference)
		assert.Equal(t, Point{-300, -300}, got.NonRefPrev)
		assert.Equal(t, Point{-300, -300}, got.NonRefNext)
	})

	t.Run("unequal thickness still miters at an angle", func(t *testing.T) {
		got, err := resolveCornerGeometry(corner, 300, 500, Point{0, 8000}, Point{0, 0}, Point{10000, 0}, true, ReferenceInside)
		require.NoError(t, err)

		// Prev wall face sits at x=-300, next wall face at y=-500.
		assert.Equal(t, Point{-300, -500}, got.NonRefPrev)
		assert.Equal(t, Point{-300, -500}, got.NonRefNext)
	})

	t.Run("outside reference side offsets inward", func(t *testing.T) {
		got, err := resolveCornerGeometry(corner, 300, 300, Point{0, 8000}, Point{0, 0}, Point{10000, 0}, true, ReferenceOutside)
		require.NoError(t, err)

		assert.Equal(t, Point{300, 300}, got.NonRefPrev)
		assert.Equal(t, Point{300, 300}, got.NonRefNext)
	})

	t.Run("parallel joint with equal thickness keeps coincident feet", func(t *testing.T) {
		got, err := resolveCornerGeometry(corner, 300, 300, Point{0, 0}, Point{5000, 0}, Point{10000, 0}, true, ReferenceInside)
		require.NoError(t, err)

		assert.Equal(t, Point{5000, -300}, got.NonRefPrev)
		assert.Equal(t, Point{5000, -300}, got.NonRefNext)
	})

	t.Run("parallel joint with unequal thickness diverges", func(t *testing.T) {
		got, err := resolveCornerGeometry(corner, 300, 500, Point{0, 0}, Point{5000, 0}, Point{10000, 0}, true, ReferenceInside)
		require.NoError(t, err)

		assert.Equal(t, Point{5000, -300}, got.NonRefPrev)
		assert.Equal(t, Point{5000, -500}, got.NonRefNext)
	})

	t.Run("winding does not change the result", func(t *testing.T) {
		// The same physical corner described from a clockwise loop: travel
		// directions reverse roles but the offset still points outward.
		cw := Corner{ID: "c", PrevWallID: "wn", NextWallID: "wp"}
		got, err := resolveCornerGeometry(cw, 300, 300, Point{10000, 0}, Point{0, 0}, Point{0, 8000}, false, ReferenceInside)
		require.NoError(t, err)

		assert.Equal(t, Point{-300, -300}, got.NonRefPrev)
		assert.Equal(t, Point{-300, -300}, got.NonRefNext)
	})

	t.Run("zero-length previous wall is rejected", func(t *testing.T) {
		_, err := resolveCornerGeometry(corner, 300, 300, Point{0, 0}, Point{0, 0}, Point{10000, 0}, true, ReferenceInside)
		require.ErrorIs(t, err, sentinel.ErrInvalidState)
		assert.Contains(t, err.Error(), "wp")
	})

	t.Run("zero-length next wall is rejected", func(t *testing.T) {
		_, err := resolveCornerGeometry(corner, 300, 300, Point{0, 8000}, Point{0, 0}, Point{0, 0}, true, ReferenceInside)
		require.ErrorIs(t, err, sentinel.ErrInvalidState)
		assert.Contains(t, err.Error(), "wn")
	})
}
