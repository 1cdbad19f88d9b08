package building

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"mortar/pkg/platform/sentinel"
	"mortar/pkg/testutil"
)

type MemoryStoreTestSuite struct {
	suite.Suite
	logs  *testutil.LogRecorder
	store *MemoryStore
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreTestSuite))
}

func (s *MemoryStoreTestSuite) SetupTest() {
	s.logs = testutil.NewLogRecorder()
	s.store = NewMemoryStore(WithLogger(slog.New(s.logs)))
}

// seedRectangle authors a 10m x 8m counter-clockwise rectangle on storey s1
// with its reference points on the inside face and every wall 300 thick.
func (s *MemoryStoreTestSuite) seedRectangle() {
	s.store.PutStorey(Storey{ID: "s1", Name: "Ground floor"})

	points := []Point{{X: 0, Y: 0}, {X: 10000, Y: 0}, {X: 10000, Y: 8000}, {X: 0, Y: 8000}}
	corners := []CornerID{"c1", "c2", "c3", "c4"}
	walls := []WallID{"w1", "w2", "w3", "w4"}
	for i, id := range corners {
		s.store.PutCorner(Corner{
			ID:             id,
			PerimeterID:    "p1",
			PrevWallID:     walls[(i+3)%4],
			NextWallID:     walls[i],
			ReferencePoint: points[i],
		})
	}
	for i, id := range walls {
		s.store.PutWall(Wall{
			ID:            id,
			PerimeterID:   "p1",
			StartCornerID: corners[i],
			EndCornerID:   corners[(i+1)%4],
			Thickness:     300,
		})
	}
	s.store.PutPerimeter(Perimeter{
		ID:            "p1",
		StoreyID:      "s1",
		CornerIDs:     corners,
		WallIDs:       walls,
		ReferenceSide: ReferenceInside,
	})
}

func (s *MemoryStoreTestSuite) TestReads() {
	s.seedRectangle()

	s.Run("existing entities resolve", func() {
		p, err := s.store.Perimeter("p1")
		s.Require().NoError(err)
		s.Equal(StoreyID("s1"), p.StoreyID)

		w, err := s.store.Wall("w2")
		s.Require().NoError(err)
		s.Equal(CornerID("c2"), w.StartCornerID)

		c, err := s.store.Corner("c3")
		s.Require().NoError(err)
		s.Equal(Point{X: 10000, Y: 8000}, c.ReferencePoint)
	})

	s.Run("missing entities return not found", func() {
		_, err := s.store.Perimeter("nope")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		_, err = s.store.Corner("nope")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)

		_, err = s.store.Constraint("nope")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *MemoryStoreTestSuite) TestListingsAreSortedByID() {
	s.store.PutPerimeter(Perimeter{ID: "p2"})
	s.store.PutPerimeter(Perimeter{ID: "p1"})
	s.store.PutConstraint(FixedCorner{ID: "k2", Corner: "c1"})
	s.store.PutConstraint(HorizontalWall{ID: "k1", Wall: "w1"})

	perimeters := s.store.Perimeters()
	s.Require().Len(perimeters, 2)
	s.Equal(PerimeterID("p1"), perimeters[0].ID)
	s.Equal(PerimeterID("p2"), perimeters[1].ID)

	constraints := s.store.Constraints()
	s.Require().Len(constraints, 2)
	s.Equal(ConstraintID("k1"), constraints[0].ConstraintID())
	s.Equal(ConstraintID("k2"), constraints[1].ConstraintID())
}

func (s *MemoryStoreTestSuite) TestPutNotifiesSynchronously() {
	type event struct {
		id       CornerID
		current  *Corner
		previous *Corner
	}
	var events []event
	s.store.SubscribeCorners(func(id CornerID, current, previous *Corner) {
		events = append(events, event{id, current, previous})
	})

	first := Corner{ID: "c1", ReferencePoint: Point{X: 1, Y: 2}}
	s.store.PutCorner(first)
	s.Require().Len(events, 1, "callback must run before Put returns")
	s.Equal(first, *events[0].current)
	s.Nil(events[0].previous)

	moved := Corner{ID: "c1", ReferencePoint: Point{X: 3, Y: 4}}
	s.store.PutCorner(moved)
	s.Require().Len(events, 2)
	s.Equal(moved, *events[1].current)
	s.Require().NotNil(events[1].previous)
	s.Equal(first, *events[1].previous)
}

func (s *MemoryStoreTestSuite) TestRemoveNotifiesPreviousOnly() {
	var current *Wall
	var previous *Wall
	calls := 0
	s.store.SubscribeWalls(func(_ WallID, cur, prev *Wall) {
		calls++
		current, previous = cur, prev
	})

	wall := Wall{ID: "w1", Thickness: 300}
	s.store.PutWall(wall)
	s.store.RemoveWall("w1")

	s.Require().Equal(2, calls)
	s.Nil(current)
	s.Require().NotNil(previous)
	s.Equal(wall, *previous)

	s.Run("removing an unknown id emits nothing", func() {
		s.store.RemoveWall("w1")
		s.Equal(2, calls)
	})
}

func (s *MemoryStoreTestSuite) TestConstraintFeed() {
	var current Constraint
	var previous Constraint
	calls := 0
	s.store.SubscribeConstraints(func(_ ConstraintID, cur, prev Constraint) {
		calls++
		current, previous = cur, prev
	})

	v1 := WallLength{ID: "k1", Wall: "w1", Side: SideInside, Distance: 10000}
	s.store.PutConstraint(v1)
	s.Require().Equal(1, calls)
	s.Equal(v1, current)
	s.Nil(previous)

	v2 := WallLength{ID: "k1", Wall: "w1", Side: SideInside, Distance: 12000}
	s.store.PutConstraint(v2)
	s.Require().Equal(2, calls)
	s.Equal(v2, current)
	s.Equal(v1, previous)

	s.store.RemoveConstraint("k1")
	s.Require().Equal(3, calls)
	s.Nil(current)
	s.Equal(v2, previous)
}

func (s *MemoryStoreTestSuite) TestEntityFeed() {
	var got *WallEntity
	s.store.SubscribeEntities(func(_ EntityID, cur, _ *WallEntity) { got = cur })

	door := WallEntity{ID: "o1", WallID: "w1", Kind: EntityOpening, Width: 900, Offset: 1200, Anchor: AnchorStart}
	s.store.PutWallEntity(door)

	s.Require().NotNil(got)
	s.Equal(door, *got)
}

func (s *MemoryStoreTestSuite) TestUnsubscribeStopsDelivery() {
	calls := 0
	unsub := s.store.SubscribePerimeters(func(PerimeterID, *Perimeter, *Perimeter) { calls++ })

	s.store.PutPerimeter(Perimeter{ID: "p1"})
	s.Require().Equal(1, calls)

	unsub()
	s.store.PutPerimeter(Perimeter{ID: "p1"})
	s.Equal(1, calls)

	s.NotPanics(unsub, "unsubscribe is safe to call twice")
}

func (s *MemoryStoreTestSuite) TestSubscriberPanicIsContained() {
	healthyCalls := 0
	s.store.SubscribeCorners(func(CornerID, *Corner, *Corner) { panic("boom") })
	s.store.SubscribeCorners(func(CornerID, *Corner, *Corner) { healthyCalls++ })

	s.NotPanics(func() {
		s.store.PutCorner(Corner{ID: "c1"})
	})

	s.Equal(1, healthyCalls, "healthy subscriber still runs")
	s.Len(s.logs.AtLevel(slog.LevelError), 1)

	c, err := s.store.Corner("c1")
	s.Require().NoError(err)
	s.Equal(CornerID("c1"), c.ID)
}

func (s *MemoryStoreTestSuite) TestResolveCorner() {
	s.seedRectangle()

	s.Run("right-angle corners miter outward", func() {
		expected := map[CornerID]Point{
			"c1": {X: -300, Y: -300},
			"c2": {X: 10300, Y: -300},
			"c3": {X: 10300, Y: 8300},
			"c4": {X: -300, Y: 8300},
		}
		for id, want := range expected {
			resolved, err := s.store.ResolveCorner(id)
			s.Require().NoError(err)
			s.Equal(id, resolved.CornerID)
			s.Equal(want, resolved.NonRefPrev)
			s.Equal(want, resolved.NonRefNext)
		}
	})

	s.Run("resolution follows the live reference point", func() {
		moved, err := s.store.Corner("c1")
		s.Require().NoError(err)
		moved.ReferencePoint = Point{X: -1000, Y: 0}
		s.store.PutCorner(moved)

		resolved, err := s.store.ResolveCorner("c1")
		s.Require().NoError(err)
		s.Equal(Point{X: -1000, Y: 0}, resolved.Reference)
	})

	s.Run("unknown corner", func() {
		_, err := s.store.ResolveCorner("nope")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("missing adjacent wall", func() {
		s.store.RemoveWall("w4")
		_, err := s.store.ResolveCorner("c1")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}
