package syncer

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mortar/internal/building"
	"mortar/internal/solver"
	"mortar/internal/syncer/mocks"
	"mortar/pkg/attrs"
	"mortar/pkg/platform/sentinel"
	"mortar/pkg/testutil"
)

// =============================================================================
// Synchronizer Service Test Suite
// =============================================================================
// Justification for unit tests: the reconciliation rules are contracts about
// exactly which solver calls each model change produces, including the calls
// that must NOT happen. Only mocks can assert call multiplicity and argument
// fidelity; the end-to-end tests cover convergence over real stores instead.

type SyncerServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockModel  *mocks.MockModelStore
	mockSolver *mocks.MockSolverStore
	registry   *stubRegistry
	logs       *testutil.LogRecorder
	service    *Service
}

func TestSyncerServiceSuite(t *testing.T) {
	suite.Run(t, new(SyncerServiceSuite))
}

func (s *SyncerServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockModel = mocks.NewMockModelStore(s.ctrl)
	s.mockSolver = mocks.NewMockSolverStore(s.ctrl)
	s.registry = &stubRegistry{tracked: make(map[building.PerimeterID]bool)}
	s.mockSolver.EXPECT().Registry().Return(s.registry).AnyTimes()
	s.logs = testutil.NewLogRecorder()

	service, err := New(s.mockModel, s.mockSolver, WithLogger(slog.New(s.logs)))
	s.Require().NoError(err)
	s.service = service
}

func (s *SyncerServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// stubRegistry answers tracked-ness from a plain set. The synchronizer reads
// nothing else off the registry.
type stubRegistry struct {
	tracked map[building.PerimeterID]bool
}

func (r *stubRegistry) Tracked(id building.PerimeterID) bool { return r.tracked[id] }
func (r *stubRegistry) HasPoint(solver.PointID) bool         { return false }
func (r *stubRegistry) Snapshot() solver.Snapshot            { return solver.Snapshot{} }

// expectSubscribes arms the four feed registrations Start performs and counts
// unsubscribe invocations.
func (s *SyncerServiceSuite) expectSubscribes() *int {
	count := 0
	unsub := building.Unsubscribe(func() { count++ })
	s.mockModel.EXPECT().SubscribePerimeters(gomock.Any()).Return(unsub)
	s.mockModel.EXPECT().SubscribeCorners(gomock.Any()).Return(unsub)
	s.mockModel.EXPECT().SubscribeWalls(gomock.Any()).Return(unsub)
	s.mockModel.EXPECT().SubscribeConstraints(gomock.Any()).Return(unsub)
	return &count
}

// expectResync arms the model reads the constraint resync performs after a
// successful geometry rebuild.
func (s *SyncerServiceSuite) expectResync(p building.Perimeter, constraints ...building.Constraint) {
	s.mockModel.EXPECT().Perimeter(p.ID).Return(p, nil)
	s.mockModel.EXPECT().Constraints().Return(constraints)
}

func (s *SyncerServiceSuite) warnings() []testutil.Record {
	return s.logs.AtLevel(slog.LevelWarn)
}

// =============================================================================
// Constructor Tests (Invariant Enforcement)
// =============================================================================

func (s *SyncerServiceSuite) TestNew() {
	s.Run("nil model returns error", func() {
		_, err := New(nil, s.mockSolver)
		s.Error(err)
		s.Contains(err.Error(), "model store is required")
	})

	s.Run("nil solver returns error", func() {
		_, err := New(s.mockModel, nil)
		s.Error(err)
		s.Contains(err.Error(), "solver store is required")
	})

	s.Run("valid dependencies return configured service", func() {
		svc, err := New(s.mockModel, s.mockSolver)
		s.NoError(err)
		s.NotNil(svc)
	})
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func (s *SyncerServiceSuite) TestStartSeedsExistingPerimeters() {
	p1 := building.Perimeter{ID: "p1", WallIDs: []building.WallID{"w1"}}
	p2 := building.Perimeter{ID: "p2", WallIDs: []building.WallID{"w5"}}
	s.mockModel.EXPECT().Perimeters().Return([]building.Perimeter{p1, p2})
	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p1")).Return(nil)
	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p2")).Return(nil)
	s.expectResync(p1)
	s.expectResync(p2)
	s.expectSubscribes()

	s.Require().NoError(s.service.Start())
	s.Empty(s.warnings())
}

func (s *SyncerServiceSuite) TestStartIsolatesSeedFailures() {
	p1 := building.Perimeter{ID: "p1"}
	p2 := building.Perimeter{ID: "p2"}
	boom := fmt.Errorf("corner c1: %w", sentinel.ErrNotFound)
	s.mockModel.EXPECT().Perimeters().Return([]building.Perimeter{p1, p2})
	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p1")).Return(boom)
	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p2")).Return(nil)
	s.expectResync(p2)
	s.expectSubscribes()

	s.Require().NoError(s.service.Start(), "a bad perimeter never fails startup")

	warnings := s.warnings()
	s.Require().Len(warnings, 1)
	s.ErrorIs(attrs.ExtractError(warnings[0].Attrs, "error"), sentinel.ErrNotFound)
}

func (s *SyncerServiceSuite) TestStartTwiceErrors() {
	s.mockModel.EXPECT().Perimeters().Return(nil)
	s.expectSubscribes()

	s.Require().NoError(s.service.Start())
	s.Require().ErrorIs(s.service.Start(), sentinel.ErrInvalidState)
}

func (s *SyncerServiceSuite) TestCloseDropsSubscriptions() {
	s.mockModel.EXPECT().Perimeters().Return(nil)
	unsubs := s.expectSubscribes()
	s.Require().NoError(s.service.Start())

	s.Require().NoError(s.service.Close())
	s.Equal(4, *unsubs)

	s.Run("close is idempotent", func() {
		s.Require().NoError(s.service.Close())
		s.Equal(4, *unsubs)
	})

	s.Run("start after close errors", func() {
		s.Require().ErrorIs(s.service.Start(), sentinel.ErrInvalidState)
	})
}

func (s *SyncerServiceSuite) TestCloseBeforeStartIsNoOp() {
	s.Require().NoError(s.service.Close())
}

func (s *SyncerServiceSuite) TestStartWiresFeedCallbacks() {
	var perimeterFn building.PerimeterFunc
	s.mockModel.EXPECT().Perimeters().Return(nil)
	s.mockModel.EXPECT().SubscribePerimeters(gomock.Any()).DoAndReturn(func(fn building.PerimeterFunc) building.Unsubscribe {
		perimeterFn = fn
		return func() {}
	})
	s.mockModel.EXPECT().SubscribeCorners(gomock.Any()).Return(building.Unsubscribe(func() {}))
	s.mockModel.EXPECT().SubscribeWalls(gomock.Any()).Return(building.Unsubscribe(func() {}))
	s.mockModel.EXPECT().SubscribeConstraints(gomock.Any()).Return(building.Unsubscribe(func() {}))
	s.Require().NoError(s.service.Start())
	s.Require().NotNil(perimeterFn)

	// Firing the captured callback reconciles synchronously on this
	// goroutine; by the time it returns the solver has been told.
	p := building.Perimeter{ID: "p1"}
	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p1")).Return(nil)
	s.expectResync(p)
	perimeterFn("p1", &p, nil)
}

// =============================================================================
// Perimeter Rule Tests
// =============================================================================

func (s *SyncerServiceSuite) TestPerimeterCreationAddsGeometryOnce() {
	p := building.Perimeter{ID: "p1", WallIDs: []building.WallID{"w1", "w2"}}
	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p1")).Return(nil).Times(1)
	s.expectResync(p)

	s.service.reconcilePerimeter("p1", &p, nil)
}

func (s *SyncerServiceSuite) TestPerimeterUpdateRebuildsGeometry() {
	prev := building.Perimeter{ID: "p1", WallIDs: []building.WallID{"w1"}}
	cur := building.Perimeter{ID: "p1", WallIDs: []building.WallID{"w1", "w2"}}
	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p1")).Return(nil).Times(1)
	s.expectResync(cur)

	s.service.reconcilePerimeter("p1", &cur, &prev)
}

func (s *SyncerServiceSuite) TestPerimeterUpsertResyncsOnlyItsConstraints() {
	p := building.Perimeter{
		ID:        "p1",
		CornerIDs: []building.CornerID{"c1", "c2"},
		WallIDs:   []building.WallID{"w1", "w2"},
	}
	mine := building.HorizontalWall{ID: "kA", Wall: "w1"}
	alsoMine := building.FixedCorner{ID: "kB", Corner: "c2"}
	foreign := building.VerticalWall{ID: "kC", Wall: "w99"}

	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p1")).Return(nil)
	s.expectResync(p, mine, foreign, alsoMine)
	s.mockSolver.EXPECT().AddBuildingConstraint(mine).Return(nil).Times(1)
	s.mockSolver.EXPECT().AddBuildingConstraint(alsoMine).Return(nil).Times(1)
	// No expectation for the foreign constraint: referencing w99 must not
	// produce a call.

	s.service.reconcilePerimeter("p1", &p, nil)
}

func (s *SyncerServiceSuite) TestPerimeterRemoval() {
	prev := building.Perimeter{ID: "p1"}

	s.Run("tracked perimeter is removed once", func() {
		s.registry.tracked["p1"] = true
		s.mockSolver.EXPECT().RemovePerimeterGeometry(building.PerimeterID("p1")).Return(nil).Times(1)

		s.service.reconcilePerimeter("p1", nil, &prev)
	})

	s.Run("untracked perimeter produces no solver calls", func() {
		other := building.Perimeter{ID: "p9"}
		s.service.reconcilePerimeter("p9", nil, &other)
		s.Empty(s.warnings())
	})
}

func (s *SyncerServiceSuite) TestPerimeterUpsertFailureIsContained() {
	p := building.Perimeter{ID: "p1"}
	boom := errors.New("model incomplete")
	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p1")).Return(boom)

	s.service.reconcilePerimeter("p1", &p, nil)

	warnings := s.warnings()
	s.Require().Len(warnings, 1)
	s.Equal("solver call rejected", warnings[0].Message)
	s.Equal("add_perimeter_geometry", attrs.ExtractString(warnings[0].Attrs, "op"))
	s.ErrorIs(attrs.ExtractError(warnings[0].Attrs, "error"), boom)
}

// =============================================================================
// Corner Rule Tests
// =============================================================================

func (s *SyncerServiceSuite) TestCornerMoveUpdatesThreePoints() {
	s.registry.tracked["p1"] = true
	prev := building.Corner{ID: "c1", PerimeterID: "p1", ReferencePoint: building.Point{X: 0, Y: 0}}
	cur := building.Corner{ID: "c1", PerimeterID: "p1", ReferencePoint: building.Point{X: 100, Y: 0}}

	resolved := building.ResolvedCorner{
		CornerID:   "c1",
		Reference:  building.Point{X: 100, Y: 0},
		NonRefPrev: building.Point{X: -200, Y: -300},
		NonRefNext: building.Point{X: -200, Y: -300},
	}
	s.mockModel.EXPECT().ResolveCorner(building.CornerID("c1")).Return(resolved, nil)
	s.mockSolver.EXPECT().UpdatePointPosition(solver.RefPointID("c1"), resolved.Reference).Return(nil).Times(1)
	s.mockSolver.EXPECT().UpdatePointPosition(solver.NonRefPrevPointID("c1"), resolved.NonRefPrev).Return(nil).Times(1)
	s.mockSolver.EXPECT().UpdatePointPosition(solver.NonRefNextPointID("c1"), resolved.NonRefNext).Return(nil).Times(1)

	s.service.reconcileCorner("c1", &cur, &prev)
}

func (s *SyncerServiceSuite) TestCornerMoveOnUntrackedPerimeterIsSilent() {
	prev := building.Corner{ID: "c1", PerimeterID: "p9"}
	cur := building.Corner{ID: "c1", PerimeterID: "p9", ReferencePoint: building.Point{X: 5, Y: 5}}

	s.service.reconcileCorner("c1", &cur, &prev)

	s.Empty(s.warnings())
}

func (s *SyncerServiceSuite) TestCornerStructuralChangesAreNoOps() {
	s.registry.tracked["p1"] = true
	c := building.Corner{ID: "c1", PerimeterID: "p1"}

	s.Run("creation rides the perimeter feed", func() {
		s.service.reconcileCorner("c1", &c, nil)
	})

	s.Run("removal rides the perimeter feed", func() {
		s.service.reconcileCorner("c1", nil, &c)
	})
}

func (s *SyncerServiceSuite) TestCornerResolutionFailureIsContained() {
	s.registry.tracked["p1"] = true
	prev := building.Corner{ID: "c1", PerimeterID: "p1"}
	cur := building.Corner{ID: "c1", PerimeterID: "p1", ReferencePoint: building.Point{X: 1, Y: 1}}
	s.mockModel.EXPECT().ResolveCorner(building.CornerID("c1")).
		Return(building.ResolvedCorner{}, fmt.Errorf("degenerate: %w", sentinel.ErrInvalidState))

	s.service.reconcileCorner("c1", &cur, &prev)

	warnings := s.warnings()
	s.Require().Len(warnings, 1)
	s.Equal("corner resolution failed", warnings[0].Message)
}

func (s *SyncerServiceSuite) TestCornerPointRejectionDoesNotStopSiblings() {
	s.registry.tracked["p1"] = true
	prev := building.Corner{ID: "c1", PerimeterID: "p1"}
	cur := building.Corner{ID: "c1", PerimeterID: "p1", ReferencePoint: building.Point{X: 9, Y: 9}}

	resolved := building.ResolvedCorner{CornerID: "c1", Reference: building.Point{X: 9, Y: 9}}
	boom := fmt.Errorf("point corner_c1_ref: %w", sentinel.ErrNotFound)
	s.mockModel.EXPECT().ResolveCorner(building.CornerID("c1")).Return(resolved, nil)
	s.mockSolver.EXPECT().UpdatePointPosition(solver.RefPointID("c1"), gomock.Any()).Return(boom).Times(1)
	s.mockSolver.EXPECT().UpdatePointPosition(solver.NonRefPrevPointID("c1"), gomock.Any()).Return(nil).Times(1)
	s.mockSolver.EXPECT().UpdatePointPosition(solver.NonRefNextPointID("c1"), gomock.Any()).Return(nil).Times(1)

	s.service.reconcileCorner("c1", &cur, &prev)

	warnings := s.warnings()
	s.Require().Len(warnings, 1, "exactly one warning for the one rejection")
	s.ErrorIs(attrs.ExtractError(warnings[0].Attrs, "error"), sentinel.ErrNotFound)
}

// =============================================================================
// Wall Rule Tests
// =============================================================================

func (s *SyncerServiceSuite) TestWallThicknessChangeRebuildsOwningPerimeter() {
	s.registry.tracked["p1"] = true
	p := building.Perimeter{ID: "p1", WallIDs: []building.WallID{"w1"}}
	prev := building.Wall{ID: "w1", PerimeterID: "p1", Thickness: 200}
	cur := building.Wall{ID: "w1", PerimeterID: "p1", Thickness: 300}

	s.mockSolver.EXPECT().AddPerimeterGeometry(building.PerimeterID("p1")).Return(nil).Times(1)
	s.expectResync(p)

	s.service.reconcileWall("w1", &cur, &prev)
}

func (s *SyncerServiceSuite) TestWallUnchangedThicknessIsSilent() {
	s.registry.tracked["p1"] = true
	prev := building.Wall{ID: "w1", PerimeterID: "p1", Thickness: 400}
	cur := building.Wall{ID: "w1", PerimeterID: "p1", Thickness: 400, AssemblyID: "brick-400"}

	s.service.reconcileWall("w1", &cur, &prev)
}

func (s *SyncerServiceSuite) TestWallThicknessChangeOnUntrackedPerimeterIsSilent() {
	prev := building.Wall{ID: "w1", PerimeterID: "p9", Thickness: 200}
	cur := building.Wall{ID: "w1", PerimeterID: "p9", Thickness: 300}

	s.service.reconcileWall("w1", &cur, &prev)
}

func (s *SyncerServiceSuite) TestWallStructuralChangesAreNoOps() {
	s.registry.tracked["p1"] = true
	w := building.Wall{ID: "w1", PerimeterID: "p1", Thickness: 300}

	s.service.reconcileWall("w1", &w, nil)
	s.service.reconcileWall("w1", nil, &w)
}

// =============================================================================
// Constraint Rule Tests
// =============================================================================

func (s *SyncerServiceSuite) TestConstraintAddOnTrackedGeometry() {
	s.registry.tracked["p1"] = true
	c := building.HorizontalWall{ID: "k1", Wall: "w1"}
	s.mockModel.EXPECT().Wall(building.WallID("w1")).Return(building.Wall{ID: "w1", PerimeterID: "p1"}, nil)
	s.mockSolver.EXPECT().AddBuildingConstraint(c).Return(nil).Times(1)

	s.service.reconcileConstraint("k1", c, nil)
}

func (s *SyncerServiceSuite) TestConstraintOnUntrackedGeometryProducesNoCalls() {
	c := building.WallLength{ID: "k1", Wall: "w1", Distance: 10000}
	wall := building.Wall{ID: "w1", PerimeterID: "p9"}

	s.Run("add", func() {
		s.mockModel.EXPECT().Wall(building.WallID("w1")).Return(wall, nil)
		s.service.reconcileConstraint("k1", c, nil)
	})

	s.Run("update", func() {
		changed := building.WallLength{ID: "k1", Wall: "w1", Distance: 12000}
		s.mockModel.EXPECT().Wall(building.WallID("w1")).Return(wall, nil).Times(2)
		s.service.reconcileConstraint("k1", changed, c)
	})

	s.Run("removal", func() {
		s.mockModel.EXPECT().Wall(building.WallID("w1")).Return(wall, nil)
		s.service.reconcileConstraint("k1", nil, c)
	})

	s.Empty(s.warnings())
}

func (s *SyncerServiceSuite) TestConstraintDanglingReferencesAreSilent() {
	c := building.FixedCorner{ID: "k1", Corner: "c9"}
	s.mockModel.EXPECT().Corner(building.CornerID("c9")).
		Return(building.Corner{}, fmt.Errorf("corner c9: %w", sentinel.ErrNotFound))

	s.service.reconcileConstraint("k1", c, nil)

	s.Empty(s.warnings())
}

func (s *SyncerServiceSuite) TestConstraintUpdateRemovesThenAdds() {
	s.registry.tracked["p1"] = true
	wall := building.Wall{ID: "w1", PerimeterID: "p1"}
	prev := building.WallLength{ID: "k1", Wall: "w1", Side: building.SideInside, Distance: 10000}
	cur := building.WallLength{ID: "k1", Wall: "w1", Side: building.SideInside, Distance: 12500}
	s.mockModel.EXPECT().Wall(building.WallID("w1")).Return(wall, nil).Times(2)

	gomock.InOrder(
		s.mockSolver.EXPECT().RemoveBuildingConstraint("wallLength:wall=w1").Return(nil).Times(1),
		s.mockSolver.EXPECT().AddBuildingConstraint(cur).Return(nil).Times(1),
	)

	s.service.reconcileConstraint("k1", cur, prev)
}

func (s *SyncerServiceSuite) TestConstraintRemovalUsesPreviousRevisionKey() {
	s.registry.tracked["p1"] = true
	prev := building.ParallelWalls{ID: "k1", WallA: "w1", WallB: "w3"}
	s.mockModel.EXPECT().Wall(building.WallID("w1")).Return(building.Wall{ID: "w1", PerimeterID: "p1"}, nil)
	s.mockSolver.EXPECT().RemoveBuildingConstraint("parallelWalls:wallA=w1:wallB=w3").Return(nil).Times(1)

	s.service.reconcileConstraint("k1", nil, prev)
}

func (s *SyncerServiceSuite) TestConstraintRejectionIsContained() {
	s.registry.tracked["p1"] = true
	c := building.WallEntityRelative{ID: "k1", Wall: "w1", EntityA: "o1", EntityB: "o2", Distance: 600}
	boom := fmt.Errorf("entity o2: %w", sentinel.ErrMissingGeometry)
	s.mockModel.EXPECT().Wall(building.WallID("w1")).Return(building.Wall{ID: "w1", PerimeterID: "p1"}, nil)
	s.mockSolver.EXPECT().AddBuildingConstraint(c).Return(boom)

	s.service.reconcileConstraint("k1", c, nil)

	warnings := s.warnings()
	s.Require().Len(warnings, 1)
	s.Equal("solver call rejected", warnings[0].Message)
	s.Equal("add_building_constraint", attrs.ExtractString(warnings[0].Attrs, "op"))
	s.ErrorIs(attrs.ExtractError(warnings[0].Attrs, "error"), sentinel.ErrMissingGeometry)
}
