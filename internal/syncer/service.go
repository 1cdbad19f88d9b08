// Package syncer keeps the solver registry consistent with the building
// model. It subscribes to the model's change feeds and translates each change
// into solver calls through a fixed set of reconciliation rules. The rules
// are stateless: every decision is made from current model and registry
// state, never from remembered history.
package syncer

import (
	"fmt"
	"log/slog"
	"sync"

	"mortar/internal/building"
	"mortar/internal/solver"
	"mortar/internal/syncer/metrics"
	"mortar/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks ModelStore,SolverStore

// ModelStore is the slice of the building model the synchronizer consumes:
// reads plus per-kind change feeds.
type ModelStore interface {
	building.Reader
	building.Subscriptions
}

// SolverStore mirrors the imperative solver boundary (solver.Store), declared
// here so the synchronizer depends only on what it calls.
type SolverStore interface {
	AddPerimeterGeometry(id building.PerimeterID) error
	RemovePerimeterGeometry(id building.PerimeterID) error
	AddBuildingConstraint(c building.Constraint) error
	RemoveBuildingConstraint(key string) error
	UpdatePointPosition(id solver.PointID, pos building.Point) error
	Registry() solver.Registry
}

// Service owns the subscriptions and applies the reconciliation rules. All
// reconciliation runs synchronously on the goroutine mutating the model; the
// service adds no queues and no goroutines of its own.
type Service struct {
	model   ModelStore
	solver  SolverStore
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	started bool
	closed  bool
	unsubs  []building.Unsubscribe
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger used for contained failures and lifecycle
// events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the metrics sink. A nil sink disables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New creates a synchronizer bound to a model and a solver store. It does not
// touch either until Start is called.
func New(model ModelStore, solverStore SolverStore, opts ...Option) (*Service, error) {
	if model == nil {
		return nil, fmt.Errorf("model store is required")
	}
	if solverStore == nil {
		return nil, fmt.Errorf("solver store is required")
	}

	s := &Service{
		model:  model,
		solver: solverStore,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start seeds the solver with every perimeter already in the model, then
// subscribes to the change feeds. Seeding failures are contained per
// perimeter; one bad perimeter never blocks the rest. Start errors when
// called twice or after Close.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("syncer already started: %w", sentinel.ErrInvalidState)
	}
	if s.closed {
		return fmt.Errorf("syncer closed: %w", sentinel.ErrInvalidState)
	}

	perimeters := s.model.Perimeters()
	for _, p := range perimeters {
		s.upsertPerimeter(p.ID)
	}

	s.unsubs = []building.Unsubscribe{
		s.model.SubscribePerimeters(s.reconcilePerimeter),
		s.model.SubscribeCorners(s.reconcileCorner),
		s.model.SubscribeWalls(s.reconcileWall),
		s.model.SubscribeConstraints(s.reconcileConstraint),
	}
	s.started = true

	s.logger.Info("synchronizer started", "perimeters_seeded", len(perimeters))
	return nil
}

// Close drops the subscriptions. Idempotent; the solver keeps whatever state
// it had.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	for _, unsub := range s.unsubs {
		unsub()
	}
	s.unsubs = nil
	s.closed = true

	if s.started {
		s.logger.Info("synchronizer stopped")
	}
	return nil
}

// warnSolver records a contained solver rejection. Reconciliation never
// propagates these; the failed item is skipped and everything else continues.
func (s *Service) warnSolver(op string, err error, attrs ...any) {
	s.metrics.IncrementSolverFailure(op)
	args := append([]any{"op", op, "error", err}, attrs...)
	s.logger.Warn("solver call rejected", args...)
}
