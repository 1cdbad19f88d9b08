package registry

import (
	"context"
	"fmt"
	"net/http"
	"slices"

	"github.com/cucumber/godog"
)

// TestContext interface defines the methods needed from the main test context
type TestContext interface {
	GET(path string) error
	Status() int
	DecodeResponse(v interface{}) error
}

// perimeterView mirrors the JSON shape of a registry perimeter. The suite is
// a black-box client, so it carries its own view types instead of importing
// server packages.
type perimeterView struct {
	ID string `json:"id"`
	Points []struct {
		ID string  `json:"id"`
		X  float64 `json:"x"`
		Y  float64 `json:"y"`
	} `json:"points"`
	Lines []struct {
		ID    string `json:"id"`
		Start string `json:"start"`
		End   string `json:"end"`
	} `json:"lines"`
	Constraints []string `json:"constraints"`
}

type snapshotView struct {
	Perimeters []perimeterView `json:"perimeters"`
}

// RegisterSteps registers registry-related step definitions
func RegisterSteps(ctx *godog.ScenarioContext, tc TestContext) {
	steps := &registrySteps{tc: tc}

	ctx.Step(`^the registry should track (\d+) perimeters?$`, steps.registryShouldTrackN)
	ctx.Step(`^perimeter "([^"]*)" should have (\d+) points$`, steps.perimeterShouldHavePoints)
	ctx.Step(`^perimeter "([^"]*)" should have (\d+) lines$`, steps.perimeterShouldHaveLines)
	ctx.Step(`^perimeter "([^"]*)" should carry constraint "([^"]*)"$`, steps.perimeterShouldCarryConstraint)
}

type registrySteps struct {
	tc TestContext
}

func (s *registrySteps) fetchPerimeter(id string) (*perimeterView, error) {
	if err := s.tc.GET("/v1/registry/" + id); err != nil {
		return nil, err
	}
	if s.tc.Status() != http.StatusOK {
		return nil, fmt.Errorf("perimeter %s returned status %d", id, s.tc.Status())
	}
	var p perimeterView
	if err := s.tc.DecodeResponse(&p); err != nil {
		return nil, fmt.Errorf("decode perimeter %s: %w", id, err)
	}
	return &p, nil
}

func (s *registrySteps) registryShouldTrackN(ctx context.Context, expected int) error {
	if err := s.tc.GET("/v1/registry"); err != nil {
		return err
	}
	if s.tc.Status() != http.StatusOK {
		return fmt.Errorf("registry dump returned status %d", s.tc.Status())
	}
	var snap snapshotView
	if err := s.tc.DecodeResponse(&snap); err != nil {
		return fmt.Errorf("decode registry dump: %w", err)
	}
	if len(snap.Perimeters) != expected {
		return fmt.Errorf("expected %d tracked perimeters, got %d", expected, len(snap.Perimeters))
	}
	return nil
}

func (s *registrySteps) perimeterShouldHavePoints(ctx context.Context, id string, expected int) error {
	p, err := s.fetchPerimeter(id)
	if err != nil {
		return err
	}
	if len(p.Points) != expected {
		return fmt.Errorf("expected %d points on perimeter %s, got %d", expected, id, len(p.Points))
	}
	return nil
}

func (s *registrySteps) perimeterShouldHaveLines(ctx context.Context, id string, expected int) error {
	p, err := s.fetchPerimeter(id)
	if err != nil {
		return err
	}
	if len(p.Lines) != expected {
		return fmt.Errorf("expected %d lines on perimeter %s, got %d", expected, id, len(p.Lines))
	}
	return nil
}

func (s *registrySteps) perimeterShouldCarryConstraint(ctx context.Context, id, key string) error {
	p, err := s.fetchPerimeter(id)
	if err != nil {
		return err
	}
	if !slices.Contains(p.Constraints, key) {
		return fmt.Errorf("perimeter %s does not carry constraint %q, has %v", id, key, p.Constraints)
	}
	return nil
}
