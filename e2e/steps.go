package e2e

import (
	"github.com/cucumber/godog"

	"mortar/e2e/steps/common"
	"mortar/e2e/steps/registry"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (health check, generic requests, assertions)
	common.RegisterSteps(ctx, tc)

	// Register registry-specific steps
	registry.RegisterSteps(ctx, tc)
}
