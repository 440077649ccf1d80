package e2e

import (
	"github.com/cucumber/godog"

	"contacts/e2e/steps/common"
	"contacts/e2e/steps/contacts"
)

// RegisterSteps registers all step definitions.
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	common.RegisterSteps(ctx, tc)
	contacts.RegisterSteps(ctx, tc)
}
