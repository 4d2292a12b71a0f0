package coverage

import (
	"context"

	"encore.app/claims/model"
)

// Business is the coverage determination engine: it classifies each line
// item as covered or rejected from keyword rules, exclusion patterns, and
// policy-derived additions.
type Business interface {
	AnalyzeCoverage(ctx context.Context, claim *model.Claim, policyRules *model.PolicyRules) (*model.Claim, error)
	CoverageSummary(ctx context.Context, claim *model.Claim) (*model.CoverageSummary, error)
}

type business struct{}

// NewCoverageBusiness creates the coverage engine. The engine holds no
// state: the effective rule list is built per call from the defaults plus
// any policy-derived additions.
func NewCoverageBusiness() Business {
	return &business{}
}
