package adjudication

import (
	"context"

	"encore.app/claims/business/analytics"
	"encore.app/claims/business/calculation"
	"encore.app/claims/business/coverage"
	"encore.app/claims/model"
)

// Business runs a full adjudication: coverage determination, reimbursement
// calculation, and the derived reports, bundled into one envelope.
// Readjudicate rebuilds the envelope without re-running coverage analysis,
// so reviewer coverage decisions on the claim stand.
type Business interface {
	Adjudicate(ctx context.Context, claim *model.Claim, policyRules *model.PolicyRules) (*model.Adjudication, error)
	Readjudicate(ctx context.Context, claim *model.Claim, policyRules *model.PolicyRules) (*model.Adjudication, error)
}

type business struct {
	coverage    coverage.Business
	calculation calculation.Business
	analytics   analytics.Business
}

func NewAdjudicationBusiness(cov coverage.Business, calc calculation.Business, an analytics.Business) Business {
	return &business{
		coverage:    cov,
		calculation: calc,
		analytics:   an,
	}
}
