package analytics

import (
	"context"

	"encore.app/claims/model"
)

// Business derives read-only reports from an adjudicated claim. Nothing here
// feeds back into coverage or calculation; all outputs are advisory.
type Business interface {
	CategoryBreakdown(ctx context.Context, claim *model.Claim) (map[string]model.CategoryTotals, error)
	DetailedAnalysis(ctx context.Context, claim *model.Claim, policyRules *model.PolicyRules) (*model.DetailedAnalysis, error)
}

type business struct{}

func NewAnalyticsBusiness() Business {
	return &business{}
}
