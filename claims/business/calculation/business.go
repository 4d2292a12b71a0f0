package calculation

import (
	"context"

	"encore.app/claims/model"
)

// Business is the deterministic calculation engine: it turns a
// coverage-decided claim into verified financial totals. All operations are
// pure; running one twice on the same claim yields identical results.
type Business interface {
	CalculateReimbursement(ctx context.Context, claim *model.Claim) (*model.CalculationResult, error)
	CoveredItems(claim *model.Claim) []model.LineItem
	RejectedItems(claim *model.Claim) []model.LineItem
}

type business struct{}

func NewCalculationBusiness() Business {
	return &business{}
}
