package coverage

import (
	"context"

	"encore.app/claims/model"
)

// unknownReasonBucket collects rejected items whose reason is missing.
const unknownReasonBucket = "Unknown reason"

// CoverageSummary tallies coverage decisions across the claim: item counts
// and amounts per side of the split, the coverage rate, a histogram of
// rejection reasons, and per-category coverage rates.
func (b *business) CoverageSummary(ctx context.Context, claim *model.Claim) (*model.CoverageSummary, error) {
	summary := &model.CoverageSummary{
		TotalItems:       len(claim.BillItems),
		RejectionReasons: make(map[string]int),
	}

	type categoryCount struct{ total, covered int }
	perCategory := make(map[string]*categoryCount)

	for _, item := range claim.BillItems {
		summary.TotalAmount += item.Cost

		if item.Category != "" {
			cc := perCategory[item.Category]
			if cc == nil {
				cc = &categoryCount{}
				perCategory[item.Category] = cc
			}
			cc.total++
			if item.IsCovered {
				cc.covered++
			}
		}

		if item.IsCovered {
			summary.CoveredItems++
			summary.CoveredAmount += item.Cost
			continue
		}
		summary.RejectedItems++
		summary.RejectedAmount += item.Cost
		reason := unknownReasonBucket
		if item.RejectionReason != nil && *item.RejectionReason != "" {
			reason = *item.RejectionReason
		}
		summary.RejectionReasons[reason]++
	}

	if summary.TotalItems > 0 {
		summary.CoverageRate = float64(summary.CoveredItems) / float64(summary.TotalItems) * 100
	}

	if len(perCategory) > 0 {
		summary.CategoryCoverage = make(map[string]float64, len(perCategory))
		for category, cc := range perCategory {
			summary.CategoryCoverage[category] = float64(cc.covered) / float64(cc.total) * 100
		}
	}

	return summary, nil
}
