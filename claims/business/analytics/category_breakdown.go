package analytics

import (
	"context"

	"encore.app/claims/model"
)

// categoryUncategorized buckets items that never went through the coverage
// engine's categorizer.
const categoryUncategorized = "other"

// CategoryBreakdown slices the claim's totals per service category: billed,
// covered and rejected amounts, item count, average cost, and the share of
// covered items.
func (b *business) CategoryBreakdown(ctx context.Context, claim *model.Claim) (map[string]model.CategoryTotals, error) {
	breakdown := make(map[string]model.CategoryTotals)
	coveredCounts := make(map[string]int)

	for _, item := range claim.BillItems {
		category := item.Category
		if category == "" {
			category = categoryUncategorized
		}
		totals := breakdown[category]
		totals.Billed += item.Cost
		totals.Count++
		if item.IsCovered {
			totals.Covered += item.Cost
			coveredCounts[category]++
		} else {
			totals.Rejected += item.Cost
		}
		breakdown[category] = totals
	}

	for category, totals := range breakdown {
		totals.AverageCost = totals.Billed / float64(totals.Count)
		totals.CoverageRate = float64(coveredCounts[category]) / float64(totals.Count) * 100
		breakdown[category] = totals
	}

	return breakdown, nil
}
