package calculation

import "encore.app/claims/model"

// CoveredItems returns the covered items of a claim in presentation order.
func (b *business) CoveredItems(claim *model.Claim) []model.LineItem {
	return filterItems(claim, true)
}

// RejectedItems returns the rejected items of a claim in presentation order.
func (b *business) RejectedItems(claim *model.Claim) []model.LineItem {
	return filterItems(claim, false)
}

func filterItems(claim *model.Claim, covered bool) []model.LineItem {
	items := make([]model.LineItem, 0, len(claim.BillItems))
	for _, item := range claim.BillItems {
		if item.IsCovered == covered {
			items = append(items, item)
		}
	}
	return items
}
