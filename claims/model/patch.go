package model

import (
	"fmt"

	"encore.dev/beta/errs"
)

// ItemPatch describes an edit to a single line item during manual review.
// Applying a patch never mutates the original claim: it produces a fresh
// item and a fresh claim, which is then recalculated from scratch.
type ItemPatch struct {
	Index           int      `json:"index"`
	Description     *string  `json:"description,omitempty"`
	Cost            *float64 `json:"cost,omitempty"`
	Quantity        *int     `json:"quantity,omitempty"`
	IsCovered       *bool    `json:"is_covered,omitempty"`
	RejectionReason *string  `json:"rejection_reason,omitempty"`
}

// ApplyPatches builds a new claim from the receiver with the patches
// applied in order. Each patched item is re-validated, so a patch that
// breaks the covered/rejection-reason pairing fails here.
func (c *Claim) ApplyPatches(patches []ItemPatch) (*Claim, error) {
	items := make([]LineItem, len(c.BillItems))
	copy(items, c.BillItems)

	for _, p := range patches {
		if p.Index < 0 || p.Index >= len(items) {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("patch index %d out of range (claim has %d items)", p.Index, len(items))}
		}
		item := items[p.Index]
		if p.Description != nil {
			item.Description = *p.Description
		}
		if p.Cost != nil {
			item.Cost = *p.Cost
			// Derived unit cost is stale once cost changes.
			item.UnitCost = 0
		}
		if p.Quantity != nil {
			item.Quantity = *p.Quantity
			item.UnitCost = 0
		}
		if p.IsCovered != nil {
			item.IsCovered = *p.IsCovered
			if *p.IsCovered {
				item.RejectionReason = nil
			}
		}
		if p.RejectionReason != nil {
			item.RejectionReason = p.RejectionReason
		}
		items[p.Index] = item
	}

	return c.WithItems(items)
}
