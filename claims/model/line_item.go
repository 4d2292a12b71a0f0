package model

import (
	"fmt"
	"strings"

	"encore.dev/beta/errs"
)

// LineItem is a single billed service from a medical bill together with its
// coverage decision. Items are treated as immutable values once constructed;
// edits go through ItemPatch, which always builds a new item.
type LineItem struct {
	Description     string  `json:"description"`
	Cost            float64 `json:"cost"`
	Quantity        int     `json:"quantity"`
	UnitCost        float64 `json:"unit_cost"`
	IsCovered       bool    `json:"is_covered"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	Date            *string `json:"date,omitempty"`
	Category        string  `json:"category,omitempty"`
}

// NewLineItem validates and normalizes a line item. Quantity defaults to 1
// and UnitCost is derived from Cost/Quantity when not supplied. The
// covered/rejection-reason pairing is a hard invariant: a covered item must
// not carry a rejection reason and a rejected item must carry one.
func NewLineItem(li LineItem) (LineItem, error) {
	if strings.TrimSpace(li.Description) == "" {
		return LineItem{}, &errs.Error{Code: errs.InvalidArgument, Message: "description must be a non-empty string"}
	}
	if li.Cost < 0 {
		return LineItem{}, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("cost must be non-negative, got %v", li.Cost)}
	}
	if li.Quantity == 0 {
		li.Quantity = 1
	}
	if li.Quantity < 1 {
		return LineItem{}, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("quantity must be a positive integer, got %d", li.Quantity)}
	}
	if li.UnitCost < 0 {
		return LineItem{}, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("unit_cost must be non-negative, got %v", li.UnitCost)}
	}
	if li.UnitCost == 0 {
		li.UnitCost = li.Cost / float64(li.Quantity)
	}
	if li.IsCovered && li.RejectionReason != nil {
		return LineItem{}, &errs.Error{Code: errs.InvalidArgument, Message: "covered items must not have a rejection reason"}
	}
	if !li.IsCovered && (li.RejectionReason == nil || strings.TrimSpace(*li.RejectionReason) == "") {
		return LineItem{}, &errs.Error{Code: errs.InvalidArgument, Message: "rejected items must have a rejection reason"}
	}
	return li, nil
}

// Covered builds a covered copy of the item. The original is not modified.
func (li LineItem) Covered() LineItem {
	li.IsCovered = true
	li.RejectionReason = nil
	return li
}

// Rejected builds a rejected copy of the item with the given reason.
// The original is not modified.
func (li LineItem) Rejected(reason string) LineItem {
	li.IsCovered = false
	li.RejectionReason = &reason
	return li
}
