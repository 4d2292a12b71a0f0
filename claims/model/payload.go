package model

import (
	"fmt"

	"encore.dev/beta/errs"
)

// ClaimPayload is the raw claim-shaped record produced by the upstream
// document-extraction collaborator. Optional fields are defensively
// defaulted; structurally invalid items fail construction.
type ClaimPayload struct {
	PolicyName      string            `json:"policy_name"`
	CopayPercentage *float64          `json:"copay_percentage,omitempty"`
	BillItems       []LineItemPayload `json:"bill_items"`
	ClientName      *string           `json:"client_name,omitempty"`
	PolicyNumber    *string           `json:"policy_number,omitempty"`
	ClientAddress   *string           `json:"client_address,omitempty"`
}

// LineItemPayload is one item-shaped record from the extraction output.
// Description and Cost are required; everything else is optional.
type LineItemPayload struct {
	Description     string   `json:"description"`
	Cost            *float64 `json:"cost"`
	IsCovered       *bool    `json:"is_covered,omitempty"`
	RejectionReason *string  `json:"rejection_reason,omitempty"`
	Date            *string  `json:"date,omitempty"`
	Quantity        *int     `json:"quantity,omitempty"`
	UnitCost        *float64 `json:"unit_cost,omitempty"`
	Category        string   `json:"category,omitempty"`
}

// pendingDeterminationReason marks items that arrived without a coverage
// decision. The coverage engine replaces it with a definitive decision.
const pendingDeterminationReason = "Coverage not yet determined"

// ToClaim converts the raw payload into a validated Claim. Missing copay
// defaults to 0 (full reimbursement of the covered amount); items without a
// coverage decision are carried as rejected pending determination so the
// item invariant holds end to end.
func (p *ClaimPayload) ToClaim() (*Claim, error) {
	copay := 0.0
	if p.CopayPercentage != nil {
		copay = *p.CopayPercentage
	}
	items := make([]LineItem, 0, len(p.BillItems))
	for i, ip := range p.BillItems {
		if ip.Cost == nil {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("bill_items[%d]: missing cost", i)}
		}
		item := LineItem{
			Description: ip.Description,
			Cost:        *ip.Cost,
			Date:        ip.Date,
			Category:    ip.Category,
		}
		if ip.Quantity != nil {
			item.Quantity = *ip.Quantity
		}
		if ip.UnitCost != nil {
			item.UnitCost = *ip.UnitCost
		}
		if ip.IsCovered != nil {
			item.IsCovered = *ip.IsCovered
			item.RejectionReason = ip.RejectionReason
		} else {
			reason := pendingDeterminationReason
			item.IsCovered = false
			item.RejectionReason = &reason
		}
		items = append(items, item)
	}
	return NewClaim(Claim{
		PolicyName:      p.PolicyName,
		CopayPercentage: copay,
		BillItems:       items,
		ClientName:      p.ClientName,
		PolicyNumber:    p.PolicyNumber,
		ClientAddress:   p.ClientAddress,
	})
}
