package model

import (
	"fmt"

	"encore.dev/beta/errs"
)

// Claim is the unit of adjudication: a policy copay rate plus the ordered
// list of billed line items. Item order is presentation order only.
type Claim struct {
	PolicyName      string     `json:"policy_name,omitempty"`
	CopayPercentage float64    `json:"copay_percentage"`
	BillItems       []LineItem `json:"bill_items"`
	ClientName      *string    `json:"client_name,omitempty"`
	PolicyNumber    *string    `json:"policy_number,omitempty"`
	ClientAddress   *string    `json:"client_address,omitempty"`
}

// NewClaim validates a claim and every item in it. Item errors carry the
// offending index so callers can surface a precise message.
func NewClaim(c Claim) (*Claim, error) {
	if c.CopayPercentage < 0 || c.CopayPercentage > 100 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("copay_percentage must be between 0 and 100, got %v", c.CopayPercentage)}
	}
	if len(c.BillItems) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "bill_items cannot be empty"}
	}
	items := make([]LineItem, len(c.BillItems))
	for i, item := range c.BillItems {
		validated, err := NewLineItem(item)
		if err != nil {
			msg := err.Error()
			if e, ok := err.(*errs.Error); ok {
				msg = e.Message
			}
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("bill_items[%d]: %s", i, msg)}
		}
		items[i] = validated
	}
	c.BillItems = items
	return &c, nil
}

// WithItems builds a new claim carrying the given items and the same policy
// metadata. The receiver is not modified.
func (c *Claim) WithItems(items []LineItem) (*Claim, error) {
	next := *c
	next.BillItems = items
	return NewClaim(next)
}

// TotalBilled sums the cost of every item.
func (c *Claim) TotalBilled() float64 {
	var total float64
	for _, item := range c.BillItems {
		total += item.Cost
	}
	return total
}
