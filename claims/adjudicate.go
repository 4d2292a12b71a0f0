package claims

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/claims/model"
)

type AdjudicateClaimRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	Claim       model.ClaimPayload `json:"claim" validate:"required"`
	PolicyRules *model.PolicyRules `json:"policy_rules,omitempty"`
}

type AdjudicationResponse struct {
	Adjudication model.Adjudication `json:"adjudication"`
}

// Adjudicate runs the full pipeline over a submitted claim: coverage
// determination, reimbursement calculation, and the derived reports.
//
//encore:api public path=/v1/claims/adjudicate method=POST tag:idempotency
func (s *Service) Adjudicate(ctx context.Context, req *AdjudicateClaimRequest) (*AdjudicationResponse, error) {
	claim, err := req.Claim.ToClaim()
	if err != nil {
		rlog.Error("rejected malformed claim payload", "policy", req.Claim.PolicyName, "error", err)
		return nil, err
	}

	adj, err := s.adjudication.Adjudicate(ctx, claim, req.PolicyRules)
	if err != nil {
		rlog.Error("failed to adjudicate claim", "policy", claim.PolicyName, "error", err)
		return nil, err
	}

	rlog.Info("claim adjudicated", "policy", claim.PolicyName, "adjudicationID", adj.Metadata.AdjudicationID, "approvedAmount", adj.Result.ApprovedAmount)
	return &AdjudicationResponse{Adjudication: *adj}, nil
}

// Validate implements validation for AdjudicateClaimRequest using go-playground/validator
func (r *AdjudicateClaimRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if len(r.Claim.BillItems) == 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "claim must contain at least one bill item"}
	}

	return nil
}
