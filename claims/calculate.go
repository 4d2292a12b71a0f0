package claims

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/claims/model"
)

type CalculateRequest struct {
	Claim model.ClaimPayload `json:"claim" validate:"required"`
}

type CalculateResponse struct {
	Result model.CalculationResult `json:"result"`
}

// Calculate computes the financial totals for a claim whose coverage
// decisions are already present. Items submitted without a decision count
// as rejected pending determination.
//
//encore:api public path=/v1/claims/calculate method=POST
func (s *Service) Calculate(ctx context.Context, req *CalculateRequest) (*CalculateResponse, error) {
	claim, err := req.Claim.ToClaim()
	if err != nil {
		rlog.Error("rejected malformed claim payload", "policy", req.Claim.PolicyName, "error", err)
		return nil, err
	}

	result, err := s.calculation.CalculateReimbursement(ctx, claim)
	if err != nil {
		rlog.Error("failed to calculate reimbursement", "policy", claim.PolicyName, "error", err)
		return nil, err
	}

	return &CalculateResponse{Result: *result}, nil
}

// Validate implements validation for CalculateRequest
func (r *CalculateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if len(r.Claim.BillItems) == 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "claim must contain at least one bill item"}
	}

	return nil
}
