package claims

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/claims/model"
)

type AnalyzeCoverageRequest struct {
	Claim       model.ClaimPayload `json:"claim" validate:"required"`
	PolicyRules *model.PolicyRules `json:"policy_rules,omitempty"`
}

type AnalyzeCoverageResponse struct {
	Claim   model.Claim           `json:"claim"`
	Summary model.CoverageSummary `json:"summary"`
}

// AnalyzeCoverage runs coverage determination alone, without the financial
// calculation, and returns the decided claim with its summary.
//
//encore:api public path=/v1/claims/coverage method=POST
func (s *Service) AnalyzeCoverage(ctx context.Context, req *AnalyzeCoverageRequest) (*AnalyzeCoverageResponse, error) {
	claim, err := req.Claim.ToClaim()
	if err != nil {
		rlog.Error("rejected malformed claim payload", "policy", req.Claim.PolicyName, "error", err)
		return nil, err
	}

	analyzed, err := s.coverage.AnalyzeCoverage(ctx, claim, req.PolicyRules)
	if err != nil {
		rlog.Error("failed to analyze coverage", "policy", claim.PolicyName, "error", err)
		return nil, err
	}

	summary, err := s.coverage.CoverageSummary(ctx, analyzed)
	if err != nil {
		rlog.Error("failed to summarize coverage", "policy", claim.PolicyName, "error", err)
		return nil, err
	}

	return &AnalyzeCoverageResponse{
		Claim:   *analyzed,
		Summary: *summary,
	}, nil
}

// Validate implements validation for AnalyzeCoverageRequest
func (r *AnalyzeCoverageRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if len(r.Claim.BillItems) == 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "claim must contain at least one bill item"}
	}

	return nil
}
