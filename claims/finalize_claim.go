package claims

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/claims/workflow"
)

type FinalizeClaimRequest struct {
	Reason      string `json:"reason" validate:"required,max=255"`
	FinalizedBy string `json:"finalized_by" validate:"required,max=255"`
}

type FinalizeClaimResponse struct {
	ClaimID  string `json:"claim_id"`
	Accepted bool   `json:"accepted"`
}

// FinalizeClaim ends the review period early and locks in the current
// adjudication.
//
//encore:api public path=/v1/claims/:id/finalize method=POST
func (s *Service) FinalizeClaim(ctx context.Context, id string, req *FinalizeClaimRequest) (*FinalizeClaimResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid claim ID"}
	}

	signal := workflow.FinalizeClaimSignal{
		Reason:      req.Reason,
		FinalizedBy: req.FinalizedBy,
	}

	runAsync("finalize-claim-signal", id, func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, id, "", workflow.FinalizeClaimSignalName, signal)
	})

	rlog.Info("finalize requested", "claim_id", id, "reason", req.Reason, "finalized_by", req.FinalizedBy)
	return &FinalizeClaimResponse{ClaimID: id, Accepted: true}, nil
}

// Validate implements validation for FinalizeClaimRequest
func (r *FinalizeClaimRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
