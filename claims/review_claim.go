package claims

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/claims/model"
	"encore.app/claims/workflow"
)

type ReviewClaimRequest struct {
	Patches    []model.ItemPatch `json:"patches" validate:"required,min=1,dive"`
	ReviewedBy string            `json:"reviewed_by" validate:"required,max=255"`
}

type ReviewClaimResponse struct {
	ClaimID  string `json:"claim_id"`
	Accepted bool   `json:"accepted"`
}

// ReviewClaim submits reviewer edits for a claim in its review window. The
// signal is delivered asynchronously; the revised adjudication shows up on
// the workflow result once applied.
//
//encore:api public path=/v1/claims/:id/review method=POST
func (s *Service) ReviewClaim(ctx context.Context, id string, req *ReviewClaimRequest) (*ReviewClaimResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid claim ID"}
	}

	signal := workflow.ReviewClaimSignal{
		Patches:    req.Patches,
		ReviewedBy: req.ReviewedBy,
	}

	runAsync("review-claim-signal", id, func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, id, "", workflow.ReviewClaimSignalName, signal)
	})

	rlog.Info("review submitted", "claim_id", id, "patches", len(req.Patches), "reviewed_by", req.ReviewedBy)
	return &ReviewClaimResponse{ClaimID: id, Accepted: true}, nil
}

// Validate implements validation for ReviewClaimRequest
func (r *ReviewClaimRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	for _, p := range r.Patches {
		if p.Index < 0 {
			return &errs.Error{Code: errs.InvalidArgument, Message: "patch index must be non-negative"}
		}
	}

	return nil
}
