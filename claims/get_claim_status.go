package claims

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/claims/domain"
	"encore.app/claims/workflow"
)

type ClaimStatusResponse struct {
	ClaimID string             `json:"claim_id"`
	Status  domain.ClaimStatus `json:"status"`
}

// GetClaimStatus reports where a claim is in its processing lifecycle.
//
//encore:api public path=/v1/claims/:id/status method=GET
func (s *Service) GetClaimStatus(ctx context.Context, id string) (*ClaimStatusResponse, error) {
	if id == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid claim ID"}
	}

	encoded, err := s.temporal.QueryWorkflow(ctx, id, "", workflow.StatusQueryName)
	if err != nil {
		rlog.Error("failed to query claim status", "claim_id", id, "error", err)
		return nil, &errs.Error{Code: errs.NotFound, Message: "claim not found"}
	}

	var status domain.ClaimStatus
	if err := encoded.Get(&status); err != nil {
		rlog.Error("failed to decode claim status", "claim_id", id, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to decode claim status"}
	}

	return &ClaimStatusResponse{ClaimID: id, Status: status}, nil
}
