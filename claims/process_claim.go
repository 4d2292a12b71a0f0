package claims

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/claims/workflow"
)

type ProcessClaimRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	BillDocumentID   string `json:"bill_document_id" validate:"required"`
	PolicyDocumentID string `json:"policy_document_id"`
	// ReviewWindowHours bounds the manual review period. Zero means the
	// default window.
	ReviewWindowHours int `json:"review_window_hours" validate:"gte=0,lte=720"`
}

type ProcessClaimResponse struct {
	ClaimID string `json:"claim_id"`
	Status  string `json:"status"`
}

// ProcessClaim starts the asynchronous processing pipeline for an uploaded
// bill document: extraction, adjudication, then a manual review window.
// The claim ID doubles as the workflow handle for status, review, and
// finalize calls.
//
//encore:api public path=/v1/claims/process method=POST tag:idempotency
func (s *Service) ProcessClaim(ctx context.Context, req *ProcessClaimRequest) (*ProcessClaimResponse, error) {
	claimID := fmt.Sprintf("claim-%s", req.IdempotencyKey)

	options := client.StartWorkflowOptions{
		ID:        claimID,
		TaskQueue: taskQueue,
	}

	params := workflow.ClaimProcessingParams{
		ClaimID:          claimID,
		BillDocumentID:   req.BillDocumentID,
		PolicyDocumentID: req.PolicyDocumentID,
		ReviewWindow:     time.Duration(req.ReviewWindowHours) * time.Hour,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.ClaimProcessing, params)
	if err != nil {
		// Distinguish AlreadyStarted (benign) vs real failure
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("claim processing already started", "claim_id", claimID)
			return &ProcessClaimResponse{ClaimID: claimID, Status: "processing"}, nil
		}
		rlog.Error("failed to start claim processing", "claim_id", claimID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to start claim processing"}
	}

	rlog.Info("claim processing started", "claim_id", claimID, "bill_document_id", req.BillDocumentID)
	return &ProcessClaimResponse{ClaimID: claimID, Status: "processing"}, nil
}

// Validate implements validation for ProcessClaimRequest
func (r *ProcessClaimRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
