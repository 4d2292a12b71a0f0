package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"encore.app/claims/domain"
	"encore.app/claims/model"
)

// DefaultReviewWindow bounds how long a claim stays open for manual review
// before the current adjudication is locked in automatically.
const DefaultReviewWindow = 72 * time.Hour

// ClaimProcessingParams contains parameters for starting the claim workflow
type ClaimProcessingParams struct {
	ClaimID          string        `json:"claim_id"`
	BillDocumentID   string        `json:"bill_document_id"`
	PolicyDocumentID string        `json:"policy_document_id"`
	ReviewWindow     time.Duration `json:"review_window"`
}

// ClaimProcessing manages the lifecycle of a claim: extract the bill and
// policy documents, adjudicate, then hold the claim open for manual review
// until a finalize signal arrives or the review window elapses. The latest
// adjudication when the review period ends is the workflow result.
func ClaimProcessing(ctx workflow.Context, params ClaimProcessingParams) (*model.Adjudication, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting claim processing workflow", "claimID", params.ClaimID, "billDocumentID", params.BillDocumentID)

	status := domain.ClaimStatusReceived
	err := workflow.SetQueryHandler(ctx, StatusQueryName, func() (domain.ClaimStatus, error) {
		return status, nil
	})
	if err != nil {
		return nil, err
	}

	reviewWindow := params.ReviewWindow
	if reviewWindow <= 0 {
		reviewWindow = DefaultReviewWindow
	}

	status, err = domain.Transition(status, domain.ClaimStatusExtracting)
	if err != nil {
		return nil, err
	}

	var policyRules *model.PolicyRules
	if params.PolicyDocumentID != "" {
		policyRules, err = extractPolicy(ctx, params.PolicyDocumentID)
		if err != nil {
			logger.Error("Failed to extract policy document", "claimID", params.ClaimID, "error", err)
			status, _ = domain.Transition(status, domain.ClaimStatusFailed)
			return nil, err
		}
	}

	payload, err := extractBill(ctx, params.BillDocumentID)
	if err != nil {
		logger.Error("Failed to extract bill document", "claimID", params.ClaimID, "error", err)
		status, _ = domain.Transition(status, domain.ClaimStatusFailed)
		return nil, err
	}

	claim, err := payload.ToClaim()
	if err != nil {
		logger.Error("Extracted bill payload is invalid", "claimID", params.ClaimID, "error", err)
		status, _ = domain.Transition(status, domain.ClaimStatusFailed)
		return nil, err
	}

	status, err = domain.Transition(status, domain.ClaimStatusReview)
	if err != nil {
		return nil, err
	}

	current, err := adjudicateClaim(ctx, claim, policyRules)
	if err != nil {
		logger.Error("Failed to adjudicate claim", "claimID", params.ClaimID, "error", err)
		status, _ = domain.Transition(status, domain.ClaimStatusFailed)
		return nil, err
	}

	logger.Info("Claim adjudicated, entering review period", "claimID", params.ClaimID, "reviewWindow", reviewWindow)

	timer := workflow.NewTimer(ctx, reviewWindow)
	reviewCh := workflow.GetSignalChannel(ctx, ReviewClaimSignalName)
	finalizeCh := workflow.GetSignalChannel(ctx, FinalizeClaimSignalName)

	finalized := false
	for !finalized {
		selector := workflow.NewSelector(ctx)

		selector.AddReceive(reviewCh, func(c workflow.ReceiveChannel, more bool) {
			var signal ReviewClaimSignal
			c.Receive(ctx, &signal)
			logger.Info("Received review signal", "claimID", params.ClaimID, "patches", len(signal.Patches), "reviewedBy", signal.ReviewedBy)

			revised, err := reviseClaim(ctx, current.Claim, signal.Patches, policyRules)
			if err != nil {
				logger.Error("Failed to apply review, keeping previous adjudication", "claimID", params.ClaimID, "error", err)
			} else {
				current = revised
				logger.Info("Successfully revised claim", "claimID", params.ClaimID, "adjudicationID", current.Metadata.AdjudicationID)
			}
		})

		selector.AddReceive(finalizeCh, func(c workflow.ReceiveChannel, more bool) {
			var signal FinalizeClaimSignal
			c.Receive(ctx, &signal)
			logger.Info("Received finalize signal", "claimID", params.ClaimID, "reason", signal.Reason, "finalizedBy", signal.FinalizedBy)
			finalized = true
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			logger.Info("Review window elapsed, finalizing claim", "claimID", params.ClaimID)
			finalized = true
		})

		selector.Select(ctx)
	}

	status, err = domain.Transition(status, domain.ClaimStatusAdjudicated)
	if err != nil {
		return nil, err
	}

	logger.Info("Claim processing workflow completed", "claimID", params.ClaimID, "adjudicationID", current.Metadata.AdjudicationID)
	return current, nil
}

// extractPolicy executes the ExtractPolicy activity
func extractPolicy(ctx workflow.Context, documentID string) (*model.PolicyRules, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var rules *model.PolicyRules
	err := workflow.ExecuteActivity(activityCtx, ExtractPolicyActivity, documentID).Get(ctx, &rules)
	return rules, err
}

// extractBill executes the ExtractBill activity
func extractBill(ctx workflow.Context, documentID string) (*model.ClaimPayload, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    15 * time.Second,
			MaximumAttempts:    6,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var payload *model.ClaimPayload
	err := workflow.ExecuteActivity(activityCtx, ExtractBillActivity, documentID).Get(ctx, &payload)
	return payload, err
}

// adjudicateClaim executes the AdjudicateClaim activity
func adjudicateClaim(ctx workflow.Context, claim *model.Claim, policyRules *model.PolicyRules) (*model.Adjudication, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var adj *model.Adjudication
	err := workflow.ExecuteActivity(activityCtx, AdjudicateClaimActivity, AdjudicateParams{
		Claim:       *claim,
		PolicyRules: policyRules,
	}).Get(ctx, &adj)
	return adj, err
}

// reviseClaim executes the ReviseClaim activity
func reviseClaim(ctx workflow.Context, claim model.Claim, patches []model.ItemPatch, policyRules *model.PolicyRules) (*model.Adjudication, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	var adj *model.Adjudication
	err := workflow.ExecuteActivity(activityCtx, ReviseClaimActivity, ReviseParams{
		Claim:       claim,
		Patches:     patches,
		PolicyRules: policyRules,
	}).Get(ctx, &adj)
	return adj, err
}
