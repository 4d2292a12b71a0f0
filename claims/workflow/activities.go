package workflow

import (
	"context"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"encore.dev/beta/errs"

	"encore.app/claims/business/adjudication"
	"encore.app/claims/extraction"
	"encore.app/claims/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	Extraction   extraction.Client
	Adjudication adjudication.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(extractionClient extraction.Client, adjudicationBusiness adjudication.Business) {
	activityDeps = &ActivityDependencies{
		Extraction:   extractionClient,
		Adjudication: adjudicationBusiness,
	}
}

// AdjudicateParams is the input to AdjudicateClaimActivity.
type AdjudicateParams struct {
	Claim       model.Claim        `json:"claim"`
	PolicyRules *model.PolicyRules `json:"policy_rules,omitempty"`
}

// ReviseParams is the input to ReviseClaimActivity.
type ReviseParams struct {
	Claim       model.Claim        `json:"claim"`
	Patches     []model.ItemPatch  `json:"patches"`
	PolicyRules *model.PolicyRules `json:"policy_rules,omitempty"`
}

// ExtractPolicyActivity fetches the structured policy rules for an uploaded
// policy document.
func ExtractPolicyActivity(ctx context.Context, documentID string) (*model.PolicyRules, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing extract policy activity", "documentID", documentID)

	if activityDeps == nil || activityDeps.Extraction == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	rules, err := activityDeps.Extraction.ExtractPolicy(ctx, documentID)
	if err != nil {
		logger.Error("Failed to extract policy", "documentID", documentID, "error", err)
		return nil, err
	}

	logger.Info("Successfully extracted policy", "documentID", documentID)
	return rules, nil
}

// ExtractBillActivity fetches the structured bill payload for an uploaded
// bill document.
func ExtractBillActivity(ctx context.Context, documentID string) (*model.ClaimPayload, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing extract bill activity", "documentID", documentID)

	if activityDeps == nil || activityDeps.Extraction == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	payload, err := activityDeps.Extraction.ExtractBill(ctx, documentID)
	if err != nil {
		logger.Error("Failed to extract bill", "documentID", documentID, "error", err)
		return nil, err
	}

	logger.Info("Successfully extracted bill", "documentID", documentID)
	return payload, nil
}

// AdjudicateClaimActivity runs the full adjudication pipeline over a claim.
func AdjudicateClaimActivity(ctx context.Context, params AdjudicateParams) (*model.Adjudication, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing adjudicate claim activity", "policy", params.Claim.PolicyName, "items", len(params.Claim.BillItems))

	if activityDeps == nil || activityDeps.Adjudication == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	adj, err := activityDeps.Adjudication.Adjudicate(ctx, &params.Claim, params.PolicyRules)
	if err != nil {
		logger.Error("Failed to adjudicate claim", "policy", params.Claim.PolicyName, "error", err)
		return nil, asActivityError(err)
	}

	logger.Info("Successfully adjudicated claim", "policy", params.Claim.PolicyName, "adjudicationID", adj.Metadata.AdjudicationID)
	return adj, nil
}

// ReviseClaimActivity applies reviewer patches to a claim and rebuilds the
// adjudication from the patched items. Coverage analysis is not re-run, so
// reviewer coverage decisions stand.
func ReviseClaimActivity(ctx context.Context, params ReviseParams) (*model.Adjudication, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing revise claim activity", "policy", params.Claim.PolicyName, "patches", len(params.Patches))

	if activityDeps == nil || activityDeps.Adjudication == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	patched, err := params.Claim.ApplyPatches(params.Patches)
	if err != nil {
		logger.Error("Failed to apply review patches", "policy", params.Claim.PolicyName, "error", err)
		return nil, asActivityError(err)
	}

	adj, err := activityDeps.Adjudication.Readjudicate(ctx, patched, params.PolicyRules)
	if err != nil {
		logger.Error("Failed to re-adjudicate claim after review", "policy", params.Claim.PolicyName, "error", err)
		return nil, asActivityError(err)
	}

	logger.Info("Successfully revised claim", "policy", params.Claim.PolicyName, "adjudicationID", adj.Metadata.AdjudicationID)
	return adj, nil
}

// asActivityError marks validation failures as non-retryable: retrying the
// same malformed claim can never succeed.
func asActivityError(err error) error {
	if e, ok := err.(*errs.Error); ok && e.Code == errs.InvalidArgument {
		return temporal.NewNonRetryableApplicationError(e.Message, "CLAIM_VALIDATION_FAILED", err)
	}
	return err
}
