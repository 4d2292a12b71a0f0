package workflow

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"
	"go.uber.org/mock/gomock"

	"encore.app/claims/business/adjudication"
	"encore.app/claims/business/analytics"
	"encore.app/claims/business/calculation"
	"encore.app/claims/business/coverage"
	adjmock "encore.app/claims/mocks/business/adjudication_business"
	extmock "encore.app/claims/mocks/extraction_client"
	"encore.app/claims/model"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool { return &b }

func newTestEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *extmock.MockClient, *adjmock.MockBusiness) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockExtraction := extmock.NewMockClient(ctrl)
	mockAdjudication := adjmock.NewMockBusiness(ctrl)
	SetActivityDependencies(mockExtraction, mockAdjudication)
	t.Cleanup(func() { SetActivityDependencies(nil, nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(ExtractPolicyActivity)
	env.RegisterActivity(ExtractBillActivity)
	env.RegisterActivity(AdjudicateClaimActivity)
	env.RegisterActivity(ReviseClaimActivity)
	return env, mockExtraction, mockAdjudication
}

func testPayload() *model.ClaimPayload {
	return &model.ClaimPayload{
		PolicyName:      "Gold Plan",
		CopayPercentage: floatPtr(10),
		BillItems: []model.LineItemPayload{
			{Description: "Consultation", Cost: floatPtr(500), IsCovered: boolPtr(true)},
		},
	}
}

func testAdjudication(id string) *model.Adjudication {
	return &model.Adjudication{
		Metadata: model.AdjudicationMetadata{AdjudicationID: id, ProcessedAt: time.Now().UTC()},
		Claim: model.Claim{
			PolicyName:      "Gold Plan",
			CopayPercentage: 10,
			BillItems: []model.LineItem{
				{Description: "Consultation", Cost: 500, Quantity: 1, UnitCost: 500, IsCovered: true, Category: "consultation"},
			},
		},
		Result: model.CalculationResult{
			TotalBilled:           500,
			TotalCovered:          500,
			CopayPercentage:       10,
			PatientResponsibility: 50,
			ApprovedAmount:        450,
		},
	}
}

func TestClaimProcessing_AutoFinalizeAfterReviewWindow(t *testing.T) {
	env, mockExtraction, mockAdjudication := newTestEnv(t)

	rules := &model.PolicyRules{CoveredServices: []string{"physiotherapy"}}
	mockExtraction.EXPECT().ExtractPolicy(gomock.Any(), "policy-doc-1").Return(rules, nil)
	mockExtraction.EXPECT().ExtractBill(gomock.Any(), "bill-doc-1").Return(testPayload(), nil)
	mockAdjudication.EXPECT().Adjudicate(gomock.Any(), gomock.Any(), gomock.Any()).Return(testAdjudication("adj-1"), nil)

	params := ClaimProcessingParams{
		ClaimID:          "claim-1",
		BillDocumentID:   "bill-doc-1",
		PolicyDocumentID: "policy-doc-1",
		ReviewWindow:     time.Hour,
	}
	env.ExecuteWorkflow(ClaimProcessing, params)

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var adj model.Adjudication
	require.NoError(t, env.GetWorkflowResult(&adj))
	assert.Equal(t, "adj-1", adj.Metadata.AdjudicationID)
	assert.InDelta(t, 450, adj.Result.ApprovedAmount, 0.001)
}

func TestClaimProcessing_SkipsPolicyExtractionWithoutDocument(t *testing.T) {
	env, mockExtraction, mockAdjudication := newTestEnv(t)

	mockExtraction.EXPECT().ExtractBill(gomock.Any(), "bill-doc-1").Return(testPayload(), nil)
	mockAdjudication.EXPECT().Adjudicate(gomock.Any(), gomock.Any(), gomock.Any()).Return(testAdjudication("adj-1"), nil)

	params := ClaimProcessingParams{
		ClaimID:        "claim-2",
		BillDocumentID: "bill-doc-1",
		ReviewWindow:   time.Hour,
	}
	env.ExecuteWorkflow(ClaimProcessing, params)

	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestClaimProcessing_ReviewSignalRevisesAdjudication(t *testing.T) {
	env, mockExtraction, mockAdjudication := newTestEnv(t)

	mockExtraction.EXPECT().ExtractBill(gomock.Any(), "bill-doc-1").Return(testPayload(), nil)
	mockAdjudication.EXPECT().Adjudicate(gomock.Any(), gomock.Any(), gomock.Any()).Return(testAdjudication("adj-initial"), nil)
	// The revise activity rebuilds the envelope without re-running coverage.
	mockAdjudication.EXPECT().Readjudicate(gomock.Any(), gomock.Any(), gomock.Any()).Return(testAdjudication("adj-revised"), nil)

	env.RegisterDelayedCallback(func() {
		cost := 600.0
		env.SignalWorkflow(ReviewClaimSignalName, ReviewClaimSignal{
			Patches:    []model.ItemPatch{{Index: 0, Cost: &cost}},
			ReviewedBy: "reviewer@example.com",
		})
	}, 10*time.Minute)

	params := ClaimProcessingParams{
		ClaimID:        "claim-3",
		BillDocumentID: "bill-doc-1",
		ReviewWindow:   time.Hour,
	}
	env.ExecuteWorkflow(ClaimProcessing, params)

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var adj model.Adjudication
	require.NoError(t, env.GetWorkflowResult(&adj))
	assert.Equal(t, "adj-revised", adj.Metadata.AdjudicationID)
}

func TestClaimProcessing_InvalidPatchKeepsPreviousAdjudication(t *testing.T) {
	env, mockExtraction, mockAdjudication := newTestEnv(t)

	mockExtraction.EXPECT().ExtractBill(gomock.Any(), "bill-doc-1").Return(testPayload(), nil)
	mockAdjudication.EXPECT().Adjudicate(gomock.Any(), gomock.Any(), gomock.Any()).Return(testAdjudication("adj-initial"), nil)

	env.RegisterDelayedCallback(func() {
		cost := 600.0
		// Index out of range fails patch application non-retryably.
		env.SignalWorkflow(ReviewClaimSignalName, ReviewClaimSignal{
			Patches:    []model.ItemPatch{{Index: 9, Cost: &cost}},
			ReviewedBy: "reviewer@example.com",
		})
	}, 10*time.Minute)

	params := ClaimProcessingParams{
		ClaimID:        "claim-4",
		BillDocumentID: "bill-doc-1",
		ReviewWindow:   time.Hour,
	}
	env.ExecuteWorkflow(ClaimProcessing, params)

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var adj model.Adjudication
	require.NoError(t, env.GetWorkflowResult(&adj))
	assert.Equal(t, "adj-initial", adj.Metadata.AdjudicationID)
}

func TestClaimProcessing_FinalizeSignalEndsReviewEarly(t *testing.T) {
	env, mockExtraction, mockAdjudication := newTestEnv(t)

	mockExtraction.EXPECT().ExtractBill(gomock.Any(), "bill-doc-1").Return(testPayload(), nil)
	mockAdjudication.EXPECT().Adjudicate(gomock.Any(), gomock.Any(), gomock.Any()).Return(testAdjudication("adj-1"), nil)

	env.RegisterDelayedCallback(func() {
		env.SignalWorkflow(FinalizeClaimSignalName, FinalizeClaimSignal{
			Reason:      "reviewed",
			FinalizedBy: "reviewer@example.com",
		})
	}, 5*time.Minute)

	params := ClaimProcessingParams{
		ClaimID:        "claim-5",
		BillDocumentID: "bill-doc-1",
		ReviewWindow:   72 * time.Hour,
	}
	env.ExecuteWorkflow(ClaimProcessing, params)

	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestClaimProcessing_StatusQuery(t *testing.T) {
	env, mockExtraction, mockAdjudication := newTestEnv(t)

	mockExtraction.EXPECT().ExtractBill(gomock.Any(), "bill-doc-1").Return(testPayload(), nil)
	mockAdjudication.EXPECT().Adjudicate(gomock.Any(), gomock.Any(), gomock.Any()).Return(testAdjudication("adj-1"), nil)

	env.RegisterDelayedCallback(func() {
		encoded, err := env.QueryWorkflow(StatusQueryName)
		require.NoError(t, err)
		var status string
		require.NoError(t, encoded.Get(&status))
		assert.Equal(t, "review", status)
	}, 10*time.Minute)

	params := ClaimProcessingParams{
		ClaimID:        "claim-6",
		BillDocumentID: "bill-doc-1",
		ReviewWindow:   time.Hour,
	}
	env.ExecuteWorkflow(ClaimProcessing, params)

	require.True(t, env.IsWorkflowCompleted())
	assert.NoError(t, env.GetWorkflowError())
}

func TestClaimProcessing_ReviewerCoverageDecisionSurvives(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockExtraction := extmock.NewMockClient(ctrl)
	adjudicationBusiness := adjudication.NewAdjudicationBusiness(
		coverage.NewCoverageBusiness(),
		calculation.NewCalculationBusiness(),
		analytics.NewAnalyticsBusiness(),
	)
	SetActivityDependencies(mockExtraction, adjudicationBusiness)
	t.Cleanup(func() { SetActivityDependencies(nil, nil) })

	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestWorkflowEnvironment()
	env.RegisterActivity(ExtractBillActivity)
	env.RegisterActivity(AdjudicateClaimActivity)
	env.RegisterActivity(ReviseClaimActivity)

	payload := &model.ClaimPayload{
		PolicyName:      "Gold Plan",
		CopayPercentage: floatPtr(10),
		BillItems: []model.LineItemPayload{
			{Description: "Consultation", Cost: floatPtr(500)},
			{Description: "Soap bar", Cost: floatPtr(50)},
		},
	}
	mockExtraction.EXPECT().ExtractBill(gomock.Any(), "bill-doc-1").Return(payload, nil)

	env.RegisterDelayedCallback(func() {
		// Reviewer overrides the personal-care rejection on the soap item.
		env.SignalWorkflow(ReviewClaimSignalName, ReviewClaimSignal{
			Patches:    []model.ItemPatch{{Index: 1, IsCovered: boolPtr(true)}},
			ReviewedBy: "reviewer@example.com",
		})
	}, 10*time.Minute)

	params := ClaimProcessingParams{
		ClaimID:        "claim-8",
		BillDocumentID: "bill-doc-1",
		ReviewWindow:   time.Hour,
	}
	env.ExecuteWorkflow(ClaimProcessing, params)

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var adj model.Adjudication
	require.NoError(t, env.GetWorkflowResult(&adj))
	require.Len(t, adj.Claim.BillItems, 2)

	soap := adj.Claim.BillItems[1]
	assert.True(t, soap.IsCovered)
	assert.Nil(t, soap.RejectionReason)

	assert.InDelta(t, 550, adj.Result.TotalCovered, 0.001)
	assert.InDelta(t, 495, adj.Result.ApprovedAmount, 0.001)
	assert.Equal(t, 2, adj.CoverageSummary.CoveredItems)
}

func TestClaimProcessing_ExtractionFailureFailsWorkflow(t *testing.T) {
	env, mockExtraction, _ := newTestEnv(t)

	mockExtraction.EXPECT().ExtractBill(gomock.Any(), "bill-doc-1").
		Return(nil, errors.New("document not found in extraction service")).
		AnyTimes()

	params := ClaimProcessingParams{
		ClaimID:        "claim-7",
		BillDocumentID: "bill-doc-1",
		ReviewWindow:   time.Hour,
	}
	env.ExecuteWorkflow(ClaimProcessing, params)

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document not found")
}
