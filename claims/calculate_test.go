package claims

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/claims/business/calculation"
	"encore.app/claims/model"
)

func TestCalculateEndpoint(t *testing.T) {
	service := &Service{calculation: calculation.NewCalculationBusiness()}

	reason := "Personal care items not covered"
	req := &CalculateRequest{
		Claim: model.ClaimPayload{
			PolicyName:      "Gold Plan",
			CopayPercentage: floatPtr(10),
			BillItems: []model.LineItemPayload{
				{Description: "Consultation", Cost: floatPtr(100), IsCovered: boolPtr(true)},
				{Description: "Soap", Cost: floatPtr(20), IsCovered: boolPtr(false), RejectionReason: &reason},
			},
		},
	}

	resp, err := service.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 120, resp.Result.TotalBilled, 0.001)
	assert.InDelta(t, 100, resp.Result.TotalCovered, 0.001)
	assert.InDelta(t, 20, resp.Result.TotalRejected, 0.001)
	assert.InDelta(t, 10, resp.Result.PatientResponsibility, 0.001)
	assert.InDelta(t, 90, resp.Result.ApprovedAmount, 0.001)
}

func TestCalculateEndpointUndecidedItemsCountAsRejected(t *testing.T) {
	service := &Service{calculation: calculation.NewCalculationBusiness()}

	req := &CalculateRequest{
		Claim: model.ClaimPayload{
			CopayPercentage: floatPtr(10),
			BillItems: []model.LineItemPayload{
				{Description: "Consultation", Cost: floatPtr(100), IsCovered: boolPtr(true)},
				{Description: "MRI scan", Cost: floatPtr(8000)},
			},
		},
	}

	resp, err := service.Calculate(context.Background(), req)
	require.NoError(t, err)

	assert.InDelta(t, 100, resp.Result.TotalCovered, 0.001)
	assert.InDelta(t, 8000, resp.Result.TotalRejected, 0.001)
}
