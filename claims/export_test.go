package claims

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/claims/business/calculation"
	"encore.app/claims/model"
)

func TestExportEndpoint(t *testing.T) {
	service := &Service{calculation: calculation.NewCalculationBusiness()}

	reason := "Personal care items not covered"
	req := &ExportRequest{
		Claim: model.ClaimPayload{
			PolicyName:      "Gold Plan",
			CopayPercentage: floatPtr(10),
			BillItems: []model.LineItemPayload{
				{Description: "Consultation", Cost: floatPtr(100), IsCovered: boolPtr(true)},
				{Description: "Soap", Cost: floatPtr(20), IsCovered: boolPtr(false), RejectionReason: &reason},
			},
		},
	}

	resp, err := service.Export(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Rows, 7)

	// Item rows first, in presentation order.
	first := resp.Rows[0]
	assert.Equal(t, "Consultation", first.Description)
	require.NotNil(t, first.Cost)
	assert.InDelta(t, 100, *first.Cost, 0.001)
	require.NotNil(t, first.IsCovered)
	assert.True(t, *first.IsCovered)
	assert.Nil(t, first.RejectionReason)

	second := resp.Rows[1]
	assert.Equal(t, "Soap", second.Description)
	require.NotNil(t, second.IsCovered)
	assert.False(t, *second.IsCovered)
	require.NotNil(t, second.RejectionReason)
	assert.Equal(t, reason, *second.RejectionReason)

	// Headline totals follow the items.
	labels := make([]string, 0, 5)
	for _, row := range resp.Rows[2:] {
		labels = append(labels, row.Description)
		require.NotNil(t, row.Cost)
		assert.Nil(t, row.IsCovered)
	}
	assert.Equal(t, []string{
		"Total Billed Amount",
		"Total Covered Amount",
		"Total Rejected Amount",
		"Patient Responsibility (Copay)",
		"Approved Reimbursement",
	}, labels)

	assert.InDelta(t, 120, *resp.Rows[2].Cost, 0.001)
	assert.InDelta(t, 90, *resp.Rows[6].Cost, 0.001)
}
