package coverage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.app/claims/model"
)

func TestCoverageSummary(t *testing.T) {
	b := NewCoverageBusiness()

	claim := model.Claim{
		CopayPercentage: 10,
		BillItems: []model.LineItem{
			{Description: "Consultation", Cost: 500, Quantity: 1, IsCovered: true, Category: "consultation"},
			{Description: "Paracetamol tablet", Cost: 100, Quantity: 1, IsCovered: true, Category: "medication"},
			{Description: "Cough syrup", Cost: 80, Quantity: 1, IsCovered: false, RejectionReason: strPtr("Excluded service: cough syrup"), Category: "medication"},
			{Description: "Soap", Cost: 50, Quantity: 1, IsCovered: false, RejectionReason: strPtr("Personal care item - not medical necessity"), Category: "personal_care"},
			{Description: "Shampoo", Cost: 60, Quantity: 1, IsCovered: false, RejectionReason: strPtr("Personal care item - not medical necessity"), Category: "personal_care"},
		},
	}

	summary, err := b.CoverageSummary(context.Background(), &claim)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalItems)
	assert.Equal(t, 2, summary.CoveredItems)
	assert.Equal(t, 3, summary.RejectedItems)
	assert.InDelta(t, 790, summary.TotalAmount, 0.001)
	assert.InDelta(t, 600, summary.CoveredAmount, 0.001)
	assert.InDelta(t, 190, summary.RejectedAmount, 0.001)
	assert.InDelta(t, 40.0, summary.CoverageRate, 0.001)

	assert.Equal(t, map[string]int{
		"Excluded service: cough syrup":             1,
		"Personal care item - not medical necessity": 2,
	}, summary.RejectionReasons)

	require.NotNil(t, summary.CategoryCoverage)
	assert.InDelta(t, 100.0, summary.CategoryCoverage["consultation"], 0.001)
	assert.InDelta(t, 50.0, summary.CategoryCoverage["medication"], 0.001)
	assert.InDelta(t, 0.0, summary.CategoryCoverage["personal_care"], 0.001)
}

func TestCoverageSummaryEmptyClaim(t *testing.T) {
	b := NewCoverageBusiness()

	summary, err := b.CoverageSummary(context.Background(), &model.Claim{})
	require.NoError(t, err)

	assert.Equal(t, 0, summary.TotalItems)
	assert.Zero(t, summary.CoverageRate)
	assert.Empty(t, summary.RejectionReasons)
	assert.Nil(t, summary.CategoryCoverage)
}

func TestCoverageSummaryMissingReasonBucketed(t *testing.T) {
	b := NewCoverageBusiness()

	claim := model.Claim{
		BillItems: []model.LineItem{
			{Description: "Mystery charge", Cost: 10, Quantity: 1, IsCovered: false},
		},
	}

	summary, err := b.CoverageSummary(context.Background(), &claim)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Unknown reason": 1}, summary.RejectionReasons)
}
