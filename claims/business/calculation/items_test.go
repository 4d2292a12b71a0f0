package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.app/claims/model"
)

func TestCoveredAndRejectedItems(t *testing.T) {
	b := NewCalculationBusiness()
	claim := model.Claim{
		CopayPercentage: 10,
		BillItems: []model.LineItem{
			coveredItem("Consultation", 500),
			rejectedItem("Soap", 50, "Personal care items not covered"),
			coveredItem("X-ray", 1200),
			rejectedItem("Coffee", 30, "Food and beverages not covered"),
		},
	}

	covered := b.CoveredItems(&claim)
	rejected := b.RejectedItems(&claim)

	assert.Len(t, covered, 2)
	assert.Len(t, rejected, 2)

	// Presentation order is preserved within each partition.
	assert.Equal(t, "Consultation", covered[0].Description)
	assert.Equal(t, "X-ray", covered[1].Description)
	assert.Equal(t, "Soap", rejected[0].Description)
	assert.Equal(t, "Coffee", rejected[1].Description)
}

func TestCoveredItemsEmptyClaim(t *testing.T) {
	b := NewCalculationBusiness()
	claim := model.Claim{}

	assert.Empty(t, b.CoveredItems(&claim))
	assert.Empty(t, b.RejectedItems(&claim))
}
