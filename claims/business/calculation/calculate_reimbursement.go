package calculation

import (
	"context"
	"fmt"
	"math"

	"encore.dev/beta/errs"

	"encore.app/claims/model"
)

// CalculateReimbursement computes the financial totals for a
// coverage-decided claim: partition items by coverage, sum each side, apply
// the copay to the covered total, and clamp the approved amount at zero.
// No rounding is applied; display layers round.
//
// The result is re-verified against its arithmetic invariants before being
// returned. A verification failure is an internal error, never silently
// corrected.
func (b *business) CalculateReimbursement(ctx context.Context, claim *model.Claim) (*model.CalculationResult, error) {
	if len(claim.BillItems) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "no bill items found for calculation"}
	}

	var totalBilled, totalCovered, totalRejected float64
	for i, item := range claim.BillItems {
		if item.Cost < 0 {
			return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("bill_items[%d]: cost must be non-negative, got %v", i, item.Cost)}
		}
		totalBilled += item.Cost
		if item.IsCovered {
			totalCovered += item.Cost
		} else {
			totalRejected += item.Cost
		}
	}

	// Unreachable with a correct partition above; guards future logic errors.
	if math.Abs(totalBilled-(totalCovered+totalRejected)) > model.ReconcileTolerance {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: fmt.Sprintf("total billed %v does not reconcile with covered %v + rejected %v", totalBilled, totalCovered, totalRejected)}
	}

	patientResponsibility := 0.0
	approvedAmount := totalCovered
	if claim.CopayPercentage > 0 {
		patientResponsibility = totalCovered * claim.CopayPercentage / 100
		approvedAmount = totalCovered - patientResponsibility
	}
	if approvedAmount < 0 {
		approvedAmount = 0
	}

	result := &model.CalculationResult{
		TotalBilled:           totalBilled,
		TotalCovered:          totalCovered,
		TotalRejected:         totalRejected,
		CopayPercentage:       claim.CopayPercentage,
		PatientResponsibility: patientResponsibility,
		ApprovedAmount:        approvedAmount,
	}
	if err := result.Verify(); err != nil {
		return nil, err
	}
	return result, nil
}
