package claims

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"encore.app/claims/model"
)

type ExportRequest struct {
	Claim model.ClaimPayload `json:"claim" validate:"required"`
}

type ExportResponse struct {
	Rows []model.ExportRow `json:"rows"`
}

// Export produces the row-oriented view of a claim: one row per line item
// followed by the five headline totals. Rendering the rows to CSV or a
// report document belongs to the consumer.
//
//encore:api public path=/v1/claims/export method=POST
func (s *Service) Export(ctx context.Context, req *ExportRequest) (*ExportResponse, error) {
	claim, err := req.Claim.ToClaim()
	if err != nil {
		rlog.Error("rejected malformed claim payload", "policy", req.Claim.PolicyName, "error", err)
		return nil, err
	}

	result, err := s.calculation.CalculateReimbursement(ctx, claim)
	if err != nil {
		rlog.Error("failed to calculate reimbursement for export", "policy", claim.PolicyName, "error", err)
		return nil, err
	}

	return &ExportResponse{Rows: exportRows(claim, result)}, nil
}

func exportRows(claim *model.Claim, result *model.CalculationResult) []model.ExportRow {
	rows := make([]model.ExportRow, 0, len(claim.BillItems)+5)
	for _, item := range claim.BillItems {
		cost := item.Cost
		covered := item.IsCovered
		rows = append(rows, model.ExportRow{
			Description:     item.Description,
			Cost:            &cost,
			IsCovered:       &covered,
			RejectionReason: item.RejectionReason,
		})
	}

	summaryRow := func(label string, amount float64) model.ExportRow {
		return model.ExportRow{Description: label, Cost: &amount}
	}
	rows = append(rows,
		summaryRow("Total Billed Amount", result.TotalBilled),
		summaryRow("Total Covered Amount", result.TotalCovered),
		summaryRow("Total Rejected Amount", result.TotalRejected),
		summaryRow("Patient Responsibility (Copay)", result.PatientResponsibility),
		summaryRow("Approved Reimbursement", result.ApprovedAmount),
	)
	return rows
}

// Validate implements validation for ExportRequest
func (r *ExportRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if len(r.Claim.BillItems) == 0 {
		return &errs.Error{Code: errs.InvalidArgument, Message: "claim must contain at least one bill item"}
	}

	return nil
}
