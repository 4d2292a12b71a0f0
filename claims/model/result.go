package model

import (
	"fmt"
	"math"
	"time"

	"encore.dev/beta/errs"
)

// ReconcileTolerance absorbs floating-point rounding when checking that the
// calculation totals reconcile. Amounts within 0.01 currency units are
// considered equal.
const ReconcileTolerance = 0.01

// CalculationResult holds the financial totals computed from a
// coverage-decided claim. Results are computed fresh from a claim and never
// mutated; any claim edit produces a brand-new result.
type CalculationResult struct {
	TotalBilled           float64 `json:"total_billed"`
	TotalCovered          float64 `json:"total_covered"`
	TotalRejected         float64 `json:"total_rejected"`
	CopayPercentage       float64 `json:"copay_percentage"`
	PatientResponsibility float64 `json:"patient_responsibility"`
	ApprovedAmount        float64 `json:"approved_amount"`
}

// Verify checks the arithmetic invariants of the result:
//
//	total_billed == total_covered + total_rejected
//	approved_amount + patient_responsibility == total_covered
//	patient_responsibility == total_covered * copay_percentage / 100
//
// all within ReconcileTolerance. A failure signals a logic bug in the
// calculation engine, not bad input.
func (r *CalculationResult) Verify() error {
	if math.Abs(r.TotalBilled-(r.TotalCovered+r.TotalRejected)) > ReconcileTolerance {
		return &errs.Error{Code: errs.Internal, Message: fmt.Sprintf("integrity check failed: total_billed %v != total_covered %v + total_rejected %v", r.TotalBilled, r.TotalCovered, r.TotalRejected)}
	}
	if math.Abs((r.ApprovedAmount+r.PatientResponsibility)-r.TotalCovered) > ReconcileTolerance {
		return &errs.Error{Code: errs.Internal, Message: fmt.Sprintf("integrity check failed: approved_amount %v + patient_responsibility %v != total_covered %v", r.ApprovedAmount, r.PatientResponsibility, r.TotalCovered)}
	}
	expected := r.TotalCovered * r.CopayPercentage / 100
	if math.Abs(r.PatientResponsibility-expected) > ReconcileTolerance {
		return &errs.Error{Code: errs.Internal, Message: fmt.Sprintf("integrity check failed: patient_responsibility %v != total_covered * copay (%v)", r.PatientResponsibility, expected)}
	}
	return nil
}

// ExportRow is the tabular per-item view consumed by downstream reporting.
// The service returns rows; rendering them to CSV or a report document
// belongs to the consumer.
type ExportRow struct {
	Description     string   `json:"description"`
	Cost            *float64 `json:"cost,omitempty"`
	IsCovered       *bool    `json:"is_covered,omitempty"`
	RejectionReason *string  `json:"rejection_reason,omitempty"`
}

// AdjudicationMetadata describes a single adjudication run.
type AdjudicationMetadata struct {
	AdjudicationID string    `json:"adjudication_id"`
	ProcessedAt    time.Time `json:"processed_at"`
	DurationMS     int64     `json:"duration_ms"`
}

// Adjudication is the full outcome of processing one claim: the
// coverage-decided claim, its financial totals, and the derived analytics.
type Adjudication struct {
	Metadata          AdjudicationMetadata      `json:"metadata"`
	Claim             Claim                     `json:"claim"`
	Result            CalculationResult         `json:"result"`
	CoverageSummary   CoverageSummary           `json:"coverage_summary"`
	CategoryBreakdown map[string]CategoryTotals `json:"category_breakdown"`
	DetailedAnalysis  DetailedAnalysis          `json:"detailed_analysis"`
}
