package adjudication

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.app/claims/model"
)

// Adjudicate runs the full pipeline over a claim. Coverage decisions are
// made first; every downstream stage reads the coverage-decided claim, so
// the envelope is internally consistent even when the input claim carried
// stale decisions. policyRules may be nil.
func (b *business) Adjudicate(ctx context.Context, claim *model.Claim, policyRules *model.PolicyRules) (*model.Adjudication, error) {
	start := time.Now()

	analyzed, err := b.coverage.AnalyzeCoverage(ctx, claim, policyRules)
	if err != nil {
		return nil, err
	}

	return b.assemble(ctx, analyzed, policyRules, start)
}

// assemble runs the post-coverage stages over a decided claim and wraps the
// outputs in a fresh envelope.
func (b *business) assemble(ctx context.Context, decided *model.Claim, policyRules *model.PolicyRules, start time.Time) (*model.Adjudication, error) {
	result, err := b.calculation.CalculateReimbursement(ctx, decided)
	if err != nil {
		return nil, err
	}

	summary, err := b.coverage.CoverageSummary(ctx, decided)
	if err != nil {
		return nil, err
	}

	breakdown, err := b.analytics.CategoryBreakdown(ctx, decided)
	if err != nil {
		return nil, err
	}

	analysis, err := b.analytics.DetailedAnalysis(ctx, decided, policyRules)
	if err != nil {
		return nil, err
	}

	return &model.Adjudication{
		Metadata: model.AdjudicationMetadata{
			AdjudicationID: uuid.NewString(),
			ProcessedAt:    start.UTC(),
			DurationMS:     time.Since(start).Milliseconds(),
		},
		Claim:             *decided,
		Result:            *result,
		CoverageSummary:   *summary,
		CategoryBreakdown: breakdown,
		DetailedAnalysis:  *analysis,
	}, nil
}
