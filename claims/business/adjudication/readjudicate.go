package adjudication

import (
	"context"
	"time"

	"encore.app/claims/model"
)

// Readjudicate rebuilds the adjudication envelope from a claim whose items
// already carry coverage decisions, such as one edited during review.
// Coverage analysis is skipped so reviewer decisions are not overwritten;
// calculation, summary, and analysis all read the claim as-is.
func (b *business) Readjudicate(ctx context.Context, claim *model.Claim, policyRules *model.PolicyRules) (*model.Adjudication, error) {
	return b.assemble(ctx, claim, policyRules, time.Now())
}
