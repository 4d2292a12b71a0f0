package claims

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// signalTimeout bounds background delivery of a review or finalize signal
// to the workflow engine.
const signalTimeout = 10 * time.Second

// runAsync is an indirection over deliverSignal so tests can run signal
// delivery synchronously and assert on the outcome.
var runAsync = deliverSignal

// deliverSignal sends a claim signal in a goroutine. The claim endpoints
// acknowledge before delivery completes, so failures are logged with the
// claim ID rather than returned.
func deliverSignal(op, claimID string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), signalTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("failed to deliver claim signal", "op", op, "claim_id", claimID, "error", err)
			return
		}
		rlog.Debug("claim signal delivered", "op", op, "claim_id", claimID)
	}()
}
