package domain

import (
	"fmt"

	"encore.dev/beta/errs"
)

// ClaimStatus tracks a claim through its processing lifecycle.
type ClaimStatus string

const (
	ClaimStatusReceived    ClaimStatus = "received"
	ClaimStatusExtracting  ClaimStatus = "extracting"
	ClaimStatusReview      ClaimStatus = "review"
	ClaimStatusAdjudicated ClaimStatus = "adjudicated"
	ClaimStatusFailed      ClaimStatus = "failed"
)

// validTransitions enumerates the allowed lifecycle edges. Adjudicated and
// failed are terminal.
var validTransitions = map[ClaimStatus][]ClaimStatus{
	ClaimStatusReceived:   {ClaimStatusExtracting, ClaimStatusFailed},
	ClaimStatusExtracting: {ClaimStatusReview, ClaimStatusFailed},
	ClaimStatusReview:     {ClaimStatusAdjudicated, ClaimStatusFailed},
}

// Transition validates a status change and returns the new status. The claim
// lifecycle is held in workflow state rather than a database row, so this is
// a pure check with no locking.
func Transition(from, to ClaimStatus) (ClaimStatus, error) {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return to, nil
		}
	}
	return from, &errs.Error{
		Code:    errs.FailedPrecondition,
		Message: fmt.Sprintf("invalid claim status transition from %s to %s", from, to),
	}
}

// Terminal reports whether a status admits no further transitions.
func Terminal(status ClaimStatus) bool {
	return len(validTransitions[status]) == 0
}
