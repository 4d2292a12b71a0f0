package workflow

import "encore.app/claims/model"

const (
	// Signal names
	ReviewClaimSignalName   = "review-claim"
	FinalizeClaimSignalName = "finalize-claim"

	// Query names
	StatusQueryName = "status"
)

// ReviewClaimSignal carries reviewer edits for one or more line items.
// Patches are applied in order and the whole claim is re-adjudicated.
type ReviewClaimSignal struct {
	Patches    []model.ItemPatch `json:"patches"`
	ReviewedBy string            `json:"reviewed_by"`
}

// FinalizeClaimSignal ends the review period and locks in the current
// adjudication.
type FinalizeClaimSignal struct {
	Reason      string `json:"reason"`
	FinalizedBy string `json:"finalized_by"`
}
