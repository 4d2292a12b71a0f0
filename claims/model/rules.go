package model

// CoverageRule is one entry in the ordered rule table the coverage engine
// scans. The first rule whose service type equals the item's category and
// whose keyword set matches the description wins.
type CoverageRule struct {
	ServiceType     string   `json:"service_type"`
	Keywords        []string `json:"keywords"`
	IsCovered       bool     `json:"is_covered"`
	RejectionReason string   `json:"rejection_reason,omitempty"`
	RequiresPreauth bool     `json:"requires_preauth,omitempty"`
}

// PolicyRules are optional rules extracted from a policy document by the
// upstream collaborator. Any subset may be absent; absence means "use engine
// defaults". Blank entries are skipped, never fatal.
type PolicyRules struct {
	CoveredServices []string       `json:"covered_services,omitempty"`
	Exclusions      []string       `json:"exclusions,omitempty"`
	CoverageLimits  CoverageLimits `json:"coverage_limits,omitempty"`
	PreAuthRequired []string       `json:"pre_auth_required,omitempty"`
}

// CoverageLimits are policy caps used by analytics. Zero means no limit.
type CoverageLimits struct {
	AnnualLimit   float64 `json:"annual_limit,omitempty"`
	RoomRentLimit float64 `json:"room_rent_limit,omitempty"`
}
