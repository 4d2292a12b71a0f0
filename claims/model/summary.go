package model

// CoverageSummary aggregates the coverage decisions across a claim.
type CoverageSummary struct {
	TotalItems       int                `json:"total_items"`
	CoveredItems     int                `json:"covered_items"`
	RejectedItems    int                `json:"rejected_items"`
	CoverageRate     float64            `json:"coverage_rate"`
	TotalAmount      float64            `json:"total_amount"`
	CoveredAmount    float64            `json:"covered_amount"`
	RejectedAmount   float64            `json:"rejected_amount"`
	RejectionReasons map[string]int     `json:"rejection_reasons"`
	CategoryCoverage map[string]float64 `json:"category_coverage,omitempty"`
}

// CategoryTotals is the per-category slice of a claim's totals.
type CategoryTotals struct {
	Billed       float64 `json:"billed"`
	Covered      float64 `json:"covered"`
	Rejected     float64 `json:"rejected"`
	Count        int     `json:"count"`
	AverageCost  float64 `json:"average_cost"`
	CoverageRate float64 `json:"coverage_rate"`
}

// CostStatistics describes the distribution of item costs in a claim.
// Median is the lower-middle element of the cost-sorted list; for
// even-length lists this is deliberately not the statistical median.
// Variance is the sample variance (n-1 denominator), 0 when n < 2.
type CostStatistics struct {
	AverageItemCost float64 `json:"average_item_cost"`
	MedianItemCost  float64 `json:"median_item_cost"`
	HighestCostItem float64 `json:"highest_cost_item"`
	LowestCostItem  float64 `json:"lowest_cost_item"`
	CostVariance    float64 `json:"cost_variance"`
}

// CoverageAnalysis holds coverage ratios over item counts and amounts.
type CoverageAnalysis struct {
	CoverageRate        float64 `json:"coverage_rate"`
	RejectionRate       float64 `json:"rejection_rate"`
	AverageCoveredCost  float64 `json:"average_covered_cost"`
	AverageRejectedCost float64 `json:"average_rejected_cost"`
}

// PolicyUtilization reports how the claim sits against policy limits.
type PolicyUtilization struct {
	AnnualLimitUsage       float64         `json:"annual_limit_usage"`
	RoomChargesWithinLimit bool            `json:"room_charges_within_limit"`
	PreAuthCompliance      map[string]bool `json:"pre_auth_compliance,omitempty"`
}

// DateRange is the span of service dates observed on the claim.
type DateRange struct {
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	DurationDays int     `json:"duration_days"`
}

// DetailedAnalysis is the advisory report derived from an adjudicated claim.
// It never feeds back into coverage or calculation.
type DetailedAnalysis struct {
	CostStatistics    CostStatistics    `json:"cost_statistics"`
	CoverageAnalysis  CoverageAnalysis  `json:"coverage_analysis"`
	PolicyUtilization PolicyUtilization `json:"policy_utilization"`
	RiskFactors       []string          `json:"risk_factors"`
	Recommendations   []string          `json:"recommendations"`
	TotalCategories   int               `json:"total_categories"`
	DateRange         DateRange         `json:"date_range"`
}
