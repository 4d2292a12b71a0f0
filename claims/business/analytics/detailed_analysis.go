package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"encore.dev/beta/errs"

	"encore.app/claims/model"
)

// Advisory thresholds. Amounts are in the claim's currency units.
const (
	highCostThreshold      = 50000.0
	highRejectionRate      = 0.3
	maxAdministrativeItems = 5
	costOptimizationAvg    = 10000.0
	highUtilizationPercent = 80.0
)

// DetailedAnalysis derives the full advisory report for an adjudicated
// claim: cost statistics, coverage ratios, policy utilization, risk factors
// and recommendations. policyRules may be nil; limits then read as
// unconfigured.
func (b *business) DetailedAnalysis(ctx context.Context, claim *model.Claim, policyRules *model.PolicyRules) (*model.DetailedAnalysis, error) {
	items := claim.BillItems
	if len(items) == 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "no bill items found for analysis"}
	}

	covered := make([]model.LineItem, 0, len(items))
	rejected := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		if item.IsCovered {
			covered = append(covered, item)
		} else {
			rejected = append(rejected, item)
		}
	}

	analysis := &model.DetailedAnalysis{
		CostStatistics:   costStatistics(items),
		CoverageAnalysis: coverageAnalysis(items, covered, rejected),
		PolicyUtilization: model.PolicyUtilization{
			AnnualLimitUsage:       annualLimitUsage(covered, policyRules),
			RoomChargesWithinLimit: roomChargesWithinLimit(items, policyRules),
			PreAuthCompliance:      preAuthCompliance(items, policyRules),
		},
		RiskFactors:     riskFactors(items, rejected, policyRules),
		Recommendations: recommendations(claim, covered, rejected, policyRules),
		TotalCategories: countCategories(items),
		DateRange:       dateRange(items),
	}
	return analysis, nil
}

// costStatistics summarizes the item cost distribution. The median is the
// lower-middle element of the sorted costs, a deliberate simplification kept
// from the reference behavior; the variance is the sample variance.
func costStatistics(items []model.LineItem) model.CostStatistics {
	costs := make([]float64, len(items))
	var total float64
	for i, item := range items {
		costs[i] = item.Cost
		total += item.Cost
	}
	sort.Float64s(costs)

	stats := model.CostStatistics{
		AverageItemCost: total / float64(len(costs)),
		MedianItemCost:  costs[len(costs)/2],
		HighestCostItem: costs[len(costs)-1],
		LowestCostItem:  costs[0],
	}
	if len(costs) >= 2 {
		mean := stats.AverageItemCost
		var sum float64
		for _, c := range costs {
			d := c - mean
			sum += d * d
		}
		stats.CostVariance = sum / float64(len(costs)-1)
	}
	return stats
}

func coverageAnalysis(items, covered, rejected []model.LineItem) model.CoverageAnalysis {
	ca := model.CoverageAnalysis{
		CoverageRate:  float64(len(covered)) / float64(len(items)) * 100,
		RejectionRate: float64(len(rejected)) / float64(len(items)) * 100,
	}
	if len(covered) > 0 {
		ca.AverageCoveredCost = sumCosts(covered) / float64(len(covered))
	}
	if len(rejected) > 0 {
		ca.AverageRejectedCost = sumCosts(rejected) / float64(len(rejected))
	}
	return ca
}

func annualLimitUsage(covered []model.LineItem, policyRules *model.PolicyRules) float64 {
	if policyRules == nil || policyRules.CoverageLimits.AnnualLimit <= 0 {
		return 0
	}
	return sumCosts(covered) / policyRules.CoverageLimits.AnnualLimit * 100
}

// roomChargesWithinLimit checks every room-category item against the policy
// room rent limit on a per-unit basis. Vacuously true without a limit.
func roomChargesWithinLimit(items []model.LineItem, policyRules *model.PolicyRules) bool {
	if policyRules == nil || policyRules.CoverageLimits.RoomRentLimit <= 0 {
		return true
	}
	limit := policyRules.CoverageLimits.RoomRentLimit
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Category), "room") {
			continue
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		if item.Cost/float64(quantity) > limit {
			return false
		}
	}
	return true
}

// preAuthCompliance maps each pre-auth-required service to whether every
// matching item shows pre-auth evidence in its coverage reason.
func preAuthCompliance(items []model.LineItem, policyRules *model.PolicyRules) map[string]bool {
	if policyRules == nil || len(policyRules.PreAuthRequired) == 0 {
		return nil
	}
	compliance := make(map[string]bool, len(policyRules.PreAuthRequired))
	for _, service := range policyRules.PreAuthRequired {
		lowered := strings.ToLower(service)
		compliance[service] = true
		for _, item := range items {
			if !strings.Contains(strings.ToLower(item.Description), lowered) {
				continue
			}
			if !hasPreAuthEvidence(item) {
				compliance[service] = false
			}
		}
	}
	return compliance
}

func hasPreAuthEvidence(item model.LineItem) bool {
	return item.RejectionReason != nil && strings.Contains(strings.ToLower(*item.RejectionReason), "pre-auth")
}

func riskFactors(items, rejected []model.LineItem, policyRules *model.PolicyRules) []string {
	var factors []string

	highCost := 0
	for _, item := range items {
		if item.Cost > highCostThreshold {
			highCost++
		}
	}
	if highCost > 0 {
		factors = append(factors, fmt.Sprintf("High-cost items detected: %d items above %.0f", highCost, highCostThreshold))
	}

	if float64(len(rejected)) > float64(len(items))*highRejectionRate {
		factors = append(factors, fmt.Sprintf("High rejection rate: %d out of %d items rejected", len(rejected), len(items)))
	}

	administrative := 0
	for _, item := range items {
		if item.Category == "administrative" {
			administrative++
		}
	}
	if administrative > maxAdministrativeItems {
		factors = append(factors, "High number of administrative charges")
	}

	if policyRules != nil {
		for _, service := range policyRules.PreAuthRequired {
			lowered := strings.ToLower(service)
			for _, item := range items {
				if strings.Contains(strings.ToLower(item.Description), lowered) && !hasPreAuthEvidence(item) {
					factors = append(factors, fmt.Sprintf("Potential pre-authorization issue for: %s", item.Description))
				}
			}
		}
	}

	return factors
}

func recommendations(claim *model.Claim, covered, rejected []model.LineItem, policyRules *model.PolicyRules) []string {
	var recs []string

	if len(rejected) > 0 {
		recs = append(recs, "Review rejected items for potential policy coverage gaps")
	}

	perCategory := make(map[string]struct {
		billed float64
		count  int
	})
	for _, item := range claim.BillItems {
		category := item.Category
		if category == "" {
			category = categoryUncategorized
		}
		totals := perCategory[category]
		totals.billed += item.Cost
		totals.count++
		perCategory[category] = totals
	}
	var highCostCategories []string
	for category, totals := range perCategory {
		if totals.billed/float64(totals.count) > costOptimizationAvg {
			highCostCategories = append(highCostCategories, category)
		}
	}
	if len(highCostCategories) > 0 {
		sort.Strings(highCostCategories)
		recs = append(recs, fmt.Sprintf("Consider cost optimization for: %s", strings.Join(highCostCategories, ", ")))
	}

	if policyRules != nil && policyRules.CoverageLimits.AnnualLimit > 0 {
		utilization := sumCosts(covered) / policyRules.CoverageLimits.AnnualLimit * 100
		if utilization > highUtilizationPercent {
			recs = append(recs, "High policy utilization - consider reviewing annual limits")
		}
	}

	return recs
}

func countCategories(items []model.LineItem) int {
	seen := make(map[string]bool)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = categoryUncategorized
		}
		seen[category] = true
	}
	return len(seen)
}

// dateRange reports the span of service dates. Dates are carried as opaque
// strings from extraction; min/max are lexicographic, which holds for the
// ISO dates extraction produces.
func dateRange(items []model.LineItem) model.DateRange {
	var dates []string
	for _, item := range items {
		if item.Date != nil && *item.Date != "" {
			dates = append(dates, *item.Date)
		}
	}
	if len(dates) == 0 {
		return model.DateRange{}
	}
	sort.Strings(dates)
	distinct := make(map[string]bool, len(dates))
	for _, d := range dates {
		distinct[d] = true
	}
	start, end := dates[0], dates[len(dates)-1]
	return model.DateRange{
		StartDate:    &start,
		EndDate:      &end,
		DurationDays: len(distinct),
	}
}

func sumCosts(items []model.LineItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Cost
	}
	return total
}
