package coverage

import (
	"context"
	"strings"

	"encore.app/claims/model"
)

// AnalyzeCoverage produces a new claim in which every item carries a
// definitive coverage decision. For each item, in order:
//
//  1. assign a service category from the keyword table,
//  2. apply the first matching rule for that category, falling back to the
//     category default,
//  3. run the exclusion patterns, which strictly override steps 1-2.
//
// The input claim is never modified. Bad or missing policy rules degrade to
// defaults; this operation does not fail for configuration problems.
func (b *business) AnalyzeCoverage(ctx context.Context, claim *model.Claim, policyRules *model.PolicyRules) (*model.Claim, error) {
	rules := buildRuleset(policyRules)

	items := make([]model.LineItem, len(claim.BillItems))
	for i, item := range claim.BillItems {
		items[i] = determineItemCoverage(item, rules)
	}

	return claim.WithItems(items)
}

func determineItemCoverage(item model.LineItem, rules []model.CoverageRule) model.LineItem {
	description := strings.ToLower(item.Description)

	category := categorize(description)
	isCovered, rejectionReason := applyRules(description, category, rules)

	if reason := checkExclusions(description); reason != "" {
		isCovered = false
		rejectionReason = reason
	}

	next := item
	next.Category = category
	if isCovered {
		return next.Covered()
	}
	return next.Rejected(rejectionReason)
}

// applyRules scans the ordered rule list; the first matching rule decides.
// A rule keyed by a service category matches when its type equals the item's
// category and a keyword hits. Policy-derived rules are keyed by their own
// service text rather than a category, so they match on keywords alone.
// With no match the category default applies.
func applyRules(description, category string, rules []model.CoverageRule) (bool, string) {
	for _, rule := range rules {
		if isCategoryTag(rule.ServiceType) && rule.ServiceType != category {
			continue
		}
		if !keywordMatch(description, rule.Keywords) {
			continue
		}
		return rule.IsCovered, rule.RejectionReason
	}
	return defaultDecision(category)
}

func keywordMatch(description string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(description, kw) {
			return true
		}
	}
	return false
}
