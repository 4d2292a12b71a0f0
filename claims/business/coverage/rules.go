package coverage

import (
	"fmt"
	"strings"

	"encore.app/claims/model"
)

// defaultRules is the base rule table. Order matters: the first matching
// rule wins, and policy-derived additions are appended after these.
var defaultRules = []model.CoverageRule{
	{ServiceType: "medication", Keywords: []string{"tablet", "injection", "syrup", "capsule", "mg", "ml"}, IsCovered: true},
	{ServiceType: "medical_supply", Keywords: []string{"syringe", "needle", "gauze", "bandage", "catheter", "tube"}, IsCovered: true},
	{ServiceType: "diagnostic_test", Keywords: []string{"test", "scan", "x-ray", "mri", "ct", "ultrasound", "blood", "urine"}, IsCovered: true},
	{ServiceType: "procedure", Keywords: []string{"surgery", "operation", "procedure", "treatment"}, IsCovered: true},
	{ServiceType: "room_charges", Keywords: []string{"room", "bed", "accommodation", "stay"}, IsCovered: true},
	{ServiceType: "personal_care", Keywords: []string{"soap", "shampoo", "toothbrush", "comb", "towel"}, IsCovered: false,
		RejectionReason: "Personal care item - not medical necessity"},
	{ServiceType: "comfort", Keywords: []string{"tv", "phone", "newspaper", "magazine", "entertainment"}, IsCovered: false,
		RejectionReason: "Comfort/entertainment item - not covered by policy"},
}

// coveredByDefault and rejectedByDefault drive the fallback decision when no
// rule matches. Any category in neither set falls through to manual review.
var (
	coveredByDefault = map[string]bool{
		"medication":      true,
		"medical_supply":  true,
		"diagnostic_test": true,
		"procedure":       true,
		"consultation":    true,
		"emergency":       true,
	}
	rejectedByDefault = map[string]bool{
		"personal_care": true,
		"cosmetic":      true,
		"non_medical":   true,
		"comfort":       true,
	}
)

const manualReviewReason = "Service requires manual review for coverage determination"

// buildRuleset assembles the effective ordered rule list for one analysis
// call: defaults first, then policy-derived covered services and exclusions.
// Blank policy entries are skipped; a covered service whose type already has
// a rule is skipped so defaults keep precedence.
func buildRuleset(policyRules *model.PolicyRules) []model.CoverageRule {
	rules := make([]model.CoverageRule, len(defaultRules))
	copy(rules, defaultRules)
	if policyRules == nil {
		return rules
	}

	for _, service := range policyRules.CoveredServices {
		service = strings.TrimSpace(service)
		if service == "" {
			continue
		}
		lowered := strings.ToLower(service)
		if hasRuleForType(rules, lowered) {
			continue
		}
		rules = append(rules, model.CoverageRule{
			ServiceType: lowered,
			Keywords:    []string{lowered},
			IsCovered:   true,
		})
	}

	for _, exclusion := range policyRules.Exclusions {
		exclusion = strings.TrimSpace(exclusion)
		if exclusion == "" {
			continue
		}
		rules = append(rules, model.CoverageRule{
			ServiceType:     "exclusion",
			Keywords:        []string{strings.ToLower(exclusion)},
			IsCovered:       false,
			RejectionReason: fmt.Sprintf("Excluded service: %s", exclusion),
		})
	}

	return rules
}

func hasRuleForType(rules []model.CoverageRule, serviceType string) bool {
	for _, r := range rules {
		if r.ServiceType == serviceType {
			return true
		}
	}
	return false
}

// defaultDecision is the fallback when no rule matches the item.
func defaultDecision(category string) (isCovered bool, rejectionReason string) {
	switch {
	case coveredByDefault[category]:
		return true, ""
	case rejectedByDefault[category]:
		return false, fmt.Sprintf("%s - not covered by policy", titleCategory(category))
	default:
		return false, manualReviewReason
	}
}

// titleCategory renders a category tag as display text, e.g.
// "personal_care" -> "Personal Care".
func titleCategory(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
