package coverage

import (
	"regexp"
	"strings"
)

type exclusionPattern struct {
	re *regexp.Regexp
	// qualifiers suppress the exclusion when any of them appears anywhere
	// in the description (e.g. "medical nutrition meals").
	qualifiers []string
	reason     string
}

// exclusionPatterns are checked in order against the lower-cased
// description. The first match forces rejection with its reason, overriding
// whatever the category rules decided. Nothing overrides an exclusion.
var exclusionPatterns = []exclusionPattern{
	{
		re:     regexp.MustCompile(`\b(soap|shampoo|toothbrush|toothpaste|comb|mirror)\b`),
		reason: "Personal care item - not medical necessity",
	},
	{
		re:     regexp.MustCompile(`\b(cosmetic|beauty|aesthetic|plastic surgery)\b`),
		reason: "Cosmetic procedure - excluded by policy",
	},
	{
		re:     regexp.MustCompile(`\b(newspaper|magazine|tv|entertainment|phone|wifi)\b`),
		reason: "Non-medical service - not covered",
	},
	{
		re:         regexp.MustCompile(`\b(tea|coffee|juice|snacks|meals)\b`),
		qualifiers: []string{"medical", "therapeutic"},
		reason:     "Food/beverage - not medical necessity",
	},
	{
		re:     regexp.MustCompile(`\b(experimental|investigational|trial|research)\b`),
		reason: "Experimental treatment - excluded by policy",
	},
}

// checkExclusions returns the forced rejection reason for a lower-cased
// description, or "" when no exclusion applies.
func checkExclusions(description string) string {
	for _, p := range exclusionPatterns {
		if !p.re.MatchString(description) {
			continue
		}
		if qualified(description, p.qualifiers) {
			continue
		}
		return p.reason
	}
	return ""
}

func qualified(description string, qualifiers []string) bool {
	for _, q := range qualifiers {
		if strings.Contains(description, q) {
			return true
		}
	}
	return false
}
