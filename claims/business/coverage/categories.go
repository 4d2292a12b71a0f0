package coverage

import "strings"

// CategoryOther is assigned when no category keyword matches.
const CategoryOther = "other"

type serviceCategory struct {
	name     string
	keywords []string
}

// serviceCategories is scanned in order; the first category with a keyword
// substring match wins. Categorization happens before, and independently of,
// the coverage decision.
var serviceCategories = []serviceCategory{
	{"medication", []string{
		"tablet", "tab", "injection", "inj", "syrup", "capsule", "cap",
		"mg", "ml", "drug", "medicine", "pharmaceutical", "antibiotic",
		"painkiller", "analgesic", "antacid", "vitamin",
	}},
	{"medical_supply", []string{
		"syringe", "needle", "gauze", "bandage", "cotton", "swab",
		"catheter", "tube", "bag", "container", "gloves", "mask",
		"dressing", "pad", "tape", "suture",
	}},
	{"diagnostic_test", []string{
		"test", "scan", "x-ray", "mri", "ct", "ultrasound", "echo",
		"blood", "urine", "stool", "culture", "biopsy", "pathology",
		"lab", "laboratory", "analysis", "screening",
	}},
	{"procedure", []string{
		"surgery", "operation", "procedure", "treatment", "therapy",
		"intervention", "repair", "removal", "insertion", "biopsy",
	}},
	{"consultation", []string{
		"consultation", "visit", "checkup", "examination", "assessment",
		"doctor", "physician", "specialist", "consultant",
	}},
	{"room_charges", []string{
		"room", "bed", "accommodation", "stay", "ward", "icu", "ccu",
		"private", "general", "deluxe", "suite",
	}},
	{"equipment", []string{
		"monitor", "ventilator", "pump", "machine", "device", "equipment",
		"apparatus", "instrument", "tool",
	}},
	{"emergency", []string{
		"emergency", "urgent", "critical", "trauma", "ambulance",
		"er", "casualty", "acute",
	}},
	{"personal_care", []string{
		"soap", "shampoo", "toothbrush", "toothpaste", "comb", "brush",
		"towel", "tissue", "napkin", "wipes", "lotion", "cream",
	}},
	{"comfort", []string{
		"tv", "television", "phone", "telephone", "newspaper", "magazine",
		"entertainment", "wifi", "internet", "cable", "ac", "air conditioning",
	}},
	{"food", []string{
		"food", "meal", "breakfast", "lunch", "dinner", "snack",
		"tea", "coffee", "juice", "water", "beverage", "diet",
	}},
}

// categorize assigns a service category to a lower-cased description.
func categorize(description string) string {
	for _, cat := range serviceCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(description, kw) {
				return cat.name
			}
		}
	}
	return CategoryOther
}

// categoryTags holds every tag the categorizer or the default decision
// tables can produce. Rule service types outside this set are policy-derived
// service names, not categories.
var categoryTags = func() map[string]bool {
	tags := map[string]bool{
		CategoryOther: true,
		"cosmetic":    true,
		"non_medical": true,
	}
	for _, cat := range serviceCategories {
		tags[cat.name] = true
	}
	return tags
}()

func isCategoryTag(serviceType string) bool {
	return categoryTags[serviceType]
}
