// Package route provides the geographic classification of a pickup/drop-off
// pair. The category drives which rate card column applies and which carrier
// matching strategy the registry uses.
package route

import (
	"fmt"

	"quoting/internal/pkg/errs"
)

// Category classifies a pickup/drop-off pair by geography.
//
// Ordering of checks is deliberate: country mismatches dominate city
// mismatches because cross-border logistics carries categorically different
// constraints (customs, carrier eligibility) than same-country distance.
type Category int

const (
	// UnknownCategory represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	UnknownCategory Category = iota

	// Intracity covers same-city deliveries.
	Intracity

	// Intercity covers same-country deliveries between different cities.
	Intercity

	// International covers cross-border deliveries.
	International
)

// getCategoryStrings returns the string representation for every category,
// including the invalid zero value.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		UnknownCategory: "unknown",
		Intracity:       "intracity",
		Intercity:       "intercity",
		International:   "international",
	}
}

// getValidCategoryStrings returns only categories that may appear on a quote.
func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory is intentionally excluded as invalid
	return map[Category]string{
		Intracity:     "intracity",
		Intercity:     "intercity",
		International: "international",
	}
}

// Validate returns an error for UnknownCategory or any out-of-range value.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"category is invalid",
			fmt.Errorf("%d is not a valid route category", c),
		)
	}
	return nil
}

// String returns the lower-case category name used in persistence and API
// payloads, or "unknown" for invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// CategoryFromString parses a persisted or API-supplied category name.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category is invalid",
		fmt.Errorf("%q is not a valid route category", s),
	)
}
