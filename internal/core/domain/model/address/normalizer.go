package address

import (
	"strings"

	"quoting/internal/pkg/errs"
	"quoting/internal/pkg/guard"
)

// ErrNormalizerIsNotConstructed is returned when using a zero-value Normalizer.
var ErrNormalizerIsNotConstructed = errs.NewValueIsRequiredError(
	"Normalizer must be created via NewNormalizer")

// ErrHomeCountryIsRequired is returned when constructing a Normalizer without
// a home country to fall back on.
var ErrHomeCountryIsRequired = errs.NewValueIsRequiredError("homeCountry")

// Normalizer turns free-form or structured address input into a canonical
// Address. Normalization never fails: unresolvable fields become empty
// strings, and a missing country defaults to the configured home country.
type Normalizer struct {
	homeCountry string
	guard       guard.ConstructorGuard
}

// NewNormalizer creates a Normalizer with the platform's home country, used
// whenever input omits the country field.
func NewNormalizer(homeCountry string) (Normalizer, error) {
	if strings.TrimSpace(homeCountry) == "" {
		return Normalizer{}, ErrHomeCountryIsRequired
	}

	return Normalizer{
		homeCountry: strings.TrimSpace(homeCountry),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Normalizer was created through its constructor.
func (n Normalizer) Validate() error {
	return n.guard.Validate(ErrNormalizerIsNotConstructed)
}

// Normalize builds a canonical Address from structured components. Whitespace
// is trimmed, display casing preserved, and an empty country replaced with
// the home country.
func (n Normalizer) Normalize(street, city, region, country string) Address {
	country = strings.TrimSpace(country)
	if country == "" {
		country = n.homeCountry
	}

	return Address{
		street:  strings.TrimSpace(street),
		city:    strings.TrimSpace(city),
		region:  strings.TrimSpace(region),
		country: country,
	}
}

// NormalizeFreeForm parses a comma-separated address line. Component meaning
// depends on how many parts are present:
//
//	"Ikeja, Lagos, Nigeria"          -> street/area, city, country
//	"12 Allen Ave, Ikeja, Lagos, NG" -> street, city, region, country
//	"Lagos, Nigeria"                 -> city, country
//	"Lagos"                          -> city
func (n Normalizer) NormalizeFreeForm(raw string) Address {
	parts := make([]string, 0, 4)
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	switch len(parts) {
	case 0:
		return n.Normalize("", "", "", "")
	case 1:
		return n.Normalize("", parts[0], "", "")
	case 2:
		return n.Normalize("", parts[0], "", parts[1])
	case 3:
		return n.Normalize(parts[0], parts[1], "", parts[2])
	default:
		return n.Normalize(parts[0], parts[1], parts[2], parts[len(parts)-1])
	}
}
