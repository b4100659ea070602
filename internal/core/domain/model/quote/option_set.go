package quote

import "sort"

// OptionSet is the ordered result of one quoting request: every priced
// option sorted ascending by fee, with equal fees broken deterministically
// by partner id so repeated calls with identical inputs return identical
// orderings.
type OptionSet struct {
	options []DeliveryOption
}

// NewOptionSet sorts the given options into their canonical order.
func NewOptionSet(options []DeliveryOption) OptionSet {
	sorted := make([]DeliveryOption, len(options))
	copy(sorted, options)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := sorted[i].deliveryFee.Cmp(sorted[j].deliveryFee)
		if cmp != 0 {
			return cmp < 0
		}
		return sorted[i].partner.id < sorted[j].partner.id
	})

	return OptionSet{options: sorted}
}

// Options returns all options, cheapest first.
func (s OptionSet) Options() []DeliveryOption {
	options := make([]DeliveryOption, len(s.options))
	copy(options, s.options)
	return options
}

// Len returns the number of options in the set.
func (s OptionSet) Len() int {
	return len(s.options)
}

// IsEmpty reports whether the set holds no options.
func (s OptionSet) IsEmpty() bool {
	return len(s.options) == 0
}

// CheapestStandard returns the lowest-fee standard option.
func (s OptionSet) CheapestStandard() (DeliveryOption, bool) {
	return s.cheapestOf(Standard)
}

// CheapestExpress returns the lowest-fee express option.
func (s OptionSet) CheapestExpress() (DeliveryOption, bool) {
	return s.cheapestOf(Express)
}

func (s OptionSet) cheapestOf(deliveryType DeliveryType) (DeliveryOption, bool) {
	for _, option := range s.options {
		if option.deliveryType == deliveryType {
			return option, true
		}
	}
	return DeliveryOption{}, false
}
