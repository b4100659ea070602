// Package quote holds the engine's output model: priced delivery options
// with a transparent fee breakdown and an estimated time window.
package quote

import "quoting/internal/pkg/errs"

// ErrDeliveryTypeIsWrong is returned for delivery types outside the known set.
var ErrDeliveryTypeIsWrong = errs.NewValueIsInvalidError("delivery type is wrong")

// DeliveryType is the requested service level.
type DeliveryType int

const (
	// UnknownDeliveryType is an invalid zero value.
	UnknownDeliveryType DeliveryType = iota
	// Standard delivery at the candidate's base rates.
	Standard
	// Express delivery, priced with the candidate's express multiplier.
	Express
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		UnknownDeliveryType: "unknown",
		Standard:            "standard",
		Express:             "express",
	}
}

func getValidDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		Standard: "standard",
		Express:  "express",
	}
}

// Validate checks if the delivery type is one of the valid values.
func (d DeliveryType) Validate() error {
	if _, ok := getValidDeliveryTypeStrings()[d]; !ok {
		return ErrDeliveryTypeIsWrong
	}
	return nil
}

// String returns the string representation of the delivery type.
func (d DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[d]; ok {
		return str
	}
	return "unknown"
}

// DeliveryTypeFromString parses a delivery type from its string form.
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	for deliveryType, str := range getValidDeliveryTypeStrings() {
		if str == s {
			return deliveryType, nil
		}
	}
	return UnknownDeliveryType, ErrDeliveryTypeIsWrong
}
