// Package guard provides the constructor guard pattern used across the domain
// model. Value objects and commands embed a ConstructorGuard so that zero-value
// instances, which bypass validation, can be detected and rejected.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is
// supplied for an object that was not created through its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been created through its
// designated constructor. The zero value marks an improperly constructed
// object and fails validation.
//
// Embed the guard as an unexported field and set it in the constructor:
//
//	type RateCard struct {
//	    perKm decimal.Decimal
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRateCard(perKm decimal.Decimal) (RateCard, error) {
//	    ...
//	    return RateCard{perKm: perKm, guard: guard.NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as properly
// constructed. Call it only from constructors, after validation has passed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// objects it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}

	if !g.isConstructed {
		return validationError
	}

	return nil
}
