package carrier

import (
	"fmt"

	"quoting/internal/pkg/errs"
)

// Status represents the review state of a carrier profile.
//
// State transitions:
//
//	Pending ──┬──> Approved ──> Rejected
//	          │                    ^
//	          └────────────────────┘
//	  (approved carriers can be delisted)
//
// Only approved carriers participate in matching; everything else is
// invisible to the quoting path.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Pending is the initial status after carrier registration,
	// awaiting administrator review.
	Pending

	// Approved carriers are eligible for matching and quoting.
	Approved

	// Rejected carriers never participate in matching. Terminal.
	Rejected
)

// getStatusStrings returns the string representation for every status.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Pending:       "pending",
		Approved:      "approved",
		Rejected:      "rejected",
	}
}

// getValidStatusStrings returns only statuses a persisted carrier may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as invalid
	return map[Status]string{
		Pending:  "pending",
		Approved: "approved",
		Rejected: "rejected",
	}
}

// Validate returns an error for UnknownStatus or any out-of-range value.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid carrier status", s),
		)
	}
	return nil
}

// String returns the lower-case status name used in persistence and API
// payloads, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a persisted or API-supplied status name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid carrier status", s),
	)
}

// ValidateTransition checks whether moving to the target status is allowed
// without performing the transition.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	allowed := map[Status][]Status{
		Pending:  {Approved, Rejected},
		Approved: {Rejected},
		Rejected: {},
	}

	for _, next := range allowed[s] {
		if next == target {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("cannot transition carrier status from %s to %s", s, target),
	)
}
