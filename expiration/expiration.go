// Package expiration validates payment card expiration date input as
// the user types it. A raw string such as "06/24", "6-2024" or an
// unfinished "06/202" is classified as valid, potentially valid
// (could still become valid with more typing) or invalid.
package expiration

import (
	"errors"
	"time"
)

// DefaultMaxYearsInFuture bounds how many years ahead an expiration
// year may lie before it is rejected as implausible.
const DefaultMaxYearsInFuture = 19

// Messages carried by failed validations. Callers may match on them to
// drive field-level hints.
const (
	MsgNoDateGiven       = "No date given"
	MsgInvalidDateFormat = "Invalid date format"
	MsgYearThreeDigits   = "Expiration year is 3 digits long"
	MsgYearTooLong       = "Expiration year is longer than 4 digits"
	MsgYearOutOfWindow   = "Expiration year either has passed already or is too far into the future"
)

// ErrNonNumericToken reports a token that matched the date grammar but
// failed integer conversion. It signals a defect in the parser, not
// bad user input, and is never folded into a Result.
var ErrNonNumericToken = errors.New("non-numeric token after grammar match")

// Result is the outcome of validating a raw expiration date.
// IsValid implies IsPotentiallyValid. Message is empty when there is
// nothing to report.
type Result struct {
	IsValid            bool
	IsPotentiallyValid bool
	Message            string
}

// Validate checks raw against the calendar date of at using the
// default future window. The current date is an explicit argument so
// results are deterministic for any caller-chosen instant.
func Validate(raw string, at time.Time) (Result, error) {
	return ValidateWithin(raw, at, DefaultMaxYearsInFuture)
}

// ValidateWithin is Validate with an explicit bound on how many years
// into the future the date may expire. maxYearsInFuture <= 0 selects
// DefaultMaxYearsInFuture.
func ValidateWithin(raw string, at time.Time, maxYearsInFuture int) (Result, error) {
	if raw == "" {
		return Result{Message: MsgNoDateGiven}, nil
	}

	monthToken, yearToken, ok := Parse(raw)
	if !ok {
		// Unparseable text may still become valid with more typing.
		return Result{IsPotentiallyValid: true, Message: MsgInvalidDateFormat}, nil
	}

	month, err := ValidateMonth(monthToken, at)
	if err != nil {
		return Result{}, err
	}
	year, err := ValidateYear(yearToken, at, maxYearsInFuture)
	if err != nil {
		return Result{}, err
	}

	if month.IsValid {
		if year.ExpiresThisYear {
			// The year alone cannot decide; the month must not have
			// elapsed within it.
			ok := month.IsValidForCurrentYear
			return Result{IsValid: ok, IsPotentiallyValid: ok, Message: year.Message}, nil
		}
		if year.IsValid {
			return Result{IsValid: true, IsPotentiallyValid: true}, nil
		}
	}

	if month.IsPotentiallyValid && year.IsPotentiallyValid {
		return Result{IsPotentiallyValid: true}, nil
	}

	// month.Message is always empty today; the slot is kept so the
	// month validator can grow a message without changing this path.
	return Result{Message: month.Message}, nil
}
