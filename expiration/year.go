package expiration

import (
	"fmt"
	"strconv"
	"time"
)

// YearResult is the year half of a split validation.
type YearResult struct {
	IsValid            bool
	IsPotentiallyValid bool
	// ExpiresThisYear narrows a valid year to the current one, in
	// which case the month decides whether the date has passed.
	ExpiresThisYear bool
	Message         string
}

// ValidateYear checks a year token against the calendar year of at.
// Two-digit tokens are read as the last two digits of a year in the
// current century. A 3-digit token is a 4-digit year still being
// typed: never valid, but potentially valid while its first two
// digits agree with the current century. maxYearsInFuture <= 0
// selects DefaultMaxYearsInFuture.
func ValidateYear(token string, at time.Time, maxYearsInFuture int) (YearResult, error) {
	if maxYearsInFuture <= 0 {
		maxYearsInFuture = DefaultMaxYearsInFuture
	}

	currentYear := at.Year()
	currentYearStr := strconv.Itoa(currentYear)

	switch {
	case len(token) == 3:
		return YearResult{
			IsPotentiallyValid: token[:2] == currentYearStr[:2],
			Message:            MsgYearThreeDigits,
		}, nil

	case len(token) > 4:
		return YearResult{Message: MsgYearTooLong}, nil

	case len(token) == 2 || len(token) == 4:
		year, err := strconv.Atoi(token)
		if err != nil {
			return YearResult{}, fmt.Errorf("year token %q: %w", token, ErrNonNumericToken)
		}
		base := currentYear
		if len(token) == 2 {
			base = currentYear % 100
		}
		valid := year >= base && year <= base+maxYearsInFuture
		res := YearResult{
			IsValid:            valid,
			IsPotentiallyValid: valid,
			ExpiresThisYear:    year == base,
		}
		if !valid {
			res.Message = MsgYearOutOfWindow
		}
		return res, nil

	default:
		// The grammar admits 2-4 digit years only; reaching here means
		// the caller bypassed the parser.
		return YearResult{}, fmt.Errorf("year token %q: length outside accepted grammar", token)
	}
}
