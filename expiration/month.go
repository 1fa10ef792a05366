package expiration

import (
	"fmt"
	"strconv"
	"time"
)

// MonthResult is the month half of a split validation.
type MonthResult struct {
	IsValid            bool
	IsPotentiallyValid bool
	// IsValidForCurrentYear reports that the month has not yet elapsed
	// if the year turns out to be the current one.
	IsValidForCurrentYear bool
	Message               string
}

// ValidateMonth checks a numeric month token against the calendar
// month of at. The parser already bounds the token to 1-2 digits, so
// there is no mid-keystroke ambiguity: a month is either a calendar
// month or it is not. A non-numeric token is a contract violation and
// comes back as an error, never as a failed result.
func ValidateMonth(token string, at time.Time) (MonthResult, error) {
	month, err := strconv.Atoi(token)
	if err != nil {
		return MonthResult{}, fmt.Errorf("month token %q: %w", token, ErrNonNumericToken)
	}

	valid := month > 0 && month < 13
	return MonthResult{
		IsValid:               valid,
		IsPotentiallyValid:    valid,
		IsValidForCurrentYear: valid && month >= int(at.Month()),
	}, nil
}
