package statistics

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// ErrMalformedMonth indicates a month token that is not "YYYY.MM".
var ErrMalformedMonth = errors.New("malformed month token")

var monthToken = regexp.MustCompile(`^\d{4}\.\d{2}$`)

// ResolveMonth parses a "YYYY.MM" token into the half-open interval
// [first day of that month, first day of the next month). Month length,
// leap-year February and year rollover fall out of AddDate.
func ResolveMonth(token string) (time.Time, time.Time, error) {
	if !monthToken.MatchString(token) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrMalformedMonth, token)
	}
	year, _ := strconv.Atoi(token[:4])
	month, _ := strconv.Atoi(token[5:])
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrMalformedMonth, token)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}
