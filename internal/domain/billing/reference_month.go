package billing

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/honoraria/backend/internal/domain/shared"
)

// referenceMonthRegex matches the YYYY-MM accounting period format.
var referenceMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// CurrentReferenceMonth formats the YYYY-MM period for the given instant.
func CurrentReferenceMonth(now time.Time) string {
	return fmt.Sprintf("%04d-%02d", now.Year(), int(now.Month()))
}

// ValidateReferenceMonth checks the YYYY-MM format and the year range.
// Years outside [2000, 2100] are rejected.
func ValidateReferenceMonth(v string) error {
	if !referenceMonthRegex.MatchString(v) {
		return shared.NewDomainError("INVALID_REFERENCE_MONTH",
			"Reference month must be in YYYY-MM format (e.g. 2024-03)")
	}
	year, err := strconv.Atoi(v[:4])
	if err != nil || year < 2000 || year > 2100 {
		return shared.NewDomainError("INVALID_REFERENCE_MONTH",
			"Reference month year must be between 2000 and 2100")
	}
	return nil
}

// NormalizeReferenceMonth resolves the reference month to persist: an empty
// value defaults to the current year-month evaluated at call time, anything
// else must validate. The result is never empty, so a null reference month
// can never reach storage.
func NormalizeReferenceMonth(v string, now time.Time) (string, error) {
	if v == "" {
		return CurrentReferenceMonth(now), nil
	}
	if err := ValidateReferenceMonth(v); err != nil {
		return "", err
	}
	return v, nil
}
