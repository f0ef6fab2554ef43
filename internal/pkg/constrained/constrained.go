// Package constrained holds the small validation combinators used by the domain
// value objects. Every function returns either the accepted value or one of the
// typed errors from package errs naming the offending field.
package constrained

import (
	"fmt"
	"regexp"
	"strings"

	"placeorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// String accepts a non-blank string of at most maxLen runes.
func String(fieldName string, maxLen int, s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", errs.NewValueIsRequiredErrorWithCause(fieldName, fmt.Errorf("must not be blank"))
	}
	if n := len([]rune(s)); n > maxLen {
		return "", errs.NewValueIsInvalidErrorWithCause(
			fieldName, fmt.Errorf("must not be more than %d chars", maxLen),
		)
	}
	return s, nil
}

// StringOption is String for optional fields. A blank input yields ok == false
// and no error.
func StringOption(fieldName string, maxLen int, s string) (value string, ok bool, err error) {
	if strings.TrimSpace(s) == "" {
		return "", false, nil
	}
	value, err = String(fieldName, maxLen, s)
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Like accepts a non-blank string matching pattern.
func Like(fieldName string, pattern *regexp.Regexp, s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", errs.NewValueIsRequiredErrorWithCause(fieldName, fmt.Errorf("must not be blank"))
	}
	if !pattern.MatchString(s) {
		return "", errs.NewValueIsInvalidErrorWithCause(
			fieldName, fmt.Errorf("'%s' must match the pattern '%s'", s, pattern),
		)
	}
	return s, nil
}

// Int accepts i within [minValue, maxValue].
func Int(fieldName string, minValue, maxValue, i int) (int, error) {
	if i < minValue || i > maxValue {
		return 0, errs.NewValueIsOutOfRangeError(fieldName, i, minValue, maxValue)
	}
	return i, nil
}

// Decimal accepts d within [minValue, maxValue].
func Decimal(fieldName string, minValue, maxValue, d decimal.Decimal) (decimal.Decimal, error) {
	if d.LessThan(minValue) || d.GreaterThan(maxValue) {
		return decimal.Zero, errs.NewValueIsOutOfRangeError(
			fieldName, d.String(), minValue.String(), maxValue.String(),
		)
	}
	return d, nil
}
