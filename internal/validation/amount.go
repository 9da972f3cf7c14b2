package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/shopspring/decimal"
)

// ValidateAmount checks a transaction amount typed by the user. Amounts are
// magnitudes, the direction comes from the transaction type.
func ValidateAmount(val string) error {
	input := strings.TrimSpace(val)
	if input == "" {
		return fmt.Errorf("amount can't be empty")
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return fmt.Errorf("invalid number format")
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}
	return nil
}

// ValidateName checks a first or last name.
func ValidateName(val string) error {
	name := strings.TrimSpace(val)
	if name == "" {
		return fmt.Errorf("name can't be empty")
	}
	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

// ParseTimestamp accepts either a date (YYYY-MM-DD, midnight UTC) or an
// RFC 3339 timestamp. An empty value means now.
func ParseTimestamp(val string, now time.Time) (time.Time, error) {
	input := strings.TrimSpace(val)
	if input == "" {
		return now.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, input); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(constants.DateFormat, input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s' (use YYYY-MM-DD or RFC 3339)", input)
	}
	return t, nil
}
