package validation

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/hance08/tally/internal/constants"
)

// IdentifierKinds lists the accepted values of a lookup kind, in prompt order.
var IdentifierKinds = []string{
	constants.IdentifierEmail,
	constants.IdentifierPhone,
	constants.IdentifierUserID,
}

// SanitizeIdentifier removes every whitespace character, so that a phone
// number typed as "+1 555 0100" matches "+15550100".
func SanitizeIdentifier(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func ValidateIdentifierKind(kind string) error {
	for _, k := range IdentifierKinds {
		if kind == k {
			return nil
		}
	}
	return fmt.Errorf("invalid identifier type '%s' (must be %s)", kind, strings.Join(IdentifierKinds, ", "))
}

// ValidateIdentifier returns a validator for identifiers of the given kind.
func ValidateIdentifier(kind string) func(string) error {
	return func(val string) error {
		id := SanitizeIdentifier(val)
		if id == "" {
			return fmt.Errorf("identifier can't be empty")
		}

		switch kind {
		case constants.IdentifierEmail:
			if !strings.Contains(id, "@") {
				return fmt.Errorf("'%s' is not an email address", id)
			}
		case constants.IdentifierPhone:
			digits := strings.TrimPrefix(id, "+")
			if digits == "" {
				return fmt.Errorf("phone number has no digits")
			}
			for _, c := range digits {
				if c < '0' || c > '9' {
					return fmt.Errorf("phone number can only contain digits and a leading '+'")
				}
			}
		case constants.IdentifierUserID:
			if _, err := ParseProfileID(id); err != nil {
				return err
			}
		default:
			return ValidateIdentifierKind(kind)
		}
		return nil
	}
}

// ParseProfileID parses a positive profile id.
func ParseProfileID(s string) (int64, error) {
	id, err := strconv.ParseInt(SanitizeIdentifier(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("'%s' is not a valid user id", s)
	}
	return id, nil
}
