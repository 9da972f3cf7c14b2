package ledger

import "github.com/hance08/tally/internal/constants"

// The two filters below are independent on purpose. A status that is in
// neither set (e.g. "Refunded") counts toward the balance but gets no row.

// IsSettled reports whether a transaction with this status counts toward the
// current balance.
func IsSettled(status string) bool {
	switch status {
	case constants.StatusPending, constants.StatusDeclined, constants.StatusExpired:
		return false
	}
	return true
}

// IsDisplayed reports whether a transaction with this status produces a
// ledger row.
func IsDisplayed(status string) bool {
	return status == constants.StatusCompleted || status == constants.StatusAuthorize
}
