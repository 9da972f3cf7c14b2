package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrUnresolvedRelatedParty = errors.New("related party not resolved")
)

// AmountError identifies the transaction whose amount could not be used.
type AmountError struct {
	TransactionID int64
	Currency      string
	Raw           string
	Err           error
}

func (e *AmountError) Error() string {
	msg := fmt.Sprintf("transaction %d (%s): invalid amount %q", e.TransactionID, e.Currency, e.Raw)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *AmountError) Is(target error) bool { return target == ErrInvalidAmount }

func (e *AmountError) Unwrap() error { return e.Err }
