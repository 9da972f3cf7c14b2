package ledger

import (
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/shopspring/decimal"
)

// Balances closer to zero than this are shown as zero.
var snapThreshold = decimal.New(1, -6)

// Row is one displayed line of a currency ledger.
type Row struct {
	TransactionID int64
	Timestamp     time.Time
	Description   string
	Debit         decimal.NullDecimal
	Credit        decimal.NullDecimal
	Status        string
	Balance       decimal.Decimal

	rule Rule
}

func (r Row) Date() string { return r.Timestamp.UTC().Format(constants.DateFormat) }
func (r Row) Time() string { return r.Timestamp.UTC().Format(constants.TimeFormat) }

// BalanceString renders Balance with the currency's number of places.
func (r Row) BalanceString() string { return r.rule.Format(r.Balance) }

// DebitString returns the debited amount, or "" when the row is a credit.
func (r Row) DebitString() string {
	if !r.Debit.Valid {
		return ""
	}
	return r.Debit.Decimal.String()
}

// CreditString returns the credited amount, or "" when the row is a debit.
func (r Row) CreditString() string {
	if !r.Credit.Valid {
		return ""
	}
	return r.Credit.Decimal.String()
}

// Reconstruct derives the ledger rows of one currency from its entries, newest
// first, and its current balance.
//
// The running balance starts at current. Each displayed entry is shown with
// the running balance, then its effect is undone before moving to the next
// (older) entry. Entries that are not displayed are skipped and leave the
// running balance untouched.
func (l *Ledger) Reconstruct(currency string, entries []Entry, current decimal.Decimal) []Row {
	rule := l.rules.For(currency)
	rows := make([]Row, 0, len(entries))

	running := current
	for _, e := range entries {
		if !IsDisplayed(e.Status) {
			continue
		}

		shown := decimal.Zero
		if running.Abs().GreaterThanOrEqual(snapThreshold) {
			shown = rule.Round(running)
		}

		row := Row{
			TransactionID: e.TransactionID,
			Timestamp:     e.Timestamp,
			Description:   e.Description,
			Status:        e.Status,
			Balance:       shown,
			rule:          rule,
		}
		if e.Factor < 0 {
			row.Debit = decimal.NewNullDecimal(e.Amount)
		} else {
			row.Credit = decimal.NewNullDecimal(e.Amount)
		}
		rows = append(rows, row)

		running = running.Sub(e.Effect())
	}

	return rows
}
