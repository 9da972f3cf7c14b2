package ledger

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

var errNegativeAmount = errors.New("amount must not be negative")

// Entry is a transaction annotated with its parsed amount and display
// description.
type Entry struct {
	TransactionID int64
	Timestamp     time.Time
	Amount        decimal.Decimal // magnitude, never negative
	Factor        int
	Status        string
	Description   string
}

// Effect is the signed change the entry applies to its balance.
func (e Entry) Effect() decimal.Decimal {
	return e.Amount.Mul(decimal.NewFromInt(int64(e.Factor)))
}

// Group holds the entries of one currency in the order they were supplied.
type Group struct {
	Currency string
	Entries  []Entry
	Balance  decimal.Decimal
}

type Aggregation struct {
	Currencies []string // first-seen order
	Groups     map[string]*Group
}

func (a *Aggregation) Balances() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(a.Groups))
	for currency, g := range a.Groups {
		out[currency] = g.Balance
	}
	return out
}

// Aggregate partitions txs by currency and folds the settled ones into a
// balance per currency. txs must already be sorted newest first; the order is
// kept as is.
//
// An unparsable or negative amount aborts the aggregation with an
// *AmountError. A related name that cannot be resolved is replaced by a
// placeholder.
func (l *Ledger) Aggregate(ctx context.Context, txs []model.Transaction, names NameResolver) (*Aggregation, error) {
	agg := &Aggregation{Groups: make(map[string]*Group)}

	for _, tx := range txs {
		currency := tx.Currency
		if currency == "" {
			currency = constants.UnknownCurrency
		}

		group, ok := agg.Groups[currency]
		if !ok {
			group = &Group{Currency: currency, Balance: decimal.Zero}
			agg.Groups[currency] = group
			agg.Currencies = append(agg.Currencies, currency)
		}

		amount, err := parseAmount(tx.Amount)
		if err != nil {
			return nil, &AmountError{TransactionID: tx.ID, Currency: currency, Raw: tx.Amount, Err: err}
		}

		entry := Entry{
			TransactionID: tx.ID,
			Timestamp:     tx.Timestamp,
			Amount:        amount,
			Factor:        normalizeFactor(tx.TypeFactor),
			Status:        tx.Status,
		}

		if IsSettled(tx.Status) {
			group.Balance = group.Balance.Add(l.rules.For(currency).Round(entry.Effect()))
		}

		entry.Description = describe(ctx, tx, entry.Factor, names)
		group.Entries = append(group.Entries, entry)
	}

	return agg, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, errNegativeAmount
	}
	return d, nil
}

// normalizeFactor treats a missing factor as a credit.
func normalizeFactor(f int) int {
	if f == 0 {
		return 1
	}
	return f
}

func describe(ctx context.Context, tx model.Transaction, factor int, names NameResolver) string {
	if !needsName(tx) {
		if tx.TypeDescription == "" {
			return constants.MissingDescription
		}
		return tx.TypeDescription
	}

	name := constants.UnknownUser
	if resolved, err := resolveName(ctx, names, *tx.RelatedProfileID); err != nil {
		log := logger.FromContext(ctx)
		log.Warn().
			Err(err).
			Int64("transaction_id", tx.ID).
			Int64("related_profile_id", *tx.RelatedProfileID).
			Msg("using placeholder for related party")
	} else {
		name = resolved
	}

	if factor < 0 {
		return "to " + name
	}
	return "from " + name
}

func resolveName(ctx context.Context, names NameResolver, id int64) (string, error) {
	if names == nil {
		return "", ErrUnresolvedRelatedParty
	}
	name, err := names.ResolveName(ctx, id)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(name) == "" {
		return "", ErrUnresolvedRelatedParty
	}
	return name, nil
}
