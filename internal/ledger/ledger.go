// Package ledger turns the flat transaction list of one profile into
// per-currency balances and ledger rows.
//
// Balances are folded forward from the transactions, rounding each settled
// transaction with the currency's rule before adding it. Rows are produced by
// walking the same transactions newest first and undoing each one from the
// current balance, so no historical balance ever needs to be stored.
package ledger

type Ledger struct {
	rules         Rules
	prefetchLimit int
}

type Option func(*Ledger)

// WithPrefetchLimit bounds the number of concurrent name lookups made by
// Build. Zero or less means unbounded.
func WithPrefetchLimit(n int) Option {
	return func(l *Ledger) { l.prefetchLimit = n }
}

func New(rules Rules, opts ...Option) *Ledger {
	l := &Ledger{rules: rules, prefetchLimit: 8}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Rules returns the rounding rules the ledger was built with.
func (l *Ledger) Rules() Rules {
	return l.rules
}
