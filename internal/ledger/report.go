package ledger

import (
	"context"

	"github.com/google/uuid"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Report is the outcome of one ledger build for a profile.
type Report struct {
	ID         uuid.UUID
	Currencies []string // first-seen order
	Balances   map[string]decimal.Decimal
	Rows       map[string][]Row

	entries int
	rules   Rules
}

// Build aggregates txs, then reconstructs every currency's rows concurrently.
// Related names are fetched once per distinct profile before aggregation.
func (l *Ledger) Build(ctx context.Context, txs []model.Transaction, names NameResolver) (*Report, error) {
	id := uuid.New()
	log := logger.FromContext(ctx).With().Str("report_id", id.String()).Logger()
	ctx = logger.WithContext(ctx, log)

	var table NameResolver
	if names != nil {
		table = Prefetch(ctx, txs, names, l.prefetchLimit)
	}

	agg, err := l.Aggregate(ctx, txs, table)
	if err != nil {
		return nil, err
	}

	rows := make([][]Row, len(agg.Currencies))
	g, gctx := errgroup.WithContext(ctx)
	for i, currency := range agg.Currencies {
		group := agg.Groups[currency]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = l.Reconstruct(currency, group.Entries, group.Balance)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		ID:         id,
		Currencies: agg.Currencies,
		Balances:   agg.Balances(),
		Rows:       make(map[string][]Row, len(agg.Currencies)),
		entries:    len(txs),
		rules:      l.rules,
	}
	for i, currency := range agg.Currencies {
		report.Rows[currency] = rows[i]
	}

	log.Debug().
		Int("transactions", report.entries).
		Int("rows", report.RowCount()).
		Strs("currencies", report.Currencies).
		Msg("ledger built")

	return report, nil
}

// Balance returns the current balance of currency, zero when it never
// appeared.
func (r *Report) Balance(currency string) decimal.Decimal {
	if b, ok := r.Balances[currency]; ok {
		return b
	}
	return decimal.Zero
}

func (r *Report) FormatBalance(currency string) string {
	return r.rules.For(currency).Format(r.Balance(currency))
}

// EntryCount is the number of transactions the report was built from,
// whatever their status.
func (r *Report) EntryCount() int {
	return r.entries
}

// RowCount is the number of displayed rows across all currencies.
func (r *Report) RowCount() int {
	n := 0
	for _, rows := range r.Rows {
		n += len(rows)
	}
	return n
}

// HasTransactions reports whether the profile has any transaction at all,
// including ones that are never displayed.
func (r *Report) HasTransactions() bool {
	return r.EntryCount() > 0
}
