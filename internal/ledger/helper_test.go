package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/shopspring/decimal"
)

var day0 = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

// txAt builds a transaction dated n hours before day0, so that a larger n is
// older.
func txAt(id int64, hoursAgo int, currency, amount string, factor int, typ, status string) model.Transaction {
	return model.Transaction{
		ID:              id,
		ProfileID:       1,
		Timestamp:       day0.Add(-time.Duration(hoursAgo) * time.Hour),
		Amount:          amount,
		Currency:        currency,
		TypeFactor:      factor,
		TypeDescription: typ,
		Status:          status,
	}
}

func related(tx model.Transaction, id int64) model.Transaction {
	tx.RelatedProfileID = &id
	return tx
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(t, want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func mustAggregate(t *testing.T, l *Ledger, txs []model.Transaction, names NameResolver) *Aggregation {
	t.Helper()
	agg, err := l.Aggregate(context.Background(), txs, names)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	return agg
}

// countingResolver answers from a fixed table and records each lookup.
type countingResolver struct {
	mu    sync.Mutex
	names map[int64]string
	calls map[int64]int
}

func newCountingResolver(names map[int64]string) *countingResolver {
	return &countingResolver{names: names, calls: make(map[int64]int)}
}

func (r *countingResolver) ResolveName(_ context.Context, id int64) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[id]++
	if name, ok := r.names[id]; ok {
		return name, nil
	}
	return "", ErrUnresolvedRelatedParty
}

func (r *countingResolver) total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		n += c
	}
	return n
}
