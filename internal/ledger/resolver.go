package ledger

import (
	"context"
	"fmt"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/model"
	"golang.org/x/sync/errgroup"
)

// NameResolver returns the display name of a related profile.
type NameResolver interface {
	ResolveName(ctx context.Context, profileID int64) (string, error)
}

type ResolverFunc func(ctx context.Context, profileID int64) (string, error)

func (f ResolverFunc) ResolveName(ctx context.Context, profileID int64) (string, error) {
	return f(ctx, profileID)
}

// NameTable is a NameResolver over names fetched ahead of time.
type NameTable map[int64]string

func (t NameTable) ResolveName(_ context.Context, profileID int64) (string, error) {
	if name, ok := t[profileID]; ok {
		return name, nil
	}
	return "", fmt.Errorf("profile %d: %w", profileID, ErrUnresolvedRelatedParty)
}

// IsTransfer reports whether a transaction type moves value between two users.
func IsTransfer(typeDescription string) bool {
	return typeDescription == constants.TypeSendMoney || typeDescription == constants.TypeSendCrypto
}

// needsName reports whether the description of tx depends on a related name.
func needsName(tx model.Transaction) bool {
	return tx.RelatedProfileID != nil && IsTransfer(tx.TypeDescription)
}

// Prefetch resolves every distinct related profile referenced by a transfer
// in txs, at most limit lookups at a time. Lookups that fail are left out of
// the table.
func Prefetch(ctx context.Context, txs []model.Transaction, names NameResolver, limit int) NameTable {
	log := logger.FromContext(ctx)

	seen := make(map[int64]bool)
	var ids []int64
	for _, tx := range txs {
		if !needsName(tx) || seen[*tx.RelatedProfileID] {
			continue
		}
		seen[*tx.RelatedProfileID] = true
		ids = append(ids, *tx.RelatedProfileID)
	}

	resolved := make([]string, len(ids))
	ok := make([]bool, len(ids))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, id := range ids {
		g.Go(func() error {
			name, err := names.ResolveName(ctx, id)
			if err != nil {
				log.Debug().Err(err).Int64("profile_id", id).Msg("name lookup failed")
				return nil
			}
			resolved[i], ok[i] = name, true
			return nil
		})
	}
	_ = g.Wait()

	table := make(NameTable, len(ids))
	for i, id := range ids {
		if ok[i] {
			table[id] = resolved[i]
		}
	}
	return table
}
