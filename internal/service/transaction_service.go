package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/validation"
)

var ErrUnknownLookup = errors.New("unknown value")

var timeNow = time.Now

type TransactionService struct {
	repo store.Repository
}

func NewTransactionService(repo store.Repository) *TransactionService {
	return &TransactionService{repo: repo}
}

// TransactionInput is a transaction as entered on the command line.
type TransactionInput struct {
	ProfileID        int64
	Timestamp        string
	Amount           string
	Currency         string
	Type             string
	Status           string
	RelatedProfileID int64
}

// Lookups are the values a transaction can reference.
type Lookups struct {
	Currencies []string
	Types      []model.TransactionType
	Statuses   []string
}

func (ts *TransactionService) GetLookups(ctx context.Context) (*Lookups, error) {
	currencies, err := ts.repo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	types, err := ts.repo.ListTransactionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transaction types: %w", err)
	}
	statuses, err := ts.repo.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return &Lookups{Currencies: currencies, Types: types, Statuses: statuses}, nil
}

// AddTransaction validates in against the lookup tables and stores it.
func (ts *TransactionService) AddTransaction(ctx context.Context, in TransactionInput) (int64, error) {
	if err := validation.ValidateAmount(in.Amount); err != nil {
		return 0, err
	}
	timestamp, err := validation.ParseTimestamp(in.Timestamp, timeNow())
	if err != nil {
		return 0, err
	}

	lookups, err := ts.GetLookups(ctx)
	if err != nil {
		return 0, err
	}

	if in.Currency != "" && !slices.Contains(lookups.Currencies, in.Currency) {
		return 0, fmt.Errorf("%w: currency '%s'", ErrUnknownLookup, in.Currency)
	}
	if !slices.Contains(lookups.Statuses, in.Status) {
		return 0, fmt.Errorf("%w: status '%s'", ErrUnknownLookup, in.Status)
	}

	typ, err := findType(lookups.Types, in.Type)
	if err != nil {
		return 0, err
	}

	var related *int64
	if in.RelatedProfileID != 0 {
		if _, err := ts.repo.FindUserByProfileID(ctx, in.RelatedProfileID); err != nil {
			return 0, fmt.Errorf("related user %d: %w", in.RelatedProfileID, err)
		}
		related = &in.RelatedProfileID
	}

	var id int64
	err = ts.repo.ExecTx(ctx, func(repo store.Repository) error {
		if _, err := repo.FindUserByProfileID(ctx, in.ProfileID); err != nil {
			return fmt.Errorf("user %d: %w", in.ProfileID, err)
		}
		var err error
		id, err = repo.CreateTransaction(ctx, store.NewTransaction{
			ProfileID:        in.ProfileID,
			Timestamp:        timestamp,
			Amount:           strings.TrimSpace(in.Amount),
			Currency:         in.Currency,
			TypeDescription:  typ.Description,
			TypeFactor:       typ.Factor,
			Status:           in.Status,
			RelatedProfileID: related,
		})
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add transaction: %w", err)
	}

	log := logger.FromContext(ctx)
	log.Info().
		Int64("transaction_id", id).
		Int64("profile_id", in.ProfileID).
		Str("currency", in.Currency).
		Msg("transaction added")

	return id, nil
}

// ListTransactions returns the raw records of a profile, newest first,
// whatever their status.
func (ts *TransactionService) ListTransactions(ctx context.Context, profileID int64) ([]model.Transaction, error) {
	txs, err := ts.repo.GetTransactionsByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// findType matches a type by description. "Send Money" exists with both
// factors, so "Send Money-" and "Send Money+" pick one; a bare name picks
// the first match.
func findType(types []model.TransactionType, name string) (model.TransactionType, error) {
	desc, factor := name, 0
	switch {
	case strings.HasSuffix(name, "+"):
		desc, factor = strings.TrimSuffix(name, "+"), 1
	case strings.HasSuffix(name, "-"):
		desc, factor = strings.TrimSuffix(name, "-"), -1
	}
	desc = strings.TrimSpace(desc)

	for _, t := range types {
		if t.Description != desc {
			continue
		}
		if factor == 0 || t.Factor == factor {
			return t, nil
		}
	}
	return model.TransactionType{}, fmt.Errorf("%w: transaction type '%s'", ErrUnknownLookup, name)
}

// IsTransferType reports whether a type label, as accepted by AddTransaction,
// names a transfer between two users.
func IsTransferType(label string) bool {
	return ledger.IsTransfer(strings.TrimSpace(strings.TrimRight(label, "+-")))
}

// TypeLabel is the inverse of findType, used to list types in prompts.
func TypeLabel(t model.TransactionType, types []model.TransactionType) string {
	n := 0
	for _, other := range types {
		if other.Description == t.Description {
			n++
		}
	}
	if n < 2 {
		return t.Description
	}
	if t.Factor < 0 {
		return t.Description + "-"
	}
	return t.Description + "+"
}
