package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/tally/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
)

// CreateTransaction inserts a transaction, looking up its currency, type and
// status by description.
func (s *Store) CreateTransaction(ctx context.Context, tx NewTransaction) (int64, error) {
	var factor any
	if tx.TypeFactor != 0 {
		factor = tx.TypeFactor
	}

	var newID int64
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO transactions (profile_id, timestamp, amount, mean_id, type_id, status_id, related_profile_id)
        VALUES (?, ?, ?,
            (SELECT id FROM transaction_means WHERE description = ?),
            (SELECT id FROM transaction_types WHERE description = ? AND factor IS ?),
            (SELECT id FROM transaction_statuses WHERE description = ?),
            ?)
        RETURNING id;
    `,
		tx.ProfileID, tx.Timestamp.UnixMilli(), tx.Amount,
		tx.Currency,
		tx.TypeDescription, factor,
		tx.Status,
		tx.RelatedProfileID,
	).Scan(&newID)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
			return 0, fmt.Errorf("failed to insert transaction (status %q, profile %d): %w", tx.Status, tx.ProfileID, ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return newID, nil
}

func (s *Store) GetTransactionsByProfile(ctx context.Context, profileID int64) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT t.id, t.profile_id, t.timestamp, t.amount,
               COALESCE(m.description, ''),
               COALESCE(ty.factor, 0),
               COALESCE(ty.description, ''),
               st.description,
               t.related_profile_id
        FROM transactions t
        LEFT JOIN transaction_means m ON m.id = t.mean_id
        LEFT JOIN transaction_types ty ON ty.id = t.type_id
        INNER JOIN transaction_statuses st ON st.id = t.status_id
        WHERE t.profile_id = ?
        ORDER BY t.timestamp DESC, t.id DESC
    `, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []model.Transaction
	for rows.Next() {
		var (
			tx       model.Transaction
			millis   int64
			relateID sql.NullInt64
		)
		err := rows.Scan(
			&tx.ID, &tx.ProfileID, &millis, &tx.Amount,
			&tx.Currency, &tx.TypeFactor, &tx.TypeDescription,
			&tx.Status, &relateID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		tx.Timestamp = time.UnixMilli(millis).UTC()
		if relateID.Valid {
			tx.RelatedProfileID = &relateID.Int64
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (s *Store) ListCurrencies(ctx context.Context) ([]string, error) {
	return s.listDescriptions(ctx, "SELECT description FROM transaction_means ORDER BY id")
}

func (s *Store) ListStatuses(ctx context.Context) ([]string, error) {
	return s.listDescriptions(ctx, "SELECT description FROM transaction_statuses ORDER BY id")
}

func (s *Store) ListTransactionTypes(ctx context.Context) ([]model.TransactionType, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, description, COALESCE(factor, 0)
        FROM transaction_types
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction types: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var types []model.TransactionType
	for rows.Next() {
		var t model.TransactionType
		if err := rows.Scan(&t.ID, &t.Description, &t.Factor); err != nil {
			return nil, fmt.Errorf("failed to scan transaction type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (s *Store) listDescriptions(ctx context.Context, query string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup table: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var out []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan lookup row: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
