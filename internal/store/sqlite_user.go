package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/tally/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
)

const selectUser = `
    SELECT a.id, p.id, COALESCE(a.email, ''), COALESCE(a.phone, ''), p.first_name, p.last_name
    FROM user_accounts a
    INNER JOIN user_profiles p ON p.account_id = a.id
`

// CreateUser inserts the account and its profile together.
func (s *Store) CreateUser(ctx context.Context, u NewUser) (*model.User, error) {
	if _, inTx := s.db.(*sql.Tx); inTx {
		return s.insertUser(ctx, u)
	}

	var user *model.User
	err := s.ExecTx(ctx, func(r Repository) error {
		var err error
		user, err = r.(*Store).insertUser(ctx, u)
		return err
	})
	return user, err
}

func (s *Store) insertUser(ctx context.Context, u NewUser) (*model.User, error) {
	var accountID int64
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO user_accounts (email, phone)
        VALUES (?, ?)
        RETURNING id;
    `, nullString(u.Email), nullString(u.Phone)).Scan(&accountID)
	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) && errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
			return nil, fmt.Errorf("failed to create user '%s': %w", u.Email+u.Phone, ErrUserExists)
		}
		return nil, fmt.Errorf("failed to insert user account: %w", err)
	}

	var profileID int64
	err = s.db.QueryRowContext(ctx, `
        INSERT INTO user_profiles (account_id, first_name, last_name)
        VALUES (?, ?, ?)
        RETURNING id;
    `, accountID, u.FirstName, u.LastName).Scan(&profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user profile: %w", err)
	}

	return &model.User{
		AccountID: accountID,
		ProfileID: profileID,
		Email:     u.Email,
		Phone:     u.Phone,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}, nil
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.findUser(ctx, "a.email = ?", email)
}

func (s *Store) FindUserByPhone(ctx context.Context, phone string) (*model.User, error) {
	return s.findUser(ctx, "a.phone = ?", phone)
}

func (s *Store) FindUserByProfileID(ctx context.Context, profileID int64) (*model.User, error) {
	return s.findUser(ctx, "p.id = ?", profileID)
}

func (s *Store) findUser(ctx context.Context, where string, arg any) (*model.User, error) {
	row := s.db.QueryRowContext(ctx, selectUser+"WHERE "+where, arg)

	u := &model.User{}
	err := row.Scan(&u.AccountID, &u.ProfileID, &u.Email, &u.Phone, &u.FirstName, &u.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %v: %w", arg, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query user %v: %w", arg, err)
	}
	return u, nil
}

func (s *Store) GetProfileName(ctx context.Context, profileID int64) (string, string, error) {
	var first, last string
	err := s.db.QueryRowContext(ctx,
		"SELECT first_name, last_name FROM user_profiles WHERE id = ?", profileID,
	).Scan(&first, &last)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", "", fmt.Errorf("profile %d: %w", profileID, ErrRecordNotFound)
		}
		return "", "", fmt.Errorf("failed to query profile %d: %w", profileID, err)
	}
	return first, last, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
