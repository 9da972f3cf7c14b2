package service

import (
	"context"
	"sync"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
)

// fakeRepo is an in-memory store.Repository.
type fakeRepo struct {
	mu        sync.Mutex
	users     []*model.User
	txs       []model.Transaction
	nameCalls int
	txErr     error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{} }

func (f *fakeRepo) addUser(profileID int64, email, phone, first, last string) *model.User {
	u := &model.User{
		AccountID: profileID + 100,
		ProfileID: profileID,
		Email:     email,
		Phone:     phone,
		FirstName: first,
		LastName:  last,
	}
	f.users = append(f.users, u)
	return u
}

func (f *fakeRepo) CreateUser(_ context.Context, u store.NewUser) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if (u.Email != "" && existing.Email == u.Email) || (u.Phone != "" && existing.Phone == u.Phone) {
			return nil, store.ErrUserExists
		}
	}
	id := int64(len(f.users) + 1)
	user := &model.User{AccountID: id, ProfileID: id, Email: u.Email, Phone: u.Phone, FirstName: u.FirstName, LastName: u.LastName}
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeRepo) find(match func(*model.User) bool) (*model.User, error) {
	for _, u := range f.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, store.ErrRecordNotFound
}

func (f *fakeRepo) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.Email == email })
}

func (f *fakeRepo) FindUserByPhone(_ context.Context, phone string) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.Phone == phone })
}

func (f *fakeRepo) FindUserByProfileID(_ context.Context, id int64) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.ProfileID == id })
}

func (f *fakeRepo) GetProfileName(_ context.Context, id int64) (string, string, error) {
	f.mu.Lock()
	f.nameCalls++
	f.mu.Unlock()
	u, err := f.find(func(u *model.User) bool { return u.ProfileID == id })
	if err != nil {
		return "", "", err
	}
	return u.FirstName, u.LastName, nil
}

func (f *fakeRepo) CreateTransaction(_ context.Context, tx store.NewTransaction) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := int64(len(f.txs) + 1)
	f.txs = append(f.txs, model.Transaction{
		ID:               id,
		ProfileID:        tx.ProfileID,
		Timestamp:        tx.Timestamp,
		Amount:           tx.Amount,
		Currency:         tx.Currency,
		TypeFactor:       tx.TypeFactor,
		TypeDescription:  tx.TypeDescription,
		Status:           tx.Status,
		RelatedProfileID: tx.RelatedProfileID,
	})
	return id, nil
}

// GetTransactionsByProfile returns the profile's transactions in reverse
// insertion order; tests insert them oldest first.
func (f *fakeRepo) GetTransactionsByProfile(_ context.Context, profileID int64) ([]model.Transaction, error) {
	if f.txErr != nil {
		return nil, f.txErr
	}
	var out []model.Transaction
	for i := len(f.txs) - 1; i >= 0; i-- {
		if f.txs[i].ProfileID == profileID {
			out = append(out, f.txs[i])
		}
	}
	return out, nil
}

func (f *fakeRepo) ListCurrencies(context.Context) ([]string, error) {
	return []string{"Cash", "Bitcoin", "USDC"}, nil
}

func (f *fakeRepo) ListTransactionTypes(context.Context) ([]model.TransactionType, error) {
	return []model.TransactionType{
		{ID: 1, Description: "Deposit", Factor: 1},
		{ID: 2, Description: "Withdrawal", Factor: -1},
		{ID: 3, Description: "Send Money", Factor: -1},
		{ID: 4, Description: "Send Money", Factor: 1},
	}, nil
}

func (f *fakeRepo) ListStatuses(context.Context) ([]string, error) {
	return []string{"Completed", "Authorize", "Pending", "Declined", "Expired", "Refunded"}, nil
}

func (f *fakeRepo) ExecTx(_ context.Context, fn func(store.Repository) error) error {
	return fn(f)
}

func (f *fakeRepo) Close() error { return nil }

var day0 = time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

func (f *fakeRepo) addTx(profileID int64, hoursAgo int, currency, amount string, factor int, typ, status string, related *int64) {
	_, _ = f.CreateTransaction(context.Background(), store.NewTransaction{
		ProfileID:        profileID,
		Timestamp:        day0.Add(-time.Duration(hoursAgo) * time.Hour),
		Amount:           amount,
		Currency:         currency,
		TypeDescription:  typ,
		TypeFactor:       factor,
		Status:           status,
		RelatedProfileID: related,
	})
}

func ptr(v int64) *int64 { return &v }
