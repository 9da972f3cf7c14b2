package store

import (
	"context"

	"github.com/hance08/tally/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u NewUser) (*model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByPhone(ctx context.Context, phone string) (*model.User, error)
	FindUserByProfileID(ctx context.Context, profileID int64) (*model.User, error)
	GetProfileName(ctx context.Context, profileID int64) (firstName, lastName string, err error)
}

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx NewTransaction) (int64, error)
	// GetTransactionsByProfile returns every transaction of a profile, newest
	// first.
	GetTransactionsByProfile(ctx context.Context, profileID int64) ([]model.Transaction, error)

	ListCurrencies(ctx context.Context) ([]string, error)
	ListTransactionTypes(ctx context.Context) ([]model.TransactionType, error)
	ListStatuses(ctx context.Context) ([]string, error)
}

type Repository interface {
	UserRepository
	TransactionRepository

	ExecTx(ctx context.Context, fn func(Repository) error) error
	Close() error
}
