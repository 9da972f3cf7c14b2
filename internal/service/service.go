package service

import (
	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/store"
)

type Service struct {
	Config      *config.Config
	Ledger      *LedgerService
	User        *UserService
	Transaction *TransactionService
}

func NewService(repo store.Repository, cfg *config.Config) (*Service, error) {
	ledgerSvc, err := NewLedgerService(repo, cfg)
	if err != nil {
		return nil, err
	}

	return &Service{
		Config:      cfg,
		Ledger:      ledgerSvc,
		User:        NewUserService(repo),
		Transaction: NewTransactionService(repo),
	}, nil
}
