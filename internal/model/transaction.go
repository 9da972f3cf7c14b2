package model

import "time"

// Transaction is a single movement on a profile as read from storage.
//
// Amount is kept as the raw stored text, the ledger parses it. Empty
// Currency and TypeDescription mean the lookup row was missing, and a zero
// TypeFactor means the transaction type carried no factor.
type Transaction struct {
	ID               int64
	ProfileID        int64
	Timestamp        time.Time
	Amount           string
	Currency         string
	TypeFactor       int
	TypeDescription  string
	Status           string
	RelatedProfileID *int64
}

// TransactionType is a named direction a transaction can take.
type TransactionType struct {
	ID          int64
	Description string
	Factor      int
}
