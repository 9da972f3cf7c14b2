package store

import "time"

type NewUser struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
}

// NewTransaction references its currency, type and status by description.
// An empty Currency stores the transaction without a currency.
type NewTransaction struct {
	ProfileID        int64
	Timestamp        time.Time
	Amount           string
	Currency         string
	TypeDescription  string
	TypeFactor       int
	Status           string
	RelatedProfileID *int64
}
