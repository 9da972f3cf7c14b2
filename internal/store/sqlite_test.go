package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/tally/internal/model"
)

// newTestStore opens a fresh database migrated with the repository's own
// migrations folder.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tally.db")
	s, err := NewStore(dbPath, os.DirFS(filepath.Join("..", "..")))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustCreateUser(t *testing.T, s *Store, u NewUser) *model.User {
	t.Helper()
	user, err := s.CreateUser(context.Background(), u)
	if err != nil {
		t.Fatalf("CreateUser(%+v): %v", u, err)
	}
	return user
}

func TestCreateAndFindUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := mustCreateUser(t, s, NewUser{Email: "jane@example.com", Phone: "+15550100", FirstName: "Jane", LastName: "Doe"})

	byEmail, err := s.FindUserByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail: %v", err)
	}
	byPhone, err := s.FindUserByPhone(ctx, "+15550100")
	if err != nil {
		t.Fatalf("FindUserByPhone: %v", err)
	}
	byProfile, err := s.FindUserByProfileID(ctx, created.ProfileID)
	if err != nil {
		t.Fatalf("FindUserByProfileID: %v", err)
	}

	for _, u := range []*model.User{byEmail, byPhone, byProfile} {
		if *u != *created {
			t.Errorf("found %+v, want %+v", u, created)
		}
	}
	if created.FullName() != "Jane Doe" {
		t.Errorf("FullName = %q", created.FullName())
	}
}

func TestFindUser_NotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.FindUserByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestCreateUser_Duplicate(t *testing.T) {
	s := newTestStore(t)
	mustCreateUser(t, s, NewUser{Email: "jane@example.com", FirstName: "Jane"})

	_, err := s.CreateUser(context.Background(), NewUser{Email: "jane@example.com", FirstName: "Other"})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("err = %v, want ErrUserExists", err)
	}
}

func TestCreateUser_EmptyContactsDoNotCollide(t *testing.T) {
	s := newTestStore(t)
	mustCreateUser(t, s, NewUser{FirstName: "A"})
	mustCreateUser(t, s, NewUser{FirstName: "B"})
}

func TestGetProfileName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := mustCreateUser(t, s, NewUser{Email: "john@example.com", FirstName: "John", LastName: "Roe"})

	first, last, err := s.GetProfileName(ctx, u.ProfileID)
	if err != nil {
		t.Fatalf("GetProfileName: %v", err)
	}
	if first != "John" || last != "Roe" {
		t.Errorf("name = %q %q", first, last)
	}

	if _, _, err := s.GetProfileName(ctx, 999); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestTransactionsByProfile(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	jane := mustCreateUser(t, s, NewUser{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"})
	john := mustCreateUser(t, s, NewUser{Email: "john@example.com", FirstName: "John", LastName: "Roe"})

	base := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	inputs := []NewTransaction{
		{ProfileID: jane.ProfileID, Timestamp: base, Amount: "10.00", Currency: "Cash", TypeDescription: "Deposit", TypeFactor: 1, Status: "Completed"},
		{ProfileID: jane.ProfileID, Timestamp: base.Add(2 * time.Hour), Amount: "3.00", Currency: "Cash", TypeDescription: "Send Money", TypeFactor: -1, Status: "Completed", RelatedProfileID: &john.ProfileID},
		{ProfileID: jane.ProfileID, Timestamp: base.Add(time.Hour), Amount: "0.5", Currency: "", TypeDescription: "", Status: "Pending"},
		{ProfileID: john.ProfileID, Timestamp: base, Amount: "3.00", Currency: "Cash", TypeDescription: "Send Money", TypeFactor: 1, Status: "Completed", RelatedProfileID: &jane.ProfileID},
	}
	for _, in := range inputs {
		if _, err := s.CreateTransaction(ctx, in); err != nil {
			t.Fatalf("CreateTransaction(%+v): %v", in, err)
		}
	}

	txs, err := s.GetTransactionsByProfile(ctx, jane.ProfileID)
	if err != nil {
		t.Fatalf("GetTransactionsByProfile: %v", err)
	}
	if len(txs) != 3 {
		t.Fatalf("got %d transactions, want 3", len(txs))
	}

	// newest first
	if txs[0].Amount != "3.00" || txs[1].Amount != "0.5" || txs[2].Amount != "10.00" {
		t.Errorf("order = %s, %s, %s", txs[0].Amount, txs[1].Amount, txs[2].Amount)
	}
	if !txs[0].Timestamp.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("timestamp = %v", txs[0].Timestamp)
	}
	if txs[0].TypeFactor != -1 || txs[0].TypeDescription != "Send Money" || txs[0].Currency != "Cash" {
		t.Errorf("send row = %+v", txs[0])
	}
	if txs[0].RelatedProfileID == nil || *txs[0].RelatedProfileID != john.ProfileID {
		t.Errorf("related = %v, want %d", txs[0].RelatedProfileID, john.ProfileID)
	}
	if txs[1].Currency != "" || txs[1].TypeDescription != "" || txs[1].TypeFactor != 0 || txs[1].Status != "Pending" {
		t.Errorf("bare row = %+v", txs[1])
	}
	if txs[2].RelatedProfileID != nil {
		t.Errorf("deposit has related profile %d", *txs[2].RelatedProfileID)
	}
}

func TestCreateTransaction_UnknownStatus(t *testing.T) {
	s := newTestStore(t)
	u := mustCreateUser(t, s, NewUser{Email: "jane@example.com"})

	_, err := s.CreateTransaction(context.Background(), NewTransaction{
		ProfileID: u.ProfileID, Timestamp: time.Now(), Amount: "1", Currency: "Cash",
		TypeDescription: "Deposit", TypeFactor: 1, Status: "Lost",
	})
	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("err = %v, want ErrConstraintViolation", err)
	}
}

func TestLookups(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	currencies, err := s.ListCurrencies(ctx)
	if err != nil {
		t.Fatalf("ListCurrencies: %v", err)
	}
	if len(currencies) != 9 || currencies[0] != "Cash" {
		t.Errorf("currencies = %v", currencies)
	}

	statuses, err := s.ListStatuses(ctx)
	if err != nil {
		t.Fatalf("ListStatuses: %v", err)
	}
	if len(statuses) < 5 {
		t.Errorf("statuses = %v", statuses)
	}

	types, err := s.ListTransactionTypes(ctx)
	if err != nil {
		t.Fatalf("ListTransactionTypes: %v", err)
	}
	var sendOut, sendIn bool
	for _, ty := range types {
		if ty.Description == "Send Money" && ty.Factor == -1 {
			sendOut = true
		}
		if ty.Description == "Send Money" && ty.Factor == 1 {
			sendIn = true
		}
	}
	if !sendOut || !sendIn {
		t.Errorf("Send Money types missing in %v", types)
	}
}

func TestExecTx_RollsBack(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.ExecTx(ctx, func(r Repository) error {
		if _, err := r.CreateUser(ctx, NewUser{Email: "temp@example.com"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if _, err := s.FindUserByEmail(ctx, "temp@example.com"); !errors.Is(err, ErrRecordNotFound) {
		t.Errorf("user survived rollback: err = %v", err)
	}
}
