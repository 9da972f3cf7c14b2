package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hance08/tally/internal/logger"
	"github.com/hance08/tally/internal/store"
	"github.com/rs/zerolog"
)

// logContext returns a context whose logger writes JSON lines to the buffer.
func logContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return logger.WithContext(context.Background(), logger.NewWithWriter(&buf, zerolog.DebugLevel)), &buf
}

func assertLogged(t *testing.T, buf *bytes.Buffer, wants ...string) {
	t.Helper()
	out := buf.String()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %s", out, want)
		}
	}
}

func TestFindUser(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1, "jane@example.com", "+15550100", "Jane", "Doe")
	svc := NewUserService(repo)
	ctx := context.Background()

	tests := []struct {
		name       string
		identifier string
		kind       string
		wantErr    error
	}{
		{"email", "jane@example.com", "email", nil},
		{"email with spaces", " jane@example.com ", "email", nil},
		{"phone with spaces", "+1 555 0100", "phone", nil},
		{"user id", " 1 ", "userId", nil},
		{"unknown email", "john@example.com", "email", ErrUserNotFound},
		{"unknown id", "2", "userId", ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := svc.FindUser(ctx, tt.identifier, tt.kind)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindUser: %v", err)
			}
			if user.ProfileID != 1 {
				t.Errorf("ProfileID = %d, want 1", user.ProfileID)
			}
		})
	}
}

func TestFindUserLogs(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(3, "jane@example.com", "", "Jane", "Doe")
	ctx, buf := logContext(t)

	if _, err := NewUserService(repo).FindUser(ctx, "jane@example.com", "email"); err != nil {
		t.Fatalf("FindUser: %v", err)
	}
	assertLogged(t, buf, `"level":"debug"`, `"message":"user found"`, `"profile_id":3`, `"kind":"email"`)
}

func TestFindUserRejectsBadInput(t *testing.T) {
	svc := NewUserService(newFakeRepo())
	ctx := context.Background()

	if _, err := svc.FindUser(ctx, "a@b.c", "username"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := svc.FindUser(ctx, "  ", "email"); err == nil {
		t.Error("expected error for blank identifier")
	}
	if _, err := svc.FindUser(ctx, "abc", "userId"); err == nil {
		t.Error("expected error for non numeric id")
	}
}

func TestCreateUser(t *testing.T) {
	repo := newFakeRepo()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, store.NewUser{Email: " jane@example.com", Phone: "+1 555 0100", FirstName: " Jane ", LastName: "Doe"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Phone != "+15550100" || user.FirstName != "Jane" {
		t.Errorf("user = %+v", user)
	}

	if _, err := svc.CreateUser(ctx, store.NewUser{Email: "jane@example.com", FirstName: "J", LastName: "D"}); !errors.Is(err, store.ErrUserExists) {
		t.Errorf("duplicate err = %v, want ErrUserExists", err)
	}
	if _, err := svc.CreateUser(ctx, store.NewUser{FirstName: "No", LastName: "Contact"}); err == nil {
		t.Error("expected error without email and phone")
	}
	if _, err := svc.CreateUser(ctx, store.NewUser{Email: "x@example.com", LastName: "Doe"}); err == nil {
		t.Error("expected error without first name")
	}
}
