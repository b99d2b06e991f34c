package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stylencms/internal/db"
)

func TestAuthenticate(t *testing.T) {
	st := setupServiceTestStore(t)
	svc := NewUserService(st.DB)
	ctx := context.Background()

	if err := svc.CreateUser("editor", "s3cret"); err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if err := svc.CreateUser("editor", "other"); !errors.Is(err, db.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	user, err := svc.Authenticate(ctx, "editor", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user.Username != "editor" {
		t.Fatalf("unexpected user %s", user.Username)
	}

	if _, err := svc.Authenticate(ctx, "editor", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, "ghost", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
