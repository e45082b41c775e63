package service_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/msomdec/skill-swap/internal/domain"
	"github.com/msomdec/skill-swap/internal/repository/sqlite"
	"github.com/msomdec/skill-swap/internal/service"
	"github.com/msomdec/skill-swap/internal/store"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

// Use cost 4 for fast tests.
const testBcryptCost = 4

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	st := store.New(db.Records(), testBcryptCost)
	if err := st.Initialize(context.Background()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	return st
}

func newTestAuthService(t *testing.T) (*service.AuthService, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	return service.NewAuthService(st, testJWTSecret), st
}

// loginAs establishes a session for a seeded user and returns it.
func loginAs(t *testing.T, st *store.Store, email string) *domain.User {
	t.Helper()
	ok, err := st.Login(context.Background(), email, store.SentinelPassword)
	if err != nil || !ok {
		t.Fatalf("login %s: ok=%v err=%v", email, ok, err)
	}
	return st.Snapshot().Session
}

func TestAuthService_Login_Success(t *testing.T) {
	auth, st := newTestAuthService(t)
	ctx := context.Background()

	token, user, err := auth.Login(ctx, "marc@example.com", store.SentinelPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if user == nil || user.Email != "marc@example.com" {
		t.Fatalf("expected session user returned from login, got %+v", user)
	}
	if !st.Snapshot().IsLoggedIn {
		t.Fatal("expected store session")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	auth, _ := newTestAuthService(t)

	_, _, err := auth.Login(context.Background(), "marc@example.com", "wrongpassword")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	auth, _ := newTestAuthService(t)

	_, _, err := auth.Login(context.Background(), "", "")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Login_BannedUser(t *testing.T) {
	auth, st := newTestAuthService(t)
	ctx := context.Background()

	if err := st.BanUser(ctx, 2); err != nil {
		t.Fatalf("BanUser: %v", err)
	}

	_, _, err := auth.Login(ctx, "sarah@example.com", store.SentinelPassword)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for banned user, got %v", err)
	}
	if st.Snapshot().IsLoggedIn {
		t.Fatal("expected no session for banned user")
	}
}

func TestAuthService_Login_NewIdentity(t *testing.T) {
	auth, st := newTestAuthService(t)

	token, _, err := auth.Login(context.Background(), "guest@example.com", "supersecret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if _, found := st.Snapshot().UserByID(userID); !found {
		t.Fatal("expected synthesized user in directory")
	}
}

func TestAuthService_JWT_GenerateAndValidate(t *testing.T) {
	auth, st := newTestAuthService(t)
	ctx := context.Background()

	token, _, err := auth.Login(ctx, "sarah@example.com", store.SentinelPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	userID, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if session := st.Snapshot().Session; session == nil || userID != session.ID {
		t.Fatalf("expected token subject to match session user, got %d", userID)
	}
}

func TestAuthService_JWT_InvalidToken(t *testing.T) {
	auth, _ := newTestAuthService(t)

	_, err := auth.ValidateToken("not-a-valid-jwt")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_JWT_TamperedToken(t *testing.T) {
	auth, _ := newTestAuthService(t)

	token, _, err := auth.Login(context.Background(), "sarah@example.com", store.SentinelPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// Flip several characters in the signature.
	tampered := token[:len(token)-5] + "XXXXX"
	_, err = auth.ValidateToken(tampered)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for tampered token, got %v", err)
	}
}

func TestAuthService_JWT_WrongSecret(t *testing.T) {
	auth1, _ := newTestAuthService(t)

	token, _, err := auth1.Login(context.Background(), "sarah@example.com", store.SentinelPassword)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	auth2 := service.NewAuthService(newTestStore(t), "different-secret")
	_, err = auth2.ValidateToken(token)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for wrong secret, got %v", err)
	}
}

func TestAuthService_UserByID(t *testing.T) {
	auth, _ := newTestAuthService(t)

	user, err := auth.UserByID(1)
	if err != nil {
		t.Fatalf("UserByID: %v", err)
	}
	if user.Email != "marc@example.com" {
		t.Fatalf("expected marc@example.com, got %s", user.Email)
	}

	_, err = auth.UserByID(9999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
