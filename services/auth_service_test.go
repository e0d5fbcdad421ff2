// File: /services/auth_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"eventease-api/models"
)

type fakeUserStore struct {
	users    []models.User
	failSave bool
}

func (s *fakeUserStore) GetUsers(ctx context.Context) []models.User {
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *fakeUserStore) SaveUsers(ctx context.Context, users []models.User) error {
	if s.failSave {
		return errors.New("disk full")
	}
	s.users = users
	return nil
}

type fakeSessionStore struct {
	current *models.PublicUser
}

func (s *fakeSessionStore) GetCurrentUser(ctx context.Context) *models.PublicUser {
	return s.current
}

func (s *fakeSessionStore) SaveCurrentUser(ctx context.Context, user *models.PublicUser) error {
	s.current = user
	return nil
}

func (s *fakeSessionStore) ClearCurrentUser(ctx context.Context) error {
	s.current = nil
	return nil
}

func newTestAuthService(users *fakeUserStore, session *fakeSessionStore) *AuthService {
	return NewAuthService(users, session, zap.NewNop())
}

func TestRegisterLoginLogout(t *testing.T) {
	users := &fakeUserStore{}
	session := &fakeSessionStore{}
	svc := newTestAuthService(users, session)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "Ada Lovelace", "ada@example.com", "secret12")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if registered.ID == "" || registered.Email != "ada@example.com" {
		t.Fatalf("unexpected registered user: %+v", registered)
	}
	if session.current == nil || session.current.ID != registered.ID {
		t.Fatal("registration should start a session")
	}
	if len(users.users) != 1 {
		t.Fatalf("expected 1 persisted user, got %d", len(users.users))
	}
	if users.users[0].Password == "secret12" {
		t.Fatal("password must not be stored in clear")
	}

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if svc.CurrentUser(ctx) != nil {
		t.Fatal("logout should clear the current user")
	}

	if _, err := svc.Login(ctx, "ada@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password should fail with ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "secret12"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email should fail with ErrInvalidCredentials, got %v", err)
	}

	loggedIn, err := svc.Login(ctx, "ada@example.com", "secret12")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if loggedIn.ID != registered.ID {
		t.Error("login should return the registered account")
	}
	if current := svc.CurrentUser(ctx); current == nil || current.ID != registered.ID {
		t.Fatal("login should restore the session")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := &fakeUserStore{}
	session := &fakeSessionStore{}
	svc := newTestAuthService(users, session)
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ada", "ada@example.com", "secret12"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(ctx, "Imposter", "ada@example.com", "hunter22"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate email should fail with ErrEmailTaken, got %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("duplicate registration must not grow the collection, got %d users", len(users.users))
	}
}

func TestRegisterFailedPersistLeavesNoSession(t *testing.T) {
	users := &fakeUserStore{failSave: true}
	session := &fakeSessionStore{}
	svc := newTestAuthService(users, session)

	if _, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret12"); err == nil {
		t.Fatal("Register should fail when the store rejects the write")
	}
	if session.current != nil {
		t.Error("a failed registration must not start a session")
	}
}
