package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

type authFixture struct {
	repo     *stubAccountRepo
	store    *stubSessionStore
	pub      *stubPublisher
	sessions *SessionService
	svc      *AuthService
}

func newAuthFixture() *authFixture {
	repo := newStubAccountRepo()
	store := newStubSessionStore()
	pub := &stubPublisher{}
	sessions := newSessionSvc(repo, store)
	hasher := NewArgon2Hasher("test-pepper", testArgon2Params)
	return &authFixture{
		repo:     repo,
		store:    store,
		pub:      pub,
		sessions: sessions,
		svc:      NewAuthService(repo, sessions, hasher, pub, zerolog.Nop()),
	}
}

func aliceInput() ports.RegisterInput {
	return ports.RegisterInput{
		Role:            domain.RoleReader,
		Username:        "alice",
		Password:        "Secret1!",
		ConfirmPassword: "Secret1!",
	}
}

func TestAuthService_Register_ThenVerify(t *testing.T) {
	f := newAuthFixture()

	acc, issued, err := f.svc.Register(context.Background(), aliceInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if acc.PasswordHash == "Secret1!" || acc.PasswordHash == "" {
		t.Fatalf("expected password to be hashed")
	}
	if acc.Shelf == nil || len(acc.Shelf) != 0 {
		t.Fatalf("expected empty shelf, got %#v", acc.Shelf)
	}
	if issued == nil || issued.Session.AccountID != acc.ID || issued.Session.Identifier != "alice" {
		t.Fatalf("registration must establish a session for alice, got %+v", issued)
	}

	got, err := f.svc.Verify(context.Background(), domain.RoleReader, "alice", "Secret1!")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got.ID != acc.ID {
		t.Fatalf("expected principal %s, got %s", acc.ID, got.ID)
	}

	if _, err := f.svc.Verify(context.Background(), domain.RoleReader, "alice", "wrong"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAuthService_Verify_FailuresAreIndistinguishable(t *testing.T) {
	f := newAuthFixture()
	if _, _, err := f.svc.Register(context.Background(), aliceInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, errUnknown := f.svc.Verify(context.Background(), domain.RoleReader, "bob", "Secret1!")
	_, errWrong := f.svc.Verify(context.Background(), domain.RoleReader, "alice", "nope")
	if errUnknown != errWrong {
		t.Fatalf("expected identical errors, got %v and %v", errUnknown, errWrong)
	}

	// Same identifier under another role is a different principal.
	if _, err := f.svc.Verify(context.Background(), domain.RoleClient, "alice", "Secret1!"); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound across roles, got %v", err)
	}
}

func TestAuthService_Register_Conflict(t *testing.T) {
	f := newAuthFixture()
	if _, _, err := f.svc.Register(context.Background(), aliceInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	before := f.repo.count()

	in := aliceInput()
	in.Password, in.ConfirmPassword = "Other2!", "Other2!"
	if _, _, err := f.svc.Register(context.Background(), in); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
	if f.repo.count() != before {
		t.Fatalf("conflicting registration must not create a record")
	}
}

func TestAuthService_Register_ConflictCheckedBeforeConfirmation(t *testing.T) {
	f := newAuthFixture()
	if _, _, err := f.svc.Register(context.Background(), aliceInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	in := aliceInput()
	in.ConfirmPassword = "different"
	if _, _, err := f.svc.Register(context.Background(), in); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists first, got %v", err)
	}
}

func TestAuthService_Register_PasswordMismatch(t *testing.T) {
	f := newAuthFixture()

	in := ports.RegisterInput{Role: domain.RoleReader, Username: "bob", Password: "a", ConfirmPassword: "b"}
	if _, _, err := f.svc.Register(context.Background(), in); err != domain.ErrPasswordMismatch {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if f.repo.count() != 0 {
		t.Fatalf("no record should be created")
	}
	if f.store.len() != 0 {
		t.Fatalf("no session should be created")
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	f := newAuthFixture()

	in := ports.RegisterInput{Role: domain.RoleClient, Password: "x", ConfirmPassword: "x"}
	if _, _, err := f.svc.Register(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing email, got %v", err)
	}

	in = ports.RegisterInput{Role: "admin", Email: "a@example.com", Password: "x", ConfirmPassword: "x"}
	if _, _, err := f.svc.Register(context.Background(), in); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_TradesmanProfileFields(t *testing.T) {
	f := newAuthFixture()

	acc, _, err := f.svc.Register(context.Background(), ports.RegisterInput{
		Role:            domain.RoleTradesman,
		Name:            " Tom ",
		Surname:         "Sparks",
		Email:           "tom@example.com",
		Password:        "Volt4ge!",
		ConfirmPassword: "Volt4ge!",
		Phone:           "0123",
		Trade:           "electrician",
		Rate:            45,
		SortCode:        "12-34-56",
		AccountNumber:   "12345678",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if acc.Name != "Tom" || acc.Trade != "electrician" || acc.Rate != 45 || acc.SortCode != "12-34-56" {
		t.Fatalf("profile fields not stored: %+v", acc)
	}
	if acc.Shelf != nil {
		t.Fatalf("tradesmen have no shelf")
	}
	if acc.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
}

func TestAuthService_Login(t *testing.T) {
	f := newAuthFixture()
	if _, _, err := f.svc.Register(context.Background(), ports.RegisterInput{
		Role: domain.RoleClient, Email: "carol@example.com", Password: "s3cret", ConfirmPassword: "s3cret",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	acc, issued, err := f.svc.Login(context.Background(), domain.RoleClient, "carol@example.com", "s3cret", true)
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if acc.Email != "carol@example.com" {
		t.Fatalf("unexpected account: %+v", acc)
	}
	if !issued.Session.Remember {
		t.Fatalf("expected remember-me session")
	}

	if _, _, err := f.svc.Login(context.Background(), domain.RoleClient, "carol@example.com", "bad", false); err != domain.ErrAccountNotFound {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}

	got := f.pub.types()
	want := []domain.AccountEventType{domain.EventRegistered, domain.EventLoginSucceeded, domain.EventLoginFailed}
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, got)
		}
	}
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture()
	_, issued, err := f.svc.Register(context.Background(), aliceInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := f.svc.Logout(context.Background(), issued.Token); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if err := f.svc.Logout(context.Background(), issued.Token); err != nil {
		t.Fatalf("second Logout returned error: %v", err)
	}
	if _, err := f.sessions.Resolve(context.Background(), issued.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected session gone, got %v", err)
	}

	logouts := 0
	for _, typ := range f.pub.types() {
		if typ == domain.EventLoggedOut {
			logouts++
		}
	}
	if logouts != 1 {
		t.Fatalf("expected exactly one logged_out event, got %d", logouts)
	}
}
