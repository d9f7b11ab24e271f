package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tradeco/board/internal/core/domain"
	"github.com/tradeco/board/internal/core/ports"
)

type profileFixture struct {
	*authFixture
	profile   *ProfileService
	principal *domain.Session
	token     string
}

func newProfileFixture(t *testing.T, in ports.RegisterInput) *profileFixture {
	t.Helper()
	f := newAuthFixture()
	_, issued, err := f.svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	hasher := NewArgon2Hasher("test-pepper", testArgon2Params)
	return &profileFixture{
		authFixture: f,
		profile:     NewProfileService(f.repo, f.sessions, hasher, f.pub, zerolog.Nop()),
		principal:   issued.Session,
		token:       issued.Token,
	}
}

func clientInput(email string) ports.RegisterInput {
	return ports.RegisterInput{
		Role: domain.RoleClient, Name: "Cara", Surname: "Client", Email: email,
		Password: "OldPass1!", ConfirmPassword: "OldPass1!",
	}
}

func TestProfileService_Update_OnlyNonEmptyFields(t *testing.T) {
	f := newProfileFixture(t, clientInput("cara@example.com"))

	acc, err := f.profile.Update(context.Background(), f.principal, ports.UpdateProfileInput{
		Name:        "  ",
		Surname:     "Carpenter",
		DateOfBirth: "1990-04-01",
		City:        "Leeds",
		Bio:         " Likes tidy joints ",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if acc.Name != "Cara" {
		t.Fatalf("blank name must not overwrite, got %q", acc.Name)
	}
	if acc.Surname != "Carpenter" || acc.Bio != "Likes tidy joints" || acc.Location.City != "Leeds" {
		t.Fatalf("fields not updated: %+v", acc)
	}
	if acc.Location.Country != "" {
		t.Fatalf("country must stay empty, got %q", acc.Location.Country)
	}
	if acc.DateOfBirth == nil || acc.DateOfBirth.Format("2006-01-02") != "1990-04-01" {
		t.Fatalf("unexpected date of birth: %v", acc.DateOfBirth)
	}
	if acc.Role != domain.RoleClient {
		t.Fatalf("role must never change")
	}
}

func TestProfileService_Update_NeverTouchesPassword(t *testing.T) {
	f := newProfileFixture(t, clientInput("cara@example.com"))
	before, _ := f.repo.FindByID(context.Background(), f.principal.Role, f.principal.AccountID)

	if _, err := f.profile.Update(context.Background(), f.principal, ports.UpdateProfileInput{Name: "New"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	after, _ := f.repo.FindByID(context.Background(), f.principal.Role, f.principal.AccountID)
	if before.PasswordHash != after.PasswordHash {
		t.Fatalf("password hash changed by profile update")
	}
}

func TestProfileService_Update_InvalidDate(t *testing.T) {
	f := newProfileFixture(t, clientInput("cara@example.com"))

	if _, err := f.profile.Update(context.Background(), f.principal, ports.UpdateProfileInput{DateOfBirth: "01/04/1990"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestProfileService_Update_EmailTakenByAnotherAccount(t *testing.T) {
	f := newProfileFixture(t, clientInput("cara@example.com"))
	if _, _, err := f.svc.Register(context.Background(), clientInput("dan@example.com")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := f.profile.Update(context.Background(), f.principal, ports.UpdateProfileInput{Email: "dan@example.com"}); err != domain.ErrAccountExists {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}

	acc, err := f.profile.Update(context.Background(), f.principal, ports.UpdateProfileInput{Email: "cara@new.example.com"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if acc.Email != "cara@new.example.com" {
		t.Fatalf("email not updated: %s", acc.Email)
	}
	if _, err := f.svc.Verify(context.Background(), domain.RoleClient, "cara@new.example.com", "OldPass1!"); err != nil {
		t.Fatalf("login with the new email failed: %v", err)
	}
}

func TestProfileService_Update_EmailChangeRenamesSession(t *testing.T) {
	f := newProfileFixture(t, clientInput("cara@example.com"))

	if _, err := f.profile.Update(context.Background(), f.principal, ports.UpdateProfileInput{Email: "cara@new.example.com"}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	stored, err := f.store.Get(context.Background(), f.principal.ID)
	if err != nil {
		t.Fatalf("session lost after email change: %v", err)
	}
	if stored.Identifier != "cara@new.example.com" || f.principal.Identifier != "cara@new.example.com" {
		t.Fatalf("session still names %q / %q", stored.Identifier, f.principal.Identifier)
	}
	if ttl := f.store.ttls[f.principal.ID]; ttl <= 0 || ttl > defaultSessionTTL {
		t.Fatalf("rename must keep the remaining lifetime, got %v", ttl)
	}

	resolved, err := f.sessions.Resolve(context.Background(), f.token)
	if err != nil || resolved.Identifier != "cara@new.example.com" {
		t.Fatalf("resolve after rename: %+v %v", resolved, err)
	}

	last := f.pub.events[len(f.pub.events)-1]
	if last.Type != domain.EventProfileUpdated || last.Identifier != "cara@new.example.com" {
		t.Fatalf("audit event carries stale identifier: %+v", last)
	}
}

func TestProfileService_ChangePassword(t *testing.T) {
	f := newProfileFixture(t, clientInput("cara@example.com"))

	if err := f.profile.ChangePassword(context.Background(), f.principal, "OldPass1!", "NewPass2!", "NewPass2!"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}
	if _, err := f.svc.Verify(context.Background(), domain.RoleClient, "cara@example.com", "NewPass2!"); err != nil {
		t.Fatalf("new password rejected: %v", err)
	}
	if _, err := f.svc.Verify(context.Background(), domain.RoleClient, "cara@example.com", "OldPass1!"); err != domain.ErrAccountNotFound {
		t.Fatalf("old password still accepted: %v", err)
	}
}

func TestProfileService_ChangePassword_WrongOldLeavesHash(t *testing.T) {
	f := newProfileFixture(t, clientInput("cara@example.com"))
	before, _ := f.repo.FindByID(context.Background(), f.principal.Role, f.principal.AccountID)

	// old password is checked before the confirmation
	if err := f.profile.ChangePassword(context.Background(), f.principal, "wrong", "NewPass2!", "mismatch"); err != domain.ErrIncorrectOldPassword {
		t.Fatalf("expected ErrIncorrectOldPassword, got %v", err)
	}
	after, _ := f.repo.FindByID(context.Background(), f.principal.Role, f.principal.AccountID)
	if before.PasswordHash != after.PasswordHash {
		t.Fatalf("stored hash changed")
	}
}

func TestProfileService_ChangePassword_Mismatch(t *testing.T) {
	f := newProfileFixture(t, clientInput("cara@example.com"))

	if err := f.profile.ChangePassword(context.Background(), f.principal, "OldPass1!", "NewPass2!", "NewPass3!"); err != domain.ErrPasswordMismatch {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
	if _, err := f.svc.Verify(context.Background(), domain.RoleClient, "cara@example.com", "OldPass1!"); err != nil {
		t.Fatalf("old password should still work: %v", err)
	}
}

func TestProfileService_Delete(t *testing.T) {
	f := newProfileFixture(t, ports.RegisterInput{
		Role: domain.RoleTradesman, Email: "tom@example.com", Password: "Volt4ge!", ConfirmPassword: "Volt4ge!",
	})

	if err := f.profile.Delete(context.Background(), f.principal, "nope"); err != domain.ErrIncorrectPassword {
		t.Fatalf("expected ErrIncorrectPassword, got %v", err)
	}
	if f.repo.count() != 1 {
		t.Fatalf("record must stay after a failed delete")
	}

	if err := f.profile.Delete(context.Background(), f.principal, "Volt4ge!"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if f.repo.count() != 0 {
		t.Fatalf("record not deleted")
	}
	if _, err := f.sessions.Resolve(context.Background(), f.token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("session must be destroyed, got %v", err)
	}

	types := f.pub.types()
	if types[len(types)-1] != domain.EventDeleted {
		t.Fatalf("expected a deleted event last, got %v", types)
	}
}
