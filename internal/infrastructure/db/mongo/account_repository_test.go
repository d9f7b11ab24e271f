package mongo

import (
	"testing"
	"time"

	"github.com/tradeco/board/internal/core/domain"
)

func TestAccountMapping_ReaderShelfNeverNil(t *testing.T) {
	doc := toMongoAccount(&domain.Account{Role: domain.RoleReader, Username: "alice", Shelf: []domain.ShelfEntry{}})

	a := fromMongoAccount(domain.RoleReader, &doc)
	if a.Shelf == nil {
		t.Fatal("reader shelf must decode as an empty list")
	}
	if a.Identifier() != "alice" {
		t.Fatalf("unexpected identifier %q", a.Identifier())
	}
}

func TestAccountMapping_RoundTripsProfileFields(t *testing.T) {
	dob := time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC)
	in := &domain.Account{
		Role:        domain.RoleTradesman,
		Email:       "tom@example.com",
		Trade:       "electrician",
		Rate:        45,
		Location:    domain.Location{City: "Leeds", Country: "UK"},
		DateOfBirth: &dob,
	}

	doc := toMongoAccount(in)
	if doc.City != "Leeds" || doc.Country != "UK" {
		t.Fatalf("location not flattened: %+v", doc)
	}

	out := fromMongoAccount(domain.RoleTradesman, &doc)
	if out.Location != in.Location || out.Trade != "electrician" || out.Rate != 45 || !out.DateOfBirth.Equal(dob) {
		t.Fatalf("unexpected account: %+v", out)
	}
	if out.Shelf != nil {
		t.Fatalf("only readers carry a shelf")
	}
}

func TestAccountCollections_OnePerRole(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range domain.Roles {
		name, ok := accountCollections[r]
		if !ok {
			t.Fatalf("no collection for role %s", r)
		}
		if seen[name] {
			t.Fatalf("collection %s shared between roles", name)
		}
		seen[name] = true
	}
}
