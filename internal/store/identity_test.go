package store

import (
	"testing"

	"github.com/sikaai/sikaai/internal/domain"
	"github.com/sikaai/sikaai/internal/storage/local"
)

func newTestIdentity(t *testing.T) *Identity {
	t.Helper()
	store, err := local.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return NewIdentity(store, nil)
}

func TestIdentity_SessionRoundTrip(t *testing.T) {
	identity := newTestIdentity(t)

	if userID, token := identity.Credentials(); userID != "" || token != "" {
		t.Fatalf("Credentials() on empty store = (%q, %q); want empty", userID, token)
	}

	user := &domain.User{ID: "u-1", Username: "learner", Email: "l@example.com"}
	if err := identity.SaveSession(user, "tok-1"); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	userID, token := identity.Credentials()
	if userID != "u-1" || token != "tok-1" {
		t.Errorf("Credentials() = (%q, %q); want (u-1, tok-1)", userID, token)
	}

	loaded := identity.LoadUser()
	if loaded == nil || loaded.Username != "learner" || loaded.Email != "l@example.com" {
		t.Errorf("LoadUser() = %+v; want the saved record", loaded)
	}
}

func TestIdentity_ClearIsIdempotent(t *testing.T) {
	identity := newTestIdentity(t)
	if err := identity.SaveSession(&domain.User{ID: "u-1"}, "tok"); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		identity.Clear()
		if userID, token := identity.Credentials(); userID != "" || token != "" {
			t.Errorf("Credentials() after Clear = (%q, %q); want empty", userID, token)
		}
		if identity.LoadUser() != nil {
			t.Error("LoadUser() after Clear != nil")
		}
	}
}

func TestIdentity_LanguageDefaultsToNepali(t *testing.T) {
	identity := newTestIdentity(t)

	if got := identity.LoadLanguage(); got != domain.LanguageNepali {
		t.Errorf("LoadLanguage() on first run = %q; want ne", got)
	}

	if err := identity.SaveLanguage(domain.LanguageEnglish); err != nil {
		t.Fatalf("SaveLanguage() error = %v", err)
	}
	if got := identity.LoadLanguage(); got != domain.LanguageEnglish {
		t.Errorf("LoadLanguage() = %q; want en", got)
	}
}

func TestIdentity_LanguageSurvivesClear(t *testing.T) {
	identity := newTestIdentity(t)
	if err := identity.SaveLanguage(domain.LanguageEnglish); err != nil {
		t.Fatalf("SaveLanguage() error = %v", err)
	}
	if err := identity.SaveSession(&domain.User{ID: "u-1"}, "tok"); err != nil {
		t.Fatalf("SaveSession() error = %v", err)
	}

	identity.Clear()

	if got := identity.LoadLanguage(); got != domain.LanguageEnglish {
		t.Errorf("LoadLanguage() after Clear = %q; preference should survive logout", got)
	}
}
