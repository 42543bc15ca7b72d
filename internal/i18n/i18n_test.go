package i18n

import (
	"testing"

	"github.com/sikaai/sikaai/internal/domain"
)

func TestT_BothLanguages(t *testing.T) {
	tests := []struct {
		key  string
		lang domain.Language
		want string
	}{
		{"welcome", domain.LanguageEnglish, "Welcome to English Learn"},
		{"lessons", domain.LanguageEnglish, "Lessons"},
		{"lessons", domain.LanguageNepali, "पाठहरू"},
		{"vocabulary", domain.LanguageNepali, "शब्दावली"},
		{"currentStreak", domain.LanguageEnglish, "Current Streak"},
	}

	for _, tt := range tests {
		if got := T(tt.key, tt.lang); got != tt.want {
			t.Errorf("T(%q, %q) = %q; want %q", tt.key, tt.lang, got, tt.want)
		}
	}
}

func TestT_FallbackToEnglish(t *testing.T) {
	// An unknown language falls back to the English table.
	if got := T("lessons", domain.Language("fr")); got != "Lessons" {
		t.Errorf("T(lessons, fr) = %q; want English fallback", got)
	}
}

func TestT_UnknownKeyReturnsKey(t *testing.T) {
	if got := T("noSuchKey", domain.LanguageNepali); got != "noSuchKey" {
		t.Errorf("T(noSuchKey) = %q; want the key itself", got)
	}
}

// Every English key must have a Nepali counterpart so no screen mixes
// languages after a toggle.
func TestTranslationTablesAligned(t *testing.T) {
	en := translations[domain.LanguageEnglish]
	ne := translations[domain.LanguageNepali]

	for key := range en {
		if _, ok := ne[key]; !ok {
			t.Errorf("key %q missing from the Nepali table", key)
		}
	}
	for key := range ne {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q missing from the English table", key)
		}
	}
}
