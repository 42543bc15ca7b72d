package store

import (
	"errors"
	"log/slog"

	"github.com/sikaai/sikaai/internal/domain"
	"github.com/sikaai/sikaai/internal/storage/local"
)

// Fixed persistence keys. The user record lives under a namespaced key
// separate from the raw credentials so clearing identity on 401 can wipe
// both together.
const (
	keyCredentials = "credentials"
	keyUser        = "sikaai.user"
	keyPreferences = "preferences"
)

type credentials struct {
	UserID    string `json:"user_id"`
	AuthToken string `json:"auth_token,omitempty"`
}

type preferences struct {
	Language domain.Language `json:"language"`
}

// Identity is the client state that survives restarts: the user
// identifier, auth token, cached user record and language preference.
// It implements api.CredentialSource so the transport can attach and
// clear identity itself.
type Identity struct {
	local  *local.Store
	logger *slog.Logger
}

// NewIdentity creates an Identity backed by the given local store.
func NewIdentity(store *local.Store, logger *slog.Logger) *Identity {
	if logger == nil {
		logger = slog.Default()
	}
	return &Identity{local: store, logger: logger}
}

// Credentials returns the persisted user identifier and auth token,
// empty when no session is persisted.
func (i *Identity) Credentials() (string, string) {
	var creds credentials
	if err := i.local.Load(keyCredentials, &creds); err != nil {
		if !errors.Is(err, local.ErrNotFound) {
			i.logger.Warn("load credentials failed", "error", err)
		}
		return "", ""
	}
	return creds.UserID, creds.AuthToken
}

// Clear erases the persisted identity and user record. Safe to call when
// nothing is persisted.
func (i *Identity) Clear() {
	if err := i.local.Delete(keyCredentials); err != nil {
		i.logger.Warn("clear credentials failed", "error", err)
	}
	if err := i.local.Delete(keyUser); err != nil {
		i.logger.Warn("clear user record failed", "error", err)
	}
}

// SaveSession persists the user record and credentials.
func (i *Identity) SaveSession(user *domain.User, token string) error {
	if err := i.local.Save(keyCredentials, credentials{UserID: user.ID, AuthToken: token}); err != nil {
		return err
	}
	return i.local.Save(keyUser, user)
}

// LoadUser returns the persisted user record, or nil when none exists.
func (i *Identity) LoadUser() *domain.User {
	var user domain.User
	if err := i.local.Load(keyUser, &user); err != nil {
		if !errors.Is(err, local.ErrNotFound) {
			i.logger.Warn("load user record failed", "error", err)
		}
		return nil
	}
	return &user
}

// SaveLanguage persists the language preference.
func (i *Identity) SaveLanguage(lang domain.Language) error {
	return i.local.Save(keyPreferences, preferences{Language: lang})
}

// LoadLanguage returns the persisted language preference. Nepali is the
// default for first runs.
func (i *Identity) LoadLanguage() domain.Language {
	var prefs preferences
	if err := i.local.Load(keyPreferences, &prefs); err != nil {
		if !errors.Is(err, local.ErrNotFound) {
			i.logger.Warn("load preferences failed", "error", err)
		}
		return domain.LanguageNepali
	}
	if prefs.Language == "" {
		return domain.LanguageNepali
	}
	return prefs.Language
}
