package appstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/store"
)

// PreferencesKey is the storage key of the persisted preferences.
const PreferencesKey = "userPreferences"

// PreferenceStore loads and saves Preferences in a key-value store.
type PreferenceStore struct {
	kv     store.KV
	logger *zap.Logger
}

// NewPreferenceStore creates a PreferenceStore.
func NewPreferenceStore(kv store.KV, logger *zap.Logger) *PreferenceStore {
	return &PreferenceStore{kv: kv, logger: logger}
}

// Load returns the persisted preferences. It never fails: a missing,
// unreadable or corrupt value yields the defaults. Fields absent from the
// stored document keep their default values.
func (s *PreferenceStore) Load(ctx context.Context) Preferences {
	prefs := DefaultPreferences()

	raw, err := s.kv.Get(ctx, PreferencesKey)
	if err != nil {
		if !errors.Is(err, store.ErrMiss) {
			s.logger.Warn("Failed to read preferences, using defaults", zap.Error(err))
		}
		return prefs
	}

	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		s.logger.Warn("Discarding corrupt preferences",
			zap.String("key", PreferencesKey),
			zap.Error(err),
		)
		return DefaultPreferences()
	}
	return prefs
}

// Save persists prefs without expiry.
func (s *PreferenceStore) Save(ctx context.Context, prefs Preferences) error {
	b, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := s.kv.Set(ctx, PreferencesKey, string(b), 0); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
