package appstate

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ratulalahy/med-debt-collector/internal/store"
)

func TestPreferenceStore_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		prefs Preferences
	}{
		{"defaults", DefaultPreferences()},
		{"every field changed", Preferences{
			Theme:         "dark",
			Language:      "es",
			Timezone:      "Europe/Madrid",
			DateFormat:    "DD/MM/YYYY",
			Currency:      "EUR",
			Notifications: NotificationChannels{Email: false, Push: false, SMS: true},
		}},
		{"all channels on", Preferences{
			Theme:         "light",
			Language:      "fr",
			Timezone:      "UTC",
			DateFormat:    "YYYY-MM-DD",
			Currency:      "CAD",
			Notifications: NotificationChannels{Email: true, Push: true, SMS: true},
		}},
		{"all channels off", Preferences{
			Theme:         "dark",
			Language:      "en",
			Timezone:      "America/Chicago",
			DateFormat:    "MM/DD/YYYY",
			Currency:      "USD",
			Notifications: NotificationChannels{},
		}},
	}

	backends := map[string]func(t *testing.T) store.KV{
		"memory": func(t *testing.T) store.KV { return store.NewMemoryKV() },
		"file": func(t *testing.T) store.KV {
			kv, err := store.NewFileKV(filepath.Join(t.TempDir(), "prefs.json"))
			require.NoError(t, err)
			return kv
		},
	}

	for backend, newKV := range backends {
		for _, tt := range tests {
			t.Run(backend+"/"+tt.name, func(t *testing.T) {
				ctx := context.Background()
				ps := NewPreferenceStore(newKV(t), zap.NewNop())

				require.NoError(t, ps.Save(ctx, tt.prefs))
				assert.Equal(t, tt.prefs, ps.Load(ctx))
			})
		}
	}
}

func TestStore_CorruptPreferenceFileIsReplacedOnUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0o644))
	kv, err := store.NewFileKV(path)
	require.NoError(t, err)

	s, _ := newTestStore(t, kv)
	assert.Equal(t, "light", s.State().Preferences.Theme)

	require.NoError(t, s.UpdatePreferences(context.Background(), PreferencesPatch{Theme: ptr("dark")}))

	reopened, _ := newTestStore(t, kv)
	assert.Equal(t, "dark", reopened.State().Preferences.Theme)
}

func TestStore_ConcurrentPreferenceUpdatesPersistLatest(t *testing.T) {
	kv := store.NewMemoryKV()
	s, _ := newTestStore(t, kv)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.UpdatePreferences(ctx, PreferencesPatch{Theme: ptr(fmt.Sprintf("theme-%d", i))}))
		}()
	}
	wg.Wait()

	persisted := NewPreferenceStore(kv, zap.NewNop()).Load(ctx)
	assert.Equal(t, s.State().Preferences, persisted)
}

func TestNotification_DurationInMilliseconds(t *testing.T) {
	n := Notification{
		ID:        "n1",
		Level:     LevelInfo,
		Title:     "Queued",
		Timestamp: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		Duration:  5 * time.Second,
	}

	b, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"n1","type":"info","title":"Queued","message":"","timestamp":"2024-01-15T09:00:00Z","duration":5000}`, string(b))

	var back Notification
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, n, back)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"n2","title":"x","duration":1500}`), &back))
	assert.Equal(t, 1500*time.Millisecond, back.Duration)
}
