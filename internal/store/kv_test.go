package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "userPreferences")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, kv.Set(ctx, "userPreferences", `{"theme":"dark"}`, 0))
	v, err := kv.Get(ctx, "userPreferences")
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, v)

	require.NoError(t, kv.Set(ctx, "userPreferences", `{"theme":"light"}`, 0))
	v, err = kv.Get(ctx, "userPreferences")
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"light"}`, v)

	require.NoError(t, kv.Delete(ctx, "userPreferences"))
	_, err = kv.Get(ctx, "userPreferences")
	assert.ErrorIs(t, err, ErrMiss)

	// deleting twice is fine
	assert.NoError(t, kv.Delete(ctx, "userPreferences"))
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestMemoryKV_TTL(t *testing.T) {
	kv := NewMemoryKV()
	now := time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC)
	kv.now = func() time.Time { return now }

	require.NoError(t, kv.Set(context.Background(), "k", "v", time.Minute))
	_, err := kv.Get(context.Background(), "k")
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, err = kv.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestFileKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")
	kv, err := NewFileKV(path)
	require.NoError(t, err)
	exerciseKV(t, kv)
}

func TestFileKV_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	a, err := NewFileKV(path)
	require.NoError(t, err)
	require.NoError(t, a.Set(context.Background(), "userPreferences", "x", 0))

	b, err := NewFileKV(path)
	require.NoError(t, err)
	v, err := b.Get(context.Background(), "userPreferences")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestFileKV_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	kv, err := NewFileKV(path)
	require.NoError(t, err)

	_, err = kv.Get(context.Background(), "userPreferences")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}

func TestFileKV_SetRecoversCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0o644))
	kv, err := NewFileKV(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "userPreferences", `{"theme":"dark"}`, 0))

	v, err := kv.Get(ctx, "userPreferences")
	require.NoError(t, err)
	assert.Equal(t, `{"theme":"dark"}`, v)

	moved, err := os.ReadFile(path + ".corrupt")
	require.NoError(t, err)
	assert.Equal(t, "{garbage", string(moved))
}

func TestFileKV_DeleteRecoversCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0o644))
	kv, err := NewFileKV(path)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, kv.Delete(ctx, "userPreferences"))
	require.NoError(t, kv.Set(ctx, "k", "v", 0))
	v, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestRedisKV(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	kv := NewRedisKV(client, "collectdesk:")
	exerciseKV(t, kv)

	require.NoError(t, kv.Set(context.Background(), "k", "v", 0))
	assert.True(t, mr.Exists("collectdesk:k"))
}

func TestRedisKV_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	kv := NewRedisKV(client, "")
	require.NoError(t, kv.Set(context.Background(), "k", "v", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := kv.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrMiss)
}
