package history

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndHistory(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, Entry{UserID: "1", Text: "add milk", Action: "shopping.add_item", Success: true, ProcessedAt: base}))
	require.NoError(t, s.Record(ctx, Entry{UserID: "1", Text: "blah", Action: "unknown", Success: false, ProcessedAt: base.Add(time.Minute)}))
	require.NoError(t, s.Record(ctx, Entry{UserID: "2", Text: "clear my list", Action: "shopping.clear_list", Success: true, ProcessedAt: base}))

	got, err := s.History(ctx, "1", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "blah", got[0].Text)
	assert.False(t, got[0].Success)
	assert.Equal(t, "add milk", got[1].Text)
	assert.Equal(t, "shopping.add_item", got[1].Action)
	assert.True(t, got[1].Success)
	assert.True(t, base.Equal(got[1].ProcessedAt))

	got, err = s.History(ctx, "1", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "blah", got[0].Text)

	got, err = s.History(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHistoryDefaultLimit(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	for i := 0; i < DefaultLimit+5; i++ {
		require.NoError(t, s.Record(ctx, Entry{UserID: "u", Text: "add milk", Success: true}))
	}
	got, err := s.History(ctx, "u", -1)
	require.NoError(t, err)
	assert.Len(t, got, DefaultLimit)
	assert.Greater(t, got[0].ID, got[1].ID)
}

func TestRecordRequiresUser(t *testing.T) {
	s := openStore(t)
	assert.ErrorIs(t, s.Record(context.Background(), Entry{Text: "add milk"}), ErrNoUser)
	assert.ErrorIs(t, s.SetLanguage(context.Background(), "", "es"), ErrNoUser)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	st, err := s.Stats(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)

	for _, ok := range []bool{true, true, false} {
		require.NoError(t, s.Record(ctx, Entry{UserID: "1", Text: "x", Success: ok}))
	}
	st, err = s.Stats(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, Stats{Total: 3, Successful: 2, Failed: 1, SuccessRate: 67}, st)
}

func TestLanguagePreference(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	lang, err := s.Language(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, lang)

	require.NoError(t, s.SetLanguage(ctx, "1", "es-ES"))
	require.NoError(t, s.SetLanguage(ctx, "1", "fr-FR"))
	lang, err = s.Language(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "fr-FR", lang)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(context.Background(), Entry{UserID: "1", Text: "add milk", Success: true}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.History(context.Background(), "1", 0)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

type failingStore struct {
	Store
	mu    sync.Mutex
	calls int
}

func (f *failingStore) Record(context.Context, Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return errors.New("disk full")
}

func TestRecorder(t *testing.T) {
	s := openStore(t)
	r := NewRecorder(s, time.Second, nil)
	for i := 0; i < 10; i++ {
		r.Record(Entry{UserID: "1", Text: "add milk", Success: true})
	}
	r.Wait()

	st, err := s.Stats(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 10, st.Total)
}

func TestRecorderSwallowsFailures(t *testing.T) {
	fs := &failingStore{}
	var failures atomic.Int32
	r := NewRecorder(fs, time.Second, func(error) { failures.Add(1) })

	r.Record(Entry{UserID: "1", Text: "add milk"})
	r.Record(Entry{UserID: "1", Text: "add bread"})
	r.Wait()

	assert.Equal(t, int32(2), failures.Load())
	assert.Equal(t, 2, fs.calls)
}
