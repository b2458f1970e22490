package economy

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/gunship/combat"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ combat.Economy    = (*Wallet)(nil)
	_ combat.Scoreboard = (*Stats)(nil)
	_ Store             = (*MemoryStore)(nil)
	_ Store             = (*SQLStore)(nil)
	_ MatchRecorder     = (*SQLStore)(nil)
)

func newSQLStore(t *testing.T) *SQLStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "economy.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func stores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": newSQLStore(t),
	}
}

func TestStoreGetSet(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			v, err := store.Get("Missing", 7)
			require.NoError(t, err)
			assert.Equal(t, 7, v)

			require.NoError(t, store.Set("Counter", 3))
			require.NoError(t, store.Set("Counter", 4))
			v, err = store.Get("Counter", 0)
			require.NoError(t, err)
			assert.Equal(t, 4, v)
		})
	}
}

func TestWallet(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			w, err := NewWallet(store, zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, DefaultCoinCount, w.GetCoinCount())

			w.AddCoins(25)
			w.AddCoins(-5)
			assert.Equal(t, 1025, w.GetCoinCount())

			w.SubtractCoins(2000)
			assert.Equal(t, 0, w.GetCoinCount())

			w.AddCoins(40)
			reopened, err := NewWallet(store, zerolog.Nop())
			require.NoError(t, err)
			assert.Equal(t, 40, reopened.GetCoinCount())

			reopened.Reset()
			assert.Equal(t, DefaultCoinCount, reopened.GetCoinCount())
		})
	}
}

func TestStatsGameOverSettlesOnce(t *testing.T) {
	store := newSQLStore(t)
	require.NoError(t, store.Set(HighestTrophyKey, 12))

	wallet, err := NewWallet(store, zerolog.Nop())
	require.NoError(t, err)

	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	stats := NewStats(wallet, store, zerolog.Nop())
	stats.started = start
	stats.Now = func() time.Time { return start.Add(90 * time.Second) }

	for i := 0; i < 3; i++ {
		stats.AddDeathCount()
		stats.AddCoins(10)
	}
	_, over := stats.Result()
	assert.False(t, over)

	stats.GameOver()
	stats.GameOver()
	stats.AddDeathCount()

	res, over := stats.Result()
	require.True(t, over)
	assert.Equal(t, Result{Kills: 3, Earned: 30, Bonus: 30, Total: 60, Trophies: 15}, res)
	assert.Equal(t, 3, stats.Kills())
	assert.Equal(t, DefaultCoinCount+60, wallet.GetCoinCount())

	total, err := store.Get(TotalTrophyKey, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, total)
	highest, err := store.Get(HighestTrophyKey, 0)
	require.NoError(t, err)
	assert.Equal(t, 15, highest)

	matches, err := store.Matches(0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 3, matches[0].Kills)
	assert.Equal(t, 60, matches[0].Coins)
	assert.Equal(t, 90*time.Second, matches[0].Duration)
	assert.Len(t, matches[0].ID, 36)
}

func TestStatsKeepsHigherRecord(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Set(HighestTrophyKey, 100))

	stats := NewStats(nil, store, zerolog.Nop())
	stats.AddDeathCount()
	stats.GameOver()

	total, _ := store.Get(TotalTrophyKey, 0)
	highest, _ := store.Get(HighestTrophyKey, 0)
	assert.Equal(t, 5, total)
	assert.Equal(t, 100, highest)
}

func TestHangar(t *testing.T) {
	store := NewMemoryStore()
	wallet, err := NewWallet(store, zerolog.Nop())
	require.NoError(t, err)
	hangar := NewHangar(store, wallet, []int{0, 800, 1500})

	tests := []struct {
		name      string
		run       func() error
		wantErr   error
		wantCoins int
	}{
		{name: "starter is owned", run: func() error { return hangar.Select(0) }, wantCoins: 1000},
		{name: "unknown model", run: func() error { return hangar.Buy(3) }, wantErr: ErrUnknownModel, wantCoins: 1000},
		{name: "select unbought", run: func() error { return hangar.Select(1) }, wantErr: ErrModelNotOwned, wantCoins: 1000},
		{name: "too expensive", run: func() error { return hangar.Buy(2) }, wantErr: ErrInsufficientFunds, wantCoins: 1000},
		{name: "buy", run: func() error { return hangar.Buy(1) }, wantCoins: 200},
		{name: "buying again is free", run: func() error { return hangar.Buy(1) }, wantCoins: 200},
		{name: "select bought", run: func() error { return hangar.Select(1) }, wantCoins: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCoins, wallet.GetCoinCount())
		})
	}

	selected, err := hangar.Selected()
	require.NoError(t, err)
	assert.Equal(t, 1, selected)
}

func TestOpenStore(t *testing.T) {
	store, err := OpenStore("memory", "", "")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = OpenStore("sqlite", filepath.Join(t.TempDir(), "open.db"), "")
	require.NoError(t, err)
	require.IsType(t, &SQLStore{}, store)
	_ = store.(*SQLStore).Close()

	_, err = OpenStore("redis", "", "")
	assert.Error(t, err)
}
