package economy

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	TotalTrophyKey   = "TotalTrophy"
	HighestTrophyKey = "HighestTrophy"

	coinsPerKill    = 10
	trophiesPerKill = 5
)

// Result is the settlement of one run.
type Result struct {
	Kills    int
	Earned   int
	Bonus    int
	Total    int
	Trophies int
}

// Stats counts kills and coins for the current run and settles them into
// the wallet once the run is over.
type Stats struct {
	mu      sync.Mutex
	wallet  *Wallet
	store   Store
	logger  zerolog.Logger
	deaths  int
	earned  int
	over    bool
	result  Result
	started time.Time

	// Now is the wall clock used for match durations.
	Now func() time.Time
}

func NewStats(wallet *Wallet, store Store, logger zerolog.Logger) *Stats {
	s := &Stats{wallet: wallet, store: store, logger: logger, Now: time.Now}
	s.started = s.Now()
	return s
}

func (s *Stats) AddDeathCount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over {
		return
	}
	s.deaths++
}

func (s *Stats) AddCoins(amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over || amount <= 0 {
		return
	}
	s.earned += amount
}

func (s *Stats) Kills() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deaths
}

func (s *Stats) Earned() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.earned
}

// Result returns the settlement, and false until GameOver has run.
func (s *Stats) Result() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result, s.over
}

// GameOver settles the run: earned coins plus a per-kill bonus go to the
// wallet, and per-kill trophies are added to the persistent totals. Later
// calls do nothing.
func (s *Stats) GameOver() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.over {
		return
	}
	s.over = true

	bonus := s.deaths * coinsPerKill
	s.result = Result{
		Kills:    s.deaths,
		Earned:   s.earned,
		Bonus:    bonus,
		Total:    s.earned + bonus,
		Trophies: s.deaths * trophiesPerKill,
	}

	if s.wallet != nil {
		s.wallet.AddCoins(s.result.Total)
	}
	s.settleTrophies(s.result.Trophies)

	if rec, ok := s.store.(MatchRecorder); ok {
		err := rec.RecordMatch(MatchRecord{
			ID:       uuid.NewString(),
			Kills:    s.result.Kills,
			Coins:    s.result.Total,
			Bonus:    bonus,
			Trophies: s.result.Trophies,
			Duration: s.Now().Sub(s.started),
		})
		if err != nil {
			s.logger.Error().Err(err).Msg("stats: record match")
		}
	}

	s.logger.Info().
		Int("kills", s.result.Kills).
		Int("amount", s.result.Total).
		Int("trophies", s.result.Trophies).
		Msg("game over")
}

func (s *Stats) settleTrophies(trophies int) {
	if s.store == nil {
		return
	}
	total, err := s.store.Get(TotalTrophyKey, 0)
	if err != nil {
		s.logger.Error().Err(err).Msg("stats: read total trophies")
		return
	}
	total += trophies
	if err := s.store.Set(TotalTrophyKey, total); err != nil {
		s.logger.Error().Err(err).Msg("stats: persist total trophies")
	}

	highest, err := s.store.Get(HighestTrophyKey, 0)
	if err != nil {
		s.logger.Error().Err(err).Msg("stats: read highest trophies")
		return
	}
	if total > highest {
		if err := s.store.Set(HighestTrophyKey, total); err != nil {
			s.logger.Error().Err(err).Msg("stats: persist highest trophies")
		}
	}
}
