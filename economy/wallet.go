package economy

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"
)

const (
	CoinCountKey     = "CoinCount"
	DefaultCoinCount = 1000
)

var (
	ErrInsufficientFunds = errors.New("economy: insufficient funds")
	ErrUnknownModel      = errors.New("economy: unknown model")
	ErrModelNotOwned     = errors.New("economy: model not owned")
)

// Wallet is the persistent coin balance. Every change is written through
// to the store at once.
type Wallet struct {
	mu     sync.Mutex
	store  Store
	coins  int
	logger zerolog.Logger
}

func NewWallet(store Store, logger zerolog.Logger) (*Wallet, error) {
	coins, err := store.Get(CoinCountKey, DefaultCoinCount)
	if err != nil {
		return nil, err
	}
	return &Wallet{store: store, coins: coins, logger: logger}, nil
}

func (w *Wallet) GetCoinCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.coins
}

func (w *Wallet) AddCoins(amount int) {
	if amount <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.set(w.coins + amount)
}

// SubtractCoins never takes the balance below zero.
func (w *Wallet) SubtractCoins(amount int) {
	if amount <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.set(max(0, w.coins-amount))
}

func (w *Wallet) SetCoinCount(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.set(max(0, n))
}

// Reset restores the starting balance.
func (w *Wallet) Reset() {
	w.SetCoinCount(DefaultCoinCount)
}

// spend subtracts price only if the balance covers it.
func (w *Wallet) spend(price int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.coins < price {
		return ErrInsufficientFunds
	}
	w.set(w.coins - max(0, price))
	return nil
}

func (w *Wallet) set(n int) {
	w.coins = n
	if err := w.store.Set(CoinCountKey, n); err != nil {
		w.logger.Error().Err(err).Int("amount", n).Msg("wallet: persist coins")
	}
}
