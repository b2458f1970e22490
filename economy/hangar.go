package economy

import "fmt"

const (
	SelectedModelKey  = "SelectedPlayerModel"
	purchasedModelKey = "PurchasedModel"
)

// Hangar tracks which player models are bought and which one flies.
// Model 0 is always owned.
type Hangar struct {
	store  Store
	wallet *Wallet
	prices []int
}

func NewHangar(store Store, wallet *Wallet, prices []int) *Hangar {
	return &Hangar{store: store, wallet: wallet, prices: prices}
}

func (h *Hangar) Models() int {
	return len(h.prices)
}

func (h *Hangar) Price(model int) (int, error) {
	if model < 0 || model >= len(h.prices) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownModel, model)
	}
	return h.prices[model], nil
}

func (h *Hangar) Owned(model int) (bool, error) {
	if _, err := h.Price(model); err != nil {
		return false, err
	}
	if model == 0 {
		return true, nil
	}
	v, err := h.store.Get(purchaseKey(model), 0)
	if err != nil {
		return false, err
	}
	return v == 1, nil
}

// Buy pays for model and marks it owned. Buying an owned model is free.
func (h *Hangar) Buy(model int) error {
	price, err := h.Price(model)
	if err != nil {
		return err
	}
	owned, err := h.Owned(model)
	if err != nil || owned {
		return err
	}
	if err := h.wallet.spend(price); err != nil {
		return fmt.Errorf("model %d costs %d: %w", model, price, err)
	}
	return h.store.Set(purchaseKey(model), 1)
}

func (h *Hangar) Select(model int) error {
	owned, err := h.Owned(model)
	if err != nil {
		return err
	}
	if !owned {
		return fmt.Errorf("%w: %d", ErrModelNotOwned, model)
	}
	return h.store.Set(SelectedModelKey, model)
}

func (h *Hangar) Selected() (int, error) {
	return h.store.Get(SelectedModelKey, 0)
}

func purchaseKey(model int) string {
	return fmt.Sprintf("%s%d", purchasedModelKey, model)
}
