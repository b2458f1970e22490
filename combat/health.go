package combat

// Health is a clamped hit-point counter with a one-way alive flag.
type Health struct {
	Current int
	Max     int
	dead    bool
}

// NewHealth creates a Health with max/current initialized.
func NewHealth(max int) Health {
	if max <= 0 {
		max = 1
	}
	return Health{Max: max, Current: max}
}

// Alive reports whether the death transition has not happened yet.
func (h *Health) Alive() bool {
	return h != nil && !h.dead
}

// ApplyDamage subtracts amount, clamped at zero. died is true only on the
// call that takes health from positive to zero. A dead Health ignores
// further damage.
func (h *Health) ApplyDamage(amount int) (applied int, died bool) {
	if h == nil || h.dead || amount <= 0 {
		return 0, false
	}
	before := h.Current
	h.Current = max(0, h.Current-amount)
	applied = before - h.Current
	if h.Current == 0 {
		h.dead = true
		died = true
	}
	return applied, died
}

// Heal restores health up to Max and returns the amount restored.
func (h *Health) Heal(amount int) int {
	if h == nil || h.dead || amount <= 0 {
		return 0
	}
	before := h.Current
	h.Current = min(h.Max, h.Current+amount)
	return h.Current - before
}

// Fraction is current/max for display.
func (h *Health) Fraction() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}
