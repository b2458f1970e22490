package combat

import "testing"

func TestHealthStaysInBounds(t *testing.T) {
	type op struct {
		damage int
		heal   int
	}
	ops := []op{
		{damage: 3}, {heal: 100}, {damage: 25}, {heal: 1}, {damage: -4}, {heal: -2}, {damage: 9}, {damage: 1},
	}
	h := NewHealth(10)
	for i, o := range ops {
		if o.damage != 0 {
			h.ApplyDamage(o.damage)
		}
		if o.heal != 0 {
			h.Heal(o.heal)
		}
		if h.Current < 0 || h.Current > h.Max {
			t.Fatalf("step %d: health %d out of [0,%d]", i, h.Current, h.Max)
		}
	}
}

func TestHealthDeathIsOneWay(t *testing.T) {
	h := NewHealth(10)
	applied, died := h.ApplyDamage(25)
	if applied != 10 || !died || h.Alive() {
		t.Fatalf("applied=%d died=%v alive=%v", applied, died, h.Alive())
	}

	for i := 0; i < 3; i++ {
		if _, again := h.ApplyDamage(5); again {
			t.Fatal("death reported twice")
		}
	}
	if healed := h.Heal(50); healed != 0 || h.Current != 0 || h.Alive() {
		t.Fatalf("dead entity healed: healed=%d current=%d", healed, h.Current)
	}
}

func TestHealthHealClamps(t *testing.T) {
	h := NewHealth(100)
	h.ApplyDamage(30)
	if got := h.Heal(50); got != 30 {
		t.Fatalf("Heal = %d, want 30", got)
	}
	if h.Current != 100 {
		t.Fatalf("current = %d", h.Current)
	}
}

func TestHealthZeroDamageIsNoop(t *testing.T) {
	h := NewHealth(5)
	if applied, died := h.ApplyDamage(0); applied != 0 || died {
		t.Fatal("zero damage had an effect")
	}
}
