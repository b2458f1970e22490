package sim

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/milk9111/gunship/combat"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/milk9111/gunship/sim"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// metrics counts combat events through the global meter. It costs nothing
// unless the host installs a provider.
type metrics struct {
	killed   metric.Int64Counter
	shots    metric.Int64Counter
	missiles metric.Int64Counter
	damage   metric.Int64Counter
	hostiles metric.Int64ObservableGauge
	reg      metric.Registration

	alive atomic.Int64
}

func newMetrics() (*metrics, error) {
	m := meter()
	mt := &metrics{}

	var err error
	mt.killed, err = m.Int64Counter(
		"gunship.enemies.killed",
		metric.WithDescription("Enemies destroyed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating killed counter: %w", err)
	}

	mt.shots, err = m.Int64Counter(
		"gunship.shots.fired",
		metric.WithDescription("Bullets fired by any side"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	mt.missiles, err = m.Int64Counter(
		"gunship.missiles.launched",
		metric.WithDescription("Missile volleys launched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating missiles counter: %w", err)
	}

	mt.damage, err = m.Int64Counter(
		"gunship.damage.applied",
		metric.WithDescription("Hit points removed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating damage counter: %w", err)
	}

	mt.hostiles, err = m.Int64ObservableGauge(
		"gunship.hostiles.alive",
		metric.WithDescription("Hostiles currently alive"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating hostiles gauge: %w", err)
	}

	mt.reg, err = m.RegisterCallback(
		func(ctx context.Context, o metric.Observer) error {
			o.ObserveInt64(mt.hostiles, mt.alive.Load())
			return nil
		},
		mt.hostiles,
	)
	if err != nil {
		return nil, fmt.Errorf("registering hostiles callback: %w", err)
	}

	return mt, nil
}

func (m *metrics) record(evt combat.Event) {
	if m == nil {
		return
	}
	ctx := context.Background()
	kind := metric.WithAttributes(attribute.String("kind", evt.Kind))
	switch evt.Type {
	case combat.EventEnemyKilled:
		m.killed.Add(ctx, 1, kind)
	case combat.EventShotFired:
		m.shots.Add(ctx, 1, kind)
	case combat.EventMissileLaunched:
		m.missiles.Add(ctx, 1)
	case combat.EventDamageApplied:
		m.damage.Add(ctx, int64(evt.Amount), kind)
	}
}

func (m *metrics) close() error {
	if m == nil || m.reg == nil {
		return nil
	}
	return m.reg.Unregister()
}
