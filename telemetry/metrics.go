// Package telemetry turns simulation events into otel counters and exports run summaries to InfluxDB
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/stardrift/event"
)

const meterName = "github.com/lixenwraith/stardrift"

// Metrics holds the run instruments
type Metrics struct {
	kills    metric.Int64Counter
	levels   metric.Int64Counter
	overlock metric.Int64Counter
	hits     metric.Float64Counter
	xp       metric.Float64Counter
	runs     metric.Int64Counter
	duration metric.Float64Histogram
}

// NewMetrics creates instruments on mp, the global provider when nil
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(meterName)

	var m Metrics
	var err error
	if m.kills, err = meter.Int64Counter("stardrift.enemies.killed", metric.WithDescription("Enemies killed")); err != nil {
		return nil, fmt.Errorf("kills counter: %w", err)
	}
	if m.levels, err = meter.Int64Counter("stardrift.levels", metric.WithDescription("Levels gained")); err != nil {
		return nil, fmt.Errorf("levels counter: %w", err)
	}
	if m.overlock, err = meter.Int64Counter("stardrift.overlocks", metric.WithDescription("Overlock variants applied")); err != nil {
		return nil, fmt.Errorf("overlock counter: %w", err)
	}
	if m.hits, err = meter.Float64Counter("stardrift.player.damage", metric.WithDescription("Damage taken by the ship")); err != nil {
		return nil, fmt.Errorf("damage counter: %w", err)
	}
	if m.xp, err = meter.Float64Counter("stardrift.xp", metric.WithDescription("XP collected")); err != nil {
		return nil, fmt.Errorf("xp counter: %w", err)
	}
	if m.runs, err = meter.Int64Counter("stardrift.runs", metric.WithDescription("Runs finished")); err != nil {
		return nil, fmt.Errorf("runs counter: %w", err)
	}
	if m.duration, err = meter.Float64Histogram("stardrift.run.duration", metric.WithUnit("s"), metric.WithDescription("Run length")); err != nil {
		return nil, fmt.Errorf("duration histogram: %w", err)
	}
	return &m, nil
}

// Observe records one drained simulation event
func (m *Metrics) Observe(ctx context.Context, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.EnemyKilledPayload:
		m.kills.Add(ctx, 1, metric.WithAttributes(
			attribute.String("kind", string(p.Kind)),
			attribute.String("weapon", string(p.Source)),
			attribute.Bool("marked", p.Marked),
		))
	case *event.LevelUpPayload:
		m.levels.Add(ctx, 1, metric.WithAttributes(attribute.Bool("overlock", p.Overlock)))
	case *event.OverlockAppliedPayload:
		m.overlock.Add(ctx, 1, metric.WithAttributes(
			attribute.String("weapon", string(p.Weapon)),
			attribute.String("variant", p.Variant.String()),
		))
	case *event.PlayerHitPayload:
		if !p.Absorbed {
			m.hits.Add(ctx, p.Amount)
		}
	case *event.XPCollectedPayload:
		m.xp.Add(ctx, p.XP)
	case *event.RunEndedPayload:
		attrs := metric.WithAttributes(attribute.String("zone", string(p.Zone)), attribute.Bool("died", p.Died))
		m.runs.Add(ctx, 1, attrs)
		m.duration.Record(ctx, p.Time, attrs)
	}
}
