// Package realm assembles a configured world with the display observing it
// and runs the session.
package realm

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"tilerealm/internal/display"
	"tilerealm/internal/logger"
	"tilerealm/internal/telemetry"
	"tilerealm/internal/world"
)

var log = logger.L()

// Realm ties one world to the display observing it.
type Realm struct {
	cfg     *Config
	world   *world.World
	display display.Display
}

// NewWorld builds and populates the world described by the configuration.
// A zero seed draws a fresh seed from the clock.
func NewWorld(ctx context.Context, cfg *Config) (*world.World, error) {
	tracer := telemetry.Tracer("realm")
	ctx, span := tracer.Start(ctx, "realm.build")
	defer span.End()

	wcfg, err := world.Build(cfg.World)
	if err != nil {
		return nil, err
	}

	var rng *rand.Rand
	if cfg.Settings.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Settings.Seed))
	}

	w, err := world.New(wcfg, rng)
	if err != nil {
		return nil, err
	}
	if err := w.Generate(ctx); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.String("world.id", w.ID()),
		attribute.String("world.name", w.Name()),
		attribute.Int64("realm.seed", cfg.Settings.Seed),
	)
	return w, nil
}

// consoleConfig validates the console section. Without an explicit player
// the world's designated agent takes the seat.
func consoleConfig(cfg *Config, w *world.World) (display.ConsoleConfig, error) {
	ccfg, err := display.BuildConsoleConfig(cfg.Console)
	if err != nil {
		return display.ConsoleConfig{}, err
	}
	if ccfg.Player == "" {
		if agent := w.Agent(); agent != nil {
			ccfg = ccfg.Copy(display.WithPlayer(agent.ID))
		}
	}
	return ccfg, nil
}

// New builds the world and attaches a terminal console to it.
func New(ctx context.Context, cfg *Config) (*Realm, error) {
	w, err := NewWorld(ctx, cfg)
	if err != nil {
		return nil, err
	}
	ccfg, err := consoleConfig(cfg, w)
	if err != nil {
		return nil, err
	}
	con, err := display.NewConsole(w, ccfg)
	if err != nil {
		return nil, err
	}

	log.Infof("Realm ready, world %q with %d things", w.Name(), w.Count())
	return &Realm{cfg: cfg, world: w, display: con}, nil
}

// World returns the realm's world.
func (r *Realm) World() *world.World { return r.world }

// Run drives the display until the user quits.
func (r *Realm) Run(ctx context.Context) error {
	return r.display.Show(ctx)
}

// Close releases the display and its terminal.
func (r *Realm) Close() {
	if r.display != nil {
		r.display.Close()
	}
}
