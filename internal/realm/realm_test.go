package realm

import (
	"context"
	"errors"
	"testing"

	"tilerealm/internal/world"
)

func testConfig() *Config {
	cfg := defConfig()
	cfg.Settings.Seed = 99
	cfg.World["width"] = 10
	cfg.World["height"] = 10
	cfg.World["obstacles"] = 0.05
	cfg.World["holes"] = 0.0
	return cfg
}

func TestNewWorld(t *testing.T) {
	w, err := NewWorld(context.Background(), testConfig())
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}

	if w.Name() != "realm" {
		t.Errorf("Expected world name \"realm\", got %q", w.Name())
	}
	if w.Width() != 10 || w.Height() != 10 {
		t.Errorf("Expected 10x10 world, got %dx%d", w.Width(), w.Height())
	}

	agent := w.Agent()
	if agent == nil {
		t.Fatal("Expected a designated agent")
	}
	if x, y := agent.Position(); x != 5 || y != 5 {
		t.Errorf("Expected agent at (5, 5), got (%d, %d)", x, y)
	}
}

func TestNewWorldSeedReproducible(t *testing.T) {
	ctx := context.Background()

	first, err := NewWorld(ctx, testConfig())
	if err != nil {
		t.Fatalf("Failed to build first world: %v", err)
	}
	second, err := NewWorld(ctx, testConfig())
	if err != nil {
		t.Fatalf("Failed to build second world: %v", err)
	}

	if first.Count() != second.Count() {
		t.Errorf("Same seed produced %d and %d things", first.Count(), second.Count())
	}
}

func TestNewWorldRejectsBadSection(t *testing.T) {
	cfg := testConfig()
	cfg.World["volume"] = 11

	_, err := NewWorld(context.Background(), cfg)
	var cfgErr *world.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigurationError, got %v", err)
	}
}

func TestConsoleConfigDefaultsToAgent(t *testing.T) {
	cfg := testConfig()
	w, err := NewWorld(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}

	ccfg, err := consoleConfig(cfg, w)
	if err != nil {
		t.Fatalf("Failed to build console config: %v", err)
	}
	if ccfg.Player != w.Agent().ID {
		t.Errorf("Expected player %q, got %q", w.Agent().ID, ccfg.Player)
	}
}

func TestConsoleConfigKeepsExplicitPlayer(t *testing.T) {
	cfg := testConfig()
	cfg.Console["player"] = "thing-7"
	w, err := NewWorld(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to build world: %v", err)
	}

	ccfg, err := consoleConfig(cfg, w)
	if err != nil {
		t.Fatalf("Failed to build console config: %v", err)
	}
	if ccfg.Player != "thing-7" {
		t.Errorf("Expected player \"thing-7\", got %q", ccfg.Player)
	}
}
