// Package display provides the observer boundary of a world: displays
// subscribe to world events, render world state, and feed user intent back
// in as action events.
package display

import (
	"context"

	"tilerealm/internal/event"
	"tilerealm/internal/world"
)

// Display consumes world events and presents world state. A display owns
// its subscription; Close releases it along with any terminal state.
type Display interface {
	// Show runs the display loop until the user quits.
	Show(ctx context.Context) error

	// Update reacts to one world event, typically by re-rendering.
	Update(ev event.Event)

	// Close cancels the subscription and restores the terminal.
	Close()
}

// ConsoleConfig configures a Console. The player is optional: without one
// the console is a spectator view that renders but sends no actions.
type ConsoleConfig struct {
	Player  string // Id of the thing driven by keyboard input
	Tileset string // Path to a tile image, unused by glyph rendering
}

// BuildConsoleConfig creates a console configuration from raw key/value
// pairs, typically the decoded "console" section of a YAML file.
func BuildConsoleConfig(raw map[string]any) (ConsoleConfig, error) {
	var cfg ConsoleConfig
	for key, value := range raw {
		switch key {
		case "player":
			s, ok := value.(string)
			if !ok {
				return ConsoleConfig{}, &world.ConfigurationError{Field: "player", Reason: "must be a string"}
			}
			cfg.Player = s
		case "tileset":
			s, ok := value.(string)
			if !ok {
				return ConsoleConfig{}, &world.ConfigurationError{Field: "tileset", Reason: "must be a string"}
			}
			cfg.Tileset = s
		default:
			return ConsoleConfig{}, &world.ConfigurationError{Field: key, Reason: "is not a recognized key"}
		}
	}
	return cfg, nil
}

// ConsoleOption overrides a single field on a copied console configuration.
type ConsoleOption func(*ConsoleConfig)

// WithPlayer overrides the player id.
func WithPlayer(id string) ConsoleOption {
	return func(c *ConsoleConfig) { c.Player = id }
}

// WithTileset overrides the tileset path.
func WithTileset(path string) ConsoleOption {
	return func(c *ConsoleConfig) { c.Tileset = path }
}

// Copy returns a configuration derived from c with the given overrides
// applied. The receiver is left untouched.
func (c ConsoleConfig) Copy(opts ...ConsoleOption) ConsoleConfig {
	derived := c
	for _, opt := range opts {
		opt(&derived)
	}
	return derived
}
