package thing

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
)

// Thing is a single entity placed in a world: an agent, an obstacle, a hole
// or any other kind defined in things.json. Identity is fixed at creation;
// position is owned by the world the thing lives in.
type Thing struct {
	ID             string              // Unique identifier, assigned at creation
	Kind           string              // Kind identifier (e.g., "agent")
	Name           string              // Display name (e.g., "BraveAgent")
	X, Y           int                 // Position in the world
	Glyph          rune                // Display symbol
	Color          string              // Hex color code for rendering
	CanMove        bool                // Whether this thing can be moved
	CanBeDestroyed bool                // Whether this thing can be destroyed
	CanDestroy     map[string]struct{} // Kinds this thing destroys on contact
}

// New creates a thing of the given kind definition at the specified position.
func New(def *Def, name string, x, y int) *Thing {
	canDestroy := make(map[string]struct{}, len(def.CanDestroy))
	for _, kind := range def.CanDestroy {
		canDestroy[kind] = struct{}{}
	}
	return &Thing{
		ID:             uuid.NewString(),
		Kind:           def.Kind,
		Name:           name,
		X:              x,
		Y:              y,
		Glyph:          def.GlyphRune(),
		Color:          def.Color,
		CanMove:        def.CanMove,
		CanBeDestroyed: def.CanBeDestroyed,
		CanDestroy:     canDestroy,
	}
}

// Position returns the thing's current x, y coordinates.
func (t *Thing) Position() (int, int) {
	return t.X, t.Y
}

// TCellColor returns the color as a tcell.Color.
func (t *Thing) TCellColor() tcell.Color {
	color, err := ParseHexColor(t.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// Destroys reports whether contact with t destroys other.
func (t *Thing) Destroys(other *Thing) bool {
	if other == nil || !other.CanBeDestroyed {
		return false
	}
	_, ok := t.CanDestroy[other.Kind]
	return ok
}

// IsDestroyedBy reports whether contact with other destroys t.
func (t *Thing) IsDestroyedBy(other *Thing) bool {
	if other == nil {
		return false
	}
	return other.Destroys(t)
}

// Pushes reports whether t can shove other out of its cell. Both sides must
// be movable and neither may destroy the other; a destructive contact is a
// destruction, not a push.
func (t *Thing) Pushes(other *Thing) bool {
	if other == nil {
		return false
	}
	if !t.CanMove || !other.CanMove {
		return false
	}
	if t.Destroys(other) || t.IsDestroyedBy(other) {
		return false
	}
	return true
}
