package thing

import (
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Kinds shipped in things.json. Worlds may define further kinds; these are
// the ones the built-in seeding and interaction rules know about.
const (
	KindAgent    = "agent"
	KindObstacle = "obstacle"
	KindHole     = "hole"
	KindTile     = "tile"
)

// Def defines a kind of thing loaded from JSON.
type Def struct {
	Kind           string   `json:"kind"`           // Unique kind identifier (e.g., "hole")
	Glyph          string   `json:"glyph"`          // Single character for rendering (e.g., "O")
	Color          string   `json:"color"`          // Hex color code (e.g., "#00FF00")
	CanMove        bool     `json:"canMove"`        // Whether things of this kind can be moved
	CanBeDestroyed bool     `json:"canBeDestroyed"` // Whether things of this kind can be destroyed
	CanDestroy     []string `json:"canDestroy"`     // Kinds that things of this kind destroy on contact
}

// GlyphRune returns the glyph as a rune for rendering.
func (d *Def) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (d *Def) TCellColor() tcell.Color {
	color, err := ParseHexColor(d.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// DefsFile represents the structure of things.json.
type DefsFile struct {
	Things []Def `json:"things"`
}

// LoadDefs loads kind definitions from the embedded things.json file.
func LoadDefs() ([]Def, error) {
	file, err := Load[DefsFile]("things.json")
	if err != nil {
		return nil, err
	}
	return file.Things, nil
}

// MustLoadDefs loads kind definitions, panicking on error.
func MustLoadDefs() []Def {
	defs, err := LoadDefs()
	if err != nil {
		panic(err)
	}
	return defs
}

// Registry holds loaded kind definitions and provides lookup utilities.
// Kind identifiers are case-insensitive and normalized to lower case.
type Registry struct {
	byKind map[string]*Def
	all    []Def
}

// NewRegistry creates a registry from loaded kind definitions.
func NewRegistry(defs []Def) *Registry {
	registry := &Registry{
		byKind: make(map[string]*Def),
		all:    defs,
	}
	for i := range defs {
		defs[i].Kind = strings.ToLower(defs[i].Kind)
		for j, kind := range defs[i].CanDestroy {
			defs[i].CanDestroy[j] = strings.ToLower(kind)
		}
		registry.byKind[defs[i].Kind] = &defs[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded things.json.
func LoadRegistry() (*Registry, error) {
	defs, err := LoadDefs()
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, errors.New("no kind definitions loaded from things.json")
	}
	return NewRegistry(defs), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the definition for the given kind, or nil if not found.
func (r *Registry) Get(kind string) *Def {
	return r.byKind[strings.ToLower(kind)]
}

// All returns all kind definitions.
func (r *Registry) All() []Def {
	return r.all
}

// Count returns the number of kinds in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
