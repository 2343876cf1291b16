// Package namegen generates display names for things by pairing a random
// adjective with the kind, as in "BraveAgent" or "MistyHole".
package namegen

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
)

//go:embed adjectives.json
var dataFS embed.FS

type wordFile struct {
	Adjectives []string `json:"adjectives"`
}

// loadAdjectives reads the embedded word list.
func loadAdjectives() ([]string, error) {
	content, err := dataFS.ReadFile("adjectives.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded file adjectives.json: %w", err)
	}
	var file wordFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse JSON from adjectives.json: %w", err)
	}
	if len(file.Adjectives) == 0 {
		return nil, fmt.Errorf("no adjectives loaded from adjectives.json")
	}
	return file.Adjectives, nil
}

// Namer hands out names unique for its lifetime. A world owns one Namer, so
// two things in the same world never share a name. Like the world, a Namer
// is not safe for concurrent use.
type Namer struct {
	rng   *rand.Rand
	words []string
	used  map[string]struct{}
}

// New creates a namer drawing randomness from rng.
func New(rng *rand.Rand) (*Namer, error) {
	words, err := loadAdjectives()
	if err != nil {
		return nil, err
	}
	return &Namer{
		rng:   rng,
		words: words,
		used:  make(map[string]struct{}),
	}, nil
}

// MustNew creates a namer, panicking on error.
func MustNew(rng *rand.Rand) *Namer {
	namer, err := New(rng)
	if err != nil {
		panic(err)
	}
	return namer
}

// Random returns a fresh "<Adjective><Kind>" name not handed out before.
// Once the adjective pool is exhausted for a kind, a numeric suffix keeps
// names unique.
func (n *Namer) Random(kind string) string {
	suffix := capitalize(kind)
	for attempt := 0; attempt < len(n.words); attempt++ {
		name := capitalize(n.words[n.rng.Intn(len(n.words))]) + suffix
		if n.claim(name) {
			return name
		}
	}
	for i := 2; ; i++ {
		name := fmt.Sprintf("%s%s%d", capitalize(n.words[n.rng.Intn(len(n.words))]), suffix, i)
		if n.claim(name) {
			return name
		}
	}
}

// claim records a name, reporting false if it was already taken.
func (n *Namer) claim(name string) bool {
	if _, taken := n.used[name]; taken {
		return false
	}
	n.used[name] = struct{}{}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
