package display

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"tilerealm/internal/event"
	"tilerealm/internal/thing"
	"tilerealm/internal/world"
)

var testDefs = thing.MustLoadRegistry()

func testWorld(t *testing.T) *world.World {
	t.Helper()
	cfg := world.Config{Name: "test", Width: 10, Height: 10}
	w, err := world.New(cfg, rand.New(rand.NewSource(12345)))
	if err != nil {
		t.Fatalf("Failed to create world: %v", err)
	}
	return w
}

func place(t *testing.T, w *world.World, kind, name string, x, y int) *thing.Thing {
	t.Helper()
	th := thing.New(testDefs.Get(kind), name, x, y)
	if _, err := w.Add(th, false, true); err != nil {
		t.Fatalf("Failed to place %s at (%d, %d): %v", kind, x, y, err)
	}
	return th
}

// simConsole builds a console on a simulation screen.
func simConsole(t *testing.T, w *world.World, cfg ConsoleConfig) *Console {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	c, err := newConsole(w, cfg, screen)
	if err != nil {
		t.Fatalf("Failed to create console: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

func cellRune(t *testing.T, c *Console, x, y int) rune {
	t.Helper()
	r, _, _, _ := c.screen.GetContent(x, y)
	return r
}

func TestConsoleRendersGlyphs(t *testing.T) {
	w := testWorld(t)
	place(t, w, thing.KindAgent, "hero", 2, 2)
	place(t, w, thing.KindObstacle, "wall", 4, 4)
	hole := place(t, w, thing.KindHole, "pit", 5, 5)

	c := simConsole(t, w, ConsoleConfig{})

	if r := cellRune(t, c, 2, 2); r != '@' {
		t.Errorf("Expected '@' at (2, 2), got %q", r)
	}
	if r := cellRune(t, c, 4, 4); r != '#' {
		t.Errorf("Expected '#' at (4, 4), got %q", r)
	}
	if r := cellRune(t, c, 5, 5); r != 'O' {
		t.Errorf("Expected 'O' at (5, 5), got %q", r)
	}
	if r := cellRune(t, c, 0, 0); r != ' ' {
		t.Errorf("Expected blank at (0, 0), got %q", r)
	}

	// Things carry their configured colors onto the screen
	_, _, style, _ := c.screen.GetContent(5, 5)
	fg, _, _ := style.Decompose()
	if want := hole.TCellColor(); fg != want {
		t.Errorf("Expected hole foreground %v, got %v", want, fg)
	}
}

func TestConsoleRejectsUnknownPlayer(t *testing.T) {
	w := testWorld(t)
	screen := tcell.NewSimulationScreen("UTF-8")

	_, err := newConsole(w, ConsoleConfig{Player: "ghost"}, screen)
	var notFound *world.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestConsoleMapsArrowKeysToMoves(t *testing.T) {
	w := testWorld(t)
	agent := place(t, w, thing.KindAgent, "hero", 2, 2)
	c := simConsole(t, w, ConsoleConfig{Player: agent.ID})

	steps := []struct {
		key  tcell.Key
		x, y int
	}{
		{tcell.KeyRight, 3, 2},
		{tcell.KeyDown, 3, 3},
		{tcell.KeyLeft, 2, 3},
		{tcell.KeyUp, 2, 2},
	}
	for _, step := range steps {
		c.handleKeyEvent(tcell.NewEventKey(step.key, 0, tcell.ModNone))
		if x, y := agent.Position(); x != step.x || y != step.y {
			t.Fatalf("After key %v expected (%d, %d), got (%d, %d)", step.key, step.x, step.y, x, y)
		}
		if r := cellRune(t, c, step.x, step.y); r != '@' {
			t.Errorf("Screen not refreshed at (%d, %d): got %q", step.x, step.y, r)
		}
	}
}

func TestConsoleSpectatorSendsNoActions(t *testing.T) {
	w := testWorld(t)
	agent := place(t, w, thing.KindAgent, "hero", 2, 2)
	c := simConsole(t, w, ConsoleConfig{})

	c.handleKeyEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if x, y := agent.Position(); x != 2 || y != 2 {
		t.Errorf("Spectator input moved the agent to (%d, %d)", x, y)
	}
}

func TestConsoleTurnsSpectatorWhenPlayerDestroyed(t *testing.T) {
	w := testWorld(t)
	agent := place(t, w, thing.KindAgent, "hero", 2, 2)
	place(t, w, thing.KindHole, "pit", 3, 2)
	c := simConsole(t, w, ConsoleConfig{Player: agent.ID})

	c.handleKeyEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))

	if w.Thing(agent.ID) != nil {
		t.Fatal("Agent should be destroyed by the hole")
	}
	if c.player != nil {
		t.Error("Console should drop its player reference")
	}
	if r := cellRune(t, c, 2, 2); r != ' ' {
		t.Errorf("Destroyed player still drawn: %q", r)
	}

	// Further input is ignored rather than crashing
	c.handleKeyEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
}

func TestConsoleQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{"Q", tcell.NewEventKey(tcell.KeyRune, 'Q', tcell.ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := testWorld(t)
			c := simConsole(t, w, ConsoleConfig{})
			c.handleKeyEvent(tt.ev)
			if c.running {
				t.Error("Console still running after quit key")
			}
		})
	}
}

func TestConsoleCloseCancelsSubscription(t *testing.T) {
	w := testWorld(t)
	agent := place(t, w, thing.KindAgent, "hero", 2, 2)

	screen := tcell.NewSimulationScreen("UTF-8")
	c, err := newConsole(w, ConsoleConfig{}, screen)
	if err != nil {
		t.Fatalf("Failed to create console: %v", err)
	}
	c.Close()

	// A closed console must not render on further world changes
	if err := w.Move(agent.ID, 5, 5); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if r := cellRune(t, c, 5, 5); r == '@' {
		t.Error("Closed console rendered a world change")
	}
}

func TestConsoleRendersWorldEvents(t *testing.T) {
	w := testWorld(t)
	agent := place(t, w, thing.KindAgent, "hero", 2, 2)
	c := simConsole(t, w, ConsoleConfig{})

	// Updates arrive through the subscription, not through input
	if err := w.Apply(event.NewActionEvent(event.Move{Actor: agent.ID, DX: 0, DY: 1})); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if r := cellRune(t, c, 2, 3); r != '@' {
		t.Errorf("Expected '@' at (2, 3) after world event, got %q", r)
	}
	if r := cellRune(t, c, 2, 2); r != ' ' {
		t.Errorf("Expected old cell cleared, got %q", r)
	}
}
