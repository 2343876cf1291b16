package display

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"tilerealm/internal/event"
	"tilerealm/internal/logger"
	"tilerealm/internal/thing"
	"tilerealm/internal/world"
)

var log = logger.L()

// Console renders a world in the terminal, one glyph per thing, and maps
// arrow keys to Move actions for the configured player.
type Console struct {
	id      string
	world   *world.World
	cfg     ConsoleConfig
	screen  tcell.Screen
	player  *thing.Thing
	sub     event.Subscription
	running bool
}

var _ Display = (*Console)(nil)

// NewConsole creates a console on a fresh terminal screen. A configured
// player id must name a thing in the world.
func NewConsole(w *world.World, cfg ConsoleConfig) (*Console, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newConsole(w, cfg, screen)
}

// newConsole finishes construction on any screen, real or simulated.
func newConsole(w *world.World, cfg ConsoleConfig, screen tcell.Screen) (*Console, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	c := &Console{
		id:      uuid.NewString(),
		world:   w,
		cfg:     cfg,
		screen:  screen,
		running: true,
	}
	if cfg.Player != "" {
		player := w.Thing(cfg.Player)
		if player == nil {
			screen.Fini()
			return nil, &world.NotFoundError{ID: cfg.Player}
		}
		c.player = player
	}
	if cfg.Tileset != "" {
		log.Debugf("Tileset %q configured, glyph rendering ignores it", cfg.Tileset)
	}

	c.sub = w.Subscribe(c.Update)
	c.render()
	return c, nil
}

// ID returns the console's unique identifier.
func (c *Console) ID() string { return c.id }

// Show runs the input loop until the user quits with Escape, Ctrl-C or q.
func (c *Console) Show(ctx context.Context) error {
	for c.running {
		ev := c.screen.PollEvent()

		switch ev := ev.(type) {
		case *tcell.EventKey:
			c.handleKeyEvent(ev)
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
	return nil
}

// Update re-renders after any world event. Removal of the player turns the
// console into a spectator view.
func (c *Console) Update(ev event.Event) {
	if update, ok := ev.(event.UpdateEvent); ok && c.player != nil {
		if change, ok := update.Change.(event.Removed); ok && change.ID == c.player.ID {
			log.Infof("Player %q is gone, console keeps watching", c.player.Name)
			c.player = nil
		}
	}
	c.render()
}

// Close cancels the world subscription and restores the terminal.
func (c *Console) Close() {
	c.sub.Cancel()
	c.screen.Fini()
}

// handleKeyEvent processes keyboard input.
func (c *Console) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.running = false

	case tcell.KeyUp:
		c.movePlayer(0, -1)
	case tcell.KeyDown:
		c.movePlayer(0, 1)
	case tcell.KeyLeft:
		c.movePlayer(-1, 0)
	case tcell.KeyRight:
		c.movePlayer(1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			c.running = false
		}
	}
}

// movePlayer feeds one step of player intent into the world.
func (c *Console) movePlayer(dx, dy int) {
	if c.player == nil {
		return
	}
	ev := event.NewActionEvent(event.Move{Actor: c.player.ID, DX: dx, DY: dy})
	if err := c.world.Apply(ev); err != nil {
		log.Errorf("Dropping action %s: %v", ev.EventID(), err)
	}
}

// render redraws the whole world, one glyph per thing. The player glyph is
// bold so it stands out among same-colored things.
func (c *Console) render() {
	c.screen.Clear()
	for _, th := range c.world.Things() {
		style := tcell.StyleDefault.Foreground(th.TCellColor())
		if c.player != nil && th.ID == c.player.ID {
			style = style.Bold(true)
		}
		c.screen.SetContent(th.X, th.Y, th.Glyph, nil, style)
	}
	c.screen.Show()
}
