package world

import (
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"tilerealm/internal/event"
	"tilerealm/internal/logger"
	"tilerealm/internal/namegen"
	"tilerealm/internal/thing"
)

var log = logger.L()

// point addresses one grid cell.
type point struct {
	x, y int
}

// World is a bounded grid of things. It owns its things map, a cell index
// kept in lockstep with it, and the event stream observers subscribe to.
// Every mutation either applies completely or leaves the world untouched,
// and events only go out once the mutation has settled.
//
// A World belongs to a single goroutine and is not safe for concurrent use.
type World struct {
	id     string
	cfg    Config
	name   string
	width  int
	height int

	things  map[string]*thing.Thing
	index   map[point]string // cell -> id of the thing holding it
	agentID string

	rng    *rand.Rand
	namer  *namegen.Namer
	defs   *thing.Registry
	stream *event.Stream
	queue  []event.Event
}

// New creates an empty world from a validated configuration. Randomness for
// seeding and naming is drawn from rng; pass nil to seed from the clock.
func New(cfg Config, rng *rand.Rand) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	defs, err := thing.LoadRegistry()
	if err != nil {
		return nil, err
	}
	namer, err := namegen.New(rng)
	if err != nil {
		return nil, err
	}

	w := &World{
		id:     uuid.NewString(),
		cfg:    cfg,
		name:   cfg.Name,
		width:  cfg.Width,
		height: cfg.Height,
		things: make(map[string]*thing.Thing),
		index:  make(map[point]string),
		rng:    rng,
		namer:  namer,
		defs:   defs,
		stream: event.NewStream(),
	}
	log.Infof("Constructing world %q (%dx%d)", w.name, w.width, w.height)
	return w, nil
}

// ID returns the world's unique identifier.
func (w *World) ID() string { return w.id }

// Name returns the world's display name.
func (w *World) Name() string { return w.name }

// Width returns the number of grid columns.
func (w *World) Width() int { return w.width }

// Height returns the number of grid rows.
func (w *World) Height() int { return w.height }

// Config returns the configuration the world was built from.
func (w *World) Config() Config { return w.cfg }

// Count returns the number of things currently in the world.
func (w *World) Count() int { return len(w.things) }

// Thing returns the thing with the given id, or nil.
func (w *World) Thing(id string) *thing.Thing {
	return w.things[id]
}

// Things returns all things in the world, ordered by id so callers iterate
// deterministically.
func (w *World) Things() []*thing.Thing {
	out := make([]*thing.Thing, 0, len(w.things))
	for _, t := range w.things {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Locate returns the thing occupying cell (x, y), or nil.
func (w *World) Locate(x, y int) *thing.Thing {
	id, ok := w.index[point{x, y}]
	if !ok {
		return nil
	}
	return w.things[id]
}

// FindByName returns the thing with the given name, or nil. Names are
// unique within a world.
func (w *World) FindByName(name string) *thing.Thing {
	for _, t := range w.things {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Agent returns the designated agent, or nil when none is designated.
func (w *World) Agent() *thing.Thing {
	if w.agentID == "" {
		return nil
	}
	return w.things[w.agentID]
}

// SetAgent designates the thing with the given id as the world's agent,
// replacing any previous designation.
func (w *World) SetAgent(id string) error {
	if w.things[id] == nil {
		return &NotFoundError{ID: id}
	}
	w.agentID = id
	return nil
}

// Subscribe registers fn to receive the world's update and result events.
func (w *World) Subscribe(fn func(event.Event)) event.Subscription {
	return w.stream.Subscribe(fn)
}

// Add places t in the world. replace controls whether a thing already
// holding t's id or cell is evicted to make room; without it a contested
// placement fails with a CollisionError and the sitting thing stays.
// silent suppresses the Added change a successful placement would publish.
// The boolean reports whether the placement happened.
func (w *World) Add(t *thing.Thing, replace, silent bool) (bool, error) {
	defer w.flush()

	if t == nil {
		return false, &ConfigurationError{Field: "thing", Reason: "is required"}
	}
	if !w.inBounds(t.X, t.Y) {
		return false, &OutOfBoundsError{X: t.X, Y: t.Y, Width: w.width, Height: w.height}
	}

	existing := w.things[t.ID]
	occupant := w.Locate(t.X, t.Y)

	if replace {
		if existing != nil {
			w.removeThing(existing)
		}
		if occupant != nil && occupant.ID != t.ID {
			w.removeThing(occupant)
		}
	} else if existing != nil || occupant != nil {
		blocker := existing
		if occupant != nil {
			blocker = occupant
		}
		log.Debugf("Dropping %s %q: cell (%d, %d) contested by %q", t.Kind, t.Name, t.X, t.Y, blocker.Name)
		return false, &CollisionError{ID: t.ID, X: t.X, Y: t.Y, OccupantID: blocker.ID}
	}

	w.things[t.ID] = t
	w.index[point{t.X, t.Y}] = t.ID
	if !silent {
		w.emit(event.NewUpdateEvent(event.Added{ID: t.ID, Kind: t.Kind, X: t.X, Y: t.Y}))
	}
	return true, nil
}

// Remove deletes the thing with the given id and publishes the removal.
// Removing the designated agent clears the designation.
func (w *World) Remove(id string) error {
	defer w.flush()

	t := w.things[id]
	if t == nil {
		return &NotFoundError{ID: id}
	}
	w.removeThing(t)
	return nil
}

// Move relocates the thing with the given id to cell (x, y) and publishes
// the move. The destination must be free: Move is a placement primitive,
// and pushing or destroying an occupant is the action path's business.
func (w *World) Move(id string, x, y int) error {
	defer w.flush()

	t := w.things[id]
	if t == nil {
		return &NotFoundError{ID: id}
	}
	if !w.inBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, Width: w.width, Height: w.height}
	}
	if occupant := w.Locate(x, y); occupant != nil && occupant.ID != id {
		return &CollisionError{ID: id, X: x, Y: y, OccupantID: occupant.ID}
	}

	w.relocate(t, x, y)
	return nil
}

// inBounds reports whether (x, y) lies on the grid.
func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

// removeThing deletes t from the maps, clears the agent designation if t
// held it, and queues the Removed change.
func (w *World) removeThing(t *thing.Thing) {
	delete(w.things, t.ID)
	pt := point{t.X, t.Y}
	if w.index[pt] == t.ID {
		delete(w.index, pt)
	}
	if w.agentID == t.ID {
		w.agentID = ""
	}
	w.emit(event.NewUpdateEvent(event.Removed{ID: t.ID}))
}

// relocate updates t's cell in the maps and queues the Moved change.
func (w *World) relocate(t *thing.Thing, x, y int) {
	old := point{t.X, t.Y}
	if w.index[old] == t.ID {
		delete(w.index, old)
	}
	t.X, t.Y = x, y
	w.index[point{x, y}] = t.ID
	w.emit(event.NewUpdateEvent(event.Moved{ID: t.ID, X: x, Y: y}))
	log.Debugf("Moved %s %q to (%d, %d)", t.Kind, t.Name, x, y)
}

// emit queues an event for delivery once the running operation settles.
func (w *World) emit(ev event.Event) {
	w.queue = append(w.queue, ev)
}

// flush publishes queued events. It runs deferred from every public
// mutator, so observers never see a half-applied operation.
func (w *World) flush() {
	for len(w.queue) > 0 {
		pending := w.queue
		w.queue = nil
		for _, ev := range pending {
			w.stream.Publish(ev)
		}
	}
}
