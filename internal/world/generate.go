package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"tilerealm/internal/telemetry"
	"tilerealm/internal/thing"
)

// Generate populates an empty world: the agent goes to the center cell and
// becomes the designated agent, then obstacles, holes and tiles are
// scattered at random positions. Placement is attempt-based; an attempt
// landing on a taken cell is dropped, so seeded counts track the configured
// densities approximately rather than exactly.
func (w *World) Generate(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	if len(w.things) > 0 {
		return fmt.Errorf("world %q is already populated", w.name)
	}

	agentDef := w.defs.Get(thing.KindAgent)
	if agentDef == nil {
		return fmt.Errorf("kind %q is not defined", thing.KindAgent)
	}
	agent := thing.New(agentDef, w.namer.Random(thing.KindAgent), w.width/2, w.height/2)
	if _, err := w.Add(agent, false, true); err != nil {
		return err
	}
	w.agentID = agent.ID

	cells := w.width * w.height
	obstacleCount := int(w.cfg.Obstacles * float64(cells))
	holeCount := int(w.cfg.Holes * float64(cells))

	placed := make(map[string]int)
	seeds := []struct {
		kind  string
		count int
	}{
		{thing.KindObstacle, obstacleCount},
		{thing.KindHole, holeCount},
		{thing.KindTile, holeCount}, // one pushable tile per hole
	}
	for _, seed := range seeds {
		n, err := w.scatter(seed.kind, seed.count)
		if err != nil {
			return err
		}
		placed[seed.kind] = n
	}

	span.SetAttributes(
		attribute.String("world.id", w.id),
		attribute.String("world.name", w.name),
		attribute.Int("world.width", w.width),
		attribute.Int("world.height", w.height),
		attribute.Int("world.things", len(w.things)),
		attribute.Int("world.obstacles", placed[thing.KindObstacle]),
		attribute.Int("world.holes", placed[thing.KindHole]),
		attribute.Int("world.tiles", placed[thing.KindTile]),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	log.Infof("Generated world %q with %d things", w.name, len(w.things))
	return nil
}

// scatter makes count attempts to place things of the given kind at random
// cells, dropping attempts that collide. Returns the number placed.
func (w *World) scatter(kind string, count int) (int, error) {
	def := w.defs.Get(kind)
	if def == nil {
		return 0, fmt.Errorf("kind %q is not defined", kind)
	}

	placed := 0
	for i := 0; i < count; i++ {
		t := thing.New(def, w.namer.Random(kind), w.rng.Intn(w.width), w.rng.Intn(w.height))
		ok, err := w.Add(t, false, true)
		if err != nil {
			var collision *CollisionError
			if errors.As(err, &collision) {
				continue
			}
			return placed, err
		}
		if ok {
			placed++
		}
	}
	return placed, nil
}
