package world

import (
	"fmt"

	"tilerealm/internal/event"
	"tilerealm/internal/thing"
)

// Apply carries out the action in ev. Outcomes land on the event stream as
// results; the error return is reserved for malformed input such as an
// unknown actor or an action type the world does not understand.
func (w *World) Apply(ev event.ActionEvent) error {
	defer w.flush()

	switch act := ev.Action.(type) {
	case event.Move:
		return w.applyMove(ev.EventID(), act)
	case nil:
		return &ConfigurationError{Field: "action", Reason: "is required"}
	default:
		return fmt.Errorf("unsupported action type %T", act)
	}
}

// applyMove resolves a Move action against the grid and whatever occupies
// the target cell. The whole resolution either applies or the world stays
// as it was; a rejected move is reported as a result event, never as a
// half-done mutation.
func (w *World) applyMove(eventID string, mv event.Move) error {
	actor := w.things[mv.Actor]
	if actor == nil {
		return &NotFoundError{ID: mv.Actor}
	}

	if !actor.CanMove {
		log.Debugf("%s %q is not movable", actor.Kind, actor.Name)
		w.emit(event.NewActionNotAllowed(eventID))
		return nil
	}

	x, y := actor.X+mv.DX, actor.Y+mv.DY
	if !w.inBounds(x, y) {
		log.Debugf("%s %q blocked by the world edge at (%d, %d)", actor.Kind, actor.Name, x, y)
		w.emit(event.NewActionBlocked(eventID, ""))
		return nil
	}

	occupant := w.Locate(x, y)
	if occupant == nil {
		w.relocate(actor, x, y)
		w.emit(event.NewActionSucceeded(eventID))
		return nil
	}

	switch {
	case actor.Pushes(occupant):
		if !w.shove(occupant, mv.DX, mv.DY) {
			log.Debugf("%s %q cannot push %s %q any further", actor.Kind, actor.Name, occupant.Kind, occupant.Name)
			w.emit(event.NewActionBlocked(eventID, occupant.ID))
			return nil
		}
		w.relocate(actor, x, y)
		w.emit(event.NewActionSucceeded(eventID))

	case actor.Destroys(occupant) && actor.IsDestroyedBy(occupant):
		log.Debugf("%s %q and %s %q destroyed each other", actor.Kind, actor.Name, occupant.Kind, occupant.Name)
		w.removeThing(actor)
		w.removeThing(occupant)
		w.emit(event.NewActorDestroyed(eventID, occupant.ID))

	case actor.Destroys(occupant):
		log.Debugf("%s %q destroyed %s %q", actor.Kind, actor.Name, occupant.Kind, occupant.Name)
		w.removeThing(occupant)
		w.relocate(actor, x, y)
		w.emit(event.NewActionSucceeded(eventID))

	case actor.IsDestroyedBy(occupant):
		log.Debugf("%s %q destroyed %s %q", occupant.Kind, occupant.Name, actor.Kind, actor.Name)
		w.removeThing(actor)
		w.emit(event.NewActorDestroyed(eventID, occupant.ID))

	default:
		log.Debugf("%s %q blocked by %s %q", actor.Kind, actor.Name, occupant.Kind, occupant.Name)
		w.emit(event.NewActionBlocked(eventID, occupant.ID))
	}
	return nil
}

// shove relocates a pushed thing one step, itself pushing or being consumed
// by whatever sits in its way. Pure push chains recurse before the first
// mutation, so a blocked chain reports false with the world untouched.
// Destructive contacts along the chain resolve immediately and always free
// the pushed thing's cell, so they report true.
func (w *World) shove(pushed *thing.Thing, dx, dy int) bool {
	x, y := pushed.X+dx, pushed.Y+dy
	if !w.inBounds(x, y) {
		return false
	}

	occupant := w.Locate(x, y)
	if occupant == nil {
		w.relocate(pushed, x, y)
		return true
	}

	switch {
	case pushed.Pushes(occupant):
		if !w.shove(occupant, dx, dy) {
			return false
		}
		w.relocate(pushed, x, y)
		return true
	case pushed.Destroys(occupant) && pushed.IsDestroyedBy(occupant):
		w.removeThing(pushed)
		w.removeThing(occupant)
		return true
	case pushed.Destroys(occupant):
		w.removeThing(occupant)
		w.relocate(pushed, x, y)
		return true
	case pushed.IsDestroyedBy(occupant):
		log.Debugf("%s %q consumed %s %q", occupant.Kind, occupant.Name, pushed.Kind, pushed.Name)
		w.removeThing(pushed)
		return true
	default:
		return false
	}
}
