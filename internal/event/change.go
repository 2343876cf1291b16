package event

// Change describes a single settled mutation of world state. The union is
// closed: Added, Removed and Moved are the only members, so consumers can
// switch over them exhaustively.
type Change interface {
	// Subject returns the id of the thing the change is about.
	Subject() string

	isChange()
}

// Added reports that a thing entered the world.
type Added struct {
	ID   string // Id of the added thing
	Kind string // Kind of the added thing
	X    int    // Column it was placed at
	Y    int    // Row it was placed at
}

// Subject returns the id of the added thing.
func (c Added) Subject() string { return c.ID }

func (Added) isChange() {}

// Removed reports that a thing left the world.
type Removed struct {
	ID string // Id of the removed thing
}

// Subject returns the id of the removed thing.
func (c Removed) Subject() string { return c.ID }

func (Removed) isChange() {}

// Moved reports that a thing now occupies a new position.
type Moved struct {
	ID string // Id of the moved thing
	X  int    // New column
	Y  int    // New row
}

// Subject returns the id of the moved thing.
func (c Moved) Subject() string { return c.ID }

func (Moved) isChange() {}

// UpdateEvent wraps a change for delivery to observers.
type UpdateEvent struct {
	Header
	Change Change
}

// NewUpdateEvent returns an update event carrying the given change.
func NewUpdateEvent(c Change) UpdateEvent {
	return UpdateEvent{Header: NewHeader(), Change: c}
}

var (
	_ Change = Added{}
	_ Change = Removed{}
	_ Change = Moved{}
)
