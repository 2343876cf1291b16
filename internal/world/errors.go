package world

import "fmt"

// ConfigurationError reports a missing or invalid configuration value.
type ConfigurationError struct {
	Field  string // Offending field or argument name
	Reason string // What was wrong with it
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration field %q %s", e.Field, e.Reason)
}

// CollisionError reports a placement or move into a cell that is already
// taken, or reuse of an id that is already present.
type CollisionError struct {
	ID         string // Thing that could not be placed or moved
	X, Y       int    // Contested cell
	OccupantID string // Thing already holding the cell or id
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("thing %s collides with %s at (%d, %d)", e.ID, e.OccupantID, e.X, e.Y)
}

// NotFoundError reports an id that no thing in the world answers to.
type NotFoundError struct {
	ID string // The unknown id
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no thing with id %s", e.ID)
}

// OutOfBoundsError reports coordinates outside the world rectangle.
type OutOfBoundsError struct {
	X, Y          int // Rejected coordinates
	Width, Height int // World dimensions
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d, %d) is outside the %dx%d world", e.X, e.Y, e.Width, e.Height)
}
