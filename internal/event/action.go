package event

// Action is a request for a thing to do something. The set of actions is
// closed: each implementation lives in this package.
type Action interface {
	// ActorID returns the id of the thing the action applies to.
	ActorID() string

	isAction()
}

// Move asks the actor to step by a relative offset.
type Move struct {
	Actor string // Id of the thing to move
	DX    int    // Horizontal step, negative is left
	DY    int    // Vertical step, negative is up
}

// ActorID returns the id of the thing to move.
func (m Move) ActorID() string { return m.Actor }

func (Move) isAction() {}

// ActionEvent wraps an action for submission to a world.
type ActionEvent struct {
	Header
	Action Action
}

// NewActionEvent returns an action event carrying the given action.
func NewActionEvent(a Action) ActionEvent {
	return ActionEvent{Header: NewHeader(), Action: a}
}

// Result reports the outcome of a processed action event. Results are
// notifications, not errors: a blocked move is a normal outcome.
type Result interface {
	Event

	// ActionEvent returns the id of the action event this result answers.
	ActionEvent() string

	isResult()
}

// ActionSucceeded reports that the action was carried out.
type ActionSucceeded struct {
	Header
	ActionEventID string
}

// NewActionSucceeded returns a success result for the given action event.
func NewActionSucceeded(actionEventID string) ActionSucceeded {
	return ActionSucceeded{Header: NewHeader(), ActionEventID: actionEventID}
}

// ActionEvent returns the id of the answered action event.
func (r ActionSucceeded) ActionEvent() string { return r.ActionEventID }

func (ActionSucceeded) isResult() {}

// ActionNotAllowed reports that the actor is not capable of the action,
// such as a move requested for an immovable thing.
type ActionNotAllowed struct {
	Header
	ActionEventID string
}

// NewActionNotAllowed returns a not-allowed result for the given action event.
func NewActionNotAllowed(actionEventID string) ActionNotAllowed {
	return ActionNotAllowed{Header: NewHeader(), ActionEventID: actionEventID}
}

// ActionEvent returns the id of the answered action event.
func (r ActionNotAllowed) ActionEvent() string { return r.ActionEventID }

func (ActionNotAllowed) isResult() {}

// ActionBlocked reports that something stood in the way. BlockedBy names the
// obstructing thing, or is empty when the world edge did the blocking.
type ActionBlocked struct {
	Header
	ActionEventID string
	BlockedBy     string
}

// NewActionBlocked returns a blocked result for the given action event.
func NewActionBlocked(actionEventID, blockedBy string) ActionBlocked {
	return ActionBlocked{Header: NewHeader(), ActionEventID: actionEventID, BlockedBy: blockedBy}
}

// ActionEvent returns the id of the answered action event.
func (r ActionBlocked) ActionEvent() string { return r.ActionEventID }

func (ActionBlocked) isResult() {}

// ActorDestroyed reports that carrying out the action destroyed the actor,
// such as an agent stepping into a hole. DestroyedBy names the destroyer.
type ActorDestroyed struct {
	Header
	ActionEventID string
	DestroyedBy   string
}

// NewActorDestroyed returns a destroyed result for the given action event.
func NewActorDestroyed(actionEventID, destroyedBy string) ActorDestroyed {
	return ActorDestroyed{Header: NewHeader(), ActionEventID: actionEventID, DestroyedBy: destroyedBy}
}

// ActionEvent returns the id of the answered action event.
func (r ActorDestroyed) ActionEvent() string { return r.ActionEventID }

func (ActorDestroyed) isResult() {}

var (
	_ Action = Move{}
	_ Result = ActionSucceeded{}
	_ Result = ActionNotAllowed{}
	_ Result = ActionBlocked{}
	_ Result = ActorDestroyed{}
)
