package event

// Stream delivers events to subscribers in subscription order. Delivery is
// synchronous: Publish returns once every subscriber has run. Like the world
// that feeds it, a Stream belongs to a single goroutine and is not safe for
// concurrent use.
type Stream struct {
	subs   []subscriber
	nextID int
}

type subscriber struct {
	id int
	fn func(Event)
}

// NewStream returns an empty stream.
func NewStream() *Stream {
	return &Stream{}
}

// Subscribe registers fn to receive every published event. The returned
// subscription stops delivery when cancelled.
func (s *Stream) Subscribe(fn func(Event)) Subscription {
	s.nextID++
	s.subs = append(s.subs, subscriber{id: s.nextID, fn: fn})
	return Subscription{stream: s, id: s.nextID}
}

// Publish delivers ev to every current subscriber. Subscribers added or
// cancelled during delivery take effect from the next publish.
func (s *Stream) Publish(ev Event) {
	current := make([]subscriber, len(s.subs))
	copy(current, s.subs)
	for _, sub := range current {
		sub.fn(ev)
	}
}

// Len returns the number of active subscribers.
func (s *Stream) Len() int {
	return len(s.subs)
}

// Subscription identifies one subscriber on a stream.
type Subscription struct {
	stream *Stream
	id     int
}

// Cancel stops delivery to this subscriber. Cancelling twice is harmless.
func (s Subscription) Cancel() {
	if s.stream == nil {
		return
	}
	for i, sub := range s.stream.subs {
		if sub.id == s.id {
			s.stream.subs = append(s.stream.subs[:i], s.stream.subs[i+1:]...)
			return
		}
	}
}
