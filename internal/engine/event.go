package engine

// ListenerID identifies a subscription so it can be removed later.
type ListenerID uint64

// Event is a multi-cast event with no payload.
type Event struct {
	listeners []listener[struct{}]
	nextID    ListenerID
}

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// AddListener adds a callback to be invoked when the event fires.
// Returns 0 for a nil callback.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[struct{}]{
		id: e.nextID,
		fn: func(struct{}) { callback() },
	})
	return e.nextID
}

// RemoveListener unsubscribes the callback registered under id.
func (e *Event) RemoveListener(id ListenerID) {
	e.listeners = removeListener(e.listeners, id)
}

// Invoke calls all registered listeners in subscription order.
func (e *Event) Invoke() {
	for _, l := range e.listeners {
		l.fn(struct{}{})
	}
}

func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) {
	e.listeners = removeListener(e.listeners, id)
}

// Invoke is safe on a nil event so optional sinks need no guard.
func (e *EventWithArg[T]) Invoke(arg T) {
	if e == nil {
		return
	}
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}

func removeListener[T any](ls []listener[T], id ListenerID) []listener[T] {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...)
		}
	}
	return ls
}
