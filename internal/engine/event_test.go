package engine

import "testing"

func TestEventInvokeOrder(t *testing.T) {
	var e Event
	var order []int

	e.AddListener(func() { order = append(order, 1) })
	e.AddListener(func() { order = append(order, 2) })
	e.Invoke()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected listeners in subscription order, got %v", order)
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e EventWithArg[int]
	sum := 0

	id := e.AddListener(func(v int) { sum += v })
	e.AddListener(func(v int) { sum += v * 10 })

	e.RemoveListener(id)
	e.Invoke(2)

	if sum != 20 {
		t.Errorf("Expected 20 after removing first listener, got %d", sum)
	}
	if e.ListenerCount() != 1 {
		t.Errorf("Expected 1 listener, got %d", e.ListenerCount())
	}
}

func TestEventNilCallbackIgnored(t *testing.T) {
	var e EventWithArg[string]
	if id := e.AddListener(nil); id != 0 {
		t.Errorf("Expected id 0 for nil callback, got %d", id)
	}
	if e.ListenerCount() != 0 {
		t.Error("nil callback should not be registered")
	}
}

func TestEventRemoveDuringInvoke(t *testing.T) {
	var e EventWithArg[int]
	calls := 0
	var first ListenerID
	first = e.AddListener(func(int) {
		calls++
		e.RemoveListener(first)
	})
	e.AddListener(func(int) { calls++ })

	e.Invoke(0)
	if calls != 2 {
		t.Errorf("Expected both listeners to run on the first invoke, got %d", calls)
	}

	e.Invoke(0)
	if calls != 3 {
		t.Errorf("Expected only the remaining listener on the second invoke, got %d", calls)
	}
}

func TestNilEventInvoke(t *testing.T) {
	var e *EventWithArg[int]
	e.Invoke(1)
}
