package events

import "testing"

func TestOnAndEmit(t *testing.T) {
	e := NewEmitter()

	count := 0
	e.On("changed", func() { count++ })

	e.Emit("changed")
	e.Emit("changed")

	if count != 2 {
		t.Errorf("Expected handler to run twice, ran %d times", count)
	}
}

func TestEmitOrder(t *testing.T) {
	e := NewEmitter()

	var order []int
	e.On("changed", func() { order = append(order, 1) })
	e.On("changed", func() { order = append(order, 2) })
	e.On("changed", func() { order = append(order, 3) })

	e.Emit("changed")

	if len(order) != 3 {
		t.Fatalf("Expected 3 handler runs, got %d", len(order))
	}
	for i, v := range order {
		if v != i+1 {
			t.Errorf("Handler %d ran out of order (got %d)", i+1, v)
		}
	}
}

func TestOff(t *testing.T) {
	e := NewEmitter()

	count := 0
	id := e.On("changed", func() { count++ })

	e.Emit("changed")
	e.Off("changed", id)
	e.Emit("changed")

	if count != 1 {
		t.Errorf("Expected handler to run once after Off, ran %d times", count)
	}

	// Removing an unknown id must not panic or affect anything
	e.Off("changed", 999)
	e.Off("unknown", id)
}

func TestOnce(t *testing.T) {
	e := NewEmitter()

	count := 0
	e.Once("changed", func() { count++ })

	e.Emit("changed")
	e.Emit("changed")

	if count != 1 {
		t.Errorf("Expected once-handler to run exactly once, ran %d times", count)
	}
	if e.HandlerCount("changed") != 0 {
		t.Errorf("Expected once-handler to be unregistered after firing")
	}
}

func TestOnceReentrantEmit(t *testing.T) {
	e := NewEmitter()

	reemitted := false
	e.On("changed", func() {
		if !reemitted {
			reemitted = true
			e.Emit("changed")
		}
	})

	count := 0
	e.Once("changed", func() { count++ })

	// The once-handler fires in the nested emit; the outer dispatch must
	// then skip it instead of running the consumed handler again.
	e.Emit("changed")

	if count != 1 {
		t.Errorf("Expected once-handler to survive re-entrant emit exactly once, ran %d times", count)
	}
}

func TestSubscribeDuringEmit(t *testing.T) {
	e := NewEmitter()

	late := 0
	e.On("changed", func() {
		e.On("changed", func() { late++ })
	})

	e.Emit("changed")
	if late != 0 {
		t.Errorf("Handler added during dispatch must not run in the same dispatch")
	}

	e.Emit("changed")
	if late != 1 {
		t.Errorf("Handler added during previous dispatch should run once, ran %d times", late)
	}
}

func TestEmitUnknownEvent(t *testing.T) {
	e := NewEmitter()
	e.Emit("nothing-registered")
}
