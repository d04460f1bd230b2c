package stream

import (
	"sync"
	"testing"
)

func TestSubscribeAndPublish(t *testing.T) {
	s := New()

	var received []string
	id := s.Subscribe(func(p Press) {
		received = append(received, p.QualifiedID)
	})

	if id == "" {
		t.Error("Subscribe should return a non-empty handle")
	}

	s.Publish(NewPress("checkout.exit"))

	if len(received) != 1 || received[0] != "checkout.exit" {
		t.Errorf("received = %v, want [checkout.exit]", received)
	}
}

func TestDeliveryOrder(t *testing.T) {
	s := New()

	var order []string
	s.Subscribe(func(p Press) { order = append(order, "first") })
	s.Subscribe(func(p Press) { order = append(order, "second") })

	s.Publish(NewPress("a.x"))

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("delivery order = %v, want [first second]", order)
	}
}

func TestPressOrderPreserved(t *testing.T) {
	s := New()

	var ids []string
	s.Subscribe(func(p Press) { ids = append(ids, p.QualifiedID) })

	s.Publish(NewPress("a.one"))
	s.Publish(NewPress("a.two"))
	s.Publish(NewPress("a.three"))

	want := []string{"a.one", "a.two", "a.three"}
	for i, w := range want {
		if ids[i] != w {
			t.Errorf("press %d = %q, want %q", i, ids[i], w)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	s := New()

	called := false
	id := s.Subscribe(func(p Press) { called = true })

	if removed := s.Unsubscribe(id); !removed {
		t.Error("Unsubscribe should return true for a live handle")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after unsubscribe, want 0", s.Len())
	}

	s.Publish(NewPress("a.x"))
	if called {
		t.Error("handler should not run after unsubscribe")
	}
}

func TestUnsubscribeUnknownHandle(t *testing.T) {
	s := New()
	if s.Unsubscribe("press-999") {
		t.Error("Unsubscribe should return false for an unknown handle")
	}
}

func TestUnsubscribeOne(t *testing.T) {
	s := New()

	calls := make(map[string]int)
	id1 := s.Subscribe(func(p Press) { calls["one"]++ })
	s.Subscribe(func(p Press) { calls["two"]++ })

	s.Unsubscribe(id1)
	s.Publish(NewPress("a.x"))

	if calls["one"] != 0 {
		t.Error("unsubscribed handler should not run")
	}
	if calls["two"] != 1 {
		t.Error("remaining handler should still run")
	}
}

func TestHandlerPanicRecovery(t *testing.T) {
	s := New()

	calls := 0
	s.Subscribe(func(p Press) {
		calls++
		panic("screen bug")
	})
	s.Subscribe(func(p Press) { calls++ })

	// Must not panic, and delivery must continue.
	s.Publish(NewPress("a.x"))

	if calls != 2 {
		t.Errorf("expected both handlers to run despite panic, got %d", calls)
	}
}

func TestConcurrentPublish(t *testing.T) {
	s := New()

	var mu sync.Mutex
	calls := 0
	s.Subscribe(func(p Press) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Publish(NewPress("a.x"))
		}()
	}
	wg.Wait()

	if calls != 100 {
		t.Errorf("calls = %d, want 100", calls)
	}
}

func TestUniqueHandles(t *testing.T) {
	s := New()

	ids := make(map[string]bool)
	for range 50 {
		id := s.Subscribe(func(p Press) {})
		if ids[id] {
			t.Errorf("duplicate handle %q", id)
		}
		ids[id] = true
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Subscribe(func(p Press) {})
	s.Subscribe(func(p Press) {})

	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", s.Len())
	}
}
