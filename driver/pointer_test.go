package driver

import "testing"

func TestPointerNotifiesOnChangeOnly(t *testing.T) {
	var p Pointer
	calls := 0
	unsub := p.Subscribe(func(x, y float64) { calls++ })

	p.Move(1, 2)
	p.Move(1, 2)
	p.Move(3, 4)
	if calls != 2 {
		t.Fatalf("calls = %d, want 2", calls)
	}

	unsub()
	p.Move(5, 6)
	if calls != 2 || p.Subscribers() != 0 {
		t.Fatalf("calls = %d subs = %d after unsubscribe", calls, p.Subscribers())
	}
}

func TestPointerReplaysKnownPosition(t *testing.T) {
	var p Pointer
	p.Move(7, 8)
	var gx, gy float64
	p.Subscribe(func(x, y float64) { gx, gy = x, y })
	if gx != 7 || gy != 8 {
		t.Fatalf("replayed (%v, %v), want (7, 8)", gx, gy)
	}
}

func TestDriverWithRealPointer(t *testing.T) {
	h := newHarness()
	var p Pointer
	h.d.opts.Pointer = &p
	h.d.Enable()
	p.Move(10, 10)
	h.sched.RunFrame()
	if x, y, ok := h.d.Pointer(); !ok || x != 10 || y != 10 {
		t.Fatalf("driver pointer = (%v, %v, %v)", x, y, ok)
	}
	h.d.Disable()
	if p.Subscribers() != 0 {
		t.Error("driver left its subscription behind")
	}
}
