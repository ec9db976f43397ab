package driver

// Pointer is a PointerSource fed by the host's input polling.
type Pointer struct {
	x, y  float64
	known bool

	nextID int
	subs   map[int]func(x, y float64)
}

// Move records a new position and notifies subscribers. Repeated positions are
// ignored.
func (p *Pointer) Move(x, y float64) {
	if p.known && p.x == x && p.y == y {
		return
	}
	p.x, p.y, p.known = x, y, true
	for _, fn := range p.subs {
		fn(x, y)
	}
}

// Position returns the last recorded position.
func (p *Pointer) Position() (x, y float64, ok bool) {
	return p.x, p.y, p.known
}

// Subscribe registers fn. A new subscriber immediately receives the current
// position if one is known.
func (p *Pointer) Subscribe(fn func(x, y float64)) func() {
	if p.subs == nil {
		p.subs = map[int]func(x, y float64){}
	}
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	if p.known {
		fn(p.x, p.y)
	}
	return func() { delete(p.subs, id) }
}

// Subscribers returns the number of active subscriptions.
func (p *Pointer) Subscribers() int {
	return len(p.subs)
}
