package driver

// FrameID identifies a pending frame callback.
type FrameID uint64

type frameRequest struct {
	id        FrameID
	fn        func()
	cancelled bool
}

// FrameScheduler runs callbacks on the next display refresh. Each request runs
// at most once; a callback that requests again is deferred to the following
// frame. It is not safe for concurrent use: hosts call RunFrame from their
// update loop.
type FrameScheduler struct {
	seq     FrameID
	queue   []*frameRequest
	running []*frameRequest
}

// Request schedules fn for the next RunFrame and returns a handle for Cancel.
func (s *FrameScheduler) Request(fn func()) FrameID {
	s.seq++
	s.queue = append(s.queue, &frameRequest{id: s.seq, fn: fn})
	return s.seq
}

// Cancel drops a pending request. Unknown or already run ids are ignored.
func (s *FrameScheduler) Cancel(id FrameID) {
	for i, r := range s.queue {
		if r.id == id {
			r.cancelled = true
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
	for _, r := range s.running {
		if r.id == id {
			r.cancelled = true
			return
		}
	}
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *FrameScheduler) Pending() int {
	return len(s.queue)
}

// RunFrame runs every callback requested before the call and returns how many
// ran.
func (s *FrameScheduler) RunFrame() int {
	s.running, s.queue = s.queue, nil
	defer func() { s.running = nil }()
	ran := 0
	for _, r := range s.running {
		if r.cancelled {
			continue
		}
		r.cancelled = true
		r.fn()
		ran++
	}
	return ran
}
