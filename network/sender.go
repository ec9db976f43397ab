package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/sparkle-cursor/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// ErrNotConnected is returned by Send when no overlay is reachable.
var ErrNotConnected = errors.New("not connected to overlay")

type SenderState int

const (
	StateDisconnected SenderState = iota
	StateConnecting
	StateConnected
	StateError
)

func (s SenderState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("SenderState(%d)", int(s))
}

const writeTimeout = time.Second

// Sender delivers settings messages from the editor or the CLI to a running
// overlay. All shared fields are protected by mu (router callbacks run on necs
// goroutines).
type Sender struct {
	mu sync.RWMutex

	state     SenderState
	lastError error
	conn      *websocket.Conn
	ready     chan struct{} // closed on connect, replaced on disconnect
}

func NewSender() *Sender {
	return &Sender{ready: make(chan struct{})}
}

// Connect dials the overlay in a background goroutine. It may be called again
// after a disconnect or an error.
func (s *Sender) Connect(address string) {
	s.mu.Lock()
	if s.state == StateConnecting || s.state == StateConnected {
		s.mu.Unlock()
		return
	}
	s.state = StateConnecting
	s.lastError = nil
	s.mu.Unlock()

	// Drop callbacks left over from a previous attempt
	router.ResetRouter()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[net] connected to overlay")
		s.mu.Lock()
		s.state = StateConnected
		select {
		case <-s.ready:
		default:
			close(s.ready)
		}
		s.mu.Unlock()
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[net] disconnected: %v", err)
		s.mu.Lock()
		if s.state != StateError {
			s.state = StateDisconnected
		}
		s.conn = nil
		s.ready = make(chan struct{})
		s.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[net] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			s.mu.Lock()
			s.conn = conn
			s.mu.Unlock()
		})
		if err != nil {
			s.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

// WaitConnected blocks until the sender is connected or ctx is done.
func (s *Sender) WaitConnected(ctx context.Context) error {
	for {
		s.mu.RLock()
		ready, state, lastErr, conn := s.ready, s.state, s.lastError, s.conn
		s.mu.RUnlock()

		if state == StateError {
			return lastErr
		}
		if state == StateConnected && conn != nil {
			return nil
		}

		select {
		case <-ready:
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrNotConnected, ctx.Err())
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func (s *Sender) Close() {
	s.mu.Lock()
	conn := s.conn
	s.state = StateDisconnected
	s.conn = nil
	s.mu.Unlock()

	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}

	router.ResetRouter()
}

func (s *Sender) State() SenderState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Sender) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

// Send writes msg to the overlay. It returns ErrNotConnected when there is no
// connection; callers treat that as a no-op.
func (s *Sender) Send(msg messages.Message) error {
	s.mu.RLock()
	conn := s.conn
	state := s.state
	s.mu.RUnlock()

	if conn == nil || state != StateConnected {
		return ErrNotConnected
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := conn.Write(ctx, websocket.MessageBinary, payload); err != nil {
		return fmt.Errorf("send %T: %w", msg, err)
	}
	return nil
}

func (s *Sender) setError(err error) {
	s.mu.Lock()
	s.state = StateError
	s.lastError = err
	s.mu.Unlock()
}
