package network

import (
	"fmt"
	"log"

	"github.com/automoto/sparkle-cursor/shared/messages"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

// Listener receives settings messages for the overlay. Router callbacks run on
// necs goroutines, so messages are only queued here; the overlay applies them
// from its own update loop via Drain.
type Listener struct {
	queue     chan messages.Message
	transport *transports.WsServerTransport
}

func NewListener(queueSize int) *Listener {
	return &Listener{queue: make(chan messages.Message, max(1, queueSize))}
}

// Start registers the router callbacks and serves on port. It blocks until the
// transport stops.
func (l *Listener) Start(port uint) error {
	router.OnConnect(func(client *router.NetworkClient) {
		log.Printf("[net] sender connected: %s", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		if err != nil {
			log.Printf("[net] sender %s disconnected with error: %v", client.Id(), err)
			return
		}
		log.Printf("[net] sender %s disconnected", client.Id())
	})

	router.On(func(_ *router.NetworkClient, msg messages.Toggle) {
		l.push(msg)
	})

	router.On(func(_ *router.NetworkClient, msg messages.SettingsUpdate) {
		l.push(msg)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("[net] client error: %v", err)
	})

	l.transport = transports.NewWsServerTransport(port, "", nil)
	if err := l.transport.Start(); err != nil {
		return fmt.Errorf("listen on port %d: %w", port, err)
	}
	return nil
}

// push queues msg. When the queue is full the oldest message is dropped; the
// newest settings always win.
func (l *Listener) push(msg messages.Message) {
	for {
		select {
		case l.queue <- msg:
			return
		default:
		}
		select {
		case <-l.queue:
			log.Printf("[net] Warning: message queue full, dropping oldest")
		default:
		}
	}
}

// Drain returns every queued message in arrival order without blocking.
func (l *Listener) Drain() []messages.Message {
	return drainChan(l.queue)
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
