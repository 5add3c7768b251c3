package hub

import (
	"context"
	"log/slog"
)

// Subscriber is the pub/sub surface the listener consumes.
// Satisfied by *store.Client.
type Subscriber interface {
	SubscribeWS(ctx context.Context, handler func(sessionID string, payload []byte)) error
}

// Listener bridges the store's ws:{id} channels into the local hub so every
// instance delivers updates to its own sockets regardless of which instance
// performed the mutation.
type Listener struct {
	store Subscriber
	hub   *Hub

	cancel context.CancelFunc
}

// NewListener creates a listener bound to a hub.
func NewListener(store Subscriber, hub *Hub) *Listener {
	return &Listener{store: store, hub: hub}
}

// Start opens the pattern subscription and begins dispatching. Returns an
// error only when the initial subscribe fails; the receive loop then runs
// until Stop.
func (l *Listener) Start(ctx context.Context) error {
	ctx, l.cancel = context.WithCancel(ctx)
	if err := l.store.SubscribeWS(ctx, l.hub.Broadcast); err != nil {
		l.cancel()
		return err
	}
	slog.Info("WebSocket listener started")
	return nil
}

// Stop cancels the subscription.
func (l *Listener) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
}
