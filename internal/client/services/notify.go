package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/tradedash/internal/logging"
)

// EventKind names a user-facing event.
type EventKind string

const (
	EventLoginSucceeded  EventKind = "login.succeeded"
	EventLoginFailed     EventKind = "login.failed"
	EventSignupSucceeded EventKind = "signup.succeeded"
	EventSignupFailed    EventKind = "signup.failed"
	EventLoggedOut       EventKind = "logout"
	EventSessionRestored EventKind = "session.restored"
	EventSessionExpired  EventKind = "session.expired"
	EventTradePlaced     EventKind = "trade.placed"
	EventTradeRejected   EventKind = "trade.rejected"
	EventTradeFailed     EventKind = "trade.failed"
)

// Variant hints how a notification should be presented.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is a toast-style event for the UI layer. State carries the
// session state after a session transition and is empty otherwise.
type Notification struct {
	Kind        EventKind
	Title       string
	Description string
	Variant     Variant
	State       State
	At          time.Time
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notification) {}

// Broadcaster fans notifications out to subscribers. A subscriber whose
// buffer is full misses the notification rather than stalling the sender.
type Broadcaster struct {
	mu     sync.RWMutex
	subs   map[int]chan Notification
	next   int
	buffer int
	logger logging.Logger
}

func NewBroadcaster(buffer int, logger logging.Logger) *Broadcaster {
	if buffer < 1 {
		buffer = 1
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Broadcaster{subs: make(map[int]chan Notification), buffer: buffer, logger: logger}
}

// Subscribe registers a new listener. The returned cancel func unregisters
// it and closes the channel; calling it twice is safe.
func (b *Broadcaster) Subscribe() (<-chan Notification, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Notification, b.buffer)
	b.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

func (b *Broadcaster) Notify(ctx context.Context, n Notification) {
	if n.At.IsZero() {
		n.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- n:
		default:
			b.logger.Warn(ctx, "notification dropped, subscriber is full", "subscriber", id, "kind", n.Kind)
		}
	}
}
