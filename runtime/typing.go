package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chat-sync/contract"
	"chat-sync/domain/chat"
	"chat-sync/domain/event"
	"chat-sync/errors"
)

// TypingAggregator tracks who is composing in one room. Inbound
// keystrokes arm (or re-arm) a per-client expiry window so a member
// whose stop signal is lost disappears on their own; outbound
// keystrokes are throttled to one heartbeat per interval.
type TypingAggregator struct {
	log       *slog.Logger
	room      chat.RoomID
	channel   contract.TypingChannel
	identity  IdentitySource
	clientID  string
	window    time.Duration
	heartbeat time.Duration

	mu          sync.Mutex
	entries     []chat.TypingEntry
	timers      map[string]*time.Timer
	lastSent    time.Time
	sentTyping  bool
	closed      bool
	unsubscribe contract.Unsubscribe
	onUpdate    func()

	now func() time.Time
}

func NewTypingAggregator(log *slog.Logger, room chat.RoomID, channel contract.TypingChannel,
	identity IdentitySource, clientID string, window, heartbeat time.Duration) *TypingAggregator {
	return &TypingAggregator{
		log:       log,
		room:      room,
		channel:   channel,
		identity:  identity,
		clientID:  clientID,
		window:    window,
		heartbeat: heartbeat,
		timers:    make(map[string]*time.Timer),
		now:       time.Now,
	}
}

// OnUpdate registers a callback fired after every indicator change. Set
// before start.
func (a *TypingAggregator) OnUpdate(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onUpdate = fn
}

// start subscribes to the room's typing feed.
func (a *TypingAggregator) start() error {
	unsub, err := a.channel.Subscribe(a.onSignal)
	if err != nil {
		return errors.NewTransportError("typing subscribe", err)
	}
	a.mu.Lock()
	a.unsubscribe = unsub
	a.mu.Unlock()
	return nil
}

func (a *TypingAggregator) onSignal(sig event.TypingSignal) {
	if sig.ClientID == a.clientID {
		// Own signals echoed by the transport never light the indicator.
		return
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	if sig.Typing {
		a.entries = chat.ArmTyping(a.entries, chat.TypingEntry{
			ClientID:    sig.ClientID,
			DisplayName: sig.DisplayName,
			ExpiresAt:   a.now().Add(a.window),
		})
		a.rearmLocked(sig.ClientID)
	} else {
		a.entries = chat.StopTyping(a.entries, sig.ClientID)
		if t, ok := a.timers[sig.ClientID]; ok {
			t.Stop()
			delete(a.timers, sig.ClientID)
		}
	}
	fn := a.onUpdate
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// rearmLocked schedules (or reschedules) the expiry sweep for one client.
func (a *TypingAggregator) rearmLocked(clientID string) {
	if t, ok := a.timers[clientID]; ok {
		t.Stop()
	}
	a.timers[clientID] = time.AfterFunc(a.window, func() {
		a.expire(clientID)
	})
}

func (a *TypingAggregator) expire(clientID string) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	delete(a.timers, clientID)
	a.entries = chat.PruneTyping(a.entries, a.now())
	fn := a.onUpdate
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// NotifyKeystroke publishes a typing heartbeat for the local user, at
// most one per heartbeat interval. Remote windows outlive the interval,
// so steady typing never flickers.
func (a *TypingAggregator) NotifyKeystroke(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return errors.ErrSessionClosed
	}
	now := a.now()
	if a.sentTyping && now.Sub(a.lastSent) < a.heartbeat {
		a.mu.Unlock()
		return nil
	}
	a.lastSent = now
	a.sentTyping = true
	a.mu.Unlock()

	identity, err := a.identity.Resolve(ctx)
	if err != nil {
		return err
	}
	who := chat.PresenceMember{
		ClientID:    a.clientID,
		UserID:      identity.UserID,
		DisplayName: identity.DisplayName,
	}
	if err := a.channel.Keystroke(ctx, who); err != nil {
		return errors.NewTransportError("typing keystroke", err)
	}
	return nil
}

// NotifyStop publishes an explicit stop, typically after a send or when
// the composer empties. Unthrottled: stops must land promptly.
func (a *TypingAggregator) NotifyStop(ctx context.Context) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return errors.ErrSessionClosed
	}
	if !a.sentTyping {
		a.mu.Unlock()
		return nil
	}
	a.sentTyping = false
	a.mu.Unlock()

	identity, err := a.identity.Resolve(ctx)
	if err != nil {
		return err
	}
	who := chat.PresenceMember{
		ClientID:    a.clientID,
		UserID:      identity.UserID,
		DisplayName: identity.DisplayName,
	}
	if err := a.channel.Stop(ctx, who); err != nil {
		return errors.NewTransportError("typing stop", err)
	}
	return nil
}

// TypingUsers returns the display names currently composing, self
// excluded. Expired entries are pruned on read as a backstop for timer
// drift.
func (a *TypingAggregator) TypingUsers() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = chat.PruneTyping(a.entries, a.now())
	return chat.TypingNames(a.entries, a.clientID)
}

// close cancels the subscription and every pending expiry timer.
func (a *TypingAggregator) close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	unsub := a.unsubscribe
	a.unsubscribe = nil
	for id, t := range a.timers {
		t.Stop()
		delete(a.timers, id)
	}
	a.entries = nil
	a.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}
