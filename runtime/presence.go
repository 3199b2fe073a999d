package runtime

import (
	"context"
	"log/slog"
	"sync"

	"chat-sync/contract"
	"chat-sync/domain/chat"
	"chat-sync/domain/event"
	"chat-sync/errors"
)

// PresenceAggregator maintains one room's member set from the presence
// event stream. Upserts are last-write-wins per client id; there is no
// ordering guarantee across members.
type PresenceAggregator struct {
	log      *slog.Logger
	room     chat.RoomID
	channel  contract.PresenceChannel
	identity IdentitySource
	clientID string

	mu          sync.Mutex
	members     []chat.PresenceMember
	loading     bool
	closed      bool
	unsubscribe contract.Unsubscribe
	onUpdate    func()
}

func NewPresenceAggregator(log *slog.Logger, room chat.RoomID,
	channel contract.PresenceChannel, identity IdentitySource, clientID string) *PresenceAggregator {
	return &PresenceAggregator{
		log:      log,
		room:     room,
		channel:  channel,
		identity: identity,
		clientID: clientID,
		loading:  true,
	}
}

// OnUpdate registers a callback fired after every member-set change.
// Set before Enter.
func (a *PresenceAggregator) OnUpdate(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onUpdate = fn
}

// Enter subscribes to the presence feed, announces this client and seeds
// the current member snapshot. Loading stays true until the initial
// enter resolves. Entering again is an upsert, never a duplicate.
func (a *PresenceAggregator) Enter(ctx context.Context) error {
	identity, err := a.identity.Resolve(ctx)
	if err != nil {
		return err
	}
	self := chat.PresenceMember{
		ClientID:    a.clientID,
		UserID:      identity.UserID,
		DisplayName: identity.DisplayName,
	}

	a.mu.Lock()
	alreadySubscribed := a.unsubscribe != nil
	a.mu.Unlock()

	if !alreadySubscribed {
		snapshot, unsub, err := a.channel.Subscribe(a.onChange)
		if err != nil {
			return errors.NewTransportError("presence subscribe", err)
		}
		a.mu.Lock()
		if a.closed {
			a.mu.Unlock()
			unsub()
			return errors.ErrSessionClosed
		}
		a.unsubscribe = unsub
		for _, m := range snapshot {
			a.members = chat.UpsertMember(a.members, m)
		}
		a.mu.Unlock()
	}

	if err := a.channel.Enter(ctx, self); err != nil {
		return errors.NewTransportError("presence enter", err)
	}

	a.mu.Lock()
	a.members = chat.UpsertMember(a.members, self)
	a.loading = false
	fn := a.onUpdate
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
	return nil
}

// Update re-resolves the identity and publishes the fresh payload, e.g.
// after a display-name preference change.
func (a *PresenceAggregator) Update(ctx context.Context) error {
	identity, err := a.identity.Resolve(ctx)
	if err != nil {
		return err
	}
	self := chat.PresenceMember{
		ClientID:    a.clientID,
		UserID:      identity.UserID,
		DisplayName: identity.DisplayName,
	}
	if err := a.channel.Update(ctx, self); err != nil {
		return errors.NewTransportError("presence update", err)
	}
	return nil
}

func (a *PresenceAggregator) onChange(ev event.PresenceChanged) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	switch ev.Action {
	case event.ActionEnter, event.ActionUpdate:
		a.members = chat.UpsertMember(a.members, ev.Member)
	case event.ActionLeave:
		a.members = chat.RemoveMember(a.members, ev.Member.ClientID)
	}
	fn := a.onUpdate
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Members returns a snapshot of the current member set.
func (a *PresenceAggregator) Members() []chat.PresenceMember {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]chat.PresenceMember, len(a.members))
	copy(out, a.members)
	return out
}

// Loading is true until the initial enter resolves.
func (a *PresenceAggregator) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loading
}

// reset clears the member set after a transport disconnect: membership
// means "connected to this room's presence channel right now".
func (a *PresenceAggregator) reset() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.members = nil
	fn := a.onUpdate
	a.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// close cancels the subscription; late presence events are ignored.
func (a *PresenceAggregator) close(ctx context.Context) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	unsub := a.unsubscribe
	a.unsubscribe = nil
	a.mu.Unlock()
	if unsub != nil {
		unsub()
	}
	// Best effort: tell the room we left.
	self := chat.PresenceMember{ClientID: a.clientID}
	if err := a.channel.Leave(ctx, self); err != nil {
		a.log.Debug("Presence leave failed on close", "room", a.room, "err", err)
	}
}
