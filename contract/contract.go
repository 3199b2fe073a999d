//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"

	"chat-sync/domain/chat"
	"chat-sync/domain/event"
)

// Session identifies one authenticated transport session. A change of ID
// forces a full teardown of the previous handle before dialing again.
type Session struct {
	ID       string // stable per sign-in; changes on sign-out/sign-in
	ClientID string // this client's presence and typing identity
	Token    string // transport auth token
}

// Status is the transport-level connection notification.
type Status int

const (
	StatusConnected Status = iota
	StatusDisconnected
	StatusFailed
)

// StatusEvent is pushed by the transport whenever its connection state
// changes. Err is set for StatusFailed.
type StatusEvent struct {
	Status Status
	Err    error
}

// Unsubscribe cancels one subscription. Safe to call more than once.
type Unsubscribe func()

// Dialer creates transport handles. onStatus may be invoked from
// transport goroutines at any point after Dial is entered.
type Dialer interface {
	Dial(ctx context.Context, session Session, onStatus func(StatusEvent)) (Handle, error)
}

// Handle is one live transport connection. Per-room channels share the
// handle; only its owner may Close it.
type Handle interface {
	Room(id chat.RoomID) RoomChannel
	Presence(id chat.RoomID) PresenceChannel
	Typing(id chat.RoomID) TypingChannel
	Close() error
}

// RoomChannel is one room's message feed.
type RoomChannel interface {
	// Publish sends a message tagged with the sender attribution and
	// returns the transport-assigned message.
	Publish(ctx context.Context, text string, meta chat.MessageMeta) (chat.Message, error)
	// Subscribe delivers live messages in transport order.
	Subscribe(fn func(chat.Message)) (Unsubscribe, error)
	// History returns up to limit messages, newest first.
	History(ctx context.Context, limit int) ([]chat.Message, error)
}

// PresenceChannel is one room's presence feed.
type PresenceChannel interface {
	Enter(ctx context.Context, who chat.PresenceMember) error
	Update(ctx context.Context, who chat.PresenceMember) error
	Leave(ctx context.Context, who chat.PresenceMember) error
	// Subscribe delivers enter/update/leave events and returns the
	// current member set as a snapshot.
	Subscribe(fn func(event.PresenceChanged)) ([]chat.PresenceMember, Unsubscribe, error)
}

// TypingChannel is one room's typing-indicator feed.
type TypingChannel interface {
	Keystroke(ctx context.Context, who chat.PresenceMember) error
	Stop(ctx context.Context, who chat.PresenceMember) error
	Subscribe(fn func(event.TypingSignal)) (Unsubscribe, error)
}

// Archiver receives every live message a room session accepts. Used for
// the local transcript; failures are logged, never propagated.
type Archiver interface {
	Archive(m chat.Message) error
}
