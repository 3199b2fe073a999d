// Package event defines the room-scoped events pushed by the transport.
package event

import (
	"chat-sync/domain/chat"
)

// RoomEvent is anything delivered on a room's feeds.
type RoomEvent interface {
	RoomID() chat.RoomID
}

// MessageReceived is a live message pushed on a room's message channel.
type MessageReceived struct {
	Room    chat.RoomID
	Message chat.Message
}

func (e MessageReceived) RoomID() chat.RoomID { return e.Room }

// PresenceAction discriminates presence channel events.
type PresenceAction string

const (
	ActionEnter  PresenceAction = "enter"
	ActionUpdate PresenceAction = "update"
	ActionLeave  PresenceAction = "leave"
)

// PresenceChanged is one enter/update/leave event on a room's presence
// channel, carrying the member's identity payload.
type PresenceChanged struct {
	Room   chat.RoomID
	Action PresenceAction
	Member chat.PresenceMember
}

func (e PresenceChanged) RoomID() chat.RoomID { return e.Room }

// TypingSignal is a keystroke heartbeat (Typing=true) or an explicit
// stop (Typing=false) from one member of a room.
type TypingSignal struct {
	Room        chat.RoomID
	ClientID    string
	DisplayName string
	Typing      bool
}

func (e TypingSignal) RoomID() chat.RoomID { return e.Room }
