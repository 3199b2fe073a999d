// Package chat contains core concepts of the client-side chat state.
// Merge, presence and typing rules live here as pure functions over
// (current state, incoming event) pairs; no runtime, network, or UI
// logic should be added here.
package chat

import (
	"time"
)

// RoomID names one conversation channel.
type RoomID string

// NamePreference selects which name a user wants shown to others.
type NamePreference string

const (
	PreferDisplayName NamePreference = "display_name"
	PreferUsername    NamePreference = "username"
)

// Identity is the current user's chat identity, fetched once per session
// and re-fetched when the display-name preference changes. Immutable
// snapshot; read-only to everything except the resolver.
type Identity struct {
	UserID      string         `json:"user_id"`
	DisplayName string         `json:"display_name"`
	Preference  NamePreference `json:"display_name_preference"`
}

// MessageMeta is the sender attribution attached to outgoing messages.
type MessageMeta struct {
	DisplayName string `json:"display_name"`
	UserID      string `json:"user_id"`
}

// Message is an immutable chat event. The ID is opaque and assigned by
// the transport; within one room the ordered sequence never contains the
// same ID twice.
type Message struct {
	ID       string
	Room     RoomID
	ClientID string
	Text     string
	SentAt   time.Time
	Meta     MessageMeta
}

// PresenceMember is one entry of a room's presence set, keyed by client
// id. Membership means "currently connected to this room's presence
// channel", not "online in general".
type PresenceMember struct {
	ClientID    string `json:"client_id"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// TypingEntry tracks one remote member currently composing. The entry
// expires when no keystroke or stop signal arrives before ExpiresAt.
type TypingEntry struct {
	ClientID    string
	DisplayName string
	ExpiresAt   time.Time
}
