package natsx

import (
	"time"

	"chat-sync/domain/chat"
	"chat-sync/domain/event"

	"github.com/samber/lo"
)

// wireMessage is the JSON payload on chat.room.* and inside history
// replies. Timestamps travel as unix milliseconds.
type wireMessage struct {
	ID          string `json:"id"`
	Room        string `json:"room"`
	ClientID    string `json:"clientId"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Text        string `json:"text"`
	Timestamp   int64  `json:"timestamp"`
}

func toWireMessage(m chat.Message) wireMessage {
	return wireMessage{
		ID:          m.ID,
		Room:        string(m.Room),
		ClientID:    m.ClientID,
		UserID:      m.Meta.UserID,
		DisplayName: m.Meta.DisplayName,
		Text:        m.Text,
		Timestamp:   m.SentAt.UnixMilli(),
	}
}

func fromWireMessage(w wireMessage) chat.Message {
	return chat.Message{
		ID:       w.ID,
		Room:     chat.RoomID(w.Room),
		ClientID: w.ClientID,
		Text:     w.Text,
		SentAt:   time.UnixMilli(w.Timestamp).UTC(),
		Meta: chat.MessageMeta{
			DisplayName: w.DisplayName,
			UserID:      w.UserID,
		},
	}
}

type historyRequest struct {
	Limit int `json:"limit,omitempty"`
}

// historyResponse carries the page newest first.
type historyResponse struct {
	Messages []wireMessage `json:"messages"`
	HasMore  bool          `json:"hasMore"`
}

func fromHistoryResponse(resp historyResponse) []chat.Message {
	return lo.Map(resp.Messages, func(w wireMessage, _ int) chat.Message {
		return fromWireMessage(w)
	})
}

type wireMember struct {
	ClientID    string `json:"clientId"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

func toWireMember(m chat.PresenceMember) wireMember {
	return wireMember{ClientID: m.ClientID, UserID: m.UserID, DisplayName: m.DisplayName}
}

func fromWireMember(w wireMember) chat.PresenceMember {
	return chat.PresenceMember{ClientID: w.ClientID, UserID: w.UserID, DisplayName: w.DisplayName}
}

// presenceEvent is the JSON payload on presence.event.*.
type presenceEvent struct {
	Action string     `json:"action"`
	Member wireMember `json:"member"`
}

func fromPresenceEvent(room chat.RoomID, p presenceEvent) event.PresenceChanged {
	return event.PresenceChanged{
		Room:   room,
		Action: event.PresenceAction(p.Action),
		Member: fromWireMember(p.Member),
	}
}

// presenceSnapshot is the reply on presence.room.*.
type presenceSnapshot struct {
	Members []wireMember `json:"members"`
}

func fromPresenceSnapshot(snap presenceSnapshot) []chat.PresenceMember {
	return lo.Map(snap.Members, func(w wireMember, _ int) chat.PresenceMember {
		return fromWireMember(w)
	})
}

// typingEvent is the JSON payload on typing.*.
type typingEvent struct {
	ClientID    string `json:"clientId"`
	DisplayName string `json:"displayName"`
	Typing      bool   `json:"typing"`
}

func fromTypingEvent(room chat.RoomID, t typingEvent) event.TypingSignal {
	return event.TypingSignal{
		Room:        room,
		ClientID:    t.ClientID,
		DisplayName: t.DisplayName,
		Typing:      t.Typing,
	}
}
