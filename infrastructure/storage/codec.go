package storage

import (
	"time"

	"chat-sync/domain/chat"
)

// storedMessage is the on-disk JSON shape. Timestamps are kept as unix
// nanoseconds to match the key layout exactly.
type storedMessage struct {
	ID          string `json:"id"`
	Room        string `json:"room"`
	ClientID    string `json:"clientId"`
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	Text        string `json:"text"`
	SentAt      int64  `json:"sentAt"`
}

func toStoredMessage(m chat.Message) storedMessage {
	return storedMessage{
		ID:          m.ID,
		Room:        string(m.Room),
		ClientID:    m.ClientID,
		UserID:      m.Meta.UserID,
		DisplayName: m.Meta.DisplayName,
		Text:        m.Text,
		SentAt:      m.SentAt.UnixNano(),
	}
}

func fromStoredMessage(s storedMessage) chat.Message {
	return chat.Message{
		ID:       s.ID,
		Room:     chat.RoomID(s.Room),
		ClientID: s.ClientID,
		Text:     s.Text,
		SentAt:   time.Unix(0, s.SentAt).UTC(),
		Meta: chat.MessageMeta{
			DisplayName: s.DisplayName,
			UserID:      s.UserID,
		},
	}
}
