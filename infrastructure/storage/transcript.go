// Package storage keeps a local transcript of every message a room
// session accepted, so past conversations survive restarts without any
// server round trip.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"chat-sync/domain/chat"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

// TranscriptStore persists accepted messages in BadgerDB.
// The key is formatted as "msg:{room}:{timestamp_padded}:{id}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using the message id as a collision
//     disconnector if two messages arrive at the same nanosecond.
type TranscriptStore struct {
	db    *badger.DB
	log   *slog.Logger
	limit *int
}

func NewTranscriptStore(db *badger.DB, log *slog.Logger, limit *int) TranscriptStore {
	return TranscriptStore{db: db, log: log, limit: limit}
}

// Archive persists one accepted message.
func (s TranscriptStore) Archive(m chat.Message) error {
	key := fmt.Sprintf("msg:%s:%019d:%s",
		m.Room,
		m.SentAt.UnixNano(),
		m.ID,
	)
	bytes, err := json.Marshal(toStoredMessage(m))
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// Recent retrieves a room's transcript newest first using a reverse
// prefix scan. Thanks to the padded timestamp in the key, messages are
// naturally sorted by time. The returned cursor resumes the scan on the
// next call; nil means the start (most recent position).
func (s TranscriptStore) Recent(room chat.RoomID, cursor *string) ([]chat.Message, *string, error) {
	var rawMessages [][]byte
	var lastKey string
	err := s.db.View(func(txn *badger.Txn) error {
		prefixStr := fmt.Sprintf("msg:%s:", room)
		prefix := []byte(prefixStr)
		prefixLen := len(prefixStr)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Seek past the newest possible timestamp, then walk backwards.
			seekKey = append(prefix, []byte("9999999999999999999")...)
		default:
			seekKey = append(prefix, []byte(*cursor)...)
		}

		it.Seek(seekKey)

		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			if s.limit != nil && len(rawMessages) == *s.limit {
				s.log.Debug(fmt.Sprintf("Maximum of %d messages reached", *s.limit))
				break
			}
			item := it.Item()
			// Memorize the cursor part of the actual key
			lastKey = string(item.Key()[prefixLen:])
			err := item.Value(func(value []byte) error {
				rawMessages = append(rawMessages, value)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	messages := make([]chat.Message, 0, len(rawMessages))
	for _, b := range rawMessages {
		var stored storedMessage
		if err = json.Unmarshal(b, &stored); err != nil {
			return nil, nil, err
		}
		messages = append(messages, fromStoredMessage(stored))
	}
	if len(messages) == 0 {
		return messages, nil, nil
	}
	return messages, lo.ToPtr(lastKey), nil
}
