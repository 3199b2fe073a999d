package storage

import (
	"fmt"
	"testing"
	"time"

	"chat-sync/domain/chat"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"log/slog"
)

func newTestStore(t *testing.T, limit *int) TranscriptStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewTranscriptStore(db, logs.GetLoggerFromLevel(slog.LevelDebug), limit)
}

func archived(i int) chat.Message {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return chat.Message{
		ID:       fmt.Sprintf("m%03d", i),
		Room:     "lobby",
		ClientID: "client-1",
		Text:     fmt.Sprintf("message %d", i),
		SentAt:   base.Add(time.Duration(i) * time.Second),
		Meta:     chat.MessageMeta{DisplayName: "Alice", UserID: "u1"},
	}
}

func Test_Archive_Then_Recent_Newest_First(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, nil)

	for i := 0; i < 5; i++ {
		req.NoError(store.Archive(archived(i)))
	}

	msgs, _, err := store.Recent("lobby", nil)
	req.NoError(err)
	req.Len(msgs, 5)
	req.Equal("m004", msgs[0].ID)
	req.Equal("m000", msgs[4].ID)
	req.Equal("Alice", msgs[0].Meta.DisplayName)
}

func Test_Recent_Paginates_With_Cursor(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, lo.ToPtr(2))

	for i := 0; i < 5; i++ {
		req.NoError(store.Archive(archived(i)))
	}

	// First page: the two newest
	first, cursor, err := store.Recent("lobby", nil)
	req.NoError(err)
	req.Len(first, 2)
	req.Equal("m004", first[0].ID)
	req.NotNil(cursor)

	// Second page resumes after the cursor
	second, cursor, err := store.Recent("lobby", cursor)
	req.NoError(err)
	req.Len(second, 2)
	req.Equal("m002", second[0].ID)
	req.NotNil(cursor)
}

func Test_Recent_Scopes_By_Room(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, nil)

	req.NoError(store.Archive(archived(0)))
	other := archived(1)
	other.Room = "ops"
	req.NoError(store.Archive(other))

	msgs, _, err := store.Recent("lobby", nil)
	req.NoError(err)
	req.Len(msgs, 1)
	req.Equal(chat.RoomID("lobby"), msgs[0].Room)
}

func Test_Recent_Empty_Room(t *testing.T) {
	req := require.New(t)
	store := newTestStore(t, nil)

	msgs, cursor, err := store.Recent("empty", nil)
	req.NoError(err)
	req.Empty(msgs)
	req.Nil(cursor)
}
