package runtime

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"chat-sync/contract"
	"chat-sync/domain/chat"
	"chat-sync/errors"
	"chat-sync/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRoom = chat.RoomID("lobby")

func historyPage(n int) []chat.Message {
	// Newest first, the way the transport serves it.
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	page := make([]chat.Message, 0, n)
	for i := n - 1; i >= 0; i-- {
		page = append(page, chat.Message{
			ID:     fmt.Sprintf("m%03d", i),
			Room:   testRoom,
			Text:   fmt.Sprintf("message %d", i),
			SentAt: base.Add(time.Duration(i) * time.Second),
		})
	}
	return page
}

func newStoreWithSub(t *testing.T, ctrl *gomock.Controller) (*MessageStore, *mocks.MockRoomChannel, func(chat.Message)) {
	t.Helper()
	channel := mocks.NewMockRoomChannel(ctrl)

	var live func(chat.Message)
	channel.EXPECT().Subscribe(gomock.Any()).
		DoAndReturn(func(fn func(chat.Message)) (contract.Unsubscribe, error) {
			live = fn
			return func() {}, nil
		})

	identity := staticIdentity{identity: chat.Identity{
		UserID: "u1", DisplayName: "Alice", Preference: chat.PreferDisplayName,
	}}
	store := NewMessageStore(testLogger(), testRoom, channel, identity, nil, 2000)
	require.NoError(t, store.start())
	return store, channel, func(m chat.Message) { live(m) }
}

func Test_History_Page_Exposed_Chronologically(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store, channel, _ := newStoreWithSub(t, ctrl)
	channel.EXPECT().History(gomock.Any(), 50).Return(historyPage(50), nil)

	req.NoError(store.LoadHistory(context.Background(), 50))

	msgs := store.Messages()
	req.Len(msgs, 50)
	req.Equal("m000", msgs[0].ID)
	req.Equal("m049", msgs[49].ID)
	for i := 1; i < len(msgs); i++ {
		req.False(msgs[i].SentAt.Before(msgs[i-1].SentAt))
	}
}

func Test_Duplicate_Message_Appears_Once(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store, channel, live := newStoreWithSub(t, ctrl)

	page := historyPage(3)
	channel.EXPECT().History(gomock.Any(), 50).Return(page, nil)
	req.NoError(store.LoadHistory(context.Background(), 50))

	// When the live stream redelivers a message already in the page
	live(page[0])

	ids := make(map[string]int)
	for _, m := range store.Messages() {
		ids[m.ID]++
	}
	req.Len(store.Messages(), 3)
	for id, count := range ids {
		req.Equal(1, count, "message %s duplicated", id)
	}
}

func Test_Live_Message_During_History_Fetch_Survives(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store, channel, live := newStoreWithSub(t, ctrl)

	raced := chat.Message{ID: "live-1", Room: testRoom, Text: "raced in",
		SentAt: time.Date(2026, 8, 1, 13, 0, 0, 0, time.UTC)}

	// The live message lands while the history request is in flight.
	channel.EXPECT().History(gomock.Any(), 50).
		DoAndReturn(func(context.Context, int) ([]chat.Message, error) {
			live(raced)
			return historyPage(3), nil
		})

	req.NoError(store.LoadHistory(context.Background(), 50))

	msgs := store.Messages()
	req.Len(msgs, 4)
	// History seeds in front; the raced live message keeps its slot after it.
	req.Equal("live-1", msgs[3].ID)
}

func Test_LoadHistory_Is_Once_Per_Room(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store, channel, _ := newStoreWithSub(t, ctrl)
	channel.EXPECT().History(gomock.Any(), 50).Return(historyPage(1), nil).Times(1)

	req.NoError(store.LoadHistory(context.Background(), 50))
	req.ErrorIs(store.LoadHistory(context.Background(), 50), errors.ErrHistoryAlreadyLoaded)
}

func Test_History_Failure_Keeps_Live_Stream(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store, channel, live := newStoreWithSub(t, ctrl)
	channel.EXPECT().History(gomock.Any(), 50).Return(nil, fmt.Errorf("request timeout"))

	err := store.LoadHistory(context.Background(), 50)
	req.ErrorIs(err, errors.ErrHistoryLoad)
	req.ErrorIs(store.HistoryErr(), errors.ErrHistoryLoad)

	// Live messages still accumulate after the failed fetch
	live(chat.Message{ID: "live-1", Room: testRoom, Text: "still here"})
	req.Len(store.Messages(), 1)
}

func Test_Send_Rejects_Invalid_Text(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Publish expectation: a validation failure must never hit the wire.
	store, _, _ := newStoreWithSub(t, ctrl)

	cases := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace only", "   \t  "},
		{"over limit", strings.Repeat("a", 2001)},
	}
	for _, tc := range cases {
		_, err := store.Send(context.Background(), tc.text)
		var validationErr *errors.ValidationError
		req.ErrorAs(err, &validationErr, tc.name)
	}
}

func Test_Send_Tags_Identity_And_Defers_To_Echo(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store, channel, _ := newStoreWithSub(t, ctrl)

	sent := chat.Message{ID: "srv-1", Room: testRoom, Text: "hello",
		Meta: chat.MessageMeta{DisplayName: "Alice", UserID: "u1"}}
	channel.EXPECT().Publish(gomock.Any(), "hello",
		chat.MessageMeta{DisplayName: "Alice", UserID: "u1"}).Return(sent, nil)

	msg, err := store.Send(context.Background(), "hello")
	req.NoError(err)
	req.Equal("srv-1", msg.ID)

	// The local sequence waits for the transport echo
	req.Empty(store.Messages())
}

func Test_Send_Blocked_Without_Identity(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	channel := mocks.NewMockRoomChannel(ctrl)
	channel.EXPECT().Subscribe(gomock.Any()).Return(contract.Unsubscribe(func() {}), nil)

	identity := staticIdentity{err: fmt.Errorf("%w: profile fetch failed", errors.ErrIdentityUnavailable)}
	store := NewMessageStore(testLogger(), testRoom, channel, identity, nil, 2000)
	req.NoError(store.start())

	_, err := store.Send(context.Background(), "hello")
	req.ErrorIs(err, errors.ErrIdentityUnavailable)
}

func Test_Closed_Store_Drops_Late_Deliveries(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store, _, live := newStoreWithSub(t, ctrl)
	store.close()

	// When a message arrives after close
	live(chat.Message{ID: "late-1", Room: testRoom, Text: "zombie"})

	req.Empty(store.Messages())
	_, err := store.Send(context.Background(), "hello")
	req.ErrorIs(err, errors.ErrSessionClosed)
	req.ErrorIs(store.LoadHistory(context.Background(), 50), errors.ErrSessionClosed)
}
