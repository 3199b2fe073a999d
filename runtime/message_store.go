package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"chat-sync/contract"
	"chat-sync/domain/chat"
	"chat-sync/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IdentitySource resolves the current user's chat identity before any
// outbound operation.
type IdentitySource interface {
	Resolve(ctx context.Context) (chat.Identity, error)
}

// MessageStore merges a room's one-shot history fetch and its live
// message stream into one ordered, de-duplicated sequence. History and
// subscription may race freely: both paths write into the same seen-set,
// so a live message arriving before history finishes is never lost and
// never duplicated.
type MessageStore struct {
	log      *slog.Logger
	room     chat.RoomID
	channel  contract.RoomChannel
	identity IdentitySource
	archiver contract.Archiver
	maxLen   int

	mu               sync.Mutex
	msgs             []chat.Message
	seen             map[string]struct{}
	historyRequested bool
	historyErr       error
	closed           bool
	unsubscribe      contract.Unsubscribe
	onAppend         func(chat.Message)
}

func NewMessageStore(log *slog.Logger, room chat.RoomID, channel contract.RoomChannel,
	identity IdentitySource, archiver contract.Archiver, maxLen int) *MessageStore {
	return &MessageStore{
		log:      log,
		room:     room,
		channel:  channel,
		identity: identity,
		archiver: archiver,
		maxLen:   maxLen,
		seen:     make(map[string]struct{}),
	}
}

// OnAppend registers a callback fired for every message accepted into
// the sequence from the live stream. Set before start.
func (s *MessageStore) OnAppend(fn func(chat.Message)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onAppend = fn
}

// start subscribes to the live stream. Called by the owning room session.
func (s *MessageStore) start() error {
	unsub, err := s.channel.Subscribe(s.onLive)
	if err != nil {
		return errors.NewTransportError("subscribe", err)
	}
	s.mu.Lock()
	s.unsubscribe = unsub
	s.mu.Unlock()
	return nil
}

func (s *MessageStore) onLive(m chat.Message) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	msgs, added := chat.AppendUnique(s.msgs, s.seen, m)
	s.msgs = msgs
	fn := s.onAppend
	s.mu.Unlock()

	if !added {
		return
	}
	if s.archiver != nil {
		if err := s.archiver.Archive(m); err != nil {
			s.log.Warn("Transcript archive failed", "message_id", m.ID, "err", err)
		}
	}
	if fn != nil {
		fn(m)
	}
}

// LoadHistory fetches the room's history page exactly once per room
// lifetime; a second call is a caller error. The page arrives newest
// first and is seeded chronologically in front of whatever the live
// stream already delivered.
func (s *MessageStore) LoadHistory(ctx context.Context, limit int) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return errors.ErrSessionClosed
	}
	if s.historyRequested {
		s.mu.Unlock()
		return errors.ErrHistoryAlreadyLoaded
	}
	s.historyRequested = true
	s.mu.Unlock()

	page, err := s.channel.History(ctx, limit)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.ErrSessionClosed
	}
	if err != nil {
		s.historyErr = fmt.Errorf("%w: %v", errors.ErrHistoryLoad, err)
		s.log.Warn("History fetch failed, live messages still accumulate",
			"room", s.room, "err", err)
		return s.historyErr
	}
	s.msgs = chat.MergeHistory(chat.Chronological(page), s.msgs)
	for _, m := range s.msgs {
		s.seen[m.ID] = struct{}{}
	}
	return nil
}

// Send validates, tags and publishes an outgoing message. The message is
// not appended locally: the transport echoes it back on the live stream,
// keeping one source of truth for order and timestamps.
func (s *MessageStore) Send(ctx context.Context, text string) (chat.Message, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return chat.Message{}, errors.ErrSessionClosed
	}
	if strings.TrimSpace(text) == "" {
		return chat.Message{}, errors.NewValidationError("empty text")
	}
	if err := validate.Var(text, fmt.Sprintf("max=%d", s.maxLen)); err != nil {
		return chat.Message{}, errors.NewValidationError(
			fmt.Sprintf("text exceeds %d characters", s.maxLen))
	}

	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return chat.Message{}, err
	}

	msg, err := s.channel.Publish(ctx, text, chat.MessageMeta{
		DisplayName: identity.DisplayName,
		UserID:      identity.UserID,
	})
	if err != nil {
		return chat.Message{}, errors.NewTransportError("send", err)
	}
	return msg, nil
}

// Messages returns a snapshot of the visible sequence, oldest first.
func (s *MessageStore) Messages() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]chat.Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// HistoryErr reports a failed history fetch. Live messages keep
// accumulating while it is set.
func (s *MessageStore) HistoryErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.historyErr
}

// close cancels the live subscription; late deliveries are ignored.
func (s *MessageStore) close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}
