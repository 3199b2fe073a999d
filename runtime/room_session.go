package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chat-sync/contract"
	"chat-sync/domain/chat"
	"chat-sync/errors"
)

// SessionConfig carries the per-room tunables.
type SessionConfig struct {
	HistoryLimit     int
	MaxContentLength int
	TypingWindow     time.Duration
	TypingHeartbeat  time.Duration
	Archiver         contract.Archiver
}

// RoomSession binds one room's message store, presence aggregator and
// typing aggregator to a live connection. Closing the session detaches
// every subscription synchronously: no event arriving afterwards can
// mutate its state.
type RoomSession struct {
	log          *slog.Logger
	room         chat.RoomID
	historyLimit int

	Messages *MessageStore
	Presence *PresenceAggregator
	Typing   *TypingAggregator

	closeOnce     sync.Once
	removeWatcher func()
}

// NewRoomSession opens a room on the lifecycle's current handle and
// starts all three feeds. It requires a connected lifecycle; joining a
// room is meaningless without a transport to speak through.
func NewRoomSession(ctx context.Context, log *slog.Logger, room chat.RoomID,
	lifecycle *ConnectionLifecycle, identity IdentitySource, cfg SessionConfig) (*RoomSession, error) {
	if lifecycle.State() != StateConnected {
		return nil, errors.ErrNotConnected
	}
	handle := lifecycle.Handle()
	if handle == nil {
		return nil, errors.ErrNotConnected
	}
	clientID := lifecycle.Session().ClientID

	s := &RoomSession{
		log:          log,
		room:         room,
		historyLimit: cfg.HistoryLimit,
		Messages: NewMessageStore(log, room, handle.Room(room),
			identity, cfg.Archiver, cfg.MaxContentLength),
		Presence: NewPresenceAggregator(log, room, handle.Presence(room),
			identity, clientID),
		Typing: NewTypingAggregator(log, room, handle.Typing(room),
			identity, clientID, cfg.TypingWindow, cfg.TypingHeartbeat),
	}

	if err := s.Messages.start(); err != nil {
		s.teardown(ctx)
		return nil, err
	}
	if err := s.Typing.start(); err != nil {
		s.teardown(ctx)
		return nil, err
	}
	if err := s.Presence.Enter(ctx); err != nil {
		s.teardown(ctx)
		return nil, err
	}

	// Presence reflects the transport: a disconnect empties the member
	// list until the next successful enter.
	s.removeWatcher = lifecycle.OnChange(func(change StateChange) {
		if change.To == StateDisconnected || change.To == StateFailed {
			s.Presence.reset()
		}
	})

	log.Info("Room session opened", "room", room, "client_id", clientID)
	return s, nil
}

// Send validates and publishes a message, then reports the stop of the
// local typing indicator. The message itself lands via the live stream.
func (s *RoomSession) Send(ctx context.Context, text string) (chat.Message, error) {
	msg, err := s.Messages.Send(ctx, text)
	if err != nil {
		return chat.Message{}, err
	}
	if err := s.Typing.NotifyStop(ctx); err != nil {
		s.log.Debug("Typing stop after send failed", "room", s.room, "err", err)
	}
	return msg, nil
}

// LoadHistory performs the room's one-shot history fetch.
func (s *RoomSession) LoadHistory(ctx context.Context) error {
	return s.Messages.LoadHistory(ctx, s.historyLimit)
}

// Close detaches every feed. Idempotent; events delivered after Close
// returns are dropped by each component's closed gate.
func (s *RoomSession) Close(ctx context.Context) {
	s.closeOnce.Do(func() {
		if s.removeWatcher != nil {
			s.removeWatcher()
		}
		s.teardown(ctx)
		s.log.Info("Room session closed", "room", s.room)
	})
}

func (s *RoomSession) teardown(ctx context.Context) {
	s.Typing.close()
	s.Presence.close(ctx)
	s.Messages.close()
}
