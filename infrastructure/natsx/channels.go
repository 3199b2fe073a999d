package natsx

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"chat-sync/contract"
	"chat-sync/domain/chat"
	"chat-sync/domain/event"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

type roomChannel struct {
	handle *Handle
	room   chat.RoomID
}

// Publish assigns the message id and timestamp and puts the payload on
// the room subject. The caller sees the exact message every subscriber
// will receive, echo included.
func (c *roomChannel) Publish(_ context.Context, text string, meta chat.MessageMeta) (chat.Message, error) {
	msg := chat.Message{
		ID:       uuid.NewString(),
		Room:     c.room,
		ClientID: c.handle.clientID,
		Text:     text,
		SentAt:   time.Now().UTC(),
		Meta:     meta,
	}
	data, err := json.Marshal(toWireMessage(msg))
	if err != nil {
		return chat.Message{}, err
	}
	if err := c.handle.nc.Publish(roomSubject(c.room), data); err != nil {
		return chat.Message{}, err
	}
	return msg, nil
}

func (c *roomChannel) Subscribe(fn func(chat.Message)) (contract.Unsubscribe, error) {
	sub, err := c.handle.nc.Subscribe(roomSubject(c.room), func(m *nats.Msg) {
		var w wireMessage
		if err := json.Unmarshal(m.Data, &w); err != nil {
			c.handle.log.Warn("Dropping malformed room message", "room", c.room, "err", err)
			return
		}
		fn(fromWireMessage(w))
	})
	if err != nil {
		return nil, err
	}
	return unsubscriber(c.handle, sub), nil
}

// History requests the latest page, newest first.
func (c *roomChannel) History(ctx context.Context, limit int) ([]chat.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, c.handle.historyTimeout)
	defer cancel()

	data, err := json.Marshal(historyRequest{Limit: limit})
	if err != nil {
		return nil, err
	}
	reply, err := c.handle.nc.RequestWithContext(ctx, historySubject(c.room), data)
	if err != nil {
		return nil, err
	}
	var resp historyResponse
	if err := json.Unmarshal(reply.Data, &resp); err != nil {
		return nil, err
	}
	return fromHistoryResponse(resp), nil
}

type presenceChannel struct {
	handle *Handle
	room   chat.RoomID
}

func (c *presenceChannel) Enter(ctx context.Context, who chat.PresenceMember) error {
	return c.publish(ctx, event.ActionEnter, who)
}

func (c *presenceChannel) Update(ctx context.Context, who chat.PresenceMember) error {
	return c.publish(ctx, event.ActionUpdate, who)
}

func (c *presenceChannel) Leave(ctx context.Context, who chat.PresenceMember) error {
	return c.publish(ctx, event.ActionLeave, who)
}

func (c *presenceChannel) publish(_ context.Context, action event.PresenceAction, who chat.PresenceMember) error {
	data, err := json.Marshal(presenceEvent{Action: string(action), Member: toWireMember(who)})
	if err != nil {
		return err
	}
	return c.handle.nc.Publish(presenceEventSubject(c.room), data)
}

// Subscribe attaches to the event feed first, then requests the member
// snapshot. Events arriving while the snapshot is in flight land after
// it in the aggregator, where last write wins.
func (c *presenceChannel) Subscribe(fn func(event.PresenceChanged)) ([]chat.PresenceMember, contract.Unsubscribe, error) {
	sub, err := c.handle.nc.Subscribe(presenceEventSubject(c.room), func(m *nats.Msg) {
		var p presenceEvent
		if err := json.Unmarshal(m.Data, &p); err != nil {
			c.handle.log.Warn("Dropping malformed presence event", "room", c.room, "err", err)
			return
		}
		fn(fromPresenceEvent(c.room, p))
	})
	if err != nil {
		return nil, nil, err
	}

	// A missing snapshot responder is not fatal: the feed alone converges.
	members := c.snapshot()
	return members, unsubscriber(c.handle, sub), nil
}

func (c *presenceChannel) snapshot() []chat.PresenceMember {
	ctx, cancel := context.WithTimeout(context.Background(), c.handle.historyTimeout)
	defer cancel()

	reply, err := c.handle.nc.RequestWithContext(ctx, presenceRoomSubject(c.room), nil)
	if err != nil {
		c.handle.log.Debug("No presence snapshot available", "room", c.room, "err", err)
		return nil
	}
	var snap presenceSnapshot
	if err := json.Unmarshal(reply.Data, &snap); err != nil {
		c.handle.log.Warn("Dropping malformed presence snapshot", "room", c.room, "err", err)
		return nil
	}
	return fromPresenceSnapshot(snap)
}

type typingChannel struct {
	handle *Handle
	room   chat.RoomID
}

func (c *typingChannel) Keystroke(ctx context.Context, who chat.PresenceMember) error {
	return c.publish(ctx, who, true)
}

func (c *typingChannel) Stop(ctx context.Context, who chat.PresenceMember) error {
	return c.publish(ctx, who, false)
}

func (c *typingChannel) publish(_ context.Context, who chat.PresenceMember, typing bool) error {
	data, err := json.Marshal(typingEvent{
		ClientID:    who.ClientID,
		DisplayName: who.DisplayName,
		Typing:      typing,
	})
	if err != nil {
		return err
	}
	return c.handle.nc.Publish(typingSubject(c.room), data)
}

func (c *typingChannel) Subscribe(fn func(event.TypingSignal)) (contract.Unsubscribe, error) {
	sub, err := c.handle.nc.Subscribe(typingSubject(c.room), func(m *nats.Msg) {
		var t typingEvent
		if err := json.Unmarshal(m.Data, &t); err != nil {
			c.handle.log.Warn("Dropping malformed typing event", "room", c.room, "err", err)
			return
		}
		fn(fromTypingEvent(c.room, t))
	})
	if err != nil {
		return nil, err
	}
	return unsubscriber(c.handle, sub), nil
}

// unsubscriber wraps a NATS subscription cancel. Safe to call twice.
func unsubscriber(h *Handle, sub *nats.Subscription) contract.Unsubscribe {
	var once sync.Once
	return func() {
		once.Do(func() {
			if err := sub.Unsubscribe(); err != nil {
				h.log.Debug("Unsubscribe failed", "subject", sub.Subject, "err", err)
			}
		})
	}
}
