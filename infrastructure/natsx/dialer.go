// Package natsx realizes the transport contract over NATS core
// subjects: plain publish/subscribe for live feeds and request/reply
// for history pages and presence snapshots.
package natsx

import (
	"context"
	"log/slog"
	"time"

	"chat-sync/contract"
	"chat-sync/domain/chat"

	"github.com/nats-io/nats.go"
)

// Config tunes one NATS connection.
type Config struct {
	URL            string
	Name           string // connection name shown in server monitoring
	ReconnectWait  time.Duration
	HistoryTimeout time.Duration
}

// Dialer builds transport handles backed by a NATS connection. Each Dial
// opens a dedicated connection; the session token authenticates it.
type Dialer struct {
	log *slog.Logger
	cfg Config
}

func NewDialer(log *slog.Logger, cfg Config) *Dialer {
	return &Dialer{log: log, cfg: cfg}
}

func (d *Dialer) Dial(_ context.Context, session contract.Session,
	onStatus func(contract.StatusEvent)) (contract.Handle, error) {
	opts := []nats.Option{
		nats.Name(d.cfg.Name),
		nats.ReconnectWait(d.cfg.ReconnectWait),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			d.log.Warn("NATS connection lost", "err", err)
			onStatus(contract.StatusEvent{Status: contract.StatusDisconnected})
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			d.log.Info("NATS reconnected", "url", nc.ConnectedUrl())
			onStatus(contract.StatusEvent{Status: contract.StatusConnected})
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			if err := nc.LastError(); err != nil {
				onStatus(contract.StatusEvent{Status: contract.StatusFailed, Err: err})
			}
		}),
	}
	if session.Token != "" {
		opts = append(opts, nats.Token(session.Token))
	}

	nc, err := nats.Connect(d.cfg.URL, opts...)
	if err != nil {
		return nil, err
	}

	d.log.Info("NATS connected", "url", nc.ConnectedUrl(), "client_id", session.ClientID)
	onStatus(contract.StatusEvent{Status: contract.StatusConnected})

	return &Handle{
		log:            d.log,
		nc:             nc,
		clientID:       session.ClientID,
		historyTimeout: d.cfg.HistoryTimeout,
	}, nil
}

// Handle is one live NATS connection serving any number of rooms.
type Handle struct {
	log            *slog.Logger
	nc             *nats.Conn
	clientID       string
	historyTimeout time.Duration
}

func (h *Handle) Room(id chat.RoomID) contract.RoomChannel {
	return &roomChannel{handle: h, room: id}
}

func (h *Handle) Presence(id chat.RoomID) contract.PresenceChannel {
	return &presenceChannel{handle: h, room: id}
}

func (h *Handle) Typing(id chat.RoomID) contract.TypingChannel {
	return &typingChannel{handle: h, room: id}
}

// Close drains the connection so in-flight publishes land before the
// socket goes away.
func (h *Handle) Close() error {
	if err := h.nc.Drain(); err != nil {
		h.nc.Close()
		return err
	}
	return nil
}
