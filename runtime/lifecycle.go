// Package runtime contains the client-side synchronization engine: the
// connection lifecycle and the per-room stores that reconcile history,
// live messages, presence and typing into one consistent view.
package runtime

import (
	"context"
	"log/slog"
	"sync"

	"chat-sync/contract"
	"chat-sync/errors"
)

// ConnState is the lifecycle's observable connection state.
type ConnState int

const (
	StateDisconnected ConnState = iota
	StateConnecting
	StateConnected
	StateFailed
)

func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StateChange is delivered synchronously to observers on every
// transition. Err is set when To is StateFailed.
type StateChange struct {
	From ConnState
	To   ConnState
	Err  error
}

// ConnectionLifecycle owns at most one live transport handle per session
// identity. It never retries on its own: after a failure the caller
// decides whether to Connect again.
type ConnectionLifecycle struct {
	log    *slog.Logger
	dialer contract.Dialer

	mu       sync.Mutex
	session  contract.Session
	handle   contract.Handle
	state    ConnState
	lastErr  error
	gen      int // bumps on every teardown; stale status callbacks are dropped
	watchers map[int]func(StateChange)
	nextID   int
}

func NewConnectionLifecycle(log *slog.Logger, dialer contract.Dialer) *ConnectionLifecycle {
	return &ConnectionLifecycle{
		log:      log,
		dialer:   dialer,
		state:    StateDisconnected,
		watchers: make(map[int]func(StateChange)),
	}
}

// Connect tears down any prior handle synchronously and dials a fresh
// one for the given session. Called again after StateFailed it re-enters
// StateConnecting.
func (l *ConnectionLifecycle) Connect(ctx context.Context, session contract.Session) error {
	l.mu.Lock()
	l.releaseLocked()
	l.session = session
	l.gen++
	gen := l.gen
	change := l.transitionLocked(StateConnecting, nil)
	l.mu.Unlock()
	l.notify(change)

	// Dial outside the lock: the transport may report status
	// synchronously and the status path takes the lock again.
	handle, err := l.dialer.Dial(ctx, session, func(ev contract.StatusEvent) {
		l.onStatus(gen, ev)
	})

	l.mu.Lock()
	if err != nil {
		change = l.transitionLocked(StateFailed, err)
		l.mu.Unlock()
		l.notify(change)
		return errors.NewTransportError("connect", err)
	}
	if gen != l.gen {
		// A concurrent Disconnect or Connect superseded this dial.
		l.mu.Unlock()
		_ = handle.Close()
		return nil
	}
	l.handle = handle
	l.mu.Unlock()
	return nil
}

// Disconnect releases the transport handle unconditionally and settles
// in StateDisconnected. Idempotent.
func (l *ConnectionLifecycle) Disconnect() {
	l.mu.Lock()
	l.gen++
	l.releaseLocked()
	change := l.transitionLocked(StateDisconnected, nil)
	l.mu.Unlock()
	l.notify(change)
}

// State returns the current connection state.
func (l *ConnectionLifecycle) State() ConnState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// LastError returns the most recent transport failure, or nil.
func (l *ConnectionLifecycle) LastError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Handle exposes the live transport handle for room sessions. Nil unless
// a dial completed and has not been torn down.
func (l *ConnectionLifecycle) Handle() contract.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.handle
}

// Session returns the identity driving the current handle.
func (l *ConnectionLifecycle) Session() contract.Session {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session
}

// OnChange registers a state observer. The returned function removes it.
func (l *ConnectionLifecycle) OnChange(fn func(StateChange)) func() {
	l.mu.Lock()
	id := l.nextID
	l.nextID++
	l.watchers[id] = fn
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		delete(l.watchers, id)
		l.mu.Unlock()
	}
}

func (l *ConnectionLifecycle) onStatus(gen int, ev contract.StatusEvent) {
	l.mu.Lock()
	if gen != l.gen {
		// Status from a handle that has already been torn down.
		l.mu.Unlock()
		return
	}
	var change *StateChange
	switch ev.Status {
	case contract.StatusConnected:
		change = l.transitionLocked(StateConnected, nil)
	case contract.StatusDisconnected:
		change = l.transitionLocked(StateDisconnected, nil)
	case contract.StatusFailed:
		change = l.transitionLocked(StateFailed, ev.Err)
	}
	l.mu.Unlock()
	l.notify(change)
}

// releaseLocked closes the current handle, if any. Guaranteed on every
// exit path, error paths included.
func (l *ConnectionLifecycle) releaseLocked() {
	if l.handle == nil {
		return
	}
	if err := l.handle.Close(); err != nil {
		l.log.Warn("Transport handle close failed", "err", err)
	}
	l.handle = nil
}

func (l *ConnectionLifecycle) transitionLocked(to ConnState, err error) *StateChange {
	from := l.state
	l.state = to
	if to == StateFailed {
		l.lastErr = err
	}
	if from == to {
		return nil
	}
	l.log.Debug("Connection state change", "from", from.String(), "to", to.String())
	return &StateChange{From: from, To: to, Err: err}
}

func (l *ConnectionLifecycle) notify(change *StateChange) {
	if change == nil {
		return
	}
	l.mu.Lock()
	fns := make([]func(StateChange), 0, len(l.watchers))
	for _, fn := range l.watchers {
		fns = append(fns, fn)
	}
	l.mu.Unlock()
	for _, fn := range fns {
		fn(*change)
	}
}
