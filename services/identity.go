package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"chat-sync/domain/chat"
	"chat-sync/errors"
)

// ProfileAPI is the HTTP collaborator serving the current user's chat
// identity. Outside the sync core; only its boundary is specified here.
type ProfileAPI interface {
	FetchIdentity(ctx context.Context) (chat.Identity, error)
}

// IdentityResolver memoizes the chat identity for one session. Every
// outbound message and presence update is tagged with the resolved
// identity; consumers must not send unattributed payloads.
type IdentityResolver struct {
	log *slog.Logger
	api ProfileAPI

	mu     sync.Mutex
	cached *chat.Identity
}

func NewIdentityResolver(log *slog.Logger, api ProfileAPI) *IdentityResolver {
	return &IdentityResolver{log: log, api: api}
}

// Resolve returns the memoized identity, fetching it on first use.
// Concurrent callers share one fetch. Failure wraps
// errors.ErrIdentityUnavailable so consumers can block outbound actions
// on it.
func (r *IdentityResolver) Resolve(ctx context.Context) (chat.Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		return *r.cached, nil
	}

	identity, err := r.api.FetchIdentity(ctx)
	if err != nil {
		r.log.Warn("Identity fetch failed", "err", err)
		return chat.Identity{}, fmt.Errorf("%w: %v", errors.ErrIdentityUnavailable, err)
	}

	r.cached = &identity
	r.log.Debug("Chat identity resolved",
		"user_id", identity.UserID,
		"preference", identity.Preference,
	)
	return identity, nil
}

// Invalidate drops the memoized snapshot. Called when the display-name
// preference changes; the next Resolve refetches.
func (r *IdentityResolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cached = nil
}
