package chat

import (
	"time"

	"github.com/samber/lo"
)

// ArmTyping (re)starts the expiry window for one composing member. An
// existing entry for the same client id is replaced, so a stream of
// keystroke heartbeats keeps exactly one entry alive.
func ArmTyping(entries []TypingEntry, e TypingEntry) []TypingEntry {
	_, idx, found := lo.FindIndexOf(entries, func(x TypingEntry) bool {
		return x.ClientID == e.ClientID
	})
	if found {
		out := make([]TypingEntry, len(entries))
		copy(out, entries)
		out[idx] = e
		return out
	}
	return append(entries, e)
}

// StopTyping removes an entry after an explicit stop signal.
func StopTyping(entries []TypingEntry, clientID string) []TypingEntry {
	return lo.Reject(entries, func(x TypingEntry, _ int) bool {
		return x.ClientID == clientID
	})
}

// PruneTyping drops entries whose window elapsed without a fresh
// keystroke. This bounds the damage of a lost stop signal: nobody stays
// shown as typing forever.
func PruneTyping(entries []TypingEntry, now time.Time) []TypingEntry {
	return lo.Reject(entries, func(x TypingEntry, _ int) bool {
		return !x.ExpiresAt.After(now)
	})
}

// TypingNames renders the visible indicator: display names of everyone
// composing, with self always excluded regardless of transport echo.
func TypingNames(entries []TypingEntry, selfClientID string) []string {
	return lo.FilterMap(entries, func(x TypingEntry, _ int) (string, bool) {
		if x.ClientID == selfClientID {
			return "", false
		}
		return x.DisplayName, true
	})
}
