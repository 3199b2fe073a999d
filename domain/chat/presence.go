package chat

import (
	"github.com/samber/lo"
)

// UpsertMember applies an enter or update event to the member set.
// Last write wins per client id; re-entering replaces the data instead
// of duplicating the entry.
func UpsertMember(members []PresenceMember, m PresenceMember) []PresenceMember {
	_, idx, found := lo.FindIndexOf(members, func(x PresenceMember) bool {
		return x.ClientID == m.ClientID
	})
	if found {
		out := make([]PresenceMember, len(members))
		copy(out, members)
		out[idx] = m
		return out
	}
	return append(members, m)
}

// RemoveMember applies a leave event to the member set.
func RemoveMember(members []PresenceMember, clientID string) []PresenceMember {
	return lo.Reject(members, func(x PresenceMember, _ int) bool {
		return x.ClientID == clientID
	})
}
