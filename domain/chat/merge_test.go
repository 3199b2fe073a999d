package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func msg(id string, offset int) Message {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return Message{ID: id, Room: "lobby", Text: "text " + id,
		SentAt: base.Add(time.Duration(offset) * time.Second)}
}

func Test_Chronological_Reverses_Newest_First_Page(t *testing.T) {
	req := require.New(t)

	page := []Message{msg("c", 3), msg("b", 2), msg("a", 1)}

	out := Chronological(page)

	req.Equal([]Message{msg("a", 1), msg("b", 2), msg("c", 3)}, out)
	// The input page is untouched
	req.Equal("c", page[0].ID)
}

func Test_Chronological_Empty_Page(t *testing.T) {
	require.Empty(t, Chronological(nil))
}

func Test_MergeHistory_Prepends_Unseen_Only(t *testing.T) {
	req := require.New(t)

	history := []Message{msg("a", 1), msg("b", 2), msg("c", 3)}
	live := []Message{msg("c", 3), msg("d", 4)}

	out := MergeHistory(history, live)

	req.Equal([]string{"a", "b", "c", "d"}, ids(out))
}

func Test_MergeHistory_Never_Reorders_Live(t *testing.T) {
	req := require.New(t)

	// Live delivery order is authoritative even when timestamps disagree
	live := []Message{msg("z", 9), msg("y", 5)}

	out := MergeHistory([]Message{msg("a", 1)}, live)

	req.Equal([]string{"a", "z", "y"}, ids(out))
}

func Test_AppendUnique_Drops_Duplicate_Ids(t *testing.T) {
	req := require.New(t)

	seen := make(map[string]struct{})
	msgs, added := AppendUnique(nil, seen, msg("a", 1))
	req.True(added)

	msgs, added = AppendUnique(msgs, seen, msg("a", 1))
	req.False(added)
	req.Len(msgs, 1)

	msgs, added = AppendUnique(msgs, seen, msg("b", 2))
	req.True(added)
	req.Equal([]string{"a", "b"}, ids(msgs))
}

func ids(msgs []Message) []string {
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.ID
	}
	return out
}
