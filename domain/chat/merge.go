package chat

// Chronological returns a copy of a newest-first history page in
// chronological order. History endpoints hand back the most recent
// message first; the visible sequence wants the oldest first.
func Chronological(page []Message) []Message {
	out := make([]Message, len(page))
	for i, m := range page {
		out[len(page)-1-i] = m
	}
	return out
}

// MergeHistory seeds a chronological history page in front of the live
// messages already collected. Ids already present in live are dropped;
// seeding never overwrites, only prepends unseen messages. The same
// message delivered via history and via a live replay therefore appears
// exactly once.
func MergeHistory(history, live []Message) []Message {
	present := make(map[string]struct{}, len(live))
	for _, m := range live {
		present[m.ID] = struct{}{}
	}
	merged := make([]Message, 0, len(history)+len(live))
	for _, m := range history {
		if _, ok := present[m.ID]; ok {
			continue
		}
		present[m.ID] = struct{}{}
		merged = append(merged, m)
	}
	return append(merged, live...)
}

// AppendUnique appends a live message unless its id is already present.
// Transport delivery order is authoritative; no re-sort by timestamp.
func AppendUnique(msgs []Message, seen map[string]struct{}, m Message) ([]Message, bool) {
	if _, ok := seen[m.ID]; ok {
		return msgs, false
	}
	seen[m.ID] = struct{}{}
	return append(msgs, m), true
}
