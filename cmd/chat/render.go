package main

import (
	"os"
	"time"

	"chat-sync/domain/chat"
	"chat-sync/infrastructure/storage"
	"chat-sync/runtime"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// printMembers renders the current member set as a table, oldest join
// first as the aggregator holds them.
func printMembers(room *runtime.RoomSession) {
	members := room.Presence.Members()
	if room.Presence.Loading() {
		color.Yellow.Println("presence still loading...")
		return
	}
	if len(members) == 0 {
		color.Yellow.Println("nobody here")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Display name", "User", "Client"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, m := range members {
		table.Append([]string{m.DisplayName, m.UserID, shortID(m.ClientID)})
	}
	table.Render()
}

// printTranscript dumps the newest local transcript page.
func printTranscript(transcript *storage.TranscriptStore, room chat.RoomID) {
	if transcript == nil {
		color.Yellow.Println("transcript disabled (set CHAT_TRANSCRIPT_PATH)")
		return
	}
	msgs, _, err := transcript.Recent(room, nil)
	if err != nil {
		color.Red.Printf("! transcript read failed: %v\n", err)
		return
	}
	if len(msgs) == 0 {
		color.Yellow.Println("transcript is empty")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "From", "Text"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	// Newest first on disk; show oldest first like the room feed.
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		table.Append([]string{m.SentAt.Local().Format(time.DateTime), m.Meta.DisplayName, m.Text})
	}
	table.Render()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
