package natsx

import (
	"fmt"

	"chat-sync/domain/chat"
)

// Subject layout, one room per token:
//
//	chat.room.<room>       live messages
//	chat.history.<room>    history request/reply, newest first
//	presence.event.<room>  enter/update/leave events
//	presence.room.<room>   member snapshot request/reply
//	typing.<room>          keystroke/stop signals
func roomSubject(id chat.RoomID) string {
	return fmt.Sprintf("chat.room.%s", id)
}

func historySubject(id chat.RoomID) string {
	return fmt.Sprintf("chat.history.%s", id)
}

func presenceEventSubject(id chat.RoomID) string {
	return fmt.Sprintf("presence.event.%s", id)
}

func presenceRoomSubject(id chat.RoomID) string {
	return fmt.Sprintf("presence.room.%s", id)
}

func typingSubject(id chat.RoomID) string {
	return fmt.Sprintf("typing.%s", id)
}
