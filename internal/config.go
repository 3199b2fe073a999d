package internal

import (
	"time"
)

// Config carries every knob of the sync layer. The typing window and
// heartbeat are deliberately configurable: the exact values are an
// implementation choice, not a protocol requirement.
type Config struct {
	NatsURL       string        `env:"CHAT_NATS_URL,default=nats://127.0.0.1:4222"`
	ClientName    string        `env:"CHAT_CLIENT_NAME,default=chat-sync"`
	ReconnectWait time.Duration `env:"CHAT_RECONNECT_WAIT,default=2s"`

	RoomID      string `env:"CHAT_ROOM_ID,default=lobby"`
	UserID      string `env:"CHAT_USER_ID,default=anonymous"`
	DisplayName string `env:"CHAT_DISPLAY_NAME,default=Anonymous"`

	// IdentityURL points at the profile HTTP collaborator. Empty means
	// dev mode: identity is built from CHAT_USER_ID/CHAT_DISPLAY_NAME.
	IdentityURL string `env:"CHAT_IDENTITY_URL"`

	AuthSecret        string        `env:"CHAT_AUTH_SECRET,default=dev_only_chat_sync_secret_2026"`
	AuthTokenDuration time.Duration `env:"CHAT_AUTH_TOKEN_DURATION,default=24h"`

	HistoryLimit     int           `env:"CHAT_HISTORY_LIMIT,default=50"`
	HistoryTimeout   time.Duration `env:"CHAT_HISTORY_TIMEOUT,default=5s"`
	MaxContentLength int           `env:"CHAT_MAX_CONTENT_LENGTH,default=2000"`

	TypingWindow    time.Duration `env:"CHAT_TYPING_WINDOW,default=4s"`
	TypingHeartbeat time.Duration `env:"CHAT_TYPING_HEARTBEAT,default=2s"`

	// TranscriptPath enables the local badger transcript when set.
	TranscriptPath string `env:"CHAT_TRANSCRIPT_PATH"`

	LogLevel string `env:"LOG_LEVEL,default=info"`
}
