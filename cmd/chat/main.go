package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"chat-sync/auth"
	"chat-sync/contract"
	"chat-sync/domain/chat"
	"chat-sync/infrastructure/natsx"
	"chat-sync/infrastructure/storage"
	"chat-sync/internal"
	"chat-sync/runtime"
	"chat-sync/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chat error: %v\n", err)
	}
	os.Exit(code)
}

// run handles configuration loading, the connection lifecycle and the
// interactive loop. Returning instead of exiting keeps every defer
// (badger close, transport teardown) on the path out.
func run() (int, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Local transcript, enabled by CHAT_TRANSCRIPT_PATH.
	var archiver contract.Archiver
	var transcript *storage.TranscriptStore
	if config.TranscriptPath != "" {
		db, err := badger.Open(badger.DefaultOptions(config.TranscriptPath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return exitRuntime, fmt.Errorf("transcript opening failed: %w", err)
		}
		defer func() {
			log.Info("Closing transcript store...")
			_ = db.Close()
		}()
		store := storage.NewTranscriptStore(db, log, &config.HistoryLimit)
		transcript = &store
		archiver = store
	}

	// Identity: the profile service when configured, else a local
	// identity built straight from the environment.
	var resolver *services.IdentityResolver
	if config.IdentityURL != "" {
		profile := services.NewHTTPProfileClient(config.IdentityURL, "")
		resolver = services.NewIdentityResolver(log, profile)
	} else {
		resolver = services.NewIdentityResolver(log, services.StaticProfile{
			Identity: chat.Identity{
				UserID:      config.UserID,
				DisplayName: config.DisplayName,
				Preference:  chat.PreferDisplayName,
			},
		})
	}

	token, err := auth.GenerateToken([]byte(config.AuthSecret),
		config.UserID, config.DisplayName, config.AuthTokenDuration)
	if err != nil {
		return exitRuntime, fmt.Errorf("token generation failed: %w", err)
	}

	dialer := natsx.NewDialer(log, natsx.Config{
		URL:            config.NatsURL,
		Name:           config.ClientName,
		ReconnectWait:  config.ReconnectWait,
		HistoryTimeout: config.HistoryTimeout,
	})

	lifecycle := runtime.NewConnectionLifecycle(log, dialer)
	lifecycle.OnChange(func(change runtime.StateChange) {
		switch change.To {
		case runtime.StateConnected:
			color.Green.Println("* connected")
		case runtime.StateDisconnected:
			color.Yellow.Println("* disconnected")
		case runtime.StateFailed:
			color.Red.Printf("* connection failed: %v\n", change.Err)
		}
	})

	session := contract.Session{
		ID:       uuid.NewString(),
		ClientID: uuid.NewString(),
		Token:    token,
	}
	if err := lifecycle.Connect(ctx, session); err != nil {
		return exitRuntime, fmt.Errorf("could not connect to %s: %w", config.NatsURL, err)
	}
	defer lifecycle.Disconnect()

	room, err := runtime.NewRoomSession(ctx, log, chat.RoomID(config.RoomID),
		lifecycle, resolver, runtime.SessionConfig{
			HistoryLimit:     config.HistoryLimit,
			MaxContentLength: config.MaxContentLength,
			TypingWindow:     config.TypingWindow,
			TypingHeartbeat:  config.TypingHeartbeat,
			Archiver:         archiver,
		})
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to join room %s: %w", config.RoomID, err)
	}
	defer room.Close(context.Background())

	room.Messages.OnAppend(func(m chat.Message) {
		printMessage(m)
	})
	room.Typing.OnUpdate(func() {
		if names := room.Typing.TypingUsers(); len(names) > 0 {
			color.Gray.Printf("... %s typing\n", strings.Join(names, ", "))
		}
	})

	if err := room.LoadHistory(ctx); err != nil {
		// Not fatal: live messages still flow.
		log.Warn("History unavailable", "room", config.RoomID, "err", err)
	}
	for _, m := range room.Messages.Messages() {
		printMessage(m)
	}

	color.Green.Printf(">>> Joined %s as %s (/who, /history, /quit)\n",
		config.RoomID, config.DisplayName)

	return interact(ctx, log, room, transcript, chat.RoomID(config.RoomID))
}

// interact reads stdin lines until EOF, /quit or a termination signal.
func interact(ctx context.Context, log *slog.Logger, room *runtime.RoomSession,
	transcript *storage.TranscriptStore, roomID chat.RoomID) (int, error) {
	lines := make(chan string)
	scanner := bufio.NewScanner(os.Stdin)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping client...")
			return exitOK, nil
		case line, ok := <-lines:
			if !ok {
				return exitOK, nil
			}
			switch {
			case line == "/quit":
				return exitOK, nil
			case line == "/who":
				printMembers(room)
			case line == "/history":
				printTranscript(transcript, roomID)
			case strings.TrimSpace(line) == "":
				continue
			default:
				if _, err := room.Send(ctx, line); err != nil {
					// Echo the draft back so nothing typed is lost.
					color.Red.Printf("! not sent (%v): %s\n", err, line)
					continue
				}
			}
		}
	}
}

func printMessage(m chat.Message) {
	fmt.Printf("[%s] %s: %s\n",
		m.SentAt.Local().Format("15:04:05"),
		m.Meta.DisplayName,
		m.Text,
	)
}
