package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"chat-sync/contract"
	"chat-sync/domain/chat"
	"chat-sync/errors"
	"chat-sync/mocks"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// staticIdentity satisfies IdentitySource without a network call.
type staticIdentity struct {
	identity chat.Identity
	err      error
}

func (s staticIdentity) Resolve(context.Context) (chat.Identity, error) {
	return s.identity, s.err
}

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func Test_Connect_Transitions_To_Connected(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockDialer(ctrl)
	handle := mocks.NewMockHandle(ctrl)

	var onStatus func(contract.StatusEvent)
	dialer.EXPECT().Dial(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ contract.Session, fn func(contract.StatusEvent)) (contract.Handle, error) {
			onStatus = fn
			return handle, nil
		})

	lifecycle := NewConnectionLifecycle(testLogger(), dialer)

	var transitions []ConnState
	lifecycle.OnChange(func(c StateChange) { transitions = append(transitions, c.To) })

	// When connecting and the transport reports itself up
	err := lifecycle.Connect(context.Background(), contract.Session{ID: "s1", ClientID: "c1"})
	req.NoError(err)
	onStatus(contract.StatusEvent{Status: contract.StatusConnected})

	// Then the lifecycle walks connecting -> connected with the handle live
	req.Equal([]ConnState{StateConnecting, StateConnected}, transitions)
	req.Equal(StateConnected, lifecycle.State())
	req.NotNil(lifecycle.Handle())
}

func Test_Connect_Dial_Failure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("connection refused"))

	lifecycle := NewConnectionLifecycle(testLogger(), dialer)

	err := lifecycle.Connect(context.Background(), contract.Session{ID: "s1"})

	var transportErr *errors.TransportError
	req.ErrorAs(err, &transportErr)
	req.Equal(StateFailed, lifecycle.State())
	req.Error(lifecycle.LastError())
	req.Nil(lifecycle.Handle())
}

func Test_Reconnect_Closes_Previous_Handle(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockDialer(ctrl)
	first := mocks.NewMockHandle(ctrl)
	second := mocks.NewMockHandle(ctrl)

	gomock.InOrder(
		dialer.EXPECT().Dial(gomock.Any(), gomock.Any(), gomock.Any()).Return(first, nil),
		first.EXPECT().Close().Return(nil),
		dialer.EXPECT().Dial(gomock.Any(), gomock.Any(), gomock.Any()).Return(second, nil),
	)

	lifecycle := NewConnectionLifecycle(testLogger(), dialer)

	// When connecting twice for the same session
	req.NoError(lifecycle.Connect(context.Background(), contract.Session{ID: "s1"}))
	req.NoError(lifecycle.Connect(context.Background(), contract.Session{ID: "s1"}))

	// Then exactly one handle is live and it is the newest
	req.Equal(second, lifecycle.Handle())
}

func Test_Stale_Status_Callback_Is_Dropped(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockDialer(ctrl)
	handle := mocks.NewMockHandle(ctrl)
	handle.EXPECT().Close().Return(nil)

	var onStatus func(contract.StatusEvent)
	dialer.EXPECT().Dial(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ contract.Session, fn func(contract.StatusEvent)) (contract.Handle, error) {
			onStatus = fn
			return handle, nil
		})

	lifecycle := NewConnectionLifecycle(testLogger(), dialer)
	req.NoError(lifecycle.Connect(context.Background(), contract.Session{ID: "s1"}))

	// When the handle is torn down before its status callback lands
	lifecycle.Disconnect()
	onStatus(contract.StatusEvent{Status: contract.StatusFailed, Err: fmt.Errorf("late failure")})

	// Then the late event never moves the state machine
	req.Equal(StateDisconnected, lifecycle.State())
}

func Test_Disconnect_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockDialer(ctrl)
	handle := mocks.NewMockHandle(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), gomock.Any(), gomock.Any()).Return(handle, nil)
	handle.EXPECT().Close().Return(nil).Times(1)

	lifecycle := NewConnectionLifecycle(testLogger(), dialer)
	req.NoError(lifecycle.Connect(context.Background(), contract.Session{ID: "s1"}))

	lifecycle.Disconnect()
	lifecycle.Disconnect()

	req.Equal(StateDisconnected, lifecycle.State())
	req.Nil(lifecycle.Handle())
}

func Test_Failure_Then_Connect_Reenters_Connecting(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dialer := mocks.NewMockDialer(ctrl)
	handle := mocks.NewMockHandle(ctrl)
	gomock.InOrder(
		dialer.EXPECT().Dial(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("connection refused")),
		dialer.EXPECT().Dial(gomock.Any(), gomock.Any(), gomock.Any()).Return(handle, nil),
	)

	lifecycle := NewConnectionLifecycle(testLogger(), dialer)
	req.Error(lifecycle.Connect(context.Background(), contract.Session{ID: "s1"}))
	req.Equal(StateFailed, lifecycle.State())

	var sawConnecting bool
	remove := lifecycle.OnChange(func(c StateChange) {
		if c.To == StateConnecting {
			sawConnecting = true
		}
	})
	defer remove()

	// When the caller decides to try again after a failure
	req.NoError(lifecycle.Connect(context.Background(), contract.Session{ID: "s1"}))

	req.True(sawConnecting)
	req.Equal(handle, lifecycle.Handle())
}
