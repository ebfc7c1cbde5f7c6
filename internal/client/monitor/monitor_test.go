package monitor

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/depotsync/internal/client/api"
	"github.com/iudanet/depotsync/internal/client/status"
	"github.com/iudanet/depotsync/internal/models"
)

type fixture struct {
	monitor *Monitor
	status  *status.Broadcaster
	creds   *models.Credentials
	pingErr *error
	ready   *atomic.Int32
	mu      *sync.Mutex
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	var (
		mu      sync.Mutex
		creds   models.Credentials
		pingErr error
		ready   atomic.Int32
	)

	source := &CredentialSourceMock{
		CredentialsFunc: func() models.Credentials {
			mu.Lock()
			defer mu.Unlock()
			return creds
		},
	}
	prober := &ProberMock{
		PingFunc: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			return pingErr
		},
	}

	b := status.New()
	m := New(source, prober, b, slog.New(slog.DiscardHandler), Config{ProbeInterval: 20 * time.Millisecond})
	m.OnReady(func() { ready.Add(1) })

	return fixture{monitor: m, status: b, creds: &creds, pingErr: &pingErr, ready: &ready, mu: &mu}
}

func (f fixture) setCreds(c models.Credentials) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*f.creds = c
}

func (f fixture) setPingErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*f.pingErr = err
}

var validCreds = models.Credentials{URL: "http://remote", Key: "k"}

func TestMonitor_NoCredentials(t *testing.T) {
	f := newFixture(t)

	state := f.monitor.Refresh(context.Background())
	assert.False(t, state.HasCredentials)
	assert.False(t, state.IsOnline)
	assert.False(t, f.status.Get().HasCredentials)
	assert.Equal(t, int32(0), f.ready.Load())
}

func TestMonitor_CredentialsUpdatedTriggersOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.monitor.Refresh(ctx)
	f.setCreds(validCreds)

	state := f.monitor.NotifyCredentialsUpdated(ctx)
	assert.True(t, state.Ready())
	assert.Equal(t, int32(1), f.ready.Load())

	st := f.status.Get()
	assert.True(t, st.HasCredentials)
	assert.True(t, st.IsOnline)

	// уже онлайн: повторное сохранение снова запускает цикл
	f.monitor.NotifyCredentialsUpdated(ctx)
	assert.Equal(t, int32(2), f.ready.Load())
}

func TestMonitor_CredentialsUpdatedWhileUnreachable(t *testing.T) {
	f := newFixture(t)
	f.setCreds(validCreds)
	f.setPingErr(&api.RemoteError{Kind: api.KindTransient, Err: errors.New("dial tcp: refused")})

	state := f.monitor.NotifyCredentialsUpdated(context.Background())
	assert.True(t, state.HasCredentials)
	assert.False(t, state.IsOnline)
	assert.Equal(t, int32(0), f.ready.Load())
}

func TestMonitor_OfflineToOnlineTriggers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.setCreds(validCreds)
	f.setPingErr(errors.New("network down"))

	f.monitor.Refresh(ctx)
	assert.False(t, f.monitor.GetStatus().IsOnline)

	f.setPingErr(nil)
	f.monitor.Refresh(ctx)
	assert.True(t, f.monitor.GetStatus().IsOnline)
	assert.Equal(t, int32(1), f.ready.Load())

	// online -> online: без повторного запуска
	f.monitor.Refresh(ctx)
	assert.Equal(t, int32(1), f.ready.Load())
}

func TestMonitor_ClearedCredentialsGoOffline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.setCreds(validCreds)

	f.monitor.Refresh(ctx)
	require.True(t, f.monitor.GetStatus().IsOnline)
	assert.Equal(t, int32(1), f.ready.Load())

	f.setCreds(models.Credentials{})
	state := f.monitor.Refresh(ctx)
	assert.False(t, state.HasCredentials)
	assert.False(t, state.IsOnline)
	assert.False(t, f.status.Get().IsOnline)

	// ключи вернули: снова offline -> online
	f.setCreds(validCreds)
	f.monitor.Refresh(ctx)
	assert.True(t, f.status.Get().IsOnline)
	assert.Equal(t, int32(2), f.ready.Load())
}

func TestMonitor_RejectedProbeStillOnline(t *testing.T) {
	f := newFixture(t)
	f.setCreds(validCreds)
	f.setPingErr(&api.RemoteError{Kind: api.KindTransient, StatusCode: 401, Message: "bad key"})

	state := f.monitor.Refresh(context.Background())
	assert.True(t, state.IsOnline)
}

func TestMonitor_SetOnline(t *testing.T) {
	f := newFixture(t)
	f.setCreds(validCreds)
	f.setPingErr(errors.New("down"))
	f.monitor.Refresh(context.Background())

	f.monitor.SetOnline(true)
	assert.True(t, f.status.Get().IsOnline)
	assert.Equal(t, int32(1), f.ready.Load())

	f.monitor.SetOnline(false)
	assert.False(t, f.status.Get().IsOnline)
	assert.Equal(t, int32(1), f.ready.Load())
}

func TestMonitor_RunRecoversAfterOutage(t *testing.T) {
	f := newFixture(t)
	f.setCreds(validCreds)
	f.setPingErr(errors.New("down"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- f.monitor.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, f.monitor.GetStatus().IsOnline)

	f.setPingErr(nil)
	require.Eventually(t, func() bool {
		return f.ready.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop")
	}
}
