// Package monitor tracks whether remote credentials are configured and
// whether the remote backend is reachable.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/iudanet/depotsync/internal/client/api"
	"github.com/iudanet/depotsync/internal/client/status"
	"github.com/iudanet/depotsync/internal/models"
)

const (
	defaultProbeInterval = 30 * time.Second
	defaultProbeTimeout  = 5 * time.Second
	minRetryInterval     = time.Second
)

//go:generate moq -out credentialsource_mock.go . CredentialSource
//go:generate moq -out prober_mock.go . Prober

// CredentialSource returns the stored remote URL and key
type CredentialSource interface {
	Credentials() models.Credentials
}

// Prober checks remote reachability
type Prober interface {
	Ping(ctx context.Context) error
}

// Config параметры монитора
type Config struct {
	ProbeInterval time.Duration // период проверки, пока сеть есть
	ProbeTimeout  time.Duration // таймаут одного ping
}

// State результат getStatus
type State struct {
	HasCredentials bool
	IsOnline       bool
}

// Ready reports whether a sync cycle may run
func (s State) Ready() bool {
	return s.HasCredentials && s.IsOnline
}

// Monitor recomputes credential and connectivity state and publishes it.
// The ready hook fires when credentials are updated while reachable and on
// every offline to online transition with credentials present.
type Monitor struct {
	creds   CredentialSource
	prober  Prober
	status  *status.Broadcaster
	logger  *slog.Logger
	onReady func()
	wake    chan struct{}
	cfg     Config
	state   State
	mu      sync.Mutex
	// refreshMu не дает двум probe идти одновременно
	refreshMu sync.Mutex
}

// New creates a monitor. Call OnReady before Run.
func New(creds CredentialSource, prober Prober, broadcaster *status.Broadcaster, logger *slog.Logger, cfg Config) *Monitor {
	if cfg.ProbeInterval <= 0 {
		cfg.ProbeInterval = defaultProbeInterval
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = defaultProbeTimeout
	}

	return &Monitor{
		creds:   creds,
		prober:  prober,
		status:  broadcaster,
		logger:  logger,
		onReady: func() {},
		wake:    make(chan struct{}, 1),
		cfg:     cfg,
	}
}

// OnReady sets the hook that starts a sync cycle.
func (m *Monitor) OnReady(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReady = fn
}

// GetStatus returns the last computed state without probing.
func (m *Monitor) GetStatus() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Refresh re-reads credentials and probes the remote when they are present.
// Without credentials there is nothing to probe and IsOnline is false.
func (m *Monitor) Refresh(ctx context.Context) State {
	state, _ := m.refresh(ctx)
	return state
}

func (m *Monitor) refresh(ctx context.Context) (State, bool) {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	prev := m.GetStatus()
	next := State{HasCredentials: m.creds.Credentials().Complete()}

	if next.HasCredentials {
		probeCtx, cancel := context.WithTimeout(ctx, m.cfg.ProbeTimeout)
		err := m.prober.Ping(probeCtx)
		cancel()

		next.IsOnline = api.Reachable(err)
		if err != nil && next.IsOnline {
			// сервер ответил, но отклонил запрос: сеть есть, ошибка видна в lastError при синхронизации
			m.logger.Debug("Remote answered probe with error", "error", err)
		} else if err != nil {
			m.logger.Debug("Remote unreachable", "error", err)
		}
	}

	return next, m.apply(prev, next)
}

// NotifyCredentialsUpdated re-evaluates the state right away and, if a cycle
// may now run, fires the ready hook.
func (m *Monitor) NotifyCredentialsUpdated(ctx context.Context) State {
	state, fired := m.refresh(ctx)
	m.logger.Info("Credentials updated",
		"has_credentials", state.HasCredentials,
		"is_online", state.IsOnline)

	if state.Ready() && !fired {
		m.fireReady()
	}
	m.poke()
	return state
}

// SetOnline records a platform-reported network change without probing.
func (m *Monitor) SetOnline(online bool) {
	m.refreshMu.Lock()
	defer m.refreshMu.Unlock()

	prev := m.GetStatus()
	next := prev
	next.IsOnline = online
	m.apply(prev, next)
	if online {
		m.poke()
	}
}

// apply stores next, publishes it and fires the hook on offline to online.
// It reports whether the hook fired.
func (m *Monitor) apply(prev, next State) bool {
	m.mu.Lock()
	m.state = next
	m.mu.Unlock()

	m.status.Publish(models.StatusUpdate{
		HasCredentials: models.Ptr(next.HasCredentials),
		IsOnline:       models.Ptr(next.IsOnline),
	})

	if prev.IsOnline != next.IsOnline {
		m.logger.Info("Connectivity changed", "is_online", next.IsOnline)
	}

	if !prev.IsOnline && next.IsOnline && next.HasCredentials {
		m.fireReady()
		return true
	}
	return false
}

func (m *Monitor) fireReady() {
	m.mu.Lock()
	fn := m.onReady
	m.mu.Unlock()
	fn()
}

// poke wakes Run for an immediate probe
func (m *Monitor) poke() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Run probes until ctx is done: every ProbeInterval while online, on an
// exponential schedule capped at ProbeInterval while offline.
func (m *Monitor) Run(ctx context.Context) error {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = min(minRetryInterval, m.cfg.ProbeInterval)
	retry.MaxInterval = m.cfg.ProbeInterval

	for {
		state := m.Refresh(ctx)

		sleep := m.cfg.ProbeInterval
		if state.HasCredentials && !state.IsOnline {
			sleep = retry.NextBackOff()
			if sleep == backoff.Stop {
				sleep = m.cfg.ProbeInterval
			}
		} else {
			retry.Reset()
		}

		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-m.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}
