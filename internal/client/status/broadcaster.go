// Package status holds the process-wide sync status and fans every change out
// to subscribers.
package status

import (
	"sync"

	"github.com/iudanet/depotsync/internal/models"
)

// Listener receives status snapshots
type Listener func(models.SyncStatus)

type subscriber struct {
	fn Listener
	id uint64
}

// Broadcaster owns the SyncStatus cell. Subscribers are called synchronously,
// in subscription order, once per Publish. A listener must not call Publish
// or Subscribe itself; hand the snapshot to a goroutine instead.
type Broadcaster struct {
	subs    []subscriber
	current models.SyncStatus
	nextID  uint64
	mu      sync.Mutex
	// notifyMu сериализует рассылку: подписчик не видит снимки не по порядку
	notifyMu sync.Mutex
}

// New creates a broadcaster holding the all-false/empty status.
func New() *Broadcaster {
	return &Broadcaster{}
}

// Get returns the current snapshot.
func (b *Broadcaster) Get() models.SyncStatus {
	b.mu.Lock()
	defer b.mu.Unlock()
	return copyStatus(b.current)
}

// Subscribe registers fn and immediately calls it with the current snapshot.
// The returned function unsubscribes and is safe to call more than once.
func (b *Broadcaster) Subscribe(fn Listener) func() {
	b.notifyMu.Lock()
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	snapshot := copyStatus(b.current)
	b.mu.Unlock()

	fn(snapshot)
	b.notifyMu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish merges u into the status and notifies every live subscriber.
// It returns the merged snapshot.
func (b *Broadcaster) Publish(u models.StatusUpdate) models.SyncStatus {
	b.notifyMu.Lock()
	defer b.notifyMu.Unlock()

	b.mu.Lock()
	b.current = b.current.Apply(u)
	snapshot := copyStatus(b.current)
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		if !b.live(s.id) {
			continue
		}
		s.fn(copyStatus(snapshot))
	}
	return snapshot
}

// live reports whether a subscriber is still registered. A listener may
// unsubscribe another one from inside its callback.
func (b *Broadcaster) live(id uint64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs {
		if s.id == id {
			return true
		}
	}
	return false
}

// copyStatus detaches LastSyncAt from the cell
func copyStatus(s models.SyncStatus) models.SyncStatus {
	if s.LastSyncAt != nil {
		t := *s.LastSyncAt
		s.LastSyncAt = &t
	}
	return s
}
