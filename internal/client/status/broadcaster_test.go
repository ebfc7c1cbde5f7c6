package status

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/depotsync/internal/models"
)

func TestBroadcaster_InitialStatusIsEmpty(t *testing.T) {
	b := New()
	assert.Equal(t, models.SyncStatus{}, b.Get())
}

func TestBroadcaster_LateSubscriberGetsCurrentState(t *testing.T) {
	b := New()
	now := time.Now()

	b.Publish(models.StatusUpdate{IsOnline: models.Ptr(true)})
	b.Publish(models.StatusUpdate{HasCredentials: models.Ptr(true), PendingCount: models.Ptr(4)})
	b.Publish(models.StatusUpdate{LastSyncAt: &now, PendingCount: models.Ptr(2), LastError: models.Ptr("timeout")})

	var got []models.SyncStatus
	unsubscribe := b.Subscribe(func(s models.SyncStatus) {
		got = append(got, s)
	})
	defer unsubscribe()

	require.Len(t, got, 1)
	assert.True(t, got[0].IsOnline)
	assert.True(t, got[0].HasCredentials)
	assert.Equal(t, 2, got[0].PendingCount)
	assert.Equal(t, "timeout", got[0].LastError)
	require.NotNil(t, got[0].LastSyncAt)
	assert.True(t, now.Equal(*got[0].LastSyncAt))
}

func TestBroadcaster_NotifiesInSubscriptionOrder(t *testing.T) {
	b := New()

	var order []string
	b.Subscribe(func(models.SyncStatus) { order = append(order, "first") })
	b.Subscribe(func(models.SyncStatus) { order = append(order, "second") })
	b.Subscribe(func(models.SyncStatus) { order = append(order, "third") })
	order = nil

	b.Publish(models.StatusUpdate{Syncing: models.Ptr(true)})
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestBroadcaster_Unsubscribe(t *testing.T) {
	b := New()

	calls := 0
	unsubscribe := b.Subscribe(func(models.SyncStatus) { calls++ })
	assert.Equal(t, 1, calls)

	b.Publish(models.StatusUpdate{IsOnline: models.Ptr(true)})
	assert.Equal(t, 2, calls)

	unsubscribe()
	unsubscribe()

	b.Publish(models.StatusUpdate{IsOnline: models.Ptr(false)})
	assert.Equal(t, 2, calls)
}

func TestBroadcaster_UnsubscribeFromCallback(t *testing.T) {
	b := New()

	var (
		secondCalls int
		unsubSecond func()
	)
	b.Subscribe(func(s models.SyncStatus) {
		if s.Syncing && unsubSecond != nil {
			unsubSecond()
		}
	})
	unsubSecond = b.Subscribe(func(models.SyncStatus) { secondCalls++ })
	assert.Equal(t, 1, secondCalls)

	b.Publish(models.StatusUpdate{Syncing: models.Ptr(true)})
	assert.Equal(t, 1, secondCalls)
}

func TestBroadcaster_SnapshotsAreDetached(t *testing.T) {
	b := New()
	now := time.Now()
	b.Publish(models.StatusUpdate{LastSyncAt: &now})

	snap := b.Get()
	*snap.LastSyncAt = time.Time{}

	assert.True(t, now.Equal(*b.Get().LastSyncAt))
}

func TestBroadcaster_ConcurrentPublish(t *testing.T) {
	b := New()

	var (
		mu   sync.Mutex
		seen int
	)
	b.Subscribe(func(models.SyncStatus) {
		mu.Lock()
		seen++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			b.Publish(models.StatusUpdate{PendingCount: models.Ptr(n)})
		}(i)
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 51, seen)
}
