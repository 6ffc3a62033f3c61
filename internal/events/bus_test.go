package events

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/arrsync/internal/media"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(TypeStoreChanged, 10)

	instance := uuid.New()
	bus.Publish(&StoreChanged{BaseEvent: NewBaseEvent(TypeStoreChanged, media.KindMovie, instance), Operation: "fetch"})

	select {
	case received := <-ch:
		assert.Equal(t, TypeStoreChanged, received.EventType())
		assert.Equal(t, media.KindMovie, received.Kind())
		assert.Equal(t, instance, received.InstanceID())
		changed, ok := received.(*StoreChanged)
		require.True(t, ok)
		assert.Equal(t, "fetch", changed.Operation)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestBus_SubscribeAll(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.SubscribeAll(10)

	bus.Publish(&StoreChanged{BaseEvent: NewBaseEvent(TypeStoreChanged, media.KindSeries, uuid.New())})
	bus.Publish(&QueueUpdated{BaseEvent: NewBaseEvent(TypeQueueUpdated, media.KindQueue, uuid.Nil), Total: 3, BadgeCount: 1})

	received := make([]Event, 0, 2)
	timeout := time.After(time.Second)
	for i := 0; i < 2; i++ {
		select {
		case e := <-ch:
			received = append(received, e)
		case <-timeout:
			t.Fatalf("timeout waiting for event %d", i+1)
		}
	}

	assert.Len(t, received, 2)
}

func TestBus_SubscribeInstance(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	mine, other := uuid.New(), uuid.New()
	ch := bus.SubscribeInstance(mine, 10)

	bus.Publish(&StoreChanged{BaseEvent: NewBaseEvent(TypeStoreChanged, media.KindMovie, other)})
	bus.Publish(&StoreChanged{BaseEvent: NewBaseEvent(TypeStoreChanged, media.KindMovie, mine)})

	select {
	case e := <-ch:
		assert.Equal(t, mine, e.InstanceID())
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(TypeRequestFailed, 10)
	bus.Unsubscribe(ch)

	bus.Publish(&RequestFailed{BaseEvent: NewBaseEvent(TypeRequestFailed, media.KindMovie, uuid.New())})

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed")
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.Subscribe(TypeStoreChanged, 1)
	for i := 0; i < 3; i++ {
		bus.Publish(&StoreChanged{BaseEvent: NewBaseEvent(TypeStoreChanged, media.KindMovie, uuid.Nil)})
	}

	assert.Len(t, ch, 1)
}

func TestBus_ClosedAndNil(t *testing.T) {
	var nilBus *Bus
	assert.NotPanics(t, func() {
		nilBus.Publish(&StoreChanged{BaseEvent: NewBaseEvent(TypeStoreChanged, media.KindMovie, uuid.Nil)})
	})

	bus := NewBus(nil)
	ch := bus.SubscribeAll(1)
	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	_, ok := <-ch
	assert.False(t, ok)

	late := bus.Subscribe(TypeStoreChanged, 1)
	_, ok = <-late
	assert.False(t, ok, "subscribing to a closed bus yields a closed channel")

	assert.NotPanics(t, func() {
		bus.Publish(&StoreChanged{BaseEvent: NewBaseEvent(TypeStoreChanged, media.KindMovie, uuid.Nil)})
	})
}

func TestBus_ConcurrentPublish(t *testing.T) {
	bus := NewBus(nil)
	defer bus.Close()

	ch := bus.SubscribeAll(100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bus.Publish(&StoreChanged{BaseEvent: NewBaseEvent(TypeStoreChanged, media.KindMovie, uuid.New())})
		}()
	}

	wg.Wait()

	count := 0
	timeout := time.After(time.Second)
loop:
	for {
		select {
		case <-ch:
			count++
			if count == 10 {
				break loop
			}
		case <-timeout:
			break loop
		}
	}

	assert.Equal(t, 10, count)
}
