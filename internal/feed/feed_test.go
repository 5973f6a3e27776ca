package feed

import (
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"OvernightExchange/internal/series"
)

func newTestFeed() *Feed {
	gen := series.NewGenerator(time.Now, rand.New(rand.NewPCG(1, 2)))
	return New("BTC/USDT", gen, 67450, series.DefaultLength)
}

func TestActivate_SeedsSeries(t *testing.T) {
	f := newTestFeed()
	assert.True(t, f.Snapshot().Empty())
	_, ok := f.Latest()
	assert.False(t, ok)

	id, err := f.Activate()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, series.DefaultLength, f.Snapshot().Len())

	again, err := f.Activate()
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestTick_InactiveFeedIsNoop(t *testing.T) {
	f := newTestFeed()
	_, ok := f.Tick()
	assert.False(t, ok)
	assert.True(t, f.Snapshot().Empty())
}

func TestTick_AdvancesWindow(t *testing.T) {
	f := newTestFeed()
	_, err := f.Activate()
	require.NoError(t, err)

	before := f.Snapshot()
	sample, ok := f.Tick()
	require.True(t, ok)

	after := f.Snapshot()
	assert.Equal(t, before.Len(), after.Len())
	assert.Equal(t, before.At(1), after.At(0))
	latest, _ := f.Latest()
	assert.Equal(t, sample, latest)
}

func TestDeactivate_StopsTicksPermanently(t *testing.T) {
	f := newTestFeed()
	_, err := f.Activate()
	require.NoError(t, err)

	f.Deactivate()
	f.Deactivate()

	frozen := f.Snapshot()
	_, ok := f.Tick()
	assert.False(t, ok)
	assert.Equal(t, frozen.Samples(), f.Snapshot().Samples())

	_, err = f.Activate()
	assert.ErrorIs(t, err, ErrDeactivated)
	assert.False(t, f.Active())
}

func TestSubscribe_ReceivesTicks(t *testing.T) {
	f := newTestFeed()
	_, err := f.Activate()
	require.NoError(t, err)

	updates, cancel := f.Subscribe(4)
	defer cancel()
	assert.Equal(t, 1, f.Subscribers())

	sample, ok := f.Tick()
	require.True(t, ok)

	select {
	case snap := <-updates:
		last, _ := snap.Latest()
		assert.Equal(t, sample, last)
	case <-time.After(time.Second):
		t.Fatal("expected an update")
	}
}

func TestSubscribe_SlowSubscriberDoesNotBlock(t *testing.T) {
	f := newTestFeed()
	_, err := f.Activate()
	require.NoError(t, err)

	_, cancel := f.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 10; i++ {
			f.Tick()
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tick blocked on a full subscriber")
	}
}

func TestSubscribe_CancelAndDeactivateClose(t *testing.T) {
	f := newTestFeed()
	_, err := f.Activate()
	require.NoError(t, err)

	a, cancelA := f.Subscribe(1)
	b, cancelB := f.Subscribe(1)
	defer cancelB()

	cancelA()
	cancelA()
	_, open := <-a
	assert.False(t, open)
	assert.Equal(t, 1, f.Subscribers())

	f.Deactivate()
	_, open = <-b
	assert.False(t, open)

	c, _ := f.Subscribe(1)
	_, open = <-c
	assert.False(t, open, "subscribing after deactivation yields a closed channel")
}

func TestTick_ConcurrentReaders(t *testing.T) {
	f := newTestFeed()
	_, err := f.Activate()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				assert.Equal(t, series.DefaultLength, f.Snapshot().Len())
			}
		}()
	}
	for i := 0; i < 100; i++ {
		f.Tick()
	}
	wg.Wait()
}
