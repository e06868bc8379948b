package revision

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	clock := New()

	require.NotNil(t, clock)
	assert.Equal(t, int64(0), clock.Current(), "Initial revision should be 0")
	assert.NotEmpty(t, clock.NodeID(), "NodeID should not be empty")
	assert.NotEqual(t, clock.NodeID(), New().NodeID())
}

func TestNewWithNodeID(t *testing.T) {
	clock := NewWithNodeID("host-1")

	assert.Equal(t, "host-1", clock.NodeID())
	assert.Equal(t, int64(0), clock.Current())
}

func TestClock_Next(t *testing.T) {
	clock := New()

	for want := int64(1); want <= 5; want++ {
		assert.Equal(t, want, clock.Next())
		assert.Equal(t, want, clock.Current())
	}
}

func TestClock_Observe(t *testing.T) {
	tests := []struct {
		name   string
		local  int64
		remote int64
		want   int64
	}{
		{name: "remote ahead", local: 2, remote: 10, want: 11},
		{name: "remote behind", local: 10, remote: 2, want: 11},
		{name: "equal", local: 5, remote: 5, want: 6},
		{name: "zero remote", local: 0, remote: 0, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := New()
			clock.Restore(tt.local)
			assert.Equal(t, tt.want, clock.Observe(tt.remote))
			assert.Equal(t, tt.want, clock.Current())
		})
	}
}

func TestClock_IsNewer(t *testing.T) {
	clock := New()
	clock.Restore(7)

	assert.True(t, clock.IsNewer(8))
	assert.False(t, clock.IsNewer(7))
	assert.False(t, clock.IsNewer(3))
}

func TestClock_Concurrent(t *testing.T) {
	clock := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				clock.Next()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1000), clock.Current())
}
