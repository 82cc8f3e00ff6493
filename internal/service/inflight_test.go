//go:build !integration

package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInFlight_RejectsSecondAcquire(t *testing.T) {
	g := NewInFlight()

	release, err := g.Acquire(OpCart, "c1")
	require.NoError(t, err)
	assert.True(t, g.Held(OpCart, "c1"))

	_, err = g.Acquire(OpCart, "c1")
	assert.ErrorIs(t, err, ErrOperationInFlight)

	other, err := g.Acquire(OpSelection, "c1")
	require.NoError(t, err, "different operations do not share tokens")
	other()

	release()
	release()
	assert.False(t, g.Held(OpCart, "c1"))

	again, err := g.Acquire(OpCart, "c1")
	require.NoError(t, err)
	again()
}

func TestInFlight_OneWinnerUnderContention(t *testing.T) {
	g := NewInFlight()
	var wins atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	releases := make(chan func(), 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if release, err := g.Acquire(OpProduct, "p1"); err == nil {
				wins.Add(1)
				releases <- release
			}
		}()
	}
	close(start)
	wg.Wait()
	close(releases)

	assert.Equal(t, int32(1), wins.Load())
	for r := range releases {
		r()
	}
}
