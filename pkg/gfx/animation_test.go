package gfx

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimation_SendsEvolveUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	updates := make(chan func(), 1)

	calls := 0
	a := NewAnimation(time.Millisecond, func() { calls++ })
	a.Run(ctx, &wg, updates)
	// a second Run is ignored
	a.Run(ctx, &wg, updates)

	for i := 0; i < 3; i++ {
		select {
		case fn := <-updates:
			fn()
		case <-time.After(time.Second):
			require.FailNow(t, "animation did not tick")
		}
	}
	cancel()
	wg.Wait()
	assert.Equal(t, 3, calls)
}

func TestAnimation_NilEvolveNeverStarts(t *testing.T) {
	var wg sync.WaitGroup
	NewAnimation(time.Millisecond, nil).Run(context.Background(), &wg, make(chan func()))
	wg.Wait()
}
