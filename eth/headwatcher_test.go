package eth

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSubscriber struct {
	heights []int64
}

func (s *fakeSubscriber) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		for _, height := range s.heights {
			select {
			case ch <- &types.Header{Number: big.NewInt(height)}:
			case <-quit:
				return nil
			}
		}
		<-quit
		return nil
	}), nil
}

type recordingHandler struct {
	mut     sync.Mutex
	heights []uint64
	fail    uint64
	done    chan struct{}
	last    uint64
}

func (h *recordingHandler) HandleHead(ctx context.Context, head *types.Header) error {
	h.mut.Lock()
	defer h.mut.Unlock()
	height := head.Number.Uint64()
	h.heights = append(h.heights, height)
	if height == h.last {
		close(h.done)
	}
	if height == h.fail {
		return errors.New("boom")
	}
	return nil
}

func TestHeadWatcher(t *testing.T) {
	handler := &recordingHandler{fail: 2, last: 3, done: make(chan struct{})}
	watcher := NewHeadWatcher(&fakeSubscriber{heights: []int64{1, 2, 3}}, handler)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- watcher.Start(ctx)
	}()

	select {
	case <-handler.done:
	case <-time.After(5 * time.Second):
		t.Fatal("heads were not handled")
	}
	cancel()

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}

	handler.mut.Lock()
	defer handler.mut.Unlock()
	assert.Equal(t, []uint64{1, 2, 3}, handler.heights)
}
