package eth

import (
	"context"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/rs/zerolog/log"
)

// HeadSubscriber is implemented by *ethclient.Client
type HeadSubscriber interface {
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)
}

// HeadHandler processes new chain heads
type HeadHandler interface {
	HandleHead(ctx context.Context, head *types.Header) error
}

// HeadWatcher passes every new head of the chain to a HeadHandler
type HeadWatcher struct {
	subscriber HeadSubscriber
	handler    HeadHandler
	// maximum delay between resubscription attempts
	backoffMax time.Duration
}

// NewHeadWatcher creates a new HeadWatcher.
func NewHeadWatcher(subscriber HeadSubscriber, handler HeadHandler) *HeadWatcher {
	return &HeadWatcher{
		subscriber: subscriber,
		handler:    handler,
		backoffMax: time.Second * 20,
	}
}

// Start blocks until ctx is cancelled or the subscription fails.
// Handler errors are logged, the next head is processed anyway.
func (w *HeadWatcher) Start(ctx context.Context) error {
	heads := make(chan *types.Header, 16)
	subscription := event.Resubscribe(w.backoffMax, func(ctx context.Context) (event.Subscription, error) {
		s, err := w.subscriber.SubscribeNewHead(ctx, heads)
		if err != nil {
			log.Debug().Err(err).Msg("head subscription failed")
			return nil, err
		}
		return s, nil
	})
	defer subscription.Unsubscribe()

	log.Info().Msg("Watching for new heads")
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-subscription.Err():
			return err
		case head := <-heads:
			if err := w.handler.HandleHead(ctx, head); err != nil {
				log.Error().Err(err).Uint64("height", head.Number.Uint64()).Msg("failed to handle head")
			}
		}
	}
}
