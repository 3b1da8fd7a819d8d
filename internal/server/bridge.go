package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/streamsvc/userd/internal/domain"
	"github.com/streamsvc/userd/internal/store"
)

// streamState tracks one streaming call through its lifecycle. Producing is
// re-entered for every pushed row; the three terminal states all guarantee
// the storage cursor and the channel have been released.
type streamState int32

const (
	stateCreated streamState = iota
	stateProducing
	stateCompleted
	stateCancelled
	stateFailed
)

func (s streamState) String() string {
	switch s {
	case stateCreated:
		return "created"
	case stateProducing:
		return "producing"
	case stateCompleted:
		return "completed"
	case stateCancelled:
		return "cancelled"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// userStreamBridge connects a storage cursor, drained at the store's pace,
// to a consumer draining at the network's pace. One producer goroutine pushes
// rows into a bounded channel; when the consumer stalls the channel fills and
// the producer blocks on the push, which stops cursor reads until the
// consumer catches up. The channel is owned exclusively by this call's
// producer/consumer pair and is never shared.
//
// The consumer side is exposed through Users; after the channel closes, Err
// reports how the stream ended. Rows arrive in exactly the order the cursor
// produced them.
type userStreamBridge struct {
	items  chan *domain.User
	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger

	mu    sync.Mutex
	state streamState
	err   error
}

// startUserStream spawns the producer goroutine for one streaming call. The
// bridge takes ownership of the cursor and closes it on every exit path. The
// producer's lifetime is bounded by ctx: cancellation unblocks any pending
// push within a single attempt.
//
// Callers must invoke Stop on every return path; it is what guarantees the
// producer is gone before the enclosing call returns.
func startUserStream(ctx context.Context, cursor store.UserCursor, capacity int, log *slog.Logger) *userStreamBridge {
	ctx, cancel := context.WithCancel(ctx)
	b := &userStreamBridge{
		items:  make(chan *domain.User, capacity),
		cancel: cancel,
		done:   make(chan struct{}),
		logger: log,
		state:  stateCreated,
	}

	go b.produce(ctx, cursor)
	return b
}

// Users returns the consumer side of the bridge. The channel is closed once
// the bridge reaches a terminal state; consult Err afterwards.
func (b *userStreamBridge) Users() <-chan *domain.User {
	return b.items
}

// Err reports how the stream ended: nil after natural exhaustion, the
// context error after cancellation, or the cursor's error after a storage
// fault. Only valid once the Users channel has been closed.
func (b *userStreamBridge) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// State returns the bridge's current lifecycle state.
func (b *userStreamBridge) State() streamState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Stop cancels the producer and blocks until it has fully torn down,
// including closing the storage cursor. Safe to call multiple times and
// after natural completion, where it returns immediately.
func (b *userStreamBridge) Stop() {
	b.cancel()
	<-b.done
}

// produce is the bridge's producer loop. It runs in its own goroutine and is
// the only writer to the items channel, so rows keep cursor order. Each
// iteration reads one row and offers it to the consumer, giving cancellation
// a bounded window of exactly one push attempt.
func (b *userStreamBridge) produce(ctx context.Context, cursor store.UserCursor) {
	defer close(b.done)
	defer close(b.items)
	defer func() {
		if err := cursor.Close(); err != nil {
			b.logger.Error("failed to close user cursor", slog.String("error", err.Error()))
		}
	}()

	b.transition(stateProducing, nil)

	for cursor.Next() {
		select {
		case b.items <- cursor.User():
		case <-ctx.Done():
			b.transition(stateCancelled, ctx.Err())
			return
		}
	}

	if err := cursor.Err(); err != nil {
		b.transition(stateFailed, err)
		return
	}
	b.transition(stateCompleted, nil)
}

func (b *userStreamBridge) transition(next streamState, err error) {
	b.mu.Lock()
	b.state = next
	if err != nil && b.err == nil {
		b.err = err
	}
	b.mu.Unlock()

	switch next {
	case stateCancelled:
		b.logger.Debug("user stream cancelled by consumer")
	case stateFailed:
		b.logger.Debug("user stream failed", slog.String("error", err.Error()))
	case stateCompleted:
		b.logger.Debug("user stream completed")
	}
}
