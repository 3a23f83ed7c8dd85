// Package remotelist tracks the state of a server-owned list being fetched.
package remotelist

import (
	"context"
	"errors"
	"sync"

	apperrors "chargili/internal/errors"
)

type Status string

const (
	Idle    Status = "idle"
	Loading Status = "loading"
	Success Status = "success"
	Failed  Status = "failed"
)

// ErrStale is returned to a fetch whose result was superseded by a newer one.
var ErrStale = errors.New("remotelist: superseded by a newer fetch")

type State[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data"`
	Error  string `json:"error,omitempty"`
}

func (s State[T]) Loading() bool { return s.Status == Loading }

type FetchFunc[T any] func(ctx context.Context) (T, error)

// List applies only the most recently issued fetch. Starting a fetch
// cancels the one in flight.
type List[T any] struct {
	mu     sync.Mutex
	state  State[T]
	seq    uint64
	cancel context.CancelFunc
}

func New[T any]() *List[T] {
	return &List[T]{state: State[T]{Status: Idle}}
}

func (l *List[T]) State() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Fetch runs fetch and records its outcome. On failure the data is reset
// and the fetch error is returned along with the failed state.
func (l *List[T]) Fetch(ctx context.Context, fetch FetchFunc[T]) (State[T], error) {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	if l.cancel != nil {
		l.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state.Status = Loading
	l.state.Error = ""
	l.mu.Unlock()

	data, err := fetch(fetchCtx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		cancel()
		return l.state, ErrStale
	}
	cancel()
	l.cancel = nil

	if err != nil {
		var zero T
		l.state = State[T]{Status: Failed, Data: zero, Error: apperrors.MessageOf(err)}
		return l.state, err
	}
	l.state = State[T]{Status: Success, Data: data}
	return l.state, nil
}

// Cancel aborts the fetch in flight, if any. Its result will be discarded.
func (l *List[T]) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	if l.state.Status == Loading {
		l.state.Status = Idle
	}
}
