package remotelist

import (
	"context"
	"errors"
	"testing"

	apperrors "chargili/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSuccessAndFailure(t *testing.T) {
	l := New[[]string]()
	assert.Equal(t, Idle, l.State().Status)

	state, err := l.Fetch(context.Background(), func(context.Context) ([]string, error) {
		return []string{"Orange", "Free"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, Success, state.Status)
	assert.Equal(t, []string{"Orange", "Free"}, state.Data)

	state, err = l.Fetch(context.Background(), func(context.Context) ([]string, error) {
		return nil, apperrors.NewAPIError(500, "Erreur lors de la récupération des opérateurs")
	})
	require.Error(t, err)
	assert.Equal(t, Failed, state.Status)
	assert.Empty(t, state.Data)
	assert.Equal(t, "Erreur lors de la récupération des opérateurs", state.Error)
	assert.False(t, state.Loading())

	state, err = l.Fetch(context.Background(), func(context.Context) ([]string, error) {
		return []string{"SFR"}, nil
	})
	require.NoError(t, err)
	assert.Empty(t, state.Error)
}

func TestStaleResponseDiscarded(t *testing.T) {
	l := New[string]()

	release := make(chan struct{})
	started := make(chan struct{})
	firstCancelled := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := l.Fetch(context.Background(), func(ctx context.Context) (string, error) {
			close(started)
			<-ctx.Done()
			close(firstCancelled)
			<-release
			return "page 1", nil
		})
		done <- err
	}()
	<-started

	state, err := l.Fetch(context.Background(), func(context.Context) (string, error) {
		return "page 2", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "page 2", state.Data)

	<-firstCancelled
	close(release)
	assert.True(t, errors.Is(<-done, ErrStale))

	assert.Equal(t, "page 2", l.State().Data)
	assert.Equal(t, Success, l.State().Status)
}

func TestCancelDiscardsInFlight(t *testing.T) {
	l := New[int]()
	started := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := l.Fetch(context.Background(), func(ctx context.Context) (int, error) {
			close(started)
			<-ctx.Done()
			return 0, ctx.Err()
		})
		done <- err
	}()
	<-started

	l.Cancel()
	assert.ErrorIs(t, <-done, ErrStale)
	assert.Equal(t, Idle, l.State().Status)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	a := Get[[]int](r, "sid-1", "agents")
	assert.Same(t, a, Get[[]int](r, "sid-1", "agents"))
	assert.NotSame(t, a, Get[[]int](r, "sid-2", "agents"))
	Get[[]string](r, "sid-1", "operators")
	assert.Equal(t, 3, r.Len())

	r.Drop("sid-1")
	assert.Equal(t, 1, r.Len())
	assert.NotSame(t, a, Get[[]int](r, "sid-1", "agents"))
}
