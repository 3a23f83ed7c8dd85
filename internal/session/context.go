package session

import "context"

type ctxKey struct{}

// WithState attaches state to ctx. API calls made with the returned
// context carry the state's token.
func WithState(ctx context.Context, state *State) context.Context {
	return context.WithValue(ctx, ctxKey{}, state)
}

func FromContext(ctx context.Context) *State {
	state, _ := ctx.Value(ctxKey{}).(*State)
	return state
}

// TokenFrom is the API client's token source.
func TokenFrom(ctx context.Context) string {
	if state := FromContext(ctx); state != nil {
		return state.Token
	}
	return ""
}

func IDFrom(ctx context.Context) string {
	if state := FromContext(ctx); state != nil {
		return state.ID
	}
	return ""
}
