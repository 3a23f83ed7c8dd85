package remotelist

import "sync"

type canceler interface {
	Cancel()
}

// Registry keeps one list per session and screen.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]map[string]canceler
}

func NewRegistry() *Registry {
	return &Registry{sessions: map[string]map[string]canceler{}}
}

// Get returns the list of screen for session sid, creating it on first use.
func Get[T any](r *Registry, sid, screen string) *List[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	screens, ok := r.sessions[sid]
	if !ok {
		screens = map[string]canceler{}
		r.sessions[sid] = screens
	}
	if existing, ok := screens[screen].(*List[T]); ok {
		return existing
	}
	list := New[T]()
	screens[screen] = list
	return list
}

// Drop cancels and forgets every list of session sid.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	screens := r.sessions[sid]
	delete(r.sessions, sid)
	r.mu.Unlock()

	for _, list := range screens {
		list.Cancel()
	}
}

// Len returns the number of live lists.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, screens := range r.sessions {
		n += len(screens)
	}
	return n
}
