// Package session holds the signed-in operator of each console session
// and the transitions between signed-out and signed-in.
package session

import "chargili/internal/models"

type Status string

const (
	StatusAnonymous     Status = "anonymous"
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
)

const MsgSessionExpired = "Session expirée. Veuillez vous reconnecter"

// State is the session of one browser for the duration of a request.
type State struct {
	ID      string       `json:"-"`
	Status  Status       `json:"status"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"-"`
	Error   string       `json:"error,omitempty"`
	Loading bool         `json:"loading"`
}

func NewState(sid string) *State {
	return &State{ID: sid, Status: StatusAnonymous}
}

func (s *State) IsAuthenticated() bool {
	return s != nil && s.Status == StatusAuthenticated && s.Token != ""
}

func (s *State) IsAdmin() bool {
	return s.IsAuthenticated() && s.User != nil && s.User.IsAdmin()
}

func (s *State) LoginStart() {
	s.Status = StatusLoading
	s.Loading = true
	s.Error = ""
}

func (s *State) LoginSuccess(token string, user *models.User) {
	s.Status = StatusAuthenticated
	s.Token = token
	s.User = user
	s.Loading = false
	s.Error = ""
}

func (s *State) LoginFailure(message string) {
	s.Status = StatusAnonymous
	s.Token = ""
	s.User = nil
	s.Loading = false
	s.Error = message
}

func (s *State) Logout() {
	s.Status = StatusAnonymous
	s.Token = ""
	s.User = nil
	s.Loading = false
	s.Error = ""
}

// Restore marks a session rebuilt from a stored token.
func (s *State) Restore(token string, user *models.User) {
	s.LoginSuccess(token, user)
}

// Expire is Logout after the API rejected the token.
func (s *State) Expire() {
	s.Logout()
	s.Error = MsgSessionExpired
}
