package session

import "github.com/google/uuid"

// Session identifies the authenticated actor for one request.
// It is built once by the auth middleware and passed explicitly into
// services; nothing below the handler layer reads ambient auth state.
type Session struct {
	ActorID uuid.UUID
	Email   string
}

// Anonymous is the zero session for unauthenticated requests.
var Anonymous = Session{}

// Authenticated reports whether the session carries an actor.
func (s Session) Authenticated() bool {
	return s.ActorID != uuid.Nil
}
