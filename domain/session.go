package domain

// Session is the auth state mirrored to local storage as {user, isAuthenticated}.
type Session struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
}

// Valid reports whether the session carries an identity and is authenticated.
func (s *Session) Valid() bool {
	return s != nil && s.IsAuthenticated && s.User != nil
}

// Anonymous is the signed-out state.
func Anonymous() Session {
	return Session{}
}
