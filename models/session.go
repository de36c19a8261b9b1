package models

// Session is the client's derived view of its authentication state.
// It is assembled from the persisted token pair and user profile and is
// never stored on its own.
type Session struct {
	Tokens *TokenPair
	User   *User
}

// IsAuthenticated reports whether the session holds a usable token pair.
func (s Session) IsAuthenticated() bool {
	return s.Tokens != nil && s.Tokens.Access != ""
}
