package middleware

import "net/http"

// TokenSource provides the current bearer token. An empty string means "not logged in".
type TokenSource interface {
	Token() string
}

// BearerToken attaches the session token to every request when one is present.
func BearerToken(src TokenSource) Interceptor {
	return func(req *http.Request) error {
		if src == nil {
			return nil
		}
		if token := src.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return nil
	}
}
