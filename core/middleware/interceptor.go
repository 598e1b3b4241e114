package middleware

import "net/http"

// Interceptor inspects or decorates an outgoing request.
// Returning an error aborts the request.
type Interceptor func(req *http.Request) error

// Chain runs interceptors in order and stops at the first error.
func Chain(req *http.Request, interceptors ...Interceptor) error {
	for _, in := range interceptors {
		if in == nil {
			continue
		}
		if err := in(req); err != nil {
			return err
		}
	}
	return nil
}
