// Package api is the HTTP transport every feature service talks through.
//
// A single Client is built at startup from Config and handed to the services that
// need it; there is no package-level instance.
//
// # Transport
//
// Paths are resolved against Config.BaseURL the same way for every verb
// (Get, Post, Put, Patch, Delete). Request and response bodies are JSON; Download
// returns the raw bytes for blob endpoints such as archive exports. Outgoing calls are
// throttled by a token bucket and decorated by the interceptors from core/middleware.
//
// # Errors
//
// Any non-2xx response becomes an *Error whose Kind classifies it:
//
//   - unauthorized (401), forbidden (403), not_found (404)
//   - validation (400, 409, 422) carrying the server-reported message
//   - server (5xx)
//   - unreachable when no response was received at all
//
// Errors match the sentinel values with errors.Is, e.g. errors.Is(err, api.ErrNotFound).
// Nothing is retried.
//
// # Usage
//
//	client, err := api.NewClient(cfg.API, logg, middleware.BearerToken(sess), middleware.RayID())
//	var profile models.User
//	err = client.Get(ctx, "User/Profile", &profile)
package api
