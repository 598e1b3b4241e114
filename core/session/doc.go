// Package session keeps the bearer token of the logged-in user between runs.
//
// The token is stored in a single file (the CLI counterpart of the browser's local
// storage). An empty or missing file means nobody is logged in.
//
// Claims decodes the token payload without verifying the signature: the client only
// needs the subject and expiry for display and to avoid sending a token it knows is
// stale. Verification is the backend's job.
//
// # Usage
//
//	sess := session.NewStore(cfg.Session)
//	if err := sess.SetToken(resp.Token); err != nil { ... }
//	client, _ := api.NewClient(cfg.API, logg, middleware.BearerToken(sess))
package session
