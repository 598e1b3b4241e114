// Package user implements account operations: login, signup, password
// reset, profile management and the characters owned by a profile.
//
// The logged-in user is published through a state.Store so other parts of
// the application can react to login and logout. The session token itself
// lives in a TokenStore, normally the file-backed session.Store.
package user
