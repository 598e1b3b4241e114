// Package player wraps the backend's Player endpoints: the public
// leaderboard, single character lookup and character deletion.
package player
