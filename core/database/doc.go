// Package database opens the local database that holds translation snapshots.
//
// sqlite is the default so the CLI works without any server; mysql is
// available for shared team snapshots.
package database
