// Package translation manages the localization strings stored by the backend.
//
// # Import
//
// A localization file written in the mod's HJSON-like format is parsed into
// fully qualified keys (see core/hjson), reconciled against the keys the
// backend already stores for the language, and the missing ones are created.
// Existing entries are never overwritten. Import only creates entries when
// the request is confirmed and not a dry run.
//
// # Coverage
//
// Check reports English keys missing from a language, keys that no longer
// exist in English, and translations whose {0}-style placeholders differ
// from the English original.
//
// # Snapshots
//
// A Repository keeps a local copy of a language's keys in the configured
// database so imports can be planned offline.
package translation
