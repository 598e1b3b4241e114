// Package moddata reads mob spawn data from the backend and exports it as
// the zip archive the mod loads.
//
// An export can be written to a local file (mob_data.zip by default) or
// uploaded to the configured object storage bucket.
package moddata
