// Package utils holds small helpers shared by the feature services:
// value formatting and ordered query strings for backend paths.
package utils
