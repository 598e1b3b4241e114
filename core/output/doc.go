// Package output renders command results as an aligned table, JSON or YAML.
package output
