// Package config loads the application configuration.
//
// Values come from defaults declared in `default:"..."` struct tags, then an
// optional .env file, then the process environment. Nested keys map to
// upper-case variables joined by underscores, so api.base_url is read from
// API_BASE_URL and database.driver from DATABASE_DRIVER.
package config
