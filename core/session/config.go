package session

import (
	"os"
	"path/filepath"
)

// Config holds configuration for session persistence.
type Config struct {
	// Path is the token file. Empty means DefaultPath().
	Path string `mapstructure:"path" default:""`
}

// DefaultPath returns ~/.pot-portal/jwt_token, or a path under the working directory
// when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".pot-portal", "jwt_token")
	}
	return filepath.Join(home, ".pot-portal", "jwt_token")
}
