package api_test

import (
	"testing"
	"time"

	"pot-portal/core/api"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{"HTTP", "http://localhost:5000/api/", false},
		{"HTTPS", "https://api.pathofterraria.com", false},
		{"Missing scheme", "localhost:5000", true},
		{"FTP", "ftp://example.com", true},
		{"Empty", "", true},
		{"No host", "http://", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := api.Config{BaseURL: tt.baseURL}.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	assert.Equal(t, 30*time.Second, api.Config{}.Timeout())
	assert.Equal(t, 5*time.Second, api.Config{TimeoutSeconds: 5}.Timeout())
}
