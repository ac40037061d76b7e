package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		realIP     string
		remoteAddr string
		want       string
	}{
		{"forwarded first hop", "203.0.113.7, 10.0.0.1", "", "10.0.0.2:5000", "203.0.113.7"},
		{"invalid forwarded falls through", "garbage", "198.51.100.3", "10.0.0.2:5000", "198.51.100.3"},
		{"real ip", "", "198.51.100.3", "10.0.0.2:5000", "198.51.100.3"},
		{"remote addr", "", "", "192.0.2.10:4321", "192.0.2.10"},
		{"ipv6 remote addr", "", "", "[::1]:4321", "::1"},
		{"unparseable", "", "", "nowhere", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, ExtractClientIP(req))
		})
	}
}

func TestIsPrivateIP(t *testing.T) {
	assert.True(t, IsPrivateIP("10.1.2.3"))
	assert.True(t, IsPrivateIP("192.168.0.9"))
	assert.True(t, IsPrivateIP("127.0.0.1"))
	assert.True(t, IsPrivateIP("::1"))
	assert.False(t, IsPrivateIP("8.8.8.8"))
	assert.False(t, IsPrivateIP("not-an-ip"))
}
