package device

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		platform string
		browser  string
	}{
		{
			name:     "chrome di android",
			ua:       "Mozilla/5.0 (Linux; Android 13; SM-A525F) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			platform: "Android",
			browser:  "Chrome",
		},
		{
			name:     "safari di iphone",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
			platform: "iOS",
			browser:  "Safari",
		},
		{
			name:     "edge di windows",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
			platform: "Windows",
			browser:  "Edge",
		},
		{
			name:     "firefox di linux",
			ua:       "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			platform: "Linux",
			browser:  "Firefox",
		},
		{
			name:     "string kosong",
			ua:       "",
			platform: "Unknown",
			browser:  "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.ua)
			require.Equal(t, tt.platform, got.Platform)
			require.Equal(t, tt.browser, got.Browser)
			require.Equal(t, tt.ua, got.Raw)
		})
	}
}
