package device

import "strings"

// Info adalah metadata deskriptif perangkat yang ditempel ke record absensi.
// Hanya untuk tampilan/log, bukan kontrol keamanan.
type Info struct {
	Platform string `json:"platform"`
	Browser  string `json:"browser"`
	Raw      string `json:"raw,omitempty"`
}

// Classify menebak platform & browser dari string User-Agent.
func Classify(userAgent string) Info {
	ua := strings.ToLower(userAgent)

	platform := "Unknown"
	switch {
	case strings.Contains(ua, "android"):
		platform = "Android"
	case strings.Contains(ua, "iphone"), strings.Contains(ua, "ipad"), strings.Contains(ua, "ipod"):
		platform = "iOS"
	case strings.Contains(ua, "windows"):
		platform = "Windows"
	case strings.Contains(ua, "mac os x"), strings.Contains(ua, "macintosh"):
		platform = "macOS"
	case strings.Contains(ua, "linux"):
		platform = "Linux"
	}

	browser := "Unknown"
	switch {
	// urutan penting: Edge/Opera/Samsung memuat kata "chrome" juga
	case strings.Contains(ua, "edg/"), strings.Contains(ua, "edge/"):
		browser = "Edge"
	case strings.Contains(ua, "opr/"), strings.Contains(ua, "opera"):
		browser = "Opera"
	case strings.Contains(ua, "samsungbrowser"):
		browser = "Samsung Internet"
	case strings.Contains(ua, "firefox/"):
		browser = "Firefox"
	case strings.Contains(ua, "chrome/"), strings.Contains(ua, "crios/"):
		browser = "Chrome"
	case strings.Contains(ua, "safari/"):
		browser = "Safari"
	}

	return Info{Platform: platform, Browser: browser, Raw: userAgent}
}

// Map bentuk generik untuk disimpan sebagai JSONB.
func (i Info) Map() map[string]interface{} {
	return map[string]interface{}{
		"platform": i.Platform,
		"browser":  i.Browser,
		"raw":      i.Raw,
	}
}
