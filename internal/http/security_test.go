package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "direct connection",
			remoteAddr: "203.0.113.5:4321",
			want:       "203.0.113.5",
		},
		{
			name:       "forwarded header from trusted proxy",
			remoteAddr: "10.0.0.2:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			want:       "203.0.113.5",
		},
		{
			name:       "forwarded header chain takes first hop",
			remoteAddr: "192.168.1.1:80",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"},
			want:       "203.0.113.5",
		},
		{
			name:       "forwarded header from untrusted source is ignored",
			remoteAddr: "203.0.113.77:80",
			headers:    map[string]string{"X-Forwarded-For": "1.2.3.4"},
			want:       "203.0.113.77",
		},
		{
			name:       "real ip fallback",
			remoteAddr: "127.0.0.1:80",
			headers:    map[string]string{"X-Real-IP": "203.0.113.5"},
			want:       "203.0.113.5",
		},
		{
			name:       "garbage forwarded value falls back to remote addr",
			remoteAddr: "10.0.0.2:80",
			headers:    map[string]string{"X-Forwarded-For": "not-an-ip"},
			want:       "10.0.0.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := extractClientIP(r); got != tt.want {
				t.Errorf("extractClientIP() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDetectSuspiciousRequest(t *testing.T) {
	tests := []struct {
		name   string
		target string
		method string
		agent  string
		want   bool
	}{
		{name: "normal page load", target: "/", method: http.MethodGet, want: false},
		{name: "filter query", target: "/ui/guests?sector=Amigos&payment=paid", method: http.MethodGet, want: false},
		{name: "curl is fine", target: "/api/summary", method: http.MethodGet, agent: "curl/8.0", want: false},
		{name: "path traversal", target: "/../../etc/passwd", method: http.MethodGet, want: true},
		{name: "wordpress probe", target: "/wp-admin/setup.php", method: http.MethodGet, want: true},
		{name: "probe in query", target: "/api/guests?file=.env", method: http.MethodGet, want: true},
		{name: "scanner agent", target: "/", method: http.MethodGet, agent: "sqlmap/1.7", want: true},
		{name: "trace method", target: "/", method: "TRACE", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.agent != "" {
				r.Header.Set("User-Agent", tt.agent)
			}
			m := &securityMetrics{}
			if got := detectSuspiciousRequest(r, m); got != tt.want {
				t.Errorf("detectSuspiciousRequest(%s) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestRateLimiterWindow(t *testing.T) {
	rl := newRateLimiter()
	defer rl.stop()
	m := &securityMetrics{}

	for i := 0; i < rateLimitRequests; i++ {
		if !rl.allow("198.51.100.1", m) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("198.51.100.1", m) {
		t.Error("request over the budget should be denied")
	}
	// Other clients have their own budget.
	if !rl.allow("198.51.100.2", m) {
		t.Error("fresh client should be allowed")
	}
}
