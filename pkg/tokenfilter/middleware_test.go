// Package tokenfilter provides HTTP middleware for unverified token identities.
package tokenfilter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChain(t *testing.T) {
	var order []string

	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})

	h := Chain(handler, mark("first"), mark("second"), mark("third"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	// First middleware in the list should be outermost
	want := []string{"first", "second", "third", "handler"}
	if len(order) != len(want) {
		t.Fatalf("Chain() execution order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Chain() execution order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestRequestID_Generates(t *testing.T) {
	var ctxRequestID string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID = GetRequestIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	RequestID()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	headerID := rec.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Fatal("X-Request-ID response header not set")
	}
	if !strings.HasPrefix(headerID, "req-") {
		t.Errorf("generated request ID = %q, want req- prefix", headerID)
	}
	// Context and response header should carry the same ID
	if ctxRequestID != headerID {
		t.Errorf("context request ID = %q, header = %q", ctxRequestID, headerID)
	}
	if headerID != strings.ToLower(headerID) {
		t.Errorf("generated request ID %q should be lowercase", headerID)
	}
}

func TestRequestID_HonorsInbound(t *testing.T) {
	var ctxRequestID string

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxRequestID = GetRequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-upstream-42")
	rec := httptest.NewRecorder()
	RequestID()(handler).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-upstream-42" {
		t.Errorf("X-Request-ID = %q, want %q", got, "req-upstream-42")
	}
	if ctxRequestID != "req-upstream-42" {
		t.Errorf("context request ID = %q, want %q", ctxRequestID, "req-upstream-42")
	}
}

func TestRequestID_Unique(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		RequestID()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get("X-Request-ID")
		if seen[id] {
			t.Fatalf("duplicate request ID generated: %q", id)
		}
		seen[id] = true
	}
}

func TestGetIdentityFromContext_Absent(t *testing.T) {
	identity, ok := GetIdentityFromContext(context.Background())
	if ok {
		t.Errorf("GetIdentityFromContext() ok = true on empty context, identity = %v", identity)
	}
}

func TestGetLoggerFromContext_Fallback(t *testing.T) {
	// Should fall back to the default logger, never nil
	if l := GetLoggerFromContext(context.Background()); l == nil {
		t.Error("GetLoggerFromContext() = nil on empty context")
	}
}

func TestGetRequestIDFromContext_Absent(t *testing.T) {
	if got := GetRequestIDFromContext(context.Background()); got != "" {
		t.Errorf("GetRequestIDFromContext() = %q on empty context, want empty", got)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			name:       "remote addr with port",
			remoteAddr: "192.168.1.10:54321",
			want:       "192.168.1.10",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[::1]:8080",
			want:       "::1",
		},
		{
			name:       "x-forwarded-for single",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-forwarded-for chain uses first",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2, 10.0.0.3"},
			want:       "203.0.113.5",
		},
		{
			name:       "x-real-ip",
			remoteAddr: "10.0.0.1:1234",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			want:       "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			if got := getClientIP(req); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Benchmark tests
func BenchmarkGenerateRequestID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = generateRequestID()
	}
}
