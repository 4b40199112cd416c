// Package tokenfilter provides HTTP middleware for unverified token identities.
package tokenfilter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/shashiadi/auth-tokens/internal/telemetry/logger"
	"github.com/shashiadi/auth-tokens/internal/telemetry/metric"
	"github.com/shashiadi/auth-tokens/pkg/bearertoken"
	"github.com/shashiadi/auth-tokens/pkg/unverified"
)

// DefaultHeaderName is the request header the filter reads tokens from.
const DefaultHeaderName = "Authorization"

// Config holds configuration for the token filter middleware.
type Config struct {
	// HeaderName is the request header carrying the bearer token.
	HeaderName string `env:"AUTHTOKENS_HEADER" envDefault:"Authorization"`

	// LogEvery is the minimum interval between malformed-token warnings.
	// Zero disables throttling.
	LogEvery time.Duration `env:"AUTHTOKENS_LOG_EVERY" envDefault:"1s"`

	// LogBurst is how many warnings may exceed the LogEvery interval.
	// Values below 1 are treated as 1.
	LogBurst int `env:"AUTHTOKENS_LOG_BURST" envDefault:"5"`

	// MetricsNamespace overrides the metric namespace prefix.
	MetricsNamespace string `env:"AUTHTOKENS_METRICS_NAMESPACE"`

	// Logger receives filter warnings and is the base for request-scoped
	// loggers. Nil uses the process default logger.
	Logger *slog.Logger

	// Registerer receives the filter's metric collectors.
	// Nil disables metric collection.
	Registerer prometheus.Registerer
}

// DefaultConfig returns the default filter configuration.
func DefaultConfig() Config {
	return Config{
		HeaderName: DefaultHeaderName,
		LogEvery:   time.Second,
		LogBurst:   5,
	}
}

// ConfigFromEnv loads filter configuration from AUTHTOKENS_* environment
// variables, applying the same defaults as DefaultConfig.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// New creates the token filter middleware.
//
// For each request carrying the configured header, the filter decodes the
// bearer token without verifying its signature and attaches the resulting
// identity and an enriched logger to the request context. Requests without
// the header, and requests whose token fails to decode, pass through
// unchanged. The filter never rejects a request.
func New(cfg Config) Middleware {
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = DefaultHeaderName
	}

	var metrics *metric.Registry
	if cfg.Registerer != nil {
		metrics = metric.NewRegistryWith(cfg.Registerer, cfg.MetricsNamespace)
	}

	// Token bucket for failure warnings. Suppressed warnings are counted
	// so operators can tell the log is incomplete.
	logBurst := cfg.LogBurst
	if logBurst < 1 {
		logBurst = 1
	}
	limiter := rate.NewLimiter(rate.Every(cfg.LogEvery), logBurst)
	warn := func(msg string, attrs ...any) {
		if !limiter.Allow() {
			metrics.IncThrottledLog()
			return
		}
		log.Warn(msg, attrs...)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(headerName)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			// Parse the Authorization header
			header, err := bearertoken.ParseAuthHeader(raw)
			if err != nil {
				metrics.RecordDecode(metric.ResultBadHeader)
				warn("ignoring malformed authorization header",
					requestAttrs(r,
						"error", err,
					)...)
				next.ServeHTTP(w, r)
				return
			}

			// Decode the identity without verifying the signature
			token := header.Token()
			identity, err := unverified.Decode(token)
			if err != nil {
				kind := unverified.KindOf(err)
				metrics.RecordDecode(string(kind))
				warn("ignoring malformed bearer token",
					requestAttrs(r,
						"fingerprint", token.Fingerprint(),
						"kind", string(kind),
						"error", err,
					)...)
				next.ServeHTTP(w, r)
				return
			}
			metrics.RecordDecode(metric.ResultOK)

			// Attach the identity and an enriched logger to the context
			attrs := []any{"unverified_user_id", identity.UserID()}
			if sessionID, ok := identity.SessionID(); ok {
				attrs = append(attrs, "unverified_session_id", sessionID)
			}
			if requestID := GetRequestIDFromContext(r.Context()); requestID != "" {
				attrs = append(attrs, "request_id", requestID)
			}

			ctx := context.WithValue(r.Context(), ContextKeyIdentity, identity)
			ctx = context.WithValue(ctx, ContextKeyLogger, log.With(attrs...))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requestAttrs prepends request-scoped log attributes to attrs.
func requestAttrs(r *http.Request, attrs ...any) []any {
	base := []any{
		"client_ip", getClientIP(r),
		"path", r.URL.Path,
	}
	if requestID := GetRequestIDFromContext(r.Context()); requestID != "" {
		base = append(base, "request_id", requestID)
	}
	return append(base, attrs...)
}
