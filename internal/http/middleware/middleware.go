package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rogerio-castellano/inventory-dashboard/internal/auth"
	"github.com/rogerio-castellano/inventory-dashboard/internal/http/ban"
	rl "github.com/rogerio-castellano/inventory-dashboard/internal/http/rate_limiter"
	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey = contextKey("request_id")
	authInfoKey  = contextKey("auth_info")
)

// authInfo is shared by pointer so the access log, which wraps the guard,
// sees the subject the guard authenticated.
type authInfo struct {
	subject string
}

const RequestIDHeader = "X-Request-ID"

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// RequestID reuses the caller's X-Request-ID or generates one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetRequestID(r *http.Request) string {
	if val, ok := r.Context().Value(requestIDKey).(string); ok {
		return val
	}
	return ""
}

// Logger writes one access log line per request.
func Logger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			r = r.WithContext(context.WithValue(r.Context(), authInfoKey, &authInfo{}))
			start := time.Now()
			next.ServeHTTP(ww, r)

			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", GetRequestID(r)),
				zap.String("remote", clientIP(r)),
				zap.String("subject", GetSubject(r)),
			)
		})
	}
}

// Recoverer turns panics into 500 responses.
func Recoverer(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Error("panic serving request",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.String("request_id", GetRequestID(r)),
						zap.ByteString("stack", debug.Stack()),
					)
					writeError(w, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequireToken rejects requests without a valid bearer token signed with secret.
func RequireToken(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "missing or invalid token")
				return
			}

			subject, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			if info, ok := r.Context().Value(authInfoKey).(*authInfo); ok {
				info.subject = subject
			} else {
				r = r.WithContext(context.WithValue(r.Context(), authInfoKey, &authInfo{subject: subject}))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireTokenForWrites applies RequireToken to every method except GET, HEAD and OPTIONS.
func RequireTokenForWrites(secret []byte) func(http.Handler) http.Handler {
	guard := RequireToken(secret)
	return func(next http.Handler) http.Handler {
		guarded := guard(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				guarded.ServeHTTP(w, r)
			}
		})
	}
}

// GetSubject returns the token subject of an authenticated request, or "".
func GetSubject(r *http.Request) string {
	if info, ok := r.Context().Value(authInfoKey).(*authInfo); ok {
		return info.subject
	}
	return ""
}

// RateLimit throttles each client IP. When bans is not nil, every throttled
// request adds a strike and banned clients are refused outright.
func RateLimit(limiter *rl.Limiter, bans *ban.Service, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if bans != nil {
				banned, err := bans.IsBanned(r.Context(), ip)
				if err != nil {
					log.Warn("ban lookup failed", zap.Error(err))
				}
				if banned {
					writeError(w, http.StatusForbidden, "client banned")
					return
				}
			}

			if !limiter.Allow(ip) {
				if bans != nil {
					banned, err := bans.AddStrike(r.Context(), ip, r.URL.Path)
					if err != nil {
						log.Warn("failed to record strike", zap.Error(err))
					}
					if banned {
						log.Warn("client banned", zap.String("ip", ip), zap.String("route", r.URL.Path))
					}
				}
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
