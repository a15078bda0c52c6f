package middleware

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/asavelyev/campus-canteen/internal/api"
	"github.com/asavelyev/campus-canteen/internal/storage"
)

type gzipResponseWriter struct {
	http.ResponseWriter
	Writer io.Writer
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func GzipHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Encoding") == "gzip" {
			gzr, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(rw, "Failed to create gzip reader", http.StatusBadRequest)
				return
			}
			defer gzr.Close()
			r.Body = io.NopCloser(gzr)
		}

		if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			rw.Header().Set("Content-Encoding", "gzip")
			gzw := gzip.NewWriter(rw)
			defer gzw.Close()

			gzrw := gzipResponseWriter{Writer: gzw, ResponseWriter: rw}
			next.ServeHTTP(gzrw, r)
		} else {
			next.ServeHTTP(rw, r)
		}
	})
}

type ctxKeyUserID struct{}

func unauthorized(w http.ResponseWriter) {
	api.WriteError(w, http.StatusUnauthorized, "Authentication required", "UNAUTHORIZED")
}

// SessionAuthenticator resolves the bearer token against the session store.
// Every failure mode — missing or malformed header, unknown token, expired
// session, store fault — collapses into the same 401; authentication fails
// closed and never surfaces a store error to the caller.
func SessionAuthenticator(sessions storage.SessionRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				unauthorized(w)
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			sess, err := sessions.FindSessionByToken(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}
			if sess.Expired(time.Now()) {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyUserID{}, sess.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserIDFromContext(ctx context.Context) string {
	return ctx.Value(ctxKeyUserID{}).(string)
}

func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxKeyUserID{}, userID)
}
