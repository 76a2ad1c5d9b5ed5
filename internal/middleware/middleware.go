package middleware

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	handlers "microblog/internal/handler"
	"microblog/internal/models"
	"microblog/internal/service"
)

const HeaderRequestID = "X-Request-ID"

type Middleware func(http.Handler) http.Handler

// UserHandler serves a request on behalf of a user authenticated for this
// very request.
type UserHandler func(w http.ResponseWriter, r *http.Request, user *models.User)

// RequireUser authenticates the Authorization header and hands the resolved
// user to next. Requests without a valid bearer token get 401.
func RequireUser(auth service.AuthService) func(UserHandler) http.Handler {
	return func(next UserHandler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				handlers.WriteError(w, "Authorization required", http.StatusUnauthorized)
				return
			}

			user, err := auth.Authenticate(r.Context(), authHeader)
			if err != nil {
				if errors.Is(err, service.ErrUnauthorized) {
					handlers.WriteError(w, "Invalid or expired token", http.StatusUnauthorized)
					return
				}
				log.Printf("authenticate %s %s: %v", r.Method, r.URL.Path, err)
				handlers.WriteError(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			next(w, r, user)
		})
	}
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs one line per request and tags it with a request id,
// reusing the client's X-Request-ID when present.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		log.Printf("[%s] %s %s %d %s", requestID, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

type headerTracker struct {
	http.ResponseWriter
	wroteHeader bool
}

func (h *headerTracker) WriteHeader(code int) {
	h.wroteHeader = true
	h.ResponseWriter.WriteHeader(code)
}

func (h *headerTracker) Write(b []byte) (int, error) {
	h.wroteHeader = true
	return h.ResponseWriter.Write(b)
}

// RecoveryMiddleware turns a panic into a 500 response unless the handler
// already started the response. http.ErrAbortHandler is re-raised for the
// server to handle.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := &headerTracker{ResponseWriter: w}
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			log.Printf("[PANIC] %s %s: %v", r.Method, r.URL.Path, rec)
			if !tw.wroteHeader {
				handlers.WriteError(w, "Internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(tw, r)
	})
}

// Chain wraps h so that the first middleware listed is the outermost.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
