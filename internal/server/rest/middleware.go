package rest

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/whattowear/internal/common"
	"github.com/dmitrijs2005/whattowear/internal/logging"
	"github.com/dmitrijs2005/whattowear/internal/server/apperr"
	"github.com/dmitrijs2005/whattowear/internal/server/auth"
	"github.com/dmitrijs2005/whattowear/internal/server/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	requestInfoKey
)

const maxRequestIDLen = 128

// requestInfo is filled in as the request moves through the chain and read
// by the request log once it is done.
type requestInfo struct {
	route string
}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(requestInfoKey).(*requestInfo)
	return info
}

// UserIDFromContext returns the identity bound by requireIdentity.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// requireIdentity rejects requests without a valid bearer token and binds
// the token's subject to the request context. It never touches storage.
func requireIdentity(secret []byte, next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		header := r.Header.Get(common.AuthorizationHeader)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			return apperr.Unauthorized("")
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, common.BearerPrefix))
		if token == "" {
			return apperr.Unauthorized("")
		}

		userID, err := auth.GetUserIDFromToken(token, secret)
		if err != nil {
			return apperr.Wrap(apperr.KindUnauthorized, "", err)
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = logging.ContextWith(ctx, "user_id", userID)
		return next(w, r.WithContext(ctx))
	}
}

var paramMessages = map[string]string{
	"itemId": "Invalid item ID",
	"userId": "Invalid user ID",
}

// validateParams fails fast when a declared path variable is not an id.
func validateParams(params []string, next handlerFunc) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		vars := mux.Vars(r)
		for _, p := range params {
			if !models.IsValidID(vars[p]) {
				msg, ok := paramMessages[p]
				if !ok {
					msg = "Invalid Parameters"
				}
				return apperr.BadRequest(msg)
			}
		}
		return next(w, r)
	}
}

// statusRecorder remembers the status written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wrote {
		r.status = code
		r.wrote = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.wrote = true
	return r.ResponseWriter.Write(b)
}

// withRequestLog assigns a request id, recovers panics and writes one log
// line per request.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(common.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeader, id)

		info := &requestInfo{}
		ctx := context.WithValue(r.Context(), requestInfoKey, info)
		ctx = logging.ContextWith(ctx, "request_id", id)
		r = r.WithContext(ctx)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if p := recover(); p != nil {
				if !rec.wrote {
					s.writeError(rec, r, apperr.Internal(fmt.Errorf("panic: %v", p)))
				} else {
					s.logger.Error(ctx, "panic after response started", "panic", fmt.Sprint(p))
				}
			}
			s.logger.Info(ctx, "request",
				"route", info.route,
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
			)
		}()

		next.ServeHTTP(rec, r)
	})
}

// withCORS answers preflight requests and adds CORS headers. origins holds
// the allowed origins; "*" allows any.
func withCORS(origins []string, next http.Handler) http.Handler {
	anyOrigin := slices.Contains(origins, "*")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			switch {
			case anyOrigin:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case slices.Contains(origins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Degraded")

		// Preflight response
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
