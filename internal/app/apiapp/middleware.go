package apiapp

import (
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Hisham6667/summer-sports-server/internal/infra/metrics"
	authsvc "github.com/Hisham6667/summer-sports-server/internal/services/auth"
	httperrors "github.com/Hisham6667/summer-sports-server/internal/transport/http/errors"
)

func ApplyMiddlewares(r chiRouter, log *zap.Logger, collector *metrics.Collector) {
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(requestLogger(log))
	if collector != nil {
		r.Use(requestMetrics(collector))
	}
}

// AuthMiddleware is the access guard for protected routes. The header is
// split on whitespace and the second field is taken as the credential; the
// scheme word itself is not checked, so any first word passes. A header
// with fewer than two fields leaves an empty credential, which fails
// verification.
func AuthMiddleware(manager *authsvc.TokenManager, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				httperrors.Write(w, http.StatusInternalServerError, httperrors.New("token verifier is unavailable"))
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				httperrors.Write(w, http.StatusUnauthorized, httperrors.New("unauthorized token"))
				return
			}

			var credential string
			if parts := strings.Fields(header); len(parts) >= 2 {
				credential = parts[1]
			}

			claims, err := manager.Parse(credential)
			if err != nil {
				if log != nil {
					log.Debug("access guard rejected token", zap.Error(err))
				}
				httperrors.Write(w, http.StatusUnauthorized, httperrors.New("unauthorized user"))
				return
			}

			ctx := authsvc.WithIdentity(r.Context(), authsvc.Identity{
				Email: claims.Email,
				Name:  claims.Name,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			if log != nil {
				log.Info("http_request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Duration("duration", time.Since(start)),
				)
			}
		})
	}
}

func requestMetrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			collector.RecordRequest(r.Method, r.URL.Path, ww.Status(), time.Since(start))
		})
	}
}

type chiRouter interface {
	Use(middlewares ...func(http.Handler) http.Handler)
}
