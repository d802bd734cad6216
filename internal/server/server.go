// Package server assembles the HTTP surface: Connect services behind the auth
// interceptors, plus health and metrics endpoints, on a chi router.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/giftdraw/internal/auth"
	"github.com/mmynk/giftdraw/internal/metrics"
	"github.com/mmynk/giftdraw/internal/middleware"
	"github.com/mmynk/giftdraw/internal/pairing"
	"github.com/mmynk/giftdraw/internal/service"
	"github.com/mmynk/giftdraw/internal/storage"
	"github.com/mmynk/giftdraw/pkg/api/apiconnect"
)

// Deps are the collaborators the HTTP surface is built from.
type Deps struct {
	Store         storage.Store
	Engine        *pairing.Engine
	Authenticator auth.Authenticator
	JWT           *auth.JWTManager
	Metrics       *metrics.Collector
	CORSOrigins   []string
	Logger        *slog.Logger
}

// NewRouter returns the root handler. Every domain service requires an admin
// token; AuthService accepts anonymous calls so clients can sign in.
func NewRouter(d Deps) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(requestLogger)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Authorization",
			"Content-Type",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
		},
		ExposedHeaders: []string{
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			middleware.ErrorReasonHeader,
		},
		MaxAge: 300,
	}))

	router.Get("/health", healthCheck)
	router.Handle("/metrics", d.Metrics.Handler())

	admin := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(d.Metrics),
		middleware.RequireAdmin(d.JWT),
	)
	public := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		middleware.MetricsInterceptor(d.Metrics),
		middleware.OptionalAuth(d.JWT),
	)

	router.Mount(apiconnect.NewHouseholdServiceHandler(service.NewHouseholdService(d.Store), admin))
	router.Mount(apiconnect.NewParticipantServiceHandler(service.NewParticipantService(d.Store), admin))
	router.Mount(apiconnect.NewDrawingServiceHandler(service.NewDrawingService(d.Store, d.Engine, d.Metrics), admin))
	router.Mount(apiconnect.NewAuthServiceHandler(service.NewAuthService(d.Authenticator, d.Store, d.JWT, d.Logger), public))

	return router
}

// NewHTTPServer wraps handler with h2c so Connect and gRPC clients can use
// HTTP/2 without TLS.
func NewHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// requestLogger logs all incoming requests.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", chimiddleware.GetReqID(r.Context()),
			"remote_addr", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
