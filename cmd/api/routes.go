package main

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"libraryapp/internal/auth"
	"libraryapp/internal/book"
	"libraryapp/internal/config"
	"libraryapp/internal/httpx"
	"libraryapp/internal/platform/latency"
	"libraryapp/internal/store"
	"libraryapp/internal/theme"
	"libraryapp/internal/user"
)

// newRouter wires the services over st and returns the full handler chain.
// ctx bounds the rate limiter's janitor.
func newRouter(ctx context.Context, cfg config.Config, st *store.Store, logger *zap.Logger) http.Handler {
	delay := latency.Fixed(cfg.MutationDelay)

	bookService := book.NewService(st, delay)
	userService := user.NewService(st, delay)
	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, userService, st)
	themeService := theme.NewService(st)

	bookHandler := book.NewHTTPHandler(bookService)
	userHandler := user.NewHTTPHandler(userService)
	authHandler := auth.NewHTTPHandler(authService)
	themeHandler := theme.NewHTTPHandler(themeService)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			http.Error(w, "storage not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /v1/users/register", userHandler.RegisterUser)
	router.HandleFunc("POST /v1/users/login", authHandler.Login)

	router.HandleFunc("GET /v1/theme", themeHandler.Get)
	router.HandleFunc("PUT /v1/theme", themeHandler.Set)
	router.HandleFunc("POST /v1/theme/toggle", themeHandler.Toggle)

	protect := httpx.AuthMiddleware(cfg.JWTSecret, st)
	protected := func(pattern string, h http.HandlerFunc) {
		router.Handle(pattern, protect(h))
	}

	protected("GET /v1/me", userHandler.GetCurrentUser)
	protected("POST /v1/auth/logout", authHandler.Logout)

	protected("GET /v1/books", bookHandler.List)
	protected("POST /v1/books", bookHandler.Create)
	protected("GET /v1/books/{id}", bookHandler.Get)
	protected("PUT /v1/books/{id}", bookHandler.Update)
	protected("DELETE /v1/books/{id}", bookHandler.Delete)

	protected("GET /v1/categories", bookHandler.Categories)

	protected("GET /v1/carousel", bookHandler.Featured)
	protected("GET /v1/carousel/{id}", bookHandler.IsFeatured)
	protected("PUT /v1/carousel/{id}", bookHandler.AddToCarousel)
	protected("DELETE /v1/carousel/{id}", bookHandler.RemoveFromCarousel)

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.RecoveryMiddleware(logger),
		httpx.AccessLogMiddleware(logger),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	)
}
