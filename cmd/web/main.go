package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"

	"storefront/config"
	"storefront/internal/checkout"
	"storefront/internal/delivery/web"
	"storefront/internal/delivery/web/middleware"
	"storefront/internal/notice"
	"storefront/internal/session"
	"storefront/internal/storeapi"
	"storefront/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Commerce API client: one instance, base URL resolved once.
	api := storeapi.NewClient(cfg.StoreAPIURL, cfg.StoreAPITimeout)
	log.Info().Str("store_api", cfg.StoreAPIURL).Msg("Commerce API client configured")

	// Per-browser state
	sessions := session.NewManager(cfg.SessionSecret)
	drafts := checkout.NewStore(cfg.CheckoutStateTTL)
	notices := notice.NewCenter(cfg.NoticeAutoClose)

	// Pages
	renderer := web.NewRenderer(sessions, notices)
	productHandler := web.NewProductHandler(api, sessions, drafts, renderer)
	orderHandler := web.NewOrderHandler(api, sessions, drafts, notices, renderer)
	paymentHandler := web.NewPaymentHandler(api, sessions, drafts, notices, renderer)
	authHandler := web.NewAuthHandler(api, sessions, notices, renderer)
	noticeHandler := web.NewNoticeHandler(notices)

	mux := web.NewRouter(productHandler, orderHandler, paymentHandler, authHandler, noticeHandler)

	// Rate limiter with lifecycle management
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitPerSecond),
		cfg.RateLimitBurst,
		time.Minute,
		3*time.Minute,
	)

	// Request Logger, Rate Limit, and Gzip
	var handler http.Handler = mux
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart("storefront-web", cfg.Port)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop("storefront-web")
}
