package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"main/internal/config"
	"main/internal/handlers"
	"main/internal/middleware"
	"main/internal/transport"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	ipLimiter := middleware.NewIPRateLimit(cfg.ConnectsPerMinute, cfg.ConnectBurst)
	limits := middleware.NewLimits(cfg.MaxMessageSize, cfg.MaxColors, cfg.MessagesPerSecond, cfg.BurstSize)

	mux := http.NewServeMux()
	handlers.NewRouter(limits).Register(mux)
	mux.Handle("/ws", transport.NewStreamHandler(cfg.AllowedDomains, ipLimiter, limits))

	go cleanupLimiters(ctx, ipLimiter)

	log.Printf("Palette server started on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

// cleanupLimiters: routine to drop idle per-IP limiters
func cleanupLimiters(ctx context.Context, limiter *middleware.IPRateLimit) {
	ticker := time.NewTicker(15 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Cleanup()
		}
	}
}
