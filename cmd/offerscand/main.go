package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/federicolanz/offerscan"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (JSON)")
	addr := flag.String("addr", ":8080", "Listen address")
	flag.Parse()

	// Structured JSON logging.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	cfg := offerscan.DefaultConfig()
	if *configPath != "" {
		f, err := os.Open(*configPath)
		if err != nil {
			slog.Error("opening config", "error", err)
			os.Exit(1)
		}
		if err := json.NewDecoder(f).Decode(&cfg); err != nil {
			f.Close()
			slog.Error("parsing config", "error", err)
			os.Exit(1)
		}
		f.Close()
	}

	// Override from environment variables.
	if v := os.Getenv("OFFERSCAN_MAX_DOCUMENTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Error("parsing OFFERSCAN_MAX_DOCUMENTS", "value", v, "error", err)
			os.Exit(1)
		}
		cfg.MaxDocuments = n
	}
	if v := os.Getenv("OFFERSCAN_OUTLIER_RATIO"); v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			slog.Error("parsing OFFERSCAN_OUTLIER_RATIO", "value", v, "error", err)
			os.Exit(1)
		}
		cfg.OutlierRatio = r
	}

	apiKey := os.Getenv("OFFERSCAN_API_KEY")
	corsOrigins := os.Getenv("OFFERSCAN_CORS_ORIGINS")

	analyzer, err := offerscan.New(cfg)
	if err != nil {
		slog.Error("creating analyzer", "error", err)
		os.Exit(1)
	}

	h := newHandler(analyzer, cfg.MaxDocuments)
	mux := http.NewServeMux()

	mux.HandleFunc("POST /analyze", h.handleAnalyze)
	mux.HandleFunc("POST /export", h.handleExport)
	mux.HandleFunc("GET /health", h.handleHealth)

	// Middleware chain: recovery -> cors -> auth -> logging -> mux
	var handler http.Handler = mux
	handler = logMiddleware(handler)
	handler = authMiddleware(apiKey, handler)
	handler = corsMiddleware(corsOrigins, handler)
	handler = recoveryMiddleware(handler)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown on SIGTERM/SIGINT.
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", *addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}
