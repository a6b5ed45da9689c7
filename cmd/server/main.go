package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/tabscan/tabscan/internal/auth"
	"github.com/tabscan/tabscan/internal/server"
	"github.com/tabscan/tabscan/internal/service"
	"github.com/tabscan/tabscan/internal/storage/sqlite"
	"github.com/tabscan/tabscan/pkg/logging"
)

func main() {
	fs := ff.NewFlagSet("tabscan")
	var (
		port      = fs.IntLong("port", 8080, "HTTP server port")
		dbPath    = fs.StringLong("db", "./data/tabscan.db", "Database file path")
		jwtSecret = fs.StringLong("jwt-secret", "", "JWT signing secret (required)")
		tokenTTL  = fs.DurationLong("token-ttl", 24*time.Hour, "JWT token lifetime")
		logLevel  = fs.StringLong("log-level", "info", "Log level: debug, info, warn, error")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("TABSCAN"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logging.SetupWithLevel(logging.ParseLevel(*logLevel))

	if *jwtSecret == "" {
		slog.Error("JWT secret is required. Set --jwt-secret flag or TABSCAN_JWT_SECRET environment variable")
		os.Exit(1)
	}

	store, err := sqlite.New(*dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", *dbPath)

	jwtManager := auth.NewJWTManager(*jwtSecret, *tokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := server.New(
		service.NewScanService(store),
		service.NewTabService(store),
		service.NewAuthService(authenticator, jwtManager),
		jwtManager,
	)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", srv.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	// h2c allows HTTP/2 without TLS for clients that want multiplexing.
	h2cHandler := h2c.NewHandler(mux, &http2.Server{})

	addr := fmt.Sprintf(":%d", *port)
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
