package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/danielhkuo/swab-vote/audit"
	"github.com/danielhkuo/swab-vote/auth"
	"github.com/danielhkuo/swab-vote/cliparse"
	"github.com/danielhkuo/swab-vote/db"
	"github.com/danielhkuo/swab-vote/election"
	"github.com/danielhkuo/swab-vote/members"
	"github.com/danielhkuo/swab-vote/metrics"
	"github.com/danielhkuo/swab-vote/middleware"
	"github.com/danielhkuo/swab-vote/router"
	"github.com/danielhkuo/swab-vote/voting"
)

func main() {
	var err error

	// A missing .env is fine; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	signingKey := []byte(cfg.SigningKey)
	if len(signingKey) == 0 {
		signingKey, err = auth.GenerateSigningKey(32)
		if err != nil {
			slog.Error("signing key generation failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("no SIGNING_KEY set, using a per-process key")
	}

	// Audit database is optional
	var auditLog audit.Log = audit.Nop{}
	if cfg.DatabaseURL != "" {
		var dbConn *sql.DB
		dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()

		if err := db.CreateSchema(dbConn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Audit database ready", "type", cfg.DatabaseType)
		auditLog = audit.NewSQLRecorder(dbConn, slog.Default())
	} else {
		slog.Info("No DATABASE_URL set, audit log disabled")
	}

	authority := auth.NewAuthority(signingKey, cfg.TokenLifespan, auth.WithLogger(slog.Default()))
	store := election.NewStore(cfg.AdminPassword)
	verifier := members.NewClient(cfg.MembersURL, cfg.LookupTimeout, slog.Default())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)
	m.WatchState(authority.RevokedCount, store.BallotCount)

	svc := voting.NewService(authority, store, verifier,
		voting.WithAudit(auditLog),
		voting.WithMetrics(m),
		voting.WithLogger(slog.Default()),
	)

	// Create router
	mux := router.NewRouter(svc, m, registry)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(cfg.AllowedOrigin)(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "token_lifespan", cfg.TokenLifespan, "members_url", cfg.MembersURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
