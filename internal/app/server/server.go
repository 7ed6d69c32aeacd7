package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leavebot/internal/conversation"
	"leavebot/internal/domain/ledger"
	"leavebot/internal/interpreter"
	"leavebot/internal/platform/config"
	"leavebot/internal/platform/metrics"
	chathandler "leavebot/internal/transport/http/handlers/chat"
	"leavebot/internal/transport/http/middleware"
)

// App wires the session, interpreter and transport together. State is
// process-lifetime only; there is nothing to connect to or migrate.
type App struct {
	Config  config.Config
	Session *conversation.Session
	Metrics *metrics.Collector
	Router  http.Handler

	rulesWatcher *interpreter.RulesWatcher
}

func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rules, err := interpreter.LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	interp := interpreter.New(interpreter.WithRules(rules))

	reseed := func() *ledger.Ledger {
		return ledger.New(ledger.SeedProfile(ledger.SeedData{
			EmployeeID:   cfg.SeedEmployeeID,
			EmployeeName: cfg.SeedEmployeeName,
			Casual:       cfg.SeedCasual,
			Sick:         cfg.SeedSick,
			DemoHistory:  cfg.SeedDemoHistory,
		}))
	}
	session := conversation.NewSession(reseed(), interp)

	app := &App{
		Config:  cfg,
		Session: session,
		Metrics: metrics.New(),
	}

	if cfg.RulesWatch {
		watcher, err := interpreter.WatchRules(interp, cfg.RulesPath)
		if err != nil {
			return nil, err
		}
		app.rulesWatcher = watcher
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(app.Metrics))
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	if cfg.MetricsEnabled {
		router.Get("/metricsz", app.handleMetrics)
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitPerMinute, cfg.RateLimitWindow()))
		chathandler.NewHandler(session, app.Metrics, reseed).RegisterRoutes(r)
	})

	app.Router = router
	return app, nil
}

func (a *App) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(a.Metrics.Snapshot())
}

// Close stops background watchers. Safe to call when none are running.
func (a *App) Close() error {
	if a.rulesWatcher != nil {
		return a.rulesWatcher.Close()
	}
	return nil
}
