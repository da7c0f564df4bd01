// Command mongoprobe connects to MongoDB using the MONGODB_* environment and
// serves liveness and readiness probes for it.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/mongokit/pkg/config"
	"github.com/dmitrymomot/mongokit/pkg/httpserver"
	"github.com/dmitrymomot/mongokit/pkg/logger"
	"github.com/dmitrymomot/mongokit/pkg/mongo"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"APP_NAME" envDefault:"mongoprobe"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextValue("request_id", middleware.RequestIDKey),
	)
	logger.SetAsDefault(log)

	if err := run(context.Background(), log); err != nil {
		log.Error("mongoprobe stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	provider, err := mongo.NewProviderFromEnv(mongo.WithLogger(log))
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Close(context.Background()); err != nil {
			log.Error("failed to close mongo connection", logger.Error(err))
		}
	}()

	db, err := provider.Obtain(ctx)
	if err != nil {
		return err
	}
	log.Info("database handle ready", logger.Database(db.Name()))

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	return httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log)).
		Run(ctx, router(log, provider))
}

func router(log *slog.Logger, provider *mongo.Provider) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/livez", httpserver.HealthCheckHandler(log))
	r.Get("/readyz", httpserver.HealthCheckHandler(log, mongo.Healthcheck(provider)))
	return r
}
