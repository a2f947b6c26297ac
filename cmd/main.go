package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"service_directory/internal/config"
	"service_directory/internal/handlers"
	"service_directory/internal/logger"
	"service_directory/internal/metrics"
	"service_directory/internal/repository"
	"service_directory/internal/repository/db"
	"service_directory/internal/server"
	"service_directory/internal/service"
)

// @title        Service Directory API
// @version      1.0
// @description  Browse the home-services catalog: search, subcategory and feature filters, category landing pages.
// @BasePath     /
func main() {
	// load config.yml
	cfg, err := config.Load("configs")
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Init(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = log.Sync() }()

	// open catalog source
	source, closeSource, err := repository.OpenCatalog(cfg.Catalog.Source, cfg.Catalog.Path, db.OpenReadOnly)
	if err != nil {
		// the server still starts and reports the catalog as unavailable
		log.Errorw("catalog_source_open_failed", "err", err, "path", cfg.Catalog.Path)
		source = failedSource{err: err}
	}
	defer func() {
		if cerr := closeSource(); cerr != nil {
			log.Errorw("catalog_source_close_failed", "err", cerr)
		}
	}()

	// wire dependencies
	m := metrics.New()
	repos := repository.NewRepository(source, repository.NewYAMLLabels(cfg.Catalog.Labels))
	services := service.NewService(context.Background(), repos, m, log)

	opts := []handlers.Option{
		handlers.WithMetrics(m),
		handlers.WithAllowedOrigins(cfg.CORS.AllowedOrigins),
	}
	if cfg.Rate.Enabled {
		opts = append(opts, handlers.WithRateLimit(cfg.Rate.RPS, cfg.Rate.Burst))
	}
	apiHandler := handlers.NewHandler(services, log, opts...)

	// start HTTP server
	srv := &server.Server{
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, cfg, log)
}

// failedSource stands in for a catalog source that could not be opened.
type failedSource struct{ err error }

func (f failedSource) Load(context.Context) (repository.Snapshot, error) {
	return repository.Snapshot{}, f.err
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http_server_starting", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
