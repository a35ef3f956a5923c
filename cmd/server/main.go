package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"masterboxer.com/sns-api/config"
	"masterboxer.com/sns-api/database"
	"masterboxer.com/sns-api/monitoring"
	"masterboxer.com/sns-api/routes"
	"masterboxer.com/sns-api/services"
	"masterboxer.com/sns-api/storage"
)

func main() {
	cfg := config.Load()
	cfg.ConfigureLogging()

	monitoring.Register(prometheus.DefaultRegisterer)

	db, dialect, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal("Server: DB connection failed: ", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	if cfg.ResetOnStart {
		log.Warn("DB_RESET_ON_START is set, dropping all posts, comments and likes")
		err = database.ResetSchema(ctx, db)
	} else {
		err = database.EnsureSchema(ctx, db)
	}
	cancel()
	if err != nil {
		log.Fatal("Server: schema setup failed: ", err)
	}

	svc := services.New(storage.NewStore(db, dialect))
	router := routes.NewRouter(db, svc, prometheus.DefaultGatherer, cfg.DBTimeout)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: routes.Wrap(router),
	}

	go func() {
		log.WithField("port", cfg.Port).Info("🚀 Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server: listen failed: ", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
