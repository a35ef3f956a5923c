package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"masterboxer.com/sns-api/config"
	"masterboxer.com/sns-api/database"
	"masterboxer.com/sns-api/services"
	"masterboxer.com/sns-api/storage"
)

func main() {
	cfg := config.Load()
	cfg.ConfigureLogging()

	db, dialect, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatal("ReconcileLikes: DB connection failed: ", err)
	}
	defer db.Close()

	// Never reset here; the job exists to repair existing data.
	ctx := context.Background()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatal("ReconcileLikes: schema check failed: ", err)
	}

	log.Info("⏰ Running like reconciliation job")
	repaired, err := services.NewLikeService(storage.NewStore(db, dialect)).Reconcile(ctx)
	if err != nil {
		log.WithField("repaired", repaired).Fatal("ReconcileLikes: ", err)
	}
	log.WithField("repaired", repaired).Info("✅ Like reconciliation job finished")
}
