package handlers

import (
	"database/sql"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"masterboxer.com/sns-api/database"
)

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Health(db *sql.DB, timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := database.Ping(db, timeout); err != nil {
			log.WithError(err).Warn("Health check failed")
			writeJSON(w, http.StatusServiceUnavailable, healthResponse{
				Status:  "unhealthy",
				Message: "Database is unreachable",
			})
			return
		}
		writeJSON(w, http.StatusOK, healthResponse{
			Status:  "healthy",
			Message: "API is running successfully",
		})
	}
}
