package server

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/yusufkecer/vitalia-backend/internal/config"
	"github.com/yusufkecer/vitalia-backend/internal/handler"
	"github.com/yusufkecer/vitalia-backend/internal/logging"
	"github.com/yusufkecer/vitalia-backend/internal/middleware"
	"github.com/yusufkecer/vitalia-backend/internal/repository"
)

const maxBodyBytes = 1 << 20

func NewRouter(cfg *config.Config, database *sql.DB, log logging.Logger) *mux.Router {
	profileRepo := repository.NewProfileRepository(database)

	profileHandler := handler.NewProfileHandler(log)
	healthHandler := handler.NewHealthHandler(profileRepo, log)

	r := mux.NewRouter()

	// CORS → Security Headers → MaxBytesReader → request log
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))
	r.Use(middleware.RequestLog(log))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/perfil", profileHandler.Save).Methods(http.MethodPost, http.MethodOptions)

	return r
}
