package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/yusufkecer/vitalia-backend/internal/config"
	"github.com/yusufkecer/vitalia-backend/internal/db"
	"github.com/yusufkecer/vitalia-backend/internal/logging"
	"github.com/yusufkecer/vitalia-backend/internal/server"
)

func main() {
	cfg := config.Load()
	log := logging.New(os.Stderr, cfg.SlogLevel())

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error(context.Background(), "server stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logging.Logger) error {
	database, err := db.Init(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer database.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.NewRouter(cfg, database, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info(ctx, "server starting", "addr", cfg.Addr, "db_driver", cfg.DBDriver, "db", cfg.StoreLocation())
	return srv.ListenAndServe()
}
