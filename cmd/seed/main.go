package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/Dosada05/league-backend/config"
	"github.com/Dosada05/league-backend/db"
	"github.com/Dosada05/league-backend/repositories"
	"github.com/Dosada05/league-backend/seed"
	_ "github.com/lib/pq"
)

// Загрузчик демо-данных. Деструктивный, поэтому это отдельная команда,
// а не эндпоинт сервера.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbConn.Close()

	loader := seed.NewLoader(
		repositories.NewPostgresPlayerRepository(dbConn),
		repositories.NewPostgresTeamRepository(dbConn),
		repositories.NewPostgresAnnouncementRepository(dbConn),
		repositories.NewPostgresMatchRepository(dbConn),
		repositories.NewPostgresTournamentRepository(dbConn),
		logger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := loader.Load(ctx); err != nil {
		logger.Error("failed to load demo data", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("done")
}
