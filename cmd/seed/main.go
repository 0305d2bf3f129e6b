package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"yachtbooking/internal/database"
	"yachtbooking/internal/pkg/logger"
	"yachtbooking/internal/repository"
	"yachtbooking/internal/seed"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "yachtbooking.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	zl, err := logger.New("info", "console")
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	if err := seed.Run(context.Background(), db, zl); err != nil {
		zl.Fatal("seeding failed", zap.Error(err))
	}
	zl.Info("seed complete")
}
