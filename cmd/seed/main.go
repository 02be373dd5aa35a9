// Command seed bulk-creates Timekeeper records from a yaml, json or toml
// file:
//
//	seed -config seed.yaml
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/iliyamo/timekeeper/internal/config"
	"github.com/iliyamo/timekeeper/internal/database"
	"github.com/iliyamo/timekeeper/internal/logger"
	"github.com/iliyamo/timekeeper/internal/repository"
	"github.com/iliyamo/timekeeper/internal/seed"
)

func main() {
	path := flag.String("config", "seed.yaml", "seed file (yaml, json or toml)")
	flag.Parse()

	cfg := config.Load()
	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	f, err := seed.Load(*path)
	if err != nil {
		lg.Fatal("load seed", zap.Error(err))
	}

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		lg.Fatal("open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	if _, err := seed.Apply(ctx, repository.New(db, lg), f, cfg.BcryptCost, lg); err != nil {
		lg.Error("seed failed", zap.Error(err))
		_ = db.Close()
		_ = lg.Sync()
		log.Fatal(err)
	}
}
