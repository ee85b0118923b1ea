package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dbaylabs/dbay-backend/internal/config"
	"github.com/dbaylabs/dbay-backend/internal/journal"
	"github.com/dbaylabs/dbay-backend/internal/ledger"
	"github.com/dbaylabs/dbay-backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	j, err := journal.Open(cfg.JournalPath)
	if err != nil {
		log.Fatalf("journal open error: %v", err)
	}
	defer j.Close()

	lg := ledger.New()
	ctx := context.Background()
	if err := j.Replay(ctx, lg); err != nil {
		log.Fatalf("journal replay error: %v", err)
	}
	lg.AttachJournal(j)

	n, err := j.Len(ctx)
	if err == nil {
		log.Printf("restored %d journaled transitions, %d items", n, lg.Size(ctx))
	}

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := server.New(lg, cfg).Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
