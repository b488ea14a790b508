package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/paulossjunior/dynamic-forms/internal/bootstrap"
	"github.com/paulossjunior/dynamic-forms/internal/config"
	"github.com/paulossjunior/dynamic-forms/internal/infrastructure/database"
)

func main() {
	recreate := flag.Bool("recreate", false, "create empty tables after dropping them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer conn.Close()

	if err := bootstrap.DropSchema(ctx, conn); err != nil {
		log.Fatalf("failed to drop schema: %v", err)
	}
	log.Println("Database reset successfully.")

	if *recreate {
		if err := bootstrap.InitializeSchema(ctx, conn); err != nil {
			log.Fatalf("failed to recreate schema: %v", err)
		}
	}
}
