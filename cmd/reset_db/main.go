package main

import (
	"context"
	"log"
	"os"

	"tictactoe_webapp/internal/db"
	"tictactoe_webapp/internal/service"
)

// Administrative bulk reset: deletes every player and game row atomically.
// Abandoned games are never garbage-collected by the server itself; this is
// the only way to clear them out.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	svc := service.NewGameService(pool)
	if err := svc.ResetAll(context.Background()); err != nil {
		log.Fatalf("reset failed: %v", err)
	}

	log.Println("games and players tables reset")
}
