// Command cleanup-tokens deletes expired refresh tokens and revoked ones
// older than the retention window.
//
// Usage:
//
//	cleanup-tokens [-revoked-retention 24h]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	retention := flag.Duration("revoked-retention", 24*time.Hour,
		"how long to keep revoked tokens before deleting them")
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	cutoff := time.Now().Add(-*retention)
	tag, err := pool.Exec(ctx,
		"DELETE FROM refresh_tokens WHERE expires_at < now() OR (revoked_at IS NOT NULL AND revoked_at < $1)",
		cutoff,
	)
	if err != nil {
		log.Fatalf("cleanup tokens: %v", err)
	}

	fmt.Printf("Deleted %d refresh tokens.\n", tag.RowsAffected())
}
