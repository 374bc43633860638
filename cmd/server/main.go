package main

// cmd/server is the serve-only entry point, handy for `go run ./cmd/server`
// in development. The full CLI (migrations, seeding, jobs, tokens) lives
// in cmd/crmd; `crmd serve` runs the same server.

import (
	"log"

	"github.com/shashiranjanraj/charvi/internal/server"

	_ "github.com/shashiranjanraj/charvi/database/migrations"
	_ "github.com/shashiranjanraj/charvi/database/seeders"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
