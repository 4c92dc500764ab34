package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/orgball2608/motivate-ai/internal/migrations"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/pressly/goose/v3"
)

// Migrations are compiled in; goose resolves them against any existing dir.
const registeredDir = "."

const usage = "Usage: migrate [up|down|redo|status|version|reset|create <name>]"

var commands = map[string]struct {
	run  func(*sql.DB) error
	done string
}{
	"down":    {func(db *sql.DB) error { return goose.Down(db, registeredDir) }, "Rolled back the latest publication history migration"},
	"redo":    {func(db *sql.DB) error { return goose.Redo(db, registeredDir) }, "Re-applied the latest publication history migration"},
	"status":  {func(db *sql.DB) error { return goose.Status(db, registeredDir) }, ""},
	"version": {func(db *sql.DB) error { return goose.Version(db, registeredDir) }, ""},
	"reset":   {func(db *sql.DB) error { return goose.Reset(db, registeredDir) }, "Publication history schema has been rolled back"},
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}
	name := os.Args[1]

	if name == "create" {
		if len(os.Args) < 3 {
			log.Fatal("Usage: migrate create <name>")
		}
		scaffold(os.Args[2])
		return
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.HistoryEnabled() {
		log.Fatal("Publication history is disabled: POSTGRES_HOST is not set")
	}

	if name == "up" {
		if err := migrations.Up(cfg.GetDSN()); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		fmt.Println("Publication history schema is up to date")
		return
	}

	cmd, ok := commands[name]
	if !ok {
		log.Fatalf("Unknown command %q. %s", name, usage)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set dialect: %v", err)
	}
	db, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := cmd.run(db); err != nil {
		log.Fatalf("migrate %s: %v", name, err)
	}
	if cmd.done != "" {
		fmt.Println(cmd.done)
	}
}

func scaffold(name string) {
	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Failed to get working directory: %v", err)
	}

	dir := filepath.Join(wd, "internal", "migrations")
	if err := goose.Create(nil, dir, name, "go"); err != nil {
		log.Fatalf("Failed to create migration: %v", err)
	}
	fmt.Printf("Created migration %q in %s\n", name, dir)
}
