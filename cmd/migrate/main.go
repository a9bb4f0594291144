// Command migrate applies the embedded schema migrations to Postgres.
//
//	go run ./cmd/migrate        # migrate up
//	go run ./cmd/migrate -down  # roll everything back
package main

import (
	"database/sql"
	"embed"
	"errors"
	"flag"
	"os"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/neplink/classifieds-api/internal/infrastructure/config"
	"github.com/neplink/classifieds-api/internal/infrastructure/db/postgres"
	"github.com/neplink/classifieds-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func main() {
	down := flag.Bool("down", false, "roll back all migrations instead of applying them")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.Env == "development"})

	dsn := postgres.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	}.DSN()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer func() { _ = db.Close() }()

	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("init migration driver")
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		log.Fatal().Err(err).Msg("load embedded migrations")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		log.Fatal().Err(err).Msg("init migrator")
	}

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		log.Info().Msg("no migrations to run")
	case err != nil:
		log.Fatal().Err(err).Msg("migration failed")
	default:
		log.Info().Bool("down", *down).Msg("migrations applied")
	}
}
