package main

import (
	"flag"
	"log"

	"github.com/chainsafe/htlc-escrow/pkg/config"
	"github.com/chainsafe/htlc-escrow/pkg/migrations/htlcdb"
	"github.com/chainsafe/htlc-escrow/pkg/pgutil"
	mghelper "github.com/chainsafe/htlc-escrow/pkg/pgutil/migrations"

	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}
	if !cfg.Database.Enabled {
		log.Fatalf("database is not enabled in %s", *cfgPath)
	}

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for escrow database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, htlcdb.Migrations)

	err = mghelper.RunMigrations(migrator, flag.Args()...)
	if err != nil {
		mghelper.Exitf(err.Error())
	}
}
