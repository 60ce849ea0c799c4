// Package htlcdb holds all the migrations for the escrow engine database
package htlcdb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the escrow engine database
var Migrations = migrate.NewMigrations()
