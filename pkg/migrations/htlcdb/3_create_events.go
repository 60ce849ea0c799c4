package htlcdb

import (
	"context"
	"log"

	"github.com/chainsafe/htlc-escrow/pkg/htlcstore"
	mghelper "github.com/chainsafe/htlc-escrow/pkg/pgutil/migrations"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating events table...")
		if err := mghelper.CreateSchema(ctx, db, &htlcstore.EventDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &htlcstore.EventDao{}, "type", "subject_id")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping events table...")
		return mghelper.DropTables(ctx, db, &htlcstore.EventDao{})
	})
}
