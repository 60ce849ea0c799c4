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
		log.Println("creating resolvers and engine_state tables...")
		if err := mghelper.CreateSchema(ctx, db, &htlcstore.ResolverDao{}, &htlcstore.EngineStateDao{}); err != nil {
			return err
		}
		// Singleton row holding the pause flag and sequence high-water mark.
		_, err := db.ExecContext(ctx, "ALTER TABLE engine_state ADD CONSTRAINT engine_state_singleton CHECK (id = 1)")
		if err != nil {
			return err
		}
		_, err = db.NewInsert().
			Model(&htlcstore.EngineStateDao{ID: 1}).
			On("CONFLICT (id) DO NOTHING").
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping resolvers and engine_state tables...")
		return mghelper.DropTables(ctx, db, &htlcstore.EngineStateDao{}, &htlcstore.ResolverDao{})
	})
}
