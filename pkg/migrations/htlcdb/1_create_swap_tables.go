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
		log.Println("creating escrows, orders, fills and cross_chain_requests tables...")
		if err := mghelper.CreateSchema(ctx, db,
			&htlcstore.EscrowDao{},
			&htlcstore.OrderDao{},
			&htlcstore.FillDao{},
			&htlcstore.RequestDao{},
		); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &htlcstore.EscrowDao{}, "sender", "receiver", "seq"); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &htlcstore.OrderDao{}, "sender", "receiver", "seq"); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &htlcstore.FillDao{}, "parent_id", "sender", "receiver", "seq"); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &htlcstore.RequestDao{}, "initiator", "deadline")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping escrows, orders, fills and cross_chain_requests tables...")
		return mghelper.DropTables(ctx, db,
			&htlcstore.RequestDao{},
			&htlcstore.FillDao{},
			&htlcstore.OrderDao{},
			&htlcstore.EscrowDao{},
		)
	})
}
