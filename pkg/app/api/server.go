// Package api implements app.Runner for the escrow API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/htlc-escrow/pkg/app/http"
	"github.com/chainsafe/htlc-escrow/pkg/auth"
	"github.com/chainsafe/htlc-escrow/pkg/config"
	"github.com/chainsafe/htlc-escrow/pkg/ethereum"
	"github.com/chainsafe/htlc-escrow/pkg/events"
	"github.com/chainsafe/htlc-escrow/pkg/htlc"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/engine"
	"github.com/chainsafe/htlc-escrow/pkg/htlc/service"
	"github.com/chainsafe/htlc-escrow/pkg/htlcstore"
	"github.com/chainsafe/htlc-escrow/pkg/ledger"
	"github.com/chainsafe/htlc-escrow/pkg/migrations/htlcdb"
	"github.com/chainsafe/htlc-escrow/pkg/pgutil"
	mghelper "github.com/chainsafe/htlc-escrow/pkg/pgutil/migrations"
	"github.com/chainsafe/htlc-escrow/pkg/ratelimit"
	"github.com/chainsafe/htlc-escrow/pkg/sweeper"
)

// recorderCapacity bounds the in-memory event feed used without a database.
const recorderCapacity = 10000

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting HTLC escrow server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("ledger", cfg.Ledger.Type),
		zap.Bool("database", cfg.Database.Enabled),
	)

	hub := events.NewHub()
	emitters := events.Multi{events.NewLogEmitter(logger), hub}
	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithPayoutTimeout(cfg.Engine.PayoutTimeout),
		engine.WithResolverGatedCompletion(cfg.Engine.RequireResolverForCompletion),
	}
	if cfg.Engine.MaxAmount != "" {
		maxAmount, err := htlc.ParseAmount(cfg.Engine.MaxAmount)
		if err != nil {
			return fmt.Errorf("parse engine.max_amount: %w", err)
		}
		opts = append(opts, engine.WithMaxAmount(maxAmount))
	}

	var (
		feed  events.Feed
		store *htlcstore.Store
	)
	if cfg.Database.Enabled {
		db, err := s.openDB(ctx, logger)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		store = htlcstore.NewStore(db)
		snap, err := store.Load(ctx)
		if err != nil {
			return fmt.Errorf("load engine state: %w", err)
		}
		logger.Info("Restored engine state",
			zap.Int("escrows", len(snap.Escrows)),
			zap.Int("orders", len(snap.Orders)),
			zap.Int("fills", len(snap.Fills)),
			zap.Int("requests", len(snap.Requests)),
			zap.Uint64("last_seq", snap.LastSeq),
		)
		feed = store
		opts = append(opts, engine.WithPersister(store), engine.WithSnapshot(snap))
	} else {
		recorder := events.NewRecorder(recorderCapacity)
		feed = recorder
		emitters = append(emitters, recorder)
	}

	payoutLedger, closeLedger, err := s.openLedger(logger)
	if err != nil {
		return err
	}
	defer closeLedger()

	opts = append(opts, engine.WithEmitter(emitters))
	eng, err := engine.New(cfg.Engine.Owner, payoutLedger, opts...)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	svc := service.NewLog(service.NewService(eng, cfg.Engine.SettlementWait, logger), logger)

	stopSweeper := s.startSweeper(ctx, eng, logger)
	// Stopped explicitly after ServeAndWait returns; the defer is a safety net.
	defer stopSweeper()

	router := s.setupRouter(svc, hub, feed, store, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	stopSweeper()

	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if drainErr := eng.Drain(drainCtx); drainErr != nil {
		logger.Warn("Payouts still in flight at shutdown", zap.Error(drainErr))
	}

	return err
}

func (s *Server) openDB(ctx context.Context, logger *zap.Logger) (*bun.DB, error) {
	db, err := pgutil.ConnectDB(&s.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	logger.Info("Connected to database",
		zap.String("host", s.cfg.Database.Host),
		zap.String("database", s.cfg.Database.Database),
	)

	if err := mghelper.CheckApplied(ctx, migrate.NewMigrator(db, htlcdb.Migrations)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database schema is not current (run the migrate binary): %w", err)
	}
	return db, nil
}

// openLedger builds the payout ledger. The memory ledger also implements
// engine.Locker, so creations are refused when the sender cannot cover them.
func (s *Server) openLedger(logger *zap.Logger) (engine.Ledger, func(), error) {
	switch s.cfg.Ledger.Type {
	case config.LedgerEVM:
		l, err := ethereum.NewLedger(&s.cfg.Ledger.EVM, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("create evm ledger: %w", err)
		}
		logger.Info("Using EVM ledger",
			zap.String("rpc_url", s.cfg.Ledger.EVM.RPCURL),
			zap.Int64("chain_id", s.cfg.Ledger.EVM.ChainID),
			zap.String("vault", l.Address().Hex()),
		)
		return l, l.Close, nil
	default:
		memCfg := s.cfg.Ledger.Memory
		vault, err := htlc.ParseAmount(memCfg.VaultBalance)
		if err != nil {
			return nil, nil, fmt.Errorf("parse ledger.memory.vault_balance: %w", err)
		}
		l := ledger.NewMemory(vault, logger)
		for account, balance := range memCfg.Balances {
			amount, err := htlc.ParseAmount(balance)
			if err != nil {
				return nil, nil, fmt.Errorf("parse balance for %s: %w", account, err)
			}
			if err := l.Credit(account, amount); err != nil {
				return nil, nil, fmt.Errorf("seed balance for %s: %w", account, err)
			}
		}
		logger.Info("Using in-memory ledger",
			zap.String("vault", vault.String()),
			zap.Int("seeded_accounts", len(memCfg.Balances)),
		)
		return l, func() {}, nil
	}
}

func (s *Server) startSweeper(ctx context.Context, eng *engine.Engine, logger *zap.Logger) func() {
	if !s.cfg.Sweeper.Enabled {
		return func() {}
	}

	sw := sweeper.New(eng, s.cfg.SweeperAccount(), s.cfg.Sweeper.BatchSize, logger)
	if err := sw.RunOnce(ctx); err != nil {
		logger.Warn("Initial sweep failed (will retry periodically)", zap.Error(err))
	}
	sw.Start(s.cfg.Sweeper.Interval)

	return sw.Stop
}

func (s *Server) setupRouter(
	svc service.Service,
	hub *events.Hub,
	feed events.Feed,
	store *htlcstore.Store,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/ready", func(w http.ResponseWriter, r *http.Request) {
		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	var validator *auth.JWTValidator
	if s.cfg.Auth.Enabled {
		validator = auth.NewJWTValidator(auth.ValidatorConfig{
			HMACSecret: s.cfg.Auth.HMACSecret,
			JWKSURL:    s.cfg.Auth.JWKSURL,
			Issuer:     s.cfg.Auth.Issuer,
			ClockSkew:  s.cfg.Auth.ClockSkew,
		})
	} else {
		logger.Warn("Token auth disabled, caller identity taken from header", zap.String("header", auth.AccountHeader))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(validator, s.cfg.Auth.AccountClaim, logger))
		if s.cfg.RateLimit.Enabled {
			r.Use(ratelimit.New(s.cfg.RateLimit.RequestsPerMinute, s.cfg.RateLimit.Burst).Middleware)
		}

		// The websocket stream is long lived and stays outside the request timeout.
		events.RegisterRoutes(r, hub, feed, logger)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))
			service.RegisterRoutes(r, svc, logger)
		})
	})

	return r
}
