package pgx

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/motivate-ai/pkg/config"
	"github.com/orgball2608/motivate-ai/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In
	LC     fx.Lifecycle
	Logger logger.Logger
	Config *config.Config
}

// New creates the pool and pings it when the app starts.
func New(opts Opts) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(opts.Config.GetPoolURL())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	// history writes are rare; a small pool is enough
	if n := opts.Config.Postgres.MaxConns; n > 0 {
		poolCfg.MaxConns = n
	}
	if d := opts.Config.Postgres.MaxConnIdleTime; d > 0 {
		poolCfg.MaxConnIdleTime = d
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	log := opts.Logger.WithComponent("Postgres")

	opts.LC.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := pool.Ping(ctx); err != nil {
				return fmt.Errorf("postgres at %s is unreachable: %w", opts.Config.Postgres.Host, err)
			}
			log.Info("Connected to postgres", "db", opts.Config.Postgres.Name, "max_conns", poolCfg.MaxConns)
			return nil
		},
		OnStop: func(context.Context) error {
			pool.Close()
			log.Info("Postgres pool closed")
			return nil
		},
	})

	return pool, nil
}
