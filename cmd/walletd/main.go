// Command walletd runs the Zcash wallet transaction engine: chain tip
// tracking, Orchard scanning, transaction lifecycle and the HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/zcashwallet-backend/internal/keys"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/metrics"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/rpc/lightwalletd"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/transport"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/repository/clickhouse"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/repository/sqlite"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/archive"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/completer"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/lifecycle"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/scanner"
	"github.com/goodnatureofminers/zcashwallet-backend/internal/wallet/service/tiptracker"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/lightningnetwork/lnd/ticker"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var config struct {
	Profile       string `long:"profile" env:"WALLETD_PROFILE" default:"walletd.yml" description:"chain and account profile (yaml, toml or json)"`
	DBPath        string `long:"db" env:"WALLETD_DB" default:"wallet.db" description:"sqlite wallet database path"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"WALLETD_CLICKHOUSE_DSN" description:"archive lifecycle events and scan batches to this ClickHouse"`
	HTTPAddr      string `long:"http-addr" env:"WALLETD_HTTP_ADDR" default:":8000" description:"wallet API and metrics listen address"`
	GRPCAddr      string `long:"grpc-addr" env:"WALLETD_GRPC_ADDR" default:":8001" description:"gRPC health listen address"`
	PollWorkers   int    `long:"poll-workers" env:"WALLETD_POLL_WORKERS" default:"4" description:"concurrent confirmation lookups per tip"`

	Log logConfig `group:"Logging"`
}

func main() {
	if _, err := flags.Parse(&config); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(2)
	}

	logger, syncLogs, err := newLogger(config.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "can't initialize logger:", err)
		os.Exit(1)
	}
	grpcZap.ReplaceGrpcLoggerV2(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, logger)
	stop()
	if err != nil {
		logger.Error("walletd stopped", zap.Error(err))
		syncLogs()
		os.Exit(1)
	}
	logger.Info("walletd stopped")
	syncLogs()
}

func run(ctx context.Context, logger *zap.Logger) error {
	profile, err := loadProfile(config.Profile, "WALLETD")
	if err != nil {
		return err
	}
	ks, err := keys.NewKeystore(profile.Accounts)
	if err != nil {
		return fmt.Errorf("keystore: %w", err)
	}

	repo, err := sqlite.Open(config.DBPath, metrics.NewWalletRepository())
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close wallet database", zap.Error(err))
		}
	}()

	client, err := lightwalletd.NewClient(profile.endpoints(), nil, metrics.NewLightwalletdClient(), logger)
	if err != nil {
		return err
	}
	defer client.Close()

	library, shielded := shieldedLibrary(profile, logger)

	g, ctx := errgroup.WithContext(ctx)

	var (
		events  lifecycle.EventSink
		batches scanner.BatchArchive
		history transport.History
	)
	if config.ClickhouseDSN != "" {
		chRepo, err := clickhouse.NewRepository(config.ClickhouseDSN, metrics.NewArchiveRepository())
		if err != nil {
			return err
		}
		defer func() {
			if err := chRepo.Close(); err != nil {
				logger.Warn("close clickhouse", zap.Error(err))
			}
		}()
		arch, err := archive.NewService(chRepo, archive.Config{
			BatchSize:     profile.Archive.BatchSize,
			FlushInterval: profile.Archive.flushInterval,
			FlushRPS:      profile.Archive.FlushRPS,
		}, logger)
		if err != nil {
			return err
		}
		events, batches, history = arch, arch, arch
		g.Go(func() error { return arch.Run(ctx) })
	}

	comp, err := completer.NewService(client, repo, ks, library, metrics.NewCompleter(), profile.completerChains(), logger)
	if err != nil {
		return err
	}
	lc, err := lifecycle.NewService(repo, client, ks, comp, library, events, metrics.NewLifecycle(), nil, lifecycle.Config{
		Chains:      profile.lifecycleChains(),
		PollWorkers: config.PollWorkers,
	}, logger)
	if err != nil {
		return err
	}

	health := transport.NewHealth()
	var scanners []*scanner.Scanner
	if shielded {
		scannerMetrics := metrics.NewScanner()
		for _, c := range profile.Chains {
			for _, account := range profile.shieldedAccounts() {
				s, err := scanner.New(account, c.chain, c.scannerConfig(), client, repo, ks, library, batches, scannerMetrics, logger)
				if err != nil {
					return err
				}
				s.Subscribe(health.Observe)
				scanners = append(scanners, s)
			}
		}
	}
	manager, err := scanner.NewManager(scanners...)
	if err != nil {
		return err
	}
	g.Go(func() error { return manager.Run(ctx) })

	tipMetrics := metrics.NewTipTracker()
	for _, c := range profile.Chains {
		blocks, err := startBlockSignal(ctx, c.BlockSignal, logger)
		if err != nil {
			return fmt.Errorf("chain %s: %w", c.chain, err)
		}
		tracker, err := tiptracker.New(c.chain, client, tipMetrics, ticker.New(c.pollInterval), logger, blocks)
		if err != nil {
			return err
		}
		tracker.Subscribe(lc.OnTip)
		tracker.Subscribe(manager.OnTip)
		g.Go(func() error { return tracker.Run(ctx) })
	}

	api, err := transport.NewAPI(lc, manager, history, metrics.NewHTTPAPI(), logger)
	if err != nil {
		return err
	}
	g.Go(func() error { return serveHTTP(ctx, config.HTTPAddr, api.Handler(), logger) })
	g.Go(func() error { return serveGRPC(ctx, config.GRPCAddr, health, logger) })

	logger.Info("walletd started",
		zap.Int("chains", len(profile.Chains)),
		zap.Int("scanners", len(scanners)),
		zap.Bool("shielded", shielded),
		zap.Bool("archive", history != nil),
	)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
