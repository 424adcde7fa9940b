package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	httpadapter "islandfarm/internal/adapter/http"
	metricsinmem "islandfarm/internal/adapter/metrics/inmemory"
	metricsprom "islandfarm/internal/adapter/metrics/prom"
	gormrepo "islandfarm/internal/adapter/repo/gorm"
	"islandfarm/internal/adapter/repo/memory"
	"islandfarm/internal/app/action"
	"islandfarm/internal/app/gameinfo"
	"islandfarm/internal/app/move"
	"islandfarm/internal/app/observe"
	"islandfarm/internal/app/ports"
	"islandfarm/internal/app/replay"
	"islandfarm/internal/app/session"
	"islandfarm/internal/config"
	"islandfarm/internal/domain/farm"
	"islandfarm/internal/domain/world"
	"islandfarm/migrations"
	"islandfarm/web"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}
	hlog.SetLevel(cfg.HLogLevel())

	h, err := buildHandler(context.Background(), cfg, time.Now)
	if err != nil {
		hlog.Fatalf("build server: %v", err)
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	journal := "memory"
	if cfg.DBDSN != "" {
		journal = "postgres"
	}
	hlog.Infof("islandfarm server listening on %s (journal: %s)", cfg.Addr, journal)
	s.Spin()
}

func buildHandler(ctx context.Context, cfg config.Config, now func() time.Time) (*httpadapter.Handler, error) {
	store := memory.NewStore(cfg.SessionCapacity, cfg.SessionTTL)
	games := memory.NewGameRepo(store)
	var (
		txManager ports.TxManager       = memory.NewTxManager(store)
		events    ports.EventRepository = memory.NewEventRepo(store)
	)
	if cfg.DBDSN != "" {
		db, err := gormrepo.OpenPostgres(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := gormrepo.ApplyMigrations(ctx, db, migrationsFS(cfg)); err != nil {
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		txManager = gormrepo.NewTxManager(db, txManager)
		events = gormrepo.NewEventRepo(db)
	}

	opts := farm.Options{
		Grid:       world.Island(cfg.Tuning.TileSize),
		Tuning:     cfg.Tuning,
		MaxCatchUp: cfg.MaxCatchUp,
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	kpiRecorder := metricsinmem.NewRecorder()
	metrics := ports.MultiMetrics{kpiRecorder, metricsprom.NewRecorder(reg)}

	webFS, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("web assets: %w", err)
	}

	return &httpadapter.Handler{
		SessionUC: session.UseCase{TxManager: txManager, Games: games, Events: events, Options: opts, Now: now},
		ObserveUC: observe.UseCase{TxManager: txManager, Games: games, Events: events, Now: now},
		ActionUC: action.UseCase{
			TxManager: txManager,
			Games:     games,
			Events:    events,
			Metrics:   metrics,
			Now:       now,
		},
		MoveUC:   move.UseCase{TxManager: txManager, Games: games, Events: events, Now: now},
		ReplayUC: replay.UseCase{Events: events},
		InfoUC:   gameinfo.UseCase{Options: opts},
		KPI:      kpiRecorder,
		Metrics:  promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Web:      webFS,
	}, nil
}

func migrationsFS(cfg config.Config) fs.FS {
	if cfg.MigrationsDir != "" {
		return os.DirFS(cfg.MigrationsDir)
	}
	return migrations.FS
}
