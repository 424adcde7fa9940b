// Command farmsh plays a single island farm game in the terminal.
package main

import (
	"os"
	"time"

	"islandfarm/internal/adapter/terminal"
	"islandfarm/internal/config"
	"islandfarm/internal/domain/farm"
	"islandfarm/internal/domain/world"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}
	hlog.SetLevel(cfg.HLogLevel())

	game := farm.NewGame(uuid.NewString(), farm.Options{
		Grid:       world.Island(cfg.Tuning.TileSize),
		Tuning:     cfg.Tuning,
		MaxCatchUp: cfg.MaxCatchUp,
	}, time.Now())

	if err := terminal.NewShell(game, os.Stdout).Run(os.Stdin); err != nil {
		hlog.Fatalf("read input: %v", err)
	}
}
