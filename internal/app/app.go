package app

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"power4special/internal/config"
	"power4special/internal/engine"
	"power4special/internal/game"
	httphandler "power4special/internal/http"
	"power4special/internal/util"
)

// App is the wired process: one engine and the routes in front of it
type App struct {
	Engine *engine.Engine
	Mux    *http.ServeMux
}

// NewLogger builds a JSON logger, or a console one in development mode
func NewLogger(c config.Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	if c.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

// Boot creates the engine on clk and builds the HTTP router; the caller runs Engine.Run
func Boot(cfg config.Config, clk clock.Clock, log *zap.Logger) (*App, error) {
	rng, err := util.NewRand(cfg.Game.Seed)
	if err != nil {
		return nil, fmt.Errorf("seed rng: %w", err)
	}

	eng := engine.New(clk, log, rng,
		game.Options{
			MaxTime:      cfg.Game.MaxTime,
			SpecialCells: cfg.Game.SpecialCells,
		},
		engine.Options{
			MoveDelay:     cfg.Game.MoveDelay,
			ComputerDelay: cfg.Game.ComputerDelay,
		},
	)

	// serves the front end only when a directory is configured
	var staticFS fs.FS
	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err != nil {
			return nil, fmt.Errorf("static dir: %w", err)
		}
		staticFS = os.DirFS(cfg.StaticDir)
	}

	srv := httphandler.NewServer(eng, log.Named("http"))
	return &App{
		Engine: eng,
		Mux:    httphandler.NewRouter(srv, staticFS),
	}, nil
}
