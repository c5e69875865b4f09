package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"power4special/internal/game"
)

var ErrStopped = errors.New("engine stopped")

type Options struct {
	MoveDelay     time.Duration // drop animation before a move is applied
	ComputerDelay time.Duration // pause before the computer answers
}

// Engine owns one game and is its only thread of control. Every mutation runs
// inside Run: public calls are queued as closures, and the turn ticker and the
// two one-shot delays are selected on in the same loop. Dropping a timer's
// channel cancels it, so nothing scheduled for an old session can fire.
type Engine struct {
	clock clock.Clock
	log   *zap.Logger
	rng   *rand.Rand
	opts  Options
	rules game.Options
	game  *game.Game

	cmds chan func()
	done chan struct{}

	ticker   *clock.Ticker
	move     *clock.Timer
	computer *clock.Timer

	subsMu sync.Mutex
	subs   map[chan struct{}]struct{}
}

func New(clk clock.Clock, log *zap.Logger, rng *rand.Rand, rules game.Options, opts Options) *Engine {
	return &Engine{
		clock: clk,
		log:   log,
		rng:   rng,
		opts:  opts,
		rules: rules,
		game:  game.NewGame(rng, rules),
		cmds:  make(chan func()),
		done:  make(chan struct{}),
		subs:  make(map[chan struct{}]struct{}),
	}
}

// Rules returns the rule options every session is started with
func (e *Engine) Rules() game.Options { return e.rules }

// Run processes commands and timers until ctx is cancelled
func (e *Engine) Run(ctx context.Context) error {
	defer close(e.done)
	defer e.stopTimers()

	for {
		var tickC, moveC, computerC <-chan time.Time
		if e.ticker != nil {
			tickC = e.ticker.C
		}
		if e.move != nil {
			moveC = e.move.C
		}
		if e.computer != nil {
			computerC = e.computer.C
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-e.cmds:
			fn()
		case <-tickC:
			e.onTick()
		case <-moveC:
			e.onResolve()
		case <-computerC:
			e.onComputer()
		}
	}
}

// do runs fn on the loop and waits for it
func (e *Engine) do(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	select {
	case e.cmds <- func() { fn(); close(ran) }:
	case <-e.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	<-ran
	return nil
}

// StartGame discards any running session and starts a new one
func (e *Engine) StartGame(ctx context.Context, player1, player2 string, mode game.Mode) error {
	var err error
	if derr := e.do(ctx, func() { err = e.start(player1, player2, mode) }); derr != nil {
		return derr
	}
	return err
}

// ResetGame tears the session down and returns to setup
func (e *Engine) ResetGame(ctx context.Context) error {
	return e.do(ctx, e.reset)
}

// HandleColumnClick starts a drop in col. Rejected clicks leave the game untouched and return the reason.
func (e *Engine) HandleColumnClick(ctx context.Context, col int) error {
	var err error
	if derr := e.do(ctx, func() { err = e.click(col) }); derr != nil {
		return derr
	}
	return err
}

// State returns a snapshot of the current session
func (e *Engine) State(ctx context.Context) (game.State, error) {
	var st game.State
	err := e.do(ctx, func() { st = game.Snapshot(e.game) })
	return st, err
}

func (e *Engine) start(player1, player2 string, mode game.Mode) error {
	if err := game.Start(e.game, player1, player2, mode); err != nil {
		return err
	}
	e.stopTimers()
	e.ticker = e.clock.Ticker(time.Second)
	e.log.Info("game started",
		zap.String("session", e.game.ID),
		zap.String("mode", string(mode)),
		zap.String("player1", e.game.Players[0].Name),
		zap.String("player2", e.game.Players[1].Name),
		zap.Int("first", int(e.game.Current)),
		zap.Int("special_cells", len(e.game.Special)),
	)
	e.scheduleComputer()
	e.publish()
	return nil
}

func (e *Engine) reset() {
	e.stopTimers()
	if e.game.Status != game.StatusSetup {
		e.log.Info("game reset", zap.String("session", e.game.ID))
	}
	game.Reset(e.game)
	e.publish()
}

func (e *Engine) click(col int) error {
	row, err := game.Begin(e.game, col)
	if err != nil {
		e.log.Debug("move rejected", zap.Int("col", col), zap.Error(err))
		return err
	}
	e.stopComputer()
	e.move = e.clock.Timer(e.opts.MoveDelay)
	e.log.Debug("move in flight",
		zap.String("session", e.game.ID),
		zap.Int("player", int(e.game.Current)),
		zap.Int("row", row),
		zap.Int("col", col),
	)
	e.publish()
	return nil
}

func (e *Engine) onResolve() {
	e.move = nil
	if err := game.Resolve(e.game); err != nil {
		e.log.Warn("move dropped", zap.String("session", e.game.ID), zap.Error(err))
		return
	}

	switch e.game.Status {
	case game.StatusWon:
		e.stopTimers()
		e.log.Info("game won",
			zap.String("session", e.game.ID),
			zap.Int("winner", int(e.game.Winner)),
			zap.Int("moves", e.game.Board.Moves),
		)
	case game.StatusDraw:
		e.stopTimers()
		e.log.Info("game drawn", zap.String("session", e.game.ID))
	default:
		// the turn clock restarts its one second phase with every move
		e.stopTicker()
		e.ticker = e.clock.Ticker(time.Second)
		e.scheduleComputer()
	}
	e.publish()
}

func (e *Engine) onTick() {
	if game.Tick(e.game) {
		e.log.Info("turn expired",
			zap.String("session", e.game.ID),
			zap.Int("next", int(e.game.Current)),
		)
		e.scheduleComputer()
	}
	e.publish()
}

func (e *Engine) onComputer() {
	e.computer = nil
	if !e.game.ComputerTurn() {
		return
	}
	col := game.ComputerMove(&e.game.Board, game.Player2, e.rng)
	if col < 0 {
		return
	}
	_ = e.click(col)
}

// scheduleComputer arms the computer delay when it is the computer's turn and disarms it otherwise
func (e *Engine) scheduleComputer() {
	if !e.game.ComputerTurn() {
		e.stopComputer()
		return
	}
	if e.computer == nil {
		e.computer = e.clock.Timer(e.opts.ComputerDelay)
	}
}

func (e *Engine) stopTicker() {
	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}
}

func (e *Engine) stopComputer() {
	if e.computer != nil {
		e.computer.Stop()
		e.computer = nil
	}
}

func (e *Engine) stopTimers() {
	e.stopTicker()
	e.stopComputer()
	if e.move != nil {
		e.move.Stop()
		e.move = nil
	}
}
