package main

import (
	"io"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// game bundles the state owned by the driver for one run
type game struct {
	config    utils.Config
	board     *model.Board
	pool      *model.BoardPool
	renderer  *model.TerminalRenderer
	animation *model.Animation
	history   *model.History
	stats     *utils.Stats
	sleep     func(time.Duration)
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var pool *model.BoardPool
	if config.UsePool {
		pool = model.NewBoardPool()
	}

	board := model.NewBoard(config.BoardSize, config.BoardSize)
	if err := board.SeedRandom(config.AliveCells, config.Seed()); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed board")
	}

	return &game{
		config:    config,
		board:     board,
		pool:      pool,
		renderer:  &model.TerminalRenderer{Out: out},
		animation: model.NewAnimation(config.FrameDelay()),
		history:   &model.History{},
		stats:     utils.NewStats(),
		sleep:     time.Sleep,
	}, nil
}

// displayGameInfo logs the initial game information
func (g *game) displayGameInfo() {
	log.WithFields(log.Fields{
		"board":       g.board.Rows(),
		"iterations":  g.config.Iterations,
		"alive_cells": g.board.CountAlive(),
		"seed":        g.config.RandomSeed,
		"pool":        g.config.UsePool,
	}).Info("starting game of life")
}

// step renders the current generation and replaces it with the next one
func (g *game) step(iteration int) {
	frameStart := time.Now()

	if !g.config.Quiet {
		log.Infof("Iteration: %d", iteration)
		g.renderer.Display(g.board)
	}
	g.sleep(g.config.SleepTime)
	g.animation.Add(model.RenderFrame(g.board))
	if !g.config.Quiet {
		g.renderer.Clear()
	}

	next := rules.EvolveBoard(g.board, g.pool)
	model.BoardToPool(g.board, g.pool)
	g.board = next

	g.updateGameState(iteration+1, frameStart)
}

// updateGameState records stats and stagnation for the new generation
func (g *game) updateGameState(generation int, frameStart time.Time) {
	population := g.board.CountAlive()
	g.stats.Update(generation, population, time.Since(frameStart))

	hash := g.board.Hash()
	if g.history.IsStagnant(hash) {
		if g.stats.StagnantGenerations == 0 {
			log.WithFields(log.Fields{
				"generation": generation,
				"population": population,
			}).Info("board has settled into a still life or oscillator")
		}
		g.stats.StagnantGenerations++
	}
	g.history.Push(hash)

	log.WithFields(log.Fields{
		"generation": generation,
		"population": population,
	}).Debug("evolved")
}

// run drives the simulation for the configured number of iterations
func (g *game) run() {
	g.displayGameInfo()
	for iteration := range g.config.Iterations {
		g.step(iteration)
	}
}

// saveAnimation writes the collected frames; failures are logged, never fatal
func (g *game) saveAnimation() bool {
	if err := g.animation.Save(g.config.OutputPath); err != nil {
		log.WithError(err).WithField("path", g.config.OutputPath).Warn("animation not saved")
		return false
	}
	log.WithFields(log.Fields{
		"path":   g.config.OutputPath,
		"frames": g.animation.Len(),
	}).Info("animation saved")
	return true
}

// displayFinalStats logs a summary of the run
func (g *game) displayFinalStats() {
	log.WithFields(log.Fields{
		"generations":          g.stats.TotalGenerations,
		"runtime":              g.stats.Runtime().Round(time.Millisecond).String(),
		"gen_per_sec":          g.stats.GenerationsPerSecond,
		"avg_population":       g.stats.AveragePopulation,
		"peak_population":      g.stats.PeakPopulation,
		"final_population":     g.board.CountAlive(),
		"stagnant_generations": g.stats.StagnantGenerations,
	}).Info("finished")
}
