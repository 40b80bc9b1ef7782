package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/agent"
	"github.com/vancomm/minesweeper-agent/internal/board"
)

var (
	log = logrus.New()

	paramsQuery string
	games       int
	workers     int
	seed        uint64
	logPath     string
	verbose     bool
)

func init() {
	flag.StringVar(&paramsQuery, "params", "height=8&width=8&mines=8",
		"game parameters as a query string")
	flag.IntVar(&games, "games", 100, "number of games to play")
	flag.IntVar(&workers, "workers", 4, "number of games played concurrently")
	flag.Uint64Var(&seed, "seed", 1, "rng seed")
	flag.StringVar(&logPath, "log", "", "log file path (rotated)")
	flag.BoolVar(&verbose, "v", false, "debug logging")
}

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if verbose {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	agent.Log.SetLevel(logLevel)
	agent.Log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    10, /* megabytes */
		MaxBackups: 3,
		MaxAge:     28, /* days */
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	agent.Log.AddHook(hook)
	return nil
}

/*
 * playGame plays a single game to completion and reports whether the
 * agent cleared the board. The agent prefers proven-safe moves and
 * falls back to a random unplayed non-mine cell; the game is won once
 * every safe square has been played, lost the moment a move lands on
 * a mine.
 */
func playGame(params board.Params, r *rand.Rand) (bool, error) {
	b, err := board.New(params, r)
	if err != nil {
		return false, err
	}
	a := agent.New(params.Height, params.Width, r)

	safeSquares := params.Height*params.Width - params.MineCount
	for moves := 0; moves < safeSquares; moves++ {
		cell, ok := a.SafeMove()
		if !ok {
			if cell, ok = a.RandomMove(); !ok {
				break
			}
			log.WithField("cell", cell).Debug("no safe move, guessing")
		}
		if b.IsMine(cell) {
			log.WithField("cell", cell).Debug("stepped on a mine")
			return false, nil
		}
		a.AddKnowledge(cell, b.NearbyMines(cell))
	}
	return true, nil
}

func main() {
	flag.Parse()

	if err := setupLogging(); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	if games <= 0 || workers <= 0 {
		log.Fatal("games and workers must be positive")
	}

	params, err := board.ParseParams(paramsQuery)
	if err != nil {
		log.Fatal("invalid game params: ", err)
	}

	log.WithFields(logrus.Fields{
		"height":  params.Height,
		"width":   params.Width,
		"mines":   params.MineCount,
		"games":   games,
		"workers": workers,
		"seed":    seed,
	}).Info("starting simulation")

	var (
		wins   atomic.Int64
		losses atomic.Int64
		g      errgroup.Group
	)
	g.SetLimit(workers)
	for i := range games {
		g.Go(func() error {
			r := rand.New(rand.NewPCG(seed, uint64(i)))
			won, err := playGame(params, r)
			if err != nil {
				return err
			}
			if won {
				wins.Add(1)
			} else {
				losses.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("simulation failed: ", err)
	}

	log.WithFields(logrus.Fields{
		"wins":   wins.Load(),
		"losses": losses.Load(),
	}).Info("simulation complete")

	fmt.Printf("played %d games: %d won, %d lost (%.1f%% win rate)\n",
		games, wins.Load(), losses.Load(),
		100*float64(wins.Load())/float64(games))
}
