package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"toroidal-snake/game"
	"toroidal-snake/ui"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	var in io.Reader = os.Stdin
	if cfg.Script != "" {
		f, err := os.Open(cfg.Script)
		if err != nil {
			log.WithError(err).Fatal("open script")
		}
		defer f.Close()
		in = f
	}

	stats, err := run(cfg, in, os.Stdout)
	if err != nil {
		log.WithError(err).Error("session aborted")
		os.Exit(1)
	}
	printSummary(os.Stdout, stats)
}

// run plays up to cfg.Rounds games, reading directions from in and drawing
// to out. It stops early when the input runs out.
func run(cfg Config, in io.Reader, out io.Writer) (*GameStats, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	stats := NewGameStats(GroupSize)
	renderer := ui.NewRenderer(out)
	reader := NewDirectionReader(in)

	for round := 1; round <= cfg.Rounds; round++ {
		g, err := game.NewWithRand(cfg.BoardSize, cfg.InitialLength, rng)
		if err != nil {
			return stats, errors.Wrap(err, "new game")
		}
		logger := log.WithFields(log.Fields{"game": g.ID(), "round": round})
		logger.WithField("size", cfg.BoardSize).Info("game started")

		finished, err := play(g, reader, renderer, logger)
		if err != nil {
			return stats, err
		}
		if !finished {
			logger.WithField("score", g.Score()).Info("input ended before game over")
			break
		}

		stats.AddGame(g.ID(), g.Score(), g.StartTime(), g.StartTime().Add(g.Duration()))
		logger.WithFields(log.Fields{
			"cause": g.LastCollision().String(),
			"score": g.Score(),
			"moves": g.Steps(),
		}).Info("game over")
	}

	return stats, nil
}

// play drives one game until it ends or the input is exhausted. finished
// reports whether the game reached game over.
func play(g *game.GameState, reader *DirectionReader, renderer *ui.Renderer, logger *log.Entry) (finished bool, err error) {
	for {
		if err := renderer.Draw(g); err != nil {
			return false, errors.Wrap(err, "draw board")
		}

		dir, err := reader.Next()
		for errors.Cause(err) == ErrBadDirection {
			logger.WithError(err).Warn("ignoring input")
			dir, err = reader.Next()
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}

		score := g.Move(dir)
		logger.WithFields(log.Fields{"dir": dir.String(), "score": score, "head": g.Head().String()}).Debug("move")
		if score == game.GameOverScore {
			if err := renderer.DrawGameOver(g); err != nil {
				return true, errors.Wrap(err, "draw game over")
			}
			return true, nil
		}
	}
}

func printSummary(out io.Writer, stats *GameStats) {
	if stats.GetGamesPlayed() == 0 {
		return
	}
	fmt.Fprintf(out, "Games: %d  Avg score: %.1f  Median: %.1f  Max: %d  Avg duration: %.1fs\n",
		stats.GetGamesPlayed(),
		stats.GetAverageScore(),
		stats.GetMedianScore(),
		stats.GetMaxScore(),
		stats.GetAverageDuration())
}
