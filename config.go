package main

import (
	"flag"
	"io"
	"os"
	"strconv"

	"toroidal-snake/game"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	envBoardSize     = "SNAKE_BOARD_SIZE"
	envInitialLength = "SNAKE_INITIAL_LENGTH"
	envSeed          = "SNAKE_SEED"
	envRounds        = "SNAKE_ROUNDS"
	envLogLevel      = "SNAKE_LOG_LEVEL"
	envScript        = "SNAKE_SCRIPT"
)

type Config struct {
	BoardSize     int
	InitialLength int
	Seed          uint64 // 0 seeds from the clock
	Rounds        int
	LogLevel      string
	Script        string // empty reads stdin
}

func DefaultConfig() Config {
	return Config{
		BoardSize:     10,
		InitialLength: 4,
		Rounds:        1,
		LogLevel:      "info",
	}
}

// LoadConfig layers defaults, an optional .env file, the environment and
// finally the command line flags in args.
func LoadConfig(args []string, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(errors.Cause(err)) {
		log.WithError(err).Warn("could not load env file")
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.IntVar(&cfg.BoardSize, "size", cfg.BoardSize, "board width and height")
	fs.IntVar(&cfg.InitialLength, "length", cfg.InitialLength, "initial snake length")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "food placement seed, 0 for the clock")
	fs.IntVar(&cfg.Rounds, "rounds", cfg.Rounds, "games to play before exiting")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logrus level")
	fs.StringVar(&cfg.Script, "script", cfg.Script, "file of directions to play instead of stdin")
	if err := fs.Parse(args); err != nil {
		return cfg, errors.Wrap(err, "parse flags")
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{envBoardSize, &c.BoardSize},
		{envInitialLength, &c.InitialLength},
		{envRounds, &c.Rounds},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%s", e.key)
		}
		*e.dst = n
	}

	if v := os.Getenv(envSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", envSeed)
		}
		c.Seed = seed
	}
	if v := os.Getenv(envLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(envScript); v != "" {
		c.Script = v
	}
	return nil
}

func (c Config) Validate() error {
	if err := game.Validate(c.BoardSize, c.InitialLength); err != nil {
		return err
	}
	if c.Rounds < 1 {
		return errors.Errorf("rounds must be at least 1, got %d", c.Rounds)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}
