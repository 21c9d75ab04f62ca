package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

type Config struct {
	Stage       string
	Seed        int64
	DatabaseUrl string
	FeedPort    int
	FogOfWar    bool
}

func (c Config) AnalyticsEnabled() bool {
	return c.DatabaseUrl != ""
}

func (c Config) FeedEnabled() bool {
	return c.FeedPort != 0
}

// Load reads the environment, after loading envFile unless STAGE is prod.
// A missing env file is not an error; the game runs on defaults.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	cfg := Config{
		Stage:       os.Getenv("STAGE"),
		Seed:        time.Now().UnixNano(),
		DatabaseUrl: os.Getenv("DATABASE_URL"),
	}
	if cfg.Stage == "" {
		cfg.Stage = StageDev
	}
	if cfg.Stage != StageDev && cfg.Stage != StageProd {
		return Config{}, fmt.Errorf("stage must be either dev or prod, got %q", cfg.Stage)
	}

	if seedEnv := os.Getenv("SEED"); seedEnv != "" {
		seed, err := strconv.ParseInt(seedEnv, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if portEnv := os.Getenv("FEED_PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FEED_PORT: %w", err)
		}
		cfg.FeedPort = port
	}

	if fogEnv := os.Getenv("FOG_OF_WAR"); fogEnv != "" {
		fog, err := strconv.ParseBool(fogEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid FOG_OF_WAR: %w", err)
		}
		cfg.FogOfWar = fog
	}

	return cfg, nil
}
