package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port         int      `env:"PORT" envDefault:"3318"`
	ImagesDir    string   `env:"IMAGES_DIR" envDefault:"images"`
	Sources      []string `env:"SET_SOURCES" envSeparator:"," envDefault:"dsa-keycaps,gmk-keycaps"`
	DatabaseURL  string   `env:"DATABASE_URL"`
	DatabaseType string   `env:"DATABASE_TYPE" envDefault:"sqlite"`
	Background   string   `env:"TOURNAMENT_BG" envDefault:"#f2f2f2"`
	Seed         uint64   `env:"TOURNAMENT_SEED"`
	IPHashSalt   string   `env:"IP_HASH_SALT"`
	VoteRate     float64  `env:"VOTE_RATE" envDefault:"5"`
	VoteBurst    int      `env:"VOTE_BURST" envDefault:"10"`
	Metrics      bool     `env:"METRICS_ENABLED" envDefault:"true"`
	FreezeDir    string   `env:"FREEZE_DIR"`
	S3Bucket     string   `env:"S3_BUCKET"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidColor reports whether s is a #rrggbb colour.
func ValidColor(s string) bool {
	return hexColor.MatchString(s)
}

// ParseFlags reads the environment, then lets flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("keycap-swiss", flag.ContinueOnError)

	// Network and content
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.ImagesDir, "i", cfg.ImagesDir, "Images root directory")
	sources := fs.String("sources", strings.Join(cfg.Sources, ","), "Comma-separated set source directories")

	// Match archive
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL (empty disables the archive)")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", cfg.IPHashSalt, "Salt for hashing voter addresses (prefer env)")

	// Tournament
	fs.StringVar(&cfg.Background, "bg", cfg.Background, "Initial page background colour")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Seed for the first-round shuffle (0 = time based)")
	fs.Float64Var(&cfg.VoteRate, "vote-rate", cfg.VoteRate, "Votes per second allowed per client")
	fs.IntVar(&cfg.VoteBurst, "vote-burst", cfg.VoteBurst, "Vote burst allowed per client")
	fs.BoolVar(&cfg.Metrics, "metrics", cfg.Metrics, "Expose /metrics")

	// Static export
	fs.StringVar(&cfg.FreezeDir, "freeze", cfg.FreezeDir, "Write a static copy of the site to this directory and exit")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "Publish the static copy to this S3 bucket")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Sources = splitList(*sources)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ImagesDir == "" {
		return errors.New("images directory required (use -i or IMAGES_DIR env)")
	}
	if len(c.Sources) == 0 {
		return errors.New("at least one set source required (use -sources or SET_SOURCES env)")
	}
	if c.DatabaseType != "sqlite" && c.DatabaseType != "postgres" {
		return fmt.Errorf("database type must be sqlite or postgres, got %q", c.DatabaseType)
	}
	if !ValidColor(c.Background) {
		return fmt.Errorf("background must be #rrggbb, got %q", c.Background)
	}
	if c.VoteRate <= 0 || c.VoteBurst < 1 {
		return errors.New("vote rate and burst must be positive")
	}
	if c.S3Bucket != "" && c.FreezeDir == "" {
		return errors.New("S3 publishing requires a freeze directory (use -freeze or FREEZE_DIR env)")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
