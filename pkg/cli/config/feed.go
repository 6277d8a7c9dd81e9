package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/reliefops/kestrel/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Feed holds upstream feed configuration
type Feed struct {
	BaseURL       string
	PollInterval  time.Duration
	Limit         int
	TypeTablePath string
}

// Flags returns CLI flags for Feed configuration
func (f *Feed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "feed-url",
			Usage:       "Base URL of the upstream emergency backend",
			Category:    "Feed",
			Required:    true,
			Sources:     cli.EnvVars("KESTREL_FEED_URL"),
			Destination: &f.BaseURL,
		},
		&cli.DurationFlag{
			Name:        "poll-interval",
			Usage:       "Feed poll interval",
			Category:    "Feed",
			Value:       4 * time.Second,
			Sources:     cli.EnvVars("KESTREL_POLL_INTERVAL"),
			Destination: &f.PollInterval,
		},
		&cli.IntFlag{
			Name:        "feed-limit",
			Usage:       "Maximum number of event records per poll (upstream caps at 500)",
			Category:    "Feed",
			Value:       300,
			Sources:     cli.EnvVars("KESTREL_FEED_LIMIT"),
			Destination: &f.Limit,
		},
		&cli.StringFlag{
			Name:        "type-table",
			Usage:       "Path to a YAML category mapping table (built-in table when unset)",
			Category:    "Feed",
			Sources:     cli.EnvVars("KESTREL_TYPE_TABLE"),
			Destination: &f.TypeTablePath,
		},
	}
}

// Validate validates the feed configuration
func (f *Feed) Validate() error {
	if f.BaseURL == "" {
		return goerr.New("feed URL is required")
	}
	if f.PollInterval <= 0 {
		return goerr.New("poll interval must be positive",
			goerr.V("interval", f.PollInterval))
	}
	if f.Limit <= 0 || f.Limit > 500 {
		return goerr.New("feed limit must be within 1-500",
			goerr.V("limit", f.Limit))
	}
	return nil
}

// TypeTable loads the category mapping table from the configured YAML
// file, or returns the built-in default when no path is set
func (f *Feed) TypeTable() (*model.TypeTable, error) {
	if f.TypeTablePath == "" {
		return model.DefaultTypeTable(), nil
	}

	data, err := os.ReadFile(f.TypeTablePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read type table file",
			goerr.V("path", f.TypeTablePath))
	}

	var table model.TypeTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, goerr.Wrap(err, "failed to parse type table YAML",
			goerr.V("path", f.TypeTablePath))
	}

	if err := table.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid type table",
			goerr.V("path", f.TypeTablePath))
	}

	return &table, nil
}

// LogValue returns structured log value
func (f Feed) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("baseURL", f.BaseURL),
		slog.Duration("pollInterval", f.PollInterval),
		slog.Int("limit", f.Limit),
		slog.String("typeTable", f.TypeTablePath),
	)
}
