// Package cli implements the testspec command-line interface.
//
// # Commands
//
//   - generate: render a YAML test specification to Markdown, HTML or XLSX
//   - serve: run the HTTP render service
//   - cache: inspect and clear the artifact cache
//   - completion: print shell completion scripts
//
// # Configuration
//
// Settings are layered: command-line flags win over TESTSPEC_* environment
// variables, which win over the TOML config file, which wins over the
// built-in defaults.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. Status lines go to stderr so stdout can
// carry an artifact.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/testspec/pkg/buildinfo"
	"github.com/matzehuels/testspec/pkg/cache"
	"github.com/matzehuels/testspec/pkg/config"
	sterrors "github.com/matzehuels/testspec/pkg/errors"
	"github.com/matzehuels/testspec/pkg/observability"
	"github.com/matzehuels/testspec/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "testspec"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: &config.Config{},
	}
}

// SetLogLevel updates the logger's level. At debug level pipeline, cache
// and HTTP events are logged too.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		h := &logHooks{logger: c.Logger}
		observability.SetPipelineHooks(h)
		observability.SetCacheHooks(h)
		observability.SetHTTPHooks(h)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "testspec renders YAML test specifications",
		Long:         `testspec turns a four-level YAML test specification into a Markdown outline, an HTML page or an Excel test sheet with merged cells.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/testspec/config.toml)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads --config, TESTSPEC_CONFIG or the default path. Only an
// explicitly named file has to exist.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	if err := applyEnv(cmd.Flags()); err != nil {
		return err
	}
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil
		}
		path = p
	} else if _, err := os.Stat(path); err != nil {
		return sterrors.Wrap(sterrors.ErrCodeFileNotFound, err, "config %s", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.config = cfg
	c.Logger.Debug("loaded config", "path", path)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, noCache bool, keyer cache.Keyer) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache picks the artifact cache: none, redis or files under cacheDir.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.config.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	if url := c.config.Cache.RedisURL; url != "" {
		rc, err := cache.NewRedisCache(ctx, url)
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("using redis cache")
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/testspec/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
