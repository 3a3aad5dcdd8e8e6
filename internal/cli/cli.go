package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/docxwrap/docxwrap/internal/config"
	"github.com/docxwrap/docxwrap/pkg/buildinfo"
	"github.com/docxwrap/docxwrap/pkg/cache"
	"github.com/docxwrap/docxwrap/pkg/pdf"
	"github.com/docxwrap/docxwrap/pkg/pipeline"
	"github.com/docxwrap/docxwrap/pkg/svg"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "docxwrap"

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
	Config config.Config
}

// New creates a new CLI instance with a default logger and the user's
// configuration file applied (defaults when the file is absent or broken).
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}

	cfg, err := config.Load()
	if err != nil {
		c.Logger.Warn("ignoring config file", "error", err)
		cfg = config.Default()
	}
	c.Config = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself performs the conversion.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.convertCommand()
	root.Version = buildinfo.Version
	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a conversion runner for CLI use.
func (c *CLI) newRunner(noCache bool, extractorBinary string) *pipeline.Runner {
	if extractorBinary == "" {
		extractorBinary = c.Config.Extractor
	}
	extractor := pdf.NewExtractor(extractorBinary)
	renderer := svg.NewRenderer(c.newCache(noCache))
	if days := c.Config.CacheTTLDays; days > 0 {
		renderer.SetCacheTTL(time.Duration(days) * 24 * time.Hour)
	}
	return pipeline.NewRunner(extractor, renderer, c.Logger)
}

func (c *CLI) newCache(noCache bool) cache.Cache {
	if noCache || c.Config.NoCache {
		return cache.NewNullCache()
	}
	dir := c.Config.CacheDir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache()
		}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/docxwrap/).
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
