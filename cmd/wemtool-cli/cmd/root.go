package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"wemtool/internal/application"
	"wemtool/internal/config"
	"wemtool/internal/di"
	"wemtool/internal/logging"
)

var (
	configPath  string
	mappingPath string
	logLevel    string
	logFormat   string
	workers     int

	cfg       *config.Config
	logger    *slog.Logger
	container *do.RootScope
)

var rootCmd = &cobra.Command{
	Use:   "wemtool-cli",
	Short: "Rename game audio between media IDs and debug names",
	Long: `wemtool-cli maps the opaque MediaPathName of every .wem asset to the
DebugName recovered from exported metadata, and copies asset trees between
the two naming schemes.

Typical workflow:
  wemtool-cli scan ./Exports/Events
  wemtool-cli unobfuscate ./Content/Media ./Named
  wemtool-cli obfuscate ./Named ./Content/Media`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if mappingPath != "" {
			loaded.MappingPath = mappingPath
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		if logFormat != "" {
			loaded.LogFormat = logFormat
		}
		if workers > 0 {
			loaded.Workers = workers
		}
		cfg = &loaded

		logger = logging.New(logging.Config{
			Format: cfg.LogFormat,
			Level:  logging.ParseLevel(cfg.LogLevel),
		})
		container = di.NewContainer(cfg, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		shutdown()
	},
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// PersistentPostRun is skipped when RunE fails
		shutdown()
		fmt.Fprintln(os.Stderr, explain(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.Path(), "path to the TOML config file")
	rootCmd.PersistentFlags().StringVarP(&mappingPath, "mapping", "m", "", "path to the mapping JSON (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "copy workers (default 2 x CPUs)")
}

func shutdown() {
	if container == nil {
		return
	}
	if err := container.Shutdown(); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	container = nil
}

// explain turns well-known failures into an actionable message
func explain(err error) string {
	switch {
	case errors.Is(err, application.ErrMappingNotFound):
		return fmt.Sprintf("%v\nrun `wemtool-cli scan <metadata-dir>` first", err)
	case errors.Is(err, application.ErrIndexEmpty):
		return fmt.Sprintf("%v\nrun `wemtool-cli index` first", err)
	default:
		return err.Error()
	}
}
