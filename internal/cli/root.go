// Package cli implements the revstore command tree
package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/nainya/revstore/internal/config"
	"github.com/nainya/revstore/internal/logger"
	"github.com/nainya/revstore/internal/metrics"
	"github.com/nainya/revstore/internal/service"
	"github.com/nainya/revstore/pkg/diff"
	"github.com/nainya/revstore/pkg/revision"
	"github.com/nainya/revstore/pkg/storage"
)

var (
	cfgPath       string
	cfg           config.Config
	svc           *service.Service
	backendCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "revstore",
	Short: "Document revision storage and text diffing",
	Long: `Store ordered histories of document snapshots and compute
highlighted differences between any two of them.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

// Execute runs the command tree
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "revstore.toml", "Path to TOML configuration file")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger.InitGlobalLogger(logger.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})
	log := logger.GetGlobalLogger()

	var backend revision.Backend
	switch cfg.Storage.Backend {
	case "badger":
		b, err := storage.NewBadgerBackend(storage.BadgerConfig{
			Path:       cfg.Storage.BadgerPath,
			SyncWrites: true,
		})
		if err != nil {
			return err
		}
		backend = b
		backendCloser = b
	default:
		b, err := storage.NewFileBackend(cfg.Storage.Dir)
		if err != nil {
			return err
		}
		backend = b
	}

	engine := diff.NewEngine(cfg.Diff.MaxInputChars)
	store := revision.NewStore(backend, engine, log)
	svc = service.NewService(store, engine, log, metrics.NewMetrics())

	if cfg.Observability.Enabled {
		obs := service.NewObservabilityServer(cfg.Observability.Port, log)
		log.LogObservabilityStart(cfg.Observability.Port)
		go func() {
			if err := obs.Start(); err != nil {
				log.Error("Observability server stopped").Err(err).Send()
			}
		}()
	}

	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if backendCloser != nil {
		return backendCloser.Close()
	}
	return nil
}
