package main

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/filestorage/cmd/fstore/config"
	loggerconfig "github.com/nspcc-dev/filestorage/cmd/fstore/config/logger"
	metricsconfig "github.com/nspcc-dev/filestorage/cmd/fstore/config/metrics"
	storageconfig "github.com/nspcc-dev/filestorage/cmd/fstore/config/storage"
	"github.com/nspcc-dev/filestorage/cmd/internal/cmderr"
	"github.com/nspcc-dev/filestorage/misc"
	"github.com/nspcc-dev/filestorage/pkg/metrics"
	"github.com/nspcc-dev/filestorage/pkg/storage/common"
	"github.com/nspcc-dev/filestorage/pkg/storage/filestorage"
	"github.com/nspcc-dev/filestorage/pkg/util/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exitCodeNotFound is returned when the requested object is missing.
const exitCodeNotFound = 2

var errNoStoragePath = errors.New("storage path is not set, use --path flag or storage.path config value")

type app struct {
	cfgPath  string
	rootPath string

	cfg      *config.Config
	log      *zap.Logger
	storage  *filestorage.FileStorage
	registry *prometheus.Registry
	textfile string
}

// loadConfig reads config file and creates the logger.
func (a *app) loadConfig() error {
	var err error

	a.cfg, err = config.New(a.cfgPath)
	if err != nil {
		return err
	}

	var prm logger.Prm

	err = prm.SetLevelString(loggerconfig.Level(a.cfg))
	if err != nil {
		return fmt.Errorf("invalid logger level: %w", err)
	}
	err = prm.SetEncoding(loggerconfig.Encoding(a.cfg))
	if err != nil {
		return err
	}

	a.log, err = logger.NewLogger(&prm)
	if err != nil {
		return fmt.Errorf("can't create logger: %w", err)
	}
	return nil
}

// storagePath returns storage root from the flag or config.
func (a *app) storagePath() (string, error) {
	if a.rootPath != "" {
		return a.rootPath, nil
	}
	return storageconfig.Path(a.cfg)
}

func (a *app) openStorage(readOnly bool) error {
	root, err := a.storagePath()
	if err != nil {
		return fmt.Errorf("invalid storage path: %w", err)
	}
	if root == "" {
		return errNoStoragePath
	}

	a.textfile, err = metricsconfig.Textfile(a.cfg)
	if err != nil {
		return fmt.Errorf("invalid metrics textfile: %w", err)
	}
	a.registry = prometheus.NewRegistry()

	a.storage = filestorage.New(
		filestorage.WithPath(root),
		filestorage.WithPerm(storageconfig.Perm(a.cfg)),
		filestorage.WithMinCompressSize(storageconfig.MinCompressSize(a.cfg)),
		filestorage.WithNoSync(storageconfig.NoSync(a.cfg)),
		filestorage.WithChecksum(storageconfig.Checksum(a.cfg)),
		filestorage.WithDedupHash(storageconfig.DedupHash(a.cfg)),
		filestorage.WithLogger(a.log),
		filestorage.WithMetrics(metrics.NewStorageMetrics(a.registry, misc.Version)),
	)

	err = a.storage.Open(readOnly)
	if err != nil {
		return fmt.Errorf("can't open storage: %w", err)
	}
	err = a.storage.Init()
	if err != nil {
		return fmt.Errorf("can't init storage: %w", err)
	}
	return nil
}

func (a *app) close() error {
	var errs []error

	if a.storage != nil {
		if err := a.storage.Close(); err != nil {
			errs = append(errs, fmt.Errorf("can't close storage: %w", err))
		}
	}
	if a.textfile != "" {
		if err := prometheus.WriteToTextfile(a.textfile, a.registry); err != nil {
			errs = append(errs, fmt.Errorf("can't write metrics: %w", err))
		}
	}
	if a.log != nil {
		_ = a.log.Sync()
	}

	return errors.Join(errs...)
}

// withStorage wraps command handler with storage opening and closing.
func (a *app) withStorage(readOnly bool, fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			err = errors.Join(err, a.close())
			if errors.Is(err, common.ErrNotFound) {
				err = cmderr.ExitErr{Code: exitCodeNotFound, Cause: err}
			}
		}()

		err = a.loadConfig()
		if err != nil {
			return err
		}
		err = a.openStorage(readOnly)
		if err != nil {
			return err
		}
		return fn(cmd, args)
	}
}
