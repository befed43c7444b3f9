package app

import (
	"fmt"
	"os"
	"time"

	"hangar-go/internal/config"
	"hangar-go/internal/encryption"
	"hangar-go/internal/hangar"
	"hangar-go/internal/store"
)

// PassphraseReader supplies the encryption passphrase when the configured
// store is encrypted. The CLI passes a terminal prompt; tests pass a literal.
type PassphraseReader func() (string, error)

// App is the application layer between the CLI and the hangar service. It
// constructs all dependencies from config and manages the store lifecycle on
// Close.
type App struct {
	cfg     *config.Config
	store   hangar.Store
	service *hangar.Service
	logFile *os.File
}

// NewApp creates a fully wired App from the given config. operation
// identifies the CLI command being run (e.g. "Search", "AddToCollection") and
// tags every log line of this invocation. The caller must call Close when
// done.
func NewApp(cfg *config.Config, operation string, readPassphrase PassphraseReader) (*App, error) {
	st, err := store.NewStoreFromConfig(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	if cfg.Encryption.Enabled {
		enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
		if err != nil {
			closeStore(st)
			return nil, fmt.Errorf("creating encryptor: %w", err)
		}
		if !enc.IsConfigured() {
			closeStore(st)
			return nil, fmt.Errorf("encryption enabled but keys are missing: run `hangar config init` first")
		}

		passphrase, err := readPassphrase()
		if err != nil {
			closeStore(st)
			return nil, fmt.Errorf("reading passphrase: %w", err)
		}
		dec, err := enc.Unlock(passphrase)
		if err != nil {
			closeStore(st)
			return nil, fmt.Errorf("unlocking private key: %w", err)
		}
		st = store.NewEncryptedStore(st, enc, dec)
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	slogger, logFile, err := newLogger(cfg.LogDir, opID)
	if err != nil {
		closeStore(st)
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: slogger.With("op", operation)}

	clock := hangar.RealClock{}
	idgen := hangar.UUIDGenerator{}

	svc := hangar.NewService(
		hangar.NewCatalogRepository(st, logger),
		hangar.NewCollectionRepository(st, logger, clock, idgen),
		hangar.NewWishlistRepository(st, logger, clock, idgen),
		hangar.NewLocationRegistry(st, logger),
		logger,
	)

	if err := svc.EnsureInitialized(); err != nil {
		logFile.Close()
		closeStore(st)
		return nil, fmt.Errorf("initializing data: %w", err)
	}

	return &App{
		cfg:     cfg,
		store:   st,
		service: svc,
		logFile: logFile,
	}, nil
}

// Service returns the wired hangar service.
func (a *App) Service() *hangar.Service { return a.service }

// Config returns the config the app was built from.
func (a *App) Config() *config.Config { return a.cfg }

// Close releases the log file and any store resources (sqlite connection).
func (a *App) Close() error {
	var firstErr error
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			firstErr = err
		}
	}
	if err := closeStore(a.store); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// closeStore closes the store if its backend holds resources.
func closeStore(st hangar.Store) error {
	if c, ok := st.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
