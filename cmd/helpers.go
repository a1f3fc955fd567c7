package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/ziadkadry99/restohub/internal/cache"
	"github.com/ziadkadry99/restohub/internal/config"
	"github.com/ziadkadry99/restohub/internal/db"
	"github.com/ziadkadry99/restohub/internal/favorites"
	"github.com/ziadkadry99/restohub/internal/loader"
	"github.com/ziadkadry99/restohub/internal/pages"
	"github.com/ziadkadry99/restohub/internal/restaurant"
	"github.com/ziadkadry99/restohub/internal/view"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `restohub init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// app holds the wired components shared by the commands.
type app struct {
	cfg       *config.Config
	db        *db.DB
	caches    *cache.Storage
	favorites *favorites.Store
	loader    *loader.Loader
	pages     *pages.Pages
}

// openApp loads the config, opens the database and wires the loader and
// pages on top of it. Callers must Close the returned app.
func openApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	client := restaurant.NewClient(cfg.APIBaseURL, cfg.ImageBaseURL, cfg.RequestTimeout())
	renderer, err := view.New(client, cfg.ImageSize)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	// Diagnostics go to stderr so stdout stays clean for `view` and MCP.
	logger := log.New(os.Stderr, "", log.LstdFlags)

	caches := cache.NewStorage(database)
	favs := favorites.NewStore(database)
	l := loader.New(caches, client, renderer, loader.Options{
		ListCache:   cfg.ListCache,
		DetailCache: cfg.DetailCache,
		Logger:      logger,
	})

	return &app{
		cfg:       cfg,
		db:        database,
		caches:    caches,
		favorites: favs,
		loader:    l,
		pages:     pages.New(l, favs, renderer),
	}, nil
}

func (a *app) Close() error { return a.db.Close() }
