package app

import (
	"fmt"

	apphttp "github.com/srstore/storefront-backend/internal/http"
	"github.com/srstore/storefront-backend/internal/pkg/logger"
	"github.com/srstore/storefront-backend/internal/store"
	"github.com/srstore/storefront-backend/internal/utils"
)

type App struct {
	Log      *logger.Logger
	Store    *store.MemStore
	Server   *apphttp.Server
	Cfg      Config
	Services Services
}

func New() (*App, error) {
	// The logger does not exist yet, so this one lookup runs unlogged.
	logMode := utils.GetEnv("LOG_MODE", "development", nil)
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	st := store.NewMemStore(log)
	if cfg.SeedCatalog {
		if err := st.Seed(); err != nil {
			log.Sync()
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	serviceset := wireServices(st, log)
	handlerset := wireHandlers(log, serviceset)
	server := wireServer(handlerset, cfg)

	return &App{
		Log:      log,
		Store:    st,
		Server:   server,
		Cfg:      cfg,
		Services: serviceset,
	}, nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Server.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
