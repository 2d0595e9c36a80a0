package app

import (
	apphttp "github.com/srstore/storefront-backend/internal/http"
	httpH "github.com/srstore/storefront-backend/internal/http/handlers"
	"github.com/srstore/storefront-backend/internal/pkg/logger"
	"github.com/srstore/storefront-backend/internal/services"
	"github.com/srstore/storefront-backend/internal/store"
)

type Services struct {
	Catalog services.CatalogService
	Cart    services.CartService
	Contact services.ContactService
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Catalog *httpH.CatalogHandler
	Cart    *httpH.CartHandler
	Contact *httpH.ContactHandler
}

func wireServices(st store.Store, log *logger.Logger) Services {
	log.Info("Wiring services...")
	return Services{
		Catalog: services.NewCatalogService(st, log),
		Cart:    services.NewCartService(st, log),
		Contact: services.NewContactService(st, log),
	}
}

func wireHandlers(log *logger.Logger, svcs Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(),
		Catalog: httpH.NewCatalogHandler(log, svcs.Catalog),
		Cart:    httpH.NewCartHandler(log, svcs.Cart),
		Contact: httpH.NewContactHandler(log, svcs.Contact),
	}
}

func wireServer(handlers Handlers, cfg Config) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		HealthHandler:  handlers.Health,
		CatalogHandler: handlers.Catalog,
		CartHandler:    handlers.Cart,
		ContactHandler: handlers.Contact,
		CORSOrigins:    cfg.CORSOrigins,
	})
}
