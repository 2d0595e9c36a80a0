package app

import (
	"strings"

	"github.com/srstore/storefront-backend/internal/pkg/logger"
	"github.com/srstore/storefront-backend/internal/utils"
)

type Config struct {
	Port        int
	SeedCatalog bool
	CORSOrigins []string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnvAsInt("PORT", 8080, log)
	seedCatalog := utils.GetEnvAsBool("SEED_CATALOG", true, log)

	var origins []string
	if raw := utils.GetEnv("CORS_ORIGINS", "", log); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return Config{
		Port:        port,
		SeedCatalog: seedCatalog,
		CORSOrigins: origins,
	}
}
