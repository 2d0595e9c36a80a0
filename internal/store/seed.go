package store

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/srstore/storefront-backend/internal/domain"
)

//go:embed seed/catalog.yaml
var seedCatalog []byte

type seedFile struct {
	Products []domain.ProductInput `yaml:"products"`
}

// Seed loads the sample catalog into the store. It is meant to run once
// at startup on an empty store; running it twice duplicates the
// catalog under fresh ids.
func (s *MemStore) Seed() error {
	var f seedFile
	if err := yaml.Unmarshal(seedCatalog, &f); err != nil {
		return fmt.Errorf("parse seed catalog: %w", err)
	}
	for _, in := range f.Products {
		p := s.CreateProduct(in)
		s.log.Debug("Seeded product", "product_id", p.ID, "name", p.Name)
	}
	s.log.Info("Seeded catalog", "products", len(f.Products))
	return nil
}
