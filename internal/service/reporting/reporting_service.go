package reporting

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sit722-devops/week09/internal/domain/models"
)

// Snapshot provides the most recently fetched product list. The catalog
// browser satisfies it.
type Snapshot interface {
	Products() []models.Product
}

// Service exposes lightweight analytics over the fetched catalog.
type Service struct {
	catalog Snapshot
	logger  *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(catalog Snapshot, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, logger: logger}
}

// CatalogSummary aggregates the snapshot into counts and inventory value and
// returns a formatted string.
func (s *Service) CatalogSummary() string {
	products := s.catalog.Products()
	if len(products) == 0 {
		return "Catalog summary: no products fetched yet."
	}

	var units int
	var value float64
	for _, p := range products {
		units += p.Stock
		value += p.Price * float64(p.Stock)
	}

	return fmt.Sprintf("Catalog summary: %d products, %d units in stock, inventory value $%.2f.", len(products), units, value)
}

// PricingSummary reports the average unit price and the cheapest and
// priciest products in the snapshot.
func (s *Service) PricingSummary() string {
	products := s.catalog.Products()
	if len(products) == 0 {
		return "Pricing: awaiting data."
	}

	var total float64
	cheapest, priciest := products[0], products[0]
	for _, p := range products {
		total += p.Price
		if p.Price < cheapest.Price {
			cheapest = p
		}
		if p.Price > priciest.Price {
			priciest = p
		}
	}
	average := total / float64(len(products))

	return fmt.Sprintf("Pricing: average $%.2f, cheapest %q at $%.2f, priciest %q at $%.2f.",
		average, cheapest.Name, cheapest.Price, priciest.Name, priciest.Price)
}

// StockAlerts lists products whose stock quantity dropped to zero.
func (s *Service) StockAlerts() string {
	products := s.catalog.Products()
	if len(products) == 0 {
		return "Stock alerts: awaiting data."
	}

	var out []string
	for _, p := range products {
		if p.Stock > 0 {
			continue
		}
		out = append(out, fmt.Sprintf("%s (ID: %d)", p.Name, p.ID))
	}

	if len(out) == 0 {
		return "Stock alerts: none."
	}

	s.logger.Debug("products out of stock", zap.Int("count", len(out)))
	return fmt.Sprintf("Stock alerts: %d out of stock: %s.", len(out), strings.Join(out, ", "))
}
