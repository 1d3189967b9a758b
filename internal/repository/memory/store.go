package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sit722-devops/week09/internal/domain/models"
	"github.com/sit722-devops/week09/internal/repository"
)

// Store keeps products in process memory. It is the default backend for the
// development server and the one tests run against.
type Store struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]models.Product
	now   func() time.Time
}

// NewStore creates an empty in-memory product store.
func NewStore() *Store {
	return &Store{
		items: make(map[int64]models.Product),
		now:   time.Now,
	}
}

// ListProducts returns every product ordered by ascending ID. The slice is
// never nil, so it always serializes as a JSON array.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.items))
	for _, p := range s.items {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// CreateProduct assigns the next sequential ID, stamps both timestamps and
// stores the product.
func (s *Store) CreateProduct(ctx context.Context, req models.NewProduct) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	now := models.Timestamp{Time: s.now().UTC()}
	p := models.Product{
		ID:          s.seq,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.items[p.ID] = p
	return p, nil
}

// DeleteProduct removes the product or reports repository.ErrNotFound.
func (s *Store) DeleteProduct(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.items, id)
	return nil
}
