package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"restaurant-cart/models"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type ProductStore interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, int, error)
	GetActiveProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	GetAllIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredientByID(ctx context.Context, id string) (*models.Ingredient, error)
}

// CatalogService serves catalog browsing. Paginated product lists are cached in
// Redis when a client is configured; a nil client disables caching.
type CatalogService struct {
	repo     ProductStore
	cache    *redis.Client
	cacheTTL time.Duration
	log      *logrus.Entry
}

func NewCatalogService(repo ProductStore, cache *redis.Client, cacheTTL time.Duration, log *logrus.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log.WithField("component", "catalog"),
	}
}

func productCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func (s *CatalogService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.GetAllCategories(ctx)
}

func (s *CatalogService) GetAllProducts(ctx context.Context, page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	key := productCacheKey(page, limit)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Bytes()
		if err == nil {
			var resp models.PaginationResponse
			if err := json.Unmarshal(cached, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	products, total, err := s.repo.GetAllProducts(ctx, page, limit)
	if err != nil {
		return nil, err
	}

	resp := &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		},
	}

	if s.cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, key, data, s.cacheTTL).Err(); err != nil {
				s.log.WithError(err).Warn("failed to cache product list")
			}
		}
	}
	return resp, nil
}

func (s *CatalogService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetProductByID(ctx, id)
}

func (s *CatalogService) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.repo.GetAllIngredients(ctx)
}

func (s *CatalogService) GetIngredientByID(ctx context.Context, id string) (*models.Ingredient, error) {
	return s.repo.GetIngredientByID(ctx, id)
}

// FetchProducts reads the whole active catalog straight from the store, bypassing
// the cache, so cart reconciliation always sees current data.
func (s *CatalogService) FetchProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetActiveProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return products, nil
}

// ResolveModifications turns modification requests into priced modifications,
// copying each ingredient's current price as the unit price.
func (s *CatalogService) ResolveModifications(ctx context.Context, reqs []models.ModificationRequest) ([]models.Modification, error) {
	mods := make([]models.Modification, 0, len(reqs))
	for _, req := range reqs {
		ing, err := s.repo.GetIngredientByID(ctx, req.IngredientID)
		if err != nil {
			return nil, err
		}
		price, err := ParsePrice(ing.Price)
		if err != nil {
			return nil, fmt.Errorf("ingredient %s: %w", ing.ID, err)
		}
		mods = append(mods, models.Modification{
			IngredientID: ing.ID,
			Ingredient:   *ing,
			Kind:         req.Kind,
			Quantity:     req.Quantity,
			UnitPrice:    price,
		})
	}
	return mods, nil
}
