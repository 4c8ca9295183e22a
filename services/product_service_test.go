package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-cart/libs"
	"restaurant-cart/models"
	"restaurant-cart/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductStore struct {
	products    []models.Product
	ingredients map[string]models.Ingredient
	err         error
	lastPage    int
	lastLimit   int
}

func (f *fakeProductStore) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return []models.Category{{ID: "mains", Name: "Mains"}}, f.err
}

func (f *fakeProductStore) GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	f.lastPage, f.lastLimit = page, limit
	return f.products, len(f.products), f.err
}

func (f *fakeProductStore) GetActiveProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeProductStore) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repositories.ErrProductNotFound
}

func (f *fakeProductStore) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	out := []models.Ingredient{}
	for _, ing := range f.ingredients {
		out = append(out, ing)
	}
	return out, f.err
}

func (f *fakeProductStore) GetIngredientByID(ctx context.Context, id string) (*models.Ingredient, error) {
	ing, ok := f.ingredients[id]
	if !ok {
		return nil, repositories.ErrIngredientNotFound
	}
	return &ing, nil
}

func newCatalogService(store *fakeProductStore) *CatalogService {
	return NewCatalogService(store, nil, time.Minute, libs.NopLogger())
}

func TestCatalogServicePaginationDefaults(t *testing.T) {
	store := &fakeProductStore{products: []models.Product{burger, fries, salad}}
	svc := newCatalogService(store)

	resp, err := svc.GetAllProducts(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, store.lastPage)
	assert.Equal(t, 10, store.lastLimit)
	assert.Equal(t, 3, resp.Meta.TotalItems)
	assert.Equal(t, 1, resp.Meta.TotalPages)

	_, err = svc.GetAllProducts(context.Background(), 2, 500)
	require.NoError(t, err)
	assert.Equal(t, 100, store.lastLimit)
}

func TestCatalogServiceFetchProducts(t *testing.T) {
	svc := newCatalogService(&fakeProductStore{products: []models.Product{burger}})

	products, err := svc.FetchProducts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Product{burger}, products)
}

func TestCatalogServiceFetchProductsError(t *testing.T) {
	svc := newCatalogService(&fakeProductStore{err: errors.New("db down")})

	_, err := svc.FetchProducts(context.Background())

	assert.Error(t, err)
}

func TestResolveModificationsCopiesIngredientPrice(t *testing.T) {
	svc := newCatalogService(&fakeProductStore{ingredients: map[string]models.Ingredient{
		"cheese": {ID: "cheese", Name: "Cheese", Price: "2.00"},
		"onion":  {ID: "onion", Name: "Onion", Price: "1.00"},
	}})

	mods, err := svc.ResolveModifications(context.Background(), []models.ModificationRequest{
		{IngredientID: "cheese", Kind: models.ModificationExtra, Quantity: 2},
		{IngredientID: "onion", Kind: models.ModificationRemove, Quantity: 1},
	})

	require.NoError(t, err)
	require.Len(t, mods, 2)
	assert.Equal(t, "Cheese", mods[0].Ingredient.Name)
	assert.Equal(t, "2.00", mods[0].UnitPrice.StringFixed(2))
	assert.Equal(t, models.ModificationRemove, mods[1].Kind)

	base, _ := ParsePrice(burger.Price)
	assert.Equal(t, "25.90", CalculateCustomPrice(base, mods).StringFixed(2))
}

func TestResolveModificationsUnknownIngredient(t *testing.T) {
	svc := newCatalogService(&fakeProductStore{ingredients: map[string]models.Ingredient{}})

	_, err := svc.ResolveModifications(context.Background(), []models.ModificationRequest{
		{IngredientID: "truffle", Kind: models.ModificationAdd, Quantity: 1},
	})

	assert.ErrorIs(t, err, repositories.ErrIngredientNotFound)
}
