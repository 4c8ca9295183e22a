package repositories

import (
	"context"
	"errors"
	"fmt"

	"restaurant-cart/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

const productColumns = `id, name, COALESCE(description, ''), price::text, COALESCE(image_url, ''),
	COALESCE(category_id, ''), is_featured, is_promotion`

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryID, &p.IsFeatured, &p.IsPromotion)
	return p, err
}

func (r *ProductRepository) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *ProductRepository) GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products WHERE is_active = true
	          ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

// GetActiveProducts returns the whole sellable catalog.
func (r *ProductRepository) GetActiveProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, `SELECT `+productColumns+` FROM products WHERE is_active = true ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	row := r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 AND is_active = true`, id)
	p, err := scanProduct(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	return &p, nil
}

func (r *ProductRepository) GetAllIngredients(ctx context.Context) ([]models.Ingredient, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, price::text FROM ingredients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []models.Ingredient{}
	for rows.Next() {
		var ing models.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Price); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *ProductRepository) GetIngredientByID(ctx context.Context, id string) (*models.Ingredient, error) {
	var ing models.Ingredient
	err := r.db.QueryRow(ctx, `SELECT id, name, price::text FROM ingredients WHERE id = $1`, id).
		Scan(&ing.ID, &ing.Name, &ing.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrIngredientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get ingredient %s: %w", id, err)
	}
	return &ing, nil
}
