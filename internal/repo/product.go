package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var productColumns = []string{
	"p.id", "p.name", "p.description", "p.rich_description", "p.image", "p.images",
	"p.brand", "p.price", "p.category_id", "p.count_in_stock", "p.rating",
	"p.num_reviews", "p.is_featured", "p.date_created",
}

var joinedCategoryColumns = []string{
	"c.id AS cat_id", "c.name AS cat_name", "c.color AS cat_color",
	"c.icon AS cat_icon", "c.image AS cat_image",
}

func (r *postgresRepo) productsQuery() sq.SelectBuilder {
	return r.qb.Select(append(append([]string{}, productColumns...), joinedCategoryColumns...)...).
		From("products p").
		LeftJoin("categories c ON c.id = p.category_id")
}

func (r *postgresRepo) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	q := r.productsQuery().OrderBy("p.date_created DESC")
	if len(filter.CategoryIDs) > 0 {
		q = q.Where(sq.Eq{"p.category_id": filter.CategoryIDs})
	}
	return r.selectProducts(ctx, q)
}

func (r *postgresRepo) FeaturedProducts(ctx context.Context, limit int) ([]entities.Product, error) {
	q := r.productsQuery().
		Where(sq.Eq{"p.is_featured": true}).
		OrderBy("p.date_created DESC").
		Limit(uint64(limit))
	return r.selectProducts(ctx, q)
}

func (r *postgresRepo) selectProducts(ctx context.Context, q sq.SelectBuilder) ([]entities.Product, error) {
	query, args := q.MustSql()

	var rows []ProductWithCategory
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(rows))
	for _, p := range rows {
		result = append(result, ProductWithCategoryToEntity(p))
	}
	return result, nil
}

func (r *postgresRepo) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	query, args := r.productsQuery().
		Where(sq.Eq{"p.id": id}).
		MustSql()

	var p ProductWithCategory
	err := r.getContext(ctx, &p, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductWithCategoryToEntity(p), nil
}

// GetProductPrice returns the current price of a product.
func (r *postgresRepo) GetProductPrice(ctx context.Context, id string) (decimal.Decimal, error) {
	query, args := r.qb.Select("price").
		From("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	var price decimal.Decimal
	err := r.getContext(ctx, &price, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, entities.ErrProductNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get product price: %w", err)
	}
	return price, nil
}

// MissingProducts returns the ids from the input that have no product.
func (r *postgresRepo) MissingProducts(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args := r.qb.Select("id").
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var found []string
	if err := r.selectContext(ctx, &found, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	existing := make(map[string]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *postgresRepo) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = uuid.NewString()
	p.DateCreated = time.Now().UTC()
	if p.Images == nil {
		p.Images = []string{}
	}

	query, args := r.qb.Insert("products").
		Columns(
			"id", "name", "description", "rich_description", "image", "images",
			"brand", "price", "category_id", "count_in_stock", "rating",
			"num_reviews", "is_featured", "date_created",
		).
		Values(
			p.ID, p.Name, p.Description, nullString(p.RichDescription), nullString(p.Image), stringArray(p.Images),
			nullString(p.Brand), p.Price, p.CategoryID, p.CountInStock, p.Rating,
			p.NumReviews, p.IsFeatured, p.DateCreated,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return p, nil
}

// UpdateProduct overwrites the editable fields. An empty Image keeps the current one.
func (r *postgresRepo) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	q := r.qb.Update("products").
		Set("name", p.Name).
		Set("description", p.Description).
		Set("rich_description", nullString(p.RichDescription)).
		Set("brand", nullString(p.Brand)).
		Set("price", p.Price).
		Set("category_id", p.CategoryID).
		Set("count_in_stock", p.CountInStock).
		Set("rating", p.Rating).
		Set("num_reviews", p.NumReviews).
		Set("is_featured", p.IsFeatured).
		Where(sq.Eq{"id": p.ID})
	if p.Image != "" {
		q = q.Set("image", p.Image)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return r.GetProduct(ctx, p.ID)
}

func (r *postgresRepo) UpdateProductImages(ctx context.Context, id string, images []string) (entities.Product, error) {
	query, args := r.qb.Update("products").
		Set("images", stringArray(images)).
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product images: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to update product images: %w", err)
	}
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return r.GetProduct(ctx, id)
}

func (r *postgresRepo) DeleteProduct(ctx context.Context, id string) error {
	query, args := r.qb.Delete("products").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !ok {
		return entities.ErrProductNotFound
	}
	return nil
}

func (r *postgresRepo) CountProducts(ctx context.Context) (int, error) {
	query, args := r.qb.Select("COUNT(*)").From("products").MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// productsByIDs loads products with their categories keyed by id.
func (r *postgresRepo) productsByIDs(ctx context.Context, ids []string) (map[string]entities.Product, error) {
	result := make(map[string]entities.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	products, err := r.selectProducts(ctx, r.productsQuery().Where(sq.Eq{"p.id": ids}))
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}
