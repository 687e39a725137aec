package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var categoryColumns = []string{"id", "name", "color", "icon", "image"}

func (r *postgresRepo) ListCategories(ctx context.Context) ([]entities.Category, error) {
	query, args := r.qb.Select(categoryColumns...).
		From("categories").
		OrderBy("name").
		MustSql()

	var rows []Category
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}

	result := make([]entities.Category, 0, len(rows))
	for _, c := range rows {
		result = append(result, CategoryToEntity(c))
	}
	return result, nil
}

func (r *postgresRepo) GetCategory(ctx context.Context, id string) (entities.Category, error) {
	query, args := r.qb.Select(categoryColumns...).
		From("categories").
		Where(sq.Eq{"id": id}).
		MustSql()

	var c Category
	err := r.getContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to get category: %w", err)
	}
	return CategoryToEntity(c), nil
}

func (r *postgresRepo) CategoryExists(ctx context.Context, id string) (bool, error) {
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("categories").
		Where(sq.Eq{"id": id}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := r.getContext(ctx, &exists, query, args...); err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return exists, nil
}

func (r *postgresRepo) CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	c.ID = uuid.NewString()

	query, args := r.qb.Insert("categories").
		Columns(categoryColumns...).
		Values(c.ID, c.Name, nullString(c.Color), nullString(c.Icon), nullString(c.Image)).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}
	return c, nil
}

func (r *postgresRepo) UpdateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	query, args := r.qb.Update("categories").
		Set("name", c.Name).
		Set("color", nullString(c.Color)).
		Set("icon", nullString(c.Icon)).
		Set("image", nullString(c.Image)).
		Where(sq.Eq{"id": c.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return entities.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	if !ok {
		return entities.Category{}, entities.ErrCategoryNotFound
	}
	return c, nil
}

func (r *postgresRepo) DeleteCategory(ctx context.Context, id string) error {
	query, args := r.qb.Delete("categories").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if !ok {
		return entities.ErrCategoryNotFound
	}
	return nil
}
