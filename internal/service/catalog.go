package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/pkg/media"
)

type CatalogRepo interface {
	ListCategories(ctx context.Context) ([]entities.Category, error)
	GetCategory(ctx context.Context, id string) (entities.Category, error)
	CategoryExists(ctx context.Context, id string) (bool, error)
	CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	UpdateCategory(ctx context.Context, c entities.Category) (entities.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error)
	FeaturedProducts(ctx context.Context, limit int) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProductImages(ctx context.Context, id string, images []string) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	CountProducts(ctx context.Context) (int, error)
}

type ImageStore interface {
	Save(r io.Reader) (string, error)
	Delete(url string) error
}

type catalogService struct {
	logger *slog.Logger
	repo   CatalogRepo
	images ImageStore
}

func NewCatalogService(logger *slog.Logger, repo CatalogRepo, images ImageStore) *catalogService {
	return &catalogService{
		logger: logger.With(slog.String("service", "catalog")),
		repo:   repo,
		images: images,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]entities.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *catalogService) GetCategory(ctx context.Context, id string) (entities.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *catalogService) CreateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	return s.repo.CreateCategory(ctx, c)
}

func (s *catalogService) UpdateCategory(ctx context.Context, c entities.Category) (entities.Category, error) {
	return s.repo.UpdateCategory(ctx, c)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *catalogService) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]entities.Product, error) {
	return s.repo.ListProducts(ctx, filter)
}

func (s *catalogService) FeaturedProducts(ctx context.Context, limit int) ([]entities.Product, error) {
	return s.repo.FeaturedProducts(ctx, limit)
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *catalogService) CountProducts(ctx context.Context) (int, error) {
	return s.repo.CountProducts(ctx)
}

// CreateProduct checks the category before storing the image or the product.
func (s *catalogService) CreateProduct(ctx context.Context, p entities.Product, image io.Reader) (entities.Product, error) {
	if err := s.checkCategory(ctx, p.CategoryID); err != nil {
		return entities.Product{}, err
	}

	url, err := s.saveImage(image)
	if err != nil {
		return entities.Product{}, err
	}
	p.Image = url

	created, err := s.repo.CreateProduct(ctx, p)
	if err != nil {
		s.discardImages(url)
		return entities.Product{}, err
	}
	return created, nil
}

// UpdateProduct replaces the image only when a new one is given.
func (s *catalogService) UpdateProduct(ctx context.Context, p entities.Product, image io.Reader) (entities.Product, error) {
	if err := s.checkCategory(ctx, p.CategoryID); err != nil {
		return entities.Product{}, err
	}
	if _, err := s.repo.GetProduct(ctx, p.ID); err != nil {
		return entities.Product{}, err
	}

	p.Image = ""
	if image != nil {
		url, err := s.saveImage(image)
		if err != nil {
			return entities.Product{}, err
		}
		p.Image = url
	}

	updated, err := s.repo.UpdateProduct(ctx, p)
	if err != nil {
		if p.Image != "" {
			s.discardImages(p.Image)
		}
		return entities.Product{}, err
	}
	return updated, nil
}

func (s *catalogService) UpdateGallery(ctx context.Context, id string, images []io.Reader) (entities.Product, error) {
	if _, err := s.repo.GetProduct(ctx, id); err != nil {
		return entities.Product{}, err
	}

	urls := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.saveImage(img)
		if err != nil {
			s.discardImages(urls...)
			return entities.Product{}, err
		}
		urls = append(urls, url)
	}

	product, err := s.repo.UpdateProductImages(ctx, id, urls)
	if err != nil {
		s.discardImages(urls...)
		return entities.Product{}, err
	}
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *catalogService) checkCategory(ctx context.Context, id string) error {
	exists, err := s.repo.CategoryExists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return entities.ErrCategoryNotFound
	}
	return nil
}

// discardImages removes uploads that no product references.
func (s *catalogService) discardImages(urls ...string) {
	for _, url := range urls {
		if err := s.images.Delete(url); err != nil {
			s.logger.Error("failed to discard image", slog.String("url", url), slog.Any("error", err))
		}
	}
}

func (s *catalogService) saveImage(r io.Reader) (string, error) {
	url, err := s.images.Save(r)
	if errors.Is(err, media.ErrUnsupportedType) {
		return "", fmt.Errorf("%w: only png and jpeg images are allowed", entities.ErrUnsupportedMedia)
	}
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	return url, nil
}
