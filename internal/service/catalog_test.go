package service_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"
	"github.com/SergeyBogomolovv/eshop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/eshop-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/eshop-service/pkg/media"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	type MockBehavior func(repo *mocks.MockCatalogRepo, images *mocks.MockImageStore)

	product := entities.Product{Name: "Phone", Price: decimal.NewFromInt(100), CategoryID: "c1", CountInStock: 5}

	testCases := []struct {
		name         string
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name: "OK",
			mockBehavior: func(repo *mocks.MockCatalogRepo, images *mocks.MockImageStore) {
				repo.EXPECT().CategoryExists(mock.Anything, "c1").Return(true, nil).Once()
				images.EXPECT().Save(mock.Anything).Return("http://localhost/public/uploads/a.png", nil).Once()
				repo.EXPECT().
					CreateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool {
						return p.Image == "http://localhost/public/uploads/a.png" && p.Name == "Phone"
					})).
					RunAndReturn(func(_ context.Context, p entities.Product) (entities.Product, error) {
						p.ID = "p1"
						return p, nil
					}).Once()
			},
		},
		{
			name: "unknown category stores nothing",
			mockBehavior: func(repo *mocks.MockCatalogRepo, _ *mocks.MockImageStore) {
				repo.EXPECT().CategoryExists(mock.Anything, "c1").Return(false, nil).Once()
			},
			wantErr: entities.ErrCategoryNotFound,
		},
		{
			name: "unsupported image",
			mockBehavior: func(repo *mocks.MockCatalogRepo, images *mocks.MockImageStore) {
				repo.EXPECT().CategoryExists(mock.Anything, "c1").Return(true, nil).Once()
				images.EXPECT().Save(mock.Anything).Return("", media.ErrUnsupportedType).Once()
			},
			wantErr: entities.ErrUnsupportedMedia,
		},
		{
			name: "repo fails removes saved image",
			mockBehavior: func(repo *mocks.MockCatalogRepo, images *mocks.MockImageStore) {
				repo.EXPECT().CategoryExists(mock.Anything, "c1").Return(true, nil).Once()
				images.EXPECT().Save(mock.Anything).Return("http://localhost/public/uploads/a.png", nil).Once()
				repo.EXPECT().CreateProduct(mock.Anything, mock.Anything).Return(entities.Product{}, assert.AnError).Once()
				images.EXPECT().Delete("http://localhost/public/uploads/a.png").Return(nil).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			images := mocks.NewMockImageStore(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			tc.mockBehavior(repo, images)

			svc := service.NewCatalogService(logger, repo, images)
			got, err := svc.CreateProduct(context.Background(), product, strings.NewReader("img"))

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "p1", got.ID)
		})
	}
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	images := mocks.NewMockImageStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewCatalogService(logger, repo, images)

	t.Run("keeps image when none given", func(t *testing.T) {
		repo.EXPECT().CategoryExists(mock.Anything, "c1").Return(true, nil).Once()
		repo.EXPECT().GetProduct(mock.Anything, "p1").Return(entities.Product{ID: "p1", Image: "old.png"}, nil).Once()
		repo.EXPECT().
			UpdateProduct(mock.Anything, mock.MatchedBy(func(p entities.Product) bool { return p.Image == "" })).
			Return(entities.Product{ID: "p1", Image: "old.png"}, nil).Once()

		got, err := svc.UpdateProduct(context.Background(), entities.Product{ID: "p1", CategoryID: "c1"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "old.png", got.Image)
	})

	t.Run("product not found", func(t *testing.T) {
		repo.EXPECT().CategoryExists(mock.Anything, "c1").Return(true, nil).Once()
		repo.EXPECT().GetProduct(mock.Anything, "p2").Return(entities.Product{}, entities.ErrProductNotFound).Once()

		_, err := svc.UpdateProduct(context.Background(), entities.Product{ID: "p2", CategoryID: "c1"}, strings.NewReader("img"))
		assert.ErrorIs(t, err, entities.ErrProductNotFound)
	})

	t.Run("repo fails removes new image", func(t *testing.T) {
		repo.EXPECT().CategoryExists(mock.Anything, "c1").Return(true, nil).Once()
		repo.EXPECT().GetProduct(mock.Anything, "p3").Return(entities.Product{ID: "p3"}, nil).Once()
		images.EXPECT().Save(mock.Anything).Return("new.png", nil).Once()
		repo.EXPECT().UpdateProduct(mock.Anything, mock.Anything).Return(entities.Product{}, assert.AnError).Once()
		images.EXPECT().Delete("new.png").Return(nil).Once()

		_, err := svc.UpdateProduct(context.Background(), entities.Product{ID: "p3", CategoryID: "c1"}, strings.NewReader("img"))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestCatalogService_UpdateGallery(t *testing.T) {
	repo := mocks.NewMockCatalogRepo(t)
	images := mocks.NewMockImageStore(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewCatalogService(logger, repo, images)

	repo.EXPECT().GetProduct(mock.Anything, "p1").Return(entities.Product{ID: "p1"}, nil).Once()
	images.EXPECT().Save(mock.Anything).Return("a.png", nil).Once()
	images.EXPECT().Save(mock.Anything).Return("b.jpg", nil).Once()
	repo.EXPECT().UpdateProductImages(mock.Anything, "p1", []string{"a.png", "b.jpg"}).
		Return(entities.Product{ID: "p1", Images: []string{"a.png", "b.jpg"}}, nil).Once()

	got, err := svc.UpdateGallery(context.Background(), "p1", []io.Reader{strings.NewReader("a"), strings.NewReader("b")})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png", "b.jpg"}, got.Images)
}

func TestCatalogService_UpdateGallery_Cleanup(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(repo *mocks.MockCatalogRepo, images *mocks.MockImageStore)
		wantErr      error
	}{
		{
			name: "rejected image removes earlier ones",
			mockBehavior: func(repo *mocks.MockCatalogRepo, images *mocks.MockImageStore) {
				repo.EXPECT().GetProduct(mock.Anything, "p1").Return(entities.Product{ID: "p1"}, nil).Once()
				images.EXPECT().Save(mock.Anything).Return("a.png", nil).Once()
				images.EXPECT().Save(mock.Anything).Return("", media.ErrUnsupportedType).Once()
				images.EXPECT().Delete("a.png").Return(nil).Once()
			},
			wantErr: entities.ErrUnsupportedMedia,
		},
		{
			name: "repo fails removes all",
			mockBehavior: func(repo *mocks.MockCatalogRepo, images *mocks.MockImageStore) {
				repo.EXPECT().GetProduct(mock.Anything, "p1").Return(entities.Product{ID: "p1"}, nil).Once()
				images.EXPECT().Save(mock.Anything).Return("a.png", nil).Once()
				images.EXPECT().Save(mock.Anything).Return("b.jpg", nil).Once()
				repo.EXPECT().UpdateProductImages(mock.Anything, "p1", []string{"a.png", "b.jpg"}).
					Return(entities.Product{}, assert.AnError).Once()
				images.EXPECT().Delete("a.png").Return(nil).Once()
				images.EXPECT().Delete("b.jpg").Return(assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCatalogRepo(t)
			images := mocks.NewMockImageStore(t)
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			tc.mockBehavior(repo, images)

			svc := service.NewCatalogService(logger, repo, images)
			_, err := svc.UpdateGallery(context.Background(), "p1", []io.Reader{strings.NewReader("a"), strings.NewReader("b")})

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
