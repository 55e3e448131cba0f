package book

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalog(version uint64) Catalog {
	return Catalog{
		Books:      SeedBooks(),
		Categories: SeedCategories(),
		Carousel:   SeedCarousel(),
		Version:    version,
	}
}

func TestService_Page(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, nil)
	ctx := context.Background()

	t.Run("clamps index past the last page", func(t *testing.T) {
		mockRepo.EXPECT().Version(gomock.Any()).Return(uint64(1), nil)
		mockRepo.EXPECT().Catalog(gomock.Any()).Return(seedCatalog(1), nil)

		page, err := service.Page(ctx, PageQuery{PageIndex: 10, PageSize: 2})
		require.NoError(t, err)

		// clamping to totalPages still lands one past the last page
		assert.Equal(t, 4, page.PageIndex)
		assert.Equal(t, 4, page.TotalPages)
		assert.Empty(t, page.Items)
	})

	t.Run("huge index clamps without overflow", func(t *testing.T) {
		mockRepo.EXPECT().Version(gomock.Any()).Return(uint64(1), nil)
		mockRepo.EXPECT().Catalog(gomock.Any()).Return(seedCatalog(1), nil)

		page, err := service.Page(ctx, PageQuery{PageIndex: math.MaxInt / 8, PageSize: 15})
		require.NoError(t, err)

		assert.Equal(t, 1, page.PageIndex)
		assert.Equal(t, 7, page.TotalItems)
		assert.Empty(t, page.Items)
	})

	t.Run("negative index clamps to first page", func(t *testing.T) {
		mockRepo.EXPECT().Version(gomock.Any()).Return(uint64(1), nil)
		mockRepo.EXPECT().Catalog(gomock.Any()).Return(seedCatalog(1), nil)

		page, err := service.Page(ctx, PageQuery{PageIndex: -3, PageSize: 2})
		require.NoError(t, err)

		assert.Equal(t, 0, page.PageIndex)
		assert.Equal(t, []int{1, 2}, ids(page.Items))
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().Version(gomock.Any()).Return(uint64(0), context.DeadlineExceeded)

		_, err := service.Page(ctx, PageQuery{PageSize: 2})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestService_PageCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, nil)
	ctx := context.Background()
	q := PageQuery{Categories: []int{8}, Sort: SortName, Direction: Asc, PageSize: 15}

	mockRepo.EXPECT().Version(gomock.Any()).Return(uint64(3), nil).Times(2)
	mockRepo.EXPECT().Catalog(gomock.Any()).Return(seedCatalog(3), nil).Times(1)

	first, err := service.Page(ctx, q)
	require.NoError(t, err)

	// same category set in another order hits the cache
	reordered := q
	reordered.Categories = []int{8, 8}
	second, err := service.Page(ctx, reordered)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	changed := seedCatalog(4)
	changed.Books = changed.Books[:4]
	mockRepo.EXPECT().Version(gomock.Any()).Return(uint64(4), nil)
	mockRepo.EXPECT().Catalog(gomock.Any()).Return(changed, nil)

	third, err := service.Page(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, ids(third.Items))
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, nil)

	mockRepo.EXPECT().Catalog(gomock.Any()).Return(seedCatalog(1), nil).Times(2)

	v, err := service.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Laskar Pelangi", v.Title)
	assert.Equal(t, "2005", v.Published)
	assert.Equal(t, []Category{{ID: 14, Name: "Petualangan"}}, v.Categories)

	_, err = service.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Featured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo, nil)

	cat := seedCatalog(1)
	cat.Carousel = Carousel{5, 77, 2}
	mockRepo.EXPECT().Catalog(gomock.Any()).Return(cat, nil).Times(3)

	views, err := service.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{5, 2}, ids(views))

	featured, err := service.IsFeatured(context.Background(), 77)
	require.NoError(t, err)
	assert.True(t, featured)

	featured, err = service.IsFeatured(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, featured)
}

func TestService_Mutations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)

	calls := 0
	service := NewService(mockRepo, func() { calls++ })
	ctx := context.Background()

	in := Book{
		Title:         "Bumi",
		PublishedDate: PublishedDate{Precision: PrecisionYear, Date: time.Date(2014, time.March, 3, 0, 0, 0, 0, time.UTC)},
	}
	mockRepo.EXPECT().AddBook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b Book) (Book, error) {
		assert.Equal(t, time.Date(2014, time.January, 1, 0, 0, 0, 0, time.UTC), b.PublishedDate.Date)
		b.ID = 8
		return b, nil
	})
	created, err := service.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 8, created.ID)

	mockRepo.EXPECT().EditBook(gomock.Any(), gomock.Any()).Return(false, nil)
	assert.ErrorIs(t, service.Update(ctx, Book{ID: 42}), ErrNotFound)

	mockRepo.EXPECT().EditBook(gomock.Any(), gomock.Any()).Return(true, nil)
	assert.NoError(t, service.Update(ctx, Book{ID: 8}))

	mockRepo.EXPECT().RemoveBook(gomock.Any(), 8).Return(nil)
	assert.NoError(t, service.Delete(ctx, 8))

	assert.Equal(t, 4, calls)

	mockRepo.EXPECT().AddToCarousel(gomock.Any(), 8).Return(nil)
	mockRepo.EXPECT().RemoveFromCarousel(gomock.Any(), 8).Return(errors.New("boom"))
	assert.NoError(t, service.AddToCarousel(ctx, 8))
	assert.Error(t, service.RemoveFromCarousel(ctx, 8))
	assert.Equal(t, 4, calls, "carousel changes are not delayed")
}

func TestService_MutationIgnoresCancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	service := NewService(mockRepo, func() { cancel() })

	mockRepo.EXPECT().RemoveBook(gomock.Any(), 1).DoAndReturn(func(ctx context.Context, _ int) error {
		return ctx.Err()
	})

	assert.NoError(t, service.Delete(ctx, 1))
}
