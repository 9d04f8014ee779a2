package cache

import (
	"context"
	"testing"

	"coursehub/internal/cache/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type payload struct {
	Name string `json:"name"`
}

func TestReadThrough(t *testing.T) {
	const key = "course:full:abc"

	t.Run("returns cached value without loading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(gomock.Any(), key, gomock.Any()).
			DoAndReturn(func(ctx context.Context, key string, dest interface{}) (bool, error) {
				*dest.(*payload) = payload{Name: "cached"}
				return true, nil
			})

		got, err := ReadThrough(context.Background(), mockCache, key, CourseDetailTTL, func(ctx context.Context) (payload, error) {
			t.Fatal("loader must not run on a hit")
			return payload{}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "cached", got.Name)
	})

	t.Run("loads and stores on miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(false, nil)
		mockCache.EXPECT().Set(gomock.Any(), key, payload{Name: "fresh"}, CourseDetailTTL).Return(nil)

		got, err := ReadThrough(context.Background(), mockCache, key, CourseDetailTTL, func(ctx context.Context) (payload, error) {
			return payload{Name: "fresh"}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "fresh", got.Name)
	})

	t.Run("falls back to loader when cache errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(false, assert.AnError)
		mockCache.EXPECT().Set(gomock.Any(), key, gomock.Any(), gomock.Any()).Return(assert.AnError)

		got, err := ReadThrough(context.Background(), mockCache, key, CourseDetailTTL, func(ctx context.Context) (payload, error) {
			return payload{Name: "db"}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "db", got.Name)
	})

	t.Run("does not store loader errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().Get(gomock.Any(), key, gomock.Any()).Return(false, nil)

		_, err := ReadThrough(context.Background(), mockCache, key, CourseDetailTTL, func(ctx context.Context) (*payload, error) {
			return nil, assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

type countingRecorder struct {
	hits, misses int
}

func (r *countingRecorder) CacheLookup(hit bool) {
	if hit {
		r.hits++
	} else {
		r.misses++
	}
}

func TestWithRecorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), "hit", gomock.Any()).Return(true, nil)
	mockCache.EXPECT().Get(gomock.Any(), "miss", gomock.Any()).Return(false, nil)
	mockCache.EXPECT().Get(gomock.Any(), "broken", gomock.Any()).Return(false, assert.AnError)

	rec := &countingRecorder{}
	c := WithRecorder(mockCache, rec)

	var dest payload
	_, _ = c.Get(context.Background(), "hit", &dest)
	_, _ = c.Get(context.Background(), "miss", &dest)
	_, _ = c.Get(context.Background(), "broken", &dest)

	assert.Equal(t, 1, rec.hits)
	assert.Equal(t, 2, rec.misses)
}
