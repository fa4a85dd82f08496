package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunoki/petnavi-services/api/internal/public/domain"
)

func listing(id string, lng, lat float64) domain.Business {
	return domain.Business{
		ID:          id,
		Name:        "テスト店舗" + id,
		ServiceType: "トリミング",
		Location: domain.Location{
			Coordinates: domain.Point{Longitude: lng, Latitude: lat},
		},
		IsOpen: true,
	}
}

func TestSearchFiltersValidate(t *testing.T) {
	radius := 5.0
	center := &domain.Point{Longitude: 139.7, Latitude: 35.6}

	tests := []struct {
		name    string
		filters SearchFilters
		wantErr bool
	}{
		{name: "空フィルタ", filters: SearchFilters{}, wantErr: false},
		{name: "中心と半径の両方", filters: SearchFilters{Center: center, RadiusKm: &radius}, wantErr: false},
		{name: "半径のみ", filters: SearchFilters{RadiusKm: &radius}, wantErr: true},
		{name: "中心のみ", filters: SearchFilters{Center: center}, wantErr: true},
		{name: "負の半径", filters: SearchFilters{Center: center, RadiusKm: ptrFloat(-1)}, wantErr: true},
		{name: "範囲外の中心", filters: SearchFilters{Center: &domain.Point{Longitude: 190, Latitude: 0}, RadiusKm: &radius}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filters.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidQuery)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func ptrFloat(v float64) *float64 { return &v }

func TestPagingNormalized(t *testing.T) {
	assert.Equal(t, Paging{Offset: 0, Limit: 20}, Paging{}.Normalized())
	assert.Equal(t, Paging{Offset: 0, Limit: 20}, Paging{Offset: -5, Limit: -1}.Normalized())
	assert.Equal(t, Paging{Offset: 10, Limit: 100}, Paging{Offset: 10, Limit: 500}.Normalized())
	assert.Equal(t, Paging{Offset: 3, Limit: 7}, Paging{Offset: 3, Limit: 7}.Normalized())
}

func TestSearchRanksByDistance(t *testing.T) {
	repo := &fakeBusinessRepository{businesses: []domain.Business{
		listing("far", 135.4959, 34.7025),
		listing("near", 139.77, 35.68),
	}}
	service := NewBusinessQueryService(repo)

	radius := 500.0
	page, err := service.Search(context.Background(), SearchFilters{
		Center:   &domain.Point{Longitude: 139.7671, Latitude: 35.6812},
		RadiusKm: &radius,
	}, Paging{})
	require.NoError(t, err)

	require.Len(t, page.Results, 2)
	assert.Equal(t, "near", page.Results[0].Business.ID)
	assert.Equal(t, "far", page.Results[1].Business.ID)
	require.NotNil(t, page.Results[0].DistanceKm)
	assert.Equal(t, int64(2), page.Total)
	assert.False(t, page.HasMore)
}

func TestSearchInvalidFilterRejected(t *testing.T) {
	service := NewBusinessQueryService(&fakeBusinessRepository{})

	radius := 3.0
	_, err := service.Search(context.Background(), SearchFilters{RadiusKm: &radius}, Paging{})
	assert.ErrorIs(t, err, ErrInvalidQuery)
}

func TestSearchEmptyResult(t *testing.T) {
	service := NewBusinessQueryService(&fakeBusinessRepository{})

	page, err := service.Search(context.Background(), SearchFilters{ServiceType: "動物病院"}, Paging{})
	require.NoError(t, err)
	assert.Empty(t, page.Results)
	assert.Equal(t, int64(0), page.Total)
	assert.False(t, page.HasMore)
	assert.Equal(t, 20, page.Limit)
}

func TestSearchPagination(t *testing.T) {
	repo := &fakeBusinessRepository{businesses: []domain.Business{
		listing("a", 1, 1),
		listing("b", 2, 2),
		listing("c", 3, 3),
	}}
	service := NewBusinessQueryService(repo)

	page, err := service.Search(context.Background(), SearchFilters{}, Paging{Offset: 0, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Results, 2)
	assert.True(t, page.HasMore)

	page, err = service.Search(context.Background(), SearchFilters{}, Paging{Offset: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Results, 1)
	assert.False(t, page.HasMore)

	page, err = service.Search(context.Background(), SearchFilters{}, Paging{Offset: 10, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Results)
	assert.False(t, page.HasMore)
}

func TestDetail(t *testing.T) {
	repo := &fakeBusinessRepository{businesses: []domain.Business{listing("abc", 1, 1)}}
	service := NewBusinessQueryService(repo)

	business, err := service.Detail(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", business.ID)

	_, err = service.Detail(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
