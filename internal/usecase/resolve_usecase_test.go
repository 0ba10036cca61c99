package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/property-locator/internal/domain"
	"github.com/property-locator/internal/domain/repository"
	"github.com/property-locator/internal/pkg/retry"
	"github.com/property-locator/internal/usecase"
)

// resolverFixture собирает реальный конвейер над справочником по умолчанию
type resolverFixture struct {
	catalog   *domain.Catalog
	geocoder  repository.GeocoderRepository
	suggester repository.SuggestionRepository
	stream    repository.StreamRepository
	unrecog   bool
}

func (f resolverFixture) build(t *testing.T) *usecase.ResolveUseCase {
	t.Helper()
	logger := zap.NewNop()

	catalog := f.catalog
	if catalog == nil {
		var err error
		catalog, err = domain.NewCatalog(domain.SeedProperties())
		require.NoError(t, err)
	}

	corrector := usecase.NewSpellingCorrector(domain.KnownCities(), 60, f.suggester, logger)
	adapter := usecase.NewGeocoderAdapter(f.geocoder, nil, retry.Policy{MaxAttempts: 3}, "India", 0, logger)

	return usecase.NewResolveUseCase(catalog, corrector, adapter, usecase.NewProximitySearch(50), f.stream, logger, f.unrecog)
}

func TestResolveUseCase_DirectMatch(t *testing.T) {
	ctx := context.Background()
	uc := resolverFixture{geocoder: panicGeocoder{}}.build(t)

	t.Run("udaipur returns all Udaipur properties at zero distance", func(t *testing.T) {
		result := uc.Resolve(ctx, "udaipur")

		assert.Equal(t, domain.MatchedTypeDirectMatch, result.Type)
		assert.Equal(t, "udaipur", result.MatchedCity)
		require.GreaterOrEqual(t, len(result.Properties), 3)
		for _, p := range result.Properties {
			assert.Equal(t, "Udaipur", p.Property.City)
			assert.Equal(t, 0.0, p.DistanceKm)
		}
	})

	t.Run("misspelling is corrected before lookup", func(t *testing.T) {
		result := uc.Resolve(ctx, "jaiselmer")

		assert.Equal(t, domain.MatchedTypeDirectMatch, result.Type)
		assert.Equal(t, "jaisalmer", result.MatchedCity)

		names := make([]string, 0, len(result.Properties))
		for _, p := range result.Properties {
			names = append(names, p.Property.Name)
		}
		assert.Contains(t, names, "Moustache Jaisalmer")
	})

	t.Run("every catalog city round-trips to a direct match", func(t *testing.T) {
		catalog, err := domain.NewCatalog(domain.SeedProperties())
		require.NoError(t, err)

		for _, city := range catalog.Cities() {
			result := uc.Resolve(ctx, city)
			assert.Equal(t, domain.MatchedTypeDirectMatch, result.Type, "city %s", city)
			for _, p := range result.Properties {
				assert.Equal(t, 0.0, p.DistanceKm)
			}
		}
	})
}

func TestResolveUseCase_Unrecognized(t *testing.T) {
	ctx := context.Background()

	t.Run("digits never reach external services", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		suggester := &MockSuggestionRepository{}
		uc := resolverFixture{geocoder: geocoder, suggester: suggester}.build(t)

		result := uc.Resolve(ctx, "delhi 110001")

		assert.Equal(t, domain.MatchedTypeUnrecognized, result.Type)
		assert.Empty(t, result.Properties)
		assert.NotEmpty(t, result.Message)
		geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		suggester.AssertNotCalled(t, "Suggest", mock.Anything, mock.Anything)
	})

	t.Run("nonsense rejected by vocabulary and suggestion", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		suggester := &MockSuggestionRepository{}
		suggester.On("Suggest", mock.Anything, "xqzvbn").Return([]string{}, nil)
		uc := resolverFixture{geocoder: geocoder, suggester: suggester}.build(t)

		result := uc.Resolve(ctx, "xqzvbn")

		assert.Equal(t, domain.MatchedTypeUnrecognized, result.Type)
		assert.Equal(t, "Could not recognize or correct the input location.", result.Message)
		geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	})

	t.Run("passthrough is geocoded when enabled", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		geocoder.On("Geocode", mock.Anything, "xqzvbn, India").
			Return(nil, domain.ErrLocationNotFound)
		uc := resolverFixture{geocoder: geocoder, unrecog: true}.build(t)

		result := uc.Resolve(ctx, "xqzvbn")

		assert.Equal(t, domain.MatchedTypeLocationNotFound, result.Type)
		geocoder.AssertNumberOfCalls(t, "Geocode", 1)
	})
}

func TestResolveUseCase_Geocoded(t *testing.T) {
	ctx := context.Background()

	t.Run("proximity match is sorted and within radius", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		geocoder.On("Geocode", mock.Anything, "sissu, India").Return(ptrCoords(32.4833, 77.1167), nil)
		uc := resolverFixture{geocoder: geocoder}.build(t)

		result := uc.Resolve(ctx, "Sissu")

		require.Equal(t, domain.MatchedTypeProximityMatch, result.Type)
		assert.Equal(t, "sissu", result.MatchedCity)
		require.NotEmpty(t, result.Properties)
		assert.Equal(t, "Moustache Koksar Luxuria", result.Properties[0].Property.Name)

		for i, p := range result.Properties {
			assert.LessOrEqual(t, p.DistanceKm, 50.0)
			assert.Greater(t, p.DistanceKm, 0.0)
			if i > 0 {
				assert.LessOrEqual(t, result.Properties[i-1].DistanceKm, p.DistanceKm)
			}
		}
	})

	t.Run("real city without nearby property is no_match", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		geocoder.On("Geocode", mock.Anything, "coimbatore, India").Return(ptrCoords(11.0168, 76.9558), nil)
		uc := resolverFixture{geocoder: geocoder}.build(t)

		result := uc.Resolve(ctx, "coimbatore")

		assert.Equal(t, domain.MatchedTypeNoMatch, result.Type)
		assert.Equal(t, "coimbatore", result.MatchedCity)
		assert.NotNil(t, result.Properties)
		assert.Empty(t, result.Properties)
		assert.Equal(t, "No properties found within 50 km radius.", result.Message)
	})

	t.Run("geocoder unavailable gives location_not_found", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		geocoder.On("Geocode", mock.Anything, "khajuraho, India").Return(nil, errors.New("503 service unavailable"))
		uc := resolverFixture{geocoder: geocoder}.build(t)

		result := uc.Resolve(ctx, "khajuraho")

		assert.Equal(t, domain.MatchedTypeLocationNotFound, result.Type)
		assert.Equal(t, "Could not geolocate 'khajuraho'.", result.Message)
		assert.Equal(t, []string{"khajuraho"}, result.Attempted)
		geocoder.AssertNumberOfCalls(t, "Geocode", 3)
	})

	t.Run("falls back to raw query when corrected name is not found", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		geocoder.On("Geocode", mock.Anything, "sissu, India").Return(nil, domain.ErrLocationNotFound)
		geocoder.On("Geocode", mock.Anything, "sisu, India").Return(ptrCoords(32.4833, 77.1167), nil)
		uc := resolverFixture{geocoder: geocoder}.build(t)

		result := uc.Resolve(ctx, "sisu")

		assert.Equal(t, domain.MatchedTypeProximityMatch, result.Type)
		assert.Equal(t, []string{"sissu", "sisu"}, result.Attempted)
		geocoder.AssertExpectations(t)
	})
}

func TestResolveUseCase_PublishesEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("event carries the outcome", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("PublishToStream", mock.Anything, domain.StreamResolutionEvents,
			mock.MatchedBy(func(e domain.ResolutionEvent) bool {
				return e.MatchedType == domain.MatchedTypeDirectMatch &&
					e.Query == "goa" && e.ResultCount == 1
			})).Return(nil)
		uc := resolverFixture{geocoder: panicGeocoder{}, stream: stream}.build(t)

		result := uc.Resolve(ctx, " GOA ")

		assert.Equal(t, domain.MatchedTypeDirectMatch, result.Type)
		stream.AssertExpectations(t)
	})

	t.Run("publish failure does not change result", func(t *testing.T) {
		stream := &MockStreamRepository{}
		stream.On("PublishToStream", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))
		uc := resolverFixture{geocoder: panicGeocoder{}, stream: stream}.build(t)

		result := uc.Resolve(ctx, "delhi")

		assert.Equal(t, domain.MatchedTypeDirectMatch, result.Type)
		assert.Len(t, result.Properties, 2)
	})
}

func TestResolveUseCase_CustomCatalog(t *testing.T) {
	catalog, err := domain.NewCatalog([]domain.Property{
		{Name: "Far", City: "Alpha", Lat: 10.3, Lon: 10.0},
		{Name: "Near A", City: "Alpha", Lat: 10.1, Lon: 10.0},
		{Name: "Near B", City: "Beta", Lat: 10.1, Lon: 10.0},
	})
	require.NoError(t, err)

	geocoder := &MockGeocoderRepository{}
	geocoder.On("Geocode", mock.Anything, "sissu, India").Return(ptrCoords(10.0, 10.0), nil)
	uc := resolverFixture{catalog: catalog, geocoder: geocoder}.build(t)

	result := uc.Resolve(context.Background(), "sissu")

	require.Equal(t, domain.MatchedTypeProximityMatch, result.Type)
	names := make([]string, 0, len(result.Properties))
	for _, p := range result.Properties {
		names = append(names, p.Property.Name)
	}
	assert.Equal(t, "Near A,Near B,Far", strings.Join(names, ","), "equal distances keep catalog order")
}
