package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

func seededCatalog(t *testing.T) *CatalogService {
	t.Helper()
	svc := NewCatalogService(&memCategories{}, &memSchemes{}, zap.NewNop())
	seeded, err := svc.Seed(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)
	return svc
}

func TestCatalogFixtureParses(t *testing.T) {
	seed, err := parseCatalogSeed(catalogFixture)
	require.NoError(t, err)
	require.Len(t, seed.Categories, 4)
	assert.Equal(t, "farmers", seed.Categories[0].Slug)
	assert.Equal(t, "🌾", seed.Categories[0].Icon)
	assert.Equal(t, "PM-KISAN", seed.Categories[0].Schemes[0].Title)
}

func TestCatalogFixtureRejectsMissingSlug(t *testing.T) {
	_, err := parseCatalogSeed([]byte("categories:\n  - name: Farmers\n"))
	assert.Error(t, err)
}

func TestCatalogSeedOnce(t *testing.T) {
	svc := seededCatalog(t)
	again, err := svc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, again)

	categories, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 4)
}

func TestSchemeLookups(t *testing.T) {
	svc := seededCatalog(t)
	ctx := context.Background()

	scheme, err := svc.SchemeBySlug(ctx, "pm-kisan")
	require.NoError(t, err)
	assert.Equal(t, "PM-KISAN", scheme.Title)
	require.NotNil(t, scheme.OfficialLink)
	assert.Equal(t, "https://pmkisan.gov.in/", *scheme.OfficialLink)

	_, err = svc.SchemeBySlug(ctx, "missing")
	de := apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "Scheme not found", de.Message)

	_, err = svc.SchemesByCategory(ctx, "pirates")
	de = apperrors.ToDomainError(err)
	assert.Equal(t, http.StatusNotFound, de.HTTPStatus)
	assert.Equal(t, "Category not found", de.Message)

	youth, err := svc.SchemesByCategory(ctx, "unemployed-youth")
	require.NoError(t, err)
	assert.Len(t, youth, 9)

	women, err := svc.SchemesByCategory(ctx, "women")
	require.NoError(t, err)
	assert.Empty(t, women)

	all, err := svc.ListSchemes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 17)
}

func TestSchemeSearch(t *testing.T) {
	svc := seededCatalog(t)
	ctx := context.Background()

	hits, err := svc.Search(ctx, "mudra")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "pradhan-mantri-mudra-yojana", hits[0].Slug)

	byMinistry, err := svc.Search(ctx, "jal shakti")
	require.NoError(t, err)
	assert.Len(t, byMinistry, 1)

	all, err := svc.Search(ctx, "   ")
	require.NoError(t, err)
	assert.Len(t, all, 17)
}
