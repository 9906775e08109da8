package service

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/spec-kit/citizen-services/internal/domain"
	"github.com/spec-kit/citizen-services/internal/repository"
	apperrors "github.com/spec-kit/citizen-services/pkg/util/errorutil"
)

//go:embed seeddata/catalog.yaml
var catalogFixture []byte

// CatalogService serves the scheme directory.
type CatalogService struct {
	categories repository.CategoryRepository
	schemes    repository.SchemeRepository
	logger     *zap.Logger
}

// NewCatalogService creates the service.
func NewCatalogService(categories repository.CategoryRepository, schemes repository.SchemeRepository, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{categories: categories, schemes: schemes, logger: logger}
}

type catalogSeed struct {
	Categories []struct {
		Name        string `yaml:"name"`
		Slug        string `yaml:"slug"`
		Icon        string `yaml:"icon"`
		Description string `yaml:"description"`
		Schemes     []struct {
			Title        string `yaml:"title"`
			Slug         string `yaml:"slug"`
			Ministry     string `yaml:"ministry"`
			Description  string `yaml:"description"`
			Benefits     string `yaml:"benefits"`
			Eligibility  string `yaml:"eligibility"`
			HowToApply   string `yaml:"how_to_apply"`
			OfficialLink string `yaml:"official_link"`
			ImageURL     string `yaml:"image_url"`
		} `yaml:"schemes"`
	} `yaml:"categories"`
}

func parseCatalogSeed(raw []byte) (*catalogSeed, error) {
	var seed catalogSeed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse catalog fixture: %w", err)
	}
	for _, c := range seed.Categories {
		if c.Slug == "" || c.Name == "" {
			return nil, errors.New("catalog fixture: category needs name and slug")
		}
		for _, s := range c.Schemes {
			if s.Slug == "" || s.Title == "" {
				return nil, fmt.Errorf("catalog fixture: scheme in %s needs title and slug", c.Slug)
			}
		}
	}
	return &seed, nil
}

// Seed loads the embedded catalog when no category exists yet. The check and
// the inserts are separate statements, so two concurrent seeders may race.
func (s *CatalogService) Seed(ctx context.Context) (bool, error) {
	exists, err := s.categories.Exists(ctx)
	if err != nil || exists {
		return false, err
	}
	seed, err := parseCatalogSeed(catalogFixture)
	if err != nil {
		return false, err
	}

	schemeCount := 0
	for _, c := range seed.Categories {
		category := &domain.Category{
			Name:        c.Name,
			Slug:        c.Slug,
			Icon:        c.Icon,
			Description: optionalString(c.Description),
		}
		if err := s.categories.Create(ctx, category); err != nil {
			return false, fmt.Errorf("seed category %s: %w", c.Slug, err)
		}
		for _, sc := range c.Schemes {
			scheme := &domain.Scheme{
				CategoryID:   category.ID,
				Title:        sc.Title,
				Slug:         sc.Slug,
				Ministry:     sc.Ministry,
				Description:  sc.Description,
				Benefits:     sc.Benefits,
				Eligibility:  optionalString(sc.Eligibility),
				HowToApply:   optionalString(sc.HowToApply),
				OfficialLink: optionalString(sc.OfficialLink),
				ImageURL:     optionalString(sc.ImageURL),
				IsActive:     true,
			}
			if err := s.schemes.Create(ctx, scheme); err != nil {
				return false, fmt.Errorf("seed scheme %s: %w", sc.Slug, err)
			}
			schemeCount++
		}
	}
	s.logger.Info("catalog seeded",
		zap.Int("categories", len(seed.Categories)),
		zap.Int("schemes", schemeCount))
	return true, nil
}

// ListSchemes returns every scheme.
func (s *CatalogService) ListSchemes(ctx context.Context) ([]domain.Scheme, error) {
	schemes, err := s.schemes.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return schemes, nil
}

// SchemeBySlug returns a single scheme.
func (s *CatalogService) SchemeBySlug(ctx context.Context, slug string) (*domain.Scheme, error) {
	scheme, err := s.schemes.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Scheme", map[string]any{"slug": slug})
		}
		return nil, apperrors.MapError(err)
	}
	return scheme, nil
}

// SchemesByCategory lists the schemes of the category with the given slug.
func (s *CatalogService) SchemesByCategory(ctx context.Context, categorySlug string) ([]domain.Scheme, error) {
	_, schemes, err := s.Category(ctx, categorySlug)
	return schemes, err
}

// Categories lists every category.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return categories, nil
}

// Category returns the category with its schemes.
func (s *CatalogService) Category(ctx context.Context, slug string) (*domain.Category, []domain.Scheme, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("Category", map[string]any{"slug": slug})
		}
		return nil, nil, apperrors.MapError(err)
	}
	schemes, err := s.schemes.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return category, schemes, nil
}

// Search matches the term against title, description and ministry. A blank
// term returns the whole directory.
func (s *CatalogService) Search(ctx context.Context, term string) ([]domain.Scheme, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListSchemes(ctx)
	}
	schemes, err := s.schemes.Search(ctx, term)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return schemes, nil
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
