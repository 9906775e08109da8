package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/citizen-services/internal/api/dto"
	"github.com/spec-kit/citizen-services/internal/service"
)

// CatalogHandler serves the scheme directory.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Schemes handles GET /api/schemes. slug takes precedence over category.
func (h *CatalogHandler) Schemes(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if slug := c.Query("slug"); slug != "" {
		scheme, err := h.catalog.SchemeBySlug(ctx, slug)
		if err != nil {
			return err
		}
		return c.JSON(dto.NewSchemeResponse(*scheme))
	}
	if category := c.Query("category"); category != "" {
		schemes, err := h.catalog.SchemesByCategory(ctx, category)
		if err != nil {
			return err
		}
		return c.JSON(dto.NewSchemeList(schemes))
	}
	schemes, err := h.catalog.ListSchemes(ctx)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSchemeList(schemes))
}

// Search handles GET /api/schemes/search?q=.
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	schemes, err := h.catalog.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSchemeList(schemes))
}

// Categories handles GET /api/categories.
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	categories, err := h.catalog.Categories(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCategoryList(categories))
}

// Category handles GET /api/categories/:slug.
func (h *CatalogHandler) Category(c *fiber.Ctx) error {
	category, schemes, err := h.catalog.Category(c.UserContext(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CategoryDetailResponse{
		CategoryResponse: dto.NewCategoryResponse(*category),
		Schemes:          dto.NewSchemeList(schemes),
	})
}
