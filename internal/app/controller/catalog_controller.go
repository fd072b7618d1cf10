package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/novashop/novashop-backend/internal/app/model"
	"github.com/novashop/novashop-backend/internal/app/service"
	apperrors "github.com/novashop/novashop-backend/internal/errors"
	"github.com/novashop/novashop-backend/internal/middleware"
)

type CatalogController struct {
	catalogService service.CatalogService
}

func NewCatalogController(catalogService service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListProducts returns the catalog, optionally filtered by category
// GET /api/v1/products?category=
func (ctrl *CatalogController) ListProducts(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	selected := model.CategoryAll
	if raw := c.Query("category"); raw != "" {
		category, err := model.ParseCategory(raw)
		if err != nil {
			log.Warn("Invalid category filter", map[string]interface{}{
				"value": raw,
			})
			apperrors.BadRequest(c, apperrors.CatalogInvalidCategory, "Onbekende categorie")
			return
		}
		selected = category
	}

	products := ctrl.catalogService.ListProducts(selected)

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
		"category": selected,
	})
}

// GetProductByID returns a single product
// GET /api/v1/products/:id
func (ctrl *CatalogController) GetProductByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid product ID format", map[string]interface{}{
			"product_id": c.Param("id"),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Ongeldig product-ID")
		return
	}

	product, err := ctrl.catalogService.GetProductByID(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.CatalogProductNotFound, "Product niet gevonden")
			return
		}
		log.Error("Failed to fetch product", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
	})
}

// ListCategories returns the closed category set in display order
// GET /api/v1/categories
func (ctrl *CatalogController) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": ctrl.catalogService.Categories(),
	})
}
