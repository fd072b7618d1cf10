package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/novashop/novashop-backend/internal/app/service"
	apperrors "github.com/novashop/novashop-backend/internal/errors"
	"github.com/novashop/novashop-backend/internal/middleware"
)

// StorefrontController exposes the view-layer intents: the view-state
// snapshot, the category filter, and the cart drawer / product detail
// overlays.
type StorefrontController struct {
	storefrontService service.StorefrontService
}

func NewStorefrontController(storefrontService service.StorefrontService) *StorefrontController {
	return &StorefrontController{
		storefrontService: storefrontService,
	}
}

type SetCategoryRequest struct {
	Category string `json:"category" binding:"required"`
}

// GetView returns the full view state for the session
// GET /api/v1/view
func (ctrl *StorefrontController) GetView(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"view": ctrl.storefrontService.View(sess),
	})
}

// SetCategory switches the active catalog filter
// PUT /api/v1/view/category
func (ctrl *StorefrontController) SetCategory(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	var req SetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid set category request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Ongeldige invoer")
		return
	}

	category, err := ctrl.storefrontService.SetCategory(sess, req.Category)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			apperrors.BadRequest(c, apperrors.CatalogInvalidCategory, "Onbekende categorie")
			return
		}
		log.Error("Failed to set category", err, nil)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active_category": category,
	})
}

// OpenCart opens the cart drawer
// POST /api/v1/view/cart/open
func (ctrl *StorefrontController) OpenCart(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	ctrl.storefrontService.OpenCart(sess)
	c.JSON(http.StatusOK, gin.H{
		"cart_open": true,
	})
}

// CloseCart closes the cart drawer
// POST /api/v1/view/cart/close
func (ctrl *StorefrontController) CloseCart(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	ctrl.storefrontService.CloseCart(sess)
	c.JSON(http.StatusOK, gin.H{
		"cart_open": false,
	})
}

// OpenProduct opens the product detail overlay and kicks off the insight
// fetch for it. Opening a product replaces any overlay already open.
// POST /api/v1/view/products/:id/open
func (ctrl *StorefrontController) OpenProduct(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		log.Warn("Invalid product ID format", map[string]interface{}{
			"product_id": c.Param("id"),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Ongeldig product-ID")
		return
	}

	product, err := ctrl.storefrontService.OpenProduct(sess, id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.CatalogProductNotFound, "Product niet gevonden")
			return
		}
		log.Error("Failed to open product detail", err, map[string]interface{}{
			"product_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":         product,
		"insight_pending": true,
	})
}

// CloseProduct closes the product detail overlay
// POST /api/v1/view/products/close
func (ctrl *StorefrontController) CloseProduct(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	ctrl.storefrontService.CloseProduct(sess)
	c.Status(http.StatusNoContent)
}
