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

type CartController struct {
	storefrontService service.StorefrontService
}

func NewCartController(storefrontService service.StorefrontService) *CartController {
	return &CartController{
		storefrontService: storefrontService,
	}
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// GetCart returns the session's cart with badge count and subtotal
// GET /api/v1/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	summary := ctrl.storefrontService.GetCart(sess)
	c.JSON(http.StatusOK, gin.H{
		"cart": summary,
	})
}

// AddToCart adds one unit of a product to the cart
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Ongeldige invoer")
		return
	}

	summary, err := ctrl.storefrontService.AddToCart(sess, req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			apperrors.NotFound(c, apperrors.CatalogProductNotFound, "Product niet gevonden")
			return
		}
		log.Error("Failed to add item to cart", err, map[string]interface{}{
			"product_id": req.ProductID,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product toegevoegd aan winkelwagen",
		"cart":    summary,
	})
}

// ChangeQuantity adjusts a cart line's quantity by a delta, floor 1.
// An id without a cart line is a silent no-op, not an error.
// PATCH /api/v1/cart/:productId
func (ctrl *CartController) ChangeQuantity(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		log.Warn("Invalid product ID format", map[string]interface{}{
			"product_id": c.Param("productId"),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Ongeldig product-ID")
		return
	}

	var req ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid change quantity request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Ongeldige invoer")
		return
	}

	summary := ctrl.storefrontService.ChangeQuantity(sess, productID, req.Delta)
	c.JSON(http.StatusOK, gin.H{
		"cart": summary,
	})
}

// RemoveFromCart removes a cart line; absent ids are silent no-ops.
// DELETE /api/v1/cart/:productId
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		log.Warn("Invalid product ID format", map[string]interface{}{
			"product_id": c.Param("productId"),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Ongeldig product-ID")
		return
	}

	summary := ctrl.storefrontService.RemoveFromCart(sess, productID)
	c.JSON(http.StatusOK, gin.H{
		"cart": summary,
	})
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		apperrors.InternalError(c, "")
		return
	}

	summary := ctrl.storefrontService.ClearCart(sess)
	c.JSON(http.StatusOK, gin.H{
		"message": "Winkelwagen geleegd",
		"cart":    summary,
	})
}
