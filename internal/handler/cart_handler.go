package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "marketplace/internal/errors"
	"marketplace/internal/middleware"
	"marketplace/internal/service"
)

// CartHandler handles shopping cart endpoints. All routes require an
// authenticated subject and operate on that subject's cart only.
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddCartItemRequest represents an add-to-cart request.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// UpdateCartItemRequest represents a quantity change for an existing item.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gt=0"`
}

// List godoc
// @Summary List the authenticated user's cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.CartItem
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [get]
func (h *CartHandler) List(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return domainError(apperrors.ErrInvalidToken)
	}

	items, err := h.cartService.List(c.Request().Context(), user.ID)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, items)
}

// Add godoc
// @Summary Add a product to the cart
// @Description Adding a product already in the cart increments its quantity.
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddCartItemRequest true "Product and quantity"
// @Success 201 {object} model.CartItem
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return domainError(apperrors.ErrInvalidToken)
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.cartService.Add(c.Request().Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusCreated, item)
}

// Update godoc
// @Summary Set a cart item's quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart item ID"
// @Param request body UpdateCartItemRequest true "New quantity"
// @Success 200 {object} model.CartItem
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/{id} [put]
func (h *CartHandler) Update(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return domainError(apperrors.ErrInvalidToken)
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.cartService.UpdateQuantity(c.Request().Context(), user.ID, id, req.Quantity)
	if err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, item)
}

// Remove godoc
// @Summary Remove a cart item
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cart item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /cart/{id} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return domainError(apperrors.ErrInvalidToken)
	}

	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.cartService.Remove(c.Request().Context(), user.ID, id); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "item removed from cart",
	})
}

// Clear godoc
// @Summary Remove every item from the cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	user := middleware.UserFromContext(c)
	if user == nil {
		return domainError(apperrors.ErrInvalidToken)
	}

	if err := h.cartService.Clear(c.Request().Context(), user.ID); err != nil {
		return domainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "cart cleared successfully",
	})
}
