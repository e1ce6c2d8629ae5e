package api

import (
	"net/http"
	"strconv"

	reqdto "tour-storefront/internal/handler/dto/request"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/handler/httperr"
	"tour-storefront/internal/usecase/commands"
	"tour-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds commands.CartCommands
	q    queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, q: q}
}

// @Summary Get cart
// @Description Line items of this visitor in insertion order, with totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	view, err := h.q.GetCart(c.Request.Context(), visitor)
	if err != nil {
		httperr.Abort(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Cart totals
// @Description Subtotal, 12% tax and total of the cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.TotalsResponse
// @Router /api/cart/totals [get]
func (h *CartHandler) Totals(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	totals, err := h.q.GetTotals(c.Request.Context(), visitor)
	if err != nil {
		httperr.Abort(c, err, "Failed to load cart")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTotals(totals))
}

// @Summary Add to cart
// @Description Append a tour snapshot; adding the same tour twice yields two lines
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddCartItemRequest true "Cart item"
// @Success 201 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	var req reqdto.AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.cmds.AddItem(c.Request.Context(), visitor, req)
	if err != nil {
		httperr.Abort(c, err, "Failed to add item")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCart(updated))
}

// @Summary Remove from cart
// @Description Remove the line at index; an index out of range leaves the cart as is
// @Tags cart
// @Produce json
// @Param index path int true "Line index"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} httperr.Response
// @Router /api/cart/items/{index} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid index", nil)
		return
	}
	updated, err := h.cmds.RemoveItem(c.Request.Context(), visitor, index)
	if err != nil {
		httperr.Abort(c, err, "Failed to remove item")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCart(updated))
}

// @Summary Clear cart
// @Tags cart
// @Success 204 "No Content"
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	if err := h.cmds.Clear(c.Request.Context(), visitor); err != nil {
		httperr.Abort(c, err, "Failed to clear cart")
		return
	}
	c.Status(http.StatusNoContent)
}
