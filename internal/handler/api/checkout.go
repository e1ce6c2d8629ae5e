package api

import (
	"net/http"

	reqdto "tour-storefront/internal/handler/dto/request"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/handler/httperr"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
}

func NewCheckoutHandler(cmds commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds}
}

// @Summary Checkout
// @Description Hold, pay for and book every cart item, then issue one invoice.
// @Description Outcomes after the preconditions are reported with 200 and per-item states.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	var req reqdto.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Checkout(c.Request.Context(), visitor, req)
	if err != nil {
		if errs.Is(err, commands.ErrCheckoutInProgress) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Checkout is already being processed", nil)
			return
		}
		httperr.Abort(c, err, "Checkout failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
