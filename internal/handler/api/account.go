package api

import (
	"net/http"

	reqdto "tour-storefront/internal/handler/dto/request"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/handler/httperr"
	"tour-storefront/internal/handler/middleware"
	"tour-storefront/internal/usecase/commands"
	"tour-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	cmds commands.AccountCommands
	q    queries.AccountQueries
}

func NewAccountHandler(cmds commands.AccountCommands, q queries.AccountQueries) *AccountHandler {
	return &AccountHandler{cmds: cmds, q: q}
}

// @Summary Update profile
// @Tags account
// @Accept json
// @Produce json
// @Param request body reqdto.ProfileRequest true "Profile"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/account/profile [put]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	sess, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := h.cmds.UpdateProfile(c.Request.Context(), visitor, sess, req)
	if err != nil {
		httperr.Abort(c, err, "Profile update failed")
		return
	}
	middleware.SetSession(c, updated)
	c.JSON(http.StatusOK, resdto.FromSession(updated))
}

// @Summary My reservations
// @Tags account
// @Produce json
// @Success 200 {object} resdto.RecordListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/account/reservations [get]
func (h *AccountHandler) Reservations(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	records, err := h.q.MyReservations(c.Request.Context(), sess)
	if err != nil {
		httperr.Abort(c, err, "Failed to load reservations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecords(records))
}

// @Summary Cancel my reservation
// @Tags account
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest true "Reason"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /api/account/reservations/{id}/cancel [post]
func (h *AccountHandler) CancelReservation(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	var req reqdto.CancelReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.cmds.CancelReservation(c.Request.Context(), sess, c.Param("id"), req)
	if err != nil {
		httperr.Abort(c, err, "Cancellation failed")
		return
	}
	c.JSON(http.StatusOK, orEmptyRecord(record))
}

// @Summary My invoices
// @Tags account
// @Produce json
// @Success 200 {object} resdto.RecordListResponse
// @Failure 401 {object} httperr.Response
// @Router /api/account/invoices [get]
func (h *AccountHandler) Invoices(c *gin.Context) {
	sess, ok := session(c)
	if !ok {
		return
	}
	records, err := h.q.MyInvoices(c.Request.Context(), sess)
	if err != nil {
		httperr.Abort(c, err, "Failed to load invoices")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecords(records))
}
