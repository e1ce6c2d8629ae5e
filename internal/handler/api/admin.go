package api

import (
	"net/http"

	reqdto "tour-storefront/internal/handler/dto/request"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/handler/httperr"
	"tour-storefront/internal/usecase/commands"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the back office. Every route is behind RequireAdmin.
type AdminHandler struct {
	cmds    commands.AdminCommands
	q       queries.AdminQueries
	catalog queries.CatalogQueries
}

func NewAdminHandler(cmds commands.AdminCommands, q queries.AdminQueries, catalog queries.CatalogQueries) *AdminHandler {
	return &AdminHandler{cmds: cmds, q: q, catalog: catalog}
}

// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.RecordListResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	records, err := h.q.Users(c.Request.Context())
	h.respondList(c, records, err, "Failed to load users")
}

// @Summary Create user
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "User"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /api/admin/users [post]
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.cmds.CreateUser(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserProfile(profile))
}

// @Summary Update user
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body reqdto.ProfileRequest true "User"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req reqdto.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.cmds.UpdateUser(c.Request.Context(), c.Param("id"), req)
	h.respondRecord(c, record, err, "Failed to update user")
}

// @Summary List tours
// @Tags admin
// @Produce json
// @Success 200 {array} resdto.PackageResponse
// @Router /api/admin/tours [get]
func (h *AdminHandler) ListTours(c *gin.Context) {
	packages, err := h.catalog.Search(c.Request.Context(), gateway.SearchFilter{})
	if err != nil {
		httperr.Abort(c, err, "Failed to load tours")
		return
	}
	res, err := resdto.FromPackages(packages)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Create tour
// @Description A blank code is generated as TOUR-xxxxxxxx
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.PackageRequest true "Tour"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 501 {object} httperr.Response
// @Router /api/admin/tours [post]
func (h *AdminHandler) CreateTour(c *gin.Context) {
	var req reqdto.PackageRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.cmds.CreateTour(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Failed to create tour")
		return
	}
	c.JSON(http.StatusCreated, orEmptyRecord(record))
}

// @Summary Update tour
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Param request body reqdto.PackageRequest true "Tour"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 501 {object} httperr.Response
// @Router /api/admin/tours/{id} [put]
func (h *AdminHandler) UpdateTour(c *gin.Context) {
	var req reqdto.PackageRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.cmds.UpdateTour(c.Request.Context(), c.Param("id"), req)
	h.respondRecord(c, record, err, "Failed to update tour")
}

// @Summary Delete tour
// @Tags admin
// @Param id path string true "Tour ID"
// @Success 204 "No Content"
// @Failure 501 {object} httperr.Response
// @Router /api/admin/tours/{id} [delete]
func (h *AdminHandler) DeleteTour(c *gin.Context) {
	if err := h.cmds.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err, "Failed to delete tour")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Destinations
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.DestinationsResponse
// @Router /api/admin/destinations [get]
func (h *AdminHandler) ListDestinations(c *gin.Context) {
	cities, err := h.catalog.Destinations(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load destinations")
		return
	}
	c.JSON(http.StatusOK, resdto.DestinationsResponse{Destinations: cities})
}

// @Summary List reservations
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.RecordListResponse
// @Router /api/admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	records, err := h.q.Reservations(c.Request.Context())
	h.respondList(c, records, err, "Failed to load reservations")
}

// @Summary Update reservation
// @Description The body is relayed to the booking service unchanged
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body map[string]any true "Fields to change"
// @Success 200 {object} map[string]any
// @Router /api/admin/reservations/{id} [put]
func (h *AdminHandler) UpdateReservation(c *gin.Context) {
	var changes gateway.Record
	if !bindJSON(c, &changes) {
		return
	}
	record, err := h.cmds.UpdateReservation(c.Request.Context(), c.Param("id"), changes)
	h.respondRecord(c, record, err, "Failed to update reservation")
}

// @Summary Cancel reservation
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest true "Reason"
// @Success 200 {object} map[string]any
// @Router /api/admin/reservations/{id}/cancel [post]
func (h *AdminHandler) CancelReservation(c *gin.Context) {
	var req reqdto.CancelReservationRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.cmds.CancelReservation(c.Request.Context(), c.Param("id"), req)
	h.respondRecord(c, record, err, "Failed to cancel reservation")
}

// @Summary Reservation details
// @Tags admin
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} map[string]any
// @Router /api/admin/reservations/{id}/details [get]
func (h *AdminHandler) ReservationDetails(c *gin.Context) {
	record, err := h.q.ReservationDetails(c.Request.Context(), c.Param("id"))
	h.respondRecord(c, record, err, "Failed to load reservation")
}

// @Summary List invoices
// @Tags admin
// @Produce json
// @Success 200 {object} resdto.RecordListResponse
// @Router /api/admin/invoices [get]
func (h *AdminHandler) ListInvoices(c *gin.Context) {
	records, err := h.q.Invoices(c.Request.Context())
	h.respondList(c, records, err, "Failed to load invoices")
}

func (h *AdminHandler) respondList(c *gin.Context, records []gateway.Record, err error, msg string) {
	if err != nil {
		httperr.Abort(c, err, msg)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRecords(records))
}

func (h *AdminHandler) respondRecord(c *gin.Context, record gateway.Record, err error, msg string) {
	if err != nil {
		httperr.Abort(c, err, msg)
		return
	}
	c.JSON(http.StatusOK, orEmptyRecord(record))
}

func orEmptyRecord(r gateway.Record) gateway.Record {
	if r == nil {
		return gateway.Record{}
	}
	return r
}
