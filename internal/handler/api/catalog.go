package api

import (
	"net/http"

	reqdto "tour-storefront/internal/handler/dto/request"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/handler/httperr"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary Search tours
// @Description Search tour packages; every filter is optional
// @Tags tours
// @Produce json
// @Param city query string false "City"
// @Param fechainicio query string false "Start date (YYYY-MM-DD)"
// @Param tipoActividad query string false "Activity type"
// @Param precioMax query number false "Maximum price"
// @Param sort query string false "Sort key"
// @Success 200 {array} resdto.PackageResponse
// @Failure 502 {object} httperr.Response
// @Router /api/tours [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	packages, err := h.q.Search(c.Request.Context(), req.ToFilter())
	h.respond(c, packages, err)
}

// @Summary Featured tours
// @Description The first tours of an unfiltered search
// @Tags tours
// @Produce json
// @Success 200 {array} resdto.PackageResponse
// @Router /api/tours/featured [get]
func (h *CatalogHandler) Featured(c *gin.Context) {
	packages, err := h.q.Featured(c.Request.Context())
	h.respond(c, packages, err)
}

// @Summary Destinations
// @Description Distinct cities with at least one tour, sorted
// @Tags tours
// @Produce json
// @Success 200 {object} resdto.DestinationsResponse
// @Router /api/tours/destinations [get]
func (h *CatalogHandler) Destinations(c *gin.Context) {
	cities, err := h.q.Destinations(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load destinations")
		return
	}
	c.JSON(http.StatusOK, resdto.DestinationsResponse{Destinations: cities})
}

func (h *CatalogHandler) respond(c *gin.Context, packages []gateway.Package, err error) {
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
