//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tour-storefront/internal/handler/api"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/infra"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/tests/common/builder"
	"tour-storefront/tests/common/httptest"
	queriesmock "tour-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	handler := api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/tours", handler.Search)
	s.router.GET("/tours/featured", handler.Featured)
	s.router.GET("/tours/destinations", handler.Destinations)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestSearch() {
	s.Run("success: forwards the query filters", func() {
		maxPrice := 500.0
		s.mockQueries.EXPECT().Search(gomock.Any(), gateway.SearchFilter{
			City:         "Quito",
			StartDate:    "2026-07-01",
			ActivityType: "Aventura",
			MaxPrice:     &maxPrice,
			Sort:         "precio",
		}).Return([]gateway.Package{builder.NewPackageBuilder().Build()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/tours?city=Quito&fechainicio=2026-07-01&tipoActividad=Aventura&precioMax=500&sort=precio", nil)

		var response []resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Galápagos Explorer", response[0].Name)
		s.Equal("Puerto Ayora", response[0].City)
		s.Equal(5, response[0].DurationDays)
	})

	s.Run("success: an unparsable max price is ignored", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gateway.SearchFilter{}).Return([]gateway.Package{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours?precioMax=cheap", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: 502 when the catalog is unreachable", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), gateway.SearchFilter{}).
			Return(nil, infra.WrapGatewayErr(nil, infra.KindTransport, 0, "Catalog service unavailable", nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Catalog service unavailable")
	})
}

func (s *CatalogHandlerTestSuite) TestFeatured() {
	s.Run("success: returns the featured tours", func() {
		p2 := builder.NewPackageBuilder().With(func(p *gateway.Package) { p.ID = "P2" }).Build()
		s.mockQueries.EXPECT().Featured(gomock.Any()).
			Return([]gateway.Package{builder.NewPackageBuilder().Build(), p2}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours/featured", nil)

		var response []resdto.PackageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("P2", response[1].ID)
	})
}

func (s *CatalogHandlerTestSuite) TestDestinations() {
	s.Run("success: returns the city list", func() {
		s.mockQueries.EXPECT().Destinations(gomock.Any()).Return([]string{"Cuenca", "Quito"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/tours/destinations", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"destinations":["Cuenca","Quito"]}`, rec.Body.String())
	})
}
