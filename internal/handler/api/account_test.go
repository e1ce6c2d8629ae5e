//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/handler/api"
	reqdto "tour-storefront/internal/handler/dto/request"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/infra"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/tests/common/builder"
	"tour-storefront/tests/common/httptest"
	commandsmock "tour-storefront/tests/mock/commands"
	queriesmock "tour-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	guest        *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAccountCommands
	mockQueries  *queriesmock.MockAccountQueries
	visitor      uuid.UUID
	sess         *user.Session
}

func (s *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAccountCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAccountQueries(s.mockCtrl)
	s.visitor = uuid.New()
	s.sess = builder.NewAuthBuilder().BuildSession(s.T())
	handler := api.NewAccountHandler(s.mockCommands, s.mockQueries)

	register := func(r *gin.Engine) {
		r.PUT("/account/profile", handler.UpdateProfile)
		r.GET("/account/reservations", handler.Reservations)
		r.POST("/account/reservations/:id/cancel", handler.CancelReservation)
		r.GET("/account/invoices", handler.Invoices)
	}

	s.router = gin.New()
	s.router.Use(withVisitor(s.visitor), withSession(s.sess))
	register(s.router)

	s.guest = gin.New()
	s.guest.Use(withVisitor(s.visitor))
	register(s.guest)
}

func (s *AccountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestUpdateProfile() {
	url := "/account/profile"
	req := reqdto.ProfileRequest{Nombre: "Ana María", Apellido: "Pérez", Email: "ana@example.com"}

	s.Run("success: returns the refreshed session", func() {
		s.mockCommands.EXPECT().UpdateProfile(gomock.Any(), s.visitor, s.sess, req).
			Return(s.sess.WithProfile("Ana María", "Pérez", "ana@example.com"), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, req)

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Ana María", response.Nombre)
		s.Equal("42", response.ID)
	})

	s.Run("error: 401 Unauthorized without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.guest, http.MethodPut, url, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Login required")
	})
}

func (s *AccountHandlerTestSuite) TestReservations() {
	s.Run("success: lists the user's reservations", func() {
		s.mockQueries.EXPECT().MyReservations(gomock.Any(), s.sess).
			Return([]gateway.Record{{"idReserva": "R1"}, {"idReserva": "R2"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/account/reservations", nil)

		var response resdto.RecordListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(2, response.Count)
		s.Equal("R1", response.Items[0]["idReserva"])
	})

	s.Run("success: no reservations renders an empty list", func() {
		s.mockQueries.EXPECT().MyReservations(gomock.Any(), s.sess).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/account/reservations", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"items":[],"count":0}`, rec.Body.String())
	})
}

func (s *AccountHandlerTestSuite) TestCancelReservation() {
	url := "/account/reservations/R1/cancel"

	s.Run("success: relays the backend record", func() {
		req := reqdto.CancelReservationRequest{Motivo: "Cambio de planes"}
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), s.sess, "R1", req).
			Return(gateway.Record{"estado": "CANCELADA"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"estado":"CANCELADA"}`, rec.Body.String())
	})

	s.Run("error: 400 Bad Request without a reason", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: backend rejection is relayed", func() {
		req := reqdto.CancelReservationRequest{Motivo: "Cambio de planes"}
		rejected := infra.WrapGatewayErr(nil, infra.KindRejected, http.StatusNotFound, "Reserva no encontrada", nil)
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), s.sess, "R1", req).
			Return(nil, rejected).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reserva no encontrada")
	})
}

func (s *AccountHandlerTestSuite) TestInvoices() {
	s.Run("error: 502 when the invoice service is down", func() {
		s.mockQueries.EXPECT().MyInvoices(gomock.Any(), s.sess).
			Return(nil, infra.WrapGatewayErr(nil, infra.KindTransport, 0, "Invoice service unavailable", nil)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/account/invoices", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Invoice service unavailable")
	})
}
