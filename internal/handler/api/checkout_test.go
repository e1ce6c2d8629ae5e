//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"tour-storefront/internal/domain/cart"
	"tour-storefront/internal/domain/checkout"
	"tour-storefront/internal/handler/api"
	reqdto "tour-storefront/internal/handler/dto/request"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/commands"
	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/tests/common/builder"
	"tour-storefront/tests/common/httptest"
	commandsmock "tour-storefront/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	visitor      uuid.UUID
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.visitor = uuid.New()

	s.router.Use(withVisitor(s.visitor))
	s.router.POST("/checkout", api.NewCheckoutHandler(s.mockCommands).Checkout)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

func checkoutBody() map[string]any {
	return map[string]any{
		"nroCliente": "C-1",
		"nroCuenta":  12345,
		"travelers": []map[string]any{
			{"nombre": "Ana", "apellido": "Pérez", "identificacion": "1712345678"},
		},
	}
}

func bookedItem(s *CheckoutHandlerTestSuite, index int, line cart.LineItem, holdID, reservationID string) *checkout.Item {
	it := checkout.NewItem(index, line)
	s.Require().NoError(it.MarkAvailable())
	s.Require().NoError(it.MarkHeld(holdID))
	s.Require().NoError(it.MarkBooked(reservationID))
	return it
}

func (s *CheckoutHandlerTestSuite) TestCheckout() {
	url := "/checkout"
	line := builder.NewCartItemBuilder().BuildDomain()

	s.Run("success: completed checkout reports the invoice and redirect", func() {
		result := &commands.CheckoutResult{
			Status:         commands.CheckoutCompleted,
			Message:        "Booking confirmed",
			RedirectTo:     "/confirmation",
			TransactionID:  "TX1",
			ReservationIDs: []string{"R1"},
			Invoice:        &gateway.Invoice{Number: "F-001", URI: "https://facturas.example.com/F-001"},
			Charged:        cart.TotalsOf([]cart.LineItem{line}),
			Items:          []*checkout.Item{bookedItem(s, 0, line, "H1", "R1")},
		}
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.visitor, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, req reqdto.CheckoutRequest) (*commands.CheckoutResult, error) {
				domainReq := req.ToDomain()
				s.Equal("C-1", domainReq.ClientID)
				s.Equal("12345", domainReq.SourceAccount)
				s.Require().Len(domainReq.Travelers, 1)
				s.Equal("Ana", domainReq.Travelers[0].Name)
				return result, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody())

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("completed", response.Status)
		s.Equal("/confirmation", response.RedirectTo)
		s.Equal([]string{"R1"}, response.ReservationIDs)
		s.Equal("280.00", response.Charged.Total)
		s.Require().NotNil(response.Invoice)
		s.Equal("F-001", response.Invoice.Number)
		s.Require().Len(response.Items, 1)
		s.Equal("booked", response.Items[0].State)
		s.Equal("R1", response.Items[0].ReservationID)
	})

	s.Run("success: declined payment is still a 200 with per-item failures", func() {
		failed := checkout.NewItem(0, line)
		s.Require().NoError(failed.MarkAvailable())
		s.Require().NoError(failed.MarkHeld("H1"))
		s.Require().NoError(failed.Fail(checkout.StepPayment, "Saldo insuficiente"))

		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.visitor, gomock.Any()).
			Return(&commands.CheckoutResult{
				Status:  commands.CheckoutPaymentDeclined,
				Message: "Payment was declined",
				Items:   []*checkout.Item{failed},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody())

		var response resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Success)
		s.Equal("payment_declined", response.Status)
		s.Empty(response.ReservationIDs)
		s.Nil(response.Invoice)
		s.Equal("payment", response.Items[0].FailedAt)
		s.Equal("Saldo insuficiente", response.Items[0].Reason)
	})

	s.Run("error: 401 Unauthorized with a login redirect when logged out", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.visitor, gomock.Any()).
			Return(nil, errs.Mark(errors.New("you must be logged in to check out"), errs.ErrUnauthenticated)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody())
		httptest.AssertLoginRedirect(s.T(), rec)
	})

	s.Run("error: 400 Bad Request when a precondition fails", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.visitor, gomock.Any()).
			Return(nil, errs.Mark(errors.New("the cart is empty"), errs.ErrDomainValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "the cart is empty")
	})

	s.Run("error: 409 Conflict while another checkout runs", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), s.visitor, gomock.Any()).
			Return(nil, commands.ErrCheckoutInProgress).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, checkoutBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already being processed")
	})

	s.Run("error: 400 Bad Request when a traveler lacks an identification", func() {
		body := checkoutBody()
		body["travelers"] = []map[string]any{{"nombre": "Ana", "apellido": "Pérez"}}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
