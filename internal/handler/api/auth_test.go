//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"tour-storefront/internal/handler/api"
	reqdto "tour-storefront/internal/handler/dto/request"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/infra"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/commands"
	"tour-storefront/internal/usecase/queries"
	"tour-storefront/tests/common/builder"
	"tour-storefront/tests/common/httptest"
	"tour-storefront/tests/common/testutil"
	commandsmock "tour-storefront/tests/mock/commands"
	queriesmock "tour-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockSessionQueries
	handler      *api.AuthHandler
	visitor      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries)
	s.visitor = uuid.New()

	s.router.Use(withVisitor(s.visitor))
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/register/external", s.handler.RegisterExternal)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: returns 200 OK with the session and home redirect", func() {
		sess := builder.NewAuthBuilder().BuildSession(s.T())
		s.mockCommands.EXPECT().Login(gomock.Any(), s.visitor, reqBody).
			Return(sess, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("/", response.RedirectTo)
		s.Equal(sess.Email(), response.User.Email)
		s.Equal("customer", response.User.Role)
		s.False(response.User.IsAdmin)
	})

	s.Run("success: admin email yields an admin session", func() {
		admin := builder.NewAuthBuilder().AsAdmin()
		req := admin.BuildDTO()
		s.mockCommands.EXPECT().Login(gomock.Any(), s.visitor, req).
			Return(admin.BuildSession(s.T()), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.User.IsAdmin)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "email boundary OK (valid email)", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "email boundary invalid (invalid email)", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}

		missing := []testCaseAuth{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}

		empty := []testCaseAuth{
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		allValidationTestCases := [][]testCaseAuth{bound, missing, empty}

		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						email, _ := requestMap["email"].(string)
						password, _ := requestMap["password"].(string)
						expectedReq := (&builder.AuthBuilder{Email: email, Password: password}).BuildDTO()
						s.mockCommands.EXPECT().Login(gomock.Any(), s.visitor, expectedReq).
							Return(builder.NewAuthBuilder().BuildSession(s.T()), nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		rejected := infra.WrapGatewayErr(nil, infra.KindRejected, http.StatusUnauthorized, "Credenciales incorrectas", nil)

		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid credentials without backend message",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid email or password",
			},
			{
				name:           "invalid credentials relay the backend message",
				commandsError:  errs.Mark(rejected, commands.ErrInvalidCredentials),
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Credenciales incorrectas",
			},
			{
				name:           "auth service unreachable",
				commandsError:  infra.WrapGatewayErr(nil, infra.KindTransport, 0, "Authentication service unavailable", errors.New("dial tcp: connection refused")),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "Authentication service unavailable",
			},
			{
				name:           "session could not be stored",
				commandsError:  errs.Mark(errors.New("redis down"), errs.ErrStorageOperationFailed),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "Storage unavailable",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Login failed",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), s.visitor, reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"email":`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := builder.NewAuthBuilder().BuildRegisterDTO()

	s.Run("success: returns 201 Created with the new user", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(builder.NewAuthBuilder().BuildProfile(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("42", response.ID)
		s.Equal("ana@example.com", response.Email)
		s.Equal("Ana", response.Nombre)
	})

	s.Run("error: 400 Bad Request lists every failing field", func() {
		bad := reqdto.RegisterRequest{Email: "not-an-email", Password: "short"}
		_, validationErr := bad.ToDomain()
		s.Require().Error(validationErr)

		s.mockCommands.EXPECT().Register(gomock.Any(), bad).
			Return(nil, validationErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, bad)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")

		detail := httptest.ErrorDetail(s.T(), rec)
		s.Contains(detail, "email")
		s.Contains(detail, "password")
	})

	s.Run("error: backend rejection keeps its status and message", func() {
		rejected := infra.WrapGatewayErr(nil, infra.KindRejected, http.StatusConflict, "El correo ya está registrado", nil)
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody).
			Return(nil, errs.Mark(rejected, commands.ErrRegistrationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "El correo ya está registrado")
	})
}

func (s *AuthHandlerTestSuite) TestRegisterExternal() {
	url := "/auth/register/external"
	reqBody := reqdto.ExternalRegisterRequest{Nombre: "Ana", Apellido: "Pérez", Correo: "ana@example.com"}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().RegisterExternal(gomock.Any(), reqBody).
			Return(builder.NewAuthBuilder().BuildProfile(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on invalid email", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("correo", "nope"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 501 Not Implemented when the transport cannot register", func() {
		unsupported := infra.WrapGatewayErr(nil, infra.KindUnsupported, 0, "External registration is not available over SOAP", nil)
		s.mockCommands.EXPECT().RegisterExternal(gomock.Any(), reqBody).
			Return(nil, unsupported).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotImplemented, "not available over SOAP")
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	url := "/auth/logout"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), s.visitor).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: storage failure is reported as 503", func() {
		s.mockCommands.EXPECT().Logout(gomock.Any(), s.visitor).
			Return(errs.Mark(errors.New("redis down"), errs.ErrStorageOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Storage unavailable")
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the current session", func() {
		sess := builder.NewAuthBuilder().BuildSession(s.T())
		s.mockQueries.EXPECT().Current(gomock.Any(), s.visitor).Return(sess, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.SessionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("42", response.ID)
		s.Equal("Pérez", response.Apellido)
		s.Equal("1712345678", response.Identificacion)
	})

	s.Run("error: 401 Unauthorized when logged out", func() {
		s.mockQueries.EXPECT().Current(gomock.Any(), s.visitor).
			Return(nil, errs.Mark(queries.ErrNoSession, errs.ErrUnauthenticated)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Login required")
	})
}

func (s *AuthHandlerTestSuite) TestMissingVisitor() {
	router := gin.New()
	router.GET("/auth/me", s.handler.Me)

	rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/auth/me", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
}
