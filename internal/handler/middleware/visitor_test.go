//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/handler/middleware"
	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/cookie"
	"tour-storefront/internal/pkg/jwt"
	"tour-storefront/tests/common/builder"
	"tour-storefront/tests/common/httptest"
	sharedmock "tour-storefront/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VisitorMiddlewareTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	sessions *sharedmock.MockSessionStore
	tokens   *jwt.Service
	mw       *middleware.VisitorMiddleware

	seenVisitor uuid.UUID
	seenSession *user.Session
}

func (s *VisitorMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()

	s.mockCtrl = gomock.NewController(s.T())
	s.sessions = sharedmock.NewMockSessionStore(s.mockCtrl)
	s.tokens = jwt.NewService(cfg.Visitor.Secret, cfg.Visitor.Duration)
	s.mw = middleware.NewVisitorMiddleware(s.tokens, s.sessions, cfg)
	s.seenVisitor = uuid.Nil
	s.seenSession = nil

	capture := func(c *gin.Context) {
		s.seenVisitor, _ = middleware.GetVisitorID(c)
		s.seenSession, _ = middleware.GetSession(c)
		c.Status(http.StatusNoContent)
	}

	s.router = gin.New()
	s.router.Use(s.mw.Identify())
	s.router.GET("/open", capture)
	s.router.GET("/account", s.mw.RequireSession(), capture)
	s.router.GET("/admin", s.mw.RequireAdmin(), capture)
}

func (s *VisitorMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVisitorMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(VisitorMiddlewareTestSuite))
}

func (s *VisitorMiddlewareTestSuite) visitorCookie(id uuid.UUID) *http.Cookie {
	token, err := s.tokens.GenerateToken(id)
	s.Require().NoError(err)
	return &http.Cookie{Name: cookie.VisitorCookieName, Value: token}
}

func (s *VisitorMiddlewareTestSuite) TestIdentify() {
	s.Run("success: a new visitor gets an id and a cookie", func() {
		s.sessions.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil)

		s.Equal(http.StatusNoContent, rec.Code)
		s.NotEqual(uuid.Nil, s.seenVisitor)
		s.Nil(s.seenSession)

		issued := httptest.IssuedVisitorCookie(rec)
		s.Require().NotNil(issued)
		s.True(issued.HttpOnly)
		claims, err := s.tokens.ValidateToken(issued.Value)
		s.Require().NoError(err)
		s.Equal(s.seenVisitor, claims.VisitorID)
	})

	s.Run("success: a returning visitor keeps its id and no cookie is issued", func() {
		visitor := uuid.New()
		sess := builder.NewAuthBuilder().BuildSession(s.T())
		s.sessions.EXPECT().Load(gomock.Any(), visitor).Return(sess, true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil, s.visitorCookie(visitor))

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(visitor, s.seenVisitor)
		s.Same(sess, s.seenSession)
		s.Nil(httptest.IssuedVisitorCookie(rec))
	})

	s.Run("success: a forged cookie is replaced", func() {
		forged := jwt.NewService("someone-else", time.Hour)
		token, err := forged.GenerateToken(uuid.New())
		s.Require().NoError(err)
		s.sessions.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil,
			&http.Cookie{Name: cookie.VisitorCookieName, Value: token})

		s.Equal(http.StatusNoContent, rec.Code)
		s.NotNil(httptest.IssuedVisitorCookie(rec))
	})

	s.Run("success: a session lookup failure continues as guest", func() {
		visitor := uuid.New()
		s.sessions.EXPECT().Load(gomock.Any(), visitor).Return(nil, false, errors.New("redis down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/open", nil, s.visitorCookie(visitor))

		s.Equal(http.StatusNoContent, rec.Code)
		s.Equal(visitor, s.seenVisitor)
		s.Nil(s.seenSession)
	})
}

func (s *VisitorMiddlewareTestSuite) TestRequireSession() {
	visitor := uuid.New()

	s.Run("error: 401 Unauthorized with a login redirect when logged out", func() {
		s.sessions.EXPECT().Load(gomock.Any(), visitor).Return(nil, false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/account", nil, s.visitorCookie(visitor))

		httptest.AssertLoginRedirect(s.T(), rec)
	})

	s.Run("success: passes a logged-in visitor", func() {
		s.sessions.EXPECT().Load(gomock.Any(), visitor).
			Return(builder.NewAuthBuilder().BuildSession(s.T()), true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/account", nil, s.visitorCookie(visitor))
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *VisitorMiddlewareTestSuite) TestRequireAdmin() {
	visitor := uuid.New()

	s.Run("error: 401 Unauthorized when logged out", func() {
		s.sessions.EXPECT().Load(gomock.Any(), visitor).Return(nil, false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, s.visitorCookie(visitor))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Login required")
	})

	s.Run("error: 403 Forbidden for a customer", func() {
		s.sessions.EXPECT().Load(gomock.Any(), visitor).
			Return(builder.NewAuthBuilder().BuildSession(s.T()), true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, s.visitorCookie(visitor))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("success: passes an admin", func() {
		s.sessions.EXPECT().Load(gomock.Any(), visitor).
			Return(builder.NewAuthBuilder().AsAdmin().BuildSession(s.T()), true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin", nil, s.visitorCookie(visitor))
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *VisitorMiddlewareTestSuite) TestSetSession() {
	c, _ := gin.CreateTestContext(nil)
	sess := builder.NewAuthBuilder().BuildSession(s.T())

	middleware.SetSession(c, sess)
	got, ok := middleware.GetSession(c)
	s.True(ok)
	s.Same(sess, got)

	middleware.SetSession(c, nil)
	_, ok = middleware.GetSession(c)
	s.False(ok)
}

func (s *VisitorMiddlewareTestSuite) TestSetSession_Concurrent() {
	c, _ := gin.CreateTestContext(nil)
	sess := builder.NewAuthBuilder().BuildSession(s.T())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				middleware.SetSession(c, nil)
			} else {
				middleware.SetSession(c, sess)
			}
		}(i)
		go func() {
			defer wg.Done()
			_, _ = middleware.GetSession(c)
		}()
	}
	wg.Wait()

	middleware.SetSession(c, nil)
	_, ok := middleware.GetSession(c)
	s.False(ok)
}
