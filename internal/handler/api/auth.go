package api

import (
	"net/http"

	reqdto "tour-storefront/internal/handler/dto/request"
	resdto "tour-storefront/internal/handler/dto/response"
	"tour-storefront/internal/handler/httperr"
	"tour-storefront/internal/handler/middleware"
	"tour-storefront/internal/infra"
	"tour-storefront/internal/pkg/errs"
	"tour-storefront/internal/usecase/commands"
	"tour-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const homePath = "/"

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.SessionQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.SessionQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary User login
// @Description Login with email and password; the session is bound to the visitor cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	var req reqdto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	sess, err := h.cmds.Login(c.Request.Context(), visitor, req)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, infra.MessageOf(err, "Invalid email or password"), nil)
			return
		}
		httperr.Abort(c, err, "Login failed")
		return
	}

	middleware.SetSession(c, sess)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		User:       resdto.FromSession(sess),
		RedirectTo: homePath,
	})
}

// @Summary Register user
// @Description Create a customer account in the user service
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserProfile(profile))
}

// @Summary Register external user
// @Description Register a user known to the booking service only
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ExternalRegisterRequest true "External registration request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /api/auth/register/external [post]
func (h *AuthHandler) RegisterExternal(c *gin.Context) {
	var req reqdto.ExternalRegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	profile, err := h.cmds.RegisterExternal(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err, "Registration failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserProfile(profile))
}

// @Summary Logout
// @Description Forget the session of this visitor; the cart is kept
// @Tags auth
// @Success 204 "No Content"
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	if err := h.cmds.Logout(c.Request.Context(), visitor); err != nil {
		httperr.Abort(c, err, "Logout failed")
		return
	}
	middleware.SetSession(c, nil)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Get the logged-in user of this visitor
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}
	sess, err := h.q.Current(c.Request.Context(), visitor)
	if err != nil {
		httperr.Abort(c, err, "Failed to load session")
		return
	}
	c.JSON(http.StatusOK, resdto.FromSession(sess))
}
