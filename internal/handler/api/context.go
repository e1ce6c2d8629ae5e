package api

import (
	"errors"
	"net/http"

	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/handler/httperr"
	"tour-storefront/internal/handler/middleware"
	"tour-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingVisitor = errors.New("visitor middleware did not run")

func visitorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetVisitorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingVisitor, "Internal server error", nil)
	}
	return id, ok
}

func session(c *gin.Context) (*user.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		httperr.Abort(c, errs.ErrUnauthenticated, "Login required")
	}
	return sess, ok
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return false
	}
	return true
}
