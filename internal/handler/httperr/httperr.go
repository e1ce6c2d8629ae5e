package httperr

import (
	"net/http"

	"tour-storefront/internal/domain/user"
	"tour-storefront/internal/infra"
	"tour-storefront/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort maps err onto a status by its category. Backend messages are relayed as they are,
// validation failures carry per-field detail, and anything unrecognized becomes fallback with 500.
func Abort(c *gin.Context, err error, fallback string) {
	switch {
	case errs.Is(err, errs.ErrDomainValidation):
		var detail any
		if fe, ok := user.AsFieldErrors(err); ok {
			detail = fe
		}
		AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), detail)
	case errs.Is(err, errs.ErrUnauthenticated):
		AbortWithError(c, http.StatusUnauthorized, err, "Login required", gin.H{"redirectTo": "/login"})
	case errs.Is(err, errs.ErrForbidden):
		AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
	case errs.Is(err, errs.ErrBackendRejected):
		AbortWithError(c, rejectedStatus(err), err, infra.MessageOf(err, fallback), nil)
	case errs.Is(err, errs.ErrBackendUnavailable):
		AbortWithError(c, http.StatusBadGateway, err, infra.MessageOf(err, "Backend service unavailable"), nil)
	case errs.Is(err, errs.ErrUnsupported):
		AbortWithError(c, http.StatusNotImplemented, err, infra.MessageOf(err, "Operation not available"), nil)
	case errs.Is(err, errs.ErrStorageOperationFailed):
		AbortWithError(c, http.StatusServiceUnavailable, err, "Storage unavailable", nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}

// rejectedStatus keeps the backend's 4xx; other statuses are reported as 422.
func rejectedStatus(err error) int {
	if s := infra.StatusOf(err); s >= 400 && s < 500 {
		return s
	}
	return http.StatusUnprocessableEntity
}

func validationMessage(err error) string {
	if _, ok := user.AsFieldErrors(err); ok {
		return "Validation failed"
	}
	return errs.Cause(err).Error()
}
