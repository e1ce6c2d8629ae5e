//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"tour-storefront/internal/handler/middleware"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertCartCount checks the badge header that cart mutations attach to their response.
func AssertCartCount(t *testing.T, w *httptest.ResponseRecorder, count int) {
	t.Helper()
	AssertHeaders(t, w, map[string]string{middleware.CartCountHeader: strconv.Itoa(count)})
}
