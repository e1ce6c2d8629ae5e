//go:build unit

package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"tour-storefront/internal/infra"
	"tour-storefront/internal/infra/transport/rest"
	"tour-storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newClient(t *testing.T, h http.HandlerFunc) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return rest.NewClient(srv.URL+"/", time.Second, discard)
}

func TestClientDo(t *testing.T) {
	ctx := context.Background()

	t.Run("success: sends json and decodes the body", func(t *testing.T) {
		var gotMethod, gotPath, gotQuery, gotType string
		var gotBody map[string]any
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
			gotType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = w.Write([]byte(`{"holdId":"H1"}`))
		})

		var out map[string]any
		err := c.Do(ctx, rest.Request{
			Operation: "test.hold",
			Method:    http.MethodPost,
			Path:      "/hold",
			Query:     url.Values{"a": {"1"}},
			Body:      map[string]int{"personas": 3},
		}, &out)

		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "/hold", gotPath)
		assert.Equal(t, "a=1", gotQuery)
		assert.Equal(t, "application/json", gotType)
		assert.Equal(t, float64(3), gotBody["personas"])
		assert.Equal(t, "H1", out["holdId"])
	})

	t.Run("success: empty body leaves out untouched", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		out := map[string]any{"kept": true}
		require.NoError(t, c.Do(ctx, rest.Request{Operation: "test.delete", Method: http.MethodDelete, Path: "/1"}, &out))
		assert.Equal(t, true, out["kept"])
	})

	t.Run("rejection carries backend message and status", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"mensaje":"Cupo agotado"}`))
		})

		err := c.Do(ctx, rest.Request{Operation: "test.hold", Path: "/hold", FailureMessage: "Error creating hold"}, nil)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrBackendRejected))
		assert.False(t, errs.Is(err, errs.ErrBackendUnavailable))
		assert.Equal(t, "Cupo agotado", infra.MessageOf(err, ""))
		assert.Equal(t, http.StatusConflict, infra.StatusOf(err))
		assert.True(t, rest.IsStatus(err, http.StatusConflict))
	})

	t.Run("rejection without message uses the failure message", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		err := c.Do(ctx, rest.Request{Operation: "test.book", Path: "/book", FailureMessage: "Error confirming booking"}, nil)
		assert.Equal(t, "Error confirming booking", infra.MessageOf(err, ""))
	})

	t.Run("malformed body is a backend failure", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`<html>oops</html>`))
		})

		var out map[string]any
		err := c.Do(ctx, rest.Request{Operation: "test.list", Path: "/list"}, &out)
		assert.True(t, infra.IsKind(err, infra.KindMalformed))
		assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))
	})

	t.Run("unreachable backend is a transport failure", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close()
		c := rest.NewClient(srv.URL, 200*time.Millisecond, discard)

		err := c.Do(ctx, rest.Request{Operation: "test.ping", Path: "/"}, nil)
		assert.True(t, infra.IsKind(err, infra.KindTransport))
		assert.True(t, errs.Is(err, errs.ErrBackendUnavailable))
	})
}

func TestExtractMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "message key", body: `{"message":"bad"}`, want: "bad"},
		{name: "spanish key", body: `{"Mensaje":"sin cupo"}`, want: "sin cupo"},
		{name: "nested error", body: `{"error":{"message":"nested"}}`, want: "nested"},
		{name: "json string", body: `"plain"`, want: "plain"},
		{name: "plain text", body: `Not allowed`, want: "Not allowed"},
		{name: "html is ignored", body: `<html></html>`, want: ""},
		{name: "empty", body: ``, want: ""},
		{name: "no known key", body: `{"code":1}`, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rest.ExtractMessage([]byte(tc.body)))
		})
	}
}
