//go:build e2e

package stub

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type response struct {
	status int
	body   string
}

// Backend fakes the REST services behind the storefront. Routes are keyed by "METHOD /path".
type Backend struct {
	srv *httptest.Server

	mu     sync.Mutex
	routes map[string]response
	calls  map[string][]map[string]any
}

func defaultRoutes() map[string]response {
	ok := func(body string) response { return response{status: http.StatusOK, body: body} }
	return map[string]response{
		"POST /login":        ok(`{"usuario":{"IdUsuario":42,"Nombre":"Ana","Apellido":"Pérez","Identificacion":"1712345678"}}`),
		"GET /search":        ok(`[{"idPaquete":"P1","nombre":"Galápagos Explorer","ciudad":"Puerto Ayora","precioActual":100,"duracion":5},{"idPaquete":"P2","nombre":"Quito Colonial","ciudad":"Quito","precioActual":50,"duracion":1}]`),
		"POST /availability": ok(`{"disponible":true}`),
		"POST /hold":         ok(`{"HoldId":"H-1","FechaExpiracion":"2026-07-01T10:00:00"}`),
		"POST /book":         ok(`{"IdReserva":501,"CodigoReserva":"ABC","Estado":"CONFIRMADA"}`),
		"POST /transaccion":  ok(`{"exito":true,"mensaje":"OK","transaccion_id":"TX-9"}`),
		"POST /invoices":     ok(`{"idFactura":12,"numero":"F-001","uriFactura":"/f/12.pdf"}`),
	}
}

func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{routes: defaultRoutes(), calls: map[string][]map[string]any{}}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *Backend) URL() string {
	return b.srv.URL
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	var body map[string]any
	_ = json.NewDecoder(r.Body).Decode(&body)

	b.mu.Lock()
	b.calls[key] = append(b.calls[key], body)
	resp, ok := b.routes[key]
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Recurso no encontrado"}`))
		return
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write([]byte(resp.body))
}

// Respond replaces the canned response of one route until Reset.
func (b *Backend) Respond(key string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[key] = response{status: status, body: body}
}

func (b *Backend) Calls(key string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]any(nil), b.calls[key]...)
}

func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes = defaultRoutes()
	b.calls = map[string][]map[string]any{}
}
