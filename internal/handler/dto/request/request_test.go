//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	reqdto "tour-storefront/internal/handler/dto/request"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	cases := []struct {
		in   string
		want int
		err  bool
	}{
		{in: `2`, want: 2},
		{in: `"3"`, want: 3},
		{in: `2.9`, want: 2},
		{in: `"4 personas"`, want: 4},
		{in: `" 5 "`, want: 5},
		{in: `"abc"`, err: true},
		{in: `true`, err: true},
		{in: `null`, err: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var c reqdto.Count
			err := json.Unmarshal([]byte(tc.in), &c)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Int())
		})
	}

	var missing *reqdto.Count
	assert.Equal(t, 0, missing.Int())
}

func TestAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		err  bool
	}{
		{in: `100`, want: "100"},
		{in: `"99.50"`, want: "99.5"},
		{in: `"1200 USD"`, want: "1200"},
		{in: `"USD 10"`, err: true},
		{in: `{}`, err: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var a reqdto.Amount
			err := json.Unmarshal([]byte(tc.in), &a)
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(a.Decimal), "got %s", a.Decimal)
		})
	}
}

func TestText(t *testing.T) {
	var body struct {
		A reqdto.Text `json:"a"`
		B reqdto.Text `json:"b"`
		C reqdto.Text `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":12345,"b":" P1 ","c":null}`), &body))

	assert.Equal(t, "12345", body.A.String())
	assert.Equal(t, "P1", body.B.String())
	assert.Equal(t, "", body.C.String())
}

func TestAddCartItemRequest(t *testing.T) {
	raw := `{"tour":{"idPaquete":7,"nombre":" Quito Colonial ","precioActual":"80.00","imagenUrl":"q.jpg","duracion":"2"},"adults":"2","children":1}`

	var req reqdto.AddCartItemRequest
	require.NoError(t, json.Unmarshal([]byte(raw), &req))
	tour := req.ToTour()

	assert.Equal(t, "7", tour.ID)
	assert.Equal(t, "Quito Colonial", tour.Name)
	assert.True(t, decimal.NewFromInt(80).Equal(tour.Price))
	assert.Equal(t, 2, tour.DurationDays)
	assert.Equal(t, 2, req.Adults.Int())
	assert.Equal(t, 1, req.Children.Int())
}

func TestSearchRequest(t *testing.T) {
	f := reqdto.SearchRequest{City: " Quito ", PrecioMax: "150.5"}.ToFilter()
	require.NotNil(t, f.MaxPrice)
	assert.Equal(t, 150.5, *f.MaxPrice)
	assert.Equal(t, "Quito", f.City)

	f = reqdto.SearchRequest{PrecioMax: "cheap"}.ToFilter()
	assert.Nil(t, f.MaxPrice)
}

func TestPackageRequest(t *testing.T) {
	t.Run("defaults fill blank fields", func(t *testing.T) {
		in := reqdto.PackageRequest{Nombre: "Cuenca"}.ToInput(func() string { return "TOUR-ABC" })

		assert.Equal(t, "TOUR-ABC", in.Code)
		assert.Equal(t, "General", in.ActivityType)
		assert.Equal(t, 20, in.MaxCapacity)
		assert.Equal(t, 3, in.DurationDays)
	})

	t.Run("explicit values win", func(t *testing.T) {
		capacity, days := reqdto.Count(8), reqdto.Count(6)
		in := reqdto.PackageRequest{
			Nombre:        "Cuenca",
			Codigo:        "CUE-1",
			TipoActividad: "Cultural",
			CupoMaximo:    &capacity,
			DuracionDias:  &days,
		}.ToInput(func() string { return "unused" })

		assert.Equal(t, "CUE-1", in.Code)
		assert.Equal(t, "Cultural", in.ActivityType)
		assert.Equal(t, 8, in.MaxCapacity)
		assert.Equal(t, 6, in.DurationDays)
	})

	t.Run("nil generator leaves code blank", func(t *testing.T) {
		in := reqdto.PackageRequest{Nombre: "Cuenca"}.ToInput(nil)
		assert.Empty(t, in.Code)
	})
}
