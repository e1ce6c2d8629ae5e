//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"tour-storefront/internal/usecase/gateway"
	"tour-storefront/internal/usecase/queries"
	"tour-storefront/tests/common/builder"
	gatewaymock "tour-storefront/tests/mock/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func packagesIn(cities ...string) []gateway.Package {
	res := make([]gateway.Package, len(cities))
	for i, city := range cities {
		res[i] = builder.NewPackageBuilder().With(func(p *gateway.Package) {
			p.ID = gateway.ID("P" + string(rune('A'+i)))
			p.City = city
		}).Build()
	}
	return res
}

func TestCatalogQueries_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("nil result becomes an empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := gatewaymock.NewMockCatalogService(ctrl)
		catalog.EXPECT().Search(ctx, gateway.SearchFilter{City: "Quito"}).Return(nil, nil)

		got, err := queries.NewCatalogQueries(catalog).Search(ctx, gateway.SearchFilter{City: "Quito"})

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("gateway error is returned as is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := gatewaymock.NewMockCatalogService(ctrl)
		boom := errors.New("catalog down")
		catalog.EXPECT().Search(ctx, gateway.SearchFilter{}).Return(nil, boom)

		_, err := queries.NewCatalogQueries(catalog).Search(ctx, gateway.SearchFilter{})

		assert.ErrorIs(t, err, boom)
	})
}

func TestCatalogQueries_Featured(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		found   []gateway.Package
		wantIDs []string
	}{
		{name: "takes the first four in backend order", found: packagesIn("Quito", "Cuenca", "Baños", "Loja", "Manta", "Tena"), wantIDs: []string{"PA", "PB", "PC", "PD"}},
		{name: "fewer than four are returned whole", found: packagesIn("Quito", "Cuenca"), wantIDs: []string{"PA", "PB"}},
		{name: "no tours", found: nil, wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := gatewaymock.NewMockCatalogService(ctrl)
			catalog.EXPECT().Search(ctx, gateway.SearchFilter{}).Return(tt.found, nil)

			got, err := queries.NewCatalogQueries(catalog).Featured(ctx)
			require.NoError(t, err)

			ids := make([]string, len(got))
			for i, p := range got {
				ids[i] = p.ID.String()
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCatalogQueries_Destinations(t *testing.T) {
	ctx := context.Background()

	t.Run("distinct cities sorted, blanks skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := gatewaymock.NewMockCatalogService(ctrl)
		catalog.EXPECT().Search(ctx, gateway.SearchFilter{}).
			Return(packagesIn("Quito", " Cuenca ", "", "Quito", "Baños"), nil)

		got, err := queries.NewCatalogQueries(catalog).Destinations(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"Baños", "Cuenca", "Quito"}, got)
	})

	t.Run("search failure is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		catalog := gatewaymock.NewMockCatalogService(ctrl)
		catalog.EXPECT().Search(ctx, gateway.SearchFilter{}).Return(nil, errors.New("timeout"))

		got, err := queries.NewCatalogQueries(catalog).Destinations(ctx)

		assert.Error(t, err)
		assert.Nil(t, got)
	})
}
