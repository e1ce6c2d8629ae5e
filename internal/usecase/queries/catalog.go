package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"context"
	"sort"
	"strings"

	"tour-storefront/internal/usecase/gateway"
)

const FeaturedLimit = 4

type CatalogQueries interface {
	Search(ctx context.Context, filter gateway.SearchFilter) ([]gateway.Package, error)
	Featured(ctx context.Context) ([]gateway.Package, error)
	Destinations(ctx context.Context) ([]string, error)
}

type catalogQueriesImpl struct {
	catalog gateway.CatalogService
}

func NewCatalogQueries(catalog gateway.CatalogService) CatalogQueries {
	return &catalogQueriesImpl{
		catalog: catalog,
	}
}

func (q *catalogQueriesImpl) Search(ctx context.Context, filter gateway.SearchFilter) ([]gateway.Package, error) {
	packages, err := q.catalog.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	if packages == nil {
		packages = []gateway.Package{}
	}
	return packages, nil
}

// Featured is the head of an unfiltered search, in backend order.
func (q *catalogQueriesImpl) Featured(ctx context.Context) ([]gateway.Package, error) {
	packages, err := q.Search(ctx, gateway.SearchFilter{})
	if err != nil {
		return nil, err
	}
	if len(packages) > FeaturedLimit {
		packages = packages[:FeaturedLimit]
	}
	return packages, nil
}

// Destinations lists each city once, sorted, ignoring blanks.
func (q *catalogQueriesImpl) Destinations(ctx context.Context) ([]string, error) {
	packages, err := q.Search(ctx, gateway.SearchFilter{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(packages))
	cities := make([]string, 0, len(packages))
	for _, p := range packages {
		city := strings.TrimSpace(p.City)
		if city == "" {
			continue
		}
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities, nil
}
