package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tour-storefront/internal/domain/cart"
	"tour-storefront/internal/infra/kvstore"
	"tour-storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const CartKey = "agencia_cart"

// lineRecord is the stored shape of one cart line. Price is a JSON number; quoted prices from older records still load.
type lineRecord struct {
	TourID       string      `json:"tourId"`
	Name         string      `json:"name"`
	Image        string      `json:"image"`
	Price        json.Number `json:"price"`
	DurationDays int         `json:"duration"`
	Adults       int         `json:"adults"`
	Children     int         `json:"children"`
	TravelDate   string      `json:"date"`
	AddedAt      time.Time   `json:"addedAt"`
}

type CartStore struct {
	kv     kvstore.Store
	logger *slog.Logger
}

func NewCartStore(kv kvstore.Store, logger *slog.Logger) *CartStore {
	return &CartStore{kv: kv, logger: logger}
}

// Load returns an empty cart when nothing is stored or the stored value is unreadable.
// The next Save overwrites an unreadable value, so it is logged first.
func (s *CartStore) Load(ctx context.Context, visitorID uuid.UUID) (*cart.Cart, error) {
	raw, ok, err := s.kv.Get(ctx, visitorID, CartKey)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load cart")
	}
	if !ok || len(raw) == 0 {
		return cart.New(), nil
	}

	var records []lineRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		s.discard(ctx, visitorID, raw, err)
		return cart.New(), nil
	}
	items, err := toLineItems(records)
	if err != nil {
		s.discard(ctx, visitorID, raw, err)
		return cart.New(), nil
	}
	return cart.New(items...), nil
}

// Save persists the whole list, replacing whatever was stored.
func (s *CartStore) Save(ctx context.Context, visitorID uuid.UUID, c *cart.Cart) error {
	raw, err := json.Marshal(toLineRecords(c.Items()))
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := s.kv.Set(ctx, visitorID, CartKey, raw); err != nil {
		return errs.Wrap(err, "failed to save cart")
	}
	return nil
}

func (s *CartStore) Clear(ctx context.Context, visitorID uuid.UUID) error {
	if err := s.kv.Delete(ctx, visitorID, CartKey); err != nil {
		return errs.Wrap(err, "failed to clear cart")
	}
	return nil
}

func (s *CartStore) discard(ctx context.Context, visitorID uuid.UUID, raw []byte, err error) {
	s.logger.WarnContext(ctx, "unreadable stored cart treated as empty",
		"visitor_id", visitorID.String(),
		"bytes", len(raw),
		"error", err.Error())
}

func toLineRecords(items []cart.LineItem) []lineRecord {
	records := make([]lineRecord, len(items))
	for i, li := range items {
		records[i] = lineRecord{
			TourID:       li.TourID,
			Name:         li.Name,
			Image:        li.Image,
			Price:        json.Number(li.UnitPrice.String()),
			DurationDays: li.DurationDays,
			Adults:       li.Adults,
			Children:     li.Children,
			TravelDate:   li.TravelDate,
			AddedAt:      li.AddedAt,
		}
	}
	return records
}

func toLineItems(records []lineRecord) ([]cart.LineItem, error) {
	items := make([]cart.LineItem, len(records))
	for i, rec := range records {
		price := decimal.Zero
		if rec.Price != "" {
			p, err := decimal.NewFromString(rec.Price.String())
			if err != nil {
				return nil, errs.Wrap(err, "invalid stored price")
			}
			price = p
		}
		items[i] = cart.LineItem{
			TourID:       rec.TourID,
			Name:         rec.Name,
			Image:        rec.Image,
			UnitPrice:    price,
			DurationDays: rec.DurationDays,
			Adults:       rec.Adults,
			Children:     rec.Children,
			TravelDate:   rec.TravelDate,
			AddedAt:      rec.AddedAt,
		}
	}
	return items, nil
}
