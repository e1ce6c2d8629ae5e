package gateway

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/gateway/ports_mock.go -package=gatewaymock

import "context"

type AuthService interface {
	Login(ctx context.Context, creds Credentials) (*UserProfile, error)
	Register(ctx context.Context, u NewUser) (*UserProfile, error)
	RegisterExternal(ctx context.Context, u ExternalUser) (*UserProfile, error)
}

type CatalogService interface {
	Search(ctx context.Context, filter SearchFilter) ([]Package, error)
	Create(ctx context.Context, in PackageInput) (Record, error)
	Update(ctx context.Context, id string, in PackageInput) (Record, error)
	Delete(ctx context.Context, id string) error
}

type AvailabilityService interface {
	Check(ctx context.Context, q AvailabilityQuery) (*Availability, error)
}

type ReservationService interface {
	Hold(ctx context.Context, req HoldRequest) (*Hold, error)
	Book(ctx context.Context, req BookRequest) (*Booking, error)
	List(ctx context.Context) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	Update(ctx context.Context, id string, changes Record) (Record, error)
	Cancel(ctx context.Context, id, reason string) (Record, error)
	Details(ctx context.Context, id string) (Record, error)
}

type BankingService interface {
	Pay(ctx context.Context, p Payment) (*PaymentResult, error)
}

type InvoiceService interface {
	Emit(ctx context.Context, req InvoiceRequest) (*Invoice, error)
	List(ctx context.Context) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}

type UserService interface {
	List(ctx context.Context) ([]Record, error)
	Update(ctx context.Context, u UserUpdate) (Record, error)
}
