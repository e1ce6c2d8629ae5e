package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URLs, etc.), security settings
// - default: Values common across all environments (timeouts, storage prefix, etc.), standard settings
// -----------------------------------------------------------------------------

const (
	TransportREST = "rest"
	TransportSOAP = "soap"

	StorageRedis  = "redis"
	StorageMemory = "memory"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Storage  StorageConfig
	Checkout CheckoutConfig
	Visitor  VisitorConfig
	Cookie   CookieConfig
	Queue    QueueConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type BackendConfig struct {
	BaseURL        string        `envconfig:"BACKEND_BASE_URL" required:"true"`
	AdminBaseURL   string        `envconfig:"BACKEND_ADMIN_BASE_URL"`
	BankingBaseURL string        `envconfig:"BACKEND_BANKING_BASE_URL"`
	PaymentPath    string        `envconfig:"BACKEND_PAYMENT_PATH" default:"/transaccion"`
	SOAPURL        string        `envconfig:"BACKEND_SOAP_URL"`
	SOAPNamespace  string        `envconfig:"BACKEND_SOAP_NAMESPACE" default:"http://paquetes.sencillo/"`
	Transport      string        `envconfig:"BACKEND_TRANSPORT" default:"rest"`
	Timeout        time.Duration `envconfig:"BACKEND_TIMEOUT" default:"30s"`
}

type StorageConfig struct {
	Driver        string        `envconfig:"STORAGE_DRIVER" default:"redis"`
	RedisAddr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD"`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`
	RedisPoolSize int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	KeyPrefix     string        `envconfig:"STORAGE_KEY_PREFIX" default:"storefront"`
	EntryTTL      time.Duration `envconfig:"STORAGE_ENTRY_TTL" default:"0s"` // 0 keeps entries until explicitly removed
}

type CheckoutConfig struct {
	AgencyAccount      int64  `envconfig:"CHECKOUT_AGENCY_ACCOUNT" default:"123456789"`
	HoldSeconds        int    `envconfig:"CHECKOUT_HOLD_SECONDS" default:"600"`
	PaymentMethod      string `envconfig:"CHECKOUT_PAYMENT_METHOD" default:"Transferencia"`
	FailurePolicy      string `envconfig:"CHECKOUT_FAILURE_POLICY" default:"per_item"`
	IdentificationType string `envconfig:"CHECKOUT_IDENTIFICATION_TYPE" default:"Cedula"`
	AdminEmail         string `envconfig:"ADMIN_EMAIL" default:"admin@agencia.local"`
}

type VisitorConfig struct {
	Secret   string        `envconfig:"VISITOR_SECRET" required:"true"`
	Duration time.Duration `envconfig:"VISITOR_DURATION" default:"720h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type QueueConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:""`
	Queue    string `envconfig:"AMQP_CHECKOUT_QUEUE" default:"checkout.completed"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Cart-Count"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Guayaquil"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-18000"` // -5*60*60
}

func (c BackendConfig) UseSOAP() bool {
	return strings.EqualFold(c.Transport, TransportSOAP)
}

// AdminURL falls back to BaseURL when no dedicated admin host is configured.
func (c BackendConfig) AdminURL() string {
	if c.AdminBaseURL != "" {
		return c.AdminBaseURL
	}
	return c.BaseURL
}

func (c BackendConfig) BankingURL() string {
	if c.BankingBaseURL != "" {
		return c.BankingBaseURL
	}
	return c.BaseURL
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Backend.Transport) {
	case TransportREST:
	case TransportSOAP:
		if c.Backend.SOAPURL == "" {
			return fmt.Errorf("BACKEND_SOAP_URL is required when BACKEND_TRANSPORT=%s", TransportSOAP)
		}
	default:
		return fmt.Errorf("unsupported BACKEND_TRANSPORT %q", c.Backend.Transport)
	}

	switch strings.ToLower(c.Storage.Driver) {
	case StorageRedis, StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	switch strings.ToLower(c.Checkout.FailurePolicy) {
	case "", "per_item", "all_or_nothing":
	default:
		return fmt.Errorf("unsupported CHECKOUT_FAILURE_POLICY %q", c.Checkout.FailurePolicy)
	}

	if c.Checkout.HoldSeconds <= 0 {
		return fmt.Errorf("CHECKOUT_HOLD_SECONDS must be positive, got %d", c.Checkout.HoldSeconds)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889", // Test port
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		Backend: BackendConfig{
			BaseURL:       "http://localhost:18080",
			PaymentPath:   "/transaccion",
			SOAPNamespace: "http://paquetes.sencillo/",
			Transport:     TransportREST,
			Timeout:       5 * time.Second,
		},
		Storage: StorageConfig{
			Driver:        StorageMemory,
			RedisAddr:     "localhost:16379", // Test redis port
			RedisPoolSize: 5,
			KeyPrefix:     "storefront-test",
		},
		Checkout: CheckoutConfig{
			AgencyAccount:      123456789,
			HoldSeconds:        600,
			PaymentMethod:      "Transferencia",
			FailurePolicy:      "per_item",
			IdentificationType: "Cedula",
			AdminEmail:         "admin@agencia.local",
		},
		Visitor: VisitorConfig{
			Secret:   "test-visitor-secret",
			Duration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Guayaquil",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -18000,
		},
	}
}
