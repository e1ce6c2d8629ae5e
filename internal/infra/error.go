package infra

import (
	"errors"
	"log/slog"

	"tour-storefront/internal/pkg/errs"
)

type GatewayErrorKind string

// GatewayError describes a failed call to a backend service.
type GatewayError struct {
	Kind    GatewayErrorKind
	Status  int    // HTTP status of the backend response, 0 when none was received
	Message string // human-readable message, preferably the backend's own
	err     error  // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e GatewayError) Unwrap() error {
	return e.err
}

// Is lets callers match on the shared category instead of the concrete kind.
func (e GatewayError) Is(target error) bool {
	switch target {
	case errs.ErrBackendRejected:
		return e.Kind == KindRejected
	case errs.ErrBackendUnavailable:
		return e.Kind == KindTransport || e.Kind == KindFault || e.Kind == KindMalformed
	case errs.ErrUnsupported:
		return e.Kind == KindUnsupported
	}
	return false
}

func WrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, status int, msg string, err error) error {
	if slogger == nil {
		slogger = slog.Default()
	}
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}

	slogger.Warn("Gateway error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, Status: status, Message: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// MessageOf returns the backend-facing message carried by err, or fallback.
func MessageOf(err error, fallback string) string {
	var e GatewayError
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return fallback
}

// StatusOf returns the backend HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Gateway-specific error kinds
const (
	KindTransport   GatewayErrorKind = "TRANSPORT_FAILURE"
	KindRejected    GatewayErrorKind = "BACKEND_REJECTED"
	KindFault       GatewayErrorKind = "SOAP_FAULT"
	KindMalformed   GatewayErrorKind = "MALFORMED_RESPONSE"
	KindUnsupported GatewayErrorKind = "UNSUPPORTED_OPERATION"
)
