// Package errmap provides the gRPC wire mapping for domain errors.
package errmap

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/relaysms/vault/internal/domain"
)

// grpcMappings maps domain errors to gRPC status codes.
// Order matters: first match wins (via errors.Is).
var grpcMappings = []struct {
	err  error
	code codes.Code
}{
	// Resource errors
	{domain.ErrNotFound, codes.NotFound},
	{domain.ErrAlreadyExists, codes.AlreadyExists},

	// Auth errors: all collapse to Unauthenticated with a generic
	// message so responses never reveal which check failed.
	{domain.ErrUnauthenticated, codes.Unauthenticated},
	{domain.ErrInvalidToken, codes.Unauthenticated},
	{domain.ErrTokenExpired, codes.Unauthenticated},
	{domain.ErrUnknownDeviceID, codes.Unauthenticated},
	{domain.ErrIncorrectPassword, codes.Unauthenticated},
	{domain.ErrOTPRejected, codes.Unauthenticated},

	// Validation errors
	{domain.ErrInvalidInput, codes.InvalidArgument},
	{domain.ErrInvalidPhoneNumber, codes.InvalidArgument},
	{domain.ErrInvalidPublicKey, codes.InvalidArgument},
	{domain.ErrMalformedPayload, codes.InvalidArgument},
	{domain.ErrDecryptionFailed, codes.InvalidArgument},
	{domain.ErrTooManySkipped, codes.InvalidArgument},

	// Preconditions
	{domain.ErrTokensStillStored, codes.FailedPrecondition},

	// Feature surface
	{domain.ErrUnsupportedPlatform, codes.Unimplemented},

	// Availability
	{domain.ErrUnavailable, codes.Unavailable},
}

// genericAuthMessage replaces the error text for every Unauthenticated
// mapping. Clients are told the session is no longer valid, nothing more.
const genericAuthMessage = "session expired or invalid, authenticate again"

// ToGRPCStatus converts a domain error to a gRPC status.
func ToGRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	for _, m := range grpcMappings {
		if errors.Is(err, m.err) {
			if m.code == codes.Unauthenticated {
				return status.New(m.code, genericAuthMessage)
			}
			return status.New(m.code, err.Error())
		}
	}
	// Never expose internal error details to clients
	return status.New(codes.Internal, "internal error")
}

// ToGRPCError converts a domain error to a gRPC error.
func ToGRPCError(err error) error {
	return ToGRPCStatus(err).Err()
}

// FromGRPCError extracts the gRPC status code from an error.
// Returns codes.Unknown if the error is not a gRPC status error.
func FromGRPCError(err error) codes.Code {
	if err == nil {
		return codes.OK
	}
	if st, ok := status.FromError(err); ok {
		return st.Code()
	}
	return codes.Unknown
}
