package port

import (
	"fmt"
	"strings"

	vaultv1 "github.com/relaysms/vault/gen/vault/v1"
	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
)

// field pairs a wire field name with its value, for validation messages that
// name the offending fields.
type field struct {
	name  string
	value string
}

// requireFields rejects the request when any named field is empty. The error
// lists every missing field at once so clients fix them in one round trip.
func requireFields(fields ...field) error {
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s: %w",
			strings.Join(missing, ", "), domain.ErrInvalidInput)
	}
	return nil
}

// requireOneOf rejects the request unless at least one alternative is set.
func requireOneOf(fields ...field) error {
	for _, f := range fields {
		if f.value != "" {
			return nil
		}
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return fmt.Errorf("at least one of [%s] is required: %w",
		strings.Join(names, ", "), domain.ErrInvalidInput)
}

// requirePubKeys validates X25519 public key fields: base64, 32 bytes,
// not the all-zero point.
func requirePubKeys(fields ...field) error {
	for _, f := range fields {
		if err := crypto.ValidX25519PublicKey(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

func validateCreateEntity(req *vaultv1.CreateEntityRequest) error {
	if err := requireFields(field{"phone_number", req.GetPhoneNumber()}); err != nil {
		return err
	}
	if req.GetOwnershipProofResponse() == "" {
		return nil
	}
	if err := requireFields(
		field{"country_code", req.GetCountryCode()},
		field{"password", req.GetPassword()},
		field{"client_publish_pub_key", req.GetClientPublishPubKey()},
		field{"client_device_id_pub_key", req.GetClientDeviceIdPubKey()},
	); err != nil {
		return err
	}
	return requirePubKeys(
		field{"client_publish_pub_key", req.GetClientPublishPubKey()},
		field{"client_device_id_pub_key", req.GetClientDeviceIdPubKey()},
	)
}

func validateAuthenticateEntity(req *vaultv1.AuthenticateEntityRequest) error {
	if err := requireFields(
		field{"phone_number", req.GetPhoneNumber()},
		field{"password", req.GetPassword()},
	); err != nil {
		return err
	}
	if req.GetOwnershipProofResponse() == "" {
		return nil
	}
	if err := requireFields(
		field{"client_publish_pub_key", req.GetClientPublishPubKey()},
		field{"client_device_id_pub_key", req.GetClientDeviceIdPubKey()},
	); err != nil {
		return err
	}
	return requirePubKeys(
		field{"client_publish_pub_key", req.GetClientPublishPubKey()},
		field{"client_device_id_pub_key", req.GetClientDeviceIdPubKey()},
	)
}

func validateResetPassword(req *vaultv1.ResetPasswordRequest) error {
	if err := requireFields(field{"phone_number", req.GetPhoneNumber()}); err != nil {
		return err
	}
	if req.GetOwnershipProofResponse() == "" {
		return nil
	}
	if err := requireFields(
		field{"new_password", req.GetNewPassword()},
		field{"client_publish_pub_key", req.GetClientPublishPubKey()},
		field{"client_device_id_pub_key", req.GetClientDeviceIdPubKey()},
	); err != nil {
		return err
	}
	return requirePubKeys(
		field{"client_publish_pub_key", req.GetClientPublishPubKey()},
		field{"client_device_id_pub_key", req.GetClientDeviceIdPubKey()},
	)
}
