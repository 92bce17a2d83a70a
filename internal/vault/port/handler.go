// Package port exposes the vault application service over gRPC. It owns
// request validation and the translation between proto messages and
// application types; error mapping lives in errmap.
package port

import (
	"context"

	vaultv1 "github.com/relaysms/vault/gen/vault/v1"
	"github.com/relaysms/vault/internal/errmap"
	"github.com/relaysms/vault/internal/vault/app"
)

// Service is the application surface the handler drives. Implemented by
// app.Vault; tests substitute a stub.
type Service interface {
	CreateEntity(ctx context.Context, p app.CreateEntityParams) (*app.SessionResult, error)
	AuthenticateEntity(ctx context.Context, p app.AuthenticateEntityParams) (*app.SessionResult, error)
	ResetPassword(ctx context.Context, p app.ResetPasswordParams) (*app.SessionResult, error)
	UpdateEntityPassword(ctx context.Context, longLivedToken, currentPassword, newPassword string) error
	ListEntityStoredTokens(ctx context.Context, longLivedToken string) ([]app.StoredTokenInfo, error)
	StoreEntityToken(ctx context.Context, longLivedToken, platform, accountIdentifier, accountTokens string) error
	GetEntityAccessToken(ctx context.Context, longLivedToken, deviceID, platform, accountIdentifier string) (string, error)
	UpdateEntityToken(ctx context.Context, deviceID, platform, accountIdentifier, accountTokens string) error
	DeleteEntityToken(ctx context.Context, longLivedToken, platform, accountIdentifier string) error
	DeleteEntity(ctx context.Context, longLivedToken string) error
	DecryptPayload(ctx context.Context, deviceID, payload string) ([]byte, error)
	EncryptPayload(ctx context.Context, deviceID string, plaintext []byte) (string, error)
}

// Handler implements vaultv1.EntityServer on top of the application service.
type Handler struct {
	vaultv1.UnimplementedEntityServer

	svc Service
}

// NewHandler creates the gRPC handler.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// sessionFields flattens a SessionResult into the shared response shape of
// the three two-phase session operations.
func sessionFields(res *app.SessionResult) (requiresProof bool, llt, publishPub, devicePub, message string, nextAttempt int64) {
	requiresProof = res.RequiresOwnershipProof
	llt = res.LongLivedToken
	publishPub = res.ServerPublishPubKey
	devicePub = res.ServerDeviceIDPubKey
	message = res.Message
	if !res.NextAttempt.IsZero() {
		nextAttempt = res.NextAttempt.Unix()
	}
	return
}

func (h *Handler) CreateEntity(ctx context.Context, req *vaultv1.CreateEntityRequest) (*vaultv1.CreateEntityResponse, error) {
	if err := validateCreateEntity(req); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	res, err := h.svc.CreateEntity(ctx, app.CreateEntityParams{
		PhoneNumber:            req.GetPhoneNumber(),
		Password:               req.GetPassword(),
		CountryCode:            req.GetCountryCode(),
		ClientPublishPubKey:    req.GetClientPublishPubKey(),
		ClientDeviceIDPubKey:   req.GetClientDeviceIdPubKey(),
		OwnershipProofResponse: req.GetOwnershipProofResponse(),
	})
	if err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	proof, llt, pubPub, devPub, msg, next := sessionFields(res)
	return &vaultv1.CreateEntityResponse{
		RequiresOwnershipProof: proof,
		LongLivedToken:         llt,
		ServerPublishPubKey:    pubPub,
		ServerDeviceIdPubKey:   devPub,
		Message:                msg,
		NextAttemptTimestamp:   next,
	}, nil
}

func (h *Handler) AuthenticateEntity(ctx context.Context, req *vaultv1.AuthenticateEntityRequest) (*vaultv1.AuthenticateEntityResponse, error) {
	if err := validateAuthenticateEntity(req); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	res, err := h.svc.AuthenticateEntity(ctx, app.AuthenticateEntityParams{
		PhoneNumber:            req.GetPhoneNumber(),
		Password:               req.GetPassword(),
		ClientPublishPubKey:    req.GetClientPublishPubKey(),
		ClientDeviceIDPubKey:   req.GetClientDeviceIdPubKey(),
		OwnershipProofResponse: req.GetOwnershipProofResponse(),
	})
	if err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	proof, llt, pubPub, devPub, msg, next := sessionFields(res)
	return &vaultv1.AuthenticateEntityResponse{
		RequiresOwnershipProof: proof,
		LongLivedToken:         llt,
		ServerPublishPubKey:    pubPub,
		ServerDeviceIdPubKey:   devPub,
		Message:                msg,
		NextAttemptTimestamp:   next,
	}, nil
}

func (h *Handler) ResetPassword(ctx context.Context, req *vaultv1.ResetPasswordRequest) (*vaultv1.ResetPasswordResponse, error) {
	if err := validateResetPassword(req); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	res, err := h.svc.ResetPassword(ctx, app.ResetPasswordParams{
		PhoneNumber:            req.GetPhoneNumber(),
		NewPassword:            req.GetNewPassword(),
		ClientPublishPubKey:    req.GetClientPublishPubKey(),
		ClientDeviceIDPubKey:   req.GetClientDeviceIdPubKey(),
		OwnershipProofResponse: req.GetOwnershipProofResponse(),
	})
	if err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	proof, llt, pubPub, devPub, msg, next := sessionFields(res)
	return &vaultv1.ResetPasswordResponse{
		RequiresOwnershipProof: proof,
		LongLivedToken:         llt,
		ServerPublishPubKey:    pubPub,
		ServerDeviceIdPubKey:   devPub,
		Message:                msg,
		NextAttemptTimestamp:   next,
	}, nil
}

func (h *Handler) UpdateEntityPassword(ctx context.Context, req *vaultv1.UpdateEntityPasswordRequest) (*vaultv1.UpdateEntityPasswordResponse, error) {
	if err := requireFields(
		field{"long_lived_token", req.GetLongLivedToken()},
		field{"current_password", req.GetCurrentPassword()},
		field{"new_password", req.GetNewPassword()},
	); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	if err := h.svc.UpdateEntityPassword(ctx, req.GetLongLivedToken(), req.GetCurrentPassword(), req.GetNewPassword()); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	return &vaultv1.UpdateEntityPasswordResponse{
		Message: "Password updated successfully.",
		Success: true,
	}, nil
}

func (h *Handler) ListEntityStoredTokens(ctx context.Context, req *vaultv1.ListEntityStoredTokensRequest) (*vaultv1.ListEntityStoredTokenResponse, error) {
	if err := requireFields(field{"long_lived_token", req.GetLongLivedToken()}); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	infos, err := h.svc.ListEntityStoredTokens(ctx, req.GetLongLivedToken())
	if err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	stored := make([]*vaultv1.Token, 0, len(infos))
	for _, info := range infos {
		stored = append(stored, &vaultv1.Token{
			Platform:          info.Platform,
			AccountIdentifier: info.AccountIdentifier,
		})
	}
	return &vaultv1.ListEntityStoredTokenResponse{
		StoredTokens: stored,
		Message:      "Tokens retrieved successfully.",
	}, nil
}

func (h *Handler) StoreEntityToken(ctx context.Context, req *vaultv1.StoreEntityTokenRequest) (*vaultv1.StoreEntityTokenResponse, error) {
	if err := requireFields(
		field{"long_lived_token", req.GetLongLivedToken()},
		field{"token", req.GetToken()},
		field{"platform", req.GetPlatform()},
		field{"account_identifier", req.GetAccountIdentifier()},
	); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	if err := h.svc.StoreEntityToken(ctx, req.GetLongLivedToken(), req.GetPlatform(), req.GetAccountIdentifier(), req.GetToken()); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	return &vaultv1.StoreEntityTokenResponse{
		Message: "Token stored successfully.",
		Success: true,
	}, nil
}

func (h *Handler) GetEntityAccessToken(ctx context.Context, req *vaultv1.GetEntityAccessTokenRequest) (*vaultv1.GetEntityAccessTokenResponse, error) {
	if err := requireOneOf(
		field{"device_id", req.GetDeviceId()},
		field{"long_lived_token", req.GetLongLivedToken()},
	); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	if err := requireFields(
		field{"platform", req.GetPlatform()},
		field{"account_identifier", req.GetAccountIdentifier()},
	); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	token, err := h.svc.GetEntityAccessToken(ctx, req.GetLongLivedToken(), req.GetDeviceId(), req.GetPlatform(), req.GetAccountIdentifier())
	if err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	return &vaultv1.GetEntityAccessTokenResponse{
		Message: "Successfully fetched tokens.",
		Success: true,
		Token:   token,
	}, nil
}

func (h *Handler) UpdateEntityToken(ctx context.Context, req *vaultv1.UpdateEntityTokenRequest) (*vaultv1.UpdateEntityTokenResponse, error) {
	if err := requireFields(
		field{"device_id", req.GetDeviceId()},
		field{"token", req.GetToken()},
		field{"platform", req.GetPlatform()},
		field{"account_identifier", req.GetAccountIdentifier()},
	); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	if err := h.svc.UpdateEntityToken(ctx, req.GetDeviceId(), req.GetPlatform(), req.GetAccountIdentifier(), req.GetToken()); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	return &vaultv1.UpdateEntityTokenResponse{
		Message: "Token updated successfully.",
		Success: true,
	}, nil
}

func (h *Handler) DeleteEntityToken(ctx context.Context, req *vaultv1.DeleteEntityTokenRequest) (*vaultv1.DeleteEntityTokenResponse, error) {
	if err := requireFields(
		field{"long_lived_token", req.GetLongLivedToken()},
		field{"platform", req.GetPlatform()},
		field{"account_identifier", req.GetAccountIdentifier()},
	); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	if err := h.svc.DeleteEntityToken(ctx, req.GetLongLivedToken(), req.GetPlatform(), req.GetAccountIdentifier()); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	return &vaultv1.DeleteEntityTokenResponse{
		Message: "Token deleted successfully.",
		Success: true,
	}, nil
}

func (h *Handler) DeleteEntity(ctx context.Context, req *vaultv1.DeleteEntityRequest) (*vaultv1.DeleteEntityResponse, error) {
	if err := requireFields(field{"long_lived_token", req.GetLongLivedToken()}); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	if err := h.svc.DeleteEntity(ctx, req.GetLongLivedToken()); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	return &vaultv1.DeleteEntityResponse{
		Message: "Entity deleted successfully.",
		Success: true,
	}, nil
}

func (h *Handler) DecryptPayload(ctx context.Context, req *vaultv1.DecryptPayloadRequest) (*vaultv1.DecryptPayloadResponse, error) {
	if err := requireFields(
		field{"device_id", req.GetDeviceId()},
		field{"payload_ciphertext", req.GetPayloadCiphertext()},
	); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	plaintext, err := h.svc.DecryptPayload(ctx, req.GetDeviceId(), req.GetPayloadCiphertext())
	if err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	return &vaultv1.DecryptPayloadResponse{
		Message:          "Successfully decrypted payload.",
		Success:          true,
		PayloadPlaintext: string(plaintext),
	}, nil
}

func (h *Handler) EncryptPayload(ctx context.Context, req *vaultv1.EncryptPayloadRequest) (*vaultv1.EncryptPayloadResponse, error) {
	if err := requireFields(
		field{"device_id", req.GetDeviceId()},
		field{"payload_plaintext", req.GetPayloadPlaintext()},
	); err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	ciphertext, err := h.svc.EncryptPayload(ctx, req.GetDeviceId(), []byte(req.GetPayloadPlaintext()))
	if err != nil {
		return nil, errmap.ToGRPCError(err)
	}
	return &vaultv1.EncryptPayloadResponse{
		Message:           "Successfully encrypted payload.",
		PayloadCiphertext: ciphertext,
		Success:           true,
	}, nil
}
