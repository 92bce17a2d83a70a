package port

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	vaultv1 "github.com/relaysms/vault/gen/vault/v1"
	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/vault/app"
)

// stubService implements Service with per-method function fields; unset
// methods fail the test if called.
type stubService struct {
	t *testing.T

	createEntity       func(app.CreateEntityParams) (*app.SessionResult, error)
	authenticateEntity func(app.AuthenticateEntityParams) (*app.SessionResult, error)
	resetPassword      func(app.ResetPasswordParams) (*app.SessionResult, error)
	updatePassword     func(llt, current, next string) error
	listTokens         func(llt string) ([]app.StoredTokenInfo, error)
	storeToken         func(llt, platform, account, tokens string) error
	getAccessToken     func(llt, deviceID, platform, account string) (string, error)
	updateToken        func(deviceID, platform, account, tokens string) error
	deleteToken        func(llt, platform, account string) error
	deleteEntity       func(llt string) error
	decryptPayload     func(deviceID, payload string) ([]byte, error)
	encryptPayload     func(deviceID string, plaintext []byte) (string, error)
}

func (s *stubService) CreateEntity(_ context.Context, p app.CreateEntityParams) (*app.SessionResult, error) {
	if s.createEntity == nil {
		s.t.Fatal("unexpected CreateEntity call")
	}
	return s.createEntity(p)
}

func (s *stubService) AuthenticateEntity(_ context.Context, p app.AuthenticateEntityParams) (*app.SessionResult, error) {
	if s.authenticateEntity == nil {
		s.t.Fatal("unexpected AuthenticateEntity call")
	}
	return s.authenticateEntity(p)
}

func (s *stubService) ResetPassword(_ context.Context, p app.ResetPasswordParams) (*app.SessionResult, error) {
	if s.resetPassword == nil {
		s.t.Fatal("unexpected ResetPassword call")
	}
	return s.resetPassword(p)
}

func (s *stubService) UpdateEntityPassword(_ context.Context, llt, current, next string) error {
	if s.updatePassword == nil {
		s.t.Fatal("unexpected UpdateEntityPassword call")
	}
	return s.updatePassword(llt, current, next)
}

func (s *stubService) ListEntityStoredTokens(_ context.Context, llt string) ([]app.StoredTokenInfo, error) {
	if s.listTokens == nil {
		s.t.Fatal("unexpected ListEntityStoredTokens call")
	}
	return s.listTokens(llt)
}

func (s *stubService) StoreEntityToken(_ context.Context, llt, platform, account, tokens string) error {
	if s.storeToken == nil {
		s.t.Fatal("unexpected StoreEntityToken call")
	}
	return s.storeToken(llt, platform, account, tokens)
}

func (s *stubService) GetEntityAccessToken(_ context.Context, llt, deviceID, platform, account string) (string, error) {
	if s.getAccessToken == nil {
		s.t.Fatal("unexpected GetEntityAccessToken call")
	}
	return s.getAccessToken(llt, deviceID, platform, account)
}

func (s *stubService) UpdateEntityToken(_ context.Context, deviceID, platform, account, tokens string) error {
	if s.updateToken == nil {
		s.t.Fatal("unexpected UpdateEntityToken call")
	}
	return s.updateToken(deviceID, platform, account, tokens)
}

func (s *stubService) DeleteEntityToken(_ context.Context, llt, platform, account string) error {
	if s.deleteToken == nil {
		s.t.Fatal("unexpected DeleteEntityToken call")
	}
	return s.deleteToken(llt, platform, account)
}

func (s *stubService) DeleteEntity(_ context.Context, llt string) error {
	if s.deleteEntity == nil {
		s.t.Fatal("unexpected DeleteEntity call")
	}
	return s.deleteEntity(llt)
}

func (s *stubService) DecryptPayload(_ context.Context, deviceID, payload string) ([]byte, error) {
	if s.decryptPayload == nil {
		s.t.Fatal("unexpected DecryptPayload call")
	}
	return s.decryptPayload(deviceID, payload)
}

func (s *stubService) EncryptPayload(_ context.Context, deviceID string, plaintext []byte) (string, error) {
	if s.encryptPayload == nil {
		s.t.Fatal("unexpected EncryptPayload call")
	}
	return s.encryptPayload(deviceID, plaintext)
}

func newHandler(t *testing.T, svc *stubService) *Handler {
	t.Helper()
	svc.t = t
	return NewHandler(svc)
}

func testPubKey(t *testing.T) string {
	t.Helper()
	kp, err := crypto.GenerateX25519()
	require.NoError(t, err)
	return kp.PublicBase64()
}

func statusCode(t *testing.T, err error) (codes.Code, string) {
	t.Helper()
	st, ok := status.FromError(err)
	require.True(t, ok)
	return st.Code(), st.Message()
}

func TestCreateEntityHandler(t *testing.T) {
	ctx := context.Background()

	t.Run("missing phone number", func(t *testing.T) {
		h := newHandler(t, &stubService{})
		_, err := h.CreateEntity(ctx, &vaultv1.CreateEntityRequest{})
		code, msg := statusCode(t, err)
		assert.Equal(t, codes.InvalidArgument, code)
		assert.Contains(t, msg, "phone_number")
	})

	t.Run("phase two lists all missing fields", func(t *testing.T) {
		h := newHandler(t, &stubService{})
		_, err := h.CreateEntity(ctx, &vaultv1.CreateEntityRequest{
			PhoneNumber:            "+237650000001",
			OwnershipProofResponse: "123456",
		})
		code, msg := statusCode(t, err)
		assert.Equal(t, codes.InvalidArgument, code)
		assert.Contains(t, msg, "country_code")
		assert.Contains(t, msg, "password")
		assert.Contains(t, msg, "client_publish_pub_key")
		assert.Contains(t, msg, "client_device_id_pub_key")
	})

	t.Run("malformed public key", func(t *testing.T) {
		h := newHandler(t, &stubService{})
		_, err := h.CreateEntity(ctx, &vaultv1.CreateEntityRequest{
			PhoneNumber:            "+237650000001",
			Password:               "pw",
			CountryCode:            "CM",
			ClientPublishPubKey:    "short",
			ClientDeviceIdPubKey:   testPubKey(t),
			OwnershipProofResponse: "123456",
		})
		code, msg := statusCode(t, err)
		assert.Equal(t, codes.InvalidArgument, code)
		assert.Contains(t, msg, "client_publish_pub_key")
	})

	t.Run("phase one response carries the retry window", func(t *testing.T) {
		next := time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC)
		h := newHandler(t, &stubService{
			createEntity: func(p app.CreateEntityParams) (*app.SessionResult, error) {
				assert.Equal(t, "+237650000001", p.PhoneNumber)
				return &app.SessionResult{
					RequiresOwnershipProof: true,
					Message:                "ownership proof sent",
					NextAttempt:            next,
				}, nil
			},
		})
		resp, err := h.CreateEntity(ctx, &vaultv1.CreateEntityRequest{PhoneNumber: "+237650000001"})
		require.NoError(t, err)
		assert.True(t, resp.GetRequiresOwnershipProof())
		assert.Equal(t, next.Unix(), resp.GetNextAttemptTimestamp())
		assert.Empty(t, resp.GetLongLivedToken())
	})

	t.Run("phase two response carries session material", func(t *testing.T) {
		h := newHandler(t, &stubService{
			createEntity: func(p app.CreateEntityParams) (*app.SessionResult, error) {
				return &app.SessionResult{
					Message:              "entity created",
					LongLivedToken:       "eid:payload.sig",
					ServerPublishPubKey:  "pubA",
					ServerDeviceIDPubKey: "pubB",
				}, nil
			},
		})
		pub := testPubKey(t)
		resp, err := h.CreateEntity(ctx, &vaultv1.CreateEntityRequest{
			PhoneNumber:            "+237650000001",
			Password:               "pw",
			CountryCode:            "CM",
			ClientPublishPubKey:    pub,
			ClientDeviceIdPubKey:   pub,
			OwnershipProofResponse: "123456",
		})
		require.NoError(t, err)
		assert.Equal(t, "eid:payload.sig", resp.GetLongLivedToken())
		assert.Equal(t, "pubA", resp.GetServerPublishPubKey())
		assert.Equal(t, "pubB", resp.GetServerDeviceIdPubKey())
		assert.Zero(t, resp.GetNextAttemptTimestamp())
	})
}

func TestErrorMapping(t *testing.T) {
	ctx := context.Background()

	t.Run("auth failures collapse to a generic message", func(t *testing.T) {
		h := newHandler(t, &stubService{
			listTokens: func(string) ([]app.StoredTokenInfo, error) {
				return nil, domain.ErrTokenExpired
			},
		})
		_, err := h.ListEntityStoredTokens(ctx, &vaultv1.ListEntityStoredTokensRequest{LongLivedToken: "x:y.z"})
		code, msg := statusCode(t, err)
		assert.Equal(t, codes.Unauthenticated, code)
		assert.NotContains(t, msg, "expired at")
	})

	t.Run("stored tokens block deletion with details", func(t *testing.T) {
		h := newHandler(t, &stubService{
			deleteEntity: func(string) error {
				return domain.ErrTokensStillStored
			},
		})
		_, err := h.DeleteEntity(ctx, &vaultv1.DeleteEntityRequest{LongLivedToken: "x:y.z"})
		code, _ := statusCode(t, err)
		assert.Equal(t, codes.FailedPrecondition, code)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		h := newHandler(t, &stubService{
			storeToken: func(_, _, _, _ string) error {
				return domain.ErrUnsupportedPlatform
			},
		})
		_, err := h.StoreEntityToken(ctx, &vaultv1.StoreEntityTokenRequest{
			LongLivedToken:    "x:y.z",
			Token:             "{}",
			Platform:          "myspace",
			AccountIdentifier: "a@b.c",
		})
		code, _ := statusCode(t, err)
		assert.Equal(t, codes.Unimplemented, code)
	})
}

func TestTokenHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("list maps stored tokens", func(t *testing.T) {
		h := newHandler(t, &stubService{
			listTokens: func(llt string) ([]app.StoredTokenInfo, error) {
				assert.Equal(t, "x:y.z", llt)
				return []app.StoredTokenInfo{
					{AccountIdentifier: "user@gmail.com", Platform: "gmail"},
				}, nil
			},
		})
		resp, err := h.ListEntityStoredTokens(ctx, &vaultv1.ListEntityStoredTokensRequest{LongLivedToken: "x:y.z"})
		require.NoError(t, err)
		require.Len(t, resp.GetStoredTokens(), 1)
		assert.Equal(t, "gmail", resp.GetStoredTokens()[0].GetPlatform())
		assert.Equal(t, "user@gmail.com", resp.GetStoredTokens()[0].GetAccountIdentifier())
	})

	t.Run("get requires a credential", func(t *testing.T) {
		h := newHandler(t, &stubService{})
		_, err := h.GetEntityAccessToken(ctx, &vaultv1.GetEntityAccessTokenRequest{
			Platform:          "gmail",
			AccountIdentifier: "a@b.c",
		})
		code, msg := statusCode(t, err)
		assert.Equal(t, codes.InvalidArgument, code)
		assert.Contains(t, msg, "device_id")
		assert.Contains(t, msg, "long_lived_token")
	})

	t.Run("get passes either credential through", func(t *testing.T) {
		h := newHandler(t, &stubService{
			getAccessToken: func(llt, deviceID, platform, account string) (string, error) {
				assert.Empty(t, llt)
				assert.Equal(t, "dev1", deviceID)
				return `{"access_token":"x"}`, nil
			},
		})
		resp, err := h.GetEntityAccessToken(ctx, &vaultv1.GetEntityAccessTokenRequest{
			DeviceId:          "dev1",
			Platform:          "gmail",
			AccountIdentifier: "a@b.c",
		})
		require.NoError(t, err)
		assert.True(t, resp.GetSuccess())
		assert.Equal(t, `{"access_token":"x"}`, resp.GetToken())
	})
}

func TestPayloadHandlers(t *testing.T) {
	ctx := context.Background()

	t.Run("decrypt round trips through the service", func(t *testing.T) {
		h := newHandler(t, &stubService{
			decryptPayload: func(deviceID, payload string) ([]byte, error) {
				assert.Equal(t, "dev1", deviceID)
				assert.Equal(t, "b64payload", payload)
				return []byte("hello"), nil
			},
		})
		resp, err := h.DecryptPayload(ctx, &vaultv1.DecryptPayloadRequest{
			DeviceId:          "dev1",
			PayloadCiphertext: "b64payload",
		})
		require.NoError(t, err)
		assert.Equal(t, "hello", resp.GetPayloadPlaintext())
	})

	t.Run("encrypt round trips through the service", func(t *testing.T) {
		h := newHandler(t, &stubService{
			encryptPayload: func(deviceID string, plaintext []byte) (string, error) {
				assert.Equal(t, []byte("reply"), plaintext)
				return "b64cipher", nil
			},
		})
		resp, err := h.EncryptPayload(ctx, &vaultv1.EncryptPayloadRequest{
			DeviceId:         "dev1",
			PayloadPlaintext: "reply",
		})
		require.NoError(t, err)
		assert.Equal(t, "b64cipher", resp.GetPayloadCiphertext())
	})

	t.Run("malformed payload maps to invalid argument", func(t *testing.T) {
		h := newHandler(t, &stubService{
			decryptPayload: func(_, _ string) ([]byte, error) {
				return nil, domain.ErrMalformedPayload
			},
		})
		_, err := h.DecryptPayload(ctx, &vaultv1.DecryptPayloadRequest{
			DeviceId:          "dev1",
			PayloadCiphertext: "junk",
		})
		code, _ := statusCode(t, err)
		assert.Equal(t, codes.InvalidArgument, code)
	})
}
