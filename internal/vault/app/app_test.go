package app

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/auth"
	"github.com/relaysms/vault/internal/crypto"
	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/domain/domaintest"
	"github.com/relaysms/vault/internal/keystore"
	"github.com/relaysms/vault/internal/ratchet"
)

// memEntityStore is an in-memory EntityStore. It stores copies so a caller
// mutating an entity after Update cannot corrupt the persisted record.
type memEntityStore struct {
	mu   sync.Mutex
	rows map[domain.EID]domain.Entity
}

func newMemEntityStore() *memEntityStore {
	return &memEntityStore{rows: make(map[domain.EID]domain.Entity)}
}

func (s *memEntityStore) Create(_ context.Context, e *domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[e.EID]; ok {
		return domain.ErrAlreadyExists
	}
	s.rows[e.EID] = *e
	return nil
}

func (s *memEntityStore) Update(_ context.Context, e *domain.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[e.EID]; !ok {
		return domain.ErrNotFound
	}
	s.rows[e.EID] = *e
	return nil
}

func (s *memEntityStore) GetByEID(_ context.Context, eid domain.EID) (*domain.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[eid]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (s *memEntityStore) FindByPhoneHash(_ context.Context, phoneHash string) (*domain.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.PhoneNumberHash == phoneHash {
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memEntityStore) FindByDeviceID(_ context.Context, deviceID string) (*domain.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, row := range s.rows {
		if row.DeviceID != "" && row.DeviceID == deviceID {
			return &row, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *memEntityStore) Delete(_ context.Context, eid domain.EID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rows[eid]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rows, eid)
	return nil
}

// memTokenStore is an in-memory TokenStore keyed like the DynamoDB table.
type memTokenStore struct {
	mu   sync.Mutex
	rows map[string]domain.EntityToken
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{rows: make(map[string]domain.EntityToken)}
}

func tokenKey(eid domain.EID, platform, accountHash string) string {
	return eid.String() + "|" + platform + "|" + accountHash
}

func (s *memTokenStore) Put(_ context.Context, tok *domain.EntityToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[tokenKey(tok.EID, tok.Platform, tok.AccountIdentifierHash)] = *tok
	return nil
}

func (s *memTokenStore) Get(_ context.Context, eid domain.EID, platform, accountHash string) (*domain.EntityToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[tokenKey(eid, platform, accountHash)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (s *memTokenStore) ListByEID(_ context.Context, eid domain.EID) ([]*domain.EntityToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.EntityToken
	for _, row := range s.rows {
		if row.EID == eid {
			row := row
			out = append(out, &row)
		}
	}
	return out, nil
}

func (s *memTokenStore) Delete(_ context.Context, eid domain.EID, platform, accountHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := tokenKey(eid, platform, accountHash)
	if _, ok := s.rows[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rows, key)
	return nil
}

// fakeOTP accepts one fixed code and records deliveries.
type fakeOTP struct {
	mu        sync.Mutex
	code      string
	next      time.Time
	requested int
	pending   bool
}

func (o *fakeOTP) Request(_ context.Context, _ string) (time.Time, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.pending {
		return o.next, domain.ErrOTPRejected
	}
	o.requested++
	return o.next, nil
}

func (o *fakeOTP) Verify(_ context.Context, _, code string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if code != o.code {
		return domain.ErrOTPRejected
	}
	return nil
}

// clientKeys is the device side of a session: both client key pairs plus the
// session material handed back by the vault.
type clientKeys struct {
	publish  *crypto.KeyPair
	deviceID *crypto.KeyPair

	llt              string
	deviceIDValue    string
	serverPublishPub []byte
}

func newClientKeys(t *testing.T) *clientKeys {
	t.Helper()
	publish, err := crypto.GenerateX25519()
	require.NoError(t, err)
	deviceID, err := crypto.GenerateX25519()
	require.NoError(t, err)
	return &clientKeys{publish: publish, deviceID: deviceID}
}

// absorb captures the session material of a SessionResult and recomputes the
// device identifier the way a real client would.
func (c *clientKeys) absorb(t *testing.T, phone string, res *SessionResult) {
	t.Helper()
	require.False(t, res.RequiresOwnershipProof)
	require.NotEmpty(t, res.LongLivedToken)

	serverDevicePub, err := crypto.DecodePublicKey(res.ServerDeviceIDPubKey)
	require.NoError(t, err)
	shared, err := c.deviceID.Agree(serverDevicePub)
	require.NoError(t, err)

	c.llt = res.LongLivedToken
	c.deviceIDValue = auth.ComputeDeviceID(shared, phone, c.deviceID.PublicBase64())
	c.serverPublishPub, err = crypto.DecodePublicKey(res.ServerPublishPubKey)
	require.NoError(t, err)
}

type testVault struct {
	vault    *Vault
	entities *memEntityStore
	tokens   *memTokenStore
	otp      *fakeOTP
	clock    *domaintest.FakeClock
}

func newTestVault(t *testing.T) *testVault {
	t.Helper()

	keys, err := keystore.New(t.TempDir())
	require.NoError(t, err)

	encKey := make([]byte, 32)
	for i := range encKey {
		encKey[i] = byte(i)
	}
	encryptor, err := crypto.NewEncryptor(encKey)
	require.NoError(t, err)

	tv := &testVault{
		entities: newMemEntityStore(),
		tokens:   newMemTokenStore(),
		otp:      &fakeOTP{code: "123456", next: time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC)},
		clock:    domaintest.NewFakeClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	tv.vault = New(
		tv.entities,
		tv.tokens,
		tv.otp,
		keys,
		encryptor,
		Config{HashingKey: domain.SecretBytes([]byte("test-hashing-key"))},
		tv.clock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		nil,
	)
	return tv
}

const testPhone = "+237650000001"

// createEntity runs both CreateEntity phases and returns the client session.
func (tv *testVault) createEntity(t *testing.T, phone string) *clientKeys {
	t.Helper()
	ctx := context.Background()
	client := newClientKeys(t)

	res, err := tv.vault.CreateEntity(ctx, CreateEntityParams{PhoneNumber: phone})
	require.NoError(t, err)
	require.True(t, res.RequiresOwnershipProof)

	res, err = tv.vault.CreateEntity(ctx, CreateEntityParams{
		PhoneNumber:            phone,
		Password:               "correct horse battery",
		CountryCode:            "CM",
		ClientPublishPubKey:    client.publish.PublicBase64(),
		ClientDeviceIDPubKey:   client.deviceID.PublicBase64(),
		OwnershipProofResponse: tv.otp.code,
	})
	require.NoError(t, err)
	client.absorb(t, phone, res)
	return client
}

func TestCreateEntity(t *testing.T) {
	ctx := context.Background()

	t.Run("phase one requests ownership proof", func(t *testing.T) {
		tv := newTestVault(t)
		res, err := tv.vault.CreateEntity(ctx, CreateEntityParams{PhoneNumber: testPhone})
		require.NoError(t, err)
		assert.True(t, res.RequiresOwnershipProof)
		assert.Equal(t, tv.otp.next, res.NextAttempt)
		assert.Equal(t, 1, tv.otp.requested)
	})

	t.Run("pending proof reports the retry window", func(t *testing.T) {
		tv := newTestVault(t)
		tv.otp.pending = true
		res, err := tv.vault.CreateEntity(ctx, CreateEntityParams{PhoneNumber: testPhone})
		require.NoError(t, err)
		assert.True(t, res.RequiresOwnershipProof)
		assert.Equal(t, tv.otp.next, res.NextAttempt)
		assert.Zero(t, tv.otp.requested)
	})

	t.Run("wrong proof is rejected", func(t *testing.T) {
		tv := newTestVault(t)
		client := newClientKeys(t)
		_, err := tv.vault.CreateEntity(ctx, CreateEntityParams{
			PhoneNumber:            testPhone,
			Password:               "pw",
			ClientPublishPubKey:    client.publish.PublicBase64(),
			ClientDeviceIDPubKey:   client.deviceID.PublicBase64(),
			OwnershipProofResponse: "000000",
		})
		assert.ErrorIs(t, err, domain.ErrOTPRejected)
	})

	t.Run("phase two provisions the session", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)

		eid := domain.DeriveEID(tv.vault.phoneHash(testPhone))
		e, err := tv.entities.GetByEID(ctx, eid)
		require.NoError(t, err)
		assert.Equal(t, client.deviceIDValue, e.DeviceID)
		assert.NotEmpty(t, e.PasswordHash)
		assert.NotEmpty(t, e.CountryCodeCiphertext)
		assert.Empty(t, e.ServerState)

		// The minted LLT authenticates immediately.
		infos, err := tv.vault.ListEntityStoredTokens(ctx, client.llt)
		require.NoError(t, err)
		assert.Empty(t, infos)
	})

	t.Run("registered phone cannot register again", func(t *testing.T) {
		tv := newTestVault(t)
		tv.createEntity(t, testPhone)
		_, err := tv.vault.CreateEntity(ctx, CreateEntityParams{PhoneNumber: testPhone})
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	})

	t.Run("invalid phone number", func(t *testing.T) {
		tv := newTestVault(t)
		_, err := tv.vault.CreateEntity(ctx, CreateEntityParams{PhoneNumber: "0650000001"})
		assert.ErrorIs(t, err, domain.ErrInvalidPhoneNumber)
	})
}

func TestAuthenticateEntity(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown phone", func(t *testing.T) {
		tv := newTestVault(t)
		_, err := tv.vault.AuthenticateEntity(ctx, AuthenticateEntityParams{
			PhoneNumber: testPhone, Password: "pw",
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		tv := newTestVault(t)
		tv.createEntity(t, testPhone)
		_, err := tv.vault.AuthenticateEntity(ctx, AuthenticateEntityParams{
			PhoneNumber: testPhone, Password: "not it",
		})
		assert.ErrorIs(t, err, domain.ErrIncorrectPassword)
	})

	t.Run("phase one revokes the session", func(t *testing.T) {
		tv := newTestVault(t)
		tv.createEntity(t, testPhone)

		res, err := tv.vault.AuthenticateEntity(ctx, AuthenticateEntityParams{
			PhoneNumber: testPhone, Password: "correct horse battery",
		})
		require.NoError(t, err)
		assert.True(t, res.RequiresOwnershipProof)

		e, err := tv.entities.FindByPhoneHash(ctx, tv.vault.phoneHash(testPhone))
		require.NoError(t, err)
		assert.Empty(t, e.DeviceID)
		assert.Empty(t, e.ServerState)
	})

	t.Run("phase two rotates keys and credentials", func(t *testing.T) {
		tv := newTestVault(t)
		oldClient := tv.createEntity(t, testPhone)

		newClient := newClientKeys(t)
		res, err := tv.vault.AuthenticateEntity(ctx, AuthenticateEntityParams{
			PhoneNumber:            testPhone,
			Password:               "correct horse battery",
			ClientPublishPubKey:    newClient.publish.PublicBase64(),
			ClientDeviceIDPubKey:   newClient.deviceID.PublicBase64(),
			OwnershipProofResponse: tv.otp.code,
		})
		require.NoError(t, err)
		newClient.absorb(t, testPhone, res)

		assert.NotEqual(t, oldClient.deviceIDValue, newClient.deviceIDValue)
		assert.NotEqual(t, oldClient.llt, newClient.llt)

		// The rotation invalidated the previous token.
		_, err = tv.vault.ListEntityStoredTokens(ctx, oldClient.llt)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
		_, err = tv.vault.ListEntityStoredTokens(ctx, newClient.llt)
		assert.NoError(t, err)
	})

	t.Run("expired llt is rejected", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)

		tv.clock.Advance(domain.LongLivedTokenLifetime + time.Hour)
		_, err := tv.vault.ListEntityStoredTokens(ctx, client.llt)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown phone", func(t *testing.T) {
		tv := newTestVault(t)
		_, err := tv.vault.ResetPassword(ctx, ResetPasswordParams{PhoneNumber: testPhone})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("reset replaces the password", func(t *testing.T) {
		tv := newTestVault(t)
		tv.createEntity(t, testPhone)

		res, err := tv.vault.ResetPassword(ctx, ResetPasswordParams{PhoneNumber: testPhone})
		require.NoError(t, err)
		assert.True(t, res.RequiresOwnershipProof)

		client := newClientKeys(t)
		res, err = tv.vault.ResetPassword(ctx, ResetPasswordParams{
			PhoneNumber:            testPhone,
			NewPassword:            "fresh password",
			ClientPublishPubKey:    client.publish.PublicBase64(),
			ClientDeviceIDPubKey:   client.deviceID.PublicBase64(),
			OwnershipProofResponse: tv.otp.code,
		})
		require.NoError(t, err)
		client.absorb(t, testPhone, res)

		_, err = tv.vault.AuthenticateEntity(ctx, AuthenticateEntityParams{
			PhoneNumber: testPhone, Password: "correct horse battery",
		})
		assert.ErrorIs(t, err, domain.ErrIncorrectPassword)

		auth2, err := tv.vault.AuthenticateEntity(ctx, AuthenticateEntityParams{
			PhoneNumber: testPhone, Password: "fresh password",
		})
		require.NoError(t, err)
		assert.True(t, auth2.RequiresOwnershipProof)
	})

	t.Run("empty new password", func(t *testing.T) {
		tv := newTestVault(t)
		tv.createEntity(t, testPhone)
		client := newClientKeys(t)
		_, err := tv.vault.ResetPassword(ctx, ResetPasswordParams{
			PhoneNumber:            testPhone,
			ClientPublishPubKey:    client.publish.PublicBase64(),
			ClientDeviceIDPubKey:   client.deviceID.PublicBase64(),
			OwnershipProofResponse: tv.otp.code,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdateEntityPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong current password", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)
		err := tv.vault.UpdateEntityPassword(ctx, client.llt, "not it", "next")
		assert.ErrorIs(t, err, domain.ErrIncorrectPassword)
	})

	t.Run("update revokes the device binding", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)

		err := tv.vault.UpdateEntityPassword(ctx, client.llt, "correct horse battery", "next password")
		require.NoError(t, err)

		e, err := tv.entities.FindByPhoneHash(ctx, tv.vault.phoneHash(testPhone))
		require.NoError(t, err)
		assert.Empty(t, e.DeviceID)

		_, err = tv.vault.GetEntityAccessToken(ctx, "", client.deviceIDValue, "gmail", "a@b.c")
		assert.ErrorIs(t, err, domain.ErrUnknownDeviceID)
	})
}

func TestTokenLifecycle(t *testing.T) {
	ctx := context.Background()
	const account = "user@gmail.com"
	const tokens = `{"access_token":"ya29.x","refresh_token":"1//y"}`

	t.Run("unsupported platform", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)
		err := tv.vault.StoreEntityToken(ctx, client.llt, "myspace", account, tokens)
		assert.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
	})

	t.Run("store list get update delete", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)

		require.NoError(t, tv.vault.StoreEntityToken(ctx, client.llt, "Gmail", account, tokens))

		err := tv.vault.StoreEntityToken(ctx, client.llt, "gmail", account, tokens)
		assert.ErrorIs(t, err, domain.ErrAlreadyExists)

		infos, err := tv.vault.ListEntityStoredTokens(ctx, client.llt)
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, StoredTokenInfo{AccountIdentifier: account, Platform: "gmail"}, infos[0])

		got, err := tv.vault.GetEntityAccessToken(ctx, client.llt, "", "gmail", account)
		require.NoError(t, err)
		assert.Equal(t, tokens, got)

		got, err = tv.vault.GetEntityAccessToken(ctx, "", client.deviceIDValue, "gmail", account)
		require.NoError(t, err)
		assert.Equal(t, tokens, got)

		const refreshed = `{"access_token":"ya29.z"}`
		require.NoError(t, tv.vault.UpdateEntityToken(ctx, client.deviceIDValue, "gmail", account, refreshed))
		got, err = tv.vault.GetEntityAccessToken(ctx, client.llt, "", "gmail", account)
		require.NoError(t, err)
		assert.Equal(t, refreshed, got)

		require.NoError(t, tv.vault.DeleteEntityToken(ctx, client.llt, "gmail", account))
		_, err = tv.vault.GetEntityAccessToken(ctx, client.llt, "", "gmail", account)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("get requires exactly one credential", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)

		_, err := tv.vault.GetEntityAccessToken(ctx, client.llt, client.deviceIDValue, "gmail", account)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		_, err = tv.vault.GetEntityAccessToken(ctx, "", "", "gmail", account)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("update for a missing credential", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)
		err := tv.vault.UpdateEntityToken(ctx, client.deviceIDValue, "gmail", account, tokens)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestPayloadChannel(t *testing.T) {
	ctx := context.Background()

	// clientRatchet drives the device side of the channel against the vault.
	type clientRatchet struct {
		state *ratchet.State
	}
	newClientRatchet := func(t *testing.T, c *clientKeys, sending bool) *clientRatchet {
		t.Helper()
		shared, err := c.publish.Agree(c.serverPublishPub)
		require.NoError(t, err)
		if sending {
			st, err := ratchet.NewSendingState(shared, c.serverPublishPub)
			require.NoError(t, err)
			return &clientRatchet{state: st}
		}
		return &clientRatchet{state: ratchet.NewReceivingState(shared, c.publish)}
	}

	t.Run("inbound then outbound", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)
		cr := newClientRatchet(t, client, true)

		for _, msg := range []string{"first publication", "second publication"} {
			var header ratchet.Header
			var ct []byte
			var err error
			cr.state, header, ct, err = ratchet.Encrypt(cr.state, []byte(msg))
			require.NoError(t, err)

			plaintext, err := tv.vault.DecryptPayload(ctx, client.deviceIDValue, ratchet.EncodePayload(header, ct))
			require.NoError(t, err)
			assert.Equal(t, []byte(msg), plaintext)
		}

		// The vault replies on the same session.
		payload, err := tv.vault.EncryptPayload(ctx, client.deviceIDValue, []byte("delivery report"))
		require.NoError(t, err)
		header, ct, err := ratchet.DecodePayload(payload)
		require.NoError(t, err)
		_, plaintext, err := ratchet.Decrypt(cr.state, header, ct)
		require.NoError(t, err)
		assert.Equal(t, []byte("delivery report"), plaintext)
	})

	t.Run("outbound first", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)
		cr := newClientRatchet(t, client, false)

		payload, err := tv.vault.EncryptPayload(ctx, client.deviceIDValue, []byte("server speaks first"))
		require.NoError(t, err)
		header, ct, err := ratchet.DecodePayload(payload)
		require.NoError(t, err)
		_, plaintext, err := ratchet.Decrypt(cr.state, header, ct)
		require.NoError(t, err)
		assert.Equal(t, []byte("server speaks first"), plaintext)
	})

	t.Run("replay is rejected and state survives", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)
		cr := newClientRatchet(t, client, true)

		var header ratchet.Header
		var ct []byte
		var err error
		cr.state, header, ct, err = ratchet.Encrypt(cr.state, []byte("one"))
		require.NoError(t, err)
		payload := ratchet.EncodePayload(header, ct)

		_, err = tv.vault.DecryptPayload(ctx, client.deviceIDValue, payload)
		require.NoError(t, err)
		_, err = tv.vault.DecryptPayload(ctx, client.deviceIDValue, payload)
		assert.ErrorIs(t, err, domain.ErrDecryptionFailed)

		// The failed replay did not advance or corrupt the stored state.
		cr.state, header, ct, err = ratchet.Encrypt(cr.state, []byte("two"))
		require.NoError(t, err)
		plaintext, err := tv.vault.DecryptPayload(ctx, client.deviceIDValue, ratchet.EncodePayload(header, ct))
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), plaintext)
	})

	t.Run("malformed payload", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)
		_, err := tv.vault.DecryptPayload(ctx, client.deviceIDValue, "!!not base64!!")
		assert.ErrorIs(t, err, domain.ErrMalformedPayload)
	})

	t.Run("unknown device", func(t *testing.T) {
		tv := newTestVault(t)
		_, err := tv.vault.DecryptPayload(ctx, "deadbeef", "whatever")
		assert.ErrorIs(t, err, domain.ErrUnknownDeviceID)
	})
}

func TestDeleteEntity(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses while tokens remain", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)
		require.NoError(t, tv.vault.StoreEntityToken(ctx, client.llt, "gmail", "user@gmail.com", "{}"))

		err := tv.vault.DeleteEntity(ctx, client.llt)
		require.ErrorIs(t, err, domain.ErrTokensStillStored)
		assert.Contains(t, err.Error(), "(gmail, user@gmail.com)")
	})

	t.Run("deletes entity, keys, and lock entry", func(t *testing.T) {
		tv := newTestVault(t)
		client := tv.createEntity(t, testPhone)
		eid := domain.DeriveEID(tv.vault.phoneHash(testPhone))

		require.NoError(t, tv.vault.DeleteEntity(ctx, client.llt))

		_, err := tv.entities.GetByEID(ctx, eid)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Zero(t, tv.vault.locks.Len())

		_, err = tv.vault.ListEntityStoredTokens(ctx, client.llt)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}
