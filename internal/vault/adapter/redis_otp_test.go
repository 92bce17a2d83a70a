package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relaysms/vault/internal/domain"
	"github.com/relaysms/vault/internal/domain/domaintest"
	redisclient "github.com/relaysms/vault/internal/redis"
)

// captureSMS records delivered codes instead of sending them.
type captureSMS struct {
	phones []string
	codes  []string
	err    error
}

func (c *captureSMS) SendOTP(_ context.Context, phone, otp string) error {
	if c.err != nil {
		return c.err
	}
	c.phones = append(c.phones, phone)
	c.codes = append(c.codes, otp)
	return nil
}

func newTestGateway(t *testing.T) (*OTPGateway, *captureSMS, *miniredis.Miniredis, *domaintest.FakeClock) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redisclient.NewClient(redisclient.Config{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sms := &captureSMS{}
	clock := domaintest.NewFakeClock(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))
	gw := NewOTPGateway(client.RDB, sms, []byte("hashing-key"), clock, OTPConfig{
		Validity:      domain.OTPValidityDuration,
		ResendBackoff: time.Minute,
		MaxAttempts:   3,
	})
	return gw, sms, mr, clock
}

func TestOTPGateway_Request(t *testing.T) {
	const phone = "+237600000001"

	t.Run("delivers a 6-digit code and returns the next window", func(t *testing.T) {
		gw, sms, _, clock := newTestGateway(t)

		next, err := gw.Request(context.Background(), phone)

		require.NoError(t, err)
		require.Len(t, sms.codes, 1)
		assert.Len(t, sms.codes[0], 6)
		assert.Equal(t, clock.Now().Add(time.Minute), next)
	})

	t.Run("second request inside the backoff is rejected", func(t *testing.T) {
		gw, sms, _, _ := newTestGateway(t)

		_, err := gw.Request(context.Background(), phone)
		require.NoError(t, err)

		next, err := gw.Request(context.Background(), phone)

		assert.ErrorIs(t, err, domain.ErrOTPRejected)
		assert.False(t, next.IsZero())
		assert.Len(t, sms.codes, 1, "no second SMS inside the backoff")
	})

	t.Run("request after the backoff expires delivers again", func(t *testing.T) {
		gw, sms, mr, _ := newTestGateway(t)

		_, err := gw.Request(context.Background(), phone)
		require.NoError(t, err)

		mr.FastForward(time.Minute + time.Second)

		_, err = gw.Request(context.Background(), phone)
		require.NoError(t, err)
		assert.Len(t, sms.codes, 2)
	})

	t.Run("delivery failure leaves no verifiable code", func(t *testing.T) {
		gw, sms, _, _ := newTestGateway(t)
		sms.err = assert.AnError

		_, err := gw.Request(context.Background(), phone)
		assert.ErrorIs(t, err, domain.ErrUnavailable)

		sms.err = nil
		assert.ErrorIs(t, gw.Verify(context.Background(), phone, "000000"), domain.ErrOTPRejected)
	})
}

func TestOTPGateway_Verify(t *testing.T) {
	const phone = "+237600000001"

	t.Run("correct code verifies once", func(t *testing.T) {
		gw, sms, _, _ := newTestGateway(t)

		_, err := gw.Request(context.Background(), phone)
		require.NoError(t, err)
		code := sms.codes[0]

		require.NoError(t, gw.Verify(context.Background(), phone, code))

		// The code is consumed; a replay fails.
		assert.ErrorIs(t, gw.Verify(context.Background(), phone, code), domain.ErrOTPRejected)
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		gw, sms, _, _ := newTestGateway(t)

		_, err := gw.Request(context.Background(), phone)
		require.NoError(t, err)

		wrong := "000000"
		if sms.codes[0] == wrong {
			wrong = "000001"
		}
		assert.ErrorIs(t, gw.Verify(context.Background(), phone, wrong), domain.ErrOTPRejected)
	})

	t.Run("attempts are bounded", func(t *testing.T) {
		gw, sms, _, _ := newTestGateway(t)

		_, err := gw.Request(context.Background(), phone)
		require.NoError(t, err)
		code := sms.codes[0]

		wrong := "000000"
		if code == wrong {
			wrong = "000001"
		}
		for i := 0; i < 3; i++ {
			assert.ErrorIs(t, gw.Verify(context.Background(), phone, wrong), domain.ErrOTPRejected)
		}

		// The real code no longer works; the budget is spent.
		assert.ErrorIs(t, gw.Verify(context.Background(), phone, code), domain.ErrOTPRejected)
	})

	t.Run("expired code is rejected", func(t *testing.T) {
		gw, sms, mr, _ := newTestGateway(t)

		_, err := gw.Request(context.Background(), phone)
		require.NoError(t, err)

		mr.FastForward(domain.OTPValidityDuration + time.Second)

		assert.ErrorIs(t, gw.Verify(context.Background(), phone, sms.codes[0]), domain.ErrOTPRejected)
	})

	t.Run("verify without a request is rejected", func(t *testing.T) {
		gw, _, _, _ := newTestGateway(t)

		assert.ErrorIs(t, gw.Verify(context.Background(), phone, "123456"), domain.ErrOTPRejected)
	})
}
