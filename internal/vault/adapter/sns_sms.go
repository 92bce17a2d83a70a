package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// SMSProvider delivers proof-of-ownership codes to a phone number.
type SMSProvider interface {
	SendOTP(ctx context.Context, phone, otp string) error
}

// snsPublisher is a narrow, consumer-defined interface for the subset of SNS
// operations required by the SMS provider. The real *sns.Client satisfies it.
type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Compile-time interface satisfaction checks.
var _ SMSProvider = (*SNSSMSProvider)(nil)
var _ SMSProvider = (*LogSMSProvider)(nil)

// SNSSMSProvider delivers codes via Amazon SNS SMS.
type SNSSMSProvider struct {
	client   snsPublisher
	senderID string
}

// NewSNSSMSProvider creates an SNSSMSProvider backed by the given SNS client.
// senderID may be empty; not every region supports sender identities.
func NewSNSSMSProvider(client snsPublisher, senderID string) *SNSSMSProvider {
	return &SNSSMSProvider{client: client, senderID: senderID}
}

// SendOTP publishes the code to the given phone number via SNS as a
// Transactional message.
func (p *SNSSMSProvider) SendOTP(ctx context.Context, phone, otp string) error {
	message := fmt.Sprintf("Your verification code is: %s", otp)

	attrs := map[string]types.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    strPtr("String"),
			StringValue: strPtr("Transactional"),
		},
	}
	if p.senderID != "" {
		attrs["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    strPtr("String"),
			StringValue: &p.senderID,
		}
	}

	_, err := p.client.Publish(ctx, &sns.PublishInput{
		PhoneNumber:       &phone,
		Message:           &message,
		MessageAttributes: attrs,
	})
	if err != nil {
		return fmt.Errorf("sns sms: send otp to %s: %w", maskPhone(phone), err)
	}

	return nil
}

func strPtr(s string) *string { return &s }

// LogSMSProvider is a fake SMSProvider that logs delivery instead of sending
// real SMS. Suitable for development mode and tests.
type LogSMSProvider struct {
	logger *slog.Logger
}

// NewLogSMSProvider creates a LogSMSProvider that writes OTP events to the
// given structured logger.
func NewLogSMSProvider(logger *slog.Logger) *LogSMSProvider {
	return &LogSMSProvider{logger: logger}
}

// SendOTP logs the delivery with a masked phone number. The code is visible
// in the log line; this provider is for environments where seeing the code
// is the point.
func (p *LogSMSProvider) SendOTP(ctx context.Context, phone, otp string) error {
	p.logger.InfoContext(ctx, "otp delivery (log-only)",
		slog.String("phone", maskPhone(phone)),
		slog.String("code", otp),
	)

	return nil
}

// maskPhone returns a masked representation of the phone number showing only
// the last 4 digits. Numbers shorter than 5 characters are fully masked.
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return "***" + phone[len(phone)-4:]
}
