package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/endopredict/api/internal/config"
	"github.com/endopredict/api/internal/domain"
)

// SESMailer delivers OTP emails via AWS SES. Used in deployments that route
// mail through AWS instead of Resend (MAIL_PROVIDER=ses).
type SESMailer struct {
	client *ses.Client
	from   string
}

func NewSESMailer(cfg *config.Config) (*SESMailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config for SES: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(awsCfg), from: cfg.MailFrom}, nil
}

func (m *SESMailer) SendOTP(ctx context.Context, to, name, code string) error {
	textBody := fmt.Sprintf("Hello %s,\n\nYour OTP is: %s\n\nThis code expires in 5 minutes.\n", name, code)

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(otpSubject)},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(otpHTMLBody(name, code))},
				Text: &types.Content{Data: aws.String(textBody)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send email: %v: %w", err, domain.ErrNotificationFailed)
	}
	return nil
}
