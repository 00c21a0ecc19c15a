package notifications

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/Grelo-LLC/Grelo-Corporate-API/domain"
)

// SESServiceImpl implements domain.NotificationService using AWS SES
type SESServiceImpl struct {
	client      *ses.Client
	fromAddress string
}

// NewSESService creates a new SES notification service
func NewSESService(client *ses.Client, fromAddress string) domain.NotificationService {
	return &SESServiceImpl{
		client:      client,
		fromAddress: fromAddress,
	}
}

// SendEmail implements domain.NotificationService
func (s *SESServiceImpl) SendEmail(ctx context.Context, to, subject, body string) error {
	// If the sender address is not configured, log instead of sending
	if s.fromAddress == "" {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s\n", to, subject, body)
		return nil
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
