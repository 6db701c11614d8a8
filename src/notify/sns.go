package notify

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sns"
	"github.com/aws/aws-sdk-go/service/sns/snsiface"
)

// Notifier sends a text alert to a phone number. Fire-and-forget; no
// delivery confirmation is consumed.
type Notifier interface {
	Publish(phoneNumber, message string) error
}

// SNSNotifier sends alerts as SMS via SNS.
type SNSNotifier struct {
	client snsiface.SNSAPI
}

func NewSNSNotifier(client snsiface.SNSAPI) *SNSNotifier {
	return &SNSNotifier{client: client}
}

func (n *SNSNotifier) Publish(phoneNumber, message string) error {
	_, err := n.client.Publish(&sns.PublishInput{
		PhoneNumber: aws.String(phoneNumber),
		Message:     aws.String(message),
	})
	if err != nil {
		return fmt.Errorf("sns publish to %s: %w", phoneNumber, err)
	}
	return nil
}
