package sms

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snsTypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// AWSSNSProvider publishes SMS through Amazon SNS. It fills the tertiary
// slot of the failover chain for deployments that carry AWS credentials.
type AWSSNSProvider struct {
	client *sns.Client
	region string
}

func NewAWSSNSProvider(region string) (*AWSSNSProvider, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSSNSProvider{
		client: sns.NewFromConfig(cfg),
		region: region,
	}, nil
}

func (a *AWSSNSProvider) Name() string {
	return "aws_sns"
}

func (a *AWSSNSProvider) Send(ctx context.Context, request *Request) (*Response, error) {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(request.To),
		Message:     aws.String(request.Message),
		MessageAttributes: map[string]snsTypes.MessageAttributeValue{
			"AWS.SNS.SMS.SMSType": {
				DataType:    aws.String("String"),
				StringValue: aws.String(a.getSMSType(request.Type)),
			},
		},
	}
	if request.From != "" {
		input.MessageAttributes["AWS.SNS.SMS.SenderID"] = snsTypes.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(request.From),
		}
	}

	resp, err := a.client.Publish(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("sns publish failed: %w", err)
	}

	return &Response{
		Success:   true,
		MessageID: aws.ToString(resp.MessageId),
		Status:    "sent",
	}, nil
}

// Balance is not exposed by SNS; spend tracking lives in CloudWatch.
func (a *AWSSNSProvider) Balance(ctx context.Context) (string, error) {
	return "N/A", nil
}

func (a *AWSSNSProvider) getSMSType(messageType string) string {
	switch messageType {
	case "promotional":
		return "Promotional"
	case "transactional", "otp":
		return "Transactional"
	default:
		return "Transactional"
	}
}
