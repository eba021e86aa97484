package middleware

import (
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	sqsconsumer "github.com/teamvio/sqs-consumer"
	"golang.org/x/net/context"
)

// UnwrapSNSMessage decorates a MessageHandler to unwrap messages sent via SNS. The next handler gets a copy of
// the message whose body is the SNS notification's Message; the received message is not modified.
func UnwrapSNSMessage() MessageHandlerDecorator {
	return func(fn sqsconsumer.MessageHandlerFunc) sqsconsumer.MessageHandlerFunc {
		return func(ctx context.Context, msg *sqs.Message) error {
			var e snsEnvelope
			err := json.Unmarshal([]byte(aws.StringValue(msg.Body)), &e)
			if err != nil || !isSNSMessage(e) {
				// may not have come through SNS so just passthrough
				return fn(ctx, msg)
			}

			unwrapped := *msg
			unwrapped.Body = aws.String(e.Message)
			return fn(ctx, &unwrapped)
		}
	}
}

type snsEnvelope struct {
	Type      string
	TopicArn  string
	MessageID string `json:"MessageId"`
	Message   string
}

func isSNSMessage(e snsEnvelope) bool {
	return e.TopicArn != "" && e.MessageID != "" && e.Type == "Notification"
}
