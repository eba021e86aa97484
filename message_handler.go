package sqsconsumer

import (
	"github.com/aws/aws-sdk-go/service/sqs"
	"golang.org/x/net/context"
)

// MessageHandlerFunc is the interface that users of this library should implement. It will be called once per message and should return an error if there was a problem processing the message. Messages are deleted only when it returns nil.
//
// The context is never cancelled by the Consumer; once a handler starts it runs to completion.
type MessageHandlerFunc func(ctx context.Context, msg *sqs.Message) error
