package middleware

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/rs/zerolog/log"
	sqsconsumer "github.com/teamvio/sqs-consumer"
	"golang.org/x/net/context"
)

// SQSVisibilityTimeoutExtender decorates a MessageHandler to periodically extend the visibility timeout until the handler is done
func SQSVisibilityTimeoutExtender(s *sqsconsumer.SQSService, opts ...VisibilityTimeoutExtenderOption) MessageHandlerDecorator {
	return func(fn sqsconsumer.MessageHandlerFunc) sqsconsumer.MessageHandlerFunc {
		extender := newDefaultVisibilityTimeoutExtender(s, fn, opts...)
		return extender.messageHandlerFunc
	}
}

// VisibilityTimeoutExtenderOption is an option that can be applied to an SQSVisibilityTimeoutExtender
type VisibilityTimeoutExtenderOption func(*visibilityTimeoutExtender)

// OptEveryDuration modifies an SQSVisibilityTimeoutExtender by changing the frequency of updating the extension
func OptEveryDuration(d time.Duration) VisibilityTimeoutExtenderOption {
	return func(ve *visibilityTimeoutExtender) {
		ve.every = d
	}
}

// OptExtensionSecs modifies an SQSVisibilityTimeoutExtender by changing the length of the requested extension
func OptExtensionSecs(s int64) VisibilityTimeoutExtenderOption {
	return func(ve *visibilityTimeoutExtender) {
		ve.extensionSecs = s
	}
}

type visibilityTimeoutExtender struct {
	srv           *sqsconsumer.SQSService
	every         time.Duration
	extensionSecs int64
	next          sqsconsumer.MessageHandlerFunc
}

const (
	defaultVisibilityTimeoutExtenderFrequency = 25 * time.Second
	defaultVisibilityTimeoutExtensionSeconds  = 30
)

func newDefaultVisibilityTimeoutExtender(s *sqsconsumer.SQSService, fn sqsconsumer.MessageHandlerFunc, opts ...VisibilityTimeoutExtenderOption) *visibilityTimeoutExtender {
	ve := &visibilityTimeoutExtender{
		srv:           s,
		every:         defaultVisibilityTimeoutExtenderFrequency,
		extensionSecs: defaultVisibilityTimeoutExtensionSeconds,
		next:          fn,
	}
	for _, o := range opts {
		o(ve)
	}
	return ve
}

func (ve *visibilityTimeoutExtender) messageHandlerFunc(ctx context.Context, msg *sqs.Message) error {
	ticker := time.NewTicker(ve.every)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		for {
			select {
			case <-ticker.C:
				ve.extendVisibilityTimeout(msg)
			case <-done:
				return
			}
		}
	}()

	err := ve.next(ctx, msg)

	// stop extending the visibility timeout before returning so no extension races the delete
	ticker.Stop()
	close(done)
	<-exited

	return err
}

func (ve *visibilityTimeoutExtender) extendVisibilityTimeout(msg *sqs.Message) bool {
	id := aws.StringValue(msg.MessageId)
	log.Debug().Str("message_id", id).Int64("extension_secs", ve.extensionSecs).Msg("Extending visibility timeout")

	_, err := ve.srv.Svc.ChangeMessageVisibility(&sqs.ChangeMessageVisibilityInput{
		QueueUrl:          ve.srv.URL,
		ReceiptHandle:     msg.ReceiptHandle,
		VisibilityTimeout: aws.Int64(ve.extensionSecs),
	})
	if err != nil {
		log.Error().Err(err).Str("message_id", id).Msg("Failed to extend visibility timeout")
		return false
	}

	return true
}
