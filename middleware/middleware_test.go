package middleware

import (
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	sqsconsumer "github.com/teamvio/sqs-consumer"
	"golang.org/x/net/context"
)

func TestMain(m *testing.M) {
	// the extender is chatty
	zerolog.SetGlobalLevel(zerolog.Disabled)

	os.Exit(m.Run())
}

func TestApplyDecoratorsToHandler(t *testing.T) {
	prefixer := func(prefix string) MessageHandlerDecorator {
		return func(next sqsconsumer.MessageHandlerFunc) sqsconsumer.MessageHandlerFunc {
			return func(ctx context.Context, msg *sqs.Message) error {
				return next(ctx, &sqs.Message{Body: aws.String(prefix + aws.StringValue(msg.Body))})
			}
		}
	}

	mc := &testMessageCapturer{}

	wrapped := ApplyDecoratorsToHandler(mc.handlerFunc, prefixer("a"), prefixer("b"), prefixer("c"))

	wrapped(context.Background(), testMessage("0"))
	assert.Equal(t, "cba0", mc.body())
}

// testMessageCapturer has a handler func that captures the message it received for examination
type testMessageCapturer struct {
	mu  sync.Mutex
	msg *sqs.Message
}

// handlerFunc is the MessageHandlerFunc for the testMessageCapturer
func (m *testMessageCapturer) handlerFunc(_ context.Context, msg *sqs.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msg = msg
	return nil
}

func (m *testMessageCapturer) body() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.msg == nil {
		return ""
	}
	return aws.StringValue(m.msg.Body)
}

// testHandlerReturnAfterDelay generates a handler func that will succeed or error as directed after a delay
func testHandlerReturnAfterDelay(succeed bool, delay time.Duration) sqsconsumer.MessageHandlerFunc {
	return func(ctx context.Context, _ *sqs.Message) error {
		time.Sleep(delay)
		if !succeed {
			return errors.New("an error")
		}
		return nil
	}
}

func testMessage(body string) *sqs.Message {
	return &sqs.Message{MessageId: aws.String("i1"), ReceiptHandle: aws.String("r1"), Body: aws.String(body)}
}

func noop(ctx context.Context, msg *sqs.Message) error {
	return nil
}

func TestDefaultStack(t *testing.T) {
	s := &sqsconsumer.SQSService{URL: aws.String("an_url")}
	stack := DefaultStack(s, "default_stack")

	assert.Len(t, stack, 2)

	fn := ApplyDecoratorsToHandler(noop, stack...)
	assert.NoError(t, fn(context.Background(), testMessage("")))
}
