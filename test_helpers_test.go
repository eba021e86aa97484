package sqsconsumer

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"golang.org/x/net/context"
)

// testMessageCapturer has a handler func that captures the messages it received for examination
type testMessageCapturer struct {
	mu   sync.Mutex
	msgs []*sqs.Message
}

// handlerFunc is the MessageHandlerFunc for the testMessageCapturer
func (m *testMessageCapturer) handlerFunc(_ context.Context, msg *sqs.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
	return nil
}

func (m *testMessageCapturer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.msgs)
}

// testMessages makes n messages with ids i1..in and receipt handles r1..rn
func testMessages(n int) []*sqs.Message {
	msgs := make([]*sqs.Message, n)
	for i := range msgs {
		msgs[i] = &sqs.Message{
			MessageId:     aws.String(fmt.Sprintf("i%d", i+1)),
			ReceiptHandle: aws.String(fmt.Sprintf("r%d", i+1)),
			Body:          aws.String(fmt.Sprintf("body %d", i+1)),
		}
	}
	return msgs
}

// testStoppedSignal returns a channel closed the first time c emits the stopped event
func testStoppedSignal(c *Consumer) <-chan struct{} {
	done := make(chan struct{})
	var once sync.Once
	c.OnStopped(func() {
		once.Do(func() { close(done) })
	})
	return done
}

func testWait(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for the consumer")
	}
}

func noop(ctx context.Context, msg *sqs.Message) error {
	return nil
}
