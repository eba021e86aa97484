package sqsconsumer

import (
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/net/context"
)

// Consumer is an SQS queue consumer. It polls the queue in batches, runs the handler for every message and
// deletes the messages that were handled successfully.
type Consumer struct {
	svc                   SQSAPI
	region                string
	queueURL              string
	handler               MessageHandlerFunc
	attributeNames        []string
	messageAttributeNames []string
	batchSize             int64
	visibilityTimeout     int64
	waitSeconds           int64
	authErrorBackoff      time.Duration
	receiveErrorDelay     time.Duration
	logger                zerolog.Logger

	events events

	mu      sync.Mutex
	running bool
	// looping is true from the moment a poll loop is launched until it observes the stopped state
	looping bool
}

// NewConsumer creates a stopped Consumer for the queue at queueURL that invokes handler for each message received.
// It returns an *Error of KindConfig when the configuration is invalid.
func NewConsumer(queueURL string, handler MessageHandlerFunc, opts ...Option) (*Consumer, error) {
	c := &Consumer{
		region:            defaultRegion,
		queueURL:          queueURL,
		handler:           handler,
		batchSize:         defaultBatchSize,
		visibilityTimeout: defaultVisibilityTimeout,
		waitSeconds:       defaultWaitSeconds,
		authErrorBackoff:  defaultAuthenticationErrorDelay,
		logger:            zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}

	if err := validate(c); err != nil {
		return nil, err
	}

	if c.svc == nil {
		sess, err := session.NewSession(&aws.Config{Region: aws.String(c.region)})
		if err != nil {
			return nil, &Error{Kind: KindConfig, Message: "create aws session failed: " + err.Error(), Err: err}
		}
		c.svc = sqs.New(sess)
	}

	c.logger = c.logger.With().Str("queue_url", queueURL).Logger()
	return c, nil
}

// Start begins polling for messages. It does nothing if the consumer is already running.
func (c *Consumer) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return
	}
	c.logger.Debug().Msg("Starting consumer")
	c.running = true

	// a loop from an earlier Start that has not yet seen the Stop simply carries on
	if c.looping {
		return
	}
	c.looping = true
	go c.poll()
}

// Stop stops polling for messages. In-flight receive and handler calls complete normally; the loop halts at the
// start of its next cycle and then emits the stopped event. When Stop is called while the consumer waits out an
// authentication error backoff or receive error delay, the stopped event is emitted only once that wait is over.
func (c *Consumer) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.logger.Debug().Msg("Stopping consumer")
	c.running = false
}

// Running reports whether the consumer has been started and not stopped since.
func (c *Consumer) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}

// checkpoint reports whether the loop should run another cycle, releasing the loop when it should not.
func (c *Consumer) checkpoint() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return true
	}
	c.looping = false
	return false
}

func (c *Consumer) poll() {
	for {
		params := c.receiveParams()

		if !c.checkpoint() {
			c.emitStopped()
			return
		}

		c.logger.Debug().Msg("Polling for messages")
		resp, err := c.svc.ReceiveMessage(params)
		if err != nil {
			c.emitError(transportError("receive message", err))

			delay := c.receiveErrorDelay
			if IsAuthenticationError(err) {
				delay = c.authErrorBackoff
			}
			if delay > 0 {
				c.logger.Debug().Dur("delay", delay).Msg("Waiting before polling again")
				time.AfterFunc(delay, c.poll)
				return
			}
			continue
		}

		c.handleResponse(resp)
	}
}

func (c *Consumer) receiveParams() *sqs.ReceiveMessageInput {
	return &sqs.ReceiveMessageInput{
		QueueUrl:              aws.String(c.queueURL),
		AttributeNames:        aws.StringSlice(c.attributeNames),
		MessageAttributeNames: aws.StringSlice(c.messageAttributeNames),
		MaxNumberOfMessages:   aws.Int64(c.batchSize),
		WaitTimeSeconds:       aws.Int64(c.waitSeconds),
		VisibilityTimeout:     aws.Int64(c.visibilityTimeout),
	}
}

// handleResponse processes every message of the batch concurrently and returns once all of them have settled.
func (c *Consumer) handleResponse(resp *sqs.ReceiveMessageOutput) {
	if resp == nil || len(resp.Messages) == 0 {
		return
	}
	c.logger.Debug().Int("count", len(resp.Messages)).Msg("Received messages")

	p := pool.New().WithMaxGoroutines(len(resp.Messages))
	for _, msg := range resp.Messages {
		msg := msg
		p.Go(func() {
			c.processMessage(msg)
		})
	}
	p.Wait()
}

func (c *Consumer) processMessage(msg *sqs.Message) {
	c.emitMessageReceived(msg)

	if err := c.handle(msg); err != nil {
		// not deleted, SQS redelivers it once the visibility timeout expires
		c.emitProcessingError(msg, err)
		return
	}

	if err := c.deleteMessage(msg); err != nil {
		c.emitError(err)
		return
	}

	c.emitMessageProcessed(msg)
}

func (c *Consumer) handle(msg *sqs.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &Error{Kind: KindProcessing, Message: fmt.Sprintf("handler panic: %v", r)}
		}
	}()

	return c.handler(context.Background(), msg)
}

func (c *Consumer) deleteMessage(msg *sqs.Message) error {
	c.logger.Debug().Str("message_id", messageID(msg)).Msg("Deleting message")

	_, err := c.svc.DeleteMessage(&sqs.DeleteMessageInput{
		QueueUrl:      aws.String(c.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		return transportError("delete message", err)
	}
	return nil
}

func messageID(msg *sqs.Message) string {
	return aws.StringValue(msg.MessageId)
}
