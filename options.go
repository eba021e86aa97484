package sqsconsumer

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBatchSize                = 1
	defaultVisibilityTimeout        = 500
	defaultWaitSeconds              = 20
	defaultAuthenticationErrorDelay = time.Second
	defaultRegion                   = "eu-west-1"

	// AWS limits
	maxBatchSize   = 10
	maxWaitSeconds = 20
)

// Option configures a Consumer created by NewConsumer.
type Option func(c *Consumer)

// WithSQS sets the SQS client used to receive and delete messages. Without it a client is created for the
// region set by WithRegion, using the default AWS credential chain.
func WithSQS(svc SQSAPI) Option {
	return func(c *Consumer) { c.svc = svc }
}

// WithRegion sets the region of the default SQS client. It is ignored when WithSQS is used.
func WithRegion(region string) Option {
	return func(c *Consumer) { c.region = region }
}

// WithAttributeNames sets the system attributes requested with each message, e.g. "ApproximateReceiveCount".
func WithAttributeNames(names ...string) Option {
	return func(c *Consumer) { c.attributeNames = names }
}

// WithMessageAttributeNames sets the message attributes requested with each message.
func WithMessageAttributeNames(names ...string) Option {
	return func(c *Consumer) { c.messageAttributeNames = names }
}

// WithBatchSize sets the maximum number of messages requested per receive call, between 1 and 10.
func WithBatchSize(n int64) Option {
	return func(c *Consumer) { c.batchSize = n }
}

// WithVisibilityTimeout sets the visibility timeout in seconds requested for received messages.
func WithVisibilityTimeout(secs int64) Option {
	return func(c *Consumer) { c.visibilityTimeout = secs }
}

// WithWaitSeconds sets the long-poll wait of each receive call, up to 20 seconds.
func WithWaitSeconds(secs int64) Option {
	return func(c *Consumer) { c.waitSeconds = secs }
}

// WithAuthenticationErrorBackoff sets how long the consumer waits before polling again after a receive call
// failed with an authentication error.
func WithAuthenticationErrorBackoff(d time.Duration) Option {
	return func(c *Consumer) { c.authErrorBackoff = d }
}

// WithReceiveErrorDelay sets how long the consumer waits before polling again after any other receive failure.
// The default is to poll again immediately, so a persistent failure such as a deleted queue keeps the loop
// calling ReceiveMessage and emitting error events with only the SDK retryer slowing it down.
func WithReceiveErrorDelay(d time.Duration) Option {
	return func(c *Consumer) { c.receiveErrorDelay = d }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Consumer) { c.logger = l }
}

func validate(c *Consumer) error {
	switch {
	case c.queueURL == "":
		return configError("missing queue url")
	case c.handler == nil:
		return configError("missing handler")
	case c.batchSize < 1 || c.batchSize > maxBatchSize:
		return configError("batch size out of range")
	case c.waitSeconds < 0 || c.waitSeconds > maxWaitSeconds:
		return configError("wait seconds out of range")
	case c.visibilityTimeout < 0:
		return configError("visibility timeout out of range")
	case c.authErrorBackoff < 0:
		return configError("authentication error backoff out of range")
	case c.receiveErrorDelay < 0:
		return configError("receive error delay out of range")
	}
	return nil
}
