package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	sqsconsumer "github.com/teamvio/sqs-consumer"
	"github.com/teamvio/sqs-consumer/middleware/movingaverage"
	"golang.org/x/net/context"
)

// TrackMessageAge is middleware that tracks the exponential moving average of message age in seconds, calling f
// with the current average every period until ctx is done.
//
// Only first deliveries count, so the consumer must request the ApproximateReceiveCount and SentTimestamp
// attributes (see sqsconsumer.WithAttributeNames).
func TrackMessageAge(ctx context.Context, period time.Duration, f func(age float64)) MessageHandlerDecorator {
	ema := movingaverage.New(period)

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				f(ema.Value())
			case <-ctx.Done():
				return
			}
		}
	}()

	return func(fn sqsconsumer.MessageHandlerFunc) sqsconsumer.MessageHandlerFunc {
		return func(ctx context.Context, msg *sqs.Message) error {
			if age, err := computeMessageAge(msg, time.Now()); err == nil {
				ema.Update(age)
			}

			return fn(ctx, msg)
		}
	}
}

var errCannotComputeAge = errors.New("cannot compute message age")

// computeMessageAge computes the age in seconds of a message delivered for the first time
func computeMessageAge(m *sqs.Message, now time.Time) (float64, error) {
	rc, err := strconv.ParseInt(aws.StringValue(m.Attributes[sqs.MessageSystemAttributeNameApproximateReceiveCount]), 10, 64)
	if err != nil || rc > 1 {
		return 0, errCannotComputeAge
	}

	sentMillis, err := strconv.ParseInt(aws.StringValue(m.Attributes[sqs.MessageSystemAttributeNameSentTimestamp]), 10, 64)
	if err != nil {
		return 0, errCannotComputeAge
	}

	return now.Sub(time.UnixMilli(sentMillis)).Seconds(), nil
}
