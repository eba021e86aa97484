package middleware

import (
	"time"

	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/expvar"
	sqsconsumer "github.com/teamvio/sqs-consumer"
	"golang.org/x/net/context"
)

// TrackMetrics decorates a MessageHandler to count successes and failures and observe the handler runtime in seconds.
func TrackMetrics(successes, failures metrics.Counter, timing metrics.Histogram) MessageHandlerDecorator {
	return func(fn sqsconsumer.MessageHandlerFunc) sqsconsumer.MessageHandlerFunc {
		return func(ctx context.Context, msg *sqs.Message) error {
			defer func(start time.Time) {
				timing.Observe(time.Since(start).Seconds())
			}(time.Now())

			err := fn(ctx, msg)
			if err != nil {
				failures.Add(1)
			} else {
				successes.Add(1)
			}
			return err
		}
	}
}

// ExpvarMetrics is TrackMetrics publishing <prefix>.success, <prefix>.fail and <prefix>.time quantiles
// (<prefix>.time.p50 etc) with expvar. Each prefix may only be used once per process.
func ExpvarMetrics(prefix string) MessageHandlerDecorator {
	return TrackMetrics(
		expvar.NewCounter(prefix+".success"),
		expvar.NewCounter(prefix+".fail"),
		expvar.NewHistogram(prefix+".time", 50),
	)
}
