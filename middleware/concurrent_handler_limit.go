package middleware

import (
	"github.com/aws/aws-sdk-go/service/sqs"
	sqsconsumer "github.com/teamvio/sqs-consumer"
	"golang.org/x/net/context"
)

// ConcurrentHandlerLimit decorates a MessageHandler to limit the number of handlers running at a time.
//
// A consumer only handles up to 10 messages at a time anyway, so there's probably no need for this with a single
// consumer. With many consumers in one process, create one ConcurrentHandlerLimit middleware and apply the same
// one to all the consumers' handler funcs to bound the handlers in flight across the set.
func ConcurrentHandlerLimit(limit int) MessageHandlerDecorator {
	// close over the pool so that one limit can apply to multiple handlers if so desired
	pool := newTokenPool(limit)

	return func(fn sqsconsumer.MessageHandlerFunc) sqsconsumer.MessageHandlerFunc {
		return func(ctx context.Context, msg *sqs.Message) error {
			select {
			case <-pool:
				defer func() { pool <- struct{}{} }()
				return fn(ctx, msg)

			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func newTokenPool(size int) chan struct{} {
	p := make(chan struct{}, size)
	for i := 0; i < size; i++ {
		p <- struct{}{}
	}
	return p
}
