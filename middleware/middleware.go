// Package middleware provides decorators for sqsconsumer.MessageHandlerFunc.
package middleware

import sqsconsumer "github.com/teamvio/sqs-consumer"

// MessageHandlerDecorator is a decorator that can be applied to a handler.
type MessageHandlerDecorator func(sqsconsumer.MessageHandlerFunc) sqsconsumer.MessageHandlerFunc

// ApplyDecoratorsToHandler applies all the decorators in inverse order so that d1, d2, d3 results in d1(d2(d3(fn))),
// i.e. d1 sees the message first.
func ApplyDecoratorsToHandler(fn sqsconsumer.MessageHandlerFunc, ds ...MessageHandlerDecorator) sqsconsumer.MessageHandlerFunc {
	for i := len(ds) - 1; i >= 0; i-- {
		fn = ds[i](fn)
	}
	return fn
}

// DefaultStack is the middleware most consumers want: visibility extension for long running handlers and
// success/failure metrics published with expvar under prefix.
func DefaultStack(s *sqsconsumer.SQSService, prefix string) []MessageHandlerDecorator {
	return []MessageHandlerDecorator{
		ExpvarMetrics(prefix),
		SQSVisibilityTimeoutExtender(s),
	}
}
