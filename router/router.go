// Package router dispatches JSON messages to handlers by the value of their "type" property.
package router

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	sqsconsumer "github.com/teamvio/sqs-consumer"
	"golang.org/x/net/context"
)

// Type is a router from type value to a handler func
type Type map[string]sqsconsumer.MessageHandlerFunc

// New makes a new router
func New() Type {
	return make(Type)
}

// Add registers a handler func for a specific message type, replacing any handler already registered for it
func (t Type) Add(r string, h sqsconsumer.MessageHandlerFunc) {
	t[r] = h
}

// Handler handles JSON messages and routes the message to an appropriate handler func based on the "type" property of the message.
// A message that fails to route is a processing error, so the consumer leaves it on the queue.
func (t Type) Handler(ctx context.Context, msg *sqs.Message) error {
	var tm typedMessage
	if err := json.Unmarshal([]byte(aws.StringValue(msg.Body)), &tm); err != nil {
		return err
	}

	fn, ok := t[tm.Type]
	if tm.Type == "" || !ok {
		return RouteNotFoundError{tm.Type}
	}

	return fn(ctx, msg)
}

// RouteNotFoundError is an error that includes the type that did not match any route
type RouteNotFoundError struct {
	Type string
}

func (e RouteNotFoundError) Error() string {
	return fmt.Sprintf("No route found for type: %s", e.Type)
}

type typedMessage struct {
	Type string `json:"type"`
}
