package sqsconsumer

import (
	"sync"

	"github.com/aws/aws-sdk-go/service/sqs"
)

// EventType names a notification emitted by a Consumer.
type EventType int

const (
	EventMessageReceived EventType = iota
	EventMessageProcessed
	EventProcessingError
	EventError
	EventStopped
)

func (e EventType) String() string {
	switch e {
	case EventMessageReceived:
		return "message_received"
	case EventMessageProcessed:
		return "message_processed"
	case EventProcessingError:
		return "processing_error"
	case EventError:
		return "error"
	case EventStopped:
		return "stopped"
	}
	return "unknown"
}

// MessageListener observes a message event.
type MessageListener func(msg *sqs.Message)

// ProcessingErrorListener observes a handler failure. err is exactly what the handler returned.
type ProcessingErrorListener func(msg *sqs.Message, err error)

// ErrorListener observes a transport failure. err is an *Error of KindTransport.
type ErrorListener func(err error)

// StoppedListener observes the poll loop halting after Stop.
type StoppedListener func()

// Subscription is returned when a listener is registered.
type Subscription struct {
	cancel func()
}

// Unsubscribe removes the listener. It is safe to call more than once.
func (s Subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

// slot holds the listeners of one event type.
type slot[F any] struct {
	mu   sync.RWMutex
	next uint64
	fns  map[uint64]F
}

func (s *slot[F]) add(fn F) Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fns == nil {
		s.fns = make(map[uint64]F)
	}
	id := s.next
	s.next++
	s.fns[id] = fn

	var once sync.Once
	return Subscription{cancel: func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.fns, id)
			s.mu.Unlock()
		})
	}}
}

// each calls fire for a snapshot of the listeners so that a listener may unsubscribe itself. A listener panic is
// passed to recovered and the remaining listeners still run.
func (s *slot[F]) each(fire func(F), recovered func(r any)) {
	s.mu.RLock()
	fns := make([]F, 0, len(s.fns))
	for _, fn := range s.fns {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		s.call(fire, fn, recovered)
	}
}

func (s *slot[F]) call(fire func(F), fn F, recovered func(r any)) {
	defer func() {
		if r := recover(); r != nil {
			recovered(r)
		}
	}()
	fire(fn)
}

type events struct {
	received        slot[MessageListener]
	processed       slot[MessageListener]
	processingError slot[ProcessingErrorListener]
	err             slot[ErrorListener]
	stopped         slot[StoppedListener]
}

// OnMessageReceived registers fn to run when a message is taken off a batch, before it is handled.
func (c *Consumer) OnMessageReceived(fn MessageListener) Subscription {
	return c.events.received.add(fn)
}

// OnMessageProcessed registers fn to run after a message was handled and deleted.
func (c *Consumer) OnMessageProcessed(fn MessageListener) Subscription {
	return c.events.processed.add(fn)
}

// OnProcessingError registers fn to run when the handler fails a message.
func (c *Consumer) OnProcessingError(fn ProcessingErrorListener) Subscription {
	return c.events.processingError.add(fn)
}

// OnError registers fn to run when a receive or delete call fails.
func (c *Consumer) OnError(fn ErrorListener) Subscription {
	return c.events.err.add(fn)
}

// OnStopped registers fn to run when the poll loop observes Stop and halts.
func (c *Consumer) OnStopped(fn StoppedListener) Subscription {
	return c.events.stopped.add(fn)
}

func (c *Consumer) emitMessageReceived(msg *sqs.Message) {
	c.logEvent(EventMessageReceived, msg)
	c.events.received.each(func(fn MessageListener) { fn(msg) }, c.listenerPanicked(EventMessageReceived))
}

func (c *Consumer) emitMessageProcessed(msg *sqs.Message) {
	c.logEvent(EventMessageProcessed, msg)
	c.events.processed.each(func(fn MessageListener) { fn(msg) }, c.listenerPanicked(EventMessageProcessed))
}

func (c *Consumer) emitProcessingError(msg *sqs.Message, err error) {
	c.logger.Error().Err(err).Str("event", EventProcessingError.String()).Str("message_id", messageID(msg)).Msg("Handler failed")
	c.events.processingError.each(func(fn ProcessingErrorListener) { fn(msg, err) }, c.listenerPanicked(EventProcessingError))
}

func (c *Consumer) emitError(err error) {
	c.logger.Error().Err(err).Str("event", EventError.String()).Msg("SQS request failed")
	c.events.err.each(func(fn ErrorListener) { fn(err) }, c.listenerPanicked(EventError))
}

func (c *Consumer) emitStopped() {
	c.logger.Debug().Str("event", EventStopped.String()).Msg("Consumer stopped")
	c.events.stopped.each(func(fn StoppedListener) { fn() }, c.listenerPanicked(EventStopped))
}

func (c *Consumer) logEvent(e EventType, msg *sqs.Message) {
	c.logger.Debug().Str("event", e.String()).Str("message_id", messageID(msg)).Send()
}

func (c *Consumer) listenerPanicked(e EventType) func(r any) {
	return func(r any) {
		c.logger.Error().Str("event", e.String()).Interface("panic", r).Msg("Listener panicked")
	}
}
