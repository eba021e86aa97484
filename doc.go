// Copyright 2015 WP Technology Inc. All rights reserved.
// Use of this source code is governed by a <TBD>-style
// license that can be found in the LICENSE file.

/*
Package sqsconsumer enables easy and efficient message processing from an SQS queue.

Overview

A Consumer reads from a queue in batches and runs a handler func for each message. Messages the handler
accepts are deleted from the queue. Messages the handler rejects are left alone so that SQS delivers them again
once their visibility timeout expires. Note that no retry limit is managed by this package, so use the SQS Dead
Letter Queue facility.

The consumer runs until Stop is called. It never returns errors once started; receive and delete failures,
handler failures and the loop halting are reported to listeners registered with OnError, OnProcessingError and
OnStopped. OnMessageReceived and OnMessageProcessed follow each message through the loop.

	c, err := sqsconsumer.NewConsumer(queueURL, handle, sqsconsumer.WithBatchSize(10))
	if err != nil {
		log.Fatal(err)
	}
	c.OnError(func(err error) { log.Println(err) })
	c.Start()

SQS

SQS provides at-least-once delivery with no guarantee of message ordering. When messages are received, a visibility timeout starts and when the timeout expires then the message will be delivered again. Long running message handlers must extend the timeout periodically to ensure that they retain exclusivity on the message.

To read more about how SQS works, check the SQS documentation at https://aws.amazon.com/documentation/sqs/

Authentication failures (HTTP 403 or missing credentials) are retried after a backoff, see
WithAuthenticationErrorBackoff. Other receive failures are retried straight away unless WithReceiveErrorDelay is
set.

Middleware

Visibility timeout extension, metrics and concurrency limits are implemented as handler middleware. See
github.com/teamvio/sqs-consumer/middleware for details on these and other middleware layers available.
*/
package sqsconsumer
